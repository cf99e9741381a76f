package bankclient

import "strconv"

// amountJSON marshals a transfer amount with exactly two fractional digits,
// the wire format the banking server expects (100 renders as 100.00).
type amountJSON float64

func (a amountJSON) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(a), 'f', 2, 64)), nil
}

// transferPayload is the request body for POST /transfer.
type transferPayload struct {
	FromAccount string     `json:"fromAccount"`
	ToAccount   string     `json:"toAccount"`
	Amount      amountJSON `json:"amount"`
}
