/**
 * @description
 * Typed failures for the banking client. Each error kind carries the fields a
 * caller needs to branch on (status code, offending input, wrapped cause), so
 * callers use errors.As rather than inspecting message strings.
 */
package bankclient

import "fmt"

// InvalidFormatError reports an account identifier that does not match the
// ACC#### shape, or one that the pre-transfer validation pass rejected.
type InvalidFormatError struct {
	AccountID string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid account format: %q (expected ACC followed by 4 digits, e.g. ACC1000)", e.AccountID)
}

// InvalidAmountError reports a transfer amount outside the allowed range.
type InvalidAmountError struct {
	Amount float64
}

func (e *InvalidAmountError) Error() string {
	if e.Amount <= 0 {
		return fmt.Sprintf("amount must be positive: %.2f", e.Amount)
	}
	return fmt.Sprintf("amount exceeds maximum limit of %d: %.2f", maxTransferAmount, e.Amount)
}

// TransferRejectedError reports a non-200 response from the transfer
// endpoint. Body holds the raw response body exactly as the server sent it.
type TransferRejectedError struct {
	StatusCode int
	Body       string
}

func (e *TransferRejectedError) Error() string {
	return fmt.Sprintf("transfer rejected with status %d: %s", e.StatusCode, e.Body)
}

// AuthenticationFailedError reports a non-200 response from the auth endpoint.
type AuthenticationFailedError struct {
	StatusCode int
}

func (e *AuthenticationFailedError) Error() string {
	return fmt.Sprintf("authentication failed with status %d", e.StatusCode)
}

// MalformedResponseError reports a 200 response whose body could not be
// decoded into the expected JSON shape.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response body: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// TransportError reports that no response was obtained at all: connection
// failure, timeout, or cancellation. It deliberately carries no status code;
// there is none to carry.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
