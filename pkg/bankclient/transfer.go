package bankclient

import "context"

// TransferCall collects the parameters of a single transfer. It replaces the
// chained-mutation builder style with a plain value: callers fill in the
// fields and hand the call to Execute or ExecuteWithValidation.
type TransferCall struct {
	From   string
	To     string
	Amount float64
}

// Execute performs the transfer described by the call.
func (c *Client) Execute(ctx context.Context, call TransferCall) (*TransferResult, error) {
	return c.TransferFunds(ctx, call.From, call.To, call.Amount)
}

// ExecuteWithValidation checks both accounts against the server before
// transferring, failing fast without attempting the transfer if either one is
// rejected.
func (c *Client) ExecuteWithValidation(ctx context.Context, call TransferCall) (*TransferResult, error) {
	ok, err := c.ValidateAccount(ctx, call.From)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &InvalidFormatError{AccountID: call.From}
	}

	ok, err = c.ValidateAccount(ctx, call.To)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &InvalidFormatError{AccountID: call.To}
	}

	return c.Execute(ctx, call)
}
