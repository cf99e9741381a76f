package bankclient

import "regexp"

// Account identifiers are "ACC" followed by exactly four decimal digits.
var accountPattern = regexp.MustCompile(`^ACC\d{4}$`)

// maxTransferAmount is the inclusive upper bound for a single transfer.
const maxTransferAmount = 1_000_000

// ValidateAccountFormat checks the shape of an account identifier without
// contacting the server.
func ValidateAccountFormat(accountID string) error {
	if !accountPattern.MatchString(accountID) {
		return &InvalidFormatError{AccountID: accountID}
	}
	return nil
}

// ValidateAmount checks that a transfer amount is positive and does not
// exceed the transfer limit. The limit itself is accepted.
func ValidateAmount(amount float64) error {
	if amount <= 0 || amount > maxTransferAmount {
		return &InvalidAmountError{Amount: amount}
	}
	return nil
}
