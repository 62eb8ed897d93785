package domain

import (
	"errors"
	"fmt"
)

var (
	// Parse errors
	ErrParse = errors.New("invalid money literal")

	// Transaction rejections
	ErrDuplicateTransaction = errors.New("duplicate transaction id")
	ErrLockedAccount        = errors.New("account is locked")
	ErrInsufficientFunds    = errors.New("insufficient available funds")
	ErrDepositNotFound      = errors.New("deposit not found")
	ErrClientMismatch       = errors.New("deposit belongs to another client")
	ErrInvalidState         = errors.New("invalid dispute state transition")
	ErrAccountNotFound      = errors.New("account not found")
)

var rejections = []error{
	ErrDuplicateTransaction,
	ErrLockedAccount,
	ErrInsufficientFunds,
	ErrDepositNotFound,
	ErrClientMismatch,
	ErrInvalidState,
	ErrAccountNotFound,
}

// TransactionError describes why a single transaction was rejected.
// It unwraps to one of the rejection sentinels above.
type TransactionError struct {
	Kind   Kind
	Client ClientID
	Tx     TransactionID
	Err    error
}

// Error formats the rejection with its kind, client and transaction id.
func (e *TransactionError) Error() string {
	return fmt.Sprintf("%s client=%d tx=%d: %v", e.Kind, e.Client, e.Tx, e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

// IsRejection reports whether err is a recoverable, per-transaction failure.
func IsRejection(err error) bool {
	for _, target := range rejections {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// RejectionReason returns a short stable label for a rejection, suitable for
// log fields and metric labels. Unknown errors map to "unknown".
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrDuplicateTransaction):
		return "duplicate_transaction"
	case errors.Is(err, ErrLockedAccount):
		return "locked_account"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrDepositNotFound):
		return "deposit_not_found"
	case errors.Is(err, ErrClientMismatch):
		return "client_mismatch"
	case errors.Is(err, ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, ErrAccountNotFound):
		return "account_not_found"
	default:
		return "unknown"
	}
}
