package usecase

import (
	"context"
	"time"

	"github.com/iho/txengine/internal/domain"
)

// TransactionSource yields transactions in arrival order.
type TransactionSource interface {
	// Next returns the next transaction, or io.EOF when the stream is exhausted.
	// Any other error is structural and aborts the replay.
	Next() (domain.Transaction, error)
}

// ReportSink receives the final account states.
type ReportSink interface {
	WriteAccounts(ctx context.Context, accounts []domain.Account) error
}

// Recorder observes replay outcomes.
type Recorder interface {
	TransactionApplied(kind domain.Kind)
	TransactionRejected(kind domain.Kind, reason string)
	ReplayFinished(accounts []domain.Account, elapsed time.Duration)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
