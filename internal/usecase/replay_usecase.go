package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/txengine/internal/domain"
)

// Summary describes a finished replay.
type Summary struct {
	RunID     string
	Processed int
	Applied   int
	Rejected  map[string]int
	Accounts  int
	Locked    int
	Duration  time.Duration
}

// RejectedTotal returns the number of rejected transactions.
func (s Summary) RejectedTotal() int {
	n := 0
	for _, c := range s.Rejected {
		n += c
	}
	return n
}

type ReplayUseCase struct {
	recorder Recorder
	idGen    IDGenerator
	logger   zerolog.Logger
}

// NewReplayUseCase creates a ReplayUseCase. recorder may be nil.
func NewReplayUseCase(recorder Recorder, idGen IDGenerator, logger zerolog.Logger) *ReplayUseCase {
	return &ReplayUseCase{
		recorder: recorder,
		idGen:    idGen,
		logger:   logger,
	}
}

// Replay feeds every transaction from src into a fresh Engine and writes the
// resulting accounts to sink. Rejected transactions are skipped. A source error
// aborts the run and nothing is written.
func (uc *ReplayUseCase) Replay(ctx context.Context, src TransactionSource, sink ReportSink) (Summary, error) {
	start := time.Now()
	summary := Summary{
		RunID:    uc.idGen.Generate(),
		Rejected: make(map[string]int),
	}
	log := uc.logger.With().Str("run_id", summary.RunID).Logger()

	engine := NewEngine()
	for {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		tx, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return summary, fmt.Errorf("read transaction: %w", err)
		}
		summary.Processed++

		if err := engine.Apply(tx); err != nil {
			if !domain.IsRejection(err) {
				return summary, err
			}
			reason := domain.RejectionReason(err)
			summary.Rejected[reason]++
			if uc.recorder != nil {
				uc.recorder.TransactionRejected(tx.Kind(), reason)
			}
			log.Debug().
				Str("kind", string(tx.Kind())).
				Uint16("client", uint16(tx.ClientID())).
				Uint32("tx", uint32(tx.TxID())).
				Str("reason", reason).
				Msg("transaction rejected")
			continue
		}

		summary.Applied++
		if uc.recorder != nil {
			uc.recorder.TransactionApplied(tx.Kind())
		}
	}

	accounts := engine.Accounts()
	if err := sink.WriteAccounts(ctx, accounts); err != nil {
		return summary, fmt.Errorf("write report: %w", err)
	}

	summary.Accounts = len(accounts)
	for _, acc := range accounts {
		if acc.Locked {
			summary.Locked++
		}
	}
	summary.Duration = time.Since(start)

	if uc.recorder != nil {
		uc.recorder.ReplayFinished(accounts, summary.Duration)
	}

	log.Info().
		Int("processed", summary.Processed).
		Int("applied", summary.Applied).
		Int("rejected", summary.RejectedTotal()).
		Int("accounts", summary.Accounts).
		Int("locked", summary.Locked).
		Dur("duration", summary.Duration).
		Msg("replay finished")

	return summary, nil
}
