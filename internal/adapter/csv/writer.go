package csv

import (
	"context"
	stdcsv "encoding/csv"
	"io"
	"strconv"

	"github.com/iho/txengine/internal/domain"
)

var reportHeader = []string{"client", "available", "held", "total", "locked"}

// Writer renders final account states. It implements usecase.ReportSink.
type Writer struct {
	w io.Writer
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteAccounts writes the header followed by one row per account.
func (w *Writer) WriteAccounts(ctx context.Context, accounts []domain.Account) error {
	cw := stdcsv.NewWriter(w.w)
	if err := cw.Write(reportHeader); err != nil {
		return err
	}

	for _, acc := range accounts {
		if err := ctx.Err(); err != nil {
			return err
		}
		row := []string{
			strconv.FormatUint(uint64(acc.Client), 10),
			acc.Available.String(),
			acc.Held.String(),
			acc.Total().String(),
			strconv.FormatBool(acc.Locked),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
