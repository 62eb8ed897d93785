package csv

import (
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iho/txengine/internal/domain"
)

// Column layout of the input: type, client, tx, amount.
const (
	colType = iota
	colClient
	colTx
	colAmount

	inputColumns = 4
)

var (
	ErrMalformedRow = errors.New("malformed row")
	ErrUnknownType  = errors.New("unknown transaction type")
)

// RowError is a structural input error. It aborts the whole run.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Reader decodes transactions from a CSV stream with a header row.
// It implements usecase.TransactionSource.
type Reader struct {
	r          *stdcsv.Reader
	headerRead bool
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	cr := stdcsv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	return &Reader{r: cr}
}

// Next returns the next transaction or io.EOF.
func (r *Reader) Next() (domain.Transaction, error) {
	if !r.headerRead {
		r.headerRead = true
		if _, err := r.r.Read(); err != nil {
			return nil, r.wrap(err)
		}
	}

	record, err := r.r.Read()
	if err != nil {
		return nil, r.wrap(err)
	}

	line, _ := r.r.FieldPos(0)
	fields := make([]string, len(record))
	for i, f := range record {
		fields[i] = strings.TrimSpace(f)
	}

	tx, err := parseTransaction(fields)
	if err != nil {
		return nil, &RowError{Line: line, Err: err}
	}
	return tx, nil
}

func (r *Reader) wrap(err error) error {
	if errors.Is(err, io.EOF) {
		return io.EOF
	}
	var parseErr *stdcsv.ParseError
	if errors.As(err, &parseErr) {
		return &RowError{Line: parseErr.Line, Err: fmt.Errorf("%w: %v", ErrMalformedRow, parseErr.Err)}
	}
	return err
}

func parseTransaction(fields []string) (domain.Transaction, error) {
	if len(fields) != inputColumns {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRow, inputColumns, len(fields))
	}

	kind, ok := domain.ParseKind(fields[colType])
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, fields[colType])
	}

	client, err := parseClient(fields[colClient])
	if err != nil {
		return nil, err
	}
	id, err := parseTxID(fields[colTx])
	if err != nil {
		return nil, err
	}

	switch kind {
	case domain.KindDeposit, domain.KindWithdrawal:
		amount, err := domain.ParseMoney(fields[colAmount])
		if err != nil {
			return nil, err
		}
		if kind == domain.KindDeposit {
			return domain.Deposit{ID: id, Client: client, Amount: amount}, nil
		}
		return domain.Withdrawal{ID: id, Client: client, Amount: amount}, nil
	case domain.KindDispute:
		return domain.Dispute{Client: client, Deposit: id}, nil
	case domain.KindResolve:
		return domain.Resolve{Client: client, Deposit: id}, nil
	case domain.KindChargeback:
		return domain.Chargeback{Client: client, Deposit: id}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, fields[colType])
}

func parseClient(s string) (domain.ClientID, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid client id %q: %w", s, err)
	}
	return domain.ClientID(v), nil
}

func parseTxID(s string) (domain.TransactionID, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid transaction id %q: %w", s, err)
	}
	return domain.TransactionID(v), nil
}
