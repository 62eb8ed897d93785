package metrics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/iho/txengine/internal/domain"
)

func TestNewRegistersMetrics(t *testing.T) {
	m := New()

	if m.TransactionsApplied == nil || m.TransactionsRejected == nil || m.ReplayDuration == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	// Two independent instances must not collide on registration.
	_ = New()
}

func TestRecorderCounters(t *testing.T) {
	m := New()

	m.TransactionApplied(domain.KindDeposit)
	m.TransactionApplied(domain.KindDeposit)
	m.TransactionRejected(domain.KindWithdrawal, "insufficient_funds")

	if got := testutil.ToFloat64(m.TransactionsApplied.WithLabelValues("deposit")); got != 2 {
		t.Fatalf("expected 2 applied deposits, got %v", got)
	}
	if got := testutil.ToFloat64(m.TransactionsRejected.WithLabelValues("withdrawal", "insufficient_funds")); got != 1 {
		t.Fatalf("expected 1 rejected withdrawal, got %v", got)
	}
}

func TestReplayFinishedSetsGauges(t *testing.T) {
	m := New()

	m.ReplayFinished([]domain.Account{
		{Client: 1, Held: domain.MustParseMoney("14")},
		{Client: 4, Locked: true},
		{Client: 5, Held: domain.MustParseMoney("0.5")},
	}, 10*time.Millisecond)

	if got := testutil.ToFloat64(m.Accounts); got != 3 {
		t.Fatalf("expected 3 accounts, got %v", got)
	}
	if got := testutil.ToFloat64(m.AccountsLocked); got != 1 {
		t.Fatalf("expected 1 locked account, got %v", got)
	}
	if got := testutil.ToFloat64(m.HeldFunds); got != 14.5 {
		t.Fatalf("expected 14.5 held, got %v", got)
	}
	if got := testutil.CollectAndCount(m.ReplayDuration); got != 1 {
		t.Fatalf("expected one duration series, got %d", got)
	}
}

func TestWriteText(t *testing.T) {
	m := New()
	m.TransactionApplied(domain.KindDispute)

	var buf bytes.Buffer
	if err := m.WriteText(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(buf.String(), `txengine_transactions_applied_total{kind="dispute"} 1`) {
		t.Fatalf("expected applied counter in output, got:\n%s", buf.String())
	}
}
