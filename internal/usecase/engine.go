package usecase

import (
	"sort"

	"github.com/iho/txengine/internal/domain"
)

// Engine replays transactions into account balances.
//
// An Engine is not safe for concurrent use: transactions must be applied one
// at a time in arrival order, so callers with several producers must
// serialize calls to Apply.
type Engine struct {
	accounts map[domain.ClientID]*domain.Account
	deposits map[domain.TransactionID]*domain.DepositRecord
}

// NewEngine creates an empty Engine.
func NewEngine() *Engine {
	return &Engine{
		accounts: make(map[domain.ClientID]*domain.Account),
		deposits: make(map[domain.TransactionID]*domain.DepositRecord),
	}
}

// Apply validates and applies a single transaction. On failure it returns a
// *domain.TransactionError and leaves balances and deposit records untouched.
func (e *Engine) Apply(tx domain.Transaction) error {
	if err := tx.Accept(handler{e}); err != nil {
		return &domain.TransactionError{
			Kind:   tx.Kind(),
			Client: tx.ClientID(),
			Tx:     tx.TxID(),
			Err:    err,
		}
	}
	return nil
}

// Account returns a copy of the client's account.
func (e *Engine) Account(client domain.ClientID) (domain.Account, bool) {
	acc, ok := e.accounts[client]
	if !ok {
		return domain.Account{}, false
	}
	return *acc, true
}

// Deposit returns a copy of the deposit record stored under id.
func (e *Engine) Deposit(id domain.TransactionID) (domain.DepositRecord, bool) {
	rec, ok := e.deposits[id]
	if !ok {
		return domain.DepositRecord{}, false
	}
	return *rec, true
}

// Accounts returns copies of all known accounts ordered by client id.
func (e *Engine) Accounts() []domain.Account {
	out := make([]domain.Account, 0, len(e.accounts))
	for _, acc := range e.accounts {
		out = append(out, *acc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Client < out[j].Client })
	return out
}

// account returns the client's account, opening an empty one if needed.
// A rejected withdrawal still leaves the opened account behind.
func (e *Engine) account(client domain.ClientID) *domain.Account {
	acc, ok := e.accounts[client]
	if !ok {
		acc = domain.NewAccount(client)
		e.accounts[client] = acc
	}
	return acc
}

// disputed looks up the deposit referenced by a dispute, resolve or chargeback
// and the owning account, checking that the record may move to next.
func (e *Engine) disputed(client domain.ClientID, id domain.TransactionID, next domain.DisputeState) (*domain.DepositRecord, *domain.Account, error) {
	rec, ok := e.deposits[id]
	if !ok {
		return nil, nil, domain.ErrDepositNotFound
	}
	if rec.Client != client {
		return nil, nil, domain.ErrClientMismatch
	}
	if !rec.State.CanTransition(next) {
		return nil, nil, domain.ErrInvalidState
	}
	acc, ok := e.accounts[client]
	if !ok {
		return nil, nil, domain.ErrAccountNotFound
	}
	if acc.Locked {
		return nil, nil, domain.ErrLockedAccount
	}
	return rec, acc, nil
}

// handler dispatches each variant. Every check runs before the first mutation.
type handler struct {
	e *Engine
}

func (h handler) VisitDeposit(tx domain.Deposit) error {
	if _, exists := h.e.deposits[tx.ID]; exists {
		return domain.ErrDuplicateTransaction
	}

	acc := h.e.account(tx.Client)
	if err := acc.ValidateDeposit(); err != nil {
		return err
	}

	acc.Available = acc.Available.Add(tx.Amount)
	h.e.deposits[tx.ID] = &domain.DepositRecord{
		Client: tx.Client,
		Amount: tx.Amount,
		State:  domain.DisputeStateDeposited,
	}
	return nil
}

func (h handler) VisitWithdrawal(tx domain.Withdrawal) error {
	acc := h.e.account(tx.Client)
	if err := acc.ValidateWithdraw(tx.Amount); err != nil {
		return err
	}

	acc.Available = acc.Available.Sub(tx.Amount)
	return nil
}

func (h handler) VisitDispute(tx domain.Dispute) error {
	rec, acc, err := h.e.disputed(tx.Client, tx.Deposit, domain.DisputeStateDisputed)
	if err != nil {
		return err
	}

	acc.Hold(rec.Amount)
	return rec.Transition(domain.DisputeStateDisputed)
}

func (h handler) VisitResolve(tx domain.Resolve) error {
	rec, acc, err := h.e.disputed(tx.Client, tx.Deposit, domain.DisputeStateResolved)
	if err != nil {
		return err
	}

	acc.Release(rec.Amount)
	return rec.Transition(domain.DisputeStateResolved)
}

func (h handler) VisitChargeback(tx domain.Chargeback) error {
	rec, acc, err := h.e.disputed(tx.Client, tx.Deposit, domain.DisputeStateChargedBack)
	if err != nil {
		return err
	}

	acc.Reverse(rec.Amount)
	return rec.Transition(domain.DisputeStateChargedBack)
}
