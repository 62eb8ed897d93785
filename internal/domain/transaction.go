package domain

// Kind names a transaction variant as it appears in the input stream.
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
	KindDispute    Kind = "dispute"
	KindResolve    Kind = "resolve"
	KindChargeback Kind = "chargeback"
)

// Kinds lists every transaction variant.
var Kinds = []Kind{KindDeposit, KindWithdrawal, KindDispute, KindResolve, KindChargeback}

// ParseKind maps the literal, case-sensitive type name to a Kind.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Transaction is the closed set of variants below. Handlers implement
// TransactionVisitor, so adding a variant breaks every handler at compile time.
type Transaction interface {
	Kind() Kind
	ClientID() ClientID
	// TxID is the transaction's own id for deposits and withdrawals,
	// and the referenced deposit id for the other kinds.
	TxID() TransactionID
	Accept(v TransactionVisitor) error
}

// TransactionVisitor handles every Transaction variant.
type TransactionVisitor interface {
	VisitDeposit(Deposit) error
	VisitWithdrawal(Withdrawal) error
	VisitDispute(Dispute) error
	VisitResolve(Resolve) error
	VisitChargeback(Chargeback) error
}

// Deposit credits Amount to the client's available funds and opens a
// disputable deposit record under ID.
type Deposit struct {
	ID     TransactionID
	Client ClientID
	Amount Money
}

func (t Deposit) Kind() Kind                        { return KindDeposit }
func (t Deposit) ClientID() ClientID                { return t.Client }
func (t Deposit) TxID() TransactionID               { return t.ID }
func (t Deposit) Accept(v TransactionVisitor) error { return v.VisitDeposit(t) }

// Withdrawal debits Amount from available funds. Its ID is carried for
// diagnostics only and is never deduplicated.
type Withdrawal struct {
	ID     TransactionID
	Client ClientID
	Amount Money
}

func (t Withdrawal) Kind() Kind                        { return KindWithdrawal }
func (t Withdrawal) ClientID() ClientID                { return t.Client }
func (t Withdrawal) TxID() TransactionID               { return t.ID }
func (t Withdrawal) Accept(v TransactionVisitor) error { return v.VisitWithdrawal(t) }

// Dispute holds the funds of the referenced deposit.
type Dispute struct {
	Client  ClientID
	Deposit TransactionID
}

func (t Dispute) Kind() Kind                        { return KindDispute }
func (t Dispute) ClientID() ClientID                { return t.Client }
func (t Dispute) TxID() TransactionID               { return t.Deposit }
func (t Dispute) Accept(v TransactionVisitor) error { return v.VisitDispute(t) }

// Resolve releases the held funds of a disputed deposit.
type Resolve struct {
	Client  ClientID
	Deposit TransactionID
}

func (t Resolve) Kind() Kind                        { return KindResolve }
func (t Resolve) ClientID() ClientID                { return t.Client }
func (t Resolve) TxID() TransactionID               { return t.Deposit }
func (t Resolve) Accept(v TransactionVisitor) error { return v.VisitResolve(t) }

// Chargeback removes the held funds of a disputed deposit and locks the account.
type Chargeback struct {
	Client  ClientID
	Deposit TransactionID
}

func (t Chargeback) Kind() Kind                        { return KindChargeback }
func (t Chargeback) ClientID() ClientID                { return t.Client }
func (t Chargeback) TxID() TransactionID               { return t.Deposit }
func (t Chargeback) Accept(v TransactionVisitor) error { return v.VisitChargeback(t) }
