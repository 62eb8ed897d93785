package domain

// TransactionID identifies a transaction in the input stream.
type TransactionID uint32

// DisputeState is the position of a deposit record in the dispute state machine.
type DisputeState string

const (
	DisputeStateDeposited   DisputeState = "deposited"
	DisputeStateDisputed    DisputeState = "disputed"
	DisputeStateResolved    DisputeState = "resolved"
	DisputeStateChargedBack DisputeState = "charged_back"
)

// transitions lists the only allowed moves of the dispute state machine.
var transitions = map[DisputeState][]DisputeState{
	DisputeStateDeposited: {DisputeStateDisputed},
	DisputeStateDisputed:  {DisputeStateResolved, DisputeStateChargedBack},
}

// CanTransition reports whether a record in state s may move to next.
func (s DisputeState) CanTransition(next DisputeState) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// DepositRecord is the audit trail of a successful deposit.
type DepositRecord struct {
	Client ClientID
	Amount Money
	State  DisputeState
}

// Transition validates the move to next and applies it.
func (r *DepositRecord) Transition(next DisputeState) error {
	if !r.State.CanTransition(next) {
		return ErrInvalidState
	}
	r.State = next
	return nil
}
