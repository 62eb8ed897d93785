package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisputeState_CanTransition(t *testing.T) {
	states := []DisputeState{
		DisputeStateDeposited,
		DisputeStateDisputed,
		DisputeStateResolved,
		DisputeStateChargedBack,
	}
	allowed := map[[2]DisputeState]bool{
		{DisputeStateDeposited, DisputeStateDisputed}:   true,
		{DisputeStateDisputed, DisputeStateResolved}:    true,
		{DisputeStateDisputed, DisputeStateChargedBack}: true,
	}

	for _, from := range states {
		for _, to := range states {
			want := allowed[[2]DisputeState{from, to}]
			assert.Equal(t, want, from.CanTransition(to), "%s -> %s", from, to)
		}
	}
}

func TestDepositRecord_Transition(t *testing.T) {
	r := &DepositRecord{Client: 1, Amount: MustParseMoney("5"), State: DisputeStateDeposited}

	assert.ErrorIs(t, r.Transition(DisputeStateResolved), ErrInvalidState)
	assert.Equal(t, DisputeStateDeposited, r.State)

	assert.NoError(t, r.Transition(DisputeStateDisputed))
	assert.NoError(t, r.Transition(DisputeStateChargedBack))
	assert.ErrorIs(t, r.Transition(DisputeStateDisputed), ErrInvalidState)
	assert.Equal(t, DisputeStateChargedBack, r.State)
}
