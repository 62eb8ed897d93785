package domain

// ClientID identifies an account holder.
type ClientID uint16

// Account represents the balances of a single client.
type Account struct {
	Client    ClientID
	Available Money
	Held      Money
	Locked    bool
}

// NewAccount returns an unlocked account with zero balances.
func NewAccount(client ClientID) *Account {
	return &Account{Client: client}
}

// Total returns available + held.
func (a *Account) Total() Money {
	return a.Available.Add(a.Held)
}

// ValidateWithdraw checks if amount can be taken from available funds.
func (a *Account) ValidateWithdraw(amount Money) error {
	if a.Locked {
		return ErrLockedAccount
	}
	if amount.Cmp(a.Available) > 0 {
		return ErrInsufficientFunds
	}
	return nil
}

// ValidateDeposit checks if the account accepts new funds.
func (a *Account) ValidateDeposit() error {
	if a.Locked {
		return ErrLockedAccount
	}
	return nil
}

// Hold moves amount from available to held.
func (a *Account) Hold(amount Money) {
	a.Available = a.Available.Sub(amount)
	a.Held = a.Held.Add(amount)
}

// Release moves amount from held back to available.
func (a *Account) Release(amount Money) {
	a.Held = a.Held.Sub(amount)
	a.Available = a.Available.Add(amount)
}

// Reverse removes held funds and freezes the account.
func (a *Account) Reverse(amount Money) {
	a.Held = a.Held.Sub(amount)
	a.Locked = true
}
