package domain

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Account represents one of the shared accounts in a simulation run.
// Balance and SuccessfulTransfers are shared mutable state: they may
// only be read or written while holding the account's lock. ID and
// TransferAmount are immutable after construction.
type Account struct {
	ID                  int
	Balance             decimal.Decimal
	TransferAmount      decimal.Decimal // fixed amount this account sends per cycle
	SuccessfulTransfers int64           // count of transfers originating from this account

	mu sync.Mutex
}

// NewAccount creates an account with a zeroed transfer counter.
func NewAccount(id int, balance, transferAmount decimal.Decimal) *Account {
	return &Account{
		ID:             id,
		Balance:        balance,
		TransferAmount: transferAmount,
	}
}

// Lock acquires the account's exclusive lock. Callers must never hold
// it across a sleep or other blocking wait.
func (a *Account) Lock() {
	a.mu.Lock()
}

// Unlock releases the account's exclusive lock.
func (a *Account) Unlock() {
	a.mu.Unlock()
}

// AccountSnapshot is a consistent read of an account's mutable state,
// taken at a single instant under the account's lock.
type AccountSnapshot struct {
	ID                  int
	Balance             decimal.Decimal
	SuccessfulTransfers int64
}

// Snapshot returns the account's balance and transfer counter as of a
// single instant.
func (a *Account) Snapshot() AccountSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	return AccountSnapshot{
		ID:                  a.ID,
		Balance:             a.Balance,
		SuccessfulTransfers: a.SuccessfulTransfers,
	}
}
