package transfer

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/transfersim/internal/domain"
)

var (
	// ErrInsufficientFunds means the source account could not cover its
	// configured transfer amount. It is terminal: the call that returns
	// it has already flagged termination for the whole run.
	ErrInsufficientFunds = errors.New("insufficient funds in source account")

	// ErrTerminated means termination was already flagged by another
	// party before this transfer ran. Nothing was mutated.
	ErrTerminated = errors.New("run already terminated")
)

// Service executes transfers between shared accounts. It is the only
// code that mutates account balances and transfer counters.
type Service struct {
	Termination *domain.Termination
	Recorder    domain.TransferRecorder
}

// NewService creates a new Service instance bound to one run's
// termination state.
func NewService(termination *domain.Termination, recorder domain.TransferRecorder) *Service {
	return &Service{
		Termination: termination,
		Recorder:    recorder,
	}
}

// Execute attempts to move source.TransferAmount from source to dest.
// Logic (entirely under both account locks):
//  1. If termination is already flagged, fail without mutating anything
//  2. If the source balance cannot cover the transfer amount, this call
//     flags termination with the insufficient-funds reason and fails
//  3. Otherwise move the amount, bump the source's success counter, and
//     emit a TransferRecord
//
// A balance exactly equal to the transfer amount is sufficient: the
// failure check is strict less-than.
func (s *Service) Execute(source, dest *domain.Account) error {
	lockOrdered(source, dest)
	defer unlockAll(source, dest)

	if s.Termination.Terminated() {
		return ErrTerminated
	}

	if source.Balance.LessThan(source.TransferAmount) {
		// Flagging while still holding both locks guarantees no other
		// transfer on this pair can interleave a conflicting reason for
		// the same failure event.
		s.Termination.Signal(domain.InsufficientFundsReason(source.ID))
		return ErrInsufficientFunds
	}

	source.Balance = source.Balance.Sub(source.TransferAmount)
	dest.Balance = dest.Balance.Add(source.TransferAmount)
	source.SuccessfulTransfers++

	s.Recorder.Record(domain.TransferRecord{
		ID:            uuid.New(),
		SourceID:      source.ID,
		DestID:        dest.ID,
		Amount:        source.TransferAmount,
		SourceBalance: source.Balance,
		Timestamp:     time.Now(),
	})

	return nil
}

// lockOrdered acquires every account's lock in ascending ID order.
// Concurrent calls over the same accounts agree on one physical
// acquisition order regardless of which account is the source, which
// rules out the circular wait between opposite-direction transfers.
func lockOrdered(accounts ...*domain.Account) {
	ordered := make([]*domain.Account, len(accounts))
	copy(ordered, accounts)

	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].ID < ordered[j].ID
	})

	for _, a := range ordered {
		a.Lock()
	}
}

// unlockAll releases the accounts' locks. Order does not matter for
// release.
func unlockAll(accounts ...*domain.Account) {
	for _, a := range accounts {
		a.Unlock()
	}
}
