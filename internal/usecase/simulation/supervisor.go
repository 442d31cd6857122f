package simulation

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/transfersim/internal/domain"
	"github.com/simaogato/transfersim/internal/usecase/transfer"
)

// Report is the final state of a finished run, read only after both
// workers have exited.
type Report struct {
	Account1          domain.AccountSnapshot
	Account2          domain.AccountSnapshot
	TerminationReason string
}

// TotalBalance returns the sum of both final balances. Transfers only
// move funds between the two accounts, so this always equals the sum
// of the configured initial balances.
func (r Report) TotalBalance() decimal.Decimal {
	return r.Account1.Balance.Add(r.Account2.Balance)
}

// Supervisor wires up one run: two accounts seeded from the Config,
// two opposite-direction workers, a deadline timer, and the shared
// termination state.
type Supervisor struct {
	cfg      Config
	recorder domain.TransferRecorder
}

// NewSupervisor creates a supervisor for one run.
func NewSupervisor(cfg Config, recorder domain.TransferRecorder) *Supervisor {
	return &Supervisor{
		cfg:      cfg,
		recorder: recorder,
	}
}

// Run executes one full simulation and blocks until both workers have
// observed termination and exited.
// Logic:
//  1. Seed both accounts and the shared termination state
//  2. Start one worker per direction
//  3. Race the deadline timer against worker-detected termination;
//     whichever fires first has its reason recorded
//  4. Join both workers, then snapshot the final state into the Report
//
// Cancelling ctx stops the run early with a "Run cancelled" reason.
func (s *Supervisor) Run(ctx context.Context) Report {
	term := domain.NewTermination()
	service := transfer.NewService(term, s.recorder)

	account1 := domain.NewAccount(1, s.cfg.Account1.InitialBalance, s.cfg.Account1.TransferAmount)
	account2 := domain.NewAccount(2, s.cfg.Account2.InitialBalance, s.cfg.Account2.TransferAmount)

	workers := []*Worker{
		{Service: service, Termination: term, Source: account1, Dest: account2, Period: s.cfg.Period},
		{Service: service, Termination: term, Source: account2, Dest: account1, Period: s.cfg.Period},
	}

	var wg sync.WaitGroup
	for _, w := range workers {
		wg.Add(1)
		go func(w *Worker) {
			defer wg.Done()
			w.Run()
		}(w)
	}

	deadline := time.NewTimer(s.cfg.Deadline)
	defer deadline.Stop()

	select {
	case <-deadline.C:
		term.Signal(domain.ReasonDeadlineExpired)
	case <-ctx.Done():
		term.Signal(domain.ReasonRunCancelled)
	case <-term.Done():
		// A worker detected insufficient funds first; nothing to flag.
	}

	wg.Wait()

	return Report{
		Account1:          account1.Snapshot(),
		Account2:          account2.Snapshot(),
		TerminationReason: term.Reason(),
	}
}
