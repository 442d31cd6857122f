package simulation

import (
	"time"

	"github.com/simaogato/transfersim/internal/domain"
	"github.com/simaogato/transfersim/internal/usecase/transfer"
)

// Worker drives transfers in one fixed direction until the run stops.
type Worker struct {
	Service     *transfer.Service
	Termination *domain.Termination
	Source      *domain.Account
	Dest        *domain.Account
	Period      time.Duration
}

// Run attempts transfers until one fails or termination is flagged.
// The first attempt happens immediately; each success is followed by a
// pause of one period, taken outside any lock. Any transfer failure is
// terminal for the worker: shared state was already updated by whoever
// decided to stop, so Run simply returns. No state is mutated after
// leaving the loop.
func (w *Worker) Run() {
	for !w.Termination.Terminated() {
		if err := w.Service.Execute(w.Source, w.Dest); err != nil {
			return
		}
		time.Sleep(w.Period)
	}
}
