package domain

import (
	"fmt"
	"sync"
)

// Termination reasons reported by a finished run.
const (
	ReasonDeadlineExpired = "Global deadline expired"
	ReasonRunCancelled    = "Run cancelled"
)

// InsufficientFundsReason returns the termination reason recorded when
// an account cannot cover its configured transfer amount.
func InsufficientFundsReason(accountID int) string {
	return fmt.Sprintf("Insufficient funds in Account %d", accountID)
}

// Termination is the shared stop signal for a simulation run, readable
// by both workers and the supervisor's deadline timer. The first
// Signal wins: its reason is the one reported, and every later call is
// a no-op. The zero value is not usable; use NewTermination.
type Termination struct {
	mu         sync.Mutex
	terminated bool
	reason     string
	done       chan struct{}
}

// NewTermination creates the termination state for one run.
func NewTermination() *Termination {
	return &Termination{done: make(chan struct{})}
}

// Signal flags termination with the given reason. It reports whether
// this call was the one that transitioned the state.
func (t *Termination) Signal(reason string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.terminated {
		return false
	}
	t.terminated = true
	t.reason = reason
	close(t.done)
	return true
}

// Terminated reports whether termination has been flagged.
func (t *Termination) Terminated() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.terminated
}

// Reason returns the recorded termination reason, or the empty string
// while the run is still live.
func (t *Termination) Reason() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.reason
}

// Done returns a channel that is closed once termination has been
// flagged, whoever flagged it.
func (t *Termination) Done() <-chan struct{} {
	return t.done
}
