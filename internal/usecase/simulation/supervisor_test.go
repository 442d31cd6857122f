package simulation

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/transfersim/internal/domain"
)

func TestRun_DeadlineExpired(t *testing.T) {
	cfg := Config{
		Account1: AccountConfig{InitialBalance: decimal.NewFromInt(100), TransferAmount: decimal.NewFromInt(10)},
		Account2: AccountConfig{InitialBalance: decimal.NewFromInt(100), TransferAmount: decimal.NewFromInt(10)},
		Period:   time.Millisecond,
		Deadline: 100 * time.Millisecond,
	}

	report := NewSupervisor(cfg, nopRecorder{}).Run(context.Background())

	assert.Equal(t, domain.ReasonDeadlineExpired, report.TerminationReason)
	assert.True(t, report.TotalBalance().Equal(decimal.NewFromInt(200)),
		"transfers move funds, never create or destroy them")
	assert.Greater(t, report.Account1.SuccessfulTransfers, int64(0))
	assert.Greater(t, report.Account2.SuccessfulTransfers, int64(0))
}

func TestRun_InsufficientFunds(t *testing.T) {
	// Account 2 transfers nothing, so account 1 drains deterministically:
	// 15 -> 5, then 5 < 10 stops the run.
	cfg := Config{
		Account1: AccountConfig{InitialBalance: decimal.NewFromInt(15), TransferAmount: decimal.NewFromInt(10)},
		Account2: AccountConfig{InitialBalance: decimal.NewFromInt(100), TransferAmount: decimal.Zero},
		Period:   time.Millisecond,
		Deadline: time.Minute,
	}

	start := time.Now()
	report := NewSupervisor(cfg, nopRecorder{}).Run(context.Background())

	require.Less(t, time.Since(start), 10*time.Second, "run must stop well before the deadline")
	assert.Equal(t, "Insufficient funds in Account 1", report.TerminationReason)
	assert.True(t, report.Account1.Balance.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, int64(1), report.Account1.SuccessfulTransfers)
	assert.True(t, report.TotalBalance().Equal(decimal.NewFromInt(115)))
	assert.True(t, report.Account1.Balance.GreaterThanOrEqual(decimal.Zero))
}

func TestRun_ContextCancelled(t *testing.T) {
	cfg := Config{
		Account1: AccountConfig{InitialBalance: decimal.NewFromInt(1000), TransferAmount: decimal.NewFromInt(1)},
		Account2: AccountConfig{InitialBalance: decimal.NewFromInt(1000), TransferAmount: decimal.NewFromInt(1)},
		Period:   time.Millisecond,
		Deadline: time.Minute,
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	report := NewSupervisor(cfg, nopRecorder{}).Run(ctx)

	assert.Equal(t, domain.ReasonRunCancelled, report.TerminationReason)
	assert.True(t, report.TotalBalance().Equal(decimal.NewFromInt(2000)))
}

func TestReport_TotalBalance(t *testing.T) {
	report := Report{
		Account1: domain.AccountSnapshot{Balance: decimal.NewFromInt(30)},
		Account2: domain.AccountSnapshot{Balance: decimal.NewFromInt(70)},
	}

	assert.True(t, report.TotalBalance().Equal(decimal.NewFromInt(100)))
}
