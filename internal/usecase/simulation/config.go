package simulation

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountConfig seeds one account for a run.
type AccountConfig struct {
	InitialBalance decimal.Decimal
	TransferAmount decimal.Decimal
}

// Config holds every parameter of a run. It is read once before the
// workers start and never mutated afterwards. Values are accepted
// as-is: a zero or negative transfer amount is permitted and simply
// means every transfer succeeds without moving anything of substance.
type Config struct {
	Account1 AccountConfig
	Account2 AccountConfig
	Period   time.Duration // pause between a worker's successful transfers
	Deadline time.Duration // wall-clock limit for the whole run
}
