package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferRecord describes one successful transfer between two accounts.
type TransferRecord struct {
	ID            uuid.UUID
	SourceID      int
	DestID        int
	Amount        decimal.Decimal
	SourceBalance decimal.Decimal // source balance immediately after the transfer
	Timestamp     time.Time
}

// TransferRecorder receives a record for every successful transfer.
// Record is called while the engine holds both account locks, so
// implementations must not block and must be safe for concurrent use.
type TransferRecorder interface {
	Record(rec TransferRecord)
}
