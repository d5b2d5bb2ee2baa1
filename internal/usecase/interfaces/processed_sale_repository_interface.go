package interfaces

import (
	"context"
	"errors"
)

// ErrSaleAlreadyProcessed reports that another notification already claimed
// the sale's side effects.
var ErrSaleAlreadyProcessed = errors.New("sale already processed")

// IProcessedSaleRepository is the optional durable idempotency store backing
// webhook deduplication. The stateless installment-number check works without
// it; marking processed sales guards against a gateway re-delivering a
// first-installment notification with the number omitted.
type IProcessedSaleRepository interface {
	// MarkProcessed atomically records the sale as handled, returning
	// ErrSaleAlreadyProcessed when it was recorded before.
	MarkProcessed(ctx context.Context, saleID string) error
}
