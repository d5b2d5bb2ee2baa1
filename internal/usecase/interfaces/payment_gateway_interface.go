package interfaces

import (
	"context"

	"pazes_checkout/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Asaas).
//
// The checkout use case creates customers/charges through it; the webhook use
// case reads customer identity and installment-group data back when a
// notification does not embed them.
type IPaymentGateway interface {
	CreateCustomer(ctx context.Context, profile entities.CustomerProfile) (customerRef string, err error)
	CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentCharge, error)
	GetCustomer(ctx context.Context, customerRef string) (entities.CustomerProfile, error)
	GetInstallmentGroup(ctx context.Context, groupID string) (installmentCount int, err error)
}
