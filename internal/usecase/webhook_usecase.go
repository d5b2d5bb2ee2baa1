package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"pazes_checkout/internal/domain/attribution"
	"pazes_checkout/internal/domain/entities"
	"pazes_checkout/internal/usecase/interfaces"
)

// Ignore reasons echoed back to the gateway in the acknowledgement body.
const (
	ReasonBadPayload            = "bad payload"
	ReasonEventNotProcessed     = "event type not processed"
	ReasonSubsequentInstallment = "subsequent installment"
	ReasonAlreadyProcessed      = "already processed"
)

// ReconciliationOutcome describes what the reconciler did with a
// notification. The webhook sender always receives a success acknowledgement
// regardless; the outcome only shapes the body.
type ReconciliationOutcome struct {
	Processed bool
	Ignored   bool
	Reason    string
}

func processed() ReconciliationOutcome { return ReconciliationOutcome{Processed: true} }
func ignored(reason string) ReconciliationOutcome {
	return ReconciliationOutcome{Ignored: true, Reason: reason}
}

// IWebhookUseCase encapsulates webhook reconciliation past the
// authentication gate.
type IWebhookUseCase interface {
	Reconcile(ctx context.Context, rawBody []byte) ReconciliationOutcome
}

// WebhookUseCase classifies gateway notifications, deduplicates installment
// re-deliveries and triggers the post-payment side effects exactly once per
// sale.
//
// The gateway sends one notification per status transition per installment:
// an N-installment sale produces N confirmations over time. Side effects fire
// on the first installment only; every later installment is acknowledged and
// ignored.
type WebhookUseCase struct {
	gateway       interfaces.IPaymentGateway
	processedRepo interfaces.IProcessedSaleRepository
	dispatcher    *SideEffectDispatcher
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

// NewWebhookUseCase wires the reconciler. processedRepo may be nil: the
// stateless installment-number dedup then stands alone, which matches the
// gateway's contract as long as re-delivered first installments keep their
// installment number.
func NewWebhookUseCase(gateway interfaces.IPaymentGateway, processedRepo interfaces.IProcessedSaleRepository, dispatcher *SideEffectDispatcher) *WebhookUseCase {
	return &WebhookUseCase{gateway: gateway, processedRepo: processedRepo, dispatcher: dispatcher}
}

// Reconcile never fails from the caller's perspective: a notification the
// service cannot handle is logged and acknowledged, because a non-success
// response would make the sender re-deliver it forever.
func (u *WebhookUseCase) Reconcile(ctx context.Context, rawBody []byte) ReconciliationOutcome {
	var notification entities.PaymentNotification
	if err := json.Unmarshal(rawBody, &notification); err != nil {
		log.Printf("[webhook][usecase] malformed payload err=%v", err)
		return ignored(ReasonBadPayload)
	}

	payment := notification.Payment
	log.Printf("[webhook][usecase] received event=%s payment_id=%s status=%s installment_number=%d", notification.Event, payment.ID, payment.Status, payment.InstallmentNumber)

	if notification.Event != entities.EventPaymentConfirmed && notification.Event != entities.EventPaymentReceived {
		return ignored(ReasonEventNotProcessed)
	}

	// The gateway notifies every installment of a multi-installment sale.
	// Side effects already fired when the first installment confirmed.
	if payment.InstallmentNumber > 1 {
		log.Printf("[webhook][usecase] skipping installment %d of payment %s", payment.InstallmentNumber, payment.ID)
		return ignored(ReasonSubsequentInstallment)
	}

	if outcome, done := u.markProcessed(ctx, payment.SaleKey()); done {
		return outcome
	}

	customer, err := u.gateway.GetCustomer(ctx, payment.CustomerRef)
	if err != nil {
		log.Printf("[webhook][usecase] customer lookup failed payment_id=%s customer_ref=%s err=%v", payment.ID, payment.CustomerRef, err)
		return ReconciliationOutcome{}
	}

	installmentCount := u.resolveInstallmentCount(ctx, payment)
	attr := attribution.Decode(payment.ExternalReference)

	u.dispatcher.Dispatch(ctx, customer, payment, attr, installmentCount)

	log.Printf("[webhook][usecase] processed event=%s payment_id=%s status=%s", notification.Event, payment.ID, payment.Status)
	return processed()
}

// markProcessed claims the sale in the durable idempotency store when one is
// configured. Store errors fail open: reconciliation must not depend on the
// store being reachable, the stateless dedup above still holds.
func (u *WebhookUseCase) markProcessed(ctx context.Context, saleID string) (ReconciliationOutcome, bool) {
	if u.processedRepo == nil || saleID == "" {
		return ReconciliationOutcome{}, false
	}
	err := u.processedRepo.MarkProcessed(ctx, saleID)
	if err == nil {
		return ReconciliationOutcome{}, false
	}
	if errors.Is(err, interfaces.ErrSaleAlreadyProcessed) {
		log.Printf("[webhook][usecase] sale already processed sale_id=%s", saleID)
		return ignored(ReasonAlreadyProcessed), true
	}
	log.Printf("[webhook][usecase] processed-sale store unavailable sale_id=%s err=%v", saleID, err)
	return ReconciliationOutcome{}, false
}

func (u *WebhookUseCase) resolveInstallmentCount(ctx context.Context, payment entities.NotificationPayment) int {
	if payment.InstallmentGroup == "" {
		return 1
	}
	count, err := u.gateway.GetInstallmentGroup(ctx, payment.InstallmentGroup)
	if err != nil {
		log.Printf("[webhook][usecase] installment group lookup failed group_id=%s err=%v", payment.InstallmentGroup, err)
		return 1
	}
	return count
}
