package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"pazes_checkout/internal/domain/attribution"
	"pazes_checkout/internal/domain/contract"
	"pazes_checkout/internal/domain/entities"
	"pazes_checkout/internal/domain/pricing"
	"pazes_checkout/internal/usecase/interfaces"
)

var (
	ErrMissingRequiredFields      = errors.New("missing required checkout fields")
	ErrInvalidInstallmentPlan     = errors.New("installments are only allowed for credit card")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayUnavailable  = errors.New("payment gateway unavailable")
)

// Grace period between checkout submission and the first due date.
const dueDateGraceDays = 5

const courseName = `Fazendo as Pazes com o seu TDAH`

// ICheckoutUseCase encapsulates the "validate, price and charge" behavior.
type ICheckoutUseCase interface {
	Checkout(ctx context.Context, cmd entities.CheckoutCommand) (paymentURL string, err error)
}

// CheckoutUseCase validates a checkout request, verifies contract acceptance,
// resolves the price and creates the charge at the payment gateway.
//
// It holds no mutable state: resolver and guard are read-only after
// construction, so concurrent checkouts never interfere.
type CheckoutUseCase struct {
	resolver   *pricing.Resolver
	guard      *contract.Guard
	gateway    interfaces.IPaymentGateway
	successURL string
	objective  string
	now        func() time.Time
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(resolver *pricing.Resolver, guard *contract.Guard, gateway interfaces.IPaymentGateway, successURL, objective string) *CheckoutUseCase {
	return &CheckoutUseCase{
		resolver:   resolver,
		guard:      guard,
		gateway:    gateway,
		successURL: successURL,
		objective:  objective,
		now:        time.Now,
	}
}

// Checkout runs the gates in order, short-circuiting on the first failure:
// required fields, contract acceptance, installment coherence, price
// resolution, then the outbound gateway calls.
func (u *CheckoutUseCase) Checkout(ctx context.Context, cmd entities.CheckoutCommand) (string, error) {
	log.Printf("[checkout][usecase] start modality=%s billing_type=%s installments=%d", cmd.Modality, cmd.BillingType, cmd.InstallmentCount)

	if err := validateRequiredFields(cmd); err != nil {
		log.Printf("[checkout][usecase] missing required fields")
		return "", err
	}

	// The price must not be quoted to someone who has not accepted the
	// current contract revision.
	if err := u.guard.Verify(cmd.Contract); err != nil {
		log.Printf("[checkout][usecase] contract rejected err=%v", err)
		return "", err
	}

	if cmd.InstallmentCount > 1 && cmd.BillingType != entities.BillingTypeCreditCard {
		log.Printf("[checkout][usecase] installment plan rejected billing_type=%s installments=%d", cmd.BillingType, cmd.InstallmentCount)
		return "", ErrInvalidInstallmentPlan
	}

	total, err := u.resolver.Resolve(cmd.Modality, cmd.BillingType, cmd.InstallmentCount, cmd.CouponCode)
	if err != nil {
		log.Printf("[checkout][usecase] price resolution failed err=%v", err)
		return "", err
	}
	log.Printf("[checkout][usecase] price resolved total=%.2f coupon=%q", total, cmd.CouponCode)

	req := u.buildPaymentRequest(cmd, total)

	if cmd.BillingType == entities.BillingTypeCreditCard {
		customerRef, err := u.gateway.CreateCustomer(ctx, cmd.Customer)
		if err != nil {
			log.Printf("[checkout][usecase] customer creation failed err=%v", err)
			return "", classifyGatewayError(err)
		}
		req.CustomerRef = customerRef
		req.Customer = nil
		log.Printf("[checkout][usecase] customer created customer_ref=%s", customerRef)
	}

	charge, err := u.gateway.CreatePayment(ctx, req)
	if err != nil {
		log.Printf("[checkout][usecase] payment creation failed err=%v", err)
		return "", classifyGatewayError(err)
	}

	log.Printf("[checkout][usecase] success payment_id=%s external_reference=%s", charge.ID, req.ExternalReference)
	return charge.InvoiceURL, nil
}

func (u *CheckoutUseCase) buildPaymentRequest(cmd entities.CheckoutCommand, total float64) entities.PaymentRequest {
	attr := attribution.Attribution{
		Objective:     u.objective,
		TrafficSource: cmd.TrafficSource,
		Coupon:        strings.ToUpper(strings.TrimSpace(cmd.CouponCode)),
		ClientIP:      cmd.ClientIP,
	}

	customer := cmd.Customer
	req := entities.PaymentRequest{
		Customer:    &customer,
		BillingType: cmd.BillingType,
		Value:       total,
		DueDate:     u.now().UTC().AddDate(0, 0, dueDateGraceDays).Format("2006-01-02"),
		// The gateway offers no structured modality field; keep it in the
		// description free text so the webhook can recover it.
		Description:       fmt.Sprintf("Inscrição no curso %q - Modalidade %s", courseName, cmd.Modality),
		ExternalReference: attr.Encode(),
		SuccessURL:        u.successURL,
		RemoteIP:          cmd.ClientIP,
	}

	if cmd.InstallmentCount > 1 {
		req.InstallmentCount = cmd.InstallmentCount
		req.InstallmentValue = pricing.Round2(total / float64(cmd.InstallmentCount))
	}
	return req
}

func validateRequiredFields(cmd entities.CheckoutCommand) error {
	required := []string{
		cmd.Customer.Name,
		cmd.Customer.Email,
		cmd.Customer.CpfCnpj,
		cmd.Customer.MobilePhone,
		string(cmd.Modality),
		string(cmd.BillingType),
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return ErrMissingRequiredFields
		}
	}
	return nil
}

// classifyGatewayError keeps the original cause out of client responses while
// giving handlers a stable sentinel to map. The full error is already logged
// at the call site.
func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "status=401"), strings.Contains(msg, "invalid_api_key"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, "status=400"), strings.Contains(msg, "invalid_"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	default:
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnavailable, err)
	}
}
