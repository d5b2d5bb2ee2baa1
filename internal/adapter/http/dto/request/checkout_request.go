package request

import (
	"strings"

	"pazes_checkout/internal/domain/entities"
)

// CheckoutRequest is the enrollment form payload. Field names follow the
// public form contract; optional fields cover the form variants in the wild
// (with/without address, coupon, traffic source).
type CheckoutRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Cpf           string `json:"cpf" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Modality      string `json:"modality" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	Installments  int    `json:"installments"`
	Coupon        string `json:"coupon"`
	PostalCode    string `json:"postalCode"`
	AddressNumber string `json:"addressNumber"`
	TrafficSource string `json:"source"`

	Contract        bool   `json:"contract"`
	ContractVersion string `json:"contractVersion"`
	ContractHash    string `json:"contractHash"`
}

// ToCommand translates the wire payload into the domain command. The client
// IP comes from the connection, not the body.
func (r CheckoutRequest) ToCommand(clientIP string) entities.CheckoutCommand {
	installments := r.Installments
	if installments < 1 {
		installments = 1
	}

	return entities.CheckoutCommand{
		Customer: entities.CustomerProfile{
			Name:        strings.TrimSpace(r.Name),
			Email:       strings.TrimSpace(r.Email),
			CpfCnpj:     strings.TrimSpace(r.Cpf),
			MobilePhone: strings.TrimSpace(r.Phone),
			PostalCode:  strings.TrimSpace(r.PostalCode),
			AddressNum:  strings.TrimSpace(r.AddressNumber),
		},
		Modality:         entities.Modality(strings.TrimSpace(r.Modality)),
		BillingType:      entities.BillingType(strings.ToUpper(strings.TrimSpace(r.PaymentMethod))),
		InstallmentCount: installments,
		CouponCode:       strings.TrimSpace(r.Coupon),
		Contract: entities.ContractAcceptance{
			Accepted:    r.Contract,
			Version:     strings.TrimSpace(r.ContractVersion),
			ContentHash: strings.TrimSpace(r.ContractHash),
		},
		ClientIP:      clientIP,
		TrafficSource: strings.TrimSpace(r.TrafficSource),
	}
}
