package request

import (
	"testing"

	"pazes_checkout/internal/domain/entities"
)

func TestCheckoutRequest_ToCommand(t *testing.T) {
	r := CheckoutRequest{
		Name:            "  Maria Silva ",
		Email:           "maria@example.com",
		Cpf:             "12345678909",
		Phone:           "11999990000",
		Modality:        "Online",
		PaymentMethod:   "credit_card",
		Installments:    3,
		Coupon:          "PAZES15",
		TrafficSource:   "instagram/bio",
		Contract:        true,
		ContractVersion: "v1.0",
		ContractHash:    "abc",
	}

	cmd := r.ToCommand("203.0.113.7")

	if cmd.Customer.Name != "Maria Silva" {
		t.Fatalf("expected trimmed name, got %q", cmd.Customer.Name)
	}
	if cmd.BillingType != entities.BillingTypeCreditCard {
		t.Fatalf("expected normalized billing type, got %q", cmd.BillingType)
	}
	if cmd.InstallmentCount != 3 {
		t.Fatalf("expected 3 installments, got %d", cmd.InstallmentCount)
	}
	if !cmd.Contract.Accepted || cmd.Contract.Version != "v1.0" {
		t.Fatalf("contract acceptance not carried over: %+v", cmd.Contract)
	}
	if cmd.ClientIP != "203.0.113.7" {
		t.Fatalf("client ip not carried over: %q", cmd.ClientIP)
	}
}

func TestCheckoutRequest_ToCommand_DefaultsInstallments(t *testing.T) {
	cmd := CheckoutRequest{PaymentMethod: "BOLETO"}.ToCommand("")
	if cmd.InstallmentCount != 1 {
		t.Fatalf("expected installment count to default to 1, got %d", cmd.InstallmentCount)
	}
}
