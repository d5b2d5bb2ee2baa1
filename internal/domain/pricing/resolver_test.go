package pricing

import (
	"errors"
	"testing"

	"pazes_checkout/internal/domain/entities"
)

func newTestResolver() *Resolver {
	return NewResolver(DefaultTable(), DefaultCoupons(), 6)
}

func TestResolver_Resolve_TableValues(t *testing.T) {
	r := newTestResolver()

	cases := []struct {
		name         string
		modality     entities.Modality
		billingType  entities.BillingType
		installments int
		want         float64
	}{
		{"online boleto", entities.ModalityOnline, entities.BillingTypeBoleto, 1, 800.00},
		{"online pix", entities.ModalityOnline, entities.BillingTypePix, 1, 800.00},
		{"online credit 1x", entities.ModalityOnline, entities.BillingTypeCreditCard, 1, 830.00},
		{"online credit 3x", entities.ModalityOnline, entities.BillingTypeCreditCard, 3, 831.48},
		{"online credit 6x", entities.ModalityOnline, entities.BillingTypeCreditCard, 6, 832.99},
		{"presencial boleto", entities.ModalityPresencial, entities.BillingTypeBoleto, 1, 900.00},
		{"presencial credit 2x", entities.ModalityPresencial, entities.BillingTypeCreditCard, 2, 934.59},
		{"presencial credit 6x", entities.ModalityPresencial, entities.BillingTypeCreditCard, 6, 936.61},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.Resolve(tc.modality, tc.billingType, tc.installments, "")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %.2f, got %.2f", tc.want, got)
			}
		})
	}
}

func TestResolver_Resolve_Coupon(t *testing.T) {
	r := newTestResolver()

	t.Run("valid coupon applies fraction", func(t *testing.T) {
		got, err := r.Resolve(entities.ModalityOnline, entities.BillingTypeBoleto, 1, "PAZES15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 680.00 {
			t.Fatalf("expected 680.00, got %.2f", got)
		}
	})

	t.Run("coupon code is case-insensitive", func(t *testing.T) {
		got, err := r.Resolve(entities.ModalityOnline, entities.BillingTypeBoleto, 1, "pazes15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 680.00 {
			t.Fatalf("expected 680.00, got %.2f", got)
		}
	})

	t.Run("unknown coupon means zero discount", func(t *testing.T) {
		got, err := r.Resolve(entities.ModalityOnline, entities.BillingTypeBoleto, 1, "NOPE")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 800.00 {
			t.Fatalf("expected full price 800.00, got %.2f", got)
		}
	})

	t.Run("discount rounds half-up", func(t *testing.T) {
		r := NewResolver(Table{
			entities.ModalityOnline: {
				entities.BillingTypeBoleto: {Fixed: 100.01},
			},
		}, Coupons{"HALF": 0.5}, 6)

		got, err := r.Resolve(entities.ModalityOnline, entities.BillingTypeBoleto, 1, "HALF")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 100.01 * 0.5 = 50.005 -> 50.01
		if got != 50.01 {
			t.Fatalf("expected 50.01, got %.2f", got)
		}
	})
}

func TestResolver_Resolve_Errors(t *testing.T) {
	r := newTestResolver()

	t.Run("unknown modality", func(t *testing.T) {
		_, err := r.Resolve("Híbrido", entities.BillingTypeBoleto, 1, "")
		if !errors.Is(err, ErrUnknownModality) {
			t.Fatalf("expected ErrUnknownModality, got %v", err)
		}
	})

	t.Run("unknown billing type", func(t *testing.T) {
		_, err := r.Resolve(entities.ModalityOnline, entities.BillingTypeDebitCard, 1, "")
		if !errors.Is(err, ErrUnknownPriceEntry) {
			t.Fatalf("expected ErrUnknownPriceEntry, got %v", err)
		}
	})

	t.Run("credit card beyond configured tiers", func(t *testing.T) {
		r := NewResolver(DefaultTable(), DefaultCoupons(), 12)
		_, err := r.Resolve(entities.ModalityOnline, entities.BillingTypeCreditCard, 7, "")
		if !errors.Is(err, ErrUnknownPriceEntry) {
			t.Fatalf("expected ErrUnknownPriceEntry, got %v", err)
		}
	})

	t.Run("installments above the cap", func(t *testing.T) {
		_, err := r.Resolve(entities.ModalityOnline, entities.BillingTypeCreditCard, 7, "")
		if !errors.Is(err, ErrInstallmentLimitExceeded) {
			t.Fatalf("expected ErrInstallmentLimitExceeded, got %v", err)
		}
	})

	t.Run("installments on a fixed-price method", func(t *testing.T) {
		_, err := r.Resolve(entities.ModalityOnline, entities.BillingTypeBoleto, 2, "")
		if !errors.Is(err, ErrUnknownPriceEntry) {
			t.Fatalf("expected ErrUnknownPriceEntry, got %v", err)
		}
	})
}

func TestResolver_Resolve_Idempotent(t *testing.T) {
	r := newTestResolver()

	first, err := r.Resolve(entities.ModalityPresencial, entities.BillingTypeCreditCard, 4, "PAZES15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := r.Resolve(entities.ModalityPresencial, entities.BillingTypeCreditCard, 4, "PAZES15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("resolver is not idempotent: %.2f != %.2f", first, second)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{831.484, 831.48},
		{0.375, 0.38},
		{277.16, 277.16},
		{0, 0},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Fatalf("Round2(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}
