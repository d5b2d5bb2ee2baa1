package pricing

import (
	"errors"
	"math"
	"strings"

	"pazes_checkout/internal/domain/entities"
)

var (
	ErrUnknownModality          = errors.New("unknown course modality")
	ErrUnknownPriceEntry        = errors.New("no price configured for this payment option")
	ErrInstallmentLimitExceeded = errors.New("installment count exceeds the configured maximum")
)

// Resolver maps (modality, billing type, installment count, coupon code) to a
// final monetary amount. It is pure and side-effect free; the tables are read
// only after construction.

type Resolver struct {
	table           Table
	coupons         Coupons
	maxInstallments int
}

func NewResolver(table Table, coupons Coupons, maxInstallments int) *Resolver {
	return &Resolver{table: table, coupons: coupons, maxInstallments: maxInstallments}
}

// Resolve returns the configured amount with the coupon discount applied,
// rounded half-up to 2 decimal places.
//
// Unknown coupon codes apply a zero discount rather than rejecting the
// checkout; see Discount.
func (r *Resolver) Resolve(modality entities.Modality, billingType entities.BillingType, installmentCount int, couponCode string) (float64, error) {
	if installmentCount > r.maxInstallments {
		return 0, ErrInstallmentLimitExceeded
	}

	methods, ok := r.table[modality]
	if !ok {
		return 0, ErrUnknownModality
	}

	prices, ok := methods[billingType]
	if !ok {
		return 0, ErrUnknownPriceEntry
	}

	var base float64
	if billingType == entities.BillingTypeCreditCard {
		base, ok = prices.ByInstallments[installmentCount]
		if !ok {
			return 0, ErrUnknownPriceEntry
		}
	} else {
		if installmentCount > 1 {
			return 0, ErrUnknownPriceEntry
		}
		base = prices.Fixed
		if base <= 0 {
			return 0, ErrUnknownPriceEntry
		}
	}

	return Round2(base * (1 - r.Discount(couponCode))), nil
}

// Discount returns the fraction for a coupon code, zero when the code is
// empty or unknown. Codes are matched case-insensitively.
//
// The lenient unknown-code policy is deliberate product behavior: a typo in
// the coupon field charges full price instead of blocking the sale.
func (r *Resolver) Discount(couponCode string) float64 {
	code := strings.ToUpper(strings.TrimSpace(couponCode))
	if code == "" {
		return 0
	}
	return r.coupons[code]
}

// MaxInstallments exposes the configured cap for validation messages.
func (r *Resolver) MaxInstallments() int { return r.maxInstallments }

// Round2 rounds half-up to 2 decimal places, matching currency minor-unit
// conventions.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
