package pricing

import "pazes_checkout/internal/domain/entities"

// MethodPrices holds the amounts configured for one (modality, billing type)
// pair. Fixed is used by single-payment methods; ByInstallments is the
// credit-card tier table keyed by installment count.
type MethodPrices struct {
	Fixed          float64
	ByInstallments map[int]float64
}

// Table is the immutable price configuration: modality → billing type →
// amounts. There is no implicit default price; a pair absent from the table
// rejects the request.
type Table map[entities.Modality]map[entities.BillingType]MethodPrices

// Coupons maps an uppercase code to a discount fraction in [0, 1).
type Coupons map[string]float64

// DefaultTable returns the published course prices.
//
// PIX settles at the boleto rate: the enrollment form offers them as a single
// "Boleto ou PIX" option.
func DefaultTable() Table {
	return Table{
		entities.ModalityOnline: {
			entities.BillingTypeBoleto: {Fixed: 800.00},
			entities.BillingTypePix:    {Fixed: 800.00},
			entities.BillingTypeCreditCard: {ByInstallments: map[int]float64{
				1: 830.00,
				2: 830.97,
				3: 831.48,
				4: 831.99,
				5: 832.49,
				6: 832.99,
			}},
		},
		entities.ModalityPresencial: {
			entities.BillingTypeBoleto: {Fixed: 900.00},
			entities.BillingTypePix:    {Fixed: 900.00},
			entities.BillingTypeCreditCard: {ByInstallments: map[int]float64{
				1: 930.00,
				2: 934.59,
				3: 935.09,
				4: 935.60,
				5: 936.11,
				6: 936.61,
			}},
		},
	}
}

// DefaultCoupons returns the active discount codes.
func DefaultCoupons() Coupons {
	return Coupons{
		"PAZES15": 0.15,
	}
}
