package entities

// Modality is the delivery format of the course and the primary axis of the
// price table.

type Modality string

const (
	ModalityOnline     Modality = "Online"
	ModalityPresencial Modality = "Presencial"
)

// BillingType is the settlement instrument accepted by the payment gateway.
//
// Installment-sensitive pricing exists only for BillingTypeCreditCard; the
// other types settle at a single fixed amount.

type BillingType string

const (
	BillingTypeBoleto     BillingType = "BOLETO"
	BillingTypePix        BillingType = "PIX"
	BillingTypeCreditCard BillingType = "CREDIT_CARD"
	BillingTypeDebitCard  BillingType = "DEBIT_CARD"
	BillingTypeUndefined  BillingType = "UNDEFINED"
)

// ContractAcceptance binds the buyer to an exact, auditable contract revision.
//
// Version must equal the single currently-published version and ContentHash
// must equal the SHA-256 hex digest of the published contract document.
type ContractAcceptance struct {
	Accepted    bool   `json:"accepted"`
	Version     string `json:"version"`
	ContentHash string `json:"content_hash"`
}

// CustomerProfile carries the identity fields collected at checkout and
// echoed back by the gateway's customer endpoint.
type CustomerProfile struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	CpfCnpj     string `json:"cpf_cnpj"`
	MobilePhone string `json:"mobile_phone"`
	PostalCode  string `json:"postal_code,omitempty"`
	AddressNum  string `json:"address_number,omitempty"`
}

// CheckoutCommand is the fully-validated input to the checkout use case.
// It is constructed once per request and never persisted.
type CheckoutCommand struct {
	Customer         CustomerProfile
	Modality         Modality
	BillingType      BillingType
	InstallmentCount int
	CouponCode       string
	Contract         ContractAcceptance
	ClientIP         string
	Objective        string
	TrafficSource    string
}
