package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"pazes_checkout/internal/domain/entities"
	"pazes_checkout/internal/usecase/interfaces"
)

var ErrMissingAsaasAPIKey = errors.New("missing ASAAS_API_KEY")

const (
	DefaultBaseURL = "https://sandbox.asaas.com/api/v3"

	accessTokenHeader = "access_token"
	defaultTimeout    = 30 * time.Second
)

// AsaasGateway is the REST client for the Asaas payment API. Asaas publishes
// no Go SDK; the client covers only the endpoints this service uses.

type AsaasGateway struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ interfaces.IPaymentGateway = (*AsaasGateway)(nil)

// NewAsaasGateway fails without an API key: a checkout service that cannot
// charge is a configuration error at startup, not a per-request one.
func NewAsaasGateway(baseURL, apiKey string) (*AsaasGateway, error) {
	if apiKey == "" {
		log.Printf("[payment][gateway] missing ASAAS_API_KEY")
		return nil, ErrMissingAsaasAPIKey
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	log.Printf("[payment][gateway] Asaas client initialized base_url=%s", baseURL)

	return &AsaasGateway{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

type customerPayload struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	CpfCnpj       string `json:"cpfCnpj"`
	MobilePhone   string `json:"mobilePhone"`
	PostalCode    string `json:"postalCode,omitempty"`
	AddressNumber string `json:"addressNumber,omitempty"`
}

type customerResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	CpfCnpj       string `json:"cpfCnpj"`
	MobilePhone   string `json:"mobilePhone"`
	PostalCode    string `json:"postalCode"`
	AddressNumber string `json:"addressNumber"`
}

type paymentCallback struct {
	SuccessURL   string `json:"successUrl"`
	AutoRedirect bool   `json:"autoRedirect"`
}

type paymentPayload struct {
	Customer          string           `json:"customer,omitempty"`
	CustomerProfile   *customerPayload `json:"customerData,omitempty"`
	BillingType       string           `json:"billingType"`
	Value             float64          `json:"value"`
	DueDate           string           `json:"dueDate"`
	Description       string           `json:"description"`
	ExternalReference string           `json:"externalReference"`
	InstallmentCount  int              `json:"installmentCount,omitempty"`
	InstallmentValue  float64          `json:"installmentValue,omitempty"`
	Callback          *paymentCallback `json:"callback,omitempty"`
	RemoteIP          string           `json:"remoteIp,omitempty"`
}

type paymentResponse struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	InvoiceURL string `json:"invoiceUrl"`
}

type installmentResponse struct {
	ID               string `json:"id"`
	InstallmentCount int    `json:"installmentCount"`
}

func (g *AsaasGateway) CreateCustomer(ctx context.Context, profile entities.CustomerProfile) (string, error) {
	payload := toCustomerPayload(profile)

	var resp customerResponse
	if err := g.do(ctx, http.MethodPost, "/customers", payload, &resp); err != nil {
		return "", err
	}
	log.Printf("[payment][gateway] customer created customer_ref=%s", resp.ID)
	return resp.ID, nil
}

func (g *AsaasGateway) CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentCharge, error) {
	payload := paymentPayload{
		Customer:          req.CustomerRef,
		BillingType:       string(req.BillingType),
		Value:             req.Value,
		DueDate:           req.DueDate,
		Description:       req.Description,
		ExternalReference: req.ExternalReference,
		InstallmentCount:  req.InstallmentCount,
		InstallmentValue:  req.InstallmentValue,
		RemoteIP:          req.RemoteIP,
	}
	if req.Customer != nil {
		p := toCustomerPayload(*req.Customer)
		payload.CustomerProfile = &p
	}
	if req.SuccessURL != "" {
		payload.Callback = &paymentCallback{SuccessURL: req.SuccessURL, AutoRedirect: true}
	}

	var resp paymentResponse
	if err := g.do(ctx, http.MethodPost, "/payments", payload, &resp); err != nil {
		return entities.PaymentCharge{}, err
	}
	log.Printf("[payment][gateway] payment created payment_id=%s status=%s", resp.ID, resp.Status)

	return entities.PaymentCharge{ID: resp.ID, InvoiceURL: resp.InvoiceURL, Status: resp.Status}, nil
}

func (g *AsaasGateway) GetCustomer(ctx context.Context, customerRef string) (entities.CustomerProfile, error) {
	var resp customerResponse
	if err := g.do(ctx, http.MethodGet, "/customers/"+customerRef, nil, &resp); err != nil {
		return entities.CustomerProfile{}, err
	}

	return entities.CustomerProfile{
		Name:        resp.Name,
		Email:       resp.Email,
		CpfCnpj:     resp.CpfCnpj,
		MobilePhone: resp.MobilePhone,
		PostalCode:  resp.PostalCode,
		AddressNum:  resp.AddressNumber,
	}, nil
}

func (g *AsaasGateway) GetInstallmentGroup(ctx context.Context, groupID string) (int, error) {
	var resp installmentResponse
	if err := g.do(ctx, http.MethodGet, "/installments/"+groupID, nil, &resp); err != nil {
		return 0, err
	}
	return resp.InstallmentCount, nil
}

// do runs one request against the API. Non-2xx answers are wrapped with the
// status and (truncated) body so the caller can classify and log them; the
// API key itself never appears in an error.
func (g *AsaasGateway) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("asaas: %s %s: marshal request: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("asaas: %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(accessTokenHeader, g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("asaas: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return fmt.Errorf("asaas: %s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("asaas: %s %s: status=%d body=%s", method, path, resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("asaas: %s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}

func toCustomerPayload(profile entities.CustomerProfile) customerPayload {
	return customerPayload{
		Name:          profile.Name,
		Email:         profile.Email,
		CpfCnpj:       profile.CpfCnpj,
		MobilePhone:   profile.MobilePhone,
		PostalCode:    profile.PostalCode,
		AddressNumber: profile.AddressNum,
	}
}
