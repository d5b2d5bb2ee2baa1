package handlers

import (
	"errors"
	"log"
	"net/http"

	request "pazes_checkout/internal/adapter/http/dto/request"
	response "pazes_checkout/internal/adapter/http/dto/response"
	"pazes_checkout/internal/domain/contract"
	"pazes_checkout/internal/domain/pricing"
	"pazes_checkout/internal/usecase"
	"pazes_checkout/pkg"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles HTTP requests for course-enrollment checkouts.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// Checkout creates a charge for an enrollment and returns the invoice URL.
//
// @Summary      Create an enrollment checkout
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CheckoutRequest  true  "Checkout payload"
// @Success      200      {object}  response.CheckoutResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[checkout][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Todos os campos são obrigatórios.", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	paymentURL, err := h.usecase.Checkout(c.Request.Context(), payload.ToCommand(c.ClientIP()))
	if err != nil {
		log.Printf("[checkout][handler] checkout failed err=%v", err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[checkout][handler] checkout success")
	c.JSON(http.StatusOK, response.CheckoutResponse{PaymentURL: paymentURL})
}

// mapCheckoutError translates use-case sentinels into the user-facing error
// envelope. Gateway causes stay in the logs; clients get the generic message.
func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingRequiredFields):
		return pkg.NewDomainErrorSimple("MISSING_FIELDS", "Todos os campos são obrigatórios.", http.StatusBadRequest)
	case errors.Is(err, contract.ErrContractNotAccepted),
		errors.Is(err, contract.ErrContractVersionMismatch),
		errors.Is(err, contract.ErrContractIntegrityMismatch):
		return pkg.NewDomainErrorSimple("CONTRACT_REJECTED", "Você deve aceitar a versão mais recente do contrato.", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrUnknownModality):
		return pkg.NewDomainErrorSimple("INVALID_MODALITY", "Modalidade de curso inválida.", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrInstallmentLimitExceeded):
		return pkg.NewDomainErrorSimple("INSTALLMENT_LIMIT", "O número máximo de parcelas é 6.", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrUnknownPriceEntry):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_OPTION", "Opção de pagamento ou parcela inválida.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInstallmentPlan):
		return pkg.NewDomainErrorSimple("INVALID_INSTALLMENT_PLAN", "Parcelamento só é permitido para Cartão de Crédito.", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("GATEWAY_ERROR", "Não foi possível gerar o link de pagamento. Tente novamente mais tarde.", err, http.StatusInternalServerError)
	}
}
