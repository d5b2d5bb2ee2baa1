package handlers

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	response "pazes_checkout/internal/adapter/http/dto/response"
	"pazes_checkout/internal/usecase"
	"pazes_checkout/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives payment notifications from the gateway.
//
// Authentication happens before the body is touched; past that gate the
// handler always acknowledges with 200, whatever reconciliation decides,
// because a non-success status would make the gateway re-deliver the
// notification.

type WebhookHandler struct {
	usecase       usecase.IWebhookUseCase
	expectedToken string
	tokenHeader   string
}

func NewWebhookHandler(uc usecase.IWebhookUseCase, expectedToken, tokenHeader string) *WebhookHandler {
	return &WebhookHandler{usecase: uc, expectedToken: expectedToken, tokenHeader: tokenHeader}
}

// Receive authenticates and reconciles one gateway notification.
//
// @Summary      Receive a payment webhook
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.WebhookResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /webhook [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	if !h.authorized(c.Request.Header) {
		log.Printf("[webhook][handler] unauthorized notification from %s", c.ClientIP())
		appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		// The sender cannot fix a broken body by retrying; acknowledge it.
		log.Printf("[webhook][handler] body read failed err=%v", err)
		c.JSON(http.StatusOK, response.FromReconciliationOutcome(usecase.ReconciliationOutcome{Ignored: true, Reason: usecase.ReasonBadPayload}))
		return
	}

	out := h.usecase.Reconcile(c.Request.Context(), raw)
	c.JSON(http.StatusOK, response.FromReconciliationOutcome(out))
}

// authorized matches the configured header case- and separator-insensitively:
// intermediaries are known to normalize hyphens, underscores and casing. The
// token itself is compared in constant time and never logged.
func (h *WebhookHandler) authorized(header http.Header) bool {
	if h.expectedToken == "" {
		return false
	}

	want := normalizeHeaderName(h.tokenHeader)
	for name, values := range header {
		if normalizeHeaderName(name) != want {
			continue
		}
		for _, v := range values {
			if subtle.ConstantTimeCompare([]byte(v), []byte(h.expectedToken)) == 1 {
				return true
			}
		}
	}
	return false
}

func normalizeHeaderName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "-", "")
	return strings.ReplaceAll(name, "_", "")
}
