package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gbzindabb123-ops/mlb2/internal/usecase"
	"github.com/gbzindabb123-ops/mlb2/pkg"
)

// WebhookHandler receives Mercado Pago server-to-server notifications.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// webhookBody is the notification body shape. Mercado Pago also repeats
// type and data.id as query parameters, which take precedence when present.
type webhookBody struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Receive acknowledges a notification with 200. The only failure surfaced to
// the provider is a signature mismatch, which gets 401 so the delivery is not
// marked as accepted.
func (h *WebhookHandler) Receive(c *gin.Context) {
	n := usecase.Notification{
		Type:      c.Query("type"),
		DataID:    c.Query("data.id"),
		RequestID: c.GetHeader("x-request-id"),
	}
	if n.Type == "" {
		n.Type = c.Query("topic")
	}
	if n.DataID == "" {
		n.DataID = c.Query("id")
	}
	n.Timestamp, n.Signature = parseSignatureHeader(c.GetHeader("x-signature"))

	raw, err := c.GetRawData()
	if err == nil && len(raw) > 0 {
		log.Printf("[webhook][handler] notification body len=%d", len(raw))
		var body webhookBody
		if err := json.Unmarshal(raw, &body); err == nil {
			if n.Type == "" {
				n.Type = body.Type
			}
			n.Action = body.Action
			if n.DataID == "" {
				n.DataID = body.Data.ID
			}
		}
	}

	if err := h.usecase.Handle(c.Request.Context(), n); err != nil {
		if errors.Is(err, usecase.ErrInvalidSignature) {
			appErr := pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusUnauthorized)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Printf("[webhook][handler] handling failed err=%v", err)
	}

	c.Status(http.StatusOK)
}

// parseSignatureHeader splits "ts=...,v1=..." into its parts.
func parseSignatureHeader(header string) (ts, v1 string) {
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch strings.TrimSpace(key) {
		case "ts":
			ts = strings.TrimSpace(value)
		case "v1":
			v1 = strings.TrimSpace(value)
		}
	}
	return ts, v1
}
