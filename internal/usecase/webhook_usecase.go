package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"

	"github.com/gbzindabb123-ops/mlb2/internal/usecase/interfaces"
)

var ErrInvalidSignature = errors.New("invalid webhook signature")

//go:generate mockgen -source=webhook_usecase.go -destination=../adapter/http/handlers/mocks/webhook_usecase_mock.go -package=mocks

// Notification is a Mercado Pago webhook delivery, already split into the
// fields needed for verification: type/action and data id from the query or
// body, plus the ts/v1 parts of the x-signature header and the x-request-id.
type Notification struct {
	Type      string
	Action    string
	DataID    string
	Timestamp string
	Signature string
	RequestID string
}

// IWebhookUseCase processes asynchronous payment notifications. The payload
// is never trusted: with a secret configured the signature is verified, and
// payment state is confirmed by re-querying the provider.

type IWebhookUseCase interface {
	Handle(ctx context.Context, n Notification) error
}

type WebhookUseCase struct {
	secret   string
	statuses interfaces.IPaymentStatusSource
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

// NewWebhookUseCase with an empty secret runs in legacy mode: notifications
// are logged and acknowledged without verification.
func NewWebhookUseCase(secret string, statuses interfaces.IPaymentStatusSource) *WebhookUseCase {
	return &WebhookUseCase{secret: secret, statuses: statuses}
}

func (u *WebhookUseCase) Handle(ctx context.Context, n Notification) error {
	log.Printf("[webhook][usecase] notification received type=%s action=%s data_id=%s", n.Type, n.Action, n.DataID)

	if u.secret != "" {
		if !u.verify(n) {
			log.Printf("[webhook][usecase] signature mismatch data_id=%s request_id=%s", n.DataID, n.RequestID)
			return ErrInvalidSignature
		}
		log.Printf("[webhook][usecase] signature verified data_id=%s", n.DataID)
	}

	if n.Type != "payment" || n.DataID == "" {
		return nil
	}
	if u.statuses == nil {
		log.Printf("[webhook][usecase] no status source configured; skipping confirmation payment_id=%s", n.DataID)
		return nil
	}

	// Confirm upstream; the delivered payload alone is never enough to act on.
	status, err := u.statuses.GetPaymentStatus(ctx, n.DataID)
	if err != nil {
		// Acknowledge anyway: the provider redelivers on its own schedule and
		// a 5xx here would not make the lookup succeed.
		log.Printf("[webhook][usecase] status confirmation failed payment_id=%s err=%v", n.DataID, err)
		return nil
	}
	log.Printf("[webhook][usecase] payment status confirmed payment_id=%s status=%s", n.DataID, status)
	return nil
}

// verify checks the x-signature v1 HMAC over the documented manifest
// template, with absent parts omitted.
func (u *WebhookUseCase) verify(n Notification) bool {
	if n.Signature == "" || n.Timestamp == "" {
		return false
	}

	manifest := ""
	if n.DataID != "" {
		manifest += "id:" + n.DataID + ";"
	}
	if n.RequestID != "" {
		manifest += "request-id:" + n.RequestID + ";"
	}
	manifest += "ts:" + n.Timestamp + ";"

	mac := hmac.New(sha256.New, []byte(u.secret))
	mac.Write([]byte(manifest))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(n.Signature))
}
