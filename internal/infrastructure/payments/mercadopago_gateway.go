package payments

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/google/uuid"
	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/gbzindabb123-ops/mlb2/internal/domain/entities"
	"github.com/gbzindabb123-ops/mlb2/internal/infrastructure/config"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// Narrow views over the SDK clients, enough for this gateway and easy to stub
// in tests.
type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

type paymentGetter interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

// MercadoPagoGateway creates Checkout Pro preferences and re-queries payment
// state for webhook confirmation. The access token is fixed at construction;
// the SDK signs every call with it.
type MercadoPagoGateway struct {
	preferences   preferenceCreator
	payments      paymentGetter
	webBaseURL    string
	publicBaseURL string
}

func NewMercadoPagoGateway(cfg config.Config) (*MercadoPagoGateway, error) {
	if !cfg.MercadoPago.Configured() {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := mpconfig.New(cfg.MercadoPago.AccessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences:   preference.NewClient(sdkCfg),
		payments:      payment.NewClient(sdkCfg),
		webBaseURL:    cfg.WebBaseURL,
		publicBaseURL: cfg.PublicBaseURL,
	}, nil
}

// CreatePreference builds a Checkout Pro preference for the cart and returns
// the redirect URLs the buyer uses to pay.
func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, cart entities.Cart, buyer entities.Buyer) (entities.PayableOrder, error) {
	items := make([]preference.ItemRequest, 0, len(cart))
	for _, item := range cart {
		items = append(items, preference.ItemRequest{
			Title:      item.Title,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
			CurrencyID: entities.Currency,
		})
	}

	req := preference.Request{
		Items: items,
		Payer: &preference.PayerRequest{
			Name:  buyer.Name,
			Email: buyer.Email,
		},
		BackURLs: &preference.BackURLsRequest{
			Success: g.webBaseURL + "/?paid=success",
			Pending: g.webBaseURL + "/?paid=pending",
			Failure: g.webBaseURL + "/?paid=failure",
		},
		AutoReturn:        "approved",
		ExternalReference: uuid.NewString(),
	}
	if g.publicBaseURL != "" {
		req.NotificationURL = g.publicBaseURL + "/api/mercadopago/webhook"
	}

	log.Printf("[payment][gateway] preference create start items=%d external_reference=%s", len(items), req.ExternalReference)
	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] preference create failed err=%v", err)
		return entities.PayableOrder{}, &ProviderError{Provider: entities.ProviderMercadoPago, Message: err.Error()}
	}
	log.Printf("[payment][gateway] preference create success preference_id=%s", resp.ID)

	return entities.PayableOrder{
		Provider:           entities.ProviderMercadoPago,
		ID:                 resp.ID,
		RedirectURL:        resp.InitPoint,
		SandboxRedirectURL: resp.SandboxInitPoint,
	}, nil
}

// GetPaymentStatus fetches the authoritative state of a payment. Used by the
// webhook flow so notification payloads are never trusted directly.
func (g *MercadoPagoGateway) GetPaymentStatus(ctx context.Context, paymentID string) (string, error) {
	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return "", &ProviderError{Provider: entities.ProviderMercadoPago, Message: "invalid payment id: " + paymentID}
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] payment get failed payment_id=%s err=%v", paymentID, err)
		return "", &ProviderError{Provider: entities.ProviderMercadoPago, Message: err.Error()}
	}
	log.Printf("[payment][gateway] payment get success payment_id=%s status=%s", paymentID, resp.Status)
	return resp.Status, nil
}
