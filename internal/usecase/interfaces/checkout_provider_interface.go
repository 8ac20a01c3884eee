package interfaces

import (
	"context"

	"github.com/gbzindabb123-ops/mlb2/internal/domain/entities"
)

//go:generate mockgen -source=checkout_provider_interface.go -destination=mocks/checkout_provider_interface_mock.go -package=mocks

// IPreferenceProvider abstracts a redirect-checkout provider that takes the
// full item list (Mercado Pago Checkout Pro).
type IPreferenceProvider interface {
	CreatePreference(ctx context.Context, cart entities.Cart, buyer entities.Buyer) (entities.PayableOrder, error)
}

// IOrderProvider abstracts an order-based provider with a separate capture
// step (PayPal Orders v2). CreateOrder receives only the cart; the provider
// computes and submits the aggregate total.
type IOrderProvider interface {
	CreateOrder(ctx context.Context, cart entities.Cart) (entities.PayableOrder, error)
	CaptureOrder(ctx context.Context, orderID string) (entities.CaptureResult, error)
}

// IPaymentStatusSource re-queries the provider for the authoritative state of
// a payment. Webhook handling confirms notifications through it instead of
// trusting the delivered payload.
type IPaymentStatusSource interface {
	GetPaymentStatus(ctx context.Context, paymentID string) (string, error)
}
