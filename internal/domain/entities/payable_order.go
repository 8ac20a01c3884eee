package entities

import "encoding/json"

// Provider identifies which external payment API produced a PayableOrder.

type Provider string

const (
	ProviderMercadoPago Provider = "mercadopago"
	ProviderPayPal      Provider = "paypal"
)

// PayableOrder is the provider-agnostic result of creating an order or
// preference upstream. RedirectURL is where the buyer completes payment;
// SandboxRedirectURL is only set by Mercado Pago.
type PayableOrder struct {
	Provider           Provider `json:"provider"`
	ID                 string   `json:"id"`
	RedirectURL        string   `json:"redirect_url,omitempty"`
	SandboxRedirectURL string   `json:"sandbox_redirect_url,omitempty"`
}

// CaptureResult wraps the provider's capture response verbatim. No
// normalization is imposed; callers echo Raw back to the client.
type CaptureResult struct {
	Raw json.RawMessage `json:"raw"`
}
