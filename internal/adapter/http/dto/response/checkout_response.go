package response

import (
	"github.com/gbzindabb123-ops/mlb2/internal/domain/entities"
)

// PreferenceResponse is the Mercado Pago create-preference reply, keeping the
// field names the storefront already consumes.
type PreferenceResponse struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point,omitempty"`
}

func FromPreference(o entities.PayableOrder) PreferenceResponse {
	return PreferenceResponse{
		ID:               o.ID,
		InitPoint:        o.RedirectURL,
		SandboxInitPoint: o.SandboxRedirectURL,
	}
}

// OrderResponse is the PayPal create-order reply.
type OrderResponse struct {
	ID         string `json:"id"`
	ApproveURL string `json:"approve_url"`
}

func FromOrder(o entities.PayableOrder) OrderResponse {
	return OrderResponse{
		ID:         o.ID,
		ApproveURL: o.RedirectURL,
	}
}
