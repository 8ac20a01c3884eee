package response

import (
	"testing"

	"github.com/gbzindabb123-ops/mlb2/internal/domain/entities"
)

func TestFromPreference(t *testing.T) {
	got := FromPreference(entities.PayableOrder{
		Provider:           entities.ProviderMercadoPago,
		ID:                 "pref-1",
		RedirectURL:        "https://mp.test/init",
		SandboxRedirectURL: "https://mp.test/sandbox",
	})
	if got.ID != "pref-1" || got.InitPoint != "https://mp.test/init" || got.SandboxInitPoint != "https://mp.test/sandbox" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestFromOrder(t *testing.T) {
	got := FromOrder(entities.PayableOrder{
		Provider:    entities.ProviderPayPal,
		ID:          "ORD-1",
		RedirectURL: "https://paypal.test/approve/ORD-1",
	})
	if got.ID != "ORD-1" || got.ApproveURL != "https://paypal.test/approve/ORD-1" {
		t.Fatalf("unexpected response: %+v", got)
	}
}
