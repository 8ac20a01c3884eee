package request

import (
	"github.com/gbzindabb123-ops/mlb2/internal/domain/entities"
)

// LineItemRequest mirrors the storefront cart line shape. Numeric fields bind
// strictly: a non-numeric unit_price or quantity fails JSON binding instead
// of silently coercing.

type LineItemRequest struct {
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

type BuyerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CheckoutRequest is the payload for both order-creation routes. Buyer is
// optional and only forwarded by the Mercado Pago route.
type CheckoutRequest struct {
	Buyer *BuyerRequest     `json:"buyer"`
	Items []LineItemRequest `json:"items"`
}

// ResolveCart converts the submitted items to the domain cart. Per-item
// validation happens downstream in Cart.Validate.
func (r CheckoutRequest) ResolveCart() entities.Cart {
	cart := make(entities.Cart, 0, len(r.Items))
	for _, item := range r.Items {
		cart = append(cart, entities.LineItem{
			Title:     item.Title,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return cart
}

// ResolveBuyer returns the buyer passthrough, empty when absent.
func (r CheckoutRequest) ResolveBuyer() entities.Buyer {
	if r.Buyer == nil {
		return entities.Buyer{}
	}
	return entities.Buyer{Name: r.Buyer.Name, Email: r.Buyer.Email}
}
