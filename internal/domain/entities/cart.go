package entities

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart       = errors.New("empty cart")
	ErrInvalidCartItem = errors.New("invalid cart item")
)

// Currency is fixed for the whole checkout flow; both providers receive it
// verbatim. Multi-currency is out of scope.
const Currency = "BRL"

// LineItem is one cart entry as submitted by the storefront.
//
// Monetary representation:
//   - UnitPrice carries the client-submitted value; totals are computed with
//     decimal arithmetic and only rendered to a fixed-point string at the
//     provider boundary.

type LineItem struct {
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// Cart is the ordered list of items for a single checkout request. It lives
// only for the duration of that request; nothing is persisted.
type Cart []LineItem

// Buyer is optional payer information passed through to the provider.
type Buyer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate rejects empty carts and items that cannot represent a payable
// amount (quantity < 1 or negative unit price).
func (c Cart) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCart
	}
	for i, item := range c {
		if item.Quantity < 1 {
			return fmt.Errorf("%w: item %d quantity must be >= 1", ErrInvalidCartItem, i)
		}
		if item.UnitPrice < 0 {
			return fmt.Errorf("%w: item %d unit_price must be >= 0", ErrInvalidCartItem, i)
		}
	}
	return nil
}

// Total computes sum(unit_price * quantity) in decimal arithmetic.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c {
		line := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}

// TotalFixed renders the total with exactly two decimal places, the format
// both providers expect for fixed-point string amounts.
func (c Cart) TotalFixed() string {
	return c.Total().StringFixed(2)
}
