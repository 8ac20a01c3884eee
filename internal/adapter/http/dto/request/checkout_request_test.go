package request

import "testing"

func TestCheckoutRequest_ResolveCart(t *testing.T) {
	r := CheckoutRequest{
		Items: []LineItemRequest{
			{Title: "A", UnitPrice: 10, Quantity: 2},
			{Title: "B", UnitPrice: 5.5, Quantity: 1},
		},
	}

	cart := r.ResolveCart()
	if len(cart) != 2 {
		t.Fatalf("expected 2 items, got %d", len(cart))
	}
	if cart[0].Title != "A" || cart[0].UnitPrice != 10 || cart[0].Quantity != 2 {
		t.Fatalf("item 0 not preserved: %+v", cart[0])
	}
	if cart[1].Title != "B" || cart[1].UnitPrice != 5.5 || cart[1].Quantity != 1 {
		t.Fatalf("item 1 not preserved: %+v", cart[1])
	}

	empty := CheckoutRequest{}
	if got := empty.ResolveCart(); len(got) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(got))
	}
}

func TestCheckoutRequest_ResolveBuyer(t *testing.T) {
	r := CheckoutRequest{Buyer: &BuyerRequest{Name: "Ana", Email: "ana@test.com"}}
	buyer := r.ResolveBuyer()
	if buyer.Name != "Ana" || buyer.Email != "ana@test.com" {
		t.Fatalf("unexpected buyer: %+v", buyer)
	}

	r2 := CheckoutRequest{}
	if got := r2.ResolveBuyer(); got.Name != "" || got.Email != "" {
		t.Fatalf("expected empty buyer, got %+v", got)
	}
}
