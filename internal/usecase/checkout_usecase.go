package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gbzindabb123-ops/mlb2/internal/domain/entities"
	"github.com/gbzindabb123-ops/mlb2/internal/usecase/interfaces"
)

var (
	ErrProviderNotConfigured = errors.New("payment provider not configured")
	ErrInvalidOrderID        = errors.New("invalid order id")
)

//go:generate mockgen -source=checkout_usecase.go -destination=../adapter/http/handlers/mocks/checkout_usecase_mock.go -package=mocks

// ICheckoutUseCase is the single contract the HTTP layer calls to turn a cart
// into a payable order with the selected provider, and to finalize a PayPal
// order. Results are provider-agnostic; orders are not retained server-side.

type ICheckoutUseCase interface {
	CreatePreference(ctx context.Context, cart entities.Cart, buyer entities.Buyer) (entities.PayableOrder, error)
	CreateOrder(ctx context.Context, cart entities.Cart) (entities.PayableOrder, error)
	CaptureOrder(ctx context.Context, orderID string) (entities.CaptureResult, error)
}

type CheckoutUseCase struct {
	preferences interfaces.IPreferenceProvider
	orders      interfaces.IOrderProvider
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

// NewCheckoutUseCase accepts nil providers; the matching operations then fail
// with ErrProviderNotConfigured at first use, mirroring how missing
// credentials behave.
func NewCheckoutUseCase(preferences interfaces.IPreferenceProvider, orders interfaces.IOrderProvider) *CheckoutUseCase {
	return &CheckoutUseCase{preferences: preferences, orders: orders}
}

func (u *CheckoutUseCase) CreatePreference(ctx context.Context, cart entities.Cart, buyer entities.Buyer) (entities.PayableOrder, error) {
	if err := cart.Validate(); err != nil {
		log.Printf("[checkout][usecase] invalid cart err=%v", err)
		return entities.PayableOrder{}, err
	}
	if u.preferences == nil {
		log.Printf("[checkout][usecase] preference provider not configured")
		return entities.PayableOrder{}, ErrProviderNotConfigured
	}

	log.Printf("[checkout][usecase] create-preference start items=%d total=%s", len(cart), cart.TotalFixed())
	order, err := u.preferences.CreatePreference(ctx, cart, buyer)
	if err != nil {
		log.Printf("[checkout][usecase] create-preference failed err=%v", err)
		return entities.PayableOrder{}, err
	}
	log.Printf("[checkout][usecase] create-preference success provider=%s order_id=%s", order.Provider, order.ID)
	return order, nil
}

func (u *CheckoutUseCase) CreateOrder(ctx context.Context, cart entities.Cart) (entities.PayableOrder, error) {
	if err := cart.Validate(); err != nil {
		log.Printf("[checkout][usecase] invalid cart err=%v", err)
		return entities.PayableOrder{}, err
	}
	if u.orders == nil {
		log.Printf("[checkout][usecase] order provider not configured")
		return entities.PayableOrder{}, ErrProviderNotConfigured
	}

	log.Printf("[checkout][usecase] create-order start items=%d total=%s", len(cart), cart.TotalFixed())
	order, err := u.orders.CreateOrder(ctx, cart)
	if err != nil {
		log.Printf("[checkout][usecase] create-order failed err=%v", err)
		return entities.PayableOrder{}, err
	}
	log.Printf("[checkout][usecase] create-order success provider=%s order_id=%s", order.Provider, order.ID)
	return order, nil
}

func (u *CheckoutUseCase) CaptureOrder(ctx context.Context, orderID string) (entities.CaptureResult, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.CaptureResult{}, ErrInvalidOrderID
	}
	if u.orders == nil {
		log.Printf("[checkout][usecase] order provider not configured")
		return entities.CaptureResult{}, ErrProviderNotConfigured
	}

	log.Printf("[checkout][usecase] capture start order_id=%s", orderID)
	result, err := u.orders.CaptureOrder(ctx, orderID)
	if err != nil {
		log.Printf("[checkout][usecase] capture failed order_id=%s err=%v", orderID, err)
		return entities.CaptureResult{}, err
	}
	log.Printf("[checkout][usecase] capture success order_id=%s", orderID)
	return result, nil
}
