package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/gbzindabb123-ops/mlb2/internal/adapter/http/dto/request"
	response "github.com/gbzindabb123-ops/mlb2/internal/adapter/http/dto/response"
	"github.com/gbzindabb123-ops/mlb2/internal/domain/entities"
	"github.com/gbzindabb123-ops/mlb2/internal/infrastructure/payments"
	"github.com/gbzindabb123-ops/mlb2/internal/usecase"
	"github.com/gbzindabb123-ops/mlb2/pkg"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid checkout payload", http.StatusBadRequest)

// CheckoutHandler handles the order-creation and capture routes for both
// providers.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreatePreference creates a Mercado Pago Checkout Pro preference for the
// submitted cart and returns the redirect URLs.
func (h *CheckoutHandler) CreatePreference(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[checkout][handler] invalid preference payload err=%v", err)
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.CreatePreference(c.Request.Context(), payload.ResolveCart(), payload.ResolveBuyer())
	if err != nil {
		log.Printf("[checkout][handler] create-preference failed err=%v", err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] create-preference success preference_id=%s", order.ID)

	c.JSON(http.StatusOK, response.FromPreference(order))
}

// CreateOrder creates a PayPal order for the submitted cart and returns the
// approve URL.
func (h *CheckoutHandler) CreateOrder(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[checkout][handler] invalid order payload err=%v", err)
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), payload.ResolveCart())
	if err != nil {
		log.Printf("[checkout][handler] create-order failed err=%v", err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] create-order success order_id=%s", order.ID)

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// CaptureOrder finalizes an approved PayPal order. The provider's capture
// body is echoed verbatim.
func (h *CheckoutHandler) CaptureOrder(c *gin.Context) {
	orderID := c.Param("orderId")
	log.Printf("[checkout][handler] capture start order_id=%s", orderID)

	result, err := h.usecase.CaptureOrder(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[checkout][handler] capture failed order_id=%s err=%v", orderID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] capture success order_id=%s", orderID)

	c.Data(http.StatusOK, "application/json; charset=utf-8", result.Raw)
}

// mapCheckoutError keeps the compatibility floor: cart problems are 400,
// everything else is 500 with the most specific upstream message available.
func mapCheckoutError(err error) *pkg.AppError {
	var authErr *payments.AuthError
	var provErr *payments.ProviderError
	switch {
	case errors.Is(err, entities.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "Carrinho vazio", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidCartItem):
		return pkg.NewDomainErrorSimple("INVALID_CART_ITEM", "Invalid cart item", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.As(err, &authErr):
		return pkg.NewDomainError("PAYMENT_PROVIDER_AUTH", authErr.Message, err, http.StatusInternalServerError)
	case errors.As(err, &provErr):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", provErr.Message, err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrProviderNotConfigured):
		return pkg.NewDomainError("PROVIDER_NOT_CONFIGURED", "Payment provider not configured", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
