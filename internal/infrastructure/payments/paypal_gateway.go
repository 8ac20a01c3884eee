package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gbzindabb123-ops/mlb2/internal/cache"
	"github.com/gbzindabb123-ops/mlb2/internal/domain/entities"
	"github.com/gbzindabb123-ops/mlb2/internal/infrastructure/config"
)

var ErrMissingPayPalCredentials = errors.New("missing PayPal credentials (PAYPAL_BASE_URL, PAYPAL_CLIENT_ID, PAYPAL_CLIENT_SECRET)")

const (
	defaultHTTPTimeout = 15 * time.Second

	// Subtracted from expires_in before caching so a token is never used
	// right at its expiry edge.
	tokenExpirySlack = 60 * time.Second
)

// orderRequest is the Orders v2 creation payload.
type orderRequest struct {
	Intent             string             `json:"intent"`
	PurchaseUnits      []purchaseUnit     `json:"purchase_units"`
	ApplicationContext applicationContext `json:"application_context"`
}

type purchaseUnit struct {
	Amount amount `json:"amount"`
}

type amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type applicationContext struct {
	ReturnURL string `json:"return_url"`
	CancelURL string `json:"cancel_url"`
}

type orderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Links  []link `json:"links"`
}

type link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// apiError covers both the token endpoint ({error, error_description}) and
// the orders endpoints ({name, message}).
type apiError struct {
	Name             string `json:"name"`
	Message          string `json:"message"`
	ErrorCode        string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// PayPalGateway talks to the Orders v2 API. Access tokens from the
// client-credentials exchange are cached per client id with an expiry margin;
// a cache miss re-authenticates, so a dropped token only costs one extra
// round-trip.
type PayPalGateway struct {
	httpClient *http.Client
	baseURL    string
	clientID   string
	secret     string
	webBaseURL string
	tokens     *cache.TTL[string, string]
}

func NewPayPalGateway(cfg config.Config) (*PayPalGateway, error) {
	if !cfg.PayPal.Configured() {
		log.Printf("[payment][gateway] missing PayPal credentials")
		return nil, ErrMissingPayPalCredentials
	}
	log.Printf("[payment][gateway] PayPal client initialized base_url=%s", cfg.PayPal.BaseURL)

	return &PayPalGateway{
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		baseURL:    cfg.PayPal.BaseURL,
		clientID:   cfg.PayPal.ClientID,
		secret:     cfg.PayPal.ClientSecret,
		webBaseURL: cfg.WebBaseURL,
		tokens:     cache.NewTTL[string, string](),
	}, nil
}

// authenticate returns a bearer token, reusing a cached one when still valid.
func (g *PayPalGateway) authenticate(ctx context.Context) (string, error) {
	if token, ok := g.tokens.Get(g.clientID); ok {
		return token, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", wrapTransport(entities.ProviderPayPal, err)
	}
	req.SetBasicAuth(g.clientID, g.secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	log.Printf("[payment][gateway] token exchange start")
	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[payment][gateway] token exchange transport failure err=%v", err)
		return "", wrapTransport(entities.ProviderPayPal, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", wrapTransport(entities.ProviderPayPal, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := upstreamMessage(body, "PayPal token error")
		log.Printf("[payment][gateway] token exchange rejected status=%d msg=%s", resp.StatusCode, msg)
		return "", &AuthError{Provider: entities.ProviderPayPal, StatusCode: resp.StatusCode, Message: msg}
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", wrapTransport(entities.ProviderPayPal, err)
	}
	if token.AccessToken == "" {
		return "", &AuthError{Provider: entities.ProviderPayPal, StatusCode: resp.StatusCode, Message: "PayPal token error"}
	}

	ttl := time.Duration(token.ExpiresIn)*time.Second - tokenExpirySlack
	g.tokens.Set(g.clientID, token.AccessToken, ttl)
	log.Printf("[payment][gateway] token exchange success expires_in=%ds", token.ExpiresIn)
	return token.AccessToken, nil
}

// CreateOrder submits an order with intent CAPTURE for the cart total and
// returns the approve link the buyer is redirected to.
func (g *PayPalGateway) CreateOrder(ctx context.Context, cart entities.Cart) (entities.PayableOrder, error) {
	total := cart.TotalFixed()

	token, err := g.authenticate(ctx)
	if err != nil {
		return entities.PayableOrder{}, err
	}

	payload := orderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []purchaseUnit{
			{Amount: amount{CurrencyCode: entities.Currency, Value: total}},
		},
		ApplicationContext: applicationContext{
			ReturnURL: g.webBaseURL + "/?paypal=success",
			CancelURL: g.webBaseURL + "/?paypal=cancel",
		},
	}

	log.Printf("[payment][gateway] order create start total=%s", total)
	body, status, err := g.post(ctx, "/v2/checkout/orders", token, payload)
	if err != nil {
		return entities.PayableOrder{}, err
	}
	if status < 200 || status >= 300 {
		msg := upstreamMessage(body, "PayPal create order failed")
		log.Printf("[payment][gateway] order create rejected status=%d msg=%s", status, msg)
		return entities.PayableOrder{}, &ProviderError{Provider: entities.ProviderPayPal, StatusCode: status, Message: msg}
	}

	var order orderResponse
	if err := json.Unmarshal(body, &order); err != nil {
		return entities.PayableOrder{}, wrapTransport(entities.ProviderPayPal, err)
	}
	log.Printf("[payment][gateway] order create success order_id=%s status=%s", order.ID, order.Status)

	return entities.PayableOrder{
		Provider:    entities.ProviderPayPal,
		ID:          order.ID,
		RedirectURL: approveLink(order.Links),
	}, nil
}

// CaptureOrder finalizes an approved order. The provider body is returned
// verbatim; callers echo it to the client.
func (g *PayPalGateway) CaptureOrder(ctx context.Context, orderID string) (entities.CaptureResult, error) {
	token, err := g.authenticate(ctx)
	if err != nil {
		return entities.CaptureResult{}, err
	}

	log.Printf("[payment][gateway] order capture start order_id=%s", orderID)
	body, status, err := g.post(ctx, "/v2/checkout/orders/"+url.PathEscape(orderID)+"/capture", token, nil)
	if err != nil {
		return entities.CaptureResult{}, err
	}
	if status < 200 || status >= 300 {
		msg := upstreamMessage(body, "PayPal capture failed")
		log.Printf("[payment][gateway] order capture rejected order_id=%s status=%d msg=%s", orderID, status, msg)
		return entities.CaptureResult{}, &ProviderError{Provider: entities.ProviderPayPal, StatusCode: status, Message: msg}
	}
	log.Printf("[payment][gateway] order capture success order_id=%s", orderID)

	return entities.CaptureResult{Raw: body}, nil
}

// post sends an authenticated JSON POST and returns the raw body and status.
func (g *PayPalGateway) post(ctx context.Context, path, token string, payload any) (json.RawMessage, int, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, wrapTransport(entities.ProviderPayPal, err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, reqBody)
	if err != nil {
		return nil, 0, wrapTransport(entities.ProviderPayPal, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, 0, wrapTransport(entities.ProviderPayPal, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, wrapTransport(entities.ProviderPayPal, err)
	}
	return body, resp.StatusCode, nil
}

func approveLink(links []link) string {
	for _, l := range links {
		if l.Rel == "approve" {
			return l.Href
		}
	}
	return ""
}

// upstreamMessage extracts the most specific error text from a provider body,
// falling back to a fixed string when nothing usable is present.
func upstreamMessage(body []byte, fallback string) string {
	var e apiError
	if err := json.Unmarshal(body, &e); err != nil {
		return fallback
	}
	switch {
	case e.ErrorDescription != "":
		return e.ErrorDescription
	case e.Message != "":
		return e.Message
	case e.Name != "":
		return e.Name
	case e.ErrorCode != "":
		return e.ErrorCode
	}
	return fallback
}
