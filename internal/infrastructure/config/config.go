package config

import (
	"os"
	"strconv"
	"strings"
)

const defaultPort = 3001

// Config holds every process-wide setting, read once at startup and treated as
// immutable afterwards. Adapters receive it at construction time instead of
// reading the environment themselves.
type Config struct {
	Port int

	// WebBaseURL is the storefront origin used for buyer back-navigation URLs.
	WebBaseURL string
	// PublicBaseURL is the publicly reachable base of this backend, used to
	// build the server-to-server notification URL.
	PublicBaseURL string

	MercadoPago MercadoPago
	PayPal      PayPal
}

type MercadoPago struct {
	AccessToken   string
	WebhookSecret string
}

type PayPal struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

func (m MercadoPago) Configured() bool { return m.AccessToken != "" }

func (p PayPal) Configured() bool {
	return p.BaseURL != "" && p.ClientID != "" && p.ClientSecret != ""
}

// Load reads the process environment. Missing provider credentials are not an
// error here: the affected provider is simply left unconfigured and its routes
// fail with a provider-not-configured error at first use.
func Load() Config {
	return Config{
		Port:          portFromEnv(),
		WebBaseURL:    strings.TrimRight(getenv("WEB_BASE_URL"), "/"),
		PublicBaseURL: strings.TrimRight(getenv("PUBLIC_BASE_URL"), "/"),
		MercadoPago: MercadoPago{
			AccessToken:   getenv("MERCADOPAGO_ACCESS_TOKEN"),
			WebhookSecret: getenv("MERCADOPAGO_WEBHOOK_SECRET"),
		},
		PayPal: PayPal{
			BaseURL:      strings.TrimRight(getenv("PAYPAL_BASE_URL"), "/"),
			ClientID:     getenv("PAYPAL_CLIENT_ID"),
			ClientSecret: getenv("PAYPAL_CLIENT_SECRET"),
		},
	}
}

func portFromEnv() int {
	raw := getenv("PORT")
	if raw == "" {
		return defaultPort
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port <= 0 {
		return defaultPort
	}
	return port
}

func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
