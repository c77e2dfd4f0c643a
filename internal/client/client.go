package client

import (
	"context"
	"fmt"
	"time"

	"github.com/nysertxs/conekta-go/internal/auth"
	"github.com/nysertxs/conekta-go/internal/constants"
	"github.com/nysertxs/conekta-go/internal/http"
	"github.com/nysertxs/conekta-go/pkg/conekta"
)

// Client implements the conekta.Client interface.
type Client struct {
	transport conekta.Transport
	baseURL   string
	logger    conekta.Logger
	cursors   conekta.CursorParams

	// Resource clients
	orders    *OrdersClient
	customers *CustomersClient
}

// createKeyProvider picks the key source for the config. An explicit key
// wins over the CONEKTA_PRIVATE_KEY environment variable.
func createKeyProvider(config *conekta.Config) auth.KeyProvider {
	if config.PrivateKey != "" {
		return auth.StaticKey(config.PrivateKey)
	}

	return auth.EnvKey(constants.EnvPrefix + "_PRIVATE_KEY")
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *conekta.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	httpOpts = append(httpOpts,
		http.WithAPIVersion(config.APIVersion),
		http.WithLocale(config.Locale),
		http.WithTimeout(config.HTTPTimeout),
	)

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	return httpOpts
}

// New creates a client from config. Unless config carries its own
// Transport, the private key must be available from the config or the
// environment when New is called.
func New(ctx context.Context, config *conekta.Config) (*Client, error) {
	config = config.WithDefaults()

	if config.Transport != nil {
		return NewWithTransport(config.Transport, config), nil
	}

	if config.APIEndpoint == "" {
		return nil, conekta.ErrMissingEndpoint
	}

	keys := createKeyProvider(config)

	_, err := keys.GetKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", conekta.ErrMissingPrivateKey, err)
	}

	httpClient := http.NewClient(config.APIEndpoint, keys, createHTTPClientOptions(config)...)

	return NewWithTransport(httpClient, config), nil
}

// NewWithTransport creates a client that sends every request through
// transport. Only the logger and cursor names of config are used.
func NewWithTransport(transport conekta.Transport, config *conekta.Config) *Client {
	config = config.WithDefaults()

	client := &Client{
		transport: transport,
		baseURL:   config.APIEndpoint,
		logger:    config.Logger,
		cursors:   config.CursorParams,
	}

	if client.logger == nil {
		client.logger = conekta.NopLogger()
	}

	client.initializeResourceClients()

	return client
}

func (c *Client) initializeResourceClients() {
	c.orders = NewOrdersClient(c.transport, c.cursors)
	c.customers = NewCustomersClient(c.transport, c.cursors)
}

// Orders returns the orders client.
func (c *Client) Orders() conekta.OrdersClient {
	return c.orders
}

// Customers returns the customers client.
func (c *Client) Customers() conekta.CustomersClient {
	return c.customers
}

// Transport returns the transport every resource client sends through.
func (c *Client) Transport() conekta.Transport {
	return c.transport
}

// BaseURL returns the API endpoint the client was created for.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ping checks that the API accepts the configured key by listing a single
// order. It returns the round-trip time.
func (c *Client) Ping(ctx context.Context) (time.Duration, error) {
	start := time.Now()

	_, err := c.orders.List(ctx, conekta.NewListParams().WithLimit(1))
	if err != nil {
		c.logger.Warn("Ping failed", map[string]interface{}{"error": err.Error()})

		return 0, fmt.Errorf("pinging %s: %w", c.baseURL, err)
	}

	elapsed := time.Since(start)
	c.logger.Debug("Ping succeeded", map[string]interface{}{"elapsed": elapsed.String()})

	return elapsed, nil
}
