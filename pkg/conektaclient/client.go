// Package conektaclient provides the main entry point for creating Conekta API clients
package conektaclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/nysertxs/conekta-go/internal/client"
	"github.com/nysertxs/conekta-go/pkg/conekta"
	"github.com/spf13/viper"
)

// New creates a new Conekta API client.
func New(ctx context.Context, config *conekta.Config) (conekta.Client, error) {
	if config == nil {
		return nil, conekta.ErrConfigRequired
	}

	config = config.WithDefaults()
	config.APIEndpoint = normalizeEndpoint(config.APIEndpoint)

	// Use the internal client implementation
	c, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// normalizeEndpoint trims a trailing slash and adds https:// when no
// scheme is given.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return endpoint
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// NewWithKey creates a new client for the default endpoint authenticated
// with privateKey.
func NewWithKey(ctx context.Context, privateKey string) (conekta.Client, error) {
	return New(ctx, &conekta.Config{
		PrivateKey: privateKey,
	})
}

// NewWithEndpoint creates a new client for a custom endpoint.
func NewWithEndpoint(ctx context.Context, endpoint, privateKey string) (conekta.Client, error) {
	return New(ctx, &conekta.Config{
		APIEndpoint: endpoint,
		PrivateKey:  privateKey,
	})
}

// NewFromViper creates a new client from the keys of v (see
// conekta.ConfigFromViper). A nil v reads CONEKTA_* environment variables.
func NewFromViper(ctx context.Context, v *viper.Viper) (conekta.Client, error) {
	if v == nil {
		v = conekta.NewViper()
	}

	return New(ctx, conekta.ConfigFromViper(v))
}

// NewWithTransport creates a new client that sends every request through
// transport instead of HTTP.
func NewWithTransport(transport conekta.Transport) conekta.Client {
	return client.NewWithTransport(transport, &conekta.Config{})
}
