package conekta

import (
	"time"

	"github.com/spf13/viper"
)

// Defaults applied by Config.WithDefaults.
const (
	DefaultAPIEndpoint = "https://api.conekta.io"
	DefaultAPIVersion  = "2.1.0"
	DefaultLocale      = "es"
	DefaultHTTPTimeout = 60 * time.Second
)

// Config represents client configuration for building a Client.
//
// # Authentication
//
// Every request is authenticated with HTTP Basic auth using PrivateKey as
// the user name and an empty password. Test keys ("key_test_...") and
// live keys address the sandbox and production data of the same account;
// APIEndpoint only has to change for private deployments.
//
// # Timeouts and retries
//
// Per-request timeouts should be controlled with the context passed to
// each method. Retries are disabled unless RetryMax is positive: create,
// capture and refund requests are not idempotent, so enabling retries is
// the caller's decision.
type Config struct {
	// APIEndpoint: base URL of the API. Defaults to https://api.conekta.io.
	APIEndpoint string
	// PrivateKey: the account's private API key.
	PrivateKey string
	// APIVersion: version requested through the Accept header.
	APIVersion string
	// Locale: language of error messages ("es" or "en").
	Locale string

	// HTTPTimeout: overall timeout of one HTTP attempt.
	HTTPTimeout time.Duration
	// RetryMax: retries after the first attempt for 5xx, 429 and connection
	// errors. Zero disables retries.
	RetryMax int
	// RetryWaitMin and RetryWaitMax bound the backoff between retries.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Debug: logs every request and response when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Interceptors: optional hooks run around every round trip.
	Interceptors *InterceptorChain
	// CursorParams: names of the pagination cursor parameters.
	CursorParams CursorParams

	// Transport: replaces the HTTP transport entirely. Used by tests and by
	// callers that route requests through their own infrastructure.
	Transport Transport
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c *Config) WithDefaults() *Config {
	out := &Config{}
	if c != nil {
		*out = *c
	}

	if out.APIEndpoint == "" {
		out.APIEndpoint = DefaultAPIEndpoint
	}

	if out.APIVersion == "" {
		out.APIVersion = DefaultAPIVersion
	}

	if out.Locale == "" {
		out.Locale = DefaultLocale
	}

	if out.HTTPTimeout == 0 {
		out.HTTPTimeout = DefaultHTTPTimeout
	}

	out.CursorParams = out.CursorParams.withDefaults()

	return out
}

// Viper keys read by ConfigFromViper.
const (
	KeyAPIEndpoint    = "api_endpoint"
	KeyPrivateKey     = "private_key"
	KeyAPIVersion     = "api_version"
	KeyLocale         = "locale"
	KeyHTTPTimeout    = "http_timeout"
	KeyRetryMax       = "retry_max"
	KeyRetryWaitMin   = "retry_wait_min"
	KeyRetryWaitMax   = "retry_wait_max"
	KeyDebug          = "debug"
	KeyUserAgent      = "user_agent"
	KeyCursorNext     = "cursor_next"
	KeyCursorPrevious = "cursor_previous"
)

// ConfigFromViper reads a Config from v. Keys are matched with the CONEKTA_
// environment prefix when v has AutomaticEnv enabled; pass nil to read
// from the global viper instance.
func ConfigFromViper(v *viper.Viper) *Config {
	if v == nil {
		v = viper.GetViper()
	}

	return &Config{
		APIEndpoint:  v.GetString(KeyAPIEndpoint),
		PrivateKey:   v.GetString(KeyPrivateKey),
		APIVersion:   v.GetString(KeyAPIVersion),
		Locale:       v.GetString(KeyLocale),
		HTTPTimeout:  v.GetDuration(KeyHTTPTimeout),
		RetryMax:     v.GetInt(KeyRetryMax),
		RetryWaitMin: v.GetDuration(KeyRetryWaitMin),
		RetryWaitMax: v.GetDuration(KeyRetryWaitMax),
		Debug:        v.GetBool(KeyDebug),
		UserAgent:    v.GetString(KeyUserAgent),
		CursorParams: CursorParams{
			Next:     v.GetString(KeyCursorNext),
			Previous: v.GetString(KeyCursorPrevious),
		},
	}
}

// NewViper returns a viper instance reading CONEKTA_* environment
// variables, e.g. CONEKTA_PRIVATE_KEY.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("CONEKTA")
	v.AutomaticEnv()

	return v
}
