package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Configuration locations used by the CLI.
const (
	// ConfigDirName is created under the user's home directory.
	ConfigDirName = ".conekta"

	// ConfigFileName is the CLI configuration file inside ConfigDirName.
	ConfigFileName = "config"

	// ConfigFileType is the viper config type of ConfigFileName.
	ConfigFileType = "yml"

	// EnvPrefix prefixes environment variables read through viper.
	EnvPrefix = "CONEKTA"
)

// HTTP headers and media types.
const (
	// HeaderAccept carries the requested API version.
	HeaderAccept = "Accept"

	// HeaderAcceptLanguage selects the language of error messages.
	HeaderAcceptLanguage = "Accept-Language"

	// HeaderAuthorization carries the Basic credentials.
	HeaderAuthorization = "Authorization"

	// HeaderContentType is set on requests with a body.
	HeaderContentType = "Content-Type"

	// HeaderUserAgent identifies the client.
	HeaderUserAgent = "User-Agent"

	// MediaTypeJSON is the content type of request bodies.
	MediaTypeJSON = "application/json"

	// DefaultUserAgent is sent unless overridden.
	DefaultUserAgent = "conekta-go/1.0.0"
)

// AcceptVersion renders the Accept header for an API version.
func AcceptVersion(version string) string {
	return "application/vnd.conekta-v" + version + "+json"
}

// Retry backoff bounds applied when retries are enabled.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Resource paths.
const (
	// OrdersPath is the orders collection.
	OrdersPath = "/orders"

	// CustomersPath is the customers collection.
	CustomersPath = "/customers"
)

// Order sub-resource segments and actions.
const (
	LineItemsSegment     = "line_items"
	ShippingLinesSegment = "shipping_lines"
	TaxLinesSegment      = "tax_lines"
	DiscountLinesSegment = "discount_lines"
	ChargesSegment       = "charges"
	RefundsSegment       = "refunds"
	CaptureAction        = "capture"
	CancelAction         = "cancel"
)

// CLI output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)
