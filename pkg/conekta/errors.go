package conekta

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/nysertxs/conekta-go/pkg/shape"
)

// Static errors for err113 compliance.
var (
	ErrNoNextPage         = errors.New("no next page")
	ErrNoPreviousPage     = errors.New("no previous page")
	ErrDetachedCollection = errors.New("collection is not bound to a list endpoint")
	ErrConflictingCursors = errors.New("next and previous cursors are mutually exclusive")
	ErrMissingPrivateKey  = errors.New("private key is required")
	ErrMissingEndpoint    = errors.New("API endpoint is required")
	ErrEmptyID            = errors.New("resource id is required")
	ErrConfigRequired     = errors.New("config is required")
)

// Conekta error types reported in the "type" field of error bodies.
const (
	ErrorTypeAuthentication      = "authentication_error"
	ErrorTypeParameterValidation = "parameter_validation_error"
	ErrorTypeProcessing          = "processing_error"
	ErrorTypeResourceNotFound    = "resource_not_found_error"
	ErrorTypeAPI                 = "api_error"
)

// DecodeError reports a 2xx body that did not match the expected shape.
type DecodeError = shape.DecodeError

// ErrorDetail is one entry of the details list of an error body.
type ErrorDetail struct {
	Message      string `json:"message,omitempty"       yaml:"message,omitempty"`
	DebugMessage string `json:"debug_message,omitempty" yaml:"debug_message,omitempty"`
	Param        string `json:"param,omitempty"         yaml:"param,omitempty"`
	Code         string `json:"code,omitempty"          yaml:"code,omitempty"`
}

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int           `json:"status_code"`
	Object     string        `json:"object,omitempty"`
	Type       string        `json:"type,omitempty"`
	Message    string        `json:"message,omitempty"`
	Code       string        `json:"code,omitempty"`
	LogID      string        `json:"log_id,omitempty"`
	Details    []ErrorDetail `json:"details,omitempty"`
	// RawBody holds the response body when it is not an error object.
	RawBody string `json:"raw_body,omitempty"`
}

var errorDetailDescriptor = shape.Describe(
	shape.Object(shape.Fields{
		"message":       shape.String(),
		"debug_message": shape.String(),
		"param":         shape.String(),
		"code":          shape.String(),
	}),
	func(v shape.Value) ErrorDetail {
		return ErrorDetail{
			Message:      v.Field("message").Str(),
			DebugMessage: v.Field("debug_message").Str(),
			Param:        v.Field("param").Str(),
			Code:         v.Field("code").Str(),
		}
	},
)

var errorBodyShape = shape.Object(shape.Fields{
	"object":  shape.String(),
	"type":    shape.String(),
	"message": shape.String(),
	"code":    shape.String(),
	"log_id":  shape.String(),
	"details": shape.List(errorDetailDescriptor.Shape()),
})

// NewAPIError builds an APIError from a non-2xx response.
func NewAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	value, err := shape.Decode(body, errorBodyShape)
	if err != nil || !(value.Has("type") || value.Has("message") || value.Has("details")) {
		apiErr.RawBody = string(body)

		return apiErr
	}

	apiErr.Object = value.Field("object").Str()
	apiErr.Type = value.Field("type").Str()
	apiErr.Message = value.Field("message").Str()
	apiErr.Code = value.Field("code").Str()
	apiErr.LogID = value.Field("log_id").Str()
	apiErr.Details = shape.BindList(value.Field("details"), errorDetailDescriptor)

	if apiErr.Message == "" && len(apiErr.Details) > 0 {
		apiErr.Message = apiErr.Details[0].Message
	}

	return apiErr
}

func (e *APIError) Error() string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "conekta: HTTP %d", e.StatusCode)

	if e.Type != "" {
		builder.WriteString(": " + e.Type)
	}

	switch {
	case e.Message != "":
		builder.WriteString(": " + e.Message)
	case e.RawBody != "":
		builder.WriteString(": " + e.RawBody)
	default:
		builder.WriteString(": " + http.StatusText(e.StatusCode))
	}

	if e.LogID != "" {
		builder.WriteString(" (log_id " + e.LogID + ")")
	}

	return builder.String()
}

// TransportError reports a request that produced no HTTP response.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("conekta: %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// PaginationError reports a page that cannot be fetched.
type PaginationError struct {
	Direction Direction
	Err       error
}

func (e *PaginationError) Error() string {
	return "conekta: pagination: " + e.Err.Error()
}

func (e *PaginationError) Unwrap() error {
	return e.Err
}

// IsAPIError reports whether err carries an APIError.
func IsAPIError(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr)
}

// AsAPIError extracts an APIError from err.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// IsNotFound reports a 404 or a resource_not_found_error.
func IsNotFound(err error) bool {
	return hasStatusOrType(err, http.StatusNotFound, ErrorTypeResourceNotFound)
}

// IsUnauthorized reports a rejected private key.
func IsUnauthorized(err error) bool {
	return hasStatusOrType(err, http.StatusUnauthorized, ErrorTypeAuthentication)
}

// IsValidation reports rejected request parameters.
func IsValidation(err error) bool {
	return hasStatusOrType(err, http.StatusUnprocessableEntity, ErrorTypeParameterValidation)
}

// IsProcessing reports a payment the processor declined.
func IsProcessing(err error) bool {
	return hasStatusOrType(err, http.StatusPaymentRequired, ErrorTypeProcessing)
}

// IsTransportError reports whether err carries a TransportError.
func IsTransportError(err error) bool {
	var transportErr *TransportError

	return errors.As(err, &transportErr)
}

// IsDecodeError reports whether err carries a DecodeError.
func IsDecodeError(err error) bool {
	_, ok := shape.AsDecodeError(err)

	return ok
}

func hasStatusOrType(err error, status int, errorType string) bool {
	apiErr, ok := AsAPIError(err)
	if !ok {
		return false
	}

	return apiErr.StatusCode == status || apiErr.Type == errorType
}
