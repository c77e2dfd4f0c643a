package shape

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes carried by DecodeError.
const (
	CodeMalformedJSON   = "malformed_json"
	CodeFieldMismatch   = "field_mismatch"
	CodeElementMismatch = "element_mismatch"
)

// Static errors for err113 compliance.
var (
	ErrMalformedJSON   = errors.New("malformed JSON")
	ErrFieldMismatch   = errors.New("field does not match its shape")
	ErrElementMismatch = errors.New("list element does not match its shape")
)

// DecodeError reports why a payload could not be decoded against a Shape.
type DecodeError struct {
	// Code is one of CodeMalformedJSON, CodeFieldMismatch or CodeElementMismatch.
	Code string
	// Path is the JSON Pointer of the offending value ("" for the root).
	Path string
	// Field is the name of the innermost object field that failed, if any.
	Field string
	// Index is the position of the failing element in the innermost
	// enclosing list, or -1.
	Index int
	// Expected and Got describe the mismatch.
	Expected string
	Got      string
	// Err is the underlying parser failure for malformed JSON.
	Err error
}

func (e *DecodeError) Error() string {
	if e.Code == CodeMalformedJSON {
		if e.Err != nil {
			return "shape: malformed JSON: " + e.Err.Error()
		}

		return "shape: malformed JSON"
	}

	var builder strings.Builder

	builder.WriteString("shape: ")

	if e.Field != "" {
		fmt.Fprintf(&builder, "field %q ", e.Field)
	} else if e.Index >= 0 {
		fmt.Fprintf(&builder, "element %d ", e.Index)
	} else {
		builder.WriteString("value ")
	}

	path := e.Path
	if path == "" {
		path = "/"
	}

	fmt.Fprintf(&builder, "at %s: expected %s, got %s", path, e.Expected, e.Got)

	if e.Field != "" && e.Index >= 0 {
		fmt.Fprintf(&builder, " (element %d)", e.Index)
	}

	return builder.String()
}

// Unwrap returns the underlying parser error, if any.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is matches the package sentinels by code.
func (e *DecodeError) Is(target error) bool {
	switch target {
	case ErrMalformedJSON:
		return e.Code == CodeMalformedJSON
	case ErrFieldMismatch:
		return e.Code == CodeFieldMismatch
	case ErrElementMismatch:
		return e.Code == CodeElementMismatch
	default:
		return false
	}
}

// AsDecodeError extracts a *DecodeError from err.
func AsDecodeError(err error) (*DecodeError, bool) {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return decodeErr, true
	}

	return nil, false
}
