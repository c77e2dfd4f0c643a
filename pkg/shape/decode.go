package shape

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Decode parses raw as a single JSON document and decodes it against s.
//
// Decode is pure: it reads only its arguments and allocates a fresh
// result, so it is safe to call concurrently with a shared Shape.
func Decode(raw []byte, s *Shape) (Value, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var document any

	err := decoder.Decode(&document)
	if err != nil {
		return Value{}, &DecodeError{Code: CodeMalformedJSON, Index: -1, Err: err}
	}

	_, err = decoder.Token()
	if !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}

		return Value{}, &DecodeError{Code: CodeMalformedJSON, Index: -1, Err: err}
	}

	return decodeAny(document, s)
}

// DecodeAny decodes an already parsed document (as produced by
// encoding/json or go-json with UseNumber) against s.
func DecodeAny(document any, s *Shape) (Value, error) {
	return decodeAny(document, s)
}

var errTrailingData = errors.New("invalid character after top-level value")

func decodeAny(document any, s *Shape) (Value, error) {
	value, decodeErr := decodeNode(document, s, "", "")
	if decodeErr != nil {
		return Value{}, decodeErr
	}

	return value, nil
}

// decodeNode returns *DecodeError rather than error so callers can
// annotate the list index without a type assertion.
func decodeNode(node any, s *Shape, path, field string) (Value, *DecodeError) {
	if node == nil {
		return NullValue(), nil
	}

	switch s.kind {
	case KindScalar:
		return decodeScalar(node, s, path, field)
	case KindAny:
		return decodeFree(node, s, path, field)
	case KindObject:
		object, ok := node.(map[string]any)
		if !ok {
			return Value{}, mismatch(path, field, s, node)
		}

		fields := make(map[string]Value, len(s.names))

		for _, name := range s.names {
			raw, present := object[name]
			if !present {
				fields[name] = MissingValue()

				continue
			}

			child, err := decodeNode(raw, s.fields[name], path+"/"+escapePointer(name), name)
			if err != nil {
				return Value{}, err
			}

			fields[name] = child
		}

		return objectValue(fields), nil
	case KindList:
		array, ok := node.([]any)
		if !ok {
			return Value{}, mismatch(path, field, s, node)
		}

		items := make([]Value, 0, len(array))

		for index, raw := range array {
			item, err := decodeNode(raw, s.elem, path+"/"+strconv.Itoa(index), "")
			if err != nil {
				if err.Index < 0 {
					err.Index = index
				}

				if err.Field == "" {
					err.Code = CodeElementMismatch
				}

				return Value{}, err
			}

			items = append(items, item)
		}

		return listValue(items), nil
	case KindMap:
		object, ok := node.(map[string]any)
		if !ok {
			return Value{}, mismatch(path, field, s, node)
		}

		fields := make(map[string]Value, len(object))

		for name, raw := range object {
			child, err := decodeNode(raw, s.elem, path+"/"+escapePointer(name), name)
			if err != nil {
				return Value{}, err
			}

			fields[name] = child
		}

		return objectValue(fields), nil
	default:
		return Value{}, mismatch(path, field, s, node)
	}
}

func decodeScalar(node any, s *Shape, path, field string) (Value, *DecodeError) {
	switch typed := node.(type) {
	case string:
		if s.scalar == AnyScalar || s.scalar == StringScalar {
			return StringValue(typed), nil
		}
	case json.Number:
		if s.scalar == AnyScalar || s.scalar == NumberScalar {
			return NumberValue(typed), nil
		}
	case float64:
		if s.scalar == AnyScalar || s.scalar == NumberScalar {
			return NumberValue(json.Number(strconv.FormatFloat(typed, 'g', -1, 64))), nil
		}
	case bool:
		if s.scalar == AnyScalar || s.scalar == BoolScalar {
			return BoolValue(typed), nil
		}
	}

	return Value{}, mismatch(path, field, s, node)
}

// decodeFree keeps node whole, whatever its JSON type.
func decodeFree(node any, s *Shape, path, field string) (Value, *DecodeError) {
	switch typed := node.(type) {
	case nil:
		return NullValue(), nil
	case map[string]any:
		fields := make(map[string]Value, len(typed))

		for name, raw := range typed {
			child, err := decodeFree(raw, s, path+"/"+escapePointer(name), name)
			if err != nil {
				return Value{}, err
			}

			fields[name] = child
		}

		return objectValue(fields), nil
	case []any:
		items := make([]Value, 0, len(typed))

		for index, raw := range typed {
			item, err := decodeFree(raw, s, path+"/"+strconv.Itoa(index), "")
			if err != nil {
				return Value{}, err
			}

			items = append(items, item)
		}

		return listValue(items), nil
	default:
		return decodeScalar(node, anyScalar, path, field)
	}
}

func mismatch(path, field string, s *Shape, node any) *DecodeError {
	return &DecodeError{
		Code:     CodeFieldMismatch,
		Path:     path,
		Field:    field,
		Index:    -1,
		Expected: s.String(),
		Got:      describe(node),
	}
}

func describe(node any) string {
	switch node.(type) {
	case string:
		return "string"
	case json.Number, float64:
		return "number"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case nil:
		return "null"
	default:
		return "unknown"
	}
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func escapePointer(name string) string {
	return pointerEscaper.Replace(name)
}
