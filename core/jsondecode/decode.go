package jsondecode

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// MaxDepth is the deepest nesting of arrays and objects a document may have.
const MaxDepth = 512

var (
	// ErrInvalidJSONFormat matches every error returned by this package.
	ErrInvalidJSONFormat = errors.New("invalid json format")

	errSyntax  = errors.New("syntax error")
	errTooDeep = fmt.Errorf("maximum nesting depth of %d exceeded", MaxDepth)
)

// FormatError wraps the reason a document could not be decoded.
type FormatError struct {
	err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvalidJSONFormat, e.err)
}

func (e *FormatError) Unwrap() error {
	return e.err
}

func (e *FormatError) Is(target error) bool {
	if target == ErrInvalidJSONFormat {
		return true
	}
	_, ok := target.(*FormatError)
	return ok
}

func wrap(err error) error {
	return &FormatError{err: err}
}

// Decode decodes data into plain Go values: objects become map[string]any,
// arrays []any. Integral numbers that fit become int64, all other numbers
// float64.
func Decode(data string) (any, error) {
	if err := checkDepth(data); err != nil {
		return nil, err
	}
	if !json.Valid([]byte(data)) {
		var v any
		return nil, wrap(json.Unmarshal([]byte(data), &v))
	}

	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, wrap(err)
	}
	return resolveNumbers(out), nil
}

func resolveNumbers(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, item := range v {
			v[k] = resolveNumbers(item)
		}
	case []any:
		for i, item := range v {
			v[i] = resolveNumbers(item)
		}
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		f, _ := v.Float64()
		return f
	}
	return v
}

// DecodeInto decodes data into a value of type T.
func DecodeInto[T any](data string) (T, error) {
	var out T
	if err := checkDepth(data); err != nil {
		return out, err
	}
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		var zero T
		return zero, wrap(err)
	}
	return out, nil
}

// DecodeObject validates data and returns it as a queryable document.
func DecodeObject(data string) (gjson.Result, error) {
	if !gjson.Valid(data) {
		return gjson.Result{}, wrap(errSyntax)
	}
	if err := checkDepth(data); err != nil {
		return gjson.Result{}, err
	}
	return gjson.Parse(data), nil
}

func checkDepth(data string) error {
	if nestingDepth(data) > MaxDepth {
		return wrap(errTooDeep)
	}
	return nil
}

// nestingDepth returns the deepest array or object nesting of data, ignoring
// brackets inside strings. It does not validate.
func nestingDepth(data string) int {
	depth, deepest := 0, 0
	inString, escaped := false, false
	for i := 0; i < len(data); i++ {
		c := data[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
			deepest = max(deepest, depth)
		case '}', ']':
			depth--
		}
	}
	return deepest
}
