// Package jsondecode decodes JSON documents and reports malformed input with a
// single, recognizable error.
//
// Every failure, whether a syntax error, a type mismatch or nesting deeper than
// MaxDepth, is returned as a *FormatError that matches ErrInvalidJSONFormat:
//
//	v, err := jsondecode.Decode(body)
//	if errors.Is(err, jsondecode.ErrInvalidJSONFormat) {
//	    return fiber.ErrBadRequest
//	}
//
// Decode yields plain Go values (objects become map[string]any). DecodeObject
// keeps the document as a gjson.Result for path queries, and DecodeInto fills
// a typed value.
package jsondecode
