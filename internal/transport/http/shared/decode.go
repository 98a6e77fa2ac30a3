package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"workforce/internal/apperror"
)

// DecodeJSON decodes the request body into dst. Fields already set on dst
// survive when the body omits them, which is what partial updates rely on.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return apperror.Validation("request body is required")
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apperror.Validation("request body must contain a single JSON object")
	}
	return nil
}

func decodeError(err error) error {
	var maxBytes *http.MaxBytesError
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return apperror.Validation("request body is required")
	case errors.As(err, &maxBytes):
		return apperror.Validation(fmt.Sprintf("request body exceeds %d bytes", maxBytes.Limit))
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return apperror.Validation("malformed JSON request body")
	case errors.As(err, &typeErr):
		return apperror.Validation("invalid request body",
			apperror.FieldIssue{Field: typeErr.Field, Reason: "expected " + typeErr.Type.String()})
	default:
		return apperror.Validation("invalid request body", apperror.FieldIssue{Reason: err.Error()})
	}
}
