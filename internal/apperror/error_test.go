package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain error", err: errors.New("boom"), want: CodeInternal},
		{name: "not found", err: NotFound("missing"), want: CodeNotFound},
		{name: "wrapped conflict", err: fmt.Errorf("create: %w", Conflict("dup")), want: CodeConflict},
		{name: "validation", err: Validation("bad"), want: CodeValidation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := GetCode(tc.err); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFieldsAndUnwrap(t *testing.T) {
	cause := errors.New("driver failure")
	err := fmt.Errorf("outer: %w", &Error{Code: CodeValidation, Message: "bad", Fields: []FieldIssue{{Field: "email", Reason: "required"}}, Err: cause})

	fields := Fields(err)
	if len(fields) != 1 || fields[0].Field != "email" {
		t.Fatalf("unexpected fields: %+v", fields)
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be reachable through Unwrap")
	}
	if Fields(errors.New("plain")) != nil {
		t.Fatal("expected no fields on plain errors")
	}
}
