package http

import (
	"errors"
	"strings"
	"testing"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestActorValidation(t *testing.T) {
	type P struct {
		Actor string `validate:"actor"`
	}
	cv := NewValidator()

	for _, s := range []string{"mifos", "ana.lopez", "agent-7", "ops@puente.gt"} {
		if err := cv.Validate(P{Actor: s}); err != nil {
			t.Fatalf("expected valid actor %q, got err: %v", s, err)
		}
	}
	for _, s := range []string{"", "two words", "semi;colon", strings.Repeat("x", 101)} {
		err := cv.Validate(P{Actor: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "Actor", "user login") {
			t.Fatalf("expected actor message for %q, got: %+v", s, fe)
		}
	}
}

func TestIsoDateValidation(t *testing.T) {
	type P struct {
		Date string `validate:"omitempty,isodate"`
	}
	cv := NewValidator()

	for _, s := range []string{"", "2025-03-15", "2024-02-29"} {
		if err := cv.Validate(P{Date: s}); err != nil {
			t.Fatalf("expected valid date %q, got %v", s, err)
		}
	}
	for _, s := range []string{"15/03/2025", "2025-3-15", "2025-02-30", "2025-03-15T00:00:00Z"} {
		err := cv.Validate(P{Date: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "Date", "YYYY-MM-DD") {
			t.Fatalf("expected isodate message for %q, got: %+v", s, fe)
		}
	}
}

func TestToFieldErrors_Messages(t *testing.T) {
	type P struct {
		ID      int64  `validate:"gt=0"`
		Command string `validate:"required"`
		Kind    string `validate:"omitempty,oneof=a b"`
		N       int    `validate:"gte=1,lte=5"`
	}
	err := NewValidator().Validate(P{ID: 0, Kind: "c", N: 9})
	if err == nil {
		t.Fatal("expected validation error")
	}
	fe := ToFieldErrors(err)
	for _, want := range []struct{ field, msg string }{
		{"ID", "greater than 0"},
		{"Command", "is required"},
		{"Kind", "one of: a b"},
		{"N", "less than or equal to 5"},
	} {
		if !containsFieldMsg(fe, want.field, want.msg) {
			t.Fatalf("missing %s/%q in %+v", want.field, want.msg, fe)
		}
	}
}

func TestToFieldErrors_NonValidatorError(t *testing.T) {
	fe := ToFieldErrors(errors.New("boom"))
	if len(fe) != 1 || fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected: %+v", fe)
	}
}
