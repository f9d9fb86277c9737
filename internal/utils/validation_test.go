package utils

import (
	"errors"
	"testing"

	"reservoria/internal/domain"
)

type signup struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Pass    string `json:"password" validate:"required"`
	Confirm string `json:"confirmPassword" validate:"eqfield=Pass"`
}

func TestValidateStructFieldNames(t *testing.T) {
	err := ValidateStruct(signup{Name: "A", Email: "nope", Pass: "x", Confirm: "y"})
	var verr domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	got := map[string]string{}
	for _, f := range verr.Fields {
		got[f.Field] = f.Msg
	}
	if got["name"] != "must be at least 2 characters" || got["email"] != "must be a valid email address" {
		t.Fatalf("unexpected messages %v", got)
	}
	if got["confirmPassword"] != "must match pass" {
		t.Fatalf("unexpected confirm message %q", got["confirmPassword"])
	}
	if err := ValidateStruct(signup{Name: "Al", Email: "al@example.com", Pass: "x", Confirm: "x"}); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
}
