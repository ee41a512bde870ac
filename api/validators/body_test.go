package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/perfectbooks/stock-api/pkg/errors"
)

type samplePayload struct {
	Name   string `json:"name" validate:"required"`
	Amount *int   `json:"amount" validate:"required,gte=0"`
	Date   string `json:"date" validate:"required,dateformat"`
}

func decode(t *testing.T, body string) error {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/books", strings.NewReader(body))
	var payload samplePayload
	return DecodeJSONBody(req, &payload)
}

func TestDecodeJSONBody(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if err := decode(t, `{"name":"Dune","amount":10,"date":"2024-01-01"}`); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("zero amount is valid", func(t *testing.T) {
		if err := decode(t, `{"name":"Dune","amount":0,"date":"2024-01-01"}`); err != nil {
			t.Fatalf("expected zero quantity to pass, got %v", err)
		}
	})

	t.Run("missing field", func(t *testing.T) {
		err := decode(t, `{"amount":10,"date":"2024-01-01"}`)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
		details, ok := typed.Details().(map[string]string)
		if !ok || details["name"] != "is required" {
			t.Fatalf("expected name detail, got %v", typed.Details())
		}
	})

	t.Run("wrong date format", func(t *testing.T) {
		err := decode(t, `{"name":"Dune","amount":10,"date":"31-12-2024"}`)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
		details, _ := typed.Details().(map[string]string)
		if details["date"] != "must be formatted as YYYY-MM-DD" {
			t.Fatalf("expected date format detail, got %v", details)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		err := decode(t, `{"name":"Dune","amount":-1,"date":"2024-01-01"}`)
		if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		err := decode(t, `{"name":"Dune","amount":10,"date":"2024-01-01","sneaky":true}`)
		if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		err := decode(t, `{`)
		if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}
