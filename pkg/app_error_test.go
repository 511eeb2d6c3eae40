package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestNewDomainError(t *testing.T) {
	cause := errors.New("failed to create quote: disk full")

	appErr := NewDomainError("INTERNAL_ERROR", "", cause, http.StatusInternalServerError)
	if appErr.Message != cause.Error() {
		t.Fatalf("expected message from cause, got %q", appErr.Message)
	}
	if !errors.Is(appErr, cause) {
		t.Fatalf("expected AppError to unwrap to its cause")
	}

	body := appErr.ToHTTPError()
	if body.Success || body.Message != cause.Error() {
		t.Fatalf("unexpected http error: %+v", body)
	}
}

func TestNewDomainErrorSimple(t *testing.T) {
	appErr := NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	if appErr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", appErr.HTTPStatus)
	}
	if appErr.Error() != "QUOTE_NOT_FOUND: Quote not found" {
		t.Fatalf("unexpected error string: %q", appErr.Error())
	}
	if appErr.Unwrap() != nil {
		t.Fatalf("expected no cause")
	}
}
