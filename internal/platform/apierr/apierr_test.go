package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFromFindsWrappedError(t *testing.T) {
	inner := New(http.StatusBadRequest, "invalid_request", errors.New("level is required"))
	wrapped := fmt.Errorf("handler: %w", inner)

	ae, ok := From(wrapped)
	if !ok {
		t.Fatalf("expected ok=true")
	}
	if ae.Status != http.StatusBadRequest || ae.Code != "invalid_request" {
		t.Fatalf("unexpected error: status=%d code=%q", ae.Status, ae.Code)
	}
	if ae.Error() != "level is required" {
		t.Fatalf("unexpected message: %q", ae.Error())
	}
}

func TestErrorFallsBackToCodeThenStatus(t *testing.T) {
	if got := New(http.StatusInternalServerError, "extraction_empty", nil).Error(); got != "extraction_empty" {
		t.Fatalf("got=%q", got)
	}
	if got := New(http.StatusTeapot, "", nil).Error(); got != "api error (418)" {
		t.Fatalf("got=%q", got)
	}
	if _, ok := From(errors.New("plain")); ok {
		t.Fatalf("expected ok=false for plain error")
	}
}
