package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	if got := MetadataFor(CodeNotFound).HTTPStatus; got != http.StatusNotFound {
		t.Fatalf("unexpected status %d", got)
	}
	if got := MetadataFor(CodeLoad).HTTPStatus; got != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status %d", got)
	}
	if !MetadataFor(CodeLoad).Retryable {
		t.Fatal("load errors should be retryable")
	}
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	if got := MetadataFor(Code("MYSTERY")).HTTPStatus; got != http.StatusInternalServerError {
		t.Fatalf("unexpected fallback status %d", got)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("connection refused")
	err := Wrap(CodeLoad, cause, "fetch catalog")

	if !stdErrors.Is(err, cause) {
		t.Fatal("wrapped error should match cause")
	}
	if err.Code() != CodeLoad {
		t.Fatalf("unexpected code %s", err.Code())
	}
	if err.Error() != "LOAD_ERROR: fetch catalog" {
		t.Fatalf("unexpected error string %q", err.Error())
	}
}

func TestAsFindsTypedErrorInChain(t *testing.T) {
	typed := New(CodeValidation, "quantity must be positive").WithDetails(map[string]string{"quantity": "is invalid"})
	wrapped := fmt.Errorf("handling request: %w", typed)

	got := As(wrapped)
	if got == nil {
		t.Fatal("expected typed error in chain")
	}
	if got.Code() != CodeValidation {
		t.Fatalf("unexpected code %s", got.Code())
	}
	if got.Details() == nil {
		t.Fatal("expected details to survive")
	}

	if As(stdErrors.New("plain")) != nil {
		t.Fatal("plain error should not match")
	}
}
