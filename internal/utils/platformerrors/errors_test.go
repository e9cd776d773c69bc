package platformerrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorTypeToHTTPStatus(t *testing.T) {
	cases := []struct {
		errorType ErrorType
		want      int
	}{
		{ErrorTypeValidation, http.StatusBadRequest},
		{ErrorTypeNotFound, http.StatusNotFound},
		{ErrorTypeExternal, http.StatusBadGateway},
		{ErrorTypeTimeout, http.StatusGatewayTimeout},
		{ErrorTypeInternal, http.StatusInternalServerError},
		{ErrorType("unknown"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := ErrorTypeToHTTPStatus(tc.errorType); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.errorType, tc.want, got)
		}
	}
}

func TestIsProviderError(t *testing.T) {
	ctx := context.Background()

	external := NewError(ctx, LayerInfrastructure, ErrorTypeExternal, "upstream down", nil, "")
	if !IsProviderError(external) {
		t.Fatalf("expected external error to be a provider error")
	}

	timeout := NewError(ctx, LayerInfrastructure, ErrorTypeTimeout, "upstream slow", nil, "")
	if !IsProviderError(timeout) {
		t.Fatalf("expected timeout error to be a provider error")
	}

	validation := NewError(ctx, LayerHandler, ErrorTypeValidation, "bad input", nil, "")
	if IsProviderError(validation) {
		t.Fatalf("validation error is not a provider error")
	}

	if IsProviderError(errors.New("plain")) {
		t.Fatalf("plain error is not a provider error")
	}
}

func TestIsProviderErrorUnwrapsWrappedErrors(t *testing.T) {
	inner := NewError(context.Background(), LayerInfrastructure, ErrorTypeExternal, "upstream down", nil, "")
	wrapped := fmt.Errorf("search failed: %w", inner)

	if !IsProviderError(wrapped) {
		t.Fatalf("expected wrapped provider error to be recognized")
	}
}

func TestErrorCarriesRequestID(t *testing.T) {
	ctx := context.WithValue(context.Background(), "requestID", "req-123") //nolint:staticcheck

	err := NewError(ctx, LayerDomain, ErrorTypeInternal, "boom", nil, "")
	if err.GetRequestID() != "req-123" {
		t.Fatalf("expected request id from context, got %q", err.GetRequestID())
	}
}

func TestAsErrorPreservesPlatformError(t *testing.T) {
	ctx := context.Background()
	original := NewError(ctx, LayerInfrastructure, ErrorTypeNotFound, "missing", nil, "")

	converted := AsError(ctx, LayerDomain, original, "lookup failed")
	if converted.Type != ErrorTypeNotFound {
		t.Fatalf("expected original type preserved, got %s", converted.Type)
	}
}
