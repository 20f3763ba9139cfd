package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/matchodds/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestMapError_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid input", err: fmt.Errorf("%w: bad id", usecase.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "precondition", err: fmt.Errorf("%w: empty cache", usecase.ErrPreconditionFailed), want: http.StatusBadRequest},
		{name: "unauthorized", err: usecase.ErrUnauthorized, want: http.StatusUnauthorized},
		{name: "not found", err: fmt.Errorf("%w: match", usecase.ErrNotFound), want: http.StatusNotFound},
		{name: "scrape failed", err: fmt.Errorf("%w: timeout", usecase.ErrScrapeFailed), want: http.StatusBadGateway},
		{name: "dependency", err: usecase.ErrDependencyUnavailable, want: http.StatusServiceUnavailable},
		{name: "unknown", err: fmt.Errorf("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapError(context.Background(), tt.err).HTTPStatus; got != tt.want {
				t.Fatalf("mapError(%v)=%d want=%d", tt.err, got, tt.want)
			}
		})
	}
}

func TestWriteError_HidesInternalMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("dial tcp 10.0.0.1: refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	errorObj, _ := body["error"].(map[string]any)
	if got, _ := errorObj["message"].(string); got != "internal server error" {
		t.Fatalf("expected generic message, got %q", got)
	}
}
