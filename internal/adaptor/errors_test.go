package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"wonder-rides/internal/usecase"
	"wonder-rides/pkg/utils"

	"go.uber.org/zap"
)

func TestHandleServiceErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", fmt.Errorf("%w: card not found", usecase.ErrNotFound), http.StatusNotFound},
		{"conflict", fmt.Errorf("%w: time slot overlaps", usecase.ErrConflict), http.StatusConflict},
		{"invalid state", fmt.Errorf("%w: pass has expired", usecase.ErrInvalidState), http.StatusBadRequest},
		{"validation", fmt.Errorf("%w: missing required fields", usecase.ErrValidation), http.StatusBadRequest},
		{"captcha", usecase.ErrCaptcha, http.StatusBadRequest},
		{"unknown", fmt.Errorf("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			handleServiceError(recorder, zap.NewNop(), tt.err, "test operation")

			if recorder.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, recorder.Code)
			}

			var body utils.Response
			if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if body.Status {
				t.Fatal("error responses must report status false")
			}
		})
	}
}

func TestHandleServiceErrorHidesInternals(t *testing.T) {
	recorder := httptest.NewRecorder()
	handleServiceError(recorder, zap.NewNop(), fmt.Errorf("pq: relation does not exist"), "test operation")

	var body utils.Response
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body.Message != "Internal server error" {
		t.Fatalf("internal detail leaked: %s", body.Message)
	}
}
