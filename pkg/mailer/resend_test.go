package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wonder-rides/pkg/utils"

	"go.uber.org/zap"
)

func TestSendDeliversEmail(t *testing.T) {
	var gotAuth string
	var gotPayload resendEmail
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	mail := NewResend(utils.EmailConfig{APIKey: "re_test", From: "noreply@example.com"}, zap.NewNop())
	mail.api = server.URL

	err := mail.Send(context.Background(), "admin@example.com", "New Inquiry", "<p>Hi</p>")
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if gotAuth != "Bearer re_test" {
		t.Fatalf("unexpected auth header: %s", gotAuth)
	}
	if gotPayload.To != "admin@example.com" || gotPayload.From != "noreply@example.com" {
		t.Fatalf("unexpected payload: %+v", gotPayload)
	}
	if gotPayload.HTML != "<p>Hi</p>" {
		t.Fatalf("html body lost: %+v", gotPayload)
	}
}

func TestSendReportsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	mail := NewResend(utils.EmailConfig{APIKey: "re_test", From: "noreply@example.com"}, zap.NewNop())
	mail.api = server.URL

	if err := mail.Send(context.Background(), "admin@example.com", "Subject", "body"); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}

func TestSendSkipsWithoutAPIKey(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	mail := NewResend(utils.EmailConfig{From: "noreply@example.com"}, zap.NewNop())
	mail.api = server.URL

	if err := mail.Send(context.Background(), "admin@example.com", "Subject", "body"); err != nil {
		t.Fatalf("missing key must be a silent skip: %v", err)
	}
	if called {
		t.Fatal("no request must be made without an API key")
	}
}
