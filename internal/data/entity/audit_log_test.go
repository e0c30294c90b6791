package entity

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestNewAuditLogDerivesAction(t *testing.T) {
	target := uuid.New()

	tests := []struct {
		name    string
		details AuditDetails
		want    AuditAction
	}{
		{"fixed issue", IssueFixedDetails{Init: 6}, AuditActionIssue},
		{"pass issue", IssuePassDetails{Type: "weekly_pass", From: "2026-03-01"}, AuditActionIssue},
		{"redeem", RedeemDetails{Balance: 5}, AuditActionRedeem},
		{"activate", ActivateDetails{From: "2026-03-01"}, AuditActionActivate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := NewAuditLog("Alice", target, tt.details)
			if err != nil {
				t.Fatalf("NewAuditLog returned error: %v", err)
			}
			if entry.Action != tt.want {
				t.Fatalf("expected action %s, got %s", tt.want, entry.Action)
			}
			if entry.PerformedBy != "Alice" || entry.TargetID != target {
				t.Fatalf("attribution lost: %+v", entry)
			}
			if !json.Valid(entry.Details) {
				t.Fatalf("details are not valid JSON: %s", entry.Details)
			}
		})
	}
}

func TestNewAuditLogRedeemDayOmitted(t *testing.T) {
	entry, err := NewAuditLog("Alice", uuid.New(), RedeemDetails{Balance: 4})
	if err != nil {
		t.Fatalf("NewAuditLog returned error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(entry.Details, &decoded); err != nil {
		t.Fatalf("unmarshal details: %v", err)
	}
	if _, ok := decoded["day"]; ok {
		t.Fatal("day must be omitted for fixed-card redemptions")
	}
	if decoded["balance"] != float64(4) {
		t.Fatalf("unexpected balance: %v", decoded["balance"])
	}
}
