package entity

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type AuditAction string

const (
	AuditActionIssue    AuditAction = "ISSUE"
	AuditActionRedeem   AuditAction = "REDEEM"
	AuditActionActivate AuditAction = "ACTIVATE"
)

// AuditLog is an append-only record of a staff-performed mutating
// action on the membership ledger.
type AuditLog struct {
	BaseSimple
	Action      AuditAction     `db:"action"`
	PerformedBy string          `db:"performed_by"`
	TargetID    uuid.UUID       `db:"target_id"`
	Details     json.RawMessage `db:"details"`
}

// AuditDetails is the typed per-action payload stored in the details
// column, one variant per action kind.
type AuditDetails interface {
	auditAction() AuditAction
}

// IssueFixedDetails records issuance of a fixed-ride package.
type IssueFixedDetails struct {
	Init int `json:"init"`
}

// IssuePassDetails records issuance of a time-based pass; From is the
// scheduled start date (YYYY-MM-DD) or empty in gift-card mode.
type IssuePassDetails struct {
	Type string `json:"type"`
	From string `json:"from,omitempty"`
}

// RedeemDetails records a balance decrement. Day is set only for
// time-based passes.
type RedeemDetails struct {
	Balance int  `json:"balance"`
	Day     *int `json:"day,omitempty"`
}

// ActivateDetails records first use of a time-based pass.
type ActivateDetails struct {
	From string `json:"from"`
}

func (IssueFixedDetails) auditAction() AuditAction { return AuditActionIssue }
func (IssuePassDetails) auditAction() AuditAction  { return AuditActionIssue }
func (RedeemDetails) auditAction() AuditAction     { return AuditActionRedeem }
func (ActivateDetails) auditAction() AuditAction   { return AuditActionActivate }

// NewAuditLog builds an entry from a typed details variant, deriving
// the action from the variant so the two can never disagree.
func NewAuditLog(performedBy string, targetID uuid.UUID, details AuditDetails) (*AuditLog, error) {
	raw, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("marshal audit details: %w", err)
	}

	return &AuditLog{
		Action:      details.auditAction(),
		PerformedBy: performedBy,
		TargetID:    targetID,
		Details:     raw,
	}, nil
}
