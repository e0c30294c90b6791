package response

import (
	"encoding/json"
	"time"

	"wonder-rides/internal/data/entity"
	"wonder-rides/internal/data/repository"
)

type AuditEntryResponse struct {
	ID          string             `json:"id"`
	Action      entity.AuditAction `json:"action"`
	PerformedBy string             `json:"performed_by"`
	TargetID    string             `json:"target_id"`
	TargetCode  *string            `json:"target_code,omitempty"`
	Details     json.RawMessage    `json:"details"`
	CreatedAt   time.Time          `json:"created_at"`
}

func AuditEntryToResponse(entry *repository.AuditEntryWithCode) AuditEntryResponse {
	return AuditEntryResponse{
		ID:          entry.ID.String(),
		Action:      entry.Action,
		PerformedBy: entry.PerformedBy,
		TargetID:    entry.TargetID.String(),
		TargetCode:  entry.TargetCode,
		Details:     entry.Details,
		CreatedAt:   entry.CreatedAt,
	}
}

// AuditLogToResponse renders a bare entry (card history view, where the
// code is already known to the caller).
func AuditLogToResponse(entry *entity.AuditLog) AuditEntryResponse {
	return AuditEntryResponse{
		ID:          entry.ID.String(),
		Action:      entry.Action,
		PerformedBy: entry.PerformedBy,
		TargetID:    entry.TargetID.String(),
		Details:     entry.Details,
		CreatedAt:   entry.CreatedAt,
	}
}

func AuditLogsToResponse(entries []*entity.AuditLog) []AuditEntryResponse {
	responses := make([]AuditEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = AuditLogToResponse(entry)
	}
	return responses
}
