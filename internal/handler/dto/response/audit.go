package response

import (
	"encoding/json"
	"time"

	"stay-admin/internal/usecase/shared"
)

type AuditEntryResponse struct {
	ID              string          `json:"id"`
	Action          string          `json:"action"`
	ActorID         string          `json:"actorId"`
	AccommodationID string          `json:"accommodationId,omitempty"`
	TargetID        string          `json:"targetId,omitempty"`
	Payload         json.RawMessage `json:"payload,omitempty"`
	Outcome         string          `json:"outcome"`
	Error           string          `json:"error,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func FromAuditEntries(entries []shared.AuditEntry) []*AuditEntryResponse {
	res := make([]*AuditEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = &AuditEntryResponse{
			ID:              e.ID.String(),
			Action:          string(e.Action),
			ActorID:         e.ActorID,
			AccommodationID: e.AccommodationID,
			TargetID:        e.TargetID,
			Payload:         e.Payload,
			Outcome:         e.Outcome,
			Error:           e.Error,
			CreatedAt:       e.CreatedAt,
		}
	}
	return res
}
