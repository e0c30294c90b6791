package response

import (
	"encoding/json"
	"time"

	"wonder-rides/internal/data/entity"
)

type WaiverResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	ChildName     *string         `json:"child_name,omitempty"`
	Date          string          `json:"date"`
	Location      string          `json:"location"`
	SignatureData json.RawMessage `json:"signature_data,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

func WaiverToResponse(waiver *entity.Waiver) WaiverResponse {
	return WaiverResponse{
		ID:            waiver.ID.String(),
		Name:          waiver.Name,
		ChildName:     waiver.ChildName,
		Date:          waiver.Date.Format("2006-01-02"),
		Location:      waiver.Location,
		SignatureData: waiver.SignatureData,
		CreatedAt:     waiver.CreatedAt,
	}
}

func WaiversToResponse(waivers []*entity.Waiver) []WaiverResponse {
	responses := make([]WaiverResponse, len(waivers))
	for i, waiver := range waivers {
		responses[i] = WaiverToResponse(waiver)
	}
	return responses
}
