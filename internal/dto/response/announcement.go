package response

import (
	"time"

	"wonder-rides/internal/data/entity"
)

type AnnouncementResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// PublicAnnouncementResponse is the trimmed shape shown on the site
// banner.
type PublicAnnouncementResponse struct {
	Message  string `json:"message"`
	IsActive bool   `json:"is_active"`
}

func AnnouncementToResponse(announcement *entity.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:        announcement.ID.String(),
		Message:   announcement.Message,
		IsActive:  announcement.IsActive,
		CreatedAt: announcement.CreatedAt,
	}
}

func AnnouncementsToResponse(announcements []*entity.Announcement) []AnnouncementResponse {
	responses := make([]AnnouncementResponse, len(announcements))
	for i, announcement := range announcements {
		responses[i] = AnnouncementToResponse(announcement)
	}
	return responses
}
