package request

type SetAnnouncementRequest struct {
	Message  string `json:"message" validate:"required"`
	IsActive bool   `json:"is_active"`
}

type DeleteAnnouncementRequest struct {
	ID string `json:"id" validate:"required,uuid4"`
}
