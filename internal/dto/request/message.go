package request

type UpdateMessageStatusRequest struct {
	ID     string `json:"id" validate:"required,uuid4"`
	Status string `json:"status" validate:"required,oneof=unread read ignored"`
}
