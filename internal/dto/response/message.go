package response

import (
	"time"

	"wonder-rides/internal/data/entity"
)

type MessageResponse struct {
	ID               string               `json:"id"`
	FirstName        string               `json:"first_name"`
	LastName         string               `json:"last_name"`
	Email            string               `json:"email"`
	Phone            *string              `json:"phone,omitempty"`
	ChildAge         *string              `json:"child_age,omitempty"`
	PreferredContact *string              `json:"preferred_contact,omitempty"`
	Subject          string               `json:"subject"`
	Message          string               `json:"message"`
	Status           entity.MessageStatus `json:"status"`
	CreatedAt        time.Time            `json:"created_at"`
}

func MessageToResponse(message *entity.Message) MessageResponse {
	return MessageResponse{
		ID:               message.ID.String(),
		FirstName:        message.FirstName,
		LastName:         message.LastName,
		Email:            message.Email,
		Phone:            message.Phone,
		ChildAge:         message.ChildAge,
		PreferredContact: message.PreferredContact,
		Subject:          message.Subject,
		Message:          message.Body,
		Status:           message.Status,
		CreatedAt:        message.CreatedAt,
	}
}

func MessagesToResponse(messages []*entity.Message) []MessageResponse {
	responses := make([]MessageResponse, len(messages))
	for i, message := range messages {
		responses[i] = MessageToResponse(message)
	}
	return responses
}
