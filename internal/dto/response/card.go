package response

import (
	"time"

	"wonder-rides/internal/data/entity"
)

type CardResponse struct {
	ID              string            `json:"id"`
	Code            string            `json:"code"`
	Balance         int               `json:"balance"`
	InitialPunches  int               `json:"initial_punches"`
	CardType        string            `json:"card_type"`
	Status          entity.CardStatus `json:"status"`
	CustomerName    *string           `json:"customer_name,omitempty"`
	CustomerPhone   *string           `json:"customer_phone,omitempty"`
	CustomerEmail   *string           `json:"customer_email,omitempty"`
	ChildName       *string           `json:"child_name,omitempty"`
	ChildBirthMonth *string           `json:"child_birth_month,omitempty"`
	Notes           *string           `json:"notes,omitempty"`
	ValidFrom       *string           `json:"valid_from,omitempty"`
	UsedDates       []int             `json:"used_dates,omitempty"`
	LastUsedAt      *time.Time        `json:"last_used_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// RedeemResult distinguishes activation of a time-based pass from an
// actual balance decrement.
type RedeemResult struct {
	Card      CardResponse `json:"card"`
	Activated bool         `json:"activated"`
}

func CardToResponse(card *entity.PunchCard) CardResponse {
	resp := CardResponse{
		ID:              card.ID.String(),
		Code:            card.Code,
		Balance:         card.Balance,
		InitialPunches:  card.InitialPunches,
		CardType:        card.CardType,
		Status:          card.Status,
		CustomerName:    card.CustomerName,
		CustomerPhone:   card.CustomerPhone,
		CustomerEmail:   card.CustomerEmail,
		ChildName:       card.ChildName,
		ChildBirthMonth: card.ChildBirthMonth,
		Notes:           card.Notes,
		UsedDates:       card.UsedDates,
		LastUsedAt:      card.LastUsedAt,
		CreatedAt:       card.CreatedAt,
		UpdatedAt:       card.UpdatedAt,
	}

	if card.ValidFrom != nil {
		validFrom := card.ValidFrom.Format("2006-01-02")
		resp.ValidFrom = &validFrom
	}

	return resp
}

func CardsToResponse(cards []*entity.PunchCard) []CardResponse {
	responses := make([]CardResponse, len(cards))
	for i, card := range cards {
		responses[i] = CardToResponse(card)
	}
	return responses
}
