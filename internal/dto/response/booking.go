package response

import (
	"time"

	"wonder-rides/internal/data/entity"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	StartTime     time.Time            `json:"start_time"`
	EndTime       time.Time            `json:"end_time"`
	CustomerName  string               `json:"customer_name"`
	CustomerPhone string               `json:"customer_phone"`
	ChildName     *string              `json:"child_name,omitempty"`
	ChildAge      *int                 `json:"child_age,omitempty"`
	PackageType   string               `json:"package_type"`
	DepositAmount float64              `json:"deposit_amount"`
	Notes         *string              `json:"notes,omitempty"`
	Status        entity.BookingStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:            booking.ID.String(),
		StartTime:     booking.StartTime,
		EndTime:       booking.EndTime,
		CustomerName:  booking.CustomerName,
		CustomerPhone: booking.CustomerPhone,
		ChildName:     booking.ChildName,
		ChildAge:      booking.ChildAge,
		PackageType:   booking.PackageType,
		DepositAmount: booking.DepositAmount,
		Notes:         booking.Notes,
		Status:        booking.Status,
		CreatedAt:     booking.CreatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = BookingToResponse(booking)
	}
	return responses
}
