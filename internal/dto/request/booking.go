package request

import "time"

type CreateBookingRequest struct {
	StartTime     time.Time `json:"start_time" validate:"required"`
	EndTime       time.Time `json:"end_time" validate:"required"`
	CustomerName  string    `json:"customer_name" validate:"required"`
	CustomerPhone string    `json:"customer_phone" validate:"required"`
	ChildName     string    `json:"child_name,omitempty"`
	ChildAge      *int      `json:"child_age,omitempty" validate:"omitempty,min=0,max=18"`
	PackageType   string    `json:"package_type,omitempty"`
	DepositAmount float64   `json:"deposit_amount,omitempty" validate:"omitempty,min=0"`
	Notes         string    `json:"notes,omitempty"`
}
