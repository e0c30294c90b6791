package request

// IssueCardRequest creates a new punch card. ValidFrom only applies to
// time-based pass types: set for a scheduled start, empty for
// gift-card mode (activated on first use instead).
type IssueCardRequest struct {
	Code            string `json:"code" validate:"required,min=1,max=32"`
	InitialPunches  int    `json:"initial_punches" validate:"required,min=1,max=365"`
	CardType        string `json:"card_type" validate:"required,min=1,max=64"`
	CustomerName    string `json:"customer_name,omitempty"`
	CustomerPhone   string `json:"customer_phone,omitempty"`
	CustomerEmail   string `json:"customer_email,omitempty" validate:"omitempty,email"`
	ChildName       string `json:"child_name,omitempty"`
	ChildBirthMonth string `json:"child_birth_month,omitempty"`
	Notes           string `json:"notes,omitempty"`
	ValidFrom       string `json:"valid_from,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type RedeemCardRequest struct {
	ID string `json:"id" validate:"required,uuid4"`
}
