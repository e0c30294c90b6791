package request

type ContactRequest struct {
	FirstName        string `json:"firstName" validate:"required"`
	LastName         string `json:"lastName" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone,omitempty"`
	ChildAge         string `json:"childAge,omitempty"`
	PreferredContact string `json:"preferredContact,omitempty"`
	Subject          string `json:"subject,omitempty"`
	Message          string `json:"message" validate:"required"`
	CaptchaToken     string `json:"captchaToken" validate:"required"`
}
