package response

// CustomerPrefill is the lookup result used to prefill booking and
// card forms from a known phone number.
type CustomerPrefill struct {
	CustomerName    *string `json:"customer_name"`
	ChildName       *string `json:"child_name"`
	ChildBirthMonth *string `json:"child_birth_month"`
}
