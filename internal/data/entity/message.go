package entity

type MessageStatus string

const (
	MessageStatusUnread  MessageStatus = "unread"
	MessageStatusRead    MessageStatus = "read"
	MessageStatusIgnored MessageStatus = "ignored"
)

// Message is a contact form submission. Status only moves forward
// through staff action.
type Message struct {
	BaseSimple
	FirstName        string        `db:"first_name"`
	LastName         string        `db:"last_name"`
	Email            string        `db:"email"`
	Phone            *string       `db:"phone"`
	ChildAge         *string       `db:"child_age"`
	PreferredContact *string       `db:"preferred_contact"`
	Subject          string        `db:"subject"`
	Body             string        `db:"message"`
	Status           MessageStatus `db:"status"`
}
