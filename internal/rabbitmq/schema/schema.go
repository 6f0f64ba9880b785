package schema

import "encoding/json"

type MailKind string

const (
	MailKindValidation    = MailKind("validation")
	MailKindPasswordReset = MailKind("password_reset")
)

// OutgoingMail is the queue message for a single account email. It
// carries everything the mailer needs, the consumer never goes back to
// the database.
type OutgoingMail struct {
	Kind      MailKind `json:"kind"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	Token     string   `json:"token"`
}

func (m *OutgoingMail) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *OutgoingMail) Unmarshal(data []byte) error {
	return json.Unmarshal(data, m)
}
