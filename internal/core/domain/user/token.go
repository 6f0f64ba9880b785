package user

import "time"

type TokenValue string

type TokenPurpose string

const (
	// PurposeValidation tokens are issued on registration and exchanged
	// once to activate the account.
	PurposeValidation TokenPurpose = "validation"
	// PurposeReset tokens are issued on password reset requests. At most
	// one per account is outstanding, a fresh one supersedes the rest.
	PurposeReset TokenPurpose = "reset"
)

// Token is a single-use opaque credential scoped to one account. It is
// valid for exchange only while present in the store and not expired,
// a successful exchange deletes it.
type Token struct {
	Value     TokenValue
	UserID    ID
	Purpose   TokenPurpose
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (t *Token) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

type TokenGenerator interface {
	GenerateToken() TokenValue
}
