package user

import "context"

type PasswordResetTokenSender interface {
	SendPasswordResetToken(ctx context.Context, user User, token TokenValue) error
}
