package user

import "context"

type ValidationTokenSender interface {
	SendValidationToken(ctx context.Context, user User, token TokenValue) error
}
