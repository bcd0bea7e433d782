package user

import "context"

type PasswordResetToken string

// PasswordResetter issues self-contained reset tokens bound to a user ID.
// Verify returns ErrInvalidOrExpiredToken for anything it does not accept.
type PasswordResetter interface {
	Issue(userID ID) PasswordResetToken
	Verify(token PasswordResetToken) (ID, error)
}

type PasswordResetTokenSender interface {
	SendPasswordResetToken(ctx context.Context, user User, token PasswordResetToken) error
}
