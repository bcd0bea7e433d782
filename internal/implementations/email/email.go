package email

import (
	"blog/internal/core/domain/email"
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/user"
	"context"
	"fmt"
	"net/url"
)

const passwordResetSubject = "Password Reset Request"

// PasswordResetTokenSender composes the reset email and hands it to the
// configured sender.
type PasswordResetTokenSender struct {
	sender  email.Sender
	baseURL url.URL
}

func NewPasswordResetTokenSender(sender email.Sender, baseURL url.URL) *PasswordResetTokenSender {
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	return &PasswordResetTokenSender{sender: sender, baseURL: baseURL}
}

func (s *PasswordResetTokenSender) SendPasswordResetToken(
	ctx context.Context,
	u user.User,
	token user.PasswordResetToken,
) error {
	resetURL := s.baseURL.JoinPath(string(token))
	return s.sender.Send(ctx, email.Message{
		To:      u.Email,
		Subject: passwordResetSubject,
		Body:    passwordResetBody(resetURL.String()),
	})
}

func passwordResetBody(resetURL string) string {
	return fmt.Sprintf(
		"To reset your password, visit the following link:\n%s\n\n"+
			"If you did not make this request then simply ignore this email and no changes will be made.\n",
		resetURL,
	)
}
