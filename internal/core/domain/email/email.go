package email

import (
	c "blog/internal/core/domain/common"
	"context"
	"errors"
)

var ErrSendEmail = errors.New("could not send email")

type Message struct {
	To      c.Email
	Subject string
	Body    string
}

type Sender interface {
	Send(ctx context.Context, message Message) error
}
