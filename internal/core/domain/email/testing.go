package email

import (
	"context"
	"sync"
)

type FakeSender struct {
	Sent        []Message
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeSender() *FakeSender {
	return &FakeSender{}
}

func (s *FakeSender) Send(ctx context.Context, message Message) error {
	if s.ReturnError {
		return ErrSendEmail
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, message)
	return nil
}
