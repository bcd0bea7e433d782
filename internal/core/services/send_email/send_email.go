package sendemail

import (
	"blog/internal/core/domain/email"
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/logging"
	"blog/internal/core/services"
	"context"
)

type Input struct {
	Message email.Message
}

type Result struct{}

type service struct {
	log    logging.Logger
	sender email.Sender
}

func New(log logging.Logger, sender email.Sender) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	return &service{log: log, sender: sender}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.Message.To == "" {
		s.log.Warning(ctx, "Email without recipient skipped.", logging.Entry("subject", input.Message.Subject))
		return result, nil
	}
	if err := s.sender.Send(ctx, input.Message); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("subject", input.Message.Subject))
		return result, err
	}
	s.log.Info(ctx, "Email has been sent.", logging.Entry("subject", input.Message.Subject))
	return result, nil
}
