package email

import (
	"blog/internal/core/domain/email"
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
	// Insecure allows plain-text delivery when the server does not offer STARTTLS.
	Insecure bool
}

type mailClient interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type SMTP struct {
	config    SMTPConfig
	newClient func(host string, options ...mail.Option) (mailClient, error)
}

func NewSMTP(config SMTPConfig) *SMTP {
	return &SMTP{
		config: config,
		newClient: func(host string, options ...mail.Option) (mailClient, error) {
			return mail.NewClient(host, options...)
		},
	}
}

func (s *SMTP) Send(ctx context.Context, message email.Message) error {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	msg := mail.NewMsg()
	if err := msg.From(s.config.From); err != nil {
		return fmt.Errorf("invalid sender address %q: %w", s.config.From, err)
	}
	if err := msg.To(string(message.To)); err != nil {
		return fmt.Errorf("invalid recipient address %q: %w", message.To, err)
	}
	msg.Subject(message.Subject)
	msg.SetBodyString(mail.TypeTextPlain, message.Body)

	client, err := s.newClient(s.config.Host, s.options()...)
	if err != nil {
		return fmt.Errorf("could not create SMTP client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("could not send email via SMTP: %w", err)
	}
	return nil
}

func (s *SMTP) options() []mail.Option {
	tlsPolicy := mail.TLSMandatory
	if s.config.Insecure {
		tlsPolicy = mail.TLSOpportunistic
	}
	options := []mail.Option{
		mail.WithPort(s.config.Port),
		mail.WithTLSPolicy(tlsPolicy),
	}
	if s.config.Timeout > 0 {
		options = append(options, mail.WithTimeout(s.config.Timeout))
	}
	if s.config.Username != "" {
		options = append(
			options,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.config.Username),
			mail.WithPassword(s.config.Password),
		)
	}
	return options
}
