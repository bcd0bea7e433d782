package email

import (
	"blog/internal/core/domain/email"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SES struct {
	client sesAPI
	// This address must be verified with Amazon SES.
	sender string
}

func NewSES(awsConfig aws.Config, sender string) *SES {
	return &SES{client: ses.NewFromConfig(awsConfig), sender: sender}
}

func (s *SES) Send(ctx context.Context, message email.Message) error {
	_, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(s.sender),
		Destination: &types.Destination{
			ToAddresses: []string{string(message.To)},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(message.Subject), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(message.Body), Charset: aws.String("UTF-8")},
			},
		},
	})
	return err
}
