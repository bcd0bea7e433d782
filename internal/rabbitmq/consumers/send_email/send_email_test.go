package sendemail

import (
	"blog/internal/core/domain/email"
	"blog/internal/core/domain/logging"
	sendemail "blog/internal/core/services/send_email"
	"blog/internal/rabbitmq/schema"
	"context"
	"testing"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
)

type fakeAcknowledger struct {
	Acked    []uint64
	Nacked   []uint64
	Requeued []bool
}

func (a *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	a.Acked = append(a.Acked, tag)
	return nil
}

func (a *fakeAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	a.Nacked = append(a.Nacked, tag)
	a.Requeued = append(a.Requeued, requeue)
	return nil
}

func (a *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

type testSuite struct {
	suite.Suite
	Logger       *logging.FakeLogger
	Sender       *email.FakeSender
	Acknowledger *fakeAcknowledger
	Consumer     *Consumer
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Sender = email.NewFakeSender()
	suite.Acknowledger = &fakeAcknowledger{}
	suite.Consumer = &Consumer{
		log:     suite.Logger,
		queue:   "emails",
		service: sendemail.New(suite.Logger, suite.Sender),
	}
}

func TestSendEmailConsumer(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) delivery(body []byte, redelivered bool) amqp091.Delivery {
	return amqp091.Delivery{
		Acknowledger: s.Acknowledger,
		DeliveryTag:  1,
		Redelivered:  redelivered,
		Body:         body,
	}
}

func (s *testSuite) emailBody() []byte {
	body, err := (&schema.Email{To: "John@Example.com", Subject: "Hi", Body: "Body"}).Marshal()
	s.Require().Nil(err)
	return body
}

func (s *testSuite) TestDeliveredEmailIsAcked() {
	s.Consumer.Handle(context.Background(), s.delivery(s.emailBody(), false))

	s.Equal([]email.Message{{To: "john@example.com", Subject: "Hi", Body: "Body"}}, s.Sender.Sent)
	s.Equal([]uint64{1}, s.Acknowledger.Acked)
	s.Empty(s.Acknowledger.Nacked)
}

func (s *testSuite) TestMalformedMessageIsDropped() {
	s.Consumer.Handle(context.Background(), s.delivery([]byte("{"), false))

	s.Empty(s.Sender.Sent)
	s.Equal([]bool{false}, s.Acknowledger.Requeued)
}

func (s *testSuite) TestFailedDeliveryIsRequeuedOnce() {
	s.Sender.ReturnError = true

	s.Consumer.Handle(context.Background(), s.delivery(s.emailBody(), false))
	s.Consumer.Handle(context.Background(), s.delivery(s.emailBody(), true))

	s.Equal([]bool{true, false}, s.Acknowledger.Requeued)
	s.Empty(s.Acknowledger.Acked)
}
