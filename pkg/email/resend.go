package email

import (
	"os"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

// Notifier is the outbound mail contract the workflows depend on.
// Delivery is best effort; callers treat failures as non-blocking.
type Notifier interface {
	Send(to, subject, body string) error
}

type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
	logger   *zap.Logger
}

func NewEmailService(logger *zap.Logger) *EmailService {
	return &EmailService{
		client:   resend.NewClient(os.Getenv("RESEND_API_KEY")),
		from:     os.Getenv("EMAIL_FROM_ADDRESS"),
		fromName: os.Getenv("EMAIL_FROM_NAME"),
		logger:   logger,
	}
}

func (s *EmailService) Send(to, subject, body string) error {
	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("failed to send email",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("email sent",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("id", resp.Id),
	)
	return nil
}
