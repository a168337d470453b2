package notification

import (
	"fmt"

	"ouiimi/config"
	"ouiimi/utils"

	mailjet "github.com/mailjet/mailjet-apiv3-go/v4"
	"go.uber.org/zap"
)

// MailjetNotificationService implements NotificationService over the Mailjet API.
type MailjetNotificationService struct {
	client     *mailjet.Client
	sender     string
	senderName string
}

// NewMailjetNotificationService builds the Mailjet-backed sender. Returns a
// service with a nil client when credentials are missing; sends then degrade
// to log-only, which keeps development environments working without keys.
func NewMailjetNotificationService() *MailjetNotificationService {
	cfg := config.AppConfig
	svc := &MailjetNotificationService{
		sender:     cfg.MailjetSender,
		senderName: cfg.MailjetSenderName,
	}
	if cfg.MailjetAPIKey == "" || cfg.MailjetSecretKey == "" {
		utils.GetLogger().Warn("Mailjet credentials missing; emails will be logged only")
		return svc
	}
	svc.client = mailjet.NewMailjetClient(cfg.MailjetAPIKey, cfg.MailjetSecretKey)
	return svc
}

// send delivers one message and logs failures without surfacing them.
func (s *MailjetNotificationService) send(toEmail, toName, subject, textBody string, variables map[string]interface{}) {
	logger := utils.GetLogger()
	if toEmail == "" {
		logger.Warn("skipping email with empty recipient", zap.String("subject", subject))
		return
	}
	if s.client == nil {
		logger.Info("email (not sent, no credentials)",
			zap.String("to", toEmail), zap.String("subject", subject))
		return
	}

	messages := mailjet.MessagesV31{Info: []mailjet.InfoMessagesV31{{
		From: &mailjet.RecipientV31{
			Email: s.sender,
			Name:  s.senderName,
		},
		To: &mailjet.RecipientsV31{
			mailjet.RecipientV31{Email: toEmail, Name: toName},
		},
		Subject:   subject,
		TextPart:  textBody,
		Variables: variables,
	}}}

	if _, err := s.client.SendMailV31(&messages); err != nil {
		logger.Error("failed to send email",
			zap.String("to", toEmail), zap.String("subject", subject), zap.Error(err))
		return
	}
	logger.Info("email sent", zap.String("to", toEmail), zap.String("subject", subject))
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
