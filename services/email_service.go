package services

import (
	"context"
	"fmt"
	"ims_server/database"
	"ims_server/lib"
	"ims_server/structs"
	"ims_server/structs/tables"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
	db     *database.DB
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		db:     db,
		client: getEmailClient(cfg.Email.ApiKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendVerificationEmail stores a verification token for the user and mails
// the activation link. New accounts stay inactive until the link is used.
func (es *EmailService) SendVerificationEmail(user *tables.User) (*tables.EmailVerification, error) {
	token, err := lib.GenerateRandomToken()
	if err != nil {
		es.logger.Error("Failed to generate verification token", gecho.Field("error", err))
		return nil, err
	}

	expiration := time.Now().Add(es.cfg.Email.VerificationTokenExpiry)

	emailVerif := &tables.EmailVerification{
		UserId:    user.Id,
		Token:     token,
		ExpiresAt: expiration,
		CreatedAt: time.Now(),
	}

	result, err := database.Query[tables.EmailVerification](es.db).Insert(context.Background(), emailVerif)
	if err != nil {
		es.logger.Error("Failed to store email verification token", gecho.Field("error", err))
		return nil, err
	}

	verificationLink := fmt.Sprintf("%s/users/verify-email?token=%s&user_id=%s", es.cfg.Server.FrontendURL, token, user.Id.String())

	emailBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #2c3e50; color: white; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #f9f9f9; }
				.button { display: inline-block; padding: 15px 30px; background-color: #2c3e50; color: white; text-decoration: none; border-radius: 5px; margin: 20px 0; }
				.footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>Verify your email address</h1>
				</div>
				<div class="content">
					<p>Hi %s,</p>
					<p>Activate your account by clicking the following link:</p>
					<p style="text-align: center;">
						<a href="%s" class="button">Verify Email</a>
					</p>
					<p>This link will expire in %.0f hours.</p>
					<p>If you did not create an account, please ignore this email.</p>

					<p>Link not working? Copy and paste the following URL into your browser:</p>
					<p style="word-break: break-all;">%s</p>
				</div>
				<div class="footer">
					<p>%s | Inventory Management</p>
				</div>
			</div>
		</body>
		</html>
	`, user.FirstName, verificationLink, time.Until(expiration).Hours(), verificationLink, es.cfg.Server.AppName)

	err = es.SendEmail([]string{user.Email}, "Verify your email", emailBody)
	if err != nil {
		es.logger.Error("Failed to send verification email", gecho.Field("error", err), gecho.Field("to", user.Email))
		return nil, err
	}

	return result, err
}
