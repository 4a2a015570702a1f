package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/wneessen/go-mail"
)

type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func GetEmailConfig() *EmailConfig {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	return &EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

func SendEmail(to, subject, htmlBody string) error {
	config := GetEmailConfig()
	if config.Host == "" || config.From == "" {
		return fmt.Errorf("SMTP not configured")
	}

	msg := mail.NewMsg()
	if err := msg.From(config.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	opts := []mail.Option{mail.WithPort(config.Port)}
	if config.Username != "" && config.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(config.Username),
			mail.WithPassword(config.Password),
		)
	}

	client, err := mail.NewClient(config.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	return client.DialAndSend(msg)
}

func SendWelcomeEmail(email, name string) {
	go func() {
		subject := "Welcome to SalonBook!"
		body := fmt.Sprintf(`<h2>Welcome to SalonBook, %s!</h2>
<p>Thank you for creating your account. You can now:</p>
<ul>
<li>Discover salons near you</li>
<li>See live staff availability and pick a time that works</li>
<li>Manage all your appointments in one place</li>
</ul>
<p>See you soon!</p>
<p>The SalonBook Team</p>`, strings.Split(name, " ")[0])
		if err := SendEmail(email, subject, body); err != nil {
			log.Printf("Failed to send welcome email to %s: %v", email, err)
		}
	}()
}

func SendPasswordResetEmail(email, name, token, frontendURL string) {
	go func() {
		resetLink := fmt.Sprintf("%s/reset-password?token=%s", frontendURL, token)
		subject := "Reset your SalonBook password"
		body := fmt.Sprintf(`<h2>Password Reset</h2>
<p>Hi %s,</p>
<p>We received a request to reset your password. Click the link below to choose a new one:</p>
<p><a href="%s">Reset password</a></p>
<p>The link expires in 1 hour. If you didn't request this, you can ignore this email.</p>
<p>The SalonBook Team</p>`, strings.Split(name, " ")[0], resetLink)
		if err := SendEmail(email, subject, body); err != nil {
			log.Printf("Failed to send password reset email to %s: %v", email, err)
		}
	}()
}

func SendBookingConfirmation(email, name, bookingNumber, salonName, staffName, date, startTime string) {
	go func() {
		subject := fmt.Sprintf("Booking Confirmed - %s", bookingNumber)
		body := fmt.Sprintf(`<h2>Booking Confirmed!</h2>
<p>Hi %s,</p>
<p>Your appointment is booked:</p>
<ul>
<li>Salon: %s</li>
<li>With: %s</li>
<li>Date: %s at %s</li>
<li>Reference: %s</li>
</ul>
<p>Need to change it? You can cancel or rebook from your account.</p>
<p>The SalonBook Team</p>`, strings.Split(name, " ")[0], salonName, staffName, date, startTime, bookingNumber)
		if err := SendEmail(email, subject, body); err != nil {
			log.Printf("Failed to send booking confirmation to %s: %v", email, err)
		}
	}()
}
