package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the mail settings read once at startup. The zero value
// (no host) means mail delivery is not configured.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPFromEnv reads SMTP_HOST, SMTP_PORT, EMAIL_USER and EMAIL_PASS.
// Environment loading happens once in db.Init, not here.
func SMTPFromEnv() (SMTPConfig, error) {
	cfg := SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Username: os.Getenv("EMAIL_USER"),
		Password: os.Getenv("EMAIL_PASS"),
	}
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("invalid SMTP_PORT %q: %w", raw, err)
		}
		cfg.Port = port
	}
	return cfg, nil
}

// SendEmail delivers an HTML email through the configured SMTP server.
func SendEmail(to, subject, body string) error {
	cfg, err := SMTPFromEnv()
	if err != nil {
		return err
	}
	if cfg.Host == "" {
		return fmt.Errorf("SMTP_HOST is not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.Username)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return d.DialAndSend(m)
}
