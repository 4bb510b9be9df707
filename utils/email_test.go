package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPFromEnv(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.test.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("EMAIL_USER", "noreply@test.com")
	t.Setenv("EMAIL_PASS", "secret")

	cfg, err := SMTPFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "smtp.test.com", cfg.Host)
	assert.Equal(t, 2525, cfg.Port)
	assert.Equal(t, "noreply@test.com", cfg.Username)
	assert.Equal(t, "secret", cfg.Password)
}

func TestSMTPFromEnvInvalidPort(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.test.com")
	t.Setenv("SMTP_PORT", "not-a-port")

	_, err := SMTPFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP_PORT")
}

func TestSendEmailUnconfigured(t *testing.T) {
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_PORT", "")

	err := SendEmail("someone@test.com", "Hello", "<p>Hi</p>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP_HOST")
}
