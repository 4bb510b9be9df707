package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePasswordStrength(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"too short", "Ab1!", "Password must be at least 8 characters long"},
		{"no uppercase", "abcdef1!", "Password must contain at least one uppercase letter"},
		{"no lowercase", "ABCDEF1!", "Password must contain at least one lowercase letter"},
		{"no digit", "Abcdefg!", "Password must contain at least one number"},
		{"no special", "Abcdefg1", "Password must contain at least one special character"},
		// 7 characters, 11 bytes: length is counted in characters.
		{"too short multibyte", "Ačéíž1!", "Password must be at least 8 characters long"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tc.password)
			require.Error(t, err)
			assert.Equal(t, tc.wantErr, err.Error())
		})
	}

	t.Run("strong password", func(t *testing.T) {
		assert.NoError(t, ValidatePasswordStrength("DemoPass123!"))
	})
}
