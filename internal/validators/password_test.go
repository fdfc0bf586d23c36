package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordValidator_Validate(t *testing.T) {
	v := NewPasswordValidator()

	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Passw0rd", false},
		{"valid long", "CorrectHorseBattery1", false},
		{"too short", "Pw1", true},
		{"no uppercase", "password1", true},
		{"no lowercase", "PASSWORD1", true},
		{"no digit", "Password", true},
		{"empty", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.password)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrWeakPassword)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPasswordValidator_ValidateConfirmation(t *testing.T) {
	v := NewPasswordValidator()

	assert.NoError(t, v.ValidateConfirmation("Passw0rd", "Passw0rd"))
	assert.ErrorIs(t, v.ValidateConfirmation("Passw0rd", "Passw0rd!"), ErrPasswordsDoNotMatch)

	// mismatch is reported before strength
	assert.ErrorIs(t, v.ValidateConfirmation("short", "different"), ErrPasswordsDoNotMatch)

	// matching but weak still fails
	assert.ErrorIs(t, v.ValidateConfirmation("short", "short"), ErrWeakPassword)
}
