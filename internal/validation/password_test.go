package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name         string
		password     string
		confirmation string
		want         map[string][]string
	}{
		{name: "valid", password: "password123", confirmation: "password123"},
		{
			name:         "too short",
			password:     "short",
			confirmation: "short",
			want:         map[string][]string{PasswordField: {MsgPasswordTooShort}},
		},
		{
			name:         "mismatch",
			password:     "password123",
			confirmation: "password321",
			want:         map[string][]string{PasswordConfirmationField: {MsgPasswordMismatch}},
		},
		{
			name: "empty",
			want: map[string][]string{PasswordField: {MsgRequired}},
		},
		{
			name:         "short and mismatched",
			password:     "abc",
			confirmation: "abd",
			want: map[string][]string{
				PasswordField:             {MsgPasswordTooShort},
				PasswordConfirmationField: {MsgPasswordMismatch},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePassword(tc.password, tc.confirmation)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}

			var errs *Errors
			require.True(t, errors.As(err, &errs))
			assert.Equal(t, tc.want, errs.Fields)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}
