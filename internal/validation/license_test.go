package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLicenseNumber(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "valid", input: "AAA12345"},
		{name: "valid other letters", input: "ZQX00000"},
		{name: "too short", input: "AAA12", want: MsgLicenseLength},
		{name: "too long", input: "AAA123456", want: MsgLicenseLength},
		{name: "empty", input: "", want: MsgLicenseLength},
		{name: "two letters", input: "AA123456", want: MsgLicensePrefix},
		{name: "lowercase prefix", input: "aAA12345", want: MsgLicensePrefix},
		{name: "digit in suffix position", input: "AAA123a5", want: MsgLicenseSuffix},
		{name: "prefix checked before suffix", input: "aaaaaaaa", want: MsgLicensePrefix},
		{name: "non ascii letter", input: "ÄAA12345", want: MsgLicensePrefix},
		{name: "non ascii digit", input: "AAA1234٣", want: MsgLicenseSuffix},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateLicenseNumber(tc.input)
			if tc.want == "" {
				assert.NoError(t, err)
				return
			}

			var fe *FieldError
			require.True(t, errors.As(err, &fe), "expected *FieldError, got %v", err)
			assert.Equal(t, LicenseNumberField, fe.Field)
			assert.Equal(t, tc.want, fe.Message)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestValidateLicenseNumber_AnyWrongLength(t *testing.T) {
	for n := 0; n <= 16; n++ {
		if n == LicenseNumberLength {
			continue
		}
		input := strings.Repeat("A", n)
		err := ValidateLicenseNumber(input)

		var fe *FieldError
		require.True(t, errors.As(err, &fe), "length %d", n)
		assert.Equal(t, MsgLicenseLength, fe.Message, "length %d", n)
	}
}

func TestValidateLicenseNumber_BadPrefixWinsOverBadSuffix(t *testing.T) {
	for _, prefix := range []string{"aaa", "AA1", "A-A", "   ", "AbC"} {
		err := ValidateLicenseNumber(prefix + "xxxxx")

		var fe *FieldError
		require.True(t, errors.As(err, &fe), prefix)
		assert.Equal(t, MsgLicensePrefix, fe.Message, prefix)
	}
}

func TestValidateLicenseNumber_BadSuffix(t *testing.T) {
	for _, suffix := range []string{"1234a", "a1234", "12 34", "-1234", "12.34"} {
		err := ValidateLicenseNumber("ABC" + suffix)

		var fe *FieldError
		require.True(t, errors.As(err, &fe), suffix)
		assert.Equal(t, MsgLicenseSuffix, fe.Message, suffix)
	}
}

func TestErrors(t *testing.T) {
	var errs Errors
	assert.NoError(t, errs.Err())

	errs.Required("name", "  ")
	errs.Required("country", "France")
	errs.AddError("ignored", ValidateLicenseNumber("AAA12"))
	errs.AddError("username", errors.New("already taken"))
	errs.AddError("nothing", nil)

	err := errs.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, map[string][]string{
		"name":           {MsgRequired},
		"license_number": {MsgLicenseLength},
		"username":       {"already taken"},
	}, errs.Fields)
	assert.Equal(t,
		"validation failed: license_number: "+MsgLicenseLength+"; name: "+MsgRequired+"; username: already taken",
		err.Error())
}

func TestErrors_AddErrorMerges(t *testing.T) {
	var errs Errors
	errs.AddError(PasswordField, ValidatePassword("short", "other"))

	assert.Equal(t, map[string][]string{
		PasswordField:             {MsgPasswordTooShort},
		PasswordConfirmationField: {MsgPasswordMismatch},
	}, errs.Fields)
}
