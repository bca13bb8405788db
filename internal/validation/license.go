package validation

const (
	LicenseNumberField  = "license_number"
	LicenseNumberLength = 8

	licensePrefixLength = 3

	MsgLicenseLength = "License number should consist of 8 characters"
	MsgLicensePrefix = "First 3 characters should be uppercase letters"
	MsgLicenseSuffix = "Last 5 characters should be digits"
)

// ValidateLicenseNumber checks the driver license format: three uppercase
// ASCII letters followed by five ASCII digits. Rules are checked in that
// order and the first failure is returned as a *FieldError. The value is
// never normalized.
func ValidateLicenseNumber(value string) error {
	runes := []rune(value)
	if len(runes) != LicenseNumberLength {
		return &FieldError{Field: LicenseNumberField, Message: MsgLicenseLength}
	}

	for _, r := range runes[:licensePrefixLength] {
		if r < 'A' || r > 'Z' {
			return &FieldError{Field: LicenseNumberField, Message: MsgLicensePrefix}
		}
	}

	for _, r := range runes[licensePrefixLength:] {
		if r < '0' || r > '9' {
			return &FieldError{Field: LicenseNumberField, Message: MsgLicenseSuffix}
		}
	}

	return nil
}
