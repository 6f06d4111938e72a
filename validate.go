package roster

import "regexp"

// Field format patterns shared by the client and the MCP tool schemas.
var (
	// emailRegex accepts anything shaped like local@domain.tld.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// phoneRegex is the Australian mobile format: 04 then 8 digits.
	phoneRegex = regexp.MustCompile(`^04\d{8}$`)
)

// PhonePattern is the phone number pattern advertised in tool schemas.
const PhonePattern = `^04\d{8}$`

// ValidEmail reports whether s is an acceptable email address.
func ValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// ValidPhone reports whether s is an acceptable mobile number.
func ValidPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

// validateCreate checks all required person fields.
func validateCreate(p CreateParams) error {
	if p.Name == "" {
		return ErrEmptyName
	}
	if !ValidEmail(p.Email) {
		return ErrInvalidEmail
	}
	if !ValidPhone(p.PhoneNumber) {
		return ErrInvalidPhone
	}
	return nil
}

// validateUpdate checks only the fields present in the patch.
func validateUpdate(p UpdateParams) error {
	if p.IsEmpty() {
		return ErrNoFields
	}
	if p.Email != "" && !ValidEmail(p.Email) {
		return ErrInvalidEmail
	}
	if p.PhoneNumber != "" && !ValidPhone(p.PhoneNumber) {
		return ErrInvalidPhone
	}
	return nil
}
