package service

const specialChars = "!@#$%^&*"

// IsValidPassword reports whether password satisfies the registration
// policy: at least 8 characters, at least one digit, at least one of
// !@#$%^&*, and nothing outside [a-zA-Z0-9!@#$%^&*].
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	hasDigit := false
	hasSpecial := false
	for i := 0; i < len(password); i++ {
		c := password[i]
		switch {
		case c >= '0' && c <= '9':
			hasDigit = true
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case isSpecial(c):
			hasSpecial = true
		default:
			return false
		}
	}
	return hasDigit && hasSpecial
}

func isSpecial(c byte) bool {
	for i := 0; i < len(specialChars); i++ {
		if specialChars[i] == c {
			return true
		}
	}
	return false
}
