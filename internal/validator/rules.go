package validator

import "regexp"

var (
	EmailRX    = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	PasswordRX = regexp.MustCompile(`^[A-Za-z]\w{7,14}$`)
	MobileRX   = regexp.MustCompile(`^\d{10,15}$`)
)

// ValidEmail reports whether email looks like user@domain.tld.
func ValidEmail(email string) bool {
	return EmailRX.MatchString(email)
}

// ValidPassword reports whether password is 8 to 15 word characters long
// and starts with an ASCII letter.
func ValidPassword(password string) bool {
	return PasswordRX.MatchString(password)
}

// ValidMobile reports whether mobile is 10 to 15 ASCII digits.
func ValidMobile(mobile string) bool {
	return MobileRX.MatchString(mobile)
}
