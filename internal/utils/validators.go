package utils

import (
	"net/mail"
	"unicode"
)

// IsValidEmail reports whether the address parses per RFC 5322 and carries
// no display name. Deliverability is not checked here.
func IsValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// IsComplexPassword enforces the account password policy: at least eight
// characters mixing upper case, lower case, a digit and a symbol.
func IsComplexPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}
