package http

import "strings"

const specialChars = "@$!%*?&#"

// validPassword enforces the pool's password policy at the boundary:
// at least one lowercase letter, one uppercase letter, one digit and
// one special character. Length is covered by the binding tag.
func validPassword(pw string) bool {
	var lower, upper, digit, special bool
	for _, r := range pw {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(specialChars, r):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}
