package validators

import (
	"net/mail"
	"strings"
)

// IsEmailFormatValid accepts a bare address such as "admin@x.com".
// Display-name forms ("Admin <admin@x.com>") are rejected.
func IsEmailFormatValid(email string) bool {
	if email == "" || strings.ContainsAny(email, " <>") {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email && strings.Contains(email[strings.LastIndex(email, "@")+1:], ".")
}
