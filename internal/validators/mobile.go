package validators

import "regexp"

var mobilePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)

// IsMobileValid reports whether s is a 10 digit mobile number starting with 6-9.
func IsMobileValid(s string) bool {
	return mobilePattern.MatchString(s)
}
