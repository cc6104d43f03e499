// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// Optional + prefix followed by 2-15 digits, enough for both local
// Brazilian numbers and full E.164.
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// ValidatePhone reports whether phone looks like a dialable number
// after stripping common separators.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phoneSeparators.Replace(phone))
}
