package helpers

import (
	"fmt"
	"regexp"
	"strings"
)

var orcidPattern = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[\dX]$`)

// NormalizeORCID strips the orcid.org URL prefix, leaving the bare
// XXXX-XXXX-XXXX-XXXX form.
func NormalizeORCID(value string) string {
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, "https://orcid.org/")
	value = strings.TrimPrefix(value, "http://orcid.org/")
	return value
}

// CheckORCID reports whether value is a well-formed ORCID with a valid
// ISO 7064 11,2 check digit.
func CheckORCID(value string) error {
	id := NormalizeORCID(value)
	if !orcidPattern.MatchString(id) {
		return fmt.Errorf("invalid ORCID format: %s (expected XXXX-XXXX-XXXX-XXXX)", value)
	}

	digits := strings.ReplaceAll(id, "-", "")
	total := 0
	for _, r := range digits[:15] {
		total = (total + int(r-'0')) * 2
	}
	check := (12 - total%11) % 11
	want := byte('0' + check)
	if check == 10 {
		want = 'X'
	}
	if digits[15] != want {
		return fmt.Errorf("invalid ORCID check digit: %s", value)
	}
	return nil
}
