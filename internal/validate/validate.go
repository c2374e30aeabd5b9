// Package validate holds the input validators shared by the dialog steps.
package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{9,14}$`)
	bolPattern   = regexp.MustCompile(`^\d{8,12}$`)
)

// Phone reports whether s looks like an international phone number:
// optional leading +, first digit 1-9, 10 to 15 digits total.
func Phone(s string) bool {
	return phonePattern.MatchString(strings.TrimSpace(s))
}

// BOL reports whether s is a bill of lading number of 8 to 12 digits.
func BOL(s string) bool {
	return bolPattern.MatchString(strings.TrimSpace(s))
}

// NonEmpty reports whether s contains non-whitespace content.
func NonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TaskID parses s as a positive numeric task identifier.
func TaskID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
