package validation

import (
	"regexp"
	"sort"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail validates email format. Used as a shape check only:
// participants are identified by whatever text the caller supplied, so a
// failing check is logged, never rejected.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// RequireNonEmpty returns the names of required parameters whose values
// are empty after trimming.
func RequireNonEmpty(params map[string]string) []string {
	var missing []string
	for name, value := range params {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}
