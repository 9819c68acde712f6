package utils

import "strings"

// NormalizeEmail is the canonical form used whenever accounts are grouped or
// looked up by email. Stored emails may have mixed case; comparisons must not.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeDisplayName builds "First Last" with each part capitalized.
func NormalizeDisplayName(first, last string) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{first, last} {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		parts = append(parts, strings.ToUpper(p[:1])+strings.ToLower(p[1:]))
	}
	return strings.Join(parts, " ")
}
