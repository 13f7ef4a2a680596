package repository

import "strings"

// NormalizePlate lowers a license plate and strips separator characters,
// so lookups tolerate the formatting customers actually type.
func NormalizePlate(plate string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(plate) {
		if r == '-' || r == ' ' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
