package usecase

import (
	"strings"
)

// ParseTags converts a comma-delimited tag field into an ordered list of
// trimmed tags. Blank input yields an empty list, and tokens that trim to
// the empty string (consecutive or trailing commas) are dropped, so the
// result is stable under rejoining with commas and reparsing.
func ParseTags(raw string) []string {
	tags := []string{}
	if strings.TrimSpace(raw) == "" {
		return tags
	}

	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		tags = append(tags, token)
	}
	return tags
}
