package cleaner

import (
	"regexp"
	"strings"

	"mailtriage/internal/models"
)

var (
	subjectPattern = regexp.MustCompile(`(?i)Subject:\s*(.+?)(?:\n|$)`)
	fromPattern    = regexp.MustCompile(`(?i)From:\s*(.+?)(?:\n|$)`)
	toPattern      = regexp.MustCompile(`(?i)To:\s*(.+?)(?:\n|$)`)
	datePattern    = regexp.MustCompile(`(?i)Date:\s*(.+?)(?:\n|$)`)
)

// ExtractMetadata pulls subject/from/to/date out of the raw thread text.
// Only the first occurrence of each header counts; a header that is absent
// leaves its zero value. Extraction is total and never fails.
func ExtractMetadata(emailText string) models.EmailMetadata {
	meta := models.EmailMetadata{To: []string{}}

	if m := subjectPattern.FindStringSubmatch(emailText); m != nil {
		meta.Subject = strings.TrimSpace(m[1])
	}
	if m := fromPattern.FindStringSubmatch(emailText); m != nil {
		meta.From = strings.TrimSpace(m[1])
	}
	if m := toPattern.FindStringSubmatch(emailText); m != nil {
		for _, addr := range strings.Split(m[1], ",") {
			meta.To = append(meta.To, strings.TrimSpace(addr))
		}
	}
	if m := datePattern.FindStringSubmatch(emailText); m != nil {
		meta.Date = strings.TrimSpace(m[1])
	}

	return meta
}
