package parser

import "time"

// ParsedEmail holds the parts of an uploaded message the triage pipeline
// consumes.
type ParsedEmail struct {
	Subject    string
	Sender     string
	SenderName string
	Recipients []string
	Date       time.Time
	BodyText   string
	BodyHTML   string
}
