// Package cleaner turns a raw email thread into triage-ready text: it
// extracts header metadata and runs the ordered structural cleanup pipeline
// (HTML stripping, transport headers, quoted replies, signatures,
// whitespace). The stages are order-sensitive; each one assumes the shape
// left by the previous.
package cleaner

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var transportHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^Message-ID:[^\n]*\n?`),
	regexp.MustCompile(`(?im)^MIME-Version:[^\n]*\n?`),
	regexp.MustCompile(`(?im)^Content-Type:[^\n]*\n?`),
	regexp.MustCompile(`(?im)^Content-Transfer-Encoding:[^\n]*\n?`),
	regexp.MustCompile(`(?im)^X-[^:\n]+:[^\n]*\n?`),
	regexp.MustCompile(`(?im)^Received:[^\n]*\n?`),
	regexp.MustCompile(`(?im)^Return-Path:[^\n]*\n?`),
}

var (
	// Quoted blocks run from the attribution line up to the first blank
	// line (or end of text); the terminator is kept via $1.
	replyQuotePattern  = regexp.MustCompile(`(?s)On .+? wrote:.*?(\n\n|\z)`)
	forwardedPattern   = regexp.MustCompile(`(?is)-+\s*Forwarded message\s*-+.*?(\n\n|\z)`)
	originalMsgPattern = regexp.MustCompile(`(?is)-+\s*Original Message\s*-+.*?(\n\n|\z)`)
)

// Signature heuristics. The closing-word patterns consume the closing line
// plus up to four following non-blank lines; this can eat legitimate
// trailing content that merely starts with "Regards" and the like. Known
// lossy behavior, kept as-is.
var signaturePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?ism)^--[ \t]*\n.*`),
	regexp.MustCompile(`(?im)^Thanks,?[ \t]*\n[^\n]+(?:\n[^\n]+){0,3}`),
	regexp.MustCompile(`(?im)^Regards,?[ \t]*\n[^\n]+(?:\n[^\n]+){0,3}`),
	regexp.MustCompile(`(?im)^Best,?[ \t]*\n[^\n]+(?:\n[^\n]+){0,3}`),
	regexp.MustCompile(`(?im)^Sincerely,?[ \t]*\n[^\n]+(?:\n[^\n]+){0,3}`),
	regexp.MustCompile(`(?im)^Cheers,?[ \t]*\n[^\n]+(?:\n[^\n]+){0,3}`),
	regexp.MustCompile(`(?i)Sent from my \w+`),
	regexp.MustCompile(`(?i)Get Outlook for \w+`),
}

var blankRunPattern = regexp.MustCompile(`\n\s*\n\s*\n+`)

// Clean runs the full structural cleanup pipeline and returns the cleaned
// body text. It never fails: malformed markup degrades to best-effort
// extraction rather than an error.
func Clean(emailText string) string {
	text := stripHTML(emailText)
	text = removeTransportHeaders(text)
	text = removeQuotedText(text)
	text = removeSignatures(text)
	return normalizeWhitespace(text)
}

// stripHTML extracts visible text from HTML-wrapped input. It only fires
// when an <html or <body opening tag is present; anything else passes
// through untouched.
func stripHTML(emailText string) string {
	lower := strings.ToLower(emailText)
	if !strings.Contains(lower, "<html") && !strings.Contains(lower, "<body") {
		return emailText
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(emailText))
	if err != nil {
		// Fail open: downstream stages still get something to work with.
		return emailText
	}
	doc.Find("script, style").Remove()
	text := doc.Text()

	// Break lines apart on runs of two spaces so layout-driven gaps become
	// line breaks for the whitespace normalization stage.
	var chunks []string
	for _, line := range strings.Split(text, "\n") {
		for _, phrase := range strings.Split(strings.TrimSpace(line), "  ") {
			phrase = strings.TrimSpace(phrase)
			if phrase != "" {
				chunks = append(chunks, phrase)
			}
		}
	}
	return strings.Join(chunks, "\n")
}

// removeTransportHeaders drops transport/MIME header lines. Subject, From,
// To and Date stay in the body; metadata extraction runs separately against
// the original text.
func removeTransportHeaders(emailText string) string {
	for _, p := range transportHeaderPatterns {
		emailText = p.ReplaceAllString(emailText, "")
	}
	return emailText
}

// removeQuotedText strips quoted and forwarded content from earlier
// messages in the thread.
func removeQuotedText(emailText string) string {
	cleaned := replyQuotePattern.ReplaceAllString(emailText, "$1")

	lines := strings.Split(cleaned, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), ">") {
			continue
		}
		kept = append(kept, line)
	}
	cleaned = strings.Join(kept, "\n")

	cleaned = forwardedPattern.ReplaceAllString(cleaned, "$1")
	cleaned = originalMsgPattern.ReplaceAllString(cleaned, "$1")
	return cleaned
}

func removeSignatures(emailText string) string {
	for _, p := range signaturePatterns {
		emailText = p.ReplaceAllString(emailText, "")
	}
	return emailText
}

// normalizeWhitespace collapses runs of blank lines to a single blank line,
// right-trims every line, and trims the whole text.
func normalizeWhitespace(emailText string) string {
	emailText = blankRunPattern.ReplaceAllString(emailText, "\n\n")

	lines := strings.Split(emailText, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
