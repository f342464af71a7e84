// Package parser converts uploaded .eml messages into the raw thread text
// the triage pipeline consumes.
package parser

import (
	"fmt"
	"io"
	"mime"
	"strings"
	"time"

	"github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
	"golang.org/x/text/encoding/charmap"
)

func init() {
	// Register additional charsets that are commonly used in emails
	charset.RegisterEncoding("windows-1252", charmap.Windows1252)
	charset.RegisterEncoding("iso-8859-1", charmap.ISO8859_1)
	charset.RegisterEncoding("iso-8859-15", charmap.ISO8859_15)
}

// ParseEML parses an email from a reader
func ParseEML(r io.Reader) (*ParsedEmail, error) {
	mr, err := mail.CreateReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail reader: %w", err)
	}

	parsed := &ParsedEmail{}
	header := mr.Header

	// Subject - decode MIME words
	parsed.Subject = decodeMIMEWord(header.Get("Subject"))

	// From
	if fromAddrs, err := header.AddressList("From"); err == nil && len(fromAddrs) > 0 {
		parsed.Sender = fromAddrs[0].Address
		parsed.SenderName = fromAddrs[0].Name
	}

	// To
	if toAddrs, err := header.AddressList("To"); err == nil {
		for _, addr := range toAddrs {
			parsed.Recipients = append(parsed.Recipients, addr.Address)
		}
	}

	// Date; a missing or malformed header leaves the zero time.
	if date, err := header.Date(); err == nil {
		parsed.Date = date
	}

	// Walk the inline parts for the body; attachments are irrelevant to
	// triage and skipped.
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read part: %w", err)
		}

		h, ok := part.Header.(*mail.InlineHeader)
		if !ok {
			continue
		}

		contentType, _, _ := h.ContentType()
		body, err := io.ReadAll(part.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read body: %w", err)
		}

		if strings.HasPrefix(contentType, "text/plain") {
			if parsed.BodyText == "" {
				parsed.BodyText = string(body)
			}
		} else if strings.HasPrefix(contentType, "text/html") {
			parsed.BodyHTML = string(body)
		}
	}

	return parsed, nil
}

// TriageText renders the parsed message back into the header-plus-body
// text the cleaning pipeline expects. Plain text is preferred; an
// HTML-only message passes its markup through for the HTML-stripping
// stage.
func (p *ParsedEmail) TriageText() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", p.Subject)
	fmt.Fprintf(&b, "From: %s\n", p.FromLine())
	fmt.Fprintf(&b, "To: %s\n", strings.Join(p.Recipients, ", "))
	if !p.Date.IsZero() {
		fmt.Fprintf(&b, "Date: %s\n", p.Date.Format(time.RFC1123Z))
	}
	b.WriteString("\n")

	if p.BodyText != "" {
		b.WriteString(p.BodyText)
	} else {
		b.WriteString(p.BodyHTML)
	}

	return b.String()
}

// FromLine renders the sender as it would appear in a From header.
func (p *ParsedEmail) FromLine() string {
	if p.SenderName != "" {
		return fmt.Sprintf("%s <%s>", p.SenderName, p.Sender)
	}
	return p.Sender
}

// decodeMIMEWord decodes MIME-encoded words (RFC 2047)
// Example: =?UTF-8?Q?Invitaci=C3=B3n?= -> Invitación
func decodeMIMEWord(s string) string {
	dec := new(mime.WordDecoder)
	decoded, err := dec.DecodeHeader(s)
	if err != nil {
		// If decoding fails, return original string
		return s
	}
	return decoded
}
