package gmail

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
)

// Message holds the fields of a single outgoing email. It has no identity
// beyond the send attempt it is built for.
type Message struct {
	To          []string
	Cc          []string
	Bcc         []string
	Subject     string
	Body        string
	HTML        bool
	Attachments []string
}

func (m *Message) validate() error {
	if len(m.To) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}
	if m.Subject == "" {
		return fmt.Errorf("subject is required")
	}
	if m.Body == "" {
		return fmt.Errorf("body is required")
	}
	return nil
}

// Raw encodes the message as the base64url RFC 2822 payload the Gmail API
// expects in the raw field of a send request.
func (m *Message) Raw() (string, error) {
	if err := m.validate(); err != nil {
		return "", err
	}

	var b strings.Builder

	b.WriteString("To: ")
	b.WriteString(strings.Join(m.To, ", "))
	b.WriteString("\r\n")

	if len(m.Cc) > 0 {
		b.WriteString("Cc: ")
		b.WriteString(strings.Join(m.Cc, ", "))
		b.WriteString("\r\n")
	}

	if len(m.Bcc) > 0 {
		b.WriteString("Bcc: ")
		b.WriteString(strings.Join(m.Bcc, ", "))
		b.WriteString("\r\n")
	}

	// Encode for non-ASCII characters like umlauts
	b.WriteString("Subject: ")
	b.WriteString(encodeRFC2047(m.Subject))
	b.WriteString("\r\n")

	b.WriteString("MIME-Version: 1.0\r\n")

	if len(m.Attachments) == 0 {
		b.WriteString("Content-Type: ")
		b.WriteString(m.contentType())
		b.WriteString("\r\n\r\n")
		b.WriteString(m.Body)
	} else {
		if err := m.writeMultipart(&b); err != nil {
			return "", err
		}
	}

	return base64.URLEncoding.EncodeToString([]byte(b.String())), nil
}

func (m *Message) contentType() string {
	if m.HTML {
		return `text/html; charset="UTF-8"`
	}
	return `text/plain; charset="UTF-8"`
}

// writeMultipart writes a multipart/mixed body: the text part first, then
// each attachment as a base64-encoded part with a content-disposition header.
func (m *Message) writeMultipart(b *strings.Builder) error {
	mw := multipart.NewWriter(b)

	b.WriteString(`Content-Type: multipart/mixed; boundary="`)
	b.WriteString(mw.Boundary())
	b.WriteString("\"\r\n\r\n")

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Type", m.contentType())
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(part, m.Body); err != nil {
		return err
	}

	for _, path := range m.Attachments {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("unable to read attachment %s: %w", path, err)
		}

		name := filepath.Base(path)
		ctype := mime.TypeByExtension(filepath.Ext(name))
		if ctype == "" {
			ctype = "application/octet-stream"
		}

		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Type", fmt.Sprintf("%s; name=%q", ctype, name))
		hdr.Set("Content-Transfer-Encoding", "base64")
		hdr.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))

		part, err := mw.CreatePart(hdr)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(part, base64.StdEncoding.EncodeToString(data)); err != nil {
			return err
		}
	}

	return mw.Close()
}

// encodeRFC2047 encodes a header value per RFC 2047 when it contains
// non-ASCII characters, and returns it unchanged otherwise.
func encodeRFC2047(s string) string {
	needsEncoding := false
	for _, r := range s {
		if r > 127 {
			needsEncoding = true
			break
		}
	}
	if !needsEncoding {
		return s
	}
	return mime.BEncoding.Encode("UTF-8", s)
}
