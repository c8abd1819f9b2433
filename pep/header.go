package pep

import (
	"bufio"
	"io"
	"net/mail"
	"strings"
)

// readHeader splits a PEP into its RFC 822 header and reStructuredText body.
// Continuation lines are folded into the preceding field.
func readHeader(path string, r io.Reader) (mail.Header, io.Reader, error) {
	// Some PEPs carry a UTF-8 BOM, which textproto rejects as a header key.
	br := bufio.NewReader(r)
	if b, err := br.Peek(3); err == nil && string(b) == "\xef\xbb\xbf" {
		br.Discard(3)
	}

	msg, err := mail.ReadMessage(br)
	if err != nil {
		return nil, nil, &ParseError{Path: path, Err: err}
	}
	return msg.Header, msg.Body, nil
}

// field returns the trimmed value of a required header field.
func field(path string, h mail.Header, name string) (string, error) {
	v := strings.TrimSpace(h.Get(name))
	if v == "" {
		return "", &ParseError{Path: path, Field: name, Err: ErrMissingField}
	}
	return v, nil
}

// splitAuthors turns an Author field into display names, dropping any
// "<email>" parts.
func splitAuthors(v string) []string {
	var authors []string
	for _, a := range strings.Split(v, ",") {
		if i := strings.Index(a, "<"); i >= 0 {
			a = a[:i]
		}
		a = strings.Join(strings.Fields(a), " ")
		if a != "" {
			authors = append(authors, a)
		}
	}
	return authors
}
