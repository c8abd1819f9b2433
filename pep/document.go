// Package pep reads the metadata pepfeed needs out of Python Enhancement
// Proposal source files.
//
// A PEP is an RFC 822 style header block followed by a reStructuredText
// body:
//
//	PEP: 8
//	Title: Style Guide for Python Code
//	Author: Guido van Rossum <guido@python.org>,
//	        Barry Warsaw <barry@python.org>
//	Created: 05-Jul-2001
//
//	Abstract
//	========
//	...
//
// Everything here is read only and keeps no state between calls.
package pep

import (
	"errors"
	"fmt"
	"io"
	"net/mail"
	"os"
	"strconv"
	"time"
)

var errNotANumber = errors.New("not a PEP number")

// Document is the parsed metadata of one PEP.
type Document struct {
	Path     string
	Number   int
	Title    string
	Authors  []string
	Status   string
	Type     string
	Created  time.Time // midnight UTC
	Abstract string    // plain text, may be empty

	Header mail.Header
}

// Load opens and parses the PEP at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(path, f)
}

// Parse reads a PEP from r.  path is only used in errors and copied into the
// returned Document.
func Parse(path string, r io.Reader) (*Document, error) {
	h, body, err := readHeader(path, r)
	if err != nil {
		return nil, err
	}

	num, err := field(path, h, "PEP")
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 0 {
		return nil, &ParseError{Path: path, Field: "PEP", Value: num, Err: errNotANumber}
	}

	title, err := field(path, h, "Title")
	if err != nil {
		return nil, err
	}

	created, err := createdFromHeader(path, h.Get("Created"))
	if err != nil {
		return nil, err
	}

	abstract, err := extractAbstract(body)
	if err != nil {
		return nil, fmt.Errorf("%s: reading body: %w", path, err)
	}

	return &Document{
		Path:     path,
		Number:   n,
		Title:    title,
		Authors:  splitAuthors(h.Get("Author")),
		Status:   h.Get("Status"),
		Type:     h.Get("Type"),
		Created:  created,
		Abstract: abstract,
		Header:   h,
	}, nil
}

// URL returns the document's page under baseURL, which must end in '/'.
func (d *Document) URL(baseURL string) string {
	return fmt.Sprintf("%spep-%04d/", baseURL, d.Number)
}
