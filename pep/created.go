package pep

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

// createdLayouts are tried in order before the lenient parser.  The first
// is how nearly every PEP writes its Created field, e.g. "05-Jul-2001".
var createdLayouts = []string{
	"2-Jan-2006",
	"2006-01-02",
	"2006/01/02",
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
}

var errUnknownDate = errors.New("not a recognisable date")

// leadingYearRe matches values written year first, e.g. "2000.03.01".
var leadingYearRe = regexp.MustCompile(`^\d{4}\D`)

// absoluteDates only accepts complete calendar dates.  Relative
// expressions ("tomorrow") and partial ones ("March 2000") are rejected
// rather than filled in from the current clock.
var absoluteDates = &dps.Parser{
	ParserTypes: []dps.ParserType{dps.AbsoluteTime, dps.CustomFormat},
}

func dateParserConfig(value string) *dps.Configuration {
	cfg := &dps.Configuration{
		DateOrder:       dps.DMY,
		DefaultTimezone: time.UTC,
		StrictParsing:   true,
		RequiredParts:   []string{"day", "month", "year"},
	}
	if leadingYearRe.MatchString(value) {
		cfg.DateOrder = dps.YMD
	}
	return cfg
}

// CreationDate returns the date in the Created header of the PEP at path,
// at midnight UTC.  A missing file gives an error matching fs.ErrNotExist,
// a missing or unparseable field a *ParseError.
func CreationDate(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	h, _, err := readHeader(path, f)
	if err != nil {
		return time.Time{}, err
	}
	return createdFromHeader(path, h.Get("Created"))
}

func createdFromHeader(path, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, &ParseError{Path: path, Field: "Created", Err: ErrMissingField}
	}
	t, err := ParseCreated(value)
	if err != nil {
		return time.Time{}, &ParseError{Path: path, Field: "Created", Value: value, Err: err}
	}
	return t, nil
}

// ParseCreated parses a Created header value and truncates it to midnight
// UTC.  Anything after an opening parenthesis is treated as a remark.
func ParseCreated(value string) (time.Time, error) {
	if i := strings.Index(value, "("); i >= 0 {
		value = value[:i]
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errUnknownDate
	}

	t, ok := parseLayouts(value)
	if !ok {
		d, err := absoluteDates.Parse(dateParserConfig(value), value)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %v", errUnknownDate, err)
		}
		if d.Time.IsZero() {
			return time.Time{}, errUnknownDate
		}
		t = d.Time
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func parseLayouts(value string) (time.Time, bool) {
	for _, layout := range createdLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
