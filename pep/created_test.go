package pep

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreationDate(t *testing.T) {
	got, err := CreationDate("../testdata/peps/pep-0008.rst")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestCreationDateIsMidnight(t *testing.T) {
	paths, err := filepath.Glob("../testdata/peps/pep-*.rst")
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, p := range paths {
		got, err := CreationDate(p)
		require.NoError(t, err, p)
		h, m, s := got.Clock()
		assert.Zero(t, h+m+s, "%s: %s isn't midnight", p, got)
		assert.Zero(t, got.Nanosecond(), p)
		assert.Equal(t, time.UTC, got.Location(), p)
	}
}

func TestCreationDateIsRepeatable(t *testing.T) {
	first, err := CreationDate("../testdata/peps/pep-0484.rst")
	require.NoError(t, err)
	second, err := CreationDate("../testdata/peps/pep-0484.rst")
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
	assert.Equal(t, first, second)
}

func TestCreationDateMissingFile(t *testing.T) {
	_, err := CreationDate("../testdata/peps/pep-9999.rst")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
}

func TestCreationDateMissingField(t *testing.T) {
	got, err := CreationDate("../testdata/badpeps/pep-9001.rst")
	require.Error(t, err)
	assert.True(t, got.IsZero())
	assert.ErrorIs(t, err, ErrMissingField)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "Created", perr.Field)
}

func TestCreationDateUnparseable(t *testing.T) {
	_, err := CreationDate("../testdata/badpeps/pep-9002.rst")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "Created", perr.Field)
	assert.Equal(t, "xyzzy-plugh", perr.Value)
	assert.NotErrorIs(t, err, ErrMissingField)
}

func TestCreationDateMalformedHeader(t *testing.T) {
	_, err := CreationDate("../testdata/badpeps/pep-9003.rst")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Empty(t, perr.Field)
}

func TestCreationDateLongForm(t *testing.T) {
	got, err := CreationDate("../testdata/dates/pep-9004.rst")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 3, 7, 0, 0, 0, 0, time.UTC), got)
}

func TestCreationDateHandlesBOM(t *testing.T) {
	src, err := os.ReadFile("../testdata/peps/pep-0020.rst")
	require.NoError(t, err)
	p := filepath.Join(t.TempDir(), "pep-0020.rst")
	require.NoError(t, os.WriteFile(p, append([]byte("\xef\xbb\xbf"), src...), 0644))

	got, err := CreationDate(p)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2004, 8, 19, 0, 0, 0, 0, time.UTC), got)
}

func TestParseCreated(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"01-Mar-2000", time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"1-Mar-2000", time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC)},
		{" 05-Jul-2001 ", time.Date(2001, 7, 5, 0, 0, 0, 0, time.UTC)},
		{"29-Feb-2024 (leap day)", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"2000-03-01", time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"2000/03/01", time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"1 March 2000", time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"March 1, 2000", time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"01.03.2000", time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"2000.03.01", time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range tests {
		got, err := ParseCreated(tc.in)
		if assert.NoError(t, err, tc.in) {
			assert.Equal(t, tc.want, got, tc.in)
		}
	}

	invalid := []string{
		"", "(no date)",
		// relative
		"tomorrow", "yesterday", "now", "in 3 days",
		// partial
		"5", "2000", "March 2000", "Mar-2000",
	}
	for _, bad := range invalid {
		_, err := ParseCreated(bad)
		assert.ErrorIs(t, err, errUnknownDate, "%q", bad)
	}
}

func TestParseCreatedDoesNotDependOnClock(t *testing.T) {
	first, err := ParseCreated("07.03.2023")
	require.NoError(t, err)
	second, err := ParseCreated("07.03.2023")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 3, 7, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, first, second)
}
