package pep

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAbstract(t *testing.T) {
	body := `
Abstract
========

First line of the
abstract.

Second paragraph.

Motivation
==========
`
	got, err := extractAbstract(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, "First line of the abstract.", got)
}

func TestExtractAbstractSkipsDirectives(t *testing.T) {
	body := `
Abstract
--------

.. note:: This PEP has been withdrawn
   and is kept for history.

Real text.
`
	got, err := extractAbstract(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, "Real text.", got)
}

func TestExtractAbstractEmptySection(t *testing.T) {
	body := "Abstract\n========\n\nRationale\n=========\n\nNot the abstract.\n"
	got, err := extractAbstract(strings.NewReader(body))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExtractAbstractShortUnderline(t *testing.T) {
	body := "Abstract\n===\n\nNot a section.\n"
	got, err := extractAbstract(strings.NewReader(body))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPlainText(t *testing.T) {
	tests := map[string]string{
		"use ``x := 1``":                       "use x := 1",
		"see :pep:`8`":                         "see PEP 8",
		"see :pep:`the style guide <8>`":       "see the style guide",
		"the :func:`len` builtin":              "the len builtin",
		"read `the docs <https://x.org>`_ now": "read the docs now",
		"anon `link <https://x.org>`__":        "anon link",
		"**strong** and *emphasis*":            "strong and emphasis",
		"`interpreted`":                        "interpreted",
		"a  b\tc":                              "a b c",
	}
	for in, want := range tests {
		assert.Equal(t, want, PlainText(in), in)
	}
}
