package feed

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// plainText strips any HTML that found its way into a PEP abstract.  The
// result is unescaped again since the XML encoder does its own escaping.
func plainText(s string) string {
	s = strictPolicy.Sanitize(s)
	return strings.Join(strings.Fields(html.UnescapeString(s)), " ")
}
