package feed

import "time"

// rfc2822GMT is the pubDate form RSS readers expect.  The zone is always
// written as GMT.
const rfc2822GMT = "Mon, 02 Jan 2006 15:04:05 GMT"

// FormatRFC2822 formats t for an RSS pubDate or lastBuildDate, e.g.
// "Thu, 20 Mar 2025 12:34:56 GMT".
//
// t is treated as a naive UTC timestamp: its wall clock is printed as is and
// no zone conversion happens, whatever t.Location() says.
func FormatRFC2822(t time.Time) string {
	return t.Format(rfc2822GMT)
}
