package pep

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

const sectionAdornments = "=-~^*#+"

var (
	literalRe   = regexp.MustCompile("``([^`]+)``")
	roleRe      = regexp.MustCompile(":([a-z][a-z0-9-]*):`([^`]+)`")
	hyperlinkRe = regexp.MustCompile("`([^`]+?)`__?")
	interpRe    = regexp.MustCompile("`([^`]+)`")
	strongRe    = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	emphasisRe  = regexp.MustCompile(`\*([^*\s][^*]*)\*`)
	targetRe    = regexp.MustCompile(`\s*<[^<>]+>$`)
)

// isUnderline reports whether line adorns a section title of width n.
func isUnderline(line string, n int) bool {
	line = strings.TrimRight(line, " \t")
	if len(line) < n || n == 0 {
		return false
	}
	c := line[0]
	if !strings.ContainsRune(sectionAdornments, rune(c)) {
		return false
	}
	return strings.Count(line, string(c)) == len(line)
}

// extractAbstract returns the first paragraph of the section titled
// "Abstract" as a single line of plain text, or "" if there isn't one.
func extractAbstract(body io.Reader) (string, error) {
	var lines []string
	sc := bufio.NewScanner(body)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return "", err
	}

	start := -1
	for i := 0; i+1 < len(lines); i++ {
		title := strings.TrimSpace(lines[i])
		if title == "Abstract" && isUnderline(lines[i+1], len(title)) {
			start = i + 2
			break
		}
	}
	if start < 0 {
		return "", nil
	}

	var para []string
	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			if len(para) > 0 {
				break
			}
			continue
		}
		// next section title with no paragraph in between
		if i+1 < len(lines) && isUnderline(lines[i+1], len(line)) {
			break
		}
		// directives and comments
		if len(para) == 0 && strings.HasPrefix(line, "..") {
			for i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" {
				i++
			}
			continue
		}
		para = append(para, line)
	}
	return PlainText(strings.Join(para, " ")), nil
}

// PlainText reduces common reStructuredText inline markup to its text.
func PlainText(s string) string {
	s = literalRe.ReplaceAllString(s, "$1")
	s = roleRe.ReplaceAllStringFunc(s, func(m string) string {
		sub := roleRe.FindStringSubmatch(m)
		role, text := sub[1], sub[2]
		if strings.Contains(text, "<") {
			return strings.TrimSpace(targetRe.ReplaceAllString(text, ""))
		}
		if role == "pep" {
			return "PEP " + text
		}
		return text
	})
	s = hyperlinkRe.ReplaceAllStringFunc(s, func(m string) string {
		text := hyperlinkRe.FindStringSubmatch(m)[1]
		return strings.TrimSpace(targetRe.ReplaceAllString(text, ""))
	})
	s = interpRe.ReplaceAllString(s, "$1")
	s = strongRe.ReplaceAllString(s, "$1")
	s = emphasisRe.ReplaceAllString(s, "$1")
	return strings.Join(strings.Fields(s), " ")
}
