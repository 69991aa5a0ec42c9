package goban

import (
	"regexp"
	"strconv"
	"strings"
)

// HeaderInfo holds the control directives from the first diagram line.
type HeaderInfo struct {
	FirstColor  Color  // color of move 1, defaults to Black
	Coordinates bool   // coordinate labels requested
	BoardSize   int    // used for coordinate numbering only, defaults to 19
	Title       string // trailing free text, trimmed
}

var (
	// $$(color)?(coordinate flag)?(board size)?(title)
	headerRe = regexp.MustCompile(`^\$\$([WB])?(c)?([0-9]+)?(.*)$`)

	// A directive line contributes to the diagram body when its remainder
	// starts with something other than a bracket or whitespace.
	contentRe = regexp.MustCompile(`^\$\$(\s*[^\[\s].*)$`)

	// Link directive: $$ [anchor|url]. Tested independently of the
	// content shape, so a single line can contribute to both.
	linkRe = regexp.MustCompile(`^\$\$.*?\[([^|\]]+)\|([^\]]+)\]`)

	// Anchors are restricted to a single character of this alphabet.
	anchorRe = regexp.MustCompile(`^[a-z0-9WB@#CS]$`)
)

// parseHeader extracts the control directives from the first input line.
// ok is false when the line does not carry the $$ prefix at all, which is
// fatal for the whole diagram.
func parseHeader(line string) (HeaderInfo, bool) {
	m := headerRe.FindStringSubmatch(line)
	if m == nil {
		return HeaderInfo{}, false
	}
	h := HeaderInfo{FirstColor: Black, BoardSize: 19}
	if m[1] == "W" {
		h.FirstColor = White
	}
	h.Coordinates = m[2] != ""
	if m[3] != "" {
		if n, err := strconv.Atoi(m[3]); err == nil && n > 0 {
			h.BoardSize = n
		}
	}
	h.Title = strings.TrimSpace(m[4])
	return h, true
}

// scanLines walks the directive lines after the header. Each line is tested
// independently for body content and for a link directive; a single line may
// contribute to both, either, or neither. Lines without the $$ prefix are
// ignored entirely.
func scanLines(lines []string) (body string, links map[string]string) {
	links = make(map[string]string)
	var sb strings.Builder
	for _, line := range lines {
		if m := contentRe.FindStringSubmatch(line); m != nil {
			sb.WriteString(m[1])
			sb.WriteByte('\n')
		}
		if m := linkRe.FindStringSubmatch(line); m != nil {
			if anchorRe.MatchString(m[1]) {
				// Last write wins for repeated anchors.
				links[m[1]] = m[2]
			}
		}
	}
	return sb.String(), links
}
