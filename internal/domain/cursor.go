package domain

import "regexp"

// LineCursor is a forward-only position over captured output. Parsing passes
// share one cursor explicitly; once a line is consumed it is not seen again.
type LineCursor struct {
	lines []string
	pos   int
}

// NewLineCursor returns a cursor positioned before the first line.
func NewLineCursor(lines []string) *LineCursor {
	return &LineCursor{lines: lines}
}

// Next returns the next line, or false at end of input.
func (c *LineCursor) Next() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}

	line := c.lines[c.pos]
	c.pos++

	return line, true
}

// ScanTo advances past the first line matching re and returns its submatches
// and the line itself. At end of input it returns ok=false and the cursor is
// exhausted.
func (c *LineCursor) ScanTo(re *regexp.Regexp) (match []string, line string, ok bool) {
	for {
		line, more := c.Next()
		if !more {
			return nil, "", false
		}

		if match := re.FindStringSubmatch(line); match != nil {
			return match, line, true
		}
	}
}

// Position is the number of lines consumed so far.
func (c *LineCursor) Position() int {
	return c.pos
}

// Done reports whether every line has been consumed.
func (c *LineCursor) Done() bool {
	return c.pos >= len(c.lines)
}
