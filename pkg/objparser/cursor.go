package objparser

import "bytes"

// cursor walks the raw OBJ text. Every advance is checked against len(buf).
type cursor struct {
	buf  []byte
	pos  int
	line int
}

func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf, line: 1}
}

func (c *cursor) eof() bool { return c.pos >= len(c.buf) }

func (c *cursor) hasPrefix(prefix string) bool {
	return c.pos < len(c.buf) && bytes.HasPrefix(c.buf[c.pos:], []byte(prefix))
}

// atLineEnd reports whether the cursor sits on a line boundary: the end of
// the buffer, '\n', or a '\r' that ends the line.
func (c *cursor) atLineEnd() bool {
	if c.eof() {
		return true
	}
	switch c.buf[c.pos] {
	case '\n':
		return true
	case '\r':
		return c.pos+1 == len(c.buf) || c.buf[c.pos+1] == '\n'
	}
	return false
}

// endLine consumes the boundary the cursor sits on and moves to the start
// of the next line.
func (c *cursor) endLine() {
	if c.pos < len(c.buf) && c.buf[c.pos] == '\r' {
		c.pos++
	}
	if c.pos < len(c.buf) && c.buf[c.pos] == '\n' {
		c.pos++
	}
	c.line++
}

func (c *cursor) skipLine() {
	if i := bytes.IndexByte(c.buf[c.pos:], '\n'); i >= 0 {
		c.pos += i + 1
	} else {
		c.pos = len(c.buf)
	}
	c.line++
}
