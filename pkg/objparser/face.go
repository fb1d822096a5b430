package objparser

import "fmt"

// corner is one face corner: 0-based indices into the declared positions,
// texture coordinates and normals.
type corner struct {
	pos, tex, norm uint32
}

var groupNames = [3]string{"vertex", "texture", "normal"}

// isIndexChar reports whether ch may appear in an index. A minus sign is let
// through so relative indices fail as numbers rather than as characters.
func isIndexChar(ch byte) bool {
	return ch == '-' || (ch >= '0' && ch <= '9')
}

// parseIndexGroup reads a V/T/N group. All three indices are required.
// The cursor is left on the byte that ended the group (a space or the line
// boundary).
func parseIndexGroup(c *cursor) (corner, error) {
	var fields [3][]byte
	n := 0
	start := c.pos
	for ; !c.atLineEnd() && c.buf[c.pos] != ' '; c.pos++ {
		if ch := c.buf[c.pos]; ch != '/' {
			if !isIndexChar(ch) {
				return corner{}, fmt.Errorf("%w %q", ErrInvalidCharacter, ch)
			}
			continue
		}
		if n == len(fields)-1 {
			return corner{}, fmt.Errorf("%w '/': more than 3 indices in group", ErrInvalidCharacter)
		}
		fields[n] = c.buf[start:c.pos]
		n++
		start = c.pos + 1
	}
	fields[n] = c.buf[start:c.pos]

	var idx [3]uint32
	for i, f := range fields {
		if len(f) == 0 {
			return corner{}, fmt.Errorf("%w: no %s index", ErrMissingIndex, groupNames[i])
		}
		u, err := parseUint(f)
		if err != nil {
			return corner{}, fmt.Errorf("%s index: %w", groupNames[i], err)
		}
		if u == 0 {
			return corner{}, fmt.Errorf("%s index: %w", groupNames[i], ErrZeroIndex)
		}
		idx[i] = u - 1
	}
	return corner{pos: idx[0], tex: idx[1], norm: idx[2]}, nil
}

// parseFace reads exactly three index groups separated by single spaces.
// The third group must be followed by the line boundary.
func parseFace(c *cursor) ([3]corner, error) {
	var face [3]corner
	for i := range face {
		if i > 0 {
			if c.eof() {
				return face, fmt.Errorf("%w after %d index groups", ErrUnexpectedEOF, i)
			}
			if c.atLineEnd() {
				return face, fmt.Errorf("%w: found %d", ErrFaceArity, i)
			}
			// separator
			c.pos++
		}
		g, err := parseIndexGroup(c)
		if err != nil {
			return face, fmt.Errorf("index group %d: %w", i+1, err)
		}
		face[i] = g
	}
	if !c.atLineEnd() {
		return face, fmt.Errorf("%w: line continues after the third group, the face may not be triangulated or the file is corrupted", ErrFaceArity)
	}
	return face, nil
}
