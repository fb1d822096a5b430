package objparser

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	vec3Names = []string{"x", "y", "z"}
	vec2Names = []string{"u", "v"}
)

func isVectorChar(ch byte) bool {
	return ch == '-' || ch == '.' || (ch >= '0' && ch <= '9')
}

func parseVec3(c *cursor) (mgl32.Vec3, error) {
	var v mgl32.Vec3
	err := parseVector(c, v[:], vec3Names)
	return v, err
}

func parseVec2(c *cursor) (mgl32.Vec2, error) {
	var v mgl32.Vec2
	err := parseVector(c, v[:], vec2Names)
	return v, err
}

// parseVector reads len(dst) space separated components from the cursor up
// to the line boundary, leaving the cursor on the boundary. Trailing spaces
// after the last component are allowed.
func parseVector(c *cursor, dst []float32, names []string) error {
	var fields [3][]byte
	last := len(dst) - 1
	n := 0
	start := c.pos
	end := -1
	for ; !c.atLineEnd(); c.pos++ {
		ch := c.buf[c.pos]
		if ch == ' ' {
			if n < last {
				fields[n] = c.buf[start:c.pos]
				n++
				start = c.pos + 1
			} else if end < 0 {
				end = c.pos
			}
			continue
		}
		if end >= 0 {
			return fmt.Errorf("%w after %s component", ErrExtraField, names[last])
		}
		if !isVectorChar(ch) {
			return fmt.Errorf("%w %q", ErrInvalidCharacter, ch)
		}
	}
	if n < last {
		return fmt.Errorf("%w: line ends before the %s component", ErrMissingField, names[n+1])
	}
	if end < 0 {
		end = c.pos
	}
	fields[last] = c.buf[start:end]

	for i := range dst {
		f, err := parseFloat(fields[i])
		if err != nil {
			return fmt.Errorf("%s component: %w", names[i], err)
		}
		dst[i] = f
	}
	return nil
}
