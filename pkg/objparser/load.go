// Package objparser loads a restricted subset of Wavefront OBJ (v, vt, vn
// and fully indexed triangle faces) into flat, non-indexed arrays that can
// be uploaded to a GPU buffer as they are.
//
// Every other line kind is ignored. The first malformed record aborts the
// load and no partial result is returned.
package objparser

import (
	"io"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// Limits bounds the scratch storage of a load. Buffers are sized once from
// these values and never grow; a record past a limit fails the load.
type Limits struct {
	MaxVertices int
	MaxNormals  int
	// MaxTexCoords bounds vt records. Zero means MaxIndices is used.
	MaxTexCoords int
	// MaxIndices bounds the number of face corners (3 per face).
	MaxIndices int
}

func (l Limits) texCoords() int {
	if l.MaxTexCoords == 0 {
		return l.MaxIndices
	}
	return l.MaxTexCoords
}

func (l Limits) valid() bool {
	return l.MaxVertices >= 0 && l.MaxNormals >= 0 && l.MaxTexCoords >= 0 && l.MaxIndices >= 0
}

// Loader parses OBJ text under fixed Limits. Diagnostics for failed loads
// are written to Log; a nil Log discards them.
type Loader struct {
	Limits
	Log *log.Logger
}

// Load reads the OBJ file at path. Failures are described on stderr and
// returned as an error; the result is nil whenever the error is not.
func Load(path string, maxVertices, maxNormals, maxIndices int) (*Result, error) {
	l := &Loader{
		Limits: Limits{
			MaxVertices: maxVertices,
			MaxNormals:  maxNormals,
			MaxIndices:  maxIndices,
		},
		Log: log.New(os.Stderr, "objparser: ", log.LstdFlags),
	}
	return l.Load(path)
}

// Load reads and parses the OBJ file at path.
func (l *Loader) Load(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		l.logf("could not read %s: %v", path, err)
		return nil, err
	}
	return l.Parse(data)
}

// Decode parses OBJ text read from r until EOF.
func (l *Loader) Decode(r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		l.logf("could not read OBJ stream: %v", err)
		return nil, err
	}
	return l.Parse(data)
}

// Parse loads OBJ text held in memory. data is not retained.
func (l *Loader) Parse(data []byte) (*Result, error) {
	if !l.Limits.valid() {
		l.logf("%v: %+v", ErrInvalidLimits, l.Limits)
		return nil, ErrInvalidLimits
	}
	s, err := scan(data, l.Limits)
	if err != nil {
		l.logf("%v", err)
		return nil, err
	}
	res, err := s.assemble()
	if err != nil {
		l.logf("%v", err)
		return nil, err
	}
	return res, nil
}

func (l *Loader) logf(format string, args ...interface{}) {
	if l.Log != nil {
		l.Log.Printf(format, args...)
	}
}

// scratch holds the declared attributes and face corners of one load.
type scratch struct {
	positions []mgl32.Vec3
	texCoords []mgl32.Vec2
	normals   []mgl32.Vec3
	corners   []corner
	// faceLines[i] is the source line of corners[3*i:3*i+3].
	faceLines []int
}

func newScratch(lim Limits) *scratch {
	return &scratch{
		positions: make([]mgl32.Vec3, 0, lim.MaxVertices),
		texCoords: make([]mgl32.Vec2, 0, lim.texCoords()),
		normals:   make([]mgl32.Vec3, 0, lim.MaxNormals),
		corners:   make([]corner, 0, lim.MaxIndices),
		faceLines: make([]int, 0, lim.MaxIndices/3),
	}
}

// scan classifies each line by its leading bytes and hands it to the
// matching record parser.
func scan(data []byte, lim Limits) (*scratch, error) {
	s := newScratch(lim)
	c := newCursor(data)
	for !c.eof() {
		line := c.line
		fail := func(kind RecordKind, err error) error {
			return &ParseError{Line: line, Record: kind, Err: err}
		}

		switch {
		case c.hasPrefix("v "):
			if len(s.positions) >= lim.MaxVertices {
				return nil, fail(Position, &CapacityError{Record: Position, Max: lim.MaxVertices})
			}
			c.pos += len("v ")
			v, err := parseVec3(c)
			if err != nil {
				return nil, fail(Position, err)
			}
			s.positions = append(s.positions, v)

		case c.hasPrefix("vt "):
			if len(s.texCoords) >= lim.texCoords() {
				return nil, fail(TexCoord, &CapacityError{Record: TexCoord, Max: lim.texCoords()})
			}
			c.pos += len("vt ")
			v, err := parseVec2(c)
			if err != nil {
				return nil, fail(TexCoord, err)
			}
			s.texCoords = append(s.texCoords, v)

		case c.hasPrefix("vn "):
			if len(s.normals) >= lim.MaxNormals {
				return nil, fail(Normal, &CapacityError{Record: Normal, Max: lim.MaxNormals})
			}
			c.pos += len("vn ")
			v, err := parseVec3(c)
			if err != nil {
				return nil, fail(Normal, err)
			}
			s.normals = append(s.normals, v)

		case c.hasPrefix("f "):
			if len(s.corners)+3 > lim.MaxIndices {
				return nil, fail(Face, &CapacityError{Record: Face, Max: lim.MaxIndices})
			}
			c.pos += len("f ")
			face, err := parseFace(c)
			if err != nil {
				return nil, fail(Face, err)
			}
			s.corners = append(s.corners, face[:]...)
			s.faceLines = append(s.faceLines, line)

		default:
			c.skipLine()
			continue
		}
		c.endLine()
	}
	return s, nil
}
