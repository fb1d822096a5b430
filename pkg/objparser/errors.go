package objparser

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLimits    = errors.New("negative limit")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrMissingField     = errors.New("missing field")
	ErrExtraField       = errors.New("unexpected extra field")
	ErrInvalidNumber    = errors.New("invalid number")
	ErrMissingIndex     = errors.New("missing index")
	ErrZeroIndex        = errors.New("index is zero, OBJ indices are 1-based")
	ErrFaceArity        = errors.New("face does not have exactly 3 index groups")
	ErrUnexpectedEOF    = errors.New("unexpected end of file")
	ErrIndexOutOfRange  = errors.New("index out of range")
)

// RecordKind identifies the kind of OBJ line a record came from.
type RecordKind int

const (
	Position RecordKind = iota
	TexCoord
	Normal
	Face
)

func (k RecordKind) String() string {
	switch k {
	case Position:
		return "v"
	case TexCoord:
		return "vt"
	case Normal:
		return "vn"
	case Face:
		return "f"
	}
	return fmt.Sprintf("RecordKind(%d)", int(k))
}

// CapacityError reports a record that would exceed its declared maximum.
type CapacityError struct {
	Record RecordKind
	Max    int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("exceeded maximum of %d %s records", e.Max, e.Record)
}

func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }

// ParseError locates a failure in the source text. Line is 1-based.
type ParseError struct {
	Line   int
	Record RecordKind
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Record, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
