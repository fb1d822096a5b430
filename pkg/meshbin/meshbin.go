// Package meshbin stores a flat objparser.Result in a little-endian binary
// container so it can be read back without parsing OBJ text again.
//
// Layout: a fixed Header, then CornerCount*3 position floats, CornerCount*3
// normal floats and CornerCount*2 texture coordinate floats. With FlagZstd
// set the float payload is a single zstd stream.
package meshbin

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/supermuesli/computeshader/pkg/objparser"
)

const Version uint32 = 1

const FlagZstd uint32 = 1 << 0

var Magic = [4]byte{'F', 'M', 'S', 'H'}

// windowSize is the zstd window used when writing and the largest one
// accepted when reading.
const windowSize = 8 << 20

// chunkFloats caps how far an attribute array is allocated ahead of the
// bytes actually read, so CornerCount in a corrupt header cannot force a
// large allocation on its own.
const chunkFloats = 1 << 16

var (
	ErrBadMagic     = errors.New("meshbin: not a flat mesh file")
	ErrVersion      = errors.New("meshbin: unsupported version")
	ErrShortPayload = errors.New("meshbin: payload shorter than header claims")
	ErrInconsistent = errors.New("meshbin: attribute lengths do not match corner count")
)

type Header struct {
	Magic       [4]byte
	Version     uint32
	Flags       uint32
	CornerCount uint32
	BoundsMin   [3]float32
	BoundsMax   [3]float32
}

func (h Header) Compressed() bool { return h.Flags&FlagZstd != 0 }

type Options struct {
	Compress bool
}

func Encode(w io.Writer, res *objparser.Result, opts Options) error {
	n := int(res.CornerCount)
	if len(res.Positions) != 3*n || len(res.Normals) != 3*n || len(res.TexCoords) != 2*n {
		return ErrInconsistent
	}

	lo, hi := res.Bounds()
	h := Header{
		Magic:       Magic,
		Version:     Version,
		CornerCount: res.CornerCount,
		BoundsMin:   [3]float32(lo),
		BoundsMax:   [3]float32(hi),
	}
	if opts.Compress {
		h.Flags |= FlagZstd
	}
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return err
	}

	payload := w
	var zw *zstd.Encoder
	if opts.Compress {
		var err error
		zw, err = zstd.NewWriter(w, zstd.WithWindowSize(windowSize))
		if err != nil {
			return err
		}
		payload = zw
	}
	for _, attr := range [][]float32{res.Positions, res.Normals, res.TexCoords} {
		if err := binary.Write(payload, binary.LittleEndian, attr); err != nil {
			if zw != nil {
				zw.Close()
			}
			return err
		}
	}
	if zw != nil {
		return zw.Close()
	}
	return nil
}

func ReadHeader(r io.Reader) (Header, error) {
	var h Header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return h, ErrBadMagic
		}
		return h, err
	}
	if h.Magic != Magic {
		return h, ErrBadMagic
	}
	if h.Version != Version {
		return h, fmt.Errorf("%w %d", ErrVersion, h.Version)
	}
	return h, nil
}

func Decode(r io.Reader) (*objparser.Result, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	return DecodePayload(r, h)
}

// DecodePayload reads the attribute arrays that follow h, which must
// already have been consumed from r.
func DecodePayload(r io.Reader, h Header) (*objparser.Result, error) {
	payload := r
	if h.Compressed() {
		zr, err := zstd.NewReader(r, zstd.WithDecoderMaxWindow(windowSize))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		payload = zr
	}

	n := uint64(h.CornerCount)
	res := &objparser.Result{CornerCount: h.CornerCount}
	var err error
	if res.Positions, err = readFloats(payload, 3*n); err != nil {
		return nil, err
	}
	if res.Normals, err = readFloats(payload, 3*n); err != nil {
		return nil, err
	}
	if res.TexCoords, err = readFloats(payload, 2*n); err != nil {
		return nil, err
	}
	return res, nil
}

// readFloats reads n little-endian floats, growing the result only as data
// arrives.
func readFloats(r io.Reader, n uint64) ([]float32, error) {
	out := make([]float32, 0, min(n, chunkFloats))
	chunk := make([]float32, min(n, chunkFloats))
	for n > 0 {
		k := min(n, chunkFloats)
		if err := binary.Read(r, binary.LittleEndian, chunk[:k]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, ErrShortPayload
			}
			return nil, err
		}
		out = append(out, chunk[:k]...)
		n -= k
	}
	return out, nil
}

func WriteFile(path string, res *objparser.Result, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := Encode(bw, res, opts); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func ReadFile(path string) (*objparser.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(bufio.NewReader(f))
}
