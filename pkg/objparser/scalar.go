package objparser

import (
	"fmt"
	"strconv"
	"unsafe"
)

// bytesToString borrows b without copying. The result must not outlive b.
func bytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

func parseFloat(b []byte) (float32, error) {
	f, err := strconv.ParseFloat(bytesToString(b), 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidNumber, b)
	}
	return float32(f), nil
}

func parseUint(b []byte) (uint32, error) {
	u, err := strconv.ParseUint(bytesToString(b), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidNumber, b)
	}
	return uint32(u), nil
}
