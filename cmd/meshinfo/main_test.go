package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/supermuesli/computeshader/pkg/meshbin"
	"github.com/supermuesli/computeshader/pkg/objparser"
)

func encoded(t *testing.T) []byte {
	t.Helper()
	res := &objparser.Result{
		CornerCount: 3,
		Positions:   []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Normals:     []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		TexCoords:   []float32{0, 0, 1, 0, 0, 1},
	}
	var buf bytes.Buffer
	if err := meshbin.Encode(&buf, res, meshbin.Options{Compress: true}); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDescribe(t *testing.T) {
	var out bytes.Buffer
	if err := describe(&out, bytes.NewReader(encoded(t)), false); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{"Magic        : FMSH", "Compressed   : true", "Corner count : 3"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Triangles") {
		t.Errorf("non-verbose output decoded the payload:\n%s", got)
	}
}

func TestDescribeVerbose(t *testing.T) {
	var out bytes.Buffer
	if err := describe(&out, bytes.NewReader(encoded(t)), true); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); !strings.Contains(got, "Triangles    : 1") || !strings.Contains(got, "9 positions") {
		t.Errorf("output:\n%s", got)
	}
}

func TestDescribeNotAMesh(t *testing.T) {
	err := describe(&bytes.Buffer{}, strings.NewReader("v 0 0 0\n"), false)
	if !errors.Is(err, meshbin.ErrBadMagic) {
		t.Fatalf("err = %v, want ErrBadMagic", err)
	}
}
