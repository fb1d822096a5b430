package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/supermuesli/computeshader/pkg/meshbin"
	"github.com/supermuesli/computeshader/pkg/objparser"
)

const cubeCornerOBJ = `# one corner of a cube
o corner
v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1
vt 0 0
vt 1 0
vt 0 1
vn 0 0 -1
vn 0 -1 0
vn -1 0 0
f 1/1/1 3/3/1 2/2/1
f 1/1/2 2/2/2 4/3/2
f 1/1/3 4/2/3 3/3/3
`

func writeOBJ(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corner.obj")
	if err := os.WriteFile(path, []byte(cubeCornerOBJ), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testLoader() *objparser.Loader {
	return &objparser.Loader{Limits: objparser.Limits{MaxVertices: 4, MaxNormals: 3, MaxIndices: 9}}
}

func TestConvertBin(t *testing.T) {
	in := writeOBJ(t)
	out := filepath.Join(t.TempDir(), "corner.bin")
	mesh, err := convert(testLoader(), in, out, true)
	if err != nil {
		t.Fatal(err)
	}
	if mesh.CornerCount != 9 {
		t.Fatalf("CornerCount = %d", mesh.CornerCount)
	}
	got, err := meshbin.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if got.CornerCount != 9 || got.Normal(8) != mesh.Normal(8) {
		t.Errorf("read back %d corners, normal %v", got.CornerCount, got.Normal(8))
	}
}

func TestConvertGLB(t *testing.T) {
	in := writeOBJ(t)
	out := filepath.Join(t.TempDir(), "corner.glb")
	if _, err := convert(testLoader(), in, out, false); err != nil {
		t.Fatal(err)
	}
	doc, err := gltf.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Meshes) != 1 || doc.Meshes[0].Name != "corner" {
		t.Errorf("meshes = %+v", doc.Meshes)
	}
}

func TestConvertErrors(t *testing.T) {
	in := writeOBJ(t)
	if _, err := convert(testLoader(), in, filepath.Join(t.TempDir(), "corner.fbx"), false); err == nil {
		t.Error("expected an error for an unknown extension")
	}

	small := &objparser.Loader{Limits: objparser.Limits{MaxVertices: 3, MaxNormals: 3, MaxIndices: 9}}
	out := filepath.Join(t.TempDir(), "corner.bin")
	if _, err := convert(small, in, out, false); err == nil {
		t.Error("expected a capacity error")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output written after a failed load")
	}
}
