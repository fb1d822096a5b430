package gltfexport

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/supermuesli/computeshader/pkg/objparser"
)

const triangleOBJ = `v 0 0 0
v 2 0 0
v 0 3 0
vn 0 0 1
vt 0 0
vt 1 0
vt 0 1
f 1/1/1 2/2/1 3/3/1
`

func triangle(t *testing.T) *objparser.Result {
	t.Helper()
	l := &objparser.Loader{Limits: objparser.Limits{MaxVertices: 3, MaxNormals: 1, MaxIndices: 3}}
	res, err := l.Parse([]byte(triangleOBJ))
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func checkPositions(t *testing.T, doc *gltf.Document) {
	t.Helper()
	if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
		t.Fatalf("meshes = %+v", doc.Meshes)
	}
	prim := doc.Meshes[0].Primitives[0]
	if prim.Indices != nil {
		t.Errorf("primitive should not be indexed")
	}
	for _, attr := range []string{gltf.POSITION, gltf.NORMAL, gltf.TEXCOORD_0} {
		if _, ok := prim.Attributes[attr]; !ok {
			t.Fatalf("missing %s attribute", attr)
		}
	}
	acr := doc.Accessors[prim.Attributes[gltf.POSITION]]
	if int(acr.Count) != 3 {
		t.Fatalf("position count = %d", acr.Count)
	}
	pos, err := modeler.ReadPosition(doc, acr, nil)
	if err != nil {
		t.Fatal(err)
	}
	if pos[1] != [3]float32{2, 0, 0} || pos[2] != [3]float32{0, 3, 0} {
		t.Errorf("positions = %v", pos)
	}
}

func TestDocument(t *testing.T) {
	doc := Document(triangle(t), "triangle")
	checkPositions(t, doc)
	if len(doc.Nodes) != 1 || doc.Nodes[0].Mesh == nil {
		t.Fatalf("nodes = %+v", doc.Nodes)
	}
	if len(doc.Scenes) == 0 || len(doc.Scenes[0].Nodes) != 1 {
		t.Fatalf("scene does not reference the node")
	}
}

func TestSave(t *testing.T) {
	for _, name := range []string{"tri.glb", "tri.gltf"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := Save(triangle(t), path, "triangle"); err != nil {
				t.Fatal(err)
			}
			doc, err := gltf.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			checkPositions(t, doc)
			if filepath.Ext(name) == ".gltf" {
				if len(doc.Buffers) != 1 || !doc.Buffers[0].IsEmbeddedResource() {
					t.Errorf("buffer is not embedded in the JSON document")
				}
			}
		})
	}
}

func TestSaveEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.glb")
	if err := Save(&objparser.Result{}, path, "empty"); err != nil {
		t.Fatal(err)
	}
}
