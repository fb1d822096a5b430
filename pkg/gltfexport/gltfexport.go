// Package gltfexport writes a flat objparser.Result as a glTF 2.0 asset: one
// mesh, one node, one non-indexed triangle primitive.
package gltfexport

import (
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/supermuesli/computeshader/pkg/objparser"
)

// Document builds an in-memory glTF document holding res.
func Document(res *objparser.Result, name string) *gltf.Document {
	n := int(res.CornerCount)
	positions := make([][3]float32, n)
	normals := make([][3]float32, n)
	texCoords := make([][2]float32, n)
	for i := 0; i < n; i++ {
		positions[i] = res.Position(i)
		normals[i] = res.Normal(i)
		texCoords[i] = res.TexCoord(i)
	}

	doc := gltf.NewDocument()
	attrs := gltf.Attribute{
		gltf.POSITION:   modeler.WritePosition(doc, positions),
		gltf.NORMAL:     modeler.WriteNormal(doc, normals),
		gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, texCoords),
	}
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Mode:       gltf.PrimitiveTriangles,
			Attributes: attrs,
		}},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: name, Mesh: gltf.Index(0)})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc
}

// Save writes res to path. A .glb extension selects the binary container,
// anything else writes JSON with the buffer embedded as a data URI.
func Save(res *objparser.Result, path, name string) error {
	doc := Document(res, name)
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		return gltf.SaveBinary(doc, path)
	}
	for _, b := range doc.Buffers {
		if b.URI == "" {
			b.EmbeddedResource()
		}
	}
	return gltf.Save(doc, path)
}
