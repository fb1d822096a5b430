// objconv converts a triangulated OBJ file into a flat mesh container
// (.bin) or a glTF asset (.gltf, .glb), picked by the output extension.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/supermuesli/computeshader/pkg/gltfexport"
	"github.com/supermuesli/computeshader/pkg/meshbin"
	"github.com/supermuesli/computeshader/pkg/objparser"
)

func main() {
	in := flag.String("input", "", "input OBJ file")
	out := flag.String("output", "", "output file (.bin, .gltf or .glb)")
	compress := flag.Bool("compress", false, "zstd compress the .bin payload")
	verbose := flag.Bool("verbose", false, "log stats")
	var lim objparser.Limits
	flag.IntVar(&lim.MaxVertices, "max-vertices", 1<<20, "maximum number of v records")
	flag.IntVar(&lim.MaxNormals, "max-normals", 1<<20, "maximum number of vn records")
	flag.IntVar(&lim.MaxTexCoords, "max-texcoords", 0, "maximum number of vt records (0: same as -max-indices)")
	flag.IntVar(&lim.MaxIndices, "max-indices", 3<<20, "maximum number of face corners")
	flag.Parse()

	if *in == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "Usage: objconv -input <model.obj> -output <model.bin|model.gltf|model.glb> [-compress] [-verbose]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	log.SetFlags(0)
	loader := &objparser.Loader{Limits: lim}
	mesh, err := convert(loader, *in, *out, *compress)
	if err != nil {
		log.Fatal(err)
	}

	if *verbose {
		lo, hi := mesh.Bounds()
		log.Printf("%s: %d corners, %d triangles, bounds %v %v", *in, mesh.CornerCount, mesh.Triangles(), lo, hi)
		if fi, err := os.Stat(*out); err == nil {
			log.Printf("%s: %d bytes", *out, fi.Size())
		}
	}
}

func convert(loader *objparser.Loader, in, out string, compress bool) (*objparser.Result, error) {
	mesh, err := loader.Load(in)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", in, err)
	}

	switch ext := strings.ToLower(filepath.Ext(out)); ext {
	case ".bin":
		err = meshbin.WriteFile(out, mesh, meshbin.Options{Compress: compress})
	case ".gltf", ".glb":
		name := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
		err = gltfexport.Save(mesh, out, name)
	default:
		return nil, fmt.Errorf("unsupported output extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("write %s: %w", out, err)
	}
	return mesh, nil
}
