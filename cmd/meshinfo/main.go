package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/supermuesli/computeshader/pkg/meshbin"
)

var verbose = flag.Bool("verbose", false, "decode the payload and print derived stats")

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshinfo [-verbose] <mesh.bin>")
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := describe(os.Stdout, bufio.NewReader(f), *verbose); err != nil {
		log.Fatal(err)
	}
}

func describe(w io.Writer, r io.Reader, verbose bool) error {
	h, err := meshbin.ReadHeader(r)
	if err != nil {
		return err
	}
	printHeader(w, h)
	if !verbose {
		return nil
	}

	mesh, err := meshbin.DecodePayload(r, h)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Triangles    : %d\n", mesh.Triangles())
	fmt.Fprintf(w, "Floats       : %d positions, %d normals, %d texcoords\n",
		len(mesh.Positions), len(mesh.Normals), len(mesh.TexCoords))
	return nil
}

func printHeader(w io.Writer, h meshbin.Header) {
	fmt.Fprintf(w, "Magic        : %s\n", string(h.Magic[:]))
	fmt.Fprintf(w, "Version      : %d\n", h.Version)
	fmt.Fprintf(w, "Compressed   : %v\n", h.Compressed())
	fmt.Fprintf(w, "Corner count : %d\n", h.CornerCount)
	fmt.Fprintf(w, "Bounds min   : %v\n", h.BoundsMin)
	fmt.Fprintf(w, "Bounds max   : %v\n", h.BoundsMax)
}
