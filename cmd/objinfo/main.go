package main

import (
	"flag"
	"fmt"
	"os"

	"mesh3d-renderer/internal/obj"
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: objinfo <model.obj> [...]")
		os.Exit(1)
	}

	exitCode := 0
	for _, path := range flag.Args() {
		mesh, err := obj.Parse(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			exitCode = 1
			continue
		}
		min, max := mesh.Bounds()
		ext := max.Sub(min)
		fmt.Printf("%s\n", path)
		fmt.Printf("  verts: %d, uvs: %d, normals: %d, faces: %d\n",
			len(mesh.Verts), len(mesh.UVs), len(mesh.Normals), len(mesh.Faces))
		fmt.Printf("  bounds: (%.3f, %.3f, %.3f) .. (%.3f, %.3f, %.3f)\n",
			min.X, min.Y, min.Z, max.X, max.Y, max.Z)
		fmt.Printf("  extent: %.3f × %.3f × %.3f\n", ext.X, ext.Y, ext.Z)
	}
	os.Exit(exitCode)
}
