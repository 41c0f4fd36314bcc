// coastertool is a CLI utility for building and exporting track meshes.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/coastermesh/internal/config"
	"github.com/Faultbox/coastermesh/pkg/export"
	"github.com/Faultbox/coastermesh/pkg/track"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "export", "x":
		cmdExport(args)
	case "frames":
		cmdFrames(args)
	case "init":
		cmdInit(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`coastertool - roller-coaster track mesh utility

Usage:
  coastertool <command> [options]

Commands:
  info <track.yaml>                 Show mesh statistics for a track file
  export <track.yaml> <out.stl|obj> Build the mesh and write STL or OBJ
  frames <track.yaml>               Dump the orientation frame sequence
  init <track.yaml>                 Write a starter track file

Examples:
  coastertool info loop.yaml
  coastertool export loop.yaml loop.stl
  coastertool frames loop.yaml`)
}

// buildFromFile loads a track file and builds its mesh.
func buildFromFile(path string) (*config.Config, *track.Mesh, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	curve, err := cfg.Track.Curve()
	if err != nil {
		return nil, nil, err
	}

	opts, styleKnown := cfg.Track.Options()
	if !styleKnown {
		fmt.Fprintf(os.Stderr, "note: unknown style %q, using %q\n", cfg.Track.Style, opts.Style)
	}

	mesh, err := track.Build(curve, cfg.Track.Divisions, opts)
	if err != nil {
		return nil, nil, err
	}
	return cfg, mesh, nil
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: coastertool info <track.yaml>")
		os.Exit(1)
	}

	cfg, mesh, err := buildFromFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	style, _ := track.ParseStyle(cfg.Track.Style)
	fmt.Printf("Track:     %s\n", args[0])
	fmt.Printf("Style:     %s\n", style)
	fmt.Printf("Divisions: %d\n", cfg.Track.Divisions)
	fmt.Printf("Closed:    %v\n", cfg.Track.Closed)
	fmt.Printf("Vertices:  %d\n", mesh.VertexCount())
	fmt.Printf("Triangles: %d\n", mesh.TriangleCount())
	fmt.Printf("Bounds:    min(%.3f, %.3f, %.3f) max(%.3f, %.3f, %.3f)\n",
		mesh.Bounds.Min[0], mesh.Bounds.Min[1], mesh.Bounds.Min[2],
		mesh.Bounds.Max[0], mesh.Bounds.Max[1], mesh.Bounds.Max[2])
}

func cmdExport(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: coastertool export <track.yaml> <out.stl|out.obj>")
		os.Exit(1)
	}

	_, mesh, err := buildFromFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	outPath := args[1]
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".stl":
		err = export.WriteSTL(out, mesh)
	case ".obj":
		err = export.WriteOBJ(out, mesh)
	default:
		err = fmt.Errorf("unsupported extension %q (want .stl or .obj)", filepath.Ext(outPath))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s: %d triangles\n", outPath, mesh.TriangleCount())
}

func cmdFrames(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: coastertool frames <track.yaml>")
		os.Exit(1)
	}

	cfg, err := config.LoadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	curve, err := cfg.Track.Curve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts, _ := cfg.Track.Options()
	bank := track.BankFromKeyframes(opts.BankKeyframes)
	frames, err := track.BuildFrames(curve, cfg.Track.Divisions, opts.Strategy, bank)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("      t   position                    tangent                     normal")
	for _, f := range frames {
		fmt.Printf("%7.4f   (%7.3f %7.3f %7.3f)   (%6.3f %6.3f %6.3f)   (%6.3f %6.3f %6.3f)\n",
			f.T,
			f.Position.X, f.Position.Y, f.Position.Z,
			f.Tangent.X, f.Tangent.Y, f.Tangent.Z,
			f.Normal.X, f.Normal.Y, f.Normal.Z)
	}
}

func cmdInit(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: coastertool init <track.yaml>")
		os.Exit(1)
	}

	path := args[0]
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists\n", path)
		os.Exit(1)
	}

	if err := config.Default().SaveTo(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote starter track to %s\n", path)
}
