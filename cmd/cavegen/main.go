package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"cave-golf/internal/level"
	"cave-golf/internal/render"
)

func main() {
	cfg := level.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	out := flag.String("o", "-", "JSON output path, - for stdout, empty to skip")
	pngPath := flag.String("png", "", "also write a PNG preview to this path")
	scale := flag.Float64("scale", 8, "PNG pixels per contour unit")
	meshes := flag.Bool("meshes", false, "include render meshes in the JSON output")
	ascii := flag.Bool("grid", false, "print the occupancy grid to stderr")
	verbose := flag.Bool("v", false, "log generation progress")
	flag.Parse()
	if *verbose {
		cfg.Logger = log.Default()
	}

	l, err := level.Generate(cfg)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	if *ascii {
		fmt.Fprintln(os.Stderr, strings.Join(l.Grid.Rows(), "\n"))
		for _, line := range cfg.Parameters().Lines() {
			fmt.Fprintln(os.Stderr, line)
		}
	}

	switch *out {
	case "":
	case "-":
		if err := level.Export(os.Stdout, l, *meshes); err != nil {
			log.Fatalf("export: %v", err)
		}
	default:
		if err := writeFile(*out, func(f *os.File) error { return level.Export(f, l, *meshes) }); err != nil {
			log.Fatalf("export: %v", err)
		}
	}

	if *pngPath != "" {
		if err := writeFile(*pngPath, func(f *os.File) error { return render.WritePNG(f, l, *scale) }); err != nil {
			log.Fatalf("png: %v", err)
		}
	}
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
