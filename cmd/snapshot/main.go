//go:build !js

// Command snapshot renders an effect headlessly and writes it as PNG.
//
//	snapshot -effect aurora -frames 120 -o aurora.png
//	snapshot -all -dir posters/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/simukka/backdrop/background"
	"github.com/simukka/backdrop/raster"
)

func writePoster(p raster.Poster, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := raster.Render(p).EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func main() {
	effect := flag.String("effect", background.EffectParticles.String(), "effect id")
	width := flag.Int("w", 1200, "width in pixels")
	height := flag.Int("h", 800, "height in pixels")
	frames := flag.Int("frames", 60, "frames to run before capturing")
	seed := flag.Uint("seed", 1, "random seed")
	pointerX := flag.Float64("px", 0, "pointer x")
	pointerY := flag.Float64("py", 0, "pointer y")
	out := flag.String("o", "snapshot.png", "output file")
	all := flag.Bool("all", false, "render every effect into -dir")
	dir := flag.String("dir", ".", "output directory for -all")
	flag.Parse()

	p := raster.Poster{
		Effect:  *effect,
		Width:   *width,
		Height:  *height,
		Frames:  *frames,
		Seed:    uint32(*seed),
		Pointer: background.Point{X: *pointerX, Y: *pointerY},
	}

	if !*all {
		if _, ok := background.ParseEffect(*effect); !ok {
			log.Printf("[SNAPSHOT] unknown effect %q, output will be blank", *effect)
		}
		if err := writePoster(p, *out); err != nil {
			log.Printf("[SNAPSHOT] %v", err)
			os.Exit(1)
		}
		log.Printf("[SNAPSHOT] wrote %s", *out)
		return
	}

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Printf("[SNAPSHOT] %v", err)
		os.Exit(1)
	}
	for _, e := range background.Catalogue {
		p.Effect = e.String()
		path := filepath.Join(*dir, e.String()+".png")
		if err := writePoster(p, path); err != nil {
			log.Printf("[SNAPSHOT] %v", err)
			os.Exit(1)
		}
		log.Printf("[SNAPSHOT] wrote %s", path)
	}
}
