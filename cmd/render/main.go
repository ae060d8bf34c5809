// Command render runs the starfield headlessly and writes frames as PNGs.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"starfield/raster"
	"starfield/starfield"
)

func main() {
	width := flag.Int("width", 640, "Logical width")
	height := flag.Int("height", 360, "Logical height")
	scale := flag.Float64("scale", 1, "Pixel ratio of the backing buffer")
	frames := flag.Int("frames", 240, "Number of frames to simulate")
	every := flag.Int("every", 60, "Write every Nth frame (0 writes only the last)")
	out := flag.String("out", "frames", "Output directory")
	caption := flag.Bool("caption", false, "Stamp the frame number on each image")
	flag.Parse()

	if *frames <= 0 {
		log.Fatalf("frames must be positive, got %d", *frames)
	}
	if err := os.MkdirAll(*out, 0755); err != nil {
		log.Fatalf("Failed to create output dir: %v", err)
	}

	box := starfield.NewBox(float64(*width), float64(*height))
	box.SetPixelRatio(*scale)
	queue := starfield.NewFrameQueue()
	canvas := raster.NewCanvas(*width, *height)

	if _, err := starfield.New(starfield.DefaultConfig(), canvas, box, queue); err != nil {
		log.Fatal(err)
	}

	composer, err := raster.NewComposer(color.Black)
	if err != nil {
		log.Fatal(err)
	}

	written := 0
	for i := 1; i <= *frames; i++ {
		queue.RunFrame()

		last := i == *frames
		if !last && (*every <= 0 || i%*every != 0) {
			continue
		}

		label := ""
		if *caption {
			label = fmt.Sprintf("frame %04d", i)
		}
		path := filepath.Join(*out, fmt.Sprintf("frame-%04d.png", i))
		if err := composer.SavePNG(path, canvas.Image(), label); err != nil {
			log.Fatal(err)
		}
		written++
	}

	log.Printf("Wrote %d frames to %s", written, *out)
}
