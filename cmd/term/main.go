// Command term runs the starfield in the terminal. Escape or Ctrl-C quits.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"starfield/starfield"
	"starfield/term"
)

func main() {
	fps := flag.Int("fps", 60, "Frames per second")
	flag.Parse()

	if *fps <= 0 {
		log.Fatalf("fps must be positive, got %d", *fps)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	host, err := term.New(screen, starfield.DefaultConfig(), time.Second/time.Duration(*fps))
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = host.Run(ctx)
	stop()
	screen.Fini()

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
