// Command gintendo runs an NES ROM in an ebiten window.
package main

import (
	"context"
	"flag"
	"image/color"
	"log"
	"os"
	"sync"

	"gintendo/bus"
	"gintendo/cartridge"
	"gintendo/cpu"
	"gintendo/joypad"
	"gintendo/mappers"
	"gintendo/ppu"
	"gintendo/video"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	romFile = flag.String("nes_rom", "", "Path to NES ROM to run.")
	strict  = flag.Bool("strict", false, "Treat writes to PRG ROM as fatal.")
)

// game adapts the emulation core to the ebiten.Game interface. The
// interpreter loop runs in its own goroutine; Draw just presents the
// most recently completed frame.
type game struct {
	mu  sync.Mutex
	pix []uint8
}

func newGame() *game {
	return &game{pix: make([]uint8, video.Width*video.Height*3)}
}

// Update is called by ebiten roughly every 1/60s. The emulation runs
// in its own goroutine and doesn't need ebiten to drive it, but the
// method is part of the required interface.
func (g *game) Update() error {
	return nil
}

// Layout returns the constant resolution of the NES, forcing ebiten
// to scale the display when the window size changes.
func (g *game) Layout(w, h int) (int, int) {
	return video.Width, video.Height
}

// Draw updates the displayed ebiten window with the last frame the
// renderer finished.
func (g *game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			i := (y*video.Width + x) * 3
			screen.Set(x, y, color.RGBA{g.pix[i], g.pix[i+1], g.pix[i+2], 0xFF})
		}
	}
}

// present hands a completed frame to Draw.
func (g *game) present(f *video.Frame) {
	g.mu.Lock()
	defer g.mu.Unlock()
	copy(g.pix, f.Pix)
}

// run is the interpreter loop: collect any pending vblank NMI, then
// execute one instruction, until the CPU halts or the window closes.
func run(ctx context.Context, c *cpu.CPU, b *bus.Bus) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if b.TakeNMI() {
			c.NMI()
		}
		if err := c.Step(); err != nil {
			log.Printf("stopping: %v", err)
			return
		}
		if c.Halted {
			return
		}
	}
}

func main() {
	flag.Parse()

	path := *romFile
	if path == "" {
		path = flag.Arg(0)
	}

	cart, err := cartridge.Load(path)
	if err != nil {
		log.Fatalf("Invalid ROM: %v", err)
	}

	m, err := mappers.Get(cart)
	if err != nil {
		log.Fatalf("Couldn't Get() mapper: %v", err)
	}

	b := bus.New(m, *strict)
	c := cpu.New(b)

	g := newGame()
	frame := video.NewFrame()
	b.OnFrame(func(p *ppu.PPU, pad *joypad.Joypad) {
		pad.Poll()
		if video.Render(p, frame) {
			p.SetSprite0Hit()
		}
		g.present(frame)
	})

	ebiten.SetWindowSize(video.Width*2, video.Height*2) // Start with 2x the screen size
	ebiten.SetWindowTitle("Gintendo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	ctx, cancel := context.WithCancel(context.Background())
	go run(ctx, c, b)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}

	cancel()
	os.Exit(0)
}
