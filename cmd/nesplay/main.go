// Command nesplay is a windowed NES front end built on ebiten: it
// emulates one frame each Update and blits the System's RGB frame
// buffer in Draw, polls ebiten's
// keyboard state for the eight NES buttons, and streams the System's
// APU samples through ebiten's audio package.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/nnarain/nes/console"
	"github.com/nnarain/nes/controller"
)

var romFile = flag.String("nes_rom", "", "Path to NES ROM to play.")

// keyBindings maps host keys to NES controller buttons: A/B/Select/Start
// on Z/X/Space/Enter, the D-pad on the arrow keys.
var keyBindings = map[ebiten.Key]controller.Button{
	ebiten.KeyZ:     controller.ButtonA,
	ebiten.KeyX:     controller.ButtonB,
	ebiten.KeySpace: controller.ButtonSelect,
	ebiten.KeyEnter: controller.ButtonStart,
	ebiten.KeyUp:    controller.ButtonUp,
	ebiten.KeyDown:  controller.ButtonDown,
	ebiten.KeyLeft:  controller.ButtonLeft,
	ebiten.KeyRight: controller.ButtonRight,
}

// game adapts a console.System to ebiten.Game: Update drives one
// emulated frame and the controller state, Draw blits the resulting
// pixels, Layout fixes the logical resolution at the NES's native
// 256x240 and lets ebiten handle window scaling.
type game struct {
	sys       *console.System
	player    *audio.Player
	stream    *sampleStream
	lastFrame []byte
}

func newGame(sys *console.System) *game {
	ctx := audio.NewContext(sampleRate)
	stream := newSampleStream()
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		log.Fatalf("nesplay: creating audio player: %v", err)
	}
	player.Play()
	return &game{
		sys:       sys,
		player:    player,
		stream:    stream,
		lastFrame: make([]byte, 256*240*3),
	}
}

func (g *game) Update() error {
	for key, button := range keyBindings {
		g.sys.FeedButton(0, button, ebiten.IsKeyPressed(key))
	}
	frame, samples := g.sys.EmulateFrame()
	g.lastFrame = frame
	g.stream.feed(samples)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	rgba := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		rgba[i*4+0] = g.lastFrame[i*3+0]
		rgba[i*4+1] = g.lastFrame[i*3+1]
		rgba[i*4+2] = g.lastFrame[i*3+2]
		rgba[i*4+3] = 0xff
	}
	screen.WritePixels(rgba)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := 256, 240
	return w, h
}

func main() {
	flag.Parse()

	if *romFile == "" {
		log.Fatal("nesplay: -nes_rom is required")
	}

	data, err := os.ReadFile(*romFile)
	if err != nil {
		log.Fatalf("nesplay: reading %s: %v", *romFile, err)
	}
	sys := console.New()
	if err := sys.InsertCartridge(data); err != nil {
		log.Fatalf("nesplay: %v", err)
	}

	ebiten.SetWindowSize(256*2, 240*2)
	ebiten.SetWindowTitle("nesplay")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := newGame(sys)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
