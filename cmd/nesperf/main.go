// Command nesperf runs a ROM headless for a fixed number of frames and
// reports wall-clock time per emulated frame, a benchmark harness in
// the spirit of nescore's bench_nes.rs.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/nnarain/nes/console"
)

var (
	romFile = flag.String("nes_rom", "", "Path to NES ROM to benchmark.")
	frames  = flag.Int("frames", 600, "Number of frames to emulate.")
)

func main() {
	flag.Parse()

	if *romFile == "" {
		log.Fatal("nesperf: -nes_rom is required")
	}

	data, err := os.ReadFile(*romFile)
	if err != nil {
		log.Fatalf("nesperf: reading %s: %v", *romFile, err)
	}

	sys := console.New()
	if err := sys.InsertCartridge(data); err != nil {
		log.Fatalf("nesperf: %v", err)
	}

	start := time.Now()
	for i := 0; i < *frames; i++ {
		sys.EmulateFrame()
	}
	elapsed := time.Since(start)

	log.Printf("%d frames in %s (%s/frame, %.1f fps)",
		*frames, elapsed, elapsed/time.Duration(*frames),
		float64(*frames)/elapsed.Seconds())
}
