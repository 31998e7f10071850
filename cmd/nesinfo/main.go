// Command nesinfo dumps an iNES/NES 2.0 header and its resolved
// mapper, the same validation the console package runs before
// accepting a ROM, exposed as a standalone diagnostic.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/nnarain/nes/ines"
	"github.com/nnarain/nes/mapper"
)

var romFile = flag.String("nes_rom", "", "Path to NES ROM to inspect.")

func main() {
	flag.Parse()

	if *romFile == "" {
		log.Fatal("nesinfo: -nes_rom is required")
	}

	data, err := os.ReadFile(*romFile)
	if err != nil {
		log.Fatalf("nesinfo: reading %s: %v", *romFile, err)
	}

	cart, err := ines.Load(data)
	if err != nil {
		log.Fatalf("nesinfo: parsing %s: %v", *romFile, err)
	}

	m, err := mapper.New(cart)
	if err != nil {
		log.Fatalf("nesinfo: %v", err)
	}

	log.Printf("%s: %s", *romFile, cart.Header)
	log.Printf("mapper implementation: %s", m.Name())
	log.Printf("prg bytes: %d, chr bytes: %d, chr-ram: %v", len(cart.PRG), len(cart.CHR), cart.HasChrRAM())
}
