// Package mapper implements the cartridge-side address translation and
// bank switching logic each iNES mapper number defines. Mappers are
// registered by mapper number and constructed from a parsed
// ines.Cartridge at insertion time.
package mapper

import (
	"fmt"

	"github.com/nnarain/nes/ines"
)

// Mapper is the capability set every cartridge board exposes to the
// CPU and PPU buses: program space and character space read/write,
// a mirroring hint, and the optional scanline IRQ some boards raise.
type Mapper interface {
	ReadPRG(addr uint16) uint8
	WritePRG(addr uint16, val uint8)
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, val uint8)
	Mirroring() ines.Mirroring

	// IRQPending reports whether the mapper's scanline counter (if
	// any) wants to assert IRQ. ClockScanline advances that counter;
	// mappers without one treat it as a no-op.
	IRQPending() bool
	ClockScanline()
	AckIRQ()

	// BatteryRAM returns a snapshot of battery-backed PRG RAM, or
	// nil if the board has none.
	BatteryRAM() []byte

	Name() string
}

// registry of constructors, keyed by iNES/NES2.0 mapper number.
var registry = map[uint16]func(*ines.Cartridge) Mapper{}

func register(id uint16, ctor func(*ines.Cartridge) Mapper) {
	if _, ok := registry[id]; ok {
		panic(fmt.Sprintf("mapper: id %d already registered", id))
	}
	registry[id] = ctor
}

// ErrUnsupported is the error New returns for a mapper number with no
// registered implementation.
type ErrUnsupported uint16

func (e ErrUnsupported) Error() string {
	return fmt.Sprintf("mapper: unsupported mapper number %d", uint16(e))
}

// New constructs the Mapper for c's header, or an ErrUnsupported error
// if no implementation is registered for that mapper number. Cartridge
// and mapper errors surface here, at insertion time, and never later.
func New(c *ines.Cartridge) (Mapper, error) {
	ctor, ok := registry[c.Header.Mapper]
	if !ok {
		return nil, ErrUnsupported(c.Header.Mapper)
	}
	return ctor(c), nil
}
