package console

import (
	"github.com/nnarain/nes/ines"
	"github.com/nnarain/nes/mapper"
)

// ppuBus implements ppu.Bus by forwarding pattern-table access and
// mirroring to the cartridge's mapper, and routing mapper IRQ and NMI
// signalling back through the shared cpuBus.
type ppuBus struct {
	mapper mapper.Mapper
	cpuBus *cpuBus
}

func (b *ppuBus) ReadCHR(addr uint16) uint8        { return b.mapper.ReadCHR(addr) }
func (b *ppuBus) WriteCHR(addr uint16, val uint8)  { b.mapper.WriteCHR(addr, val) }
func (b *ppuBus) Mirroring() ines.Mirroring        { return b.mapper.Mirroring() }

// ClockScanline is called once per PPU scanline during the rendered
// portion of the frame; it advances the mapper's scanline counter and
// folds the result into the shared IRQ line.
func (b *ppuBus) ClockScanline() {
	b.mapper.ClockScanline()
	b.cpuBus.setMapperIRQ(b.mapper.IRQPending())
}

// TriggerNMI pulses the CPU's NMI line; AssertNMI only latches on the
// low->high edge so the immediate drop back to false is what makes
// each vblank entry raise exactly one NMI.
func (b *ppuBus) TriggerNMI() {
	b.cpuBus.cpu.AssertNMI(true)
	b.cpuBus.cpu.AssertNMI(false)
}
