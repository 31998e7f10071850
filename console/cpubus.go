package console

import (
	"github.com/nnarain/nes/apu"
	"github.com/nnarain/nes/controller"
	"github.com/nnarain/nes/cpu"
	"github.com/nnarain/nes/mapper"
	"github.com/nnarain/nes/ppu"
)

const internalRAMSize = 0x0800

// cpuBus decodes the 6502's 16-bit address space, routing reads and
// writes to internal RAM, the PPU/APU registers, the controller
// ports, and the cartridge's program space. It implements both
// cpu.Bus and apu.Bus, since the APU's DMC channel reads sample bytes
// and stalls the CPU through this same address space.
type cpuBus struct {
	ram [internalRAMSize]uint8

	cpu    *cpu.CPU
	ppu    *ppu.PPU
	apu    *apu.APU
	mapper mapper.Mapper
	ctrl1  *controller.Controller
	ctrl2  *controller.Controller

	apuIRQ    bool
	mapperIRQ bool
}

func (b *cpuBus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.ram[addr&0x07FF]
	case addr < 0x4000:
		return b.ppu.ReadReg(0x2000 + addr&0x0007)
	case addr == 0x4015:
		return b.apu.ReadStatus()
	case addr == 0x4016:
		return b.ctrl1.Read()
	case addr == 0x4017:
		return b.ctrl2.Read()
	case addr < 0x4020:
		return 0 // open bus: the remaining APU registers are write-only
	default:
		return b.mapper.ReadPRG(addr)
	}
}

func (b *cpuBus) Write(addr uint16, val uint8) {
	switch {
	case addr < 0x2000:
		b.ram[addr&0x07FF] = val
	case addr < 0x4000:
		b.ppu.WriteReg(0x2000+addr&0x0007, val)
	case addr == 0x4014:
		b.oamDMA(val)
	case addr == 0x4016:
		// The strobe bit is shared: a $4016 write latches both
		// controllers' shift registers at once.
		b.ctrl1.Write(val)
		b.ctrl2.Write(val)
	case addr < 0x4020:
		b.apu.WriteReg(addr, val)
	default:
		b.mapper.WritePRG(addr, val)
		// A PRG-space write may have acknowledged or reconfigured a
		// mapper's scanline IRQ (e.g. MMC3's $E000/$E001); fold that
		// back into the shared IRQ line immediately rather than
		// waiting for the next scanline boundary.
		b.setMapperIRQ(b.mapper.IRQPending())
	}
}

// oamDMA implements the $4014 write: 256 sequential bytes starting at
// $xx00 are copied into OAM, stalling the CPU for 513 cycles (514 if
// the write itself landed on an odd CPU cycle).
func (b *cpuBus) oamDMA(page uint8) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		b.ppu.WriteOAM(i, b.Read(base+uint16(i)))
	}
	cycles := 513
	if b.cpu.OddCycle() {
		cycles = 514
	}
	b.cpu.Stall(cycles)
}

// ReadSample implements apu.Bus: DMC sample fetches land in
// $8000-$FFFF (they start at $C000 or above and wrap to $8000), which
// is the mapper's program space; routing through Read keeps one
// address decode table instead of two.
func (b *cpuBus) ReadSample(addr uint16) uint8 { return b.Read(addr) }

// StallCPU implements apu.Bus for the DMC's 4-cycle fetch stall.
func (b *cpuBus) StallCPU(cycles int) { b.cpu.Stall(cycles) }

// AssertIRQ implements apu.Bus. The CPU's IRQ line is shared between
// the APU's frame sequencer/DMC and the mapper's scanline counter; the
// line stays asserted as long as either source holds it.
func (b *cpuBus) AssertIRQ(asserted bool) {
	b.apuIRQ = asserted
	b.recomputeIRQ()
}

func (b *cpuBus) setMapperIRQ(asserted bool) {
	b.mapperIRQ = asserted
	b.recomputeIRQ()
}

func (b *cpuBus) recomputeIRQ() {
	b.cpu.AssertIRQ(b.apuIRQ || b.mapperIRQ)
}
