// Package console wires the cpu, ppu, apu, mapper, and controller
// packages into a runnable NES: it owns the address-space decoding
// that each component's Bus interface leaves to its host, and exposes
// the System surface that front-ends drive.
package console

import (
	"errors"
	"fmt"
	"log"

	"github.com/nnarain/nes/apu"
	"github.com/nnarain/nes/controller"
	"github.com/nnarain/nes/cpu"
	"github.com/nnarain/nes/ines"
	"github.com/nnarain/nes/mapper"
	"github.com/nnarain/nes/ppu"
)

// ErrNoCartridge is returned by operations that require an inserted
// cartridge when none has been loaded yet.
var ErrNoCartridge = errors.New("console: no cartridge inserted")

// InstructionEvent describes one retired CPU instruction as an opaque
// event: PC, consumed cycle count, and the CPU's debug string. It
// carries no operand decode, matching the CPU's debug-string
// convention rather than a full disassembler.
type InstructionEvent struct {
	PC     uint16
	Cycles int
	State  string
}

// System is a complete NES: one inserted cartridge, its mapper, and
// the CPU/PPU/APU/controllers wired together through cpuBus/ppuBus.
// A zero-value System is valid but has no cartridge; InsertCartridge
// must be called before Emulating frames.
type System struct {
	cart   *ines.Cartridge
	mapper mapper.Mapper

	cpu *cpu.CPU
	ppu *ppu.PPU
	apu *apu.APU

	cbus *cpuBus
	pbus *ppuBus

	ctrl1, ctrl2 controller.Controller

	debug  bool
	events chan InstructionEvent
}

// New constructs an empty System with no cartridge inserted.
func New() *System {
	return &System{}
}

// SetDebug toggles suppressible diagnostic logging; errors are
// returned to the caller, not logged, regardless of this setting.
func (s *System) SetDebug(on bool) { s.debug = on }

func (s *System) logf(format string, args ...interface{}) {
	if s.debug {
		log.Printf(format, args...)
	}
}

// InsertCartridge parses raw ROM bytes, builds the matching mapper,
// and wires a fresh CPU/PPU/APU/controller set around it. It consumes
// the cartridge: calling it again replaces any previously inserted one.
func (s *System) InsertCartridge(data []byte) error {
	cart, err := ines.Load(data)
	if err != nil {
		return fmt.Errorf("console: loading cartridge: %w", err)
	}
	m, err := mapper.New(cart)
	if err != nil {
		return fmt.Errorf("console: constructing mapper: %w", err)
	}

	s.cart = cart
	s.mapper = m
	s.ctrl1 = controller.Controller{}
	s.ctrl2 = controller.Controller{}

	s.cbus = &cpuBus{
		mapper: m,
		ctrl1:  &s.ctrl1,
		ctrl2:  &s.ctrl2,
	}
	s.pbus = &ppuBus{mapper: m, cpuBus: s.cbus}

	s.ppu = ppu.New(s.pbus)
	s.apu = apu.New(s.cbus)
	s.cbus.ppu = s.ppu
	s.cbus.apu = s.apu

	s.cpu = cpu.New(s.cbus)
	s.cbus.cpu = s.cpu

	s.logf("console: inserted %s (mapper %s)", s.cart.Header, m.Name())
	return nil
}

// SetEntry overrides the CPU's program counter, bypassing the reset
// vector; used by test-ROM harnesses that start execution at a fixed
// address.
func (s *System) SetEntry(pc uint16) {
	if s.cpu != nil {
		s.cpu.SetPC(pc)
	}
}

// PC returns the CPU's current program counter.
func (s *System) PC() uint16 {
	if s.cpu == nil {
		return 0
	}
	return s.cpu.PC
}

// CPURAMByte inspects one byte of internal CPU RAM, honoring its
// $0000-$07FF mirroring, without going through the full bus decode.
func (s *System) CPURAMByte(addr uint16) uint8 {
	if s.cbus == nil {
		return 0
	}
	return s.cbus.ram[addr&0x07FF]
}

// VRAMByte inspects one byte of PPU address space without the $2007
// read-buffer side effects a real CPU read would trigger.
func (s *System) VRAMByte(addr uint16) uint8 {
	if s.ppu == nil {
		return 0
	}
	return s.ppu.PeekVRAM(addr)
}

// NametableTile returns the nametable byte at (col, row) within one of
// the four logical nametables (table in 0..3), honoring mirroring.
func (s *System) NametableTile(table uint8, col, row uint8) uint8 {
	if s.ppu == nil {
		return 0
	}
	return s.ppu.PeekNametableTile(table, col, row)
}

// FeedButton updates the live state of one button on one of the two
// controller ports (port 0 or 1); any other port index is ignored.
func (s *System) FeedButton(port int, b controller.Button, pressed bool) {
	switch port {
	case 0:
		s.ctrl1.SetButton(b, pressed)
	case 1:
		s.ctrl2.SetButton(b, pressed)
	}
}

// Events returns a channel of per-instruction events; the channel is
// created lazily on first call and is buffered so a slow consumer
// drops events rather than stalling emulation. Events are opaque:
// State alone, no operand decode.
func (s *System) Events() <-chan InstructionEvent {
	if s.events == nil {
		s.events = make(chan InstructionEvent, 256)
	}
	return s.events
}

func (s *System) publish(ev InstructionEvent) {
	if s.events == nil {
		return
	}
	select {
	case s.events <- ev:
	default:
	}
}

// stepInstruction advances the CPU by exactly one instruction (or
// stall span) and co-simulates the PPU and APU for the master/CPU
// cycles it consumed, in that order, matching real hardware's
// 3 PPU-dots-per-CPU-cycle and 1 APU-tick-per-CPU-cycle ratios.
func (s *System) stepInstruction() {
	pc := s.cpu.PC
	cycles := s.cpu.Step()
	for i := 0; i < cycles; i++ {
		s.ppu.Tick()
		s.ppu.Tick()
		s.ppu.Tick()
		s.apu.Tick()
	}
	s.publish(InstructionEvent{PC: pc, Cycles: cycles, State: s.cpu.String()})
}

// EmulateFrame runs the system until the PPU completes one full frame
// and returns the row-major 256x240 RGB frame buffer (3 bytes per
// pixel) and the APU samples produced along the way.
func (s *System) EmulateFrame() ([]byte, []float32) {
	if s.cpu == nil {
		return nil, nil
	}
	for !s.ppu.FrameReady() {
		s.stepInstruction()
	}
	return s.frameBytes(), s.apu.DrainSamples()
}

func (s *System) frameBytes() []byte {
	pixels := s.ppu.GetPixels()
	w, h := s.ppu.GetResolution()
	out := make([]byte, 0, w*h*3)
	for _, px := range pixels {
		out = append(out, px[0], px[1], px[2])
	}
	return out
}

// RunUntil steps instructions until the CPU's program counter equals
// pc, or the CPU parks itself in a held infinite loop (the convention
// test ROMs use to signal completion), whichever happens first.
func (s *System) RunUntil(pc uint16) {
	if s.cpu == nil {
		return
	}
	for s.cpu.PC != pc && !s.cpu.IsHolding() {
		s.stepInstruction()
	}
}

// Eject returns a snapshot of the cartridge's battery-backed PRG RAM,
// or an empty slice if the inserted board carries none.
func (s *System) Eject() ([]byte, error) {
	if s.mapper == nil {
		return nil, ErrNoCartridge
	}
	ram := s.mapper.BatteryRAM()
	snapshot := make([]byte, len(ram))
	copy(snapshot, ram)
	return snapshot, nil
}
