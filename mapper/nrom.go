package mapper

import "github.com/nnarain/nes/ines"

func init() {
	register(0, newNROM)
}

// nrom implements mapper 0 (NROM): no bank switching. 16K PRG ROM is
// mirrored into both $8000-$BFFF and $C000-$FFFF; 32K PRG ROM covers
// the whole window directly. CHR is a single fixed 8K bank, RAM when
// the cartridge carries no CHR ROM.
type nrom struct {
	prg       memBank
	chr       memBank
	chrRAM    bool
	mirroring ines.Mirroring
}

func newNROM(c *ines.Cartridge) Mapper {
	m := &nrom{
		prg:       newMemBank(c.PRG, len(c.PRG)),
		mirroring: c.Header.Mirroring,
		chrRAM:    c.HasChrRAM(),
	}
	if m.chrRAM {
		m.chr = newMemBank(make([]byte, ines.ChrBankSize), ines.ChrBankSize)
	} else {
		m.chr = newMemBank(c.CHR, len(c.CHR))
	}
	return m
}

func (m *nrom) ReadPRG(addr uint16) uint8 {
	if addr < 0x8000 {
		return 0 // open bus; NROM carries no SRAM
	}
	return m.prg.read(0, int(addr-0x8000)%len(m.prg.data))
}

func (m *nrom) WritePRG(addr uint16, val uint8) {}

func (m *nrom) ReadCHR(addr uint16) uint8 {
	return m.chr.readFirstBank(int(addr))
}

func (m *nrom) WriteCHR(addr uint16, val uint8) {
	if m.chrRAM {
		m.chr.write(0, int(addr), val)
	}
}

func (m *nrom) Mirroring() ines.Mirroring { return m.mirroring }
func (m *nrom) IRQPending() bool          { return false }
func (m *nrom) ClockScanline()            {}
func (m *nrom) AckIRQ()                   {}
func (m *nrom) BatteryRAM() []byte        { return nil }
func (m *nrom) Name() string              { return "NROM" }
