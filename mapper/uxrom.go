package mapper

import "github.com/nnarain/nes/ines"

func init() {
	register(2, newUxROM)
}

// uxrom implements mapper 2: writes anywhere in $8000-$FFFF select the
// 16K PRG bank visible at $8000-$BFFF; $C000-$FFFF is always fixed to
// the last bank. CHR is always RAM (no CHR bank switching).
type uxrom struct {
	prg       memBank
	chr       memBank
	bank      uint8
	mirroring ines.Mirroring
}

func newUxROM(c *ines.Cartridge) Mapper {
	return &uxrom{
		prg:       newMemBank(c.PRG, 0x4000),
		chr:       newMemBank(make([]byte, ines.ChrBankSize), ines.ChrBankSize),
		mirroring: c.Header.Mirroring,
	}
}

func (m *uxrom) ReadPRG(addr uint16) uint8 {
	if addr < 0x8000 {
		return 0
	}
	if addr < 0xC000 {
		return m.prg.read(int(m.bank), int(addr-0x8000))
	}
	return m.prg.readLastBank(int(addr - 0xC000))
}

func (m *uxrom) WritePRG(addr uint16, val uint8) {
	if addr >= 0x8000 {
		m.bank = val
	}
}

func (m *uxrom) ReadCHR(addr uint16) uint8      { return m.chr.readFirstBank(int(addr)) }
func (m *uxrom) WriteCHR(addr uint16, val uint8) { m.chr.write(0, int(addr), val) }

func (m *uxrom) Mirroring() ines.Mirroring { return m.mirroring }
func (m *uxrom) IRQPending() bool          { return false }
func (m *uxrom) ClockScanline()            {}
func (m *uxrom) AckIRQ()                   {}
func (m *uxrom) BatteryRAM() []byte        { return nil }
func (m *uxrom) Name() string              { return "UxROM" }
