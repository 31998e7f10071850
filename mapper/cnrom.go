package mapper

import "github.com/nnarain/nes/ines"

func init() {
	register(3, newCNROM)
}

// cnrom implements mapper 3: fixed PRG (16K mirrored or 32K direct),
// writes anywhere in $8000-$FFFF select the visible 8K CHR bank.
type cnrom struct {
	prg       memBank
	chr       memBank
	bank      uint8
	mirroring ines.Mirroring
}

func newCNROM(c *ines.Cartridge) Mapper {
	return &cnrom{
		prg:       newMemBank(c.PRG, len(c.PRG)),
		chr:       newMemBank(c.CHR, ines.ChrBankSize),
		mirroring: c.Header.Mirroring,
	}
}

func (m *cnrom) ReadPRG(addr uint16) uint8 {
	if addr < 0x8000 {
		return 0
	}
	return m.prg.read(0, int(addr-0x8000)%len(m.prg.data))
}

func (m *cnrom) WritePRG(addr uint16, val uint8) {
	if addr >= 0x8000 {
		m.bank = val & 0x03
	}
}

func (m *cnrom) ReadCHR(addr uint16) uint8 {
	return m.chr.read(int(m.bank), int(addr))
}

func (m *cnrom) WriteCHR(addr uint16, val uint8) {}

func (m *cnrom) Mirroring() ines.Mirroring { return m.mirroring }
func (m *cnrom) IRQPending() bool          { return false }
func (m *cnrom) ClockScanline()            {}
func (m *cnrom) AckIRQ()                   {}
func (m *cnrom) BatteryRAM() []byte        { return nil }
func (m *cnrom) Name() string              { return "CNROM" }
