package mapper

import "github.com/nnarain/nes/ines"

func init() {
	register(1, newMMC1)
}

// PRG bank modes (control register bits 2-3).
const (
	mmc1PrgSwitch32K = iota // modes 0,1 treated identically: 32K mode
	_
	mmc1PrgFixFirst // fix $8000, switch $C000
	mmc1PrgFixLast  // switch $8000, fix $C000 (power-on default)
)

// mmc1 implements mapper 1 (MMC1): a serial 5-bit shift register
// loaded one bit per write to $8000-$FFFF, committing to one of four
// internal registers (selected by the destination address's top two
// bits) every fifth write.
type mmc1 struct {
	prg memBank
	chr memBank
	sav []byte // battery-backed PRG RAM, $6000-$7FFF

	shift      uint8
	shiftCount uint8

	control uint8
	chrBank [2]uint8
	prgBank uint8

	mirroring ines.Mirroring
	prgRAMOff bool // PRG RAM disabled (prgBank bit 4)
	battery   bool
}

func newMMC1(c *ines.Cartridge) Mapper {
	m := &mmc1{
		prg:       newMemBank(c.PRG, 0x4000),
		control:   0x0C,
		mirroring: c.Header.Mirroring,
	}
	m.sav = make([]byte, 0x2000)
	m.battery = c.Header.Battery
	if c.HasChrRAM() {
		m.chr = newMemBank(make([]byte, 0x2000), 0x1000)
	} else {
		m.chr = newMemBank(c.CHR, 0x1000)
	}
	return m
}

func (m *mmc1) prgMode() uint8 { return (m.control >> 2) & 0x03 }
func (m *mmc1) chrMode() uint8 { return (m.control >> 4) & 0x01 }

func (m *mmc1) ReadPRG(addr uint16) uint8 {
	if addr < 0x6000 {
		return 0
	}
	if addr < 0x8000 {
		if m.prgRAMOff {
			return 0
		}
		return m.sav[addr-0x6000]
	}

	bank := int(m.prgBank & 0x0F)
	switch m.prgMode() {
	case mmc1PrgSwitch32K, mmc1PrgSwitch32K + 1:
		return m.prg.read((bank>>1)*2+int((addr-0x8000)/0x4000), int((addr-0x8000)%0x4000))
	case mmc1PrgFixFirst:
		if addr < 0xC000 {
			return m.prg.readFirstBank(int(addr - 0x8000))
		}
		return m.prg.read(bank, int(addr-0xC000))
	default: // mmc1PrgFixLast
		if addr < 0xC000 {
			return m.prg.read(bank, int(addr-0x8000))
		}
		return m.prg.readLastBank(int(addr - 0xC000))
	}
}

func (m *mmc1) WritePRG(addr uint16, val uint8) {
	if addr < 0x6000 {
		return
	}
	if addr < 0x8000 {
		if !m.prgRAMOff {
			m.sav[addr-0x6000] = val
		}
		return
	}

	if val&0x80 != 0 {
		m.shift = 0
		m.shiftCount = 0
		m.control |= 0x0C
		return
	}

	m.shift |= (val & 1) << m.shiftCount
	m.shiftCount++
	if m.shiftCount < 5 {
		return
	}

	switch (addr >> 13) & 0x03 {
	case 0: // $8000-$9FFF: control
		m.control = m.shift
		switch m.shift & 0x03 {
		case 0:
			m.mirroring = ines.MirrorSingleLower
		case 1:
			m.mirroring = ines.MirrorSingleUpper
		case 2:
			m.mirroring = ines.MirrorVertical
		case 3:
			m.mirroring = ines.MirrorHorizontal
		}
	case 1: // $A000-$BFFF: CHR bank 0
		m.chrBank[0] = m.shift
	case 2: // $C000-$DFFF: CHR bank 1
		m.chrBank[1] = m.shift
	case 3: // $E000-$FFFF: PRG bank
		m.prgBank = m.shift & 0x0F
		m.prgRAMOff = m.shift&0x10 != 0
	}

	m.shift = 0
	m.shiftCount = 0
}

func (m *mmc1) ReadCHR(addr uint16) uint8 {
	return m.chr.read(m.chrBankIndex(addr), int(addr)%0x1000)
}

func (m *mmc1) WriteCHR(addr uint16, val uint8) {
	m.chr.write(m.chrBankIndex(addr), int(addr)%0x1000, val)
}

func (m *mmc1) chrBankIndex(addr uint16) int {
	if m.chrMode() == 0 { // 8K mode: ignore low bit of bank 0 register
		bank := int(m.chrBank[0] &^ 1)
		if addr >= 0x1000 {
			bank++
		}
		return bank
	}
	if addr < 0x1000 {
		return int(m.chrBank[0])
	}
	return int(m.chrBank[1])
}

func (m *mmc1) Mirroring() ines.Mirroring { return m.mirroring }
func (m *mmc1) IRQPending() bool          { return false }
func (m *mmc1) ClockScanline()            {}
func (m *mmc1) AckIRQ()                   {}

func (m *mmc1) BatteryRAM() []byte {
	if !m.battery {
		return nil
	}
	return m.sav
}

func (m *mmc1) Name() string { return "MMC1" }
