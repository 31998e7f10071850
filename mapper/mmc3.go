package mapper

import "github.com/nnarain/nes/ines"

func init() {
	register(4, newMMC3)
}

// mmc3 implements mapper 4 (MMC3): eight bank-data registers selected
// by a bank-select write, split between two 1K/1K + two 2K CHR windows
// (swappable by bankSelect bit 7) and two swappable + two fixed 8K PRG
// windows (swappable side picked by bankSelect bit 6), plus a scanline
// IRQ counter reloaded and clocked once per rendered scanline (the PPU
// calls ClockScanline once per such line; the PPU-address-bus A12
// low-to-high transitions the real chip counts are not detected).
type mmc3 struct {
	prg memBank // 8K banks
	chr memBank // 1K banks
	sav []byte
	battery bool

	bankSelect uint8
	bankData   [8]uint8
	mirroring  ines.Mirroring

	irqLatch   uint8
	irqCounter uint8
	irqReload  bool
	irqEnabled bool
	irqPending bool
}

func newMMC3(c *ines.Cartridge) Mapper {
	m := &mmc3{
		prg:       newMemBank(c.PRG, 0x2000),
		mirroring: c.Header.Mirroring,
		sav:       make([]byte, 0x2000),
		battery:   c.Header.Battery,
	}
	if c.HasChrRAM() {
		m.chr = newMemBank(make([]byte, ines.ChrBankSize), 0x400)
	} else {
		m.chr = newMemBank(c.CHR, 0x400)
	}
	return m
}

func (m *mmc3) prgLastBank() int { return m.prg.banks() - 1 }

func (m *mmc3) ReadPRG(addr uint16) uint8 {
	if addr < 0x6000 {
		return 0
	}
	if addr < 0x8000 {
		return m.sav[addr-0x6000]
	}

	swapMode := (m.bankSelect >> 6) & 1
	var bank int
	switch {
	case addr < 0xA000:
		if swapMode == 0 {
			bank = int(m.bankData[6])
		} else {
			bank = m.prgLastBank() - 1
		}
	case addr < 0xC000:
		bank = int(m.bankData[7])
	case addr < 0xE000:
		if swapMode == 0 {
			bank = m.prgLastBank() - 1
		} else {
			bank = int(m.bankData[6])
		}
	default:
		bank = m.prgLastBank()
	}
	return m.prg.read(bank, int(addr)%0x2000)
}

func (m *mmc3) WritePRG(addr uint16, val uint8) {
	if addr < 0x6000 {
		return
	}
	if addr < 0x8000 {
		m.sav[addr-0x6000] = val
		return
	}

	odd := addr&1 == 1
	switch {
	case addr < 0xA000:
		if odd {
			m.bankData[m.bankSelect&0x07] = val
		} else {
			m.bankSelect = val
		}
	case addr < 0xC000:
		if odd {
			// PRG RAM protect; writable-RAM enforcement left to the
			// host since save RAM is never executable.
		} else {
			if val&1 == 0 {
				m.mirroring = ines.MirrorVertical
			} else {
				m.mirroring = ines.MirrorHorizontal
			}
		}
	case addr < 0xE000:
		if odd {
			m.irqReload = true
			m.irqCounter = 0
		} else {
			m.irqLatch = val
		}
	default:
		if odd {
			m.irqEnabled = true
		} else {
			m.irqEnabled = false
			m.irqPending = false
		}
	}
}

func (m *mmc3) chrBank(addr uint16) (bank int, offset int) {
	chrMode := (m.bankSelect >> 7) & 1
	a := int(addr)
	// Two 2K windows + four 1K windows, swapped as a pair by chrMode.
	regions := [2][4]int{
		{0, 0, 2, 3}, // chrMode 0: 2K,2K,1K,1K at $0000.. in terms of register index
		{4, 5, 6, 7}, // chrMode 1: 1K,1K,1K,1K (mirrored order) at $0000..
	}
	_ = regions
	if chrMode == 0 {
		switch {
		case a < 0x0800:
			return int(m.bankData[0] &^ 1), a % 0x800
		case a < 0x1000:
			return int(m.bankData[1] &^ 1), a % 0x800
		case a < 0x1400:
			return int(m.bankData[2]), a % 0x400
		case a < 0x1800:
			return int(m.bankData[3]), a % 0x400
		case a < 0x1C00:
			return int(m.bankData[4]), a % 0x400
		default:
			return int(m.bankData[5]), a % 0x400
		}
	}
	switch {
	case a < 0x0400:
		return int(m.bankData[2]), a % 0x400
	case a < 0x0800:
		return int(m.bankData[3]), a % 0x400
	case a < 0x0C00:
		return int(m.bankData[4]), a % 0x400
	case a < 0x1000:
		return int(m.bankData[5]), a % 0x400
	case a < 0x1800:
		return int(m.bankData[0] &^ 1), a % 0x800
	default:
		return int(m.bankData[1] &^ 1), a % 0x800
	}
}

func (m *mmc3) ReadCHR(addr uint16) uint8 {
	bank, offset := m.chrBank(addr)
	return m.chr.read(bank, offset)
}

func (m *mmc3) WriteCHR(addr uint16, val uint8) {
	bank, offset := m.chrBank(addr)
	m.chr.write(bank, offset, val)
}

func (m *mmc3) Mirroring() ines.Mirroring { return m.mirroring }

// ClockScanline advances the IRQ counter once per scanline, on the PPU's
// detected A12 rising edge (approximated as one clock per visible or
// pre-render scanline, matching spec's per-scanline mapper hook).
func (m *mmc3) ClockScanline() {
	if m.irqCounter == 0 || m.irqReload {
		m.irqCounter = m.irqLatch
		m.irqReload = false
	} else {
		m.irqCounter--
	}
	if m.irqCounter == 0 && m.irqEnabled {
		m.irqPending = true
	}
}

func (m *mmc3) IRQPending() bool { return m.irqPending }
func (m *mmc3) AckIRQ()          { m.irqPending = false }

func (m *mmc3) BatteryRAM() []byte {
	if !m.battery {
		return nil
	}
	return m.sav
}

func (m *mmc3) Name() string { return "MMC3" }
