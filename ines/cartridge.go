package ines

import "fmt"

// Cartridge is the fully unpacked contents of a ROM image: its header,
// trainer (if present), and PRG/CHR data. It is pure data — bank
// switching and address translation is the mapper's job (see package
// mapper), not the cartridge's.
type Cartridge struct {
	Header  *Header
	Trainer []byte // 512 bytes, or nil
	PRG     []byte
	CHR     []byte // empty when the board uses CHR RAM instead of CHR ROM
}

// Load parses a full iNES/NES 2.0 ROM image (header + trainer + PRG +
// CHR, in that order) into a Cartridge.
func Load(data []byte) (*Cartridge, error) {
	h, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if h.PrgBanks == 0 {
		return nil, fmt.Errorf("ines: zero PRG banks: %w", ErrUnrecognizedFormat)
	}

	off := headerSize
	c := &Cartridge{Header: h}

	if h.Trainer {
		end := off + trainerSize
		if end > len(data) {
			return nil, fmt.Errorf("ines: truncated trainer: %w", ErrInsufficientBytes)
		}
		c.Trainer = data[off:end]
		off = end
	}

	prgLen := int(h.PrgBanks) * PrgBankSize
	prgEnd := off + prgLen
	if prgEnd > len(data) {
		return nil, fmt.Errorf("ines: truncated PRG ROM (want %d bytes): %w", prgLen, ErrInsufficientBytes)
	}
	c.PRG = data[off:prgEnd]
	off = prgEnd

	if h.ChrBanks > 0 {
		chrLen := int(h.ChrBanks) * ChrBankSize
		chrEnd := off + chrLen
		if chrEnd > len(data) {
			return nil, fmt.Errorf("ines: truncated CHR ROM (want %d bytes): %w", chrLen, ErrInsufficientBytes)
		}
		c.CHR = data[off:chrEnd]
	}

	return c, nil
}

// HasChrRAM reports whether the board supplies its own CHR RAM instead
// of fixed CHR ROM (header CHR bank count of zero).
func (c *Cartridge) HasChrRAM() bool {
	return len(c.CHR) == 0
}
