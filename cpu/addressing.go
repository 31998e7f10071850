package cpu

// AddressingMode identifies how an opcode's operand bytes are turned
// into an effective address.
type AddressingMode uint8

const (
	Implicit AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX // (zp,X)
	IndirectY // (zp),Y
)

// resolveAddress consumes the operand bytes following the opcode byte
// (advancing PC) and returns the effective address plus whether the
// indexed addressing crossed a page boundary, which some opcodes
// charge an extra cycle for.
func (c *CPU) resolveAddress(mode AddressingMode) (addr uint16, pageCrossed bool) {
	switch mode {
	case Implicit, Accumulator:
		return 0, false
	case Immediate:
		addr = c.PC
		c.PC++
		return addr, false
	case ZeroPage:
		addr = uint16(c.read(c.PC))
		c.PC++
		return addr, false
	case ZeroPageX:
		addr = uint16(c.read(c.PC) + c.X)
		c.PC++
		return addr, false
	case ZeroPageY:
		addr = uint16(c.read(c.PC) + c.Y)
		c.PC++
		return addr, false
	case Relative:
		off := int8(c.read(c.PC))
		c.PC++
		addr = uint16(int32(c.PC) + int32(off))
		return addr, pagesDiffer(c.PC, addr)
	case Absolute:
		addr = c.read16(c.PC)
		c.PC += 2
		return addr, false
	case AbsoluteX:
		base := c.read16(c.PC)
		c.PC += 2
		addr = base + uint16(c.X)
		return addr, pagesDiffer(base, addr)
	case AbsoluteY:
		base := c.read16(c.PC)
		c.PC += 2
		addr = base + uint16(c.Y)
		return addr, pagesDiffer(base, addr)
	case Indirect:
		ptr := c.read16(c.PC)
		c.PC += 2
		return c.read16Bugged(ptr), false
	case IndirectX:
		zp := c.read(c.PC) + c.X
		c.PC++
		addr = c.read16Bugged(uint16(zp))
		return addr, false
	case IndirectY:
		zp := c.read(c.PC)
		c.PC++
		base := c.read16Bugged(uint16(zp))
		addr = base + uint16(c.Y)
		return addr, pagesDiffer(base, addr)
	}
	return 0, false
}

func pagesDiffer(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// operand fetches the effective value for read-class instructions,
// handling the Accumulator addressing mode specially since it has no
// memory address.
func (c *CPU) operand(addr uint16, mode AddressingMode) uint8 {
	if mode == Accumulator {
		return c.A
	}
	return c.read(addr)
}

func (c *CPU) storeResult(addr uint16, mode AddressingMode, v uint8) {
	if mode == Accumulator {
		c.A = v
		return
	}
	c.write(addr, v)
}
