package cpu

import "github.com/Urethramancer/mos6502/memory"

// Addressing mode helpers. Each returns the effective address of the
// operand and charges the ticks the mode costs beyond the operand fetch.
//
// Indexed modes charge one tick for the index add. Read instructions pay it
// only when the add crosses a page; write and read-modify-write
// instructions pay it unconditionally, so their cost is fixed whether or
// not the access crosses.

// crossed reports whether two addresses sit on different pages.
func crossed(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

// addrImmediate: the operand is the byte after the opcode.
func (c *CPU) addrImmediate(cy *memory.Cycles) uint16 {
	addr := c.PC
	c.PC++
	*cy++
	return addr
}

// addrZeroPage: one operand byte addressing page 0.
func (c *CPU) addrZeroPage(mem *memory.RAM, cy *memory.Cycles) uint16 {
	return uint16(c.fetchByte(mem, cy))
}

// addrZeroPageX: zero page plus X, wrapping within page 0.
func (c *CPU) addrZeroPageX(mem *memory.RAM, cy *memory.Cycles) uint16 {
	addr := c.fetchByte(mem, cy) + c.X
	*cy++
	return uint16(addr)
}

// addrZeroPageY: zero page plus Y, wrapping within page 0.
func (c *CPU) addrZeroPageY(mem *memory.RAM, cy *memory.Cycles) uint16 {
	addr := c.fetchByte(mem, cy) + c.Y
	*cy++
	return uint16(addr)
}

// addrAbsolute: two operand bytes forming a full address.
func (c *CPU) addrAbsolute(mem *memory.RAM, cy *memory.Cycles) uint16 {
	return c.fetchWord(mem, cy)
}

// addrAbsoluteX: absolute plus X. crossOnly selects the read policy.
func (c *CPU) addrAbsoluteX(mem *memory.RAM, cy *memory.Cycles, crossOnly bool) uint16 {
	base := c.fetchWord(mem, cy)
	addr := base + uint16(c.X)
	if !crossOnly || crossed(base, addr) {
		*cy++
	}
	return addr
}

// addrAbsoluteY: absolute plus Y. crossOnly selects the read policy.
func (c *CPU) addrAbsoluteY(mem *memory.RAM, cy *memory.Cycles, crossOnly bool) uint16 {
	base := c.fetchWord(mem, cy)
	addr := base + uint16(c.Y)
	if !crossOnly || crossed(base, addr) {
		*cy++
	}
	return addr
}

// addrIndexedIndirect: ($zp,X). The pointer and its high byte both wrap
// within page 0.
func (c *CPU) addrIndexedIndirect(mem *memory.RAM, cy *memory.Cycles) uint16 {
	ptr := c.fetchByte(mem, cy) + c.X
	*cy++
	lo := uint16(mem.ReadByte(uint16(ptr), cy))
	hi := uint16(mem.ReadByte(uint16(ptr+1), cy))
	return hi<<8 | lo
}

// addrIndirectIndexed: ($zp),Y. crossOnly selects the read policy.
func (c *CPU) addrIndirectIndexed(mem *memory.RAM, cy *memory.Cycles, crossOnly bool) uint16 {
	ptr := c.fetchByte(mem, cy)
	lo := uint16(mem.ReadByte(uint16(ptr), cy))
	hi := uint16(mem.ReadByte(uint16(ptr+1), cy))
	base := hi<<8 | lo
	addr := base + uint16(c.Y)
	if !crossOnly || crossed(base, addr) {
		*cy++
	}
	return addr
}
