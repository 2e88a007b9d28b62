package cpu

import "github.com/Urethramancer/mos6502/memory"

// Bitwise operations, bit test, shifts and rotates.

func (c *CPU) and(mem *memory.RAM, cy *memory.Cycles, addr uint16) {
	c.A &= mem.ReadByte(addr, cy)
	c.setZN(c.A)
}

func (c *CPU) ora(mem *memory.RAM, cy *memory.Cycles, addr uint16) {
	c.A |= mem.ReadByte(addr, cy)
	c.setZN(c.A)
}

func (c *CPU) eor(mem *memory.RAM, cy *memory.Cycles, addr uint16) {
	c.A ^= mem.ReadByte(addr, cy)
	c.setZN(c.A)
}

// bit tests memory against A: Z from the AND, N and V copied from bits 7
// and 6 of the operand. A is untouched.
func (c *CPU) bit(mem *memory.RAM, cy *memory.Cycles, addr uint16) {
	value := mem.ReadByte(addr, cy)
	c.setFlag(Z, c.A&value == 0)
	c.setFlag(N, value&0x80 != 0)
	c.setFlag(V, value&0x40 != 0)
}

func (c *CPU) aslAcc(cy *memory.Cycles) {
	c.setFlag(C, c.A&0x80 != 0)
	c.A <<= 1
	*cy++
	c.setZN(c.A)
}

func (c *CPU) aslMem(mem *memory.RAM, cy *memory.Cycles, addr uint16) {
	value := mem.ReadByte(addr, cy)
	c.setFlag(C, value&0x80 != 0)
	value <<= 1
	*cy++
	mem.WriteByte(addr, value, cy)
	c.setZN(value)
}

func (c *CPU) lsrAcc(cy *memory.Cycles) {
	c.setFlag(C, c.A&0x01 != 0)
	c.A >>= 1
	*cy++
	c.setZN(c.A)
}

func (c *CPU) lsrMem(mem *memory.RAM, cy *memory.Cycles, addr uint16) {
	value := mem.ReadByte(addr, cy)
	c.setFlag(C, value&0x01 != 0)
	value >>= 1
	*cy++
	mem.WriteByte(addr, value, cy)
	c.setZN(value)
}

// rol shifts left through carry: old carry fills bit 0, old bit 7 becomes
// the new carry.
func (c *CPU) rolAcc(cy *memory.Cycles) {
	carry := c.P & C
	c.setFlag(C, c.A&0x80 != 0)
	c.A = c.A<<1 | carry
	*cy++
	c.setZN(c.A)
}

func (c *CPU) rolMem(mem *memory.RAM, cy *memory.Cycles, addr uint16) {
	value := mem.ReadByte(addr, cy)
	carry := c.P & C
	c.setFlag(C, value&0x80 != 0)
	value = value<<1 | carry
	*cy++
	mem.WriteByte(addr, value, cy)
	c.setZN(value)
}

// ror shifts right through carry: old carry fills bit 7, old bit 0 becomes
// the new carry.
func (c *CPU) rorAcc(cy *memory.Cycles) {
	var carry uint8
	if c.flag(C) {
		carry = 0x80
	}
	c.setFlag(C, c.A&0x01 != 0)
	c.A = c.A>>1 | carry
	*cy++
	c.setZN(c.A)
}

func (c *CPU) rorMem(mem *memory.RAM, cy *memory.Cycles, addr uint16) {
	value := mem.ReadByte(addr, cy)
	var carry uint8
	if c.flag(C) {
		carry = 0x80
	}
	c.setFlag(C, value&0x01 != 0)
	value = value>>1 | carry
	*cy++
	mem.WriteByte(addr, value, cy)
	c.setZN(value)
}
