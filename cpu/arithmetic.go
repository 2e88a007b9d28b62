package cpu

import "github.com/Urethramancer/mos6502/memory"

// Add/subtract with carry, comparisons, increments and decrements.

// adc adds memory and carry into A. In decimal mode each nibble is treated
// as a base-10 digit; N, Z and V are taken from the intermediate sum before
// the high-nibble adjust, matching the NMOS part. Inputs that are not valid
// BCD produce whatever the silicon produces.
func (c *CPU) adc(mem *memory.RAM, cy *memory.Cycles, addr uint16) {
	operand := mem.ReadByte(addr, cy)

	var carry uint16
	if c.flag(C) {
		carry = 1
	}

	if c.flag(D) {
		sum := uint16(c.A&0x0f) + uint16(operand&0x0f) + carry
		if sum > 0x09 {
			sum += 0x06
		}
		if sum > 0x0f {
			sum = uint16(c.A&0xf0) + uint16(operand&0xf0) + 0x10 + sum&0x0f
		} else {
			sum = uint16(c.A&0xf0) + uint16(operand&0xf0) + sum&0x0f
		}

		c.setFlag(N, sum&0x80 != 0)
		c.setFlag(Z, sum&0xff == 0)
		c.setFlag(V, (uint16(c.A)^sum)&(uint16(operand)^sum)&0x80 != 0)

		if sum > 0x9f {
			sum += 0x60
		}
		c.setFlag(C, sum > 0x99)
		c.A = uint8(sum)
		return
	}

	sum := uint16(c.A) + uint16(operand) + carry
	c.setFlag(C, sum > 0xff)
	c.setFlag(V, (uint16(c.A)^sum)&(uint16(operand)^sum)&0x80 != 0)
	c.A = uint8(sum)
	c.setZN(c.A)
}

// sbc subtracts memory and borrow from A. Binary mode is adc with the
// operand inverted; decimal mode runs the NMOS nibble-borrow sequence, which
// leaves V alone.
func (c *CPU) sbc(mem *memory.RAM, cy *memory.Cycles, addr uint16) {
	operand := mem.ReadByte(addr, cy)

	var borrow uint16
	if !c.flag(C) {
		borrow = 1
	}

	if c.flag(D) {
		diff := uint16(c.A&0x0f) - uint16(operand&0x0f) - borrow
		if diff&0x10 != 0 {
			diff = (diff-0x06)&0x0f | (uint16(c.A&0xf0) - uint16(operand&0xf0) - 0x10)
		} else {
			diff = diff&0x0f | (uint16(c.A&0xf0) - uint16(operand&0xf0))
		}
		if diff&0x100 != 0 {
			diff -= 0x60
		}

		c.setFlag(C, diff&0x100 == 0)
		c.A = uint8(diff)
		c.setZN(c.A)
		return
	}

	inverted := uint16(operand ^ 0xff)
	sum := uint16(c.A) + inverted + (1 - borrow)
	c.setFlag(C, sum > 0xff)
	c.setFlag(V, (uint16(c.A)^sum)&(inverted^sum)&0x80 != 0)
	c.A = uint8(sum)
	c.setZN(c.A)
}

// compare sets C, Z and N from reg − operand without touching the register.
func (c *CPU) compare(reg, operand uint8) {
	c.setFlag(C, reg >= operand)
	c.setFlag(Z, reg == operand)
	c.setFlag(N, (reg-operand)&0x80 != 0)
}

func (c *CPU) cmp(mem *memory.RAM, cy *memory.Cycles, addr uint16) {
	c.compare(c.A, mem.ReadByte(addr, cy))
}

func (c *CPU) cpx(mem *memory.RAM, cy *memory.Cycles, addr uint16) {
	c.compare(c.X, mem.ReadByte(addr, cy))
}

func (c *CPU) cpy(mem *memory.RAM, cy *memory.Cycles, addr uint16) {
	c.compare(c.Y, mem.ReadByte(addr, cy))
}

func (c *CPU) inc(mem *memory.RAM, cy *memory.Cycles, addr uint16) {
	value := mem.ReadByte(addr, cy) + 1
	*cy++
	mem.WriteByte(addr, value, cy)
	c.setZN(value)
}

func (c *CPU) dec(mem *memory.RAM, cy *memory.Cycles, addr uint16) {
	value := mem.ReadByte(addr, cy) - 1
	*cy++
	mem.WriteByte(addr, value, cy)
	c.setZN(value)
}

func (c *CPU) inx(cy *memory.Cycles) {
	c.X++
	*cy++
	c.setZN(c.X)
}

func (c *CPU) iny(cy *memory.Cycles) {
	c.Y++
	*cy++
	c.setZN(c.Y)
}

func (c *CPU) dex(cy *memory.Cycles) {
	c.X--
	*cy++
	c.setZN(c.X)
}

func (c *CPU) dey(cy *memory.Cycles) {
	c.Y--
	*cy++
	c.setZN(c.Y)
}
