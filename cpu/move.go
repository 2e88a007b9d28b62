package cpu

import "github.com/Urethramancer/mos6502/memory"

// Loads, stores, register transfers and the stack instructions.

func (c *CPU) lda(mem *memory.RAM, cy *memory.Cycles, addr uint16) {
	c.A = mem.ReadByte(addr, cy)
	c.setZN(c.A)
}

func (c *CPU) ldx(mem *memory.RAM, cy *memory.Cycles, addr uint16) {
	c.X = mem.ReadByte(addr, cy)
	c.setZN(c.X)
}

func (c *CPU) ldy(mem *memory.RAM, cy *memory.Cycles, addr uint16) {
	c.Y = mem.ReadByte(addr, cy)
	c.setZN(c.Y)
}

func (c *CPU) sta(mem *memory.RAM, cy *memory.Cycles, addr uint16) {
	mem.WriteByte(addr, c.A, cy)
}

func (c *CPU) stx(mem *memory.RAM, cy *memory.Cycles, addr uint16) {
	mem.WriteByte(addr, c.X, cy)
}

func (c *CPU) sty(mem *memory.RAM, cy *memory.Cycles, addr uint16) {
	mem.WriteByte(addr, c.Y, cy)
}

func (c *CPU) tax(cy *memory.Cycles) {
	c.X = c.A
	*cy++
	c.setZN(c.X)
}

func (c *CPU) tay(cy *memory.Cycles) {
	c.Y = c.A
	*cy++
	c.setZN(c.Y)
}

func (c *CPU) txa(cy *memory.Cycles) {
	c.A = c.X
	*cy++
	c.setZN(c.A)
}

func (c *CPU) tya(cy *memory.Cycles) {
	c.A = c.Y
	*cy++
	c.setZN(c.A)
}

func (c *CPU) tsx(cy *memory.Cycles) {
	c.X = c.SP
	*cy++
	c.setZN(c.X)
}

// txs is the one transfer that leaves the flags alone.
func (c *CPU) txs(cy *memory.Cycles) {
	c.SP = c.X
	*cy++
}

func (c *CPU) pha(mem *memory.RAM, cy *memory.Cycles) {
	*cy++
	c.push(mem, cy, c.A)
}

// php pushes the status byte with B and the unused bit forced on.
func (c *CPU) php(mem *memory.RAM, cy *memory.Cycles) {
	*cy++
	c.push(mem, cy, c.P|B|U)
}

func (c *CPU) pla(mem *memory.RAM, cy *memory.Cycles) {
	*cy += 2
	c.A = c.pull(mem, cy)
	c.setZN(c.A)
}

// plp restores the status byte. The unused bit always reads back as 1; B
// comes through from the stack but is not a real flag.
func (c *CPU) plp(mem *memory.RAM, cy *memory.Cycles) {
	*cy += 2
	c.P = c.pull(mem, cy) | U
}
