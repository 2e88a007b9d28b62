package cpu

import "github.com/Urethramancer/mos6502/memory"

// fetchByte reads the byte at PC and advances PC.
func (c *CPU) fetchByte(mem *memory.RAM, cy *memory.Cycles) uint8 {
	value := mem.ReadByte(c.PC, cy)
	c.PC++
	return value
}

// fetchWord reads the little-endian word at PC and advances PC by two.
func (c *CPU) fetchWord(mem *memory.RAM, cy *memory.Cycles) uint16 {
	value := mem.ReadWord(c.PC, cy)
	c.PC += 2
	return value
}

// push stores a byte at the stack pointer and moves the stack down. SP
// wraps within page 1.
func (c *CPU) push(mem *memory.RAM, cy *memory.Cycles, value uint8) {
	mem.WriteByte(StackBase+uint16(c.SP), value, cy)
	c.SP--
}

// pushWord pushes the high byte first so the word reads back little-endian.
func (c *CPU) pushWord(mem *memory.RAM, cy *memory.Cycles, value uint16) {
	c.push(mem, cy, uint8(value>>8))
	c.push(mem, cy, uint8(value))
}

// pull moves the stack up and reads the byte at the stack pointer.
func (c *CPU) pull(mem *memory.RAM, cy *memory.Cycles) uint8 {
	c.SP++
	return mem.ReadByte(StackBase+uint16(c.SP), cy)
}

// pullWord pulls the low byte first.
func (c *CPU) pullWord(mem *memory.RAM, cy *memory.Cycles) uint16 {
	lo := uint16(c.pull(mem, cy))
	hi := uint16(c.pull(mem, cy))
	return hi<<8 | lo
}
