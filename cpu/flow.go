package cpu

import "github.com/Urethramancer/mos6502/memory"

// Jumps, subroutines, branches, BRK/RTI and the flag instructions.

func (c *CPU) jmp(addr uint16) {
	c.PC = addr
}

// jmpIndirect reproduces the NMOS page-boundary bug: a pointer ending in
// 0xff takes its high byte from the start of the same page.
func (c *CPU) jmpIndirect(mem *memory.RAM, cy *memory.Cycles) {
	ptr := c.fetchWord(mem, cy)
	if ptr&0x00ff == 0x00ff {
		lo := uint16(mem.ReadByte(ptr, cy))
		hi := uint16(mem.ReadByte(ptr&0xff00, cy))
		c.PC = hi<<8 | lo
		return
	}
	c.PC = mem.ReadWord(ptr, cy)
}

// jsr pushes the address of its own last byte, so RTS lands on the
// instruction after the call.
func (c *CPU) jsr(mem *memory.RAM, cy *memory.Cycles, addr uint16) {
	*cy++
	c.pushWord(mem, cy, c.PC-1)
	c.PC = addr
}

func (c *CPU) rts(mem *memory.RAM, cy *memory.Cycles) {
	*cy += 2
	c.PC = c.pullWord(mem, cy) + 1
	*cy++
}

func (c *CPU) rti(mem *memory.RAM, cy *memory.Cycles) {
	*cy++
	c.P = c.pull(mem, cy) | U
	c.PC = c.pullWord(mem, cy)
}

// branchIf fetches the signed offset, then moves PC when the condition
// holds: one extra tick for the taken branch, another when it crosses a
// page.
func (c *CPU) branchIf(mem *memory.RAM, cy *memory.Cycles, condition bool) {
	offset := int8(c.fetchByte(mem, cy))
	if !condition {
		return
	}

	*cy++
	old := c.PC
	c.PC += uint16(int16(offset))
	if crossed(old, c.PC) {
		*cy++
	}
}

// brk skips its signature byte, stacks PC and the status byte with B set,
// disables interrupts and jumps through the IRQ/BRK vector.
func (c *CPU) brk(mem *memory.RAM, cy *memory.Cycles) {
	c.PC++
	*cy++
	c.pushWord(mem, cy, c.PC)
	c.push(mem, cy, c.P|B|U)
	c.setFlag(I, true)
	c.PC = mem.ReadWord(IRQVector, cy)
}

func (c *CPU) setFlagOp(cy *memory.Cycles, flag uint8, on bool) {
	c.setFlag(flag, on)
	*cy++
}

func (c *CPU) nop(cy *memory.Cycles) {
	*cy++
}
