package cpu

import "github.com/Urethramancer/mos6502/memory"

// Step fetches, decodes and executes a single instruction, adds its cost to
// TotalCycles and returns it. Undocumented opcodes retire as one-tick
// no-ops beyond the fetch.
func (c *CPU) Step(mem *memory.RAM) memory.Cycles {
	var cy memory.Cycles

	op := c.fetchByte(mem, &cy)

	switch op {
	// Loads
	case OpLDAImm:
		c.lda(mem, &cy, c.addrImmediate(&cy))
	case OpLDAZp:
		c.lda(mem, &cy, c.addrZeroPage(mem, &cy))
	case OpLDAZpX:
		c.lda(mem, &cy, c.addrZeroPageX(mem, &cy))
	case OpLDAAbs:
		c.lda(mem, &cy, c.addrAbsolute(mem, &cy))
	case OpLDAAbsX:
		c.lda(mem, &cy, c.addrAbsoluteX(mem, &cy, true))
	case OpLDAAbsY:
		c.lda(mem, &cy, c.addrAbsoluteY(mem, &cy, true))
	case OpLDAIndX:
		c.lda(mem, &cy, c.addrIndexedIndirect(mem, &cy))
	case OpLDAIndY:
		c.lda(mem, &cy, c.addrIndirectIndexed(mem, &cy, true))

	case OpLDXImm:
		c.ldx(mem, &cy, c.addrImmediate(&cy))
	case OpLDXZp:
		c.ldx(mem, &cy, c.addrZeroPage(mem, &cy))
	case OpLDXZpY:
		c.ldx(mem, &cy, c.addrZeroPageY(mem, &cy))
	case OpLDXAbs:
		c.ldx(mem, &cy, c.addrAbsolute(mem, &cy))
	case OpLDXAbsY:
		c.ldx(mem, &cy, c.addrAbsoluteY(mem, &cy, true))

	case OpLDYImm:
		c.ldy(mem, &cy, c.addrImmediate(&cy))
	case OpLDYZp:
		c.ldy(mem, &cy, c.addrZeroPage(mem, &cy))
	case OpLDYZpX:
		c.ldy(mem, &cy, c.addrZeroPageX(mem, &cy))
	case OpLDYAbs:
		c.ldy(mem, &cy, c.addrAbsolute(mem, &cy))
	case OpLDYAbsX:
		c.ldy(mem, &cy, c.addrAbsoluteX(mem, &cy, true))

	// Stores
	case OpSTAZp:
		c.sta(mem, &cy, c.addrZeroPage(mem, &cy))
	case OpSTAZpX:
		c.sta(mem, &cy, c.addrZeroPageX(mem, &cy))
	case OpSTAAbs:
		c.sta(mem, &cy, c.addrAbsolute(mem, &cy))
	case OpSTAAbsX:
		c.sta(mem, &cy, c.addrAbsoluteX(mem, &cy, false))
	case OpSTAAbsY:
		c.sta(mem, &cy, c.addrAbsoluteY(mem, &cy, false))
	case OpSTAIndX:
		c.sta(mem, &cy, c.addrIndexedIndirect(mem, &cy))
	case OpSTAIndY:
		c.sta(mem, &cy, c.addrIndirectIndexed(mem, &cy, false))

	case OpSTXZp:
		c.stx(mem, &cy, c.addrZeroPage(mem, &cy))
	case OpSTXZpY:
		c.stx(mem, &cy, c.addrZeroPageY(mem, &cy))
	case OpSTXAbs:
		c.stx(mem, &cy, c.addrAbsolute(mem, &cy))

	case OpSTYZp:
		c.sty(mem, &cy, c.addrZeroPage(mem, &cy))
	case OpSTYZpX:
		c.sty(mem, &cy, c.addrZeroPageX(mem, &cy))
	case OpSTYAbs:
		c.sty(mem, &cy, c.addrAbsolute(mem, &cy))

	// Register transfers
	case OpTAX:
		c.tax(&cy)
	case OpTAY:
		c.tay(&cy)
	case OpTXA:
		c.txa(&cy)
	case OpTYA:
		c.tya(&cy)
	case OpTSX:
		c.tsx(&cy)
	case OpTXS:
		c.txs(&cy)

	// Stack
	case OpPHA:
		c.pha(mem, &cy)
	case OpPHP:
		c.php(mem, &cy)
	case OpPLA:
		c.pla(mem, &cy)
	case OpPLP:
		c.plp(mem, &cy)

	// Logical
	case OpANDImm:
		c.and(mem, &cy, c.addrImmediate(&cy))
	case OpANDZp:
		c.and(mem, &cy, c.addrZeroPage(mem, &cy))
	case OpANDZpX:
		c.and(mem, &cy, c.addrZeroPageX(mem, &cy))
	case OpANDAbs:
		c.and(mem, &cy, c.addrAbsolute(mem, &cy))
	case OpANDAbsX:
		c.and(mem, &cy, c.addrAbsoluteX(mem, &cy, true))
	case OpANDAbsY:
		c.and(mem, &cy, c.addrAbsoluteY(mem, &cy, true))
	case OpANDIndX:
		c.and(mem, &cy, c.addrIndexedIndirect(mem, &cy))
	case OpANDIndY:
		c.and(mem, &cy, c.addrIndirectIndexed(mem, &cy, true))

	case OpORAImm:
		c.ora(mem, &cy, c.addrImmediate(&cy))
	case OpORAZp:
		c.ora(mem, &cy, c.addrZeroPage(mem, &cy))
	case OpORAZpX:
		c.ora(mem, &cy, c.addrZeroPageX(mem, &cy))
	case OpORAAbs:
		c.ora(mem, &cy, c.addrAbsolute(mem, &cy))
	case OpORAAbsX:
		c.ora(mem, &cy, c.addrAbsoluteX(mem, &cy, true))
	case OpORAAbsY:
		c.ora(mem, &cy, c.addrAbsoluteY(mem, &cy, true))
	case OpORAIndX:
		c.ora(mem, &cy, c.addrIndexedIndirect(mem, &cy))
	case OpORAIndY:
		c.ora(mem, &cy, c.addrIndirectIndexed(mem, &cy, true))

	case OpEORImm:
		c.eor(mem, &cy, c.addrImmediate(&cy))
	case OpEORZp:
		c.eor(mem, &cy, c.addrZeroPage(mem, &cy))
	case OpEORZpX:
		c.eor(mem, &cy, c.addrZeroPageX(mem, &cy))
	case OpEORAbs:
		c.eor(mem, &cy, c.addrAbsolute(mem, &cy))
	case OpEORAbsX:
		c.eor(mem, &cy, c.addrAbsoluteX(mem, &cy, true))
	case OpEORAbsY:
		c.eor(mem, &cy, c.addrAbsoluteY(mem, &cy, true))
	case OpEORIndX:
		c.eor(mem, &cy, c.addrIndexedIndirect(mem, &cy))
	case OpEORIndY:
		c.eor(mem, &cy, c.addrIndirectIndexed(mem, &cy, true))

	case OpBITZp:
		c.bit(mem, &cy, c.addrZeroPage(mem, &cy))
	case OpBITAbs:
		c.bit(mem, &cy, c.addrAbsolute(mem, &cy))

	// Arithmetic
	case OpADCImm:
		c.adc(mem, &cy, c.addrImmediate(&cy))
	case OpADCZp:
		c.adc(mem, &cy, c.addrZeroPage(mem, &cy))
	case OpADCZpX:
		c.adc(mem, &cy, c.addrZeroPageX(mem, &cy))
	case OpADCAbs:
		c.adc(mem, &cy, c.addrAbsolute(mem, &cy))
	case OpADCAbsX:
		c.adc(mem, &cy, c.addrAbsoluteX(mem, &cy, true))
	case OpADCAbsY:
		c.adc(mem, &cy, c.addrAbsoluteY(mem, &cy, true))
	case OpADCIndX:
		c.adc(mem, &cy, c.addrIndexedIndirect(mem, &cy))
	case OpADCIndY:
		c.adc(mem, &cy, c.addrIndirectIndexed(mem, &cy, true))

	case OpSBCImm:
		c.sbc(mem, &cy, c.addrImmediate(&cy))
	case OpSBCZp:
		c.sbc(mem, &cy, c.addrZeroPage(mem, &cy))
	case OpSBCZpX:
		c.sbc(mem, &cy, c.addrZeroPageX(mem, &cy))
	case OpSBCAbs:
		c.sbc(mem, &cy, c.addrAbsolute(mem, &cy))
	case OpSBCAbsX:
		c.sbc(mem, &cy, c.addrAbsoluteX(mem, &cy, true))
	case OpSBCAbsY:
		c.sbc(mem, &cy, c.addrAbsoluteY(mem, &cy, true))
	case OpSBCIndX:
		c.sbc(mem, &cy, c.addrIndexedIndirect(mem, &cy))
	case OpSBCIndY:
		c.sbc(mem, &cy, c.addrIndirectIndexed(mem, &cy, true))

	// Comparisons
	case OpCMPImm:
		c.cmp(mem, &cy, c.addrImmediate(&cy))
	case OpCMPZp:
		c.cmp(mem, &cy, c.addrZeroPage(mem, &cy))
	case OpCMPZpX:
		c.cmp(mem, &cy, c.addrZeroPageX(mem, &cy))
	case OpCMPAbs:
		c.cmp(mem, &cy, c.addrAbsolute(mem, &cy))
	case OpCMPAbsX:
		c.cmp(mem, &cy, c.addrAbsoluteX(mem, &cy, true))
	case OpCMPAbsY:
		c.cmp(mem, &cy, c.addrAbsoluteY(mem, &cy, true))
	case OpCMPIndX:
		c.cmp(mem, &cy, c.addrIndexedIndirect(mem, &cy))
	case OpCMPIndY:
		c.cmp(mem, &cy, c.addrIndirectIndexed(mem, &cy, true))

	case OpCPXImm:
		c.cpx(mem, &cy, c.addrImmediate(&cy))
	case OpCPXZp:
		c.cpx(mem, &cy, c.addrZeroPage(mem, &cy))
	case OpCPXAbs:
		c.cpx(mem, &cy, c.addrAbsolute(mem, &cy))

	case OpCPYImm:
		c.cpy(mem, &cy, c.addrImmediate(&cy))
	case OpCPYZp:
		c.cpy(mem, &cy, c.addrZeroPage(mem, &cy))
	case OpCPYAbs:
		c.cpy(mem, &cy, c.addrAbsolute(mem, &cy))

	// Increments and decrements
	case OpINCZp:
		c.inc(mem, &cy, c.addrZeroPage(mem, &cy))
	case OpINCZpX:
		c.inc(mem, &cy, c.addrZeroPageX(mem, &cy))
	case OpINCAbs:
		c.inc(mem, &cy, c.addrAbsolute(mem, &cy))
	case OpINCAbsX:
		c.inc(mem, &cy, c.addrAbsoluteX(mem, &cy, false))
	case OpINX:
		c.inx(&cy)
	case OpINY:
		c.iny(&cy)

	case OpDECZp:
		c.dec(mem, &cy, c.addrZeroPage(mem, &cy))
	case OpDECZpX:
		c.dec(mem, &cy, c.addrZeroPageX(mem, &cy))
	case OpDECAbs:
		c.dec(mem, &cy, c.addrAbsolute(mem, &cy))
	case OpDECAbsX:
		c.dec(mem, &cy, c.addrAbsoluteX(mem, &cy, false))
	case OpDEX:
		c.dex(&cy)
	case OpDEY:
		c.dey(&cy)

	// Shifts and rotates
	case OpASLAcc:
		c.aslAcc(&cy)
	case OpASLZp:
		c.aslMem(mem, &cy, c.addrZeroPage(mem, &cy))
	case OpASLZpX:
		c.aslMem(mem, &cy, c.addrZeroPageX(mem, &cy))
	case OpASLAbs:
		c.aslMem(mem, &cy, c.addrAbsolute(mem, &cy))
	case OpASLAbsX:
		c.aslMem(mem, &cy, c.addrAbsoluteX(mem, &cy, false))

	case OpLSRAcc:
		c.lsrAcc(&cy)
	case OpLSRZp:
		c.lsrMem(mem, &cy, c.addrZeroPage(mem, &cy))
	case OpLSRZpX:
		c.lsrMem(mem, &cy, c.addrZeroPageX(mem, &cy))
	case OpLSRAbs:
		c.lsrMem(mem, &cy, c.addrAbsolute(mem, &cy))
	case OpLSRAbsX:
		c.lsrMem(mem, &cy, c.addrAbsoluteX(mem, &cy, false))

	case OpROLAcc:
		c.rolAcc(&cy)
	case OpROLZp:
		c.rolMem(mem, &cy, c.addrZeroPage(mem, &cy))
	case OpROLZpX:
		c.rolMem(mem, &cy, c.addrZeroPageX(mem, &cy))
	case OpROLAbs:
		c.rolMem(mem, &cy, c.addrAbsolute(mem, &cy))
	case OpROLAbsX:
		c.rolMem(mem, &cy, c.addrAbsoluteX(mem, &cy, false))

	case OpRORAcc:
		c.rorAcc(&cy)
	case OpRORZp:
		c.rorMem(mem, &cy, c.addrZeroPage(mem, &cy))
	case OpRORZpX:
		c.rorMem(mem, &cy, c.addrZeroPageX(mem, &cy))
	case OpRORAbs:
		c.rorMem(mem, &cy, c.addrAbsolute(mem, &cy))
	case OpRORAbsX:
		c.rorMem(mem, &cy, c.addrAbsoluteX(mem, &cy, false))

	// Jumps and subroutines
	case OpJMPAbs:
		c.jmp(c.addrAbsolute(mem, &cy))
	case OpJMPInd:
		c.jmpIndirect(mem, &cy)
	case OpJSR:
		c.jsr(mem, &cy, c.addrAbsolute(mem, &cy))
	case OpRTS:
		c.rts(mem, &cy)

	// Branches
	case OpBCC:
		c.branchIf(mem, &cy, !c.flag(C))
	case OpBCS:
		c.branchIf(mem, &cy, c.flag(C))
	case OpBEQ:
		c.branchIf(mem, &cy, c.flag(Z))
	case OpBMI:
		c.branchIf(mem, &cy, c.flag(N))
	case OpBNE:
		c.branchIf(mem, &cy, !c.flag(Z))
	case OpBPL:
		c.branchIf(mem, &cy, !c.flag(N))
	case OpBVC:
		c.branchIf(mem, &cy, !c.flag(V))
	case OpBVS:
		c.branchIf(mem, &cy, c.flag(V))

	// Flag operations
	case OpCLC:
		c.setFlagOp(&cy, C, false)
	case OpCLD:
		c.setFlagOp(&cy, D, false)
	case OpCLI:
		c.setFlagOp(&cy, I, false)
	case OpCLV:
		c.setFlagOp(&cy, V, false)
	case OpSEC:
		c.setFlagOp(&cy, C, true)
	case OpSED:
		c.setFlagOp(&cy, D, true)
	case OpSEI:
		c.setFlagOp(&cy, I, true)

	// System
	case OpBRK:
		c.brk(mem, &cy)
	case OpRTI:
		c.rti(mem, &cy)
	case OpNOP:
		c.nop(&cy)

	default:
		// Undocumented opcode: one tick, carry on.
		cy++
	}

	c.TotalCycles += cy

	return cy
}

// RunFor steps until at least budget ticks have been executed. It never
// stops mid-instruction, so it may overshoot by at most one instruction.
// Returns the ticks actually executed.
func (c *CPU) RunFor(budget memory.Cycles, mem *memory.RAM) memory.Cycles {
	var executed memory.Cycles
	for executed < budget {
		executed += c.Step(mem)
	}
	return executed
}
