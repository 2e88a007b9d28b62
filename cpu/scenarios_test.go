package cpu

import "testing"

// End-to-end programs exercising several instruction groups together.

func TestProgramLoadStore(t *testing.T) {
	c, mem := loadProgram(t, 0x1000,
		OpLDAImm, 0x42,
		OpSTAAbs, 0x00, 0x02,
		OpLDAAbs, 0x00, 0x02,
		OpLDXImm, 0xff,
		OpLDYImm, 0x0e,
		OpNOP,
	)

	run(t, c, mem, 6)

	if c.A != 0x42 || c.X != 0xff || c.Y != 0x0e {
		t.Errorf("A=$%02X X=$%02X Y=$%02X, want $42 $FF $0E", c.A, c.X, c.Y)
	}
	if mem.Peek(0x0200) != 0x42 {
		t.Errorf("$0200 = $%02X, want $42", mem.Peek(0x0200))
	}
	// LDX set N, then LDY's $0E cleared it again.
	if c.flag(N) || c.flag(Z) {
		t.Errorf("P=$%02X, want N and Z clear after the final load", c.P)
	}
}

func TestProgramArithmetic(t *testing.T) {
	c, mem := loadProgram(t, 0x1000,
		OpCLC,
		OpLDAImm, 0x05,
		OpADCImm, 0x03,
		OpNOP,
	)

	run(t, c, mem, 4)

	if c.A != 0x08 {
		t.Errorf("A=$%02X, want $08", c.A)
	}
	if c.flag(C) || c.flag(Z) || c.flag(N) || c.flag(V) {
		t.Errorf("P=$%02X, want C, Z, N and V clear", c.P)
	}
}

func TestProgramSignedOverflow(t *testing.T) {
	c, mem := loadProgram(t, 0x1000,
		OpCLC,
		OpLDAImm, 0x50,
		OpADCImm, 0x50,
	)

	run(t, c, mem, 3)

	if c.A != 0xa0 {
		t.Errorf("A=$%02X, want $A0", c.A)
	}
	if !c.flag(N) || !c.flag(V) || c.flag(C) || c.flag(Z) {
		t.Errorf("P=$%02X, want N and V set, C and Z clear", c.P)
	}
}

func TestProgramCountingLoop(t *testing.T) {
	c, mem := loadProgram(t, 0x1000,
		OpLDXImm, 0x00,
		OpINX,           // $1002
		OpCPXImm, 0x05,  // $1003
		OpBNE, 0xfb,     // $1005, back to INX
		OpNOP,           // $1007
	)

	steps := 0
	for c.PC != 0x1007 {
		step(t, c, mem)
		if steps++; steps > 50 {
			t.Fatal("loop did not terminate")
		}
	}

	if c.X != 0x05 {
		t.Errorf("X=$%02X, want $05", c.X)
	}
	if !c.flag(Z) || !c.flag(C) {
		t.Errorf("P=$%02X, want Z and C set from the final compare", c.P)
	}
	// LDX, then five rounds of INX/CPX/BNE with the last branch not taken.
	if steps != 16 {
		t.Errorf("loop took %d steps, want 16", steps)
	}
}

func TestProgramBCDAddition(t *testing.T) {
	c, mem := loadProgram(t, 0x1000,
		OpSED,
		OpCLC,
		OpLDAImm, 0x15,
		OpADCImm, 0x27,
	)

	run(t, c, mem, 4)

	if c.A != 0x42 {
		t.Errorf("A=$%02X, want $42", c.A)
	}
	if c.flag(C) || c.flag(Z) || c.flag(N) {
		t.Errorf("P=$%02X, want C, Z and N clear", c.P)
	}
}

func TestProgramSubroutineNesting(t *testing.T) {
	c, mem := loadProgram(t, 0x1000,
		OpJSR, 0x00, 0x20,
		OpNOP,
	)
	copy((*mem)[0x2000:], []uint8{
		OpJSR, 0x00, 0x30,
		OpRTS,
	})
	(*mem)[0x3000] = OpINX
	(*mem)[0x3001] = OpRTS

	run(t, c, mem, 6) // JSR, JSR, INX, RTS, RTS, NOP

	if c.PC != 0x1004 {
		t.Errorf("PC=$%04X, want $1004 after returning twice", c.PC)
	}
	if c.X != 0x01 {
		t.Errorf("X=$%02X, want $01", c.X)
	}
	if c.SP != StackReset {
		t.Errorf("SP=$%02X, want $%02X", c.SP, StackReset)
	}
}
