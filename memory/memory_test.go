package memory

import "testing"

func TestReadWriteByte(t *testing.T) {
	mem := New()
	var c Cycles

	mem.WriteByte(0x0200, 0x42, &c)
	if c != 1 {
		t.Errorf("write charged %d cycles, want 1", c)
	}

	got := mem.ReadByte(0x0200, &c)
	if got != 0x42 {
		t.Errorf("read $%02X, want $42", got)
	}
	if c != 2 {
		t.Errorf("read charged %d cycles, want 1 more (total 2)", c)
	}
}

func TestWordLittleEndian(t *testing.T) {
	mem := New()
	var c Cycles

	mem.WriteWord(0x1000, 0x1234, &c)
	if c != 2 {
		t.Errorf("word write charged %d cycles, want 2", c)
	}
	if (*mem)[0x1000] != 0x34 || (*mem)[0x1001] != 0x12 {
		t.Errorf("layout %02X %02X, want 34 12", (*mem)[0x1000], (*mem)[0x1001])
	}

	got := mem.ReadWord(0x1000, &c)
	if got != 0x1234 {
		t.Errorf("read $%04X, want $1234", got)
	}
	if c != 4 {
		t.Errorf("word read charged %d cycles, want 2 more (total 4)", c)
	}
}

func TestWordWrapsAddressSpace(t *testing.T) {
	mem := New()
	var c Cycles

	(*mem)[0xffff] = 0xcd
	(*mem)[0x0000] = 0xab

	if got := mem.ReadWord(0xffff, &c); got != 0xabcd {
		t.Errorf("read $%04X, want $ABCD (high byte from $0000)", got)
	}

	mem.WriteWord(0xffff, 0x1122, &c)
	if (*mem)[0xffff] != 0x22 || (*mem)[0x0000] != 0x11 {
		t.Errorf("wrap write got %02X %02X, want 22 11", (*mem)[0xffff], (*mem)[0x0000])
	}
}

func TestPeekIsUnmetered(t *testing.T) {
	mem := New()
	(*mem)[0x00ff] = 0x99

	if got := mem.Peek(0x00ff); got != 0x99 {
		t.Errorf("peek $%02X, want $99", got)
	}
}

func TestInitialize(t *testing.T) {
	mem := New()
	for _, addr := range []uint16{0x0000, 0x1234, 0xffff} {
		(*mem)[addr] = 0xff
	}

	mem.Initialize()
	for _, addr := range []uint16{0x0000, 0x1234, 0xffff} {
		if mem.Peek(addr) != 0 {
			t.Errorf("$%04X not cleared", addr)
		}
	}
}

func TestNewIsZeroFilledAndFullSize(t *testing.T) {
	mem := New()
	if len(*mem) != Size {
		t.Fatalf("len %d, want %d", len(*mem), Size)
	}
	for i, b := range *mem {
		if b != 0 {
			t.Fatalf("$%04X = $%02X on power-on, want 0", i, b)
		}
	}
}
