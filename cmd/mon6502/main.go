package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Urethramancer/mos6502/cpu"
	"github.com/Urethramancer/mos6502/memory"
	"github.com/pkg/term"
)

// An interactive single-step monitor. The terminal is switched to cbreak
// mode so single keys drive the machine:
//
//	s — step one instruction
//	r — run for a cycle budget
//	z — dump the page the program counter is on
//	q — quit
func main() {
	var (
		imagePath = flag.String("image", "", "memory image file to execute")
		resetVec  = flag.Uint("reset", 0, "overwrite the reset vector with this address")
		budget    = flag.Uint64("cycles", 1000, "cycle budget for the run command")
	)
	flag.Parse()

	if *imagePath == "" {
		log.Fatal("mon6502: an -image file is required")
	}

	img, err := memory.MapImage(*imagePath, false)
	if err != nil {
		log.Fatalf("mon6502: %v", err)
	}
	defer img.Close()

	mem := img.Load()
	if *resetVec != 0 {
		(*mem)[cpu.ResetVector] = uint8(*resetVec)
		(*mem)[cpu.ResetVector+1] = uint8(*resetVec >> 8)
	}

	c := cpu.New()
	c.Reset(mem)

	t, err := term.Open("/dev/tty")
	if err != nil {
		log.Fatalf("mon6502: %v", err)
	}
	defer t.Restore()

	if err := term.CBreakMode(t); err != nil {
		log.Fatalf("mon6502: %v", err)
	}

	fmt.Println("mon6502 — s:step r:run z:page q:quit")
	status(c, mem)

	key := make([]byte, 1)
	for {
		n, err := t.Read(key)
		if err != nil || n == 0 {
			return
		}

		switch key[0] {
		case 's':
			used := c.Step(mem)
			fmt.Printf("+%d ", used)
			status(c, mem)
		case 'r':
			executed := c.RunFor(memory.Cycles(*budget), mem)
			fmt.Printf("ran %d cycles\n", executed)
			status(c, mem)
		case 'z':
			dumpPage(mem, c.PC&0xff00)
		case 'q':
			return
		}
	}
}

// status prints the register line and the mnemonic of the next opcode.
func status(c *cpu.CPU, mem *memory.RAM) {
	fmt.Printf("%v  next:%s\n", c, cpu.Mnemonic(mem.Peek(c.PC)))
}

// dumpPage hexdumps one 256-byte page without charging cycles.
func dumpPage(mem *memory.RAM, base uint16) {
	for row := uint16(0); row < 0x100; row += 16 {
		fmt.Printf("%04X:", base+row)
		for i := uint16(0); i < 16; i++ {
			fmt.Printf(" %02X", mem.Peek(base+row+i))
		}
		fmt.Println()
	}
}
