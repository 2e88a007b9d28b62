package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Urethramancer/mos6502/cpu"
	"github.com/Urethramancer/mos6502/memory"
)

// This program provides a simple command-line interface to run 6502
// machine code and inspect the results. Without arguments it runs a few
// built-in example programs; with -image it executes a 64 KiB memory image.
func main() {
	var (
		imagePath = flag.String("image", "", "memory image file to load instead of the built-in examples")
		save      = flag.Bool("save", false, "flush RAM back to the image file on exit")
		resetVec  = flag.Uint("reset", 0, "overwrite the reset vector with this address")
		budget    = flag.Uint64("cycles", 10000, "cycle budget for image execution")
	)
	flag.Parse()

	if *imagePath == "" {
		runExamples()
		return
	}

	img, err := memory.MapImage(*imagePath, *save)
	if err != nil {
		log.Fatalf("run6502: %v", err)
	}
	defer img.Close()

	mem := img.Load()
	if *resetVec != 0 {
		(*mem)[cpu.ResetVector] = uint8(*resetVec)
		(*mem)[cpu.ResetVector+1] = uint8(*resetVec >> 8)
	}

	c := cpu.New()
	c.Reset(mem)
	fmt.Println("After reset:")
	fmt.Println(c)

	executed := c.RunFor(memory.Cycles(*budget), mem)
	fmt.Printf("\nExecuted %d cycles:\n", executed)
	fmt.Println(c)

	if *save {
		if err := img.Flush(mem); err != nil {
			log.Fatalf("run6502: %v", err)
		}
		fmt.Printf("Flushed RAM back to %s\n", *imagePath)
	}
}

// runExamples pokes three small programs into memory and single-steps
// them, printing the register file after every instruction.
func runExamples() {
	fmt.Println("--- 6502 Runner ---")
	loadStoreExample()
	arithmeticExample()
	loopExample()
}

// newMachine builds a zeroed machine with the reset vector pointing at org.
func newMachine(org uint16, code ...uint8) (*cpu.CPU, *memory.RAM) {
	mem := memory.New()
	(*mem)[cpu.ResetVector] = uint8(org)
	(*mem)[cpu.ResetVector+1] = uint8(org >> 8)
	copy((*mem)[org:], code)
	return cpu.New(), mem
}

func steps(c *cpu.CPU, mem *memory.RAM, n int) {
	for i := 0; i < n; i++ {
		used := c.Step(mem)
		fmt.Printf("%2d: %v  (+%d)\n", i+1, c, used)
	}
}

// loadStoreExample loads $42, stores it at $0200 and reads it back, then
// fills the index registers.
func loadStoreExample() {
	fmt.Println("\n--- Example 1: load and store ---")
	c, mem := newMachine(0x1000,
		cpu.OpLDAImm, 0x42,
		cpu.OpSTAAbs, 0x00, 0x02,
		cpu.OpLDAAbs, 0x00, 0x02,
		cpu.OpLDXImm, 0xff,
		cpu.OpLDYImm, 0x0e,
		cpu.OpNOP,
	)
	c.Reset(mem)
	fmt.Printf("    %v\n", c)
	steps(c, mem, 6)
	fmt.Printf("Memory at $0200: $%02X\n", mem.Peek(0x0200))
}

// arithmeticExample computes 5 + 3 with ADC.
func arithmeticExample() {
	fmt.Println("\n--- Example 2: ADC arithmetic ---")
	c, mem := newMachine(0x1000,
		cpu.OpCLC,
		cpu.OpLDAImm, 0x05,
		cpu.OpADCImm, 0x03,
		cpu.OpNOP,
	)
	c.Reset(mem)
	fmt.Printf("    %v\n", c)
	steps(c, mem, 4)
	fmt.Printf("Result: A = $%02X (should be $08)\n", c.A)
}

// loopExample counts X up to 5 with a CPX/BNE loop.
func loopExample() {
	fmt.Println("\n--- Example 3: CPX/BNE loop ---")
	c, mem := newMachine(0x1000,
		cpu.OpLDXImm, 0x00,
		cpu.OpINX,
		cpu.OpCPXImm, 0x05,
		cpu.OpBNE, 0xfb, // back to INX
		cpu.OpNOP,
	)
	c.Reset(mem)
	fmt.Printf("    %v\n", c)

	for i := 0; c.PC != 0x1007 && i < 50; i++ {
		used := c.Step(mem)
		fmt.Printf("%2d: %v  (+%d)\n", i+1, c, used)
	}
	c.Step(mem) // the final NOP

	fmt.Printf("    %v\n", c)
	fmt.Printf("Result: X = $%02X (should be $05)\n", c.X)
}
