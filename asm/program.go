package asm

import (
	"fmt"
	"io"
	"iter"
)

// Headers is the machine configuration a program requires.
type Headers struct {
	Bits     uint64 `yaml:"bits"`     // Word width in bits.
	MinHeap  uint64 `yaml:"minheap"`  // Minimum heap size, in words.
	MinStack uint64 `yaml:"minstack"` // Minimum stack size, in words.
	MinRam   uint64 `yaml:"minram"`   // Minimum RAM size, in words.
	MinReg   uint64 `yaml:"minreg"`   // Minimum general-purpose register count.
}

// DefaultHeaders returns the machine configuration used when the source
// does not specify one.
func DefaultHeaders() Headers {
	return Headers{
		Bits:     8,
		MinHeap:  16,
		MinStack: 16,
		MinRam:   16,
		MinReg:   8,
	}
}

// Program is the result of parsing: machine configuration, instructions in
// execution order, and the label table.
type Program struct {
	Headers      Headers           `yaml:"headers"`
	Instructions []Instruction     `yaml:"instructions"`
	Labels       map[string]uint64 `yaml:"labels"` // Label name to instruction index. Always empty.
}

// NewProgram creates an empty program with default headers.
func NewProgram() *Program {
	return &Program{
		Headers: DefaultHeaders(),
		Labels:  map[string]uint64{},
	}
}

func (prog *Program) append(inst Instruction) {
	prog.Instructions = append(prog.Instructions, inst)
}

// All iterates over the instructions and their indexes.
func (prog *Program) All() iter.Seq2[int, Instruction] {
	return func(yield func(index int, inst Instruction) bool) {
		for n, inst := range prog.Instructions {
			if !yield(n, inst) {
				return
			}
		}
	}
}

// Listing writes the program as assembly text, one instruction per line.
func (prog *Program) Listing(w io.Writer) (err error) {
	for _, inst := range prog.All() {
		_, err = fmt.Fprintln(w, inst.String())
		if err != nil {
			return
		}
	}

	return
}
