package asm

import (
	"fmt"
	"strings"
)

// Opcode is the semantic operation of an instruction.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode,OperandKind
const (
	OP_IMM = Opcode(0) // imm
	OP_MOV = Opcode(1) // mov
	OP_ADD = Opcode(2) // add
	OP_RSH = Opcode(3) // rsh
	OP_LOD = Opcode(4) // lod
	OP_STR = Opcode(5) // str
	OP_NOR = Opcode(6) // nor
	OP_BGE = Opcode(7) // bge
)

// MarshalYAML encodes the opcode as its mnemonic.
func (op Opcode) MarshalYAML() (any, error) {
	return op.String(), nil
}

// OperandKind is the shape of an operand.
type OperandKind int

const (
	OPERAND_IMM = OperandKind(0) // imm
	OPERAND_REG = OperandKind(1) // reg
	OPERAND_MEM = OperandKind(2) // mem
)

// MarshalYAML encodes the operand kind by name.
func (kind OperandKind) MarshalYAML() (any, error) {
	return kind.String(), nil
}

// Operand is a typed instruction argument. Literal payloads are always held
// as 64-bit unsigned values; signed literals keep their bit pattern.
type Operand struct {
	Kind  OperandKind `yaml:"kind"`
	Value uint64      `yaml:"value"`
}

// Imm creates an immediate operand.
func Imm(value uint64) Operand {
	return Operand{Kind: OPERAND_IMM, Value: value}
}

// Reg creates a register operand.
func Reg(index uint64) Operand {
	return Operand{Kind: OPERAND_REG, Value: index}
}

// Mem creates a memory address operand.
func Mem(addr uint64) Operand {
	return Operand{Kind: OPERAND_MEM, Value: addr}
}

// String returns the assembly language form of the operand.
func (o Operand) String() string {
	switch o.Kind {
	case OPERAND_REG:
		return fmt.Sprintf("r%d", o.Value)
	case OPERAND_MEM:
		return fmt.Sprintf("#%d", o.Value)
	default:
		return fmt.Sprintf("%d", o.Value)
	}
}

// Instruction is a single assembled instruction.
type Instruction struct {
	Op       Opcode    `yaml:"op"`
	Operands []Operand `yaml:"operands"`
	Line     int       `yaml:"line,omitempty"` // Source line of the mnemonic, if known.
}

// NewInstruction creates an instruction from an opcode and its operands.
func NewInstruction(op Opcode, operands ...Operand) Instruction {
	return Instruction{Op: op, Operands: operands}
}

// String returns the assembly language form of the instruction.
func (inst Instruction) String() string {
	words := make([]string, 0, 1+len(inst.Operands))
	words = append(words, inst.Op.String())
	for _, o := range inst.Operands {
		words = append(words, o.String())
	}
	return strings.Join(words, " ")
}
