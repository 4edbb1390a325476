package asm

import (
	"github.com/ezrec/regasm/token"
)

// Accept is a set of operand kinds acceptable at one operand position.
type Accept uint8

const (
	ACCEPT_IMM = Accept(1 << OPERAND_IMM)
	ACCEPT_REG = Accept(1 << OPERAND_REG)
	ACCEPT_MEM = Accept(1 << OPERAND_MEM)
)

// Has returns true if kind is in the set.
func (a Accept) Has(kind OperandKind) bool {
	return a&(1<<kind) != 0
}

// Contract describes the operands a mnemonic takes.
type Contract struct {
	Op     Opcode   // Opcode of the assembled instruction.
	Accept []Accept // Acceptable operand kinds, one entry per operand.
	Skip   int      // Tokens consumed without interpretation, for stubbed opcodes.
}

// Arity returns the number of tokens following the mnemonic that the
// contract consumes.
func (c Contract) Arity() int {
	if c.Skip > 0 {
		return c.Skip
	}
	return len(c.Accept)
}

// Stub returns true if the contract consumes tokens without assembling an
// instruction.
func (c Contract) Stub() bool {
	return c.Skip > 0
}

// Build constructs the instruction for a fully coerced operand list.
func (c Contract) Build(line int, operands []Operand) Instruction {
	return Instruction{Op: c.Op, Operands: operands, Line: line}
}

// Contracts maps mnemonics to their operand contracts.
var Contracts = map[string]Contract{
	"imm": {Op: OP_IMM, Accept: []Accept{ACCEPT_REG, ACCEPT_IMM}},
	"mov": {Op: OP_MOV, Accept: []Accept{ACCEPT_REG, ACCEPT_REG}},
	"add": {Op: OP_ADD, Accept: []Accept{ACCEPT_REG, ACCEPT_REG | ACCEPT_IMM, ACCEPT_REG | ACCEPT_IMM}},
	"rsh": {Op: OP_RSH, Accept: []Accept{ACCEPT_REG, ACCEPT_REG | ACCEPT_IMM}},
	"lod": {Op: OP_LOD, Accept: []Accept{ACCEPT_REG, ACCEPT_REG | ACCEPT_MEM}},
	"str": {Op: OP_STR, Accept: []Accept{ACCEPT_REG | ACCEPT_MEM, ACCEPT_REG | ACCEPT_IMM}},
	"nor": {Op: OP_NOR, Accept: []Accept{ACCEPT_REG, ACCEPT_REG | ACCEPT_IMM, ACCEPT_REG | ACCEPT_IMM}},
	// TODO: resolve branch targets once label definitions are collected.
	"bge": {Op: OP_BGE, Skip: 3},
}

// operandOf maps token kinds to the operand kind they coerce to.
var operandOf = map[token.Kind]OperandKind{
	token.KIND_INTEGER:  OPERAND_IMM,
	token.KIND_REGISTER: OPERAND_REG,
	token.KIND_MEMORY:   OPERAND_MEM,
}

// coerce converts a token to an operand, if its kind is acceptable.
func coerce(tok token.Token, accept Accept) (o Operand, ok bool) {
	kind, ok := operandOf[tok.Kind]
	if !ok || !accept.Has(kind) {
		return Operand{}, false
	}

	return Operand{Kind: kind, Value: tok.Value}, true
}
