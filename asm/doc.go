// Package asm implements the instruction-stream parser for a minimalist
// register-machine assembly dialect.
//
// The parser reads an already lexed token sequence through a Cursor, which
// hides whitespace, and dispatches each mnemonic through a table of operand
// Contracts. Well formed instructions are appended to a Program; malformed
// ones are dropped and reported as Diagnostics. Parsing never stops before the
// token sequence is exhausted.
//
// Branches (bge) and labels are not supported yet: bge consumes its operand
// tokens without producing an instruction, and Program.Labels stays empty.
package asm
