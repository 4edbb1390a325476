// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"log"
	"strings"

	"github.com/ezrec/regasm/token"
)

// Assembler turns a token sequence into a Program.
type Assembler struct {
	Verbose   bool                // If set, verbosely logs the assembler actions.
	Reporter  Reporter            // If set, receives each diagnostic as it is found.
	Contracts map[string]Contract // Mnemonic table. Contracts is used when nil.

	cursor *Cursor
	prog   *Program
	diags  Diagnostics
}

// Parse parses a token sequence into a Program. Malformed instructions are
// left out of the Program and described by the returned Diagnostics.
func (asm *Assembler) Parse(toks []token.Token) (prog *Program, diags Diagnostics) {
	asm.cursor = NewCursor(toks)
	asm.prog = NewProgram()
	asm.diags = nil

	if asm.Contracts == nil {
		asm.Contracts = Contracts
	}

	// Every iteration ends strictly further along the sequence.
	for asm.cursor.HasMore() {
		start := asm.cursor.Pos()

		asm.step()

		if asm.cursor.Pos() <= start {
			asm.cursor.Advance()
		}
	}

	prog, diags = asm.prog, asm.diags
	asm.cursor, asm.prog, asm.diags = nil, nil, nil

	return
}

// report records a diagnostic and passes it to the Reporter.
func (asm *Assembler) report(diag Diagnostic) {
	if asm.Verbose {
		log.Printf("%v", diag)
	}

	asm.diags.Report(diag)
	if asm.Reporter != nil {
		asm.Reporter.Report(diag)
	}
}

// step handles the token at the cursor. Steps that only need to skip the
// current token leave the cursor alone.
func (asm *Assembler) step() {
	index := asm.cursor.Pos()
	tok := asm.cursor.Current()

	if asm.Verbose {
		log.Printf("%v: %v\n", index, tok)
	}

	switch tok.Kind {
	case token.KIND_IDENT:
		asm.parseInstruction(index, tok)
	case token.KIND_WHITE, token.KIND_EOF:
		// skipped
	default:
		asm.report(Diagnostic{Err: ErrUnhandledTopLevelToken, Index: index, Token: tok})
	}
}

// parseInstruction assembles the instruction whose mnemonic is at the cursor.
func (asm *Assembler) parseInstruction(index int, mnemonic token.Token) {
	name := strings.ToLower(mnemonic.Text)

	contract, ok := asm.Contracts[name]
	if !ok {
		asm.report(Diagnostic{Err: ErrUnknownMnemonic, Index: index, Token: mnemonic})
		return
	}

	if contract.Stub() {
		if asm.Verbose {
			log.Printf("%v: %v is not supported, skipping %d tokens", index, name, contract.Skip)
		}
		for range contract.Skip {
			asm.cursor.Advance()
		}
		asm.cursor.Advance()
		return
	}

	operands := make([]Operand, len(contract.Accept))
	for n, accept := range contract.Accept {
		tok := asm.cursor.Next()
		operand, ok := coerce(tok, accept)
		if !ok {
			asm.report(Diagnostic{
				Err:      ErrUnexpectedOperandKind,
				Index:    asm.cursor.Pos(),
				Token:    tok,
				Mnemonic: name,
				Position: n + 1,
			})
			// A mnemonic in operand position likely starts the next
			// instruction; anything else is consumed with the failed one.
			if tok.Kind != token.KIND_IDENT {
				asm.cursor.Advance()
			}
			return
		}
		operands[n] = operand
	}

	asm.prog.append(contract.Build(mnemonic.Line, operands))
	asm.cursor.Advance()
}
