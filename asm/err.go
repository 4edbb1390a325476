package asm

import (
	"errors"

	"github.com/ezrec/regasm/token"
	"github.com/ezrec/regasm/translate"
)

var f = translate.From

var (
	ErrUnknownMnemonic        = errors.New(f("unknown mnemonic"))
	ErrUnexpectedOperandKind  = errors.New(f("unexpected operand kind"))
	ErrUnhandledTopLevelToken = errors.New(f("unhandled top level token"))
)

// Diagnostic is a recoverable problem found while parsing.
type Diagnostic struct {
	Err      error       // ErrUnknownMnemonic, ErrUnexpectedOperandKind or ErrUnhandledTopLevelToken.
	Index    int         // Index of Token in the input sequence.
	Token    token.Token // Offending token.
	Mnemonic string      // Mnemonic being assembled, for operand errors.
	Position int         // Operand position, 1 based, for operand errors.
}

func (diag Diagnostic) Error() string {
	where := f("token %d", diag.Index)
	if diag.Token.Line > 0 {
		where = f("line %d token %d", diag.Token.Line, diag.Index)
	}

	if diag.Position > 0 {
		return f("%v %v %v: %v operand %d", where, diag.Token, diag.Err, diag.Mnemonic, diag.Position)
	}

	return f("%v %v %v", where, diag.Token, diag.Err)
}

func (diag Diagnostic) Unwrap() error {
	return diag.Err
}

// Reporter receives diagnostics as they are found.
type Reporter interface {
	Report(diag Diagnostic)
}

// Diagnostics collects the diagnostics of a parse, in order.
type Diagnostics []Diagnostic

// Report appends a diagnostic.
func (diags *Diagnostics) Report(diag Diagnostic) {
	*diags = append(*diags, diag)
}

// Count returns the number of diagnostics matching err.
func (diags Diagnostics) Count(err error) (count int) {
	for _, diag := range diags {
		if errors.Is(diag, err) {
			count++
		}
	}
	return
}

// Err returns nil if there are no diagnostics, otherwise all of them joined.
func (diags Diagnostics) Err() error {
	if len(diags) == 0 {
		return nil
	}

	errs := make([]error, len(diags))
	for n, diag := range diags {
		errs[n] = diag
	}
	return errors.Join(errs...)
}
