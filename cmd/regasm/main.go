// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"iter"
	"log"
	"os"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tebeka/atexit"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/regasm/asm"
	"github.com/ezrec/regasm/internal"
	"github.com/ezrec/regasm/lexer"
	"github.com/ezrec/regasm/token"
	"github.com/ezrec/regasm/translate"
)

var f = translate.From

// readSources lexes each named file, in order. "-" is standard input.
func readSources(names []string) (seqs []iter.Seq[token.Token], err error) {
	for _, name := range names {
		var data []byte
		if name == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return
		}
		seqs = append(seqs, lexer.Tokens(data))
	}

	return
}

// writeListing renders the program as a table.
func writeListing(w io.Writer, prog *asm.Program, styled bool) {
	hdr := prog.Headers

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(f("bits %d, heap %d, stack %d, ram %d, registers %d",
		hdr.Bits, hdr.MinHeap, hdr.MinStack, hdr.MinRam, hdr.MinReg))
	t.AppendHeader(table.Row{"#", f("Line"), f("Instruction")})
	for n, inst := range prog.All() {
		t.AppendRow(table.Row{n, inst.Line, inst.String()})
	}
	t.AppendFooter(table.Row{"", f("Total"), len(prog.Instructions)})

	if styled {
		t.SetStyle(table.StyleColoredDark)
	} else {
		t.SetStyle(table.StyleLight)
	}

	t.Render()
}

func main() {
	var verbose bool
	var dump bool
	var strict bool
	var lang string

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&dump, "yaml", false, "Write the program as YAML instead of a listing")
	flag.BoolVar(&strict, "strict", false, "Exit with failure if any diagnostic was reported")
	flag.StringVar(&lang, "lang", "", "Message language, overriding the system locale")

	flag.Parse()

	if len(lang) != 0 {
		translate.Use(lang)
	}

	names := flag.Args()
	if len(names) == 0 {
		names = []string{"-"}
	}

	seqs, err := readSources(names)
	if err != nil {
		atexit.Fatalf("%v: %v", os.Args[0], err)
	}

	ouf := bufio.NewWriter(os.Stdout)
	atexit.Register(func() {
		ouf.Flush()
	})

	assembler := &asm.Assembler{Verbose: verbose}
	prog, diags := assembler.Parse(slices.Collect(internal.Concat(seqs...)))

	for _, diag := range diags {
		log.Printf("%v", diag)
	}

	if dump {
		enc := yaml.NewEncoder(ouf)
		err = enc.Encode(prog)
		if err == nil {
			err = enc.Close()
		}
		if err != nil {
			atexit.Fatalf("%v: %v", os.Args[0], err)
		}
	} else {
		writeListing(ouf, prog, term.IsTerminal(int(os.Stdout.Fd())))
	}

	if strict && len(diags) != 0 {
		fmt.Fprintln(os.Stderr, f("%v: %d diagnostics", os.Args[0], len(diags)))
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
