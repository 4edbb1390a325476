package lexer_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/regasm/lexer"
	"github.com/ezrec/regasm/token"
)

func kinds(toks []token.Token) (out []token.Kind) {
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return
}

var _ = Describe("Lex", func() {
	It("should end an empty source with EOF", func() {
		toks := lexer.Lex(nil)

		Expect(toks).To(HaveLen(1))
		Expect(toks[0].Kind).To(Equal(token.KIND_EOF))
		Expect(toks[0].Line).To(Equal(1))
	})

	It("should classify an instruction line", func() {
		toks := lexer.Lex([]byte("imm r2 5"))

		Expect(kinds(toks)).To(Equal([]token.Kind{
			token.KIND_IDENT,
			token.KIND_WHITE,
			token.KIND_REGISTER,
			token.KIND_WHITE,
			token.KIND_INTEGER,
			token.KIND_EOF,
		}))
		Expect(toks[0].Text).To(Equal("imm"))
		Expect(toks[2].Value).To(Equal(uint64(2)))
		Expect(toks[4].Value).To(Equal(uint64(5)))
		Expect(toks[4].Offset).To(Equal(7))
	})

	DescribeTable("register spellings",
		func(src string, index uint64) {
			toks := lexer.Lex([]byte(src))
			Expect(toks[0].Kind).To(Equal(token.KIND_REGISTER))
			Expect(toks[0].Value).To(Equal(index))
			Expect(toks[0].Text).To(Equal(src))
		},
		Entry("lower case", "r3", uint64(3)),
		Entry("upper case", "R12", uint64(12)),
		Entry("dollar", "$7", uint64(7)),
	)

	DescribeTable("memory spellings",
		func(src string, addr uint64) {
			toks := lexer.Lex([]byte(src))
			Expect(toks[0].Kind).To(Equal(token.KIND_MEMORY))
			Expect(toks[0].Value).To(Equal(addr))
		},
		Entry("lower case", "m0", uint64(0)),
		Entry("upper case", "M15", uint64(15)),
		Entry("hash", "#255", uint64(255)),
	)

	DescribeTable("integer literals",
		func(src string, value uint64) {
			toks := lexer.Lex([]byte(src))
			Expect(toks[0].Kind).To(Equal(token.KIND_INTEGER))
			Expect(toks[0].Value).To(Equal(value))
		},
		Entry("decimal", "42", uint64(42)),
		Entry("hexadecimal", "0x1f", uint64(0x1f)),
		Entry("binary", "0b101", uint64(5)),
		Entry("negative", "-1", uint64(0xffffffffffffffff)),
		Entry("negative hex", "-0x10", uint64(0xfffffffffffffff0)),
	)

	DescribeTable("unclassifiable text",
		func(src string) {
			toks := lexer.Lex([]byte(src))
			Expect(toks[0].Kind).To(Equal(token.KIND_OTHER))
			Expect(toks[0].Text).To(Equal(src))
		},
		Entry("bare dollar", "$"),
		Entry("bare hash", "#"),
		Entry("overflowing integer", "99999999999999999999"),
		Entry("malformed integer", "12ab"),
		Entry("punctuation", ","),
		Entry("bare dot", "."),
		Entry("label", ".loop_2"),
		Entry("multibyte rune", "µ"),
	)

	It("should keep mnemonic-like words as identifiers", func() {
		toks := lexer.Lex([]byte("rsh mov m r3x"))

		Expect(toks[0].Kind).To(Equal(token.KIND_IDENT))
		Expect(toks[2].Kind).To(Equal(token.KIND_IDENT))
		Expect(toks[4].Kind).To(Equal(token.KIND_IDENT))
		Expect(toks[6].Kind).To(Equal(token.KIND_IDENT))
	})

	It("should fold comments into whitespace and count lines", func() {
		src := "imm r1 1 ; load one\n// whole line\nmov r2 r1"
		toks := lexer.Lex([]byte(src))

		Expect(kinds(toks)).To(Equal([]token.Kind{
			token.KIND_IDENT, token.KIND_WHITE, token.KIND_REGISTER,
			token.KIND_WHITE, token.KIND_INTEGER,
			token.KIND_WHITE,
			token.KIND_IDENT, token.KIND_WHITE, token.KIND_REGISTER,
			token.KIND_WHITE, token.KIND_REGISTER,
			token.KIND_EOF,
		}))
		Expect(toks[5].Text).To(Equal(" ; load one\n// whole line\n"))
		Expect(toks[5].Line).To(Equal(1))
		Expect(toks[6].Line).To(Equal(3))
		Expect(toks[11].Line).To(Equal(3))
	})
})

var _ = Describe("Scanner", func() {
	It("should keep returning EOF once exhausted", func() {
		s := lexer.NewScanner([]byte("x"))

		Expect(s.Next().Kind).To(Equal(token.KIND_IDENT))
		Expect(s.Next().Kind).To(Equal(token.KIND_EOF))
		Expect(s.Next().Kind).To(Equal(token.KIND_EOF))
	})
})

var _ = Describe("Tokens", func() {
	It("should stop when the consumer stops", func() {
		var seen []token.Kind
		for tok := range lexer.Tokens([]byte("imm r1 2")) {
			seen = append(seen, tok.Kind)
			if tok.Kind == token.KIND_REGISTER {
				break
			}
		}

		Expect(seen).To(Equal([]token.Kind{token.KIND_IDENT, token.KIND_WHITE, token.KIND_REGISTER}))
	})
})
