package tapcalc

import (
	"strings"
)

// Token is one element of an expression under construction: a number that is
// being typed or a single operator.
type Token struct {
	Kind TokenKind
	// Text is the token's text. For numbers it is a decimal literal which may
	// end in a point, e.g. "3.". For operators it is one of Operators.
	Text string
}

// TokenKind distinguishes the variants of Token.
type TokenKind int8

const (
	TokenNone TokenKind = iota

	TokenNum // Text is an unsigned decimal literal
	TokenOp  // Text is one of Operators
)

//go:generate stringer -type=TokenKind -trimprefix=Token

// Operators contains the operator runes that may appear in a sequence.
const Operators = "+-*/"

// Num returns a number token.
func Num(text string) Token {
	return Token{Kind: TokenNum, Text: text}
}

// Op returns an operator token.
func Op(op rune) Token {
	return Token{Kind: TokenOp, Text: string(op)}
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text
}

// isNum reports whether t is a number token.
func (t Token) isNum() bool {
	return t.Kind == TokenNum
}

// isOp reports whether t is an operator token.
func (t Token) isOp() bool {
	return t.Kind == TokenOp
}

// Sequence is an expression as typed, left to right. Sequences returned by
// Apply never hold two adjacent operators or a number with two points.
type Sequence []Token

// last returns the final token of s. ok is false if s is empty.
func (s Sequence) last() (t Token, ok bool) {
	if len(s) == 0 {
		return Token{}, false
	}
	return s[len(s)-1], true
}

// splice returns a new sequence holding the first n tokens of s followed by
// toks. s itself is never modified.
func (s Sequence) splice(n int, toks ...Token) Sequence {
	r := make(Sequence, n, n+len(toks))
	copy(r, s[:n])
	return append(r, toks...)
}

// String returns the display text of s, the concatenation of its tokens.
func (s Sequence) String() string {
	return s.Format(false)
}

// Format returns the display text of s. If alt is true, multiplication and
// division are written as × and ÷.
func (s Sequence) Format(alt bool) string {
	var b strings.Builder
	for _, t := range s {
		if !alt || !t.isOp() {
			b.WriteString(t.Text)
			continue
		}
		switch t.Text {
		case "*":
			b.WriteString("×")
		case "/":
			b.WriteString("÷")
		default:
			b.WriteString(t.Text)
		}
	}
	return b.String()
}

// Valid checks the invariants that Apply maintains. It returns the first
// violation found, or nil if s could have been built by Apply.
func (s Sequence) Valid() error {
	for i, t := range s {
		switch t.Kind {
		case TokenNum:
			if !isNumText(t.Text) {
				return &NumberError{Col: i + 1, Text: t.Text}
			}
		case TokenOp:
			if !isOpText(t.Text) {
				return &OperatorError{Col: i + 1, Operator: t.Text}
			}
			if i > 0 && s[i-1].isOp() {
				return &AdjacentOperatorError{Col: i + 1, Left: s[i-1].Text, Right: t.Text}
			}
		default:
			return &OperatorError{Col: i + 1, Operator: t.Text}
		}
	}
	return nil
}

// isNumText reports whether s is a number as Apply builds them: at least one
// digit and at most one point.
func isNumText(s string) bool {
	var dig, dot bool
	for _, r := range s {
		switch {
		case '0' <= r && r <= '9':
			dig = true
		case r == '.':
			if dot {
				return false
			}
			dot = true
		default:
			return false
		}
	}
	return dig
}

// isOpText reports whether s is exactly one operator.
func isOpText(s string) bool {
	return len(s) == 1 && strings.Contains(Operators, s)
}
