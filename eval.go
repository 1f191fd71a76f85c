package tapcalc

import (
	"math"
	"math/big"
	"strconv"
)

// Evaluate reduces seq to a single value. It walks seq once from left to
// right, keeping a stack of terms. A number following + or - pushes a new
// term; a number following * or / replaces the most recent term with its
// product or quotient, so that "2+3*4" is 14 and "2+3*4/2" is 8. The result is
// the sum of the terms, and an empty sequence is 0.
//
// A trailing operator is not dropped. It resolves against zero like any other
// operator with no number after it, so "4+" is 4, "4*" is 0, and "4/" is a
// division by zero. Dividing by zero returns a *DivisionByZeroError.
//
// Evaluate never returns an infinity or NaN. A number too large for a float64,
// or a term or sum that overflows, returns a *RangeError; EvaluateBig has no
// such limit. Evaluate never modifies seq.
func Evaluate(seq Sequence, opts ...EvalOption) (float64, error) {
	e := newEvalctx(opts)
	if e.strict {
		if err := seq.Valid(); err != nil {
			return 0, err
		}
	}
	var s floatStack
	err := walk(seq, func(t term) error {
		n, err := t.float()
		if err != nil {
			return err
		}
		var r float64
		switch t.op {
		case "+":
			r = n
		case "-":
			r = -n
		case "*":
			r = s.pop() * n
		case "/":
			l := s.pop()
			// Check explicitly; the division itself would give an infinity.
			if n == 0 {
				return &DivisionByZeroError{Col: t.col, Dividend: l}
			}
			r = l / n
		default:
			return nil
		}
		if math.IsInf(r, 0) {
			return &RangeError{Col: t.col}
		}
		s.push(r)
		return nil
	})
	if err != nil {
		return 0, err
	}
	var r float64
	for _, v := range s {
		r += v
	}
	if math.IsInf(r, 0) {
		return 0, &RangeError{}
	}
	return r, nil
}

// EvaluateBig is like Evaluate, but it computes with prec bits of precision.
// If prec is 0, it is 64.
func EvaluateBig(seq Sequence, prec uint, opts ...EvalOption) (*big.Float, error) {
	if prec == 0 {
		prec = 64
	}
	e := newEvalctx(opts)
	if e.strict {
		if err := seq.Valid(); err != nil {
			return nil, err
		}
	}
	s := bigStack{prec: prec}
	err := walk(seq, func(t term) error {
		n := t.bigFloat(prec)
		switch t.op {
		case "+":
			s.push().Set(n)
		case "-":
			s.push().Neg(n)
		case "*":
			l := s.pop()
			s.push().Mul(l, n)
		case "/":
			l := s.pop()
			if n.Sign() == 0 {
				f, _ := l.Float64()
				return &DivisionByZeroError{Col: t.col, Dividend: f}
			}
			s.push().Quo(l, n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	r := new(big.Float).SetPrec(prec)
	for _, v := range s.v {
		r.Add(r, v)
	}
	return r, nil
}

// term is one step of evaluation: the pending operator and the number that
// followed it.
type term struct {
	// op is the pending operator. It is "+" for the first term.
	op string
	// col is the 1-based position of op, or 0 for the first term.
	col int
	// num is the text of the number following op, or "" if there was none.
	num string
	// numCol is the 1-based position of num, or 0 if there was none.
	numCol int
}

// walk splits seq into terms and calls resolve on each in order, including a
// final term for the operator at the end of seq, if any. It stops at the
// first error from resolve.
func walk(seq Sequence, resolve func(term) error) error {
	t := term{op: "+"}
	for i := 0; i <= len(seq); i++ {
		if i < len(seq) && seq[i].isNum() {
			// Of two numbers in a row, only the later one counts.
			t.num, t.numCol = seq[i].Text, i+1
			continue
		}
		if err := resolve(t); err != nil {
			return err
		}
		if i < len(seq) {
			t = term{op: seq[i].Text, col: i + 1}
		}
	}
	return nil
}

// float parses the term's number. A missing or malformed number is zero. A
// number too large for a float64 is a *RangeError.
func (t term) float() (float64, error) {
	if !isNumText(t.num) {
		return 0, nil
	}
	// Digits with at most one point always parse, so the only error is ErrRange.
	v, err := strconv.ParseFloat(t.num, 64)
	if err != nil {
		return 0, &RangeError{Col: t.numCol, Text: t.num}
	}
	return v, nil
}

// bigFloat parses the term's number to the given precision. A missing or
// malformed number is zero.
func (t term) bigFloat(prec uint) *big.Float {
	r := new(big.Float).SetPrec(prec)
	if !isNumText(t.num) {
		return r
	}
	if _, _, err := r.Parse(t.num, 10); err != nil {
		panic("tapcalc: invalid number: " + t.num + " (" + err.Error() + ")")
	}
	return r
}

// floatStack is the term stack for Evaluate.
type floatStack []float64

func (s *floatStack) push(v float64) {
	*s = append(*s, v)
}

// pop removes the top term and returns it. An empty stack pops 1.
func (s *floatStack) pop() float64 {
	if len(*s) == 0 {
		return 1
	}
	r := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return r
}

// bigStack is the term stack for EvaluateBig.
type bigStack struct {
	prec uint
	v    []*big.Float
}

// push adds a zero term to the stack and returns it for setting.
func (s *bigStack) push() *big.Float {
	r := new(big.Float).SetPrec(s.prec)
	s.v = append(s.v, r)
	return r
}

// pop removes the top term and returns it. An empty stack pops 1.
func (s *bigStack) pop() *big.Float {
	if len(s.v) == 0 {
		return new(big.Float).SetPrec(s.prec).SetInt64(1)
	}
	r := s.v[len(s.v)-1]
	s.v = s.v[:len(s.v)-1]
	return r
}
