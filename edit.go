package tapcalc

import "strings"

// Apply returns the sequence that results from applying ev to seq. It never
// modifies seq. Every event is valid in every state; an event that cannot
// change seq, such as a second decimal point in one number, returns seq
// unchanged.
func Apply(seq Sequence, ev Event) Sequence {
	last, ok := seq.last()
	switch ev.Kind {
	case EventOp:
		if !strings.ContainsRune(Operators, ev.Sym) {
			return seq
		}
		op := Op(ev.Sym)
		switch {
		case ok && last.isOp():
			// The last operator pressed wins.
			return seq.splice(len(seq)-1, op)
		case ok && last.isNum() && strings.HasSuffix(last.Text, "."):
			return seq.splice(len(seq)-1, Num(last.Text+"0"), op)
		default:
			// This includes an operator on an empty sequence.
			return seq.splice(len(seq), op)
		}
	case EventDecimal:
		switch {
		case !ok, last.isOp():
			return seq.splice(len(seq), Num("0."))
		case strings.Contains(last.Text, "."):
			return seq
		default:
			return seq.splice(len(seq)-1, Num(last.Text+"."))
		}
	case EventDigit:
		if ev.Sym < '0' || ev.Sym > '9' {
			return seq
		}
		if ok && last.isNum() {
			return seq.splice(len(seq)-1, Num(last.Text+string(ev.Sym)))
		}
		return seq.splice(len(seq), Num(string(ev.Sym)))
	case EventDelete:
		if !ok {
			return seq
		}
		return seq.splice(len(seq) - 1)
	case EventClear:
		return Sequence{}
	case EventConst:
		text := ConstText(ev.Const)
		if text == "" {
			return seq
		}
		// A constant replaces a number being typed rather than joining it.
		if ok && last.isNum() {
			return seq.splice(len(seq)-1, Num(text))
		}
		return seq.splice(len(seq), Num(text))
	default:
		return seq
	}
}
