package tapcalc

import (
	"math/big"
	"slices"
)

// Keypad holds the state of a calculator between key presses: the sequence
// being typed and the last result. It is not safe to use a Keypad
// concurrently.
type Keypad struct {
	seq    Sequence
	result float64
	err    error
	opts   []EvalOption
}

// NewKeypad creates a keypad with an empty sequence and a zero result. The
// options apply to every evaluation.
func NewKeypad(opts ...EvalOption) *Keypad {
	return &Keypad{opts: opts}
}

// Apply applies an event to the keypad's sequence. Clear also resets the
// result and error.
func (k *Keypad) Apply(ev Event) {
	k.seq = Apply(k.seq, ev)
	if ev.Kind == EventClear {
		k.result = 0
		k.err = nil
	}
}

// Press applies a key: Eval keys evaluate, and others are applied.
func (k *Keypad) Press(key Key) {
	if key.Eval {
		k.Eval()
		return
	}
	k.Apply(key.Event)
}

// Eval evaluates the current sequence without changing it. On success, the
// value becomes the keypad's result. On failure, the previous result is kept
// and Err returns the error until the next successful evaluation or Clear.
func (k *Keypad) Eval() (float64, error) {
	r, err := Evaluate(k.seq, k.opts...)
	k.err = err
	if err != nil {
		return 0, err
	}
	k.result = r
	return r, nil
}

// EvalBig is like Eval, but it evaluates with prec bits of precision. The
// keypad's result is the value rounded to float64.
func (k *Keypad) EvalBig(prec uint) (*big.Float, error) {
	r, err := EvaluateBig(k.seq, prec, k.opts...)
	k.err = err
	if err != nil {
		return nil, err
	}
	k.result, _ = r.Float64()
	return r, nil
}

// Sequence returns a copy of the current sequence.
func (k *Keypad) Sequence() Sequence {
	return slices.Clone(k.seq)
}

// Display returns the display text of the current sequence.
func (k *Keypad) Display(alt bool) string {
	return k.seq.Format(alt)
}

// Result returns the result of the last successful evaluation since the last
// Clear, or 0 if there is none.
func (k *Keypad) Result() float64 {
	return k.result
}

// Err returns the error from the last evaluation, if it failed.
func (k *Keypad) Err() error {
	return k.err
}
