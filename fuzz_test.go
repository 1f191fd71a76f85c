package tapcalc_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/tapcalc"
)

func FuzzApply(f *testing.F) {
	f.Add([]byte{1, 10, 11, 2})
	f.Add([]byte{11, 12, 13, 14, 15})
	f.Add([]byte{17, 0, 10, 10, 14, 0})
	f.Fuzz(func(t *testing.T, b []byte) {
		var s tapcalc.Sequence
		for _, c := range b {
			s = tapcalc.Apply(s, allEvents[int(c)%len(allEvents)])
		}
		if err := s.Valid(); err != nil {
			t.Fatalf("%q is invalid: %v", s, err)
		}
		_, err := tapcalc.Evaluate(s, tapcalc.Strict())
		if err != nil && !errors.As(err, new(*tapcalc.DivisionByZeroError)) && !errors.As(err, new(*tapcalc.RangeError)) {
			t.Fatalf("evaluating %q: %v", s, err)
		}
	})
}

func FuzzEvaluate(f *testing.F) {
	f.Add("1+2*3")
	f.Add("4/0")
	f.Add("..+--9")
	f.Add("9999999999*9999999999")
	f.Fuzz(func(t *testing.T, src string) {
		// Build sequences Apply may never produce; evaluation must not panic.
		var s tapcalc.Sequence
		for _, r := range src {
			if '0' <= r && r <= '9' || r == '.' {
				s = append(s, tapcalc.Num(string(r)))
			} else {
				s = append(s, tapcalc.Op(r))
			}
		}
		r, err := tapcalc.Evaluate(s)
		if err == nil && (math.IsInf(r, 0) || math.IsNaN(r)) {
			t.Fatalf("evaluating %q gave %g without an error", s, r)
		}
		tapcalc.EvaluateBig(s, 64)
	})
}

func FuzzKeys(f *testing.F) {
	f.Add("1+2=")
	f.Add("pi×e DEL AC")
	f.Add("1$")
	f.Fuzz(func(t *testing.T, src string) {
		kp := tapcalc.NewKeypad()
		keys, _ := tapcalc.KeysString(src)
		for _, k := range keys {
			kp.Press(k)
		}
		if err := kp.Sequence().Valid(); err != nil {
			t.Fatalf("keys %q gave invalid sequence: %v", src, err)
		}
	})
}
