package tapcalc

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Const names a constant key.
type Const string

const (
	Pi Const = "pi"
	E  Const = "e"
)

const (
	// ConstPrec is the precision in bits to which constants are computed.
	ConstPrec = 128
	// ConstDigits is the number of digits after the point in the text of a
	// constant. It is enough to round-trip a float64.
	ConstDigits = 15
)

var globalconsts = map[Const]func(out *big.Float) *big.Float{
	Pi: bigfloat.Pi,
	E: func(out *big.Float) *big.Float {
		var one big.Float
		one.SetFloat64(1)
		return bigfloat.Exp(out, &one)
	},
}

// ConstText returns the text of the number token that a constant key enters,
// or the empty string if c is not a known constant.
func ConstText(c Const) string {
	f := globalconsts[c]
	if f == nil {
		return ""
	}
	r := new(big.Float).SetPrec(ConstPrec)
	f(r)
	return r.Text('f', ConstDigits)
}
