package tapcalc

// EvalOption is an option for Evaluate and EvaluateBig.
type EvalOption interface {
	evalOption(evalctx) evalctx
}

type strictopt struct{}

// evalctx holds the settings for one evaluation.
type evalctx struct {
	// strict makes malformed tokens an error rather than zero.
	strict bool
}

// Strict makes evaluation fail on sequences that Apply never produces, such
// as one with a number with two points or two operators in a row. The error
// is the one Sequence.Valid returns. Without Strict, a malformed number counts
// as zero and an unknown operator drops the term that follows it.
func Strict() EvalOption {
	return strictopt{}
}

func (strictopt) evalOption(e evalctx) evalctx {
	e.strict = true
	return e
}

func newEvalctx(opts []EvalOption) evalctx {
	var e evalctx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		e = opt.evalOption(e)
	}
	return e
}
