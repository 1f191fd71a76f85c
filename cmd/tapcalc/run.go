package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/zephyrtronium/tapcalc"
	"github.com/zephyrtronium/tapcalc/internal/logs"
)

// runner feeds lines of key text to one keypad and prints what the keypad
// shows.
type runner struct {
	kp     *tapcalc.Keypad
	out    io.Writer
	logger logs.Logger
	verb   string
	prec   uint
	alt    bool
}

// line presses every key in s. Each = prints a result or an error. A line
// without = prints the display instead, so the user can see what they typed.
func (r *runner) line(s string) {
	keys, err := tapcalc.KeysString(s)
	evals := 0
	for _, k := range keys {
		if !k.Eval {
			r.kp.Apply(k.Event)
			continue
		}
		evals++
		r.eval()
	}
	if err != nil {
		r.logger.Warn("bad key", "line", s, "error", err)
		fmt.Fprintln(r.out, err)
		return
	}
	if evals == 0 {
		fmt.Fprintln(r.out, r.kp.Display(r.alt))
	}
}

// eval evaluates the keypad's sequence and prints the result or error.
func (r *runner) eval() {
	seq := r.kp.Display(false)
	var (
		v   any
		err error
	)
	if r.prec == 0 {
		v, err = r.kp.Eval()
	} else {
		v, err = r.kp.EvalBig(r.prec)
	}
	if err != nil {
		r.logger.Warn("evaluate", "sequence", seq, "error", err)
		fmt.Fprintln(r.out, err)
		return
	}
	r.logger.Debug("evaluate", "sequence", seq, "result", v)
	fmt.Fprintf(r.out, r.verb+"\n", v)
}

// lines runs every line of in.
func (r *runner) lines(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		r.line(scanner.Text())
	}
	return scanner.Err()
}

// repl runs lines from in, printing prompt before each.
func (r *runner) repl(in io.Reader, prompt string) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, prompt)
		if !scanner.Scan() {
			break
		}
		r.line(scanner.Text())
	}
	fmt.Fprintln(r.out)
	return scanner.Err()
}
