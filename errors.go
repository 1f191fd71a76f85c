package tapcalc

import "strconv"

// DivisionByZeroError is the result of evaluating a division whose divisor is
// exactly zero. It implements InputError.
type DivisionByZeroError struct {
	// Col is the 1-based position of the division operator in the sequence.
	Col int
	// Dividend is the term that was to be divided.
	Dividend float64
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero: "+strconv.FormatFloat(err.Dividend, 'g', -1, 64)+" / 0")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// RangeError is an error from Evaluate indicating a number or result too large
// for a float64. It implements InputError.
type RangeError struct {
	// Col is the 1-based position of the number when Text is set, or of the
	// operator whose result overflowed otherwise. It is 0 when the final sum
	// overflows.
	Col int
	// Text is the text of the number that is out of range, if any.
	Text string
}

func (err *RangeError) Error() string {
	if err.Text != "" {
		return errpos(err.Col, "number out of range ("+strconv.Itoa(len(err.Text))+" characters)")
	}
	return errpos(err.Col, "result out of range")
}

func (err *RangeError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a number token that is not a decimal
// literal. Apply never produces such a token. It implements InputError.
type NumberError struct {
	// Col is the 1-based position of the token in the sequence.
	Col int
	// Text is the text of the token.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "malformed number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator token that is not one of
// Operators, or a token of no known kind. It implements InputError.
type OperatorError struct {
	// Col is the 1-based position of the token in the sequence.
	Col int
	// Operator is the text of the token.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// AdjacentOperatorError is an error from Sequence.Valid indicating two
// operators in a row. It implements InputError.
type AdjacentOperatorError struct {
	// Col is the 1-based position of the second operator.
	Col int
	// Left and Right are the two operators.
	Left, Right string
}

func (err *AdjacentOperatorError) Error() string {
	return errpos(err.Col, "adjacent operators "+strconv.Quote(err.Left+err.Right))
}

func (err *AdjacentOperatorError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error that
// Evaluate, Sequence.Valid, or Keys returns implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based position of the token or key that caused the
	// error.
	Pos() int
}

var (
	_ InputError = (*DivisionByZeroError)(nil)
	_ InputError = (*RangeError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*AdjacentOperatorError)(nil)
	_ InputError = (*KeyError)(nil)
)
