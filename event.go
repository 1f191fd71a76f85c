package tapcalc

import "strconv"

// Event is a discrete input to the editor, usually one key press.
type Event struct {
	Kind EventKind
	// Sym is the digit for EventDigit and the operator for EventOp.
	Sym rune
	// Const is the constant for EventConst.
	Const Const
}

// EventKind distinguishes the variants of Event.
type EventKind int8

const (
	EventNone EventKind = iota

	EventDigit   // append Sym to the number being typed
	EventDecimal // add a decimal point to the number being typed
	EventOp      // append or replace an operator
	EventDelete  // drop the last token
	EventClear   // empty the sequence
	EventConst   // enter a constant as a number
)

//go:generate stringer -type=EventKind -trimprefix=Event

// Digit returns the event for pressing a digit key. d must be in '0'..'9';
// other runes produce an event that Apply ignores.
func Digit(d rune) Event {
	return Event{Kind: EventDigit, Sym: d}
}

// Decimal returns the event for pressing the decimal point key.
func Decimal() Event {
	return Event{Kind: EventDecimal}
}

// Operator returns the event for pressing an operator key. op must be one of
// Operators; other runes produce an event that Apply ignores.
func Operator(op rune) Event {
	return Event{Kind: EventOp, Sym: op}
}

// DeleteLast returns the event for pressing the delete key.
func DeleteLast() Event {
	return Event{Kind: EventDelete}
}

// Clear returns the event for pressing the all-clear key.
func Clear() Event {
	return Event{Kind: EventClear}
}

// Constant returns the event for pressing a constant key.
func Constant(c Const) Event {
	return Event{Kind: EventConst, Const: c}
}

func (ev Event) String() string {
	switch ev.Kind {
	case EventDigit, EventOp:
		return ev.Kind.String() + ":" + strconv.QuoteRune(ev.Sym)
	case EventConst:
		return ev.Kind.String() + ":" + string(ev.Const)
	default:
		return ev.Kind.String()
	}
}
