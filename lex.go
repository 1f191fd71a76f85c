package tapcalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Key is one key press: either an event for Apply or a request to evaluate.
type Key struct {
	Event Event
	// Eval is true for the = key. Event is unset when Eval is true.
	Eval bool
}

func (k Key) String() string {
	if k.Eval {
		return "Eval"
	}
	return k.Event.String()
}

// keywords maps lowercased key names to their keys.
var keywords = map[string]Key{
	"del": {Event: DeleteLast()},
	"ac":  {Event: Clear()},
	"c":   {Event: Clear()},
	"pi":  {Event: Constant(Pi)},
	"π":   {Event: Constant(Pi)},
	"e":   {Event: Constant(E)},
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
}

// Keys scans key text into key presses. Digits, ".", and the operators
// "+-*/" are themselves; "×" and "÷" are alternates for "*" and "/". "=" asks
// for a result. "<" and the word DEL delete the last token, and the words C
// and AC clear. The words pi (or π) and e enter constants. Words are case
// insensitive and must be separated from other words by a non-letter, but
// whitespace is otherwise ignored.
//
// If the text contains an invalid key, Keys returns the keys scanned before it
// along with a *KeyError.
func Keys(src io.RuneScanner) ([]Key, error) {
	l := lexer{src: src}
	var keys []Key
	for {
		k, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return keys, nil
			}
			return keys, err
		}
		keys = append(keys, k)
	}
}

// KeysString is a shortcut to scan keys from a string.
func KeysString(src string) ([]Key, error) {
	return Keys(strings.NewReader(src))
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next key. At the end of the input, the error is io.EOF.
func (l *lexer) next() (Key, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			return Key{}, err
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9':
			return Key{Event: Digit(r)}, nil
		case r == '.':
			return Key{Event: Decimal()}, nil
		case r == '=':
			return Key{Eval: true}, nil
		case r == '<', r == '\b', r == 0x7f:
			return Key{Event: DeleteLast()}, nil
		case r == '×':
			return Key{Event: Operator('*')}, nil
		case r == '÷':
			return Key{Event: Operator('/')}, nil
		case strings.ContainsRune(Operators, r):
			return Key{Event: Operator(r)}, nil
		case unicode.IsLetter(r):
			col := l.rune
			l.unreadRune()
			if err := l.scanWord(); err != nil {
				return Key{}, err
			}
			k, ok := keywords[strings.ToLower(l.buf.String())]
			if !ok {
				return Key{}, &KeyError{Text: l.buf.String(), Col: col}
			}
			return k, nil
		default:
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return Key{}, &KeyError{Text: l.buf.String(), Col: l.rune}
		}
	}
}

func (l *lexer) scanWord() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the rune that starts a word before calling
				// scanWord, so we have scanned at least one rune.
				return nil
			}
			return err
		}
		if !unicode.IsLetter(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// KeyError indicates text that is not a key. It implements InputError.
type KeyError struct {
	// Text is the word or rune that is not a key.
	Text string
	// Col is the number of runes scanned up to and including the start of
	// Text.
	Col int
}

func (err *KeyError) Error() string {
	return errpos(err.Col, "unknown key "+strconv.Quote(err.Text))
}

func (err *KeyError) Pos() int {
	return err.Col
}
