package tapcalc_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/zephyrtronium/tapcalc"
)

func press(t *testing.T, kp *tapcalc.Keypad, src string) {
	t.Helper()
	keys, err := tapcalc.KeysString(src)
	if err != nil {
		t.Fatalf("scanning %q: %v", src, err)
	}
	for _, k := range keys {
		kp.Press(k)
	}
}

func TestKeypad(t *testing.T) {
	kp := tapcalc.NewKeypad()
	if kp.Result() != 0 || kp.Err() != nil || kp.Display(false) != "" {
		t.Fatalf("new keypad isn't empty: %q %g %v", kp.Display(false), kp.Result(), kp.Err())
	}
	press(t, kp, "12+3*4=")
	if got := kp.Result(); got != 24 {
		t.Errorf("12+3*4: want 24, got %g", got)
	}
	// Evaluating leaves the sequence for further editing.
	if got := kp.Display(false); got != "12+3*4" {
		t.Errorf("display after evaluating: %q", got)
	}
	press(t, kp, "/0=")
	if !errors.As(kp.Err(), new(*tapcalc.DivisionByZeroError)) {
		t.Errorf("dividing by zero gave %v", kp.Err())
	}
	if got := kp.Result(); got != 24 {
		t.Errorf("failed evaluation changed the result to %g", got)
	}
	press(t, kp, "<2=")
	if kp.Err() != nil {
		t.Errorf("error not reset after a good evaluation: %v", kp.Err())
	}
	if got := kp.Result(); got != 12+3*4/2 {
		t.Errorf("12+3*4/2: want 18, got %g", got)
	}
	press(t, kp, "AC")
	if kp.Result() != 0 || kp.Err() != nil || kp.Display(false) != "" {
		t.Errorf("clear didn't reset: %q %g %v", kp.Display(false), kp.Result(), kp.Err())
	}
}

func TestKeypadClearResetsError(t *testing.T) {
	kp := tapcalc.NewKeypad()
	press(t, kp, "1/0=")
	if kp.Err() == nil {
		t.Fatal("no error from 1/0")
	}
	kp.Apply(tapcalc.Clear())
	if kp.Err() != nil {
		t.Errorf("clear kept error %v", kp.Err())
	}
}

func TestKeypadSequenceCopy(t *testing.T) {
	kp := tapcalc.NewKeypad()
	press(t, kp, "1+2")
	s := kp.Sequence()
	s[0] = tapcalc.Num("9")
	want := seq(num("1"), op('+'), num("2"))
	if diff := cmp.Diff(want, kp.Sequence(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("modifying the copy changed the keypad (-want +got):\n%s", diff)
	}
}

func TestKeypadStrict(t *testing.T) {
	kp := tapcalc.NewKeypad(tapcalc.Strict())
	press(t, kp, "2*3.=")
	if got := kp.Result(); got != 6 {
		t.Errorf("2*3.: want 6, got %g", got)
	}
}

func TestKeypadEvalBig(t *testing.T) {
	kp := tapcalc.NewKeypad()
	press(t, kp, "1/4")
	r, err := kp.EvalBig(128)
	if err != nil {
		t.Fatal(err)
	}
	if r.Prec() != 128 {
		t.Errorf("want precision 128, got %d", r.Prec())
	}
	if got := kp.Result(); got != 0.25 {
		t.Errorf("want result 0.25, got %g", got)
	}
	press(t, kp, "*0/0")
	if _, err := kp.EvalBig(128); err == nil {
		t.Error("no error dividing by zero")
	}
	if got := kp.Result(); got != 0.25 {
		t.Errorf("failed evaluation changed the result to %g", got)
	}
}

func ExampleKeypad() {
	kp := tapcalc.NewKeypad()
	keys, _ := tapcalc.KeysString("5.+2×3=")
	for _, k := range keys {
		kp.Press(k)
	}
	fmt.Println(kp.Display(true), "=", kp.Result())

	// Output:
	// 5.0+2×3 = 11
}

func ExampleKeys() {
	keys, err := tapcalc.KeysString("12 DEL pi=")
	fmt.Println(keys, err)

	// Output:
	// [Digit:'1' Digit:'2' Delete Const:pi Eval] <nil>
}
