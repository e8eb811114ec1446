package alien

import (
	"errors"
	"testing"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "1 LEFT 2", want: "1"},
		{input: "1 RIGHT 2", want: "2"},
		{input: "32 RIGHT 4", want: "4"},
		{input: "1 DOWN 2", want: "1"},
		{input: "1 DOWN 3", want: "0"},
		{input: "1 UP 2", want: "1"},
		{input: "8 UP 3", want: "0"},
		{input: "007 LEFT 1", want: "007"},
		{input: " 4  UP 16 ", want: "1"},
		{input: "9223372036854775807 DOWN 9223372036854775807", want: "0"},
	}
	for _, test := range tests {
		got, err := Calculate(test.input)
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}

func TestCalculateErrors(t *testing.T) {
	tests := []struct {
		input string
		want  *Error
	}{
		{input: "1 LEFT 2 RIGHT 4", want: &Error{Kind: MalformedGroup, Token: "1 LEFT 2 RIGHT 4"}},
		{input: "1 LEFT", want: &Error{Kind: MalformedGroup, Token: "1 LEFT"}},
		{input: "", want: ErrMalformedGroup},
		{input: "(1 LEFT 2", want: &Error{Kind: NotANumber, Token: "(1"}},
		{input: "1 LEFT x", want: &Error{Kind: NotANumber, Token: "x"}},
		{input: "1 LEFT -2", want: &Error{Kind: NotANumber, Token: "-2"}},
		{input: "99999999999999999999 LEFT 1", want: ErrNotANumber},
		{input: "1 BLA 2", want: &Error{Kind: UnknownOperator, Token: "BLA"}},
		{input: "1 left 2", want: &Error{Kind: UnknownOperator, Token: "left"}},
		{input: "0 UP 3", want: ErrDivisionByZero},
	}
	for _, test := range tests {
		_, err := Calculate(test.input)
		if !errors.Is(err, test.want) {
			t.Errorf("want %v for %q but got %v", test.want, test.input, err)
		}
	}
}

func TestCalculateOperandBeforeOperator(t *testing.T) {
	_, err := Calculate("x BLA 2")
	if KindOf(err) != NotANumber {
		t.Fatalf("want NotANumber but got %v", err)
	}
}

func TestOperatorApply(t *testing.T) {
	tests := []struct {
		op   string
		a, b int64
		want int64
	}{
		{op: "LEFT", a: 1, b: 2, want: 1},
		{op: "RIGHT", a: 1, b: 2, want: 2},
		{op: "UP", a: 3, b: 9, want: 1},
		{op: "UP", a: 8, b: 3, want: 0},
		{op: "DOWN", a: 2, b: 3, want: 1},
		{op: "DOWN", a: -1, b: 4, want: 1},
		{op: "DOWN", a: -5, b: 1, want: 0},
	}
	for _, test := range tests {
		op, err := ParseOperator(test.op)
		if err != nil {
			t.Fatal(err)
		}
		if op.String() != test.op {
			t.Errorf("want %q but got %q", test.op, op.String())
		}
		got, err := op.Apply(test.a, test.b)
		if err != nil {
			t.Errorf("%d %v %d: %v", test.a, op, test.b, err)
			continue
		}
		if got != test.want {
			t.Errorf("want %d for %d %v %d but got %d", test.want, test.a, op, test.b, got)
		}
	}

	if _, err := OpUp.Apply(0, 1); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("want DivisionByZero but got %v", err)
	}
	if _, err := Operator(42).Apply(1, 1); !errors.Is(err, ErrUnknownOperator) {
		t.Errorf("want UnknownOperator but got %v", err)
	}
}
