package alien

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLib(t *testing.T) {
	cases, err := LoadCases()
	if err != nil {
		t.Fatal(err)
	}
	if len(cases) == 0 {
		t.Fatal("no cases bundled")
	}
	for _, c := range cases {
		t.Log(c)
		if err := c.Run(); err != nil {
			t.Error(err)
		}
	}
}

func TestSelfTest(t *testing.T) {
	var buf bytes.Buffer
	failed, err := SelfTest(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if failed != 0 {
		t.Fatalf("%d failed:\n%s", failed, buf.String())
	}
	if !strings.HasSuffix(buf.String(), ", 0 failed\n") {
		t.Errorf("unexpected summary: %q", buf.String())
	}
}

func TestDecodeCases(t *testing.T) {
	input := `
- name: first
  expr: "1 LEFT 2"
  want: 1
- group: "1 BLA 2"
  err: UnknownOperator
`
	got, err := decodeCases(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	one := int64(1)
	want := []Case{
		{Name: "first", Expr: "1 LEFT 2", Want: &one},
		{Group: "1 BLA 2", Err: UnknownOperator},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}

	if _, err := decodeCases(strings.NewReader("- expr: 1\n  bogus: 2\n")); err == nil {
		t.Error("want error for unknown field")
	}
	if _, err := decodeCases(strings.NewReader("- expr: 1\n  err: Nope\n")); err == nil {
		t.Error("want error for unknown error kind")
	}
}

func TestCaseRunMismatch(t *testing.T) {
	two := int64(2)
	tests := []Case{
		{Expr: "1 LEFT 2", Want: &two},
		{Expr: "1 LEFT 2", Err: DivisionByZero},
		{Expr: "1 BLA 2", Err: NotANumber},
		{Expr: "1 LEFT 2"},
		{Expr: "1 LEFT 2", Group: "1 LEFT 2", Want: &two},
	}
	for _, c := range tests {
		if err := c.Run(); err == nil {
			t.Errorf("want mismatch for %+v", c)
		}
	}
}
