package alien

import (
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/rakyll/statik/fs"
	"gopkg.in/yaml.v3"

	_ "github.com/mattn/alienlang/statik"
)

//go:generate statik -src=lib -f

// Case is one worked example from the embedded library. Exactly one of Expr
// and Group is set; a case expects either Want or Err.
type Case struct {
	Name  string    `yaml:"name"`
	Expr  string    `yaml:"expr"`
	Group string    `yaml:"group"`
	Want  *int64    `yaml:"want"`
	Err   ErrorKind `yaml:"err"`
}

func (c Case) String() string {
	if c.Name != "" {
		return c.Name
	}
	if c.Group != "" {
		return "group " + c.Group
	}
	return c.Expr
}

// Run evaluates the case and reports any mismatch.
func (c Case) Run() error {
	var got int64
	var err error
	switch {
	case c.Group != "" && c.Expr != "":
		return fmt.Errorf("%v: both expr and group set", c)
	case c.Group != "":
		var s string
		s, err = Calculate(c.Group)
		if err == nil {
			got, err = parseOperand(s)
		}
	default:
		got, err = Eval(c.Expr)
	}

	if c.Err != 0 {
		if err == nil {
			return fmt.Errorf("%v: want %v but got %d", c, c.Err, got)
		}
		if k := KindOf(err); k != c.Err {
			return fmt.Errorf("%v: want %v but got %v", c, c.Err, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("%v: %w", c, err)
	}
	if c.Want == nil {
		return fmt.Errorf("%v: neither want nor err given", c)
	}
	if got != *c.Want {
		return fmt.Errorf("%v: want %d but got %d", c, *c.Want, got)
	}
	return nil
}

func decodeCases(r io.Reader) ([]Case, error) {
	var cases []Case
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cases); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return cases, nil
}

// LoadCases reads every case file bundled into the binary.
func LoadCases() ([]Case, error) {
	statikFS, err := fs.New()
	if err != nil {
		return nil, err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return nil, err
	}
	var all []Case
	for _, fi := range fis {
		if fi.IsDir() || !strings.HasSuffix(fi.Name(), ".yaml") {
			continue
		}
		f, err := statikFS.Open(path.Join("/", fi.Name()))
		if err != nil {
			return nil, err
		}
		cases, err := decodeCases(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fi.Name(), err)
		}
		all = append(all, cases...)
	}
	return all, nil
}

// SelfTest runs the bundled cases, writing one line per failure to w, and
// returns the number of failures.
func SelfTest(w io.Writer) (int, error) {
	cases, err := LoadCases()
	if err != nil {
		return 0, err
	}
	failed := 0
	for _, c := range cases {
		if err := c.Run(); err != nil {
			fmt.Fprintln(w, err)
			failed++
		}
	}
	fmt.Fprintf(w, "%d cases, %d failed\n", len(cases), failed)
	return failed, nil
}
