package alien

import (
	"strconv"
	"strings"
)

// Operator is one of the four alien operators.
type Operator int

const (
	OpLeft Operator = iota + 1
	OpRight
	OpUp
	OpDown
)

type opFn func(a, b int64, la, lb string) (string, error)

type opInfo struct {
	name string
	fn   opFn
}

var ops map[Operator]opInfo

var opNames map[string]Operator

func makeOp(name string, fn opFn) opInfo {
	return opInfo{name: name, fn: fn}
}

func init() {
	ops = make(map[Operator]opInfo)
	ops[OpLeft] = makeOp("LEFT", doLeft)
	ops[OpRight] = makeOp("RIGHT", doRight)
	ops[OpUp] = makeOp("UP", doUp)
	ops[OpDown] = makeOp("DOWN", doDown)

	opNames = make(map[string]Operator)
	for op, info := range ops {
		opNames[info.name] = op
	}
}

// ParseOperator looks up an operator keyword. Keywords are case sensitive.
func ParseOperator(s string) (Operator, error) {
	op, ok := opNames[s]
	if !ok {
		return 0, newError(UnknownOperator, s)
	}
	return op, nil
}

func (op Operator) String() string {
	if info, ok := ops[op]; ok {
		return info.name
	}
	return "Operator(" + strconv.Itoa(int(op)) + ")"
}

// Apply evaluates a OP b.
func (op Operator) Apply(a, b int64) (int64, error) {
	info, ok := ops[op]
	if !ok {
		return 0, newError(UnknownOperator, op.String())
	}
	la, lb := strconv.FormatInt(a, 10), strconv.FormatInt(b, 10)
	s, err := info.fn(a, b, la, lb)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(s, 10, 64)
}

func doLeft(a, b int64, la, lb string) (string, error) {
	return la, nil
}

func doRight(a, b int64, la, lb string) (string, error) {
	return lb, nil
}

func doUp(a, b int64, la, lb string) (string, error) {
	if a == 0 {
		return "", newError(DivisionByZero, la+" UP "+lb)
	}
	if b%a == 0 {
		return "1", nil
	}
	return "0", nil
}

func doDown(a, b int64, la, lb string) (string, error) {
	var prime bool
	if a >= 0 && b >= 0 {
		prime = IsPrime(uint64(a) + uint64(b))
	} else if sum := a + b; sum > 1 {
		prime = IsPrime(uint64(sum))
	}
	if prime {
		return "1", nil
	}
	return "0", nil
}

// Calculate reduces one operable group "<int> <OP> <int>" to a single
// integer token. LEFT and RIGHT return the operand exactly as written.
func Calculate(group string) (string, error) {
	blocks := strings.Fields(group)
	if len(blocks) != 3 {
		return "", newError(MalformedGroup, group)
	}
	a, err := parseOperand(blocks[0])
	if err != nil {
		return "", err
	}
	b, err := parseOperand(blocks[2])
	if err != nil {
		return "", err
	}
	op, err := ParseOperator(blocks[1])
	if err != nil {
		return "", err
	}
	return ops[op].fn(a, b, blocks[0], blocks[2])
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func parseOperand(s string) (int64, error) {
	if !isDigits(s) {
		return 0, newError(NotANumber, s)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &Error{Kind: NotANumber, Token: s, Err: err}
	}
	return n, nil
}
