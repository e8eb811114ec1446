package alien

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Eval reduces an alien expression to a single integer.
//
// Ungrouped chains reduce strictly left to right, whatever the operators:
// "8 LEFT 3 LEFT 4" becomes "8 LEFT 4" and then "8". A text starting with
// '(' reduces its innermost group first: the first ')' and the last '('
// before it enclose the group, whose result is spliced back between the
// untouched text on either side. A parenthesised right operand of a chain
// is evaluated in full before its group is reduced.
//
// Reduction runs in a loop. A parenthesised operand is evaluated by a
// nested call, but since it starts with '(' that call never nests again.
// Eval keeps no state between calls and is safe for concurrent use.
func Eval(text string) (int64, error) {
	for {
		if text == "" {
			return 0, newError(InvalidSyntax, text)
		}
		var err error
		switch c := text[0]; {
		case c == '(':
			text, err = reduceInnermost(text)
		case '0' <= c && c <= '9':
			if head, _ := cutFields(text, 2); len(head) == 1 {
				return parseLiteral(head[0])
			}
			text, err = reduceLeftmost(text)
		default:
			return 0, newError(InvalidSyntax, text)
		}
		if err != nil {
			return 0, err
		}
	}
}

// reduceLeftmost reduces the first group of a text starting with an
// operand and returns the result followed by the rest of the text.
func reduceLeftmost(text string) (string, error) {
	head, rest := cutFields(text, 2)
	rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
	if len(head) < 2 || rest == "" {
		return "", newError(MalformedGroup, text)
	}

	var right string
	if rest[0] == '(' {
		sub, tail, err := splitParenOperand(rest)
		if err != nil {
			return "", err
		}
		v, err := Eval(sub)
		if err != nil {
			return "", err
		}
		right = strconv.FormatInt(v, 10)
		rest = tail
	} else {
		var operand []string
		operand, rest = cutFields(rest, 1)
		right = operand[0]
	}

	result, err := Calculate(head[0] + " " + head[1] + " " + right)
	if err != nil {
		return "", err
	}
	return result + rest, nil
}

// reduceInnermost reduces the innermost group of a text starting with '('.
func reduceInnermost(text string) (string, error) {
	if head, _ := cutFields(text, 2); len(head) == 1 {
		return unwrap(head[0])
	}

	closeAt := strings.IndexByte(text, ')')
	if closeAt < 0 {
		return "", newError(UnbalancedParentheses, text)
	}
	openAt := strings.LastIndexByte(text[:closeAt], '(')
	if openAt < 0 {
		return "", newError(UnbalancedParentheses, text[:closeAt+1])
	}

	result, err := reduceFlat(text[openAt+1 : closeAt])
	if err != nil {
		return "", err
	}
	return text[:openAt] + result + text[closeAt+1:], nil
}

// reduceFlat reduces a region without parentheses to one token.
func reduceFlat(region string) (string, error) {
	for {
		fields := strings.Fields(region)
		switch len(fields) {
		case 0:
			return "", newError(MalformedGroup, region)
		case 1:
			if !isDigits(fields[0]) {
				return "", newError(NotANumber, fields[0])
			}
			return fields[0], nil
		}
		var err error
		region, err = reduceLeftmost(strings.TrimLeftFunc(region, unicode.IsSpace))
		if err != nil {
			return "", err
		}
	}
}

// unwrap strips the parentheses around a single token such as "((3))".
func unwrap(tok string) (string, error) {
	inner := strings.TrimLeft(tok, "(")
	opened := len(tok) - len(inner)
	trimmed := strings.TrimRight(inner, ")")
	if len(inner)-len(trimmed) != opened {
		return "", newError(UnbalancedParentheses, tok)
	}
	return trimmed, nil
}

// splitParenOperand splits s, which starts with '(', after the ')' that
// balances it.
func splitParenOperand(s string) (sub, rest string, err error) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth > 0 {
				continue
			}
			sub, rest = s[:i+1], s[i+1:]
			if rest == "" {
				return sub, rest, nil
			}
			if rest[0] == ')' {
				return "", "", newError(UnbalancedParentheses, s)
			}
			if r, _ := utf8.DecodeRuneInString(rest); !unicode.IsSpace(r) {
				return "", "", newError(InvalidSyntax, rest)
			}
			return sub, rest, nil
		}
	}
	return "", "", newError(UnbalancedParentheses, s)
}

// cutFields returns up to n leading whitespace separated fields of s and
// the text following them, leading whitespace included.
func cutFields(s string, n int) ([]string, string) {
	var fields []string
	for len(fields) < n {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		if s == "" {
			break
		}
		end := strings.IndexFunc(s, unicode.IsSpace)
		if end < 0 {
			end = len(s)
		}
		fields = append(fields, s[:end])
		s = s[end:]
	}
	return fields, s
}

func parseLiteral(tok string) (int64, error) {
	if strings.ContainsAny(tok, "()") {
		return 0, newError(UnbalancedParentheses, tok)
	}
	return parseOperand(tok)
}
