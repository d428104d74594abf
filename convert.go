package rpn

import (
	"strings"
	"unicode"
)

// precedence ranks the binary operators; higher binds more tightly. The
// table is fixed for the lifetime of the process. Brackets deliberately have
// no entry, so a lookup for "(" yields zero and the precedence rule never
// pops one.
var precedence = map[string]int{
	"+": 1,
	"-": 1,
	"*": 2,
	"/": 2,
}

// Queue is a sequence of tokens in postfix (reverse Polish) order, as
// produced by FromInfix. Each token is either a decimal number literal or
// one of the operators + - * /.
type Queue []string

// String renders the queue with its tokens comma-separated.
func (q Queue) String() string {
	return strings.Join(q, ", ")
}

// FromInfix converts an infix arithmetic expression into a postfix Queue
// using the shunting-yard algorithm. Number literals are accumulated from
// digit and decimal-point runes but not validated here; a malformed literal
// such as "1.2.3" surfaces as a NumberError when the queue is evaluated.
// Any other rune fails the conversion with a TokenError.
//
// An unmatched close bracket is ignored, and an unmatched open bracket is
// drained into the queue along with the remaining operators, where it later
// fails numeric parsing. Neither is detected during conversion.
func FromInfix(input string) (Queue, error) {
	var (
		out   Queue
		stack []string
		buf   strings.Builder
	)
	flush := func() {
		if buf.Len() > 0 {
			out = append(out, buf.String())
			buf.Reset()
		}
	}
	col := 0
	for _, r := range input {
		col++
		switch {
		case unicode.IsSpace(r):
			flush()
		case r == '+', r == '-', r == '*', r == '/':
			flush()
			op := string(r)
			// Popping on equal precedence keeps same-precedence operators
			// left-associative, so 10-2-3 is (10-2)-3.
			for len(stack) > 0 && precedence[stack[len(stack)-1]] >= precedence[op] {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, op)
		case r == '(':
			stack = append(stack, "(")
		case r == ')':
			flush()
			for len(stack) > 0 && stack[len(stack)-1] != "(" {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case r == '.', '0' <= r && r <= '9':
			buf.WriteRune(r)
		default:
			return nil, &TokenError{Col: col, Rune: r}
		}
	}
	flush()
	for len(stack) > 0 {
		out = append(out, stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}
	return out, nil
}
