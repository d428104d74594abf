package rpn

import "strconv"

// Eval reduces the queue to a single value. Each operator token pops its
// right operand first and its left operand second, then pushes left OP
// right; every other token must parse as a decimal number. After the last
// token the topmost value is the result. Values left below the result by a
// malformed expression are ignored rather than rejected.
func (q Queue) Eval() (float64, error) {
	var stack []float64
	for i, tok := range q {
		switch tok {
		case "+", "-", "*", "/":
			if len(stack) < 2 {
				return 0, &OperandError{Idx: i, Op: tok}
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = append(stack[:len(stack)-2], apply(left, right, tok))
		default:
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return 0, &NumberError{Idx: i, Token: tok}
			}
			stack = append(stack, v)
		}
	}
	if len(stack) == 0 {
		return 0, &OperandError{Idx: len(q)}
	}
	return stack[len(stack)-1], nil
}

// apply computes left OP right. The evaluator's token switch guarantees op
// is one of the four binary operators.
func apply(left, right float64, op string) float64 {
	switch op {
	case "+":
		return left + right
	case "-":
		return left - right
	case "*":
		return left * right
	case "/":
		return left / right
	default:
		panic("rpn: invalid operator " + strconv.Quote(op))
	}
}

// EvalString is a shortcut to convert an infix expression and evaluate the
// resulting queue.
func EvalString(input string) (float64, error) {
	q, err := FromInfix(input)
	if err != nil {
		return 0, err
	}
	return q.Eval()
}
