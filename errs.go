package rpn

import "strconv"

// TokenError is an error indicating a rune the converter does not
// recognize. It implements InputError.
type TokenError struct {
	// Col is the 1-based rune column of the invalid rune.
	Col int
	// Rune is the invalid rune.
	Rune rune
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "invalid token "+strconv.QuoteRune(err.Rune))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a queue token that does not parse as a
// decimal number. It implements InputError.
type NumberError struct {
	// Idx is the index of the token in the queue.
	Idx int
	// Token is the token that failed to parse.
	Token string
}

func (err *NumberError) Error() string {
	return errpos(err.Idx, "invalid number "+strconv.Quote(err.Token))
}

func (err *NumberError) Pos() int {
	return err.Idx
}

// OperandError is an error indicating that an operator, or the final
// result, found the operand stack without enough values. It implements
// InputError.
type OperandError struct {
	// Idx is the index of the operator token in the queue, or the queue
	// length when the final result pop failed.
	Idx int
	// Op is the operator that was short of operands, or the empty string
	// when the queue produced no result at all.
	Op string
}

func (err *OperandError) Error() string {
	if err.Op == "" {
		return errpos(err.Idx, "not enough operands for a result")
	}
	return errpos(err.Idx, "not enough operands for "+strconv.Quote(err.Op))
}

func (err *OperandError) Pos() int {
	return err.Idx
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError. The position is the rune column
// in the source expression for conversion errors and the token index in the
// queue for evaluation errors.
type InputError interface {
	error
	// Pos returns the position of the error.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*OperandError)(nil)
)
