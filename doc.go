// Package rpn evaluates infix arithmetic expressions by reordering them into
// reverse Polish notation with the shunting-yard algorithm and reducing the
// postfix form with an operand stack.
//
// The recognized syntax is decimal numbers, the four binary operators
// + - * /, and round brackets. Whitespace separates tokens and is otherwise
// ignored, so "1+3-(4/5)" and "1 + 3 - (4 / 5)" convert to the same queue.
// Division by zero follows IEEE-754 semantics and yields an infinity or NaN
// rather than an error.
//
// The package keeps no state between calls apart from the fixed operator
// precedence table, so it is safe to use from any number of goroutines.
package rpn
