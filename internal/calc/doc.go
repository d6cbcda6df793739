// Package calc implements the calculator state machine.
//
// A State holds a single accumulator: the text currently being typed, the
// left operand locked in by an operator press, the pending operator, the last
// result, and an error message. Every transition recomputes the display
// string, which is the only thing a renderer needs to read:
//
//	s := calc.New()
//	s.AppendInput('5')
//	s.SetOperator(calc.Add)
//	s.AppendInput('3')
//	s.Calculate()
//	s.Display() // "8"
//
// # Display Priority
//
// The display shows, in order of precedence, the error message, the result,
// the parsed input, or "0".
//
// # Chained Equals
//
// After a successful calculation the result becomes the next left operand and
// the right-hand value is remembered, so pressing equals again repeats the
// last operation: 5 + 3 = = shows 8 and then 11.
//
// # Thread Safety
//
// State is not safe for concurrent use. It has exactly one owner, the
// application event loop.
package calc
