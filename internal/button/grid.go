package button

import "github.com/dshills/calcterm/internal/calc"

// Grid returns the keypad rows from top to bottom.
// Each call returns a fresh copy.
func Grid() [][]ID {
	return [][]ID{
		{Clear, Invert, Percent, Op(calc.Divide)},
		{Numeric(7), Numeric(8), Numeric(9), Op(calc.Multiply)},
		{Numeric(4), Numeric(5), Numeric(6), Op(calc.Subtract)},
		{Numeric(1), Numeric(2), Numeric(3), Op(calc.Add)},
		{Numeric(0), Decimal, Calculate},
	}
}
