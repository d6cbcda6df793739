package button

import "github.com/dshills/calcterm/internal/calc"

// Label characters that are not digits or operator symbols.
const (
	LabelCalculate = '='
	LabelDecimal   = '.'
	LabelInvert    = '±'
	LabelClear     = 'C'
	LabelPercent   = '%'
	LabelBackspace = '⌫'
)

// FromLabel returns the button for a label or key character.
func FromLabel(r rune) (ID, bool) {
	switch r {
	case '+':
		return Op(calc.Add), true
	case '-':
		return Op(calc.Subtract), true
	case 'x':
		return Op(calc.Multiply), true
	case '/':
		return Op(calc.Divide), true
	case LabelCalculate:
		return Calculate, true
	case LabelDecimal:
		return Decimal, true
	case LabelInvert:
		return Invert, true
	case LabelClear, 'c':
		return Clear, true
	case LabelPercent:
		return Percent, true
	case LabelBackspace:
		return Backspace, true
	}
	if r >= '0' && r <= '9' {
		return Numeric(uint8(r - '0')), true
	}
	return ID{}, false
}

// Label returns the character shown on the button.
// Invalid identifiers render as '?'.
func (id ID) Label() rune {
	switch id.Kind {
	case KindOperator:
		return id.Operator.Symbol()
	case KindCalculate:
		return LabelCalculate
	case KindDecimal:
		return LabelDecimal
	case KindInvert:
		return LabelInvert
	case KindClear:
		return LabelClear
	case KindPercent:
		return LabelPercent
	case KindBackspace:
		return LabelBackspace
	case KindNumeric:
		if id.Digit <= 9 {
			return rune('0' + id.Digit)
		}
	}
	return '?'
}
