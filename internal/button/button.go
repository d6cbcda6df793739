// Package button maps calculator buttons to labels and applies them to a
// calculator state.
package button

import (
	"errors"
	"fmt"

	"github.com/dshills/calcterm/internal/calc"
)

// ErrUnknownButton is returned when dispatching an invalid identifier.
var ErrUnknownButton = errors.New("unknown button")

// Kind identifies the class of a button.
type Kind int

// Button kinds. The zero value is not a valid kind.
const (
	KindOperator Kind = iota + 1
	KindCalculate
	KindDecimal
	KindInvert
	KindClear
	KindPercent
	KindNumeric
	KindBackspace
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindOperator:
		return "operator"
	case KindCalculate:
		return "calculate"
	case KindDecimal:
		return "decimal"
	case KindInvert:
		return "invert"
	case KindClear:
		return "clear"
	case KindPercent:
		return "percent"
	case KindNumeric:
		return "numeric"
	case KindBackspace:
		return "backspace"
	default:
		return "unknown"
	}
}

// ID identifies a single button.
// Operator is set only for KindOperator and Digit only for KindNumeric.
type ID struct {
	Kind     Kind
	Operator calc.Operator
	Digit    uint8
}

// Button identifiers without a payload.
var (
	Calculate = ID{Kind: KindCalculate}
	Decimal   = ID{Kind: KindDecimal}
	Invert    = ID{Kind: KindInvert}
	Clear     = ID{Kind: KindClear}
	Percent   = ID{Kind: KindPercent}
	Backspace = ID{Kind: KindBackspace}
)

// Op returns the identifier for an operator button.
func Op(op calc.Operator) ID {
	return ID{Kind: KindOperator, Operator: op}
}

// Numeric returns the identifier for a digit button.
func Numeric(digit uint8) ID {
	return ID{Kind: KindNumeric, Digit: digit}
}

// Valid returns true if the identifier names a real button.
func (id ID) Valid() bool {
	switch id.Kind {
	case KindOperator:
		return id.Operator.Valid()
	case KindNumeric:
		return id.Digit <= 9
	case KindCalculate, KindDecimal, KindInvert, KindClear, KindPercent, KindBackspace:
		return true
	default:
		return false
	}
}

// String returns a readable name, used in logs.
func (id ID) String() string {
	switch id.Kind {
	case KindOperator:
		return fmt.Sprintf("operator(%s)", id.Operator)
	case KindNumeric:
		return fmt.Sprintf("numeric(%d)", id.Digit)
	default:
		return id.Kind.String()
	}
}
