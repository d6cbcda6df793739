package button

import (
	"fmt"

	"github.com/dshills/calcterm/internal/calc"
)

// Dispatch applies a button press to the state.
func Dispatch(id ID, s *calc.State) error {
	if !id.Valid() {
		return fmt.Errorf("dispatch %s: %w", id, ErrUnknownButton)
	}

	switch id.Kind {
	case KindClear:
		s.Clear()
	case KindNumeric:
		s.AppendInput(id.Label())
	case KindOperator:
		s.SetOperator(id.Operator)
	case KindDecimal:
		s.AppendInput('.')
	case KindCalculate:
		s.Calculate()
	case KindPercent:
		s.PercentInput()
	case KindInvert:
		s.InvertInput()
	case KindBackspace:
		s.Backspace()
	}
	return nil
}
