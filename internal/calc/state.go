package calc

import (
	"errors"
	"strconv"
	"strings"
)

// Error messages shown on the display.
const (
	MsgDivideByZero     = "Divide by Zero"
	MsgCalculationError = "Calculation Error"
)

// DefaultDisplay is shown when there is nothing else to show.
const DefaultDisplay = "0"

// State is the calculator accumulator.
// The zero value is not ready for use; call New.
type State struct {
	display string

	// input is the literal being typed; empty means no entry in progress.
	input string

	operand  *float64
	operator Operator
	result   *float64

	// repeat is the right-hand value of the last successful calculation.
	repeat *float64

	// err is the message shown instead of any value; empty means no error.
	err string
}

// Snapshot is a read-only copy of the state fields.
type Snapshot struct {
	Display  string
	Input    string
	Operand  *float64
	Operator Operator
	Result   *float64
	Error    string
}

// New creates a cleared state.
func New() *State {
	s := &State{}
	s.Clear()
	return s
}

// Display returns the text to render. It is never empty.
func (s *State) Display() string {
	return s.display
}

// Snapshot returns a copy of the current fields.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Display:  s.display,
		Input:    s.input,
		Operand:  copyFloat(s.operand),
		Operator: s.operator,
		Result:   copyFloat(s.result),
		Error:    s.err,
	}
}

// HasError returns true if an error message is being shown.
func (s *State) HasError() bool {
	return s.err != ""
}

// Clear resets every field to its default.
func (s *State) Clear() {
	s.display = DefaultDisplay
	s.input = ""
	s.operand = nil
	s.operator = 0
	s.result = nil
	s.repeat = nil
	s.err = ""
}

// AppendInput appends a digit or decimal point to the input.
// A finished result or an error is discarded first.
// A second decimal point in the same literal is ignored.
func (s *State) AppendInput(ch rune) {
	if s.result != nil || s.err != "" {
		s.Clear()
	}
	if ch == '.' && strings.ContainsRune(s.input, '.') {
		return
	}
	s.input += string(ch)
	s.updateDisplay()
}

// InvertInput negates the value being typed. It does nothing without input.
func (s *State) InvertInput() {
	value, ok := s.parseInput()
	if !ok {
		return
	}
	s.input = formatShortest(-value)
	s.updateDisplay()
}

// PercentInput divides the value being typed by 100.
// It does nothing without input.
func (s *State) PercentInput() {
	value, ok := s.parseInput()
	if !ok {
		return
	}
	s.input = formatShortest(value / 100)
	s.updateDisplay()
}

// Backspace removes the last character of the input.
// With a result or error present it clears the state instead.
func (s *State) Backspace() {
	if s.result != nil || s.err != "" {
		s.Clear()
		return
	}
	if s.input == "" {
		return
	}
	runes := []rune(s.input)
	s.input = string(runes[:len(runes)-1])
	if s.input == "-" {
		s.input = ""
	}
	s.updateDisplay()
}

// SetOperator selects the pending operation.
// The first operator press locks the typed value in as the left operand;
// later presses only replace the operator. The display is not changed.
func (s *State) SetOperator(op Operator) {
	if s.operand == nil {
		if value, ok := s.parseInput(); ok {
			s.operand = &value
			s.input = ""
		}
	}
	s.operator = op
	s.repeat = nil
}

// Calculate applies the pending operator.
// The right-hand value is the typed input, or the last right-hand value when
// equals is pressed again, or the previous result.
func (s *State) Calculate() {
	if s.operand == nil || !s.operator.Valid() {
		return
	}

	value, ok := s.parseInput()
	if !ok && s.repeat != nil {
		value, ok = *s.repeat, true
	}
	if !ok && s.result != nil {
		value, ok = *s.result, true
	}

	switch {
	case !ok:
		s.err = MsgCalculationError
		s.result = nil
	case s.operator == Divide && value == 0:
		s.Clear()
		s.err = MsgDivideByZero
	default:
		result := s.operator.Evaluate(*s.operand, value)
		s.result = &result
		s.operand = copyFloat(&result)
		s.repeat = &value
		s.input = ""
	}

	s.updateDisplay()
}

// parseInput returns the numeric value of the input, if any.
func (s *State) parseInput() (float64, bool) {
	switch s.input {
	case "":
		return 0, false
	case ".":
		return 0, true
	}
	value, err := strconv.ParseFloat(s.input, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return value, true
}

// updateDisplay derives the display from error, result, and input.
func (s *State) updateDisplay() {
	if s.err != "" {
		s.display = s.err
		return
	}
	if s.result != nil {
		s.display = FormatNumber(*s.result)
		return
	}
	if value, ok := s.parseInput(); ok {
		s.display = FormatNumber(value)
		return
	}
	s.display = DefaultDisplay
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
