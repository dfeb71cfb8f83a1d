package params

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrUnknownSymbol is returned when a symbolic value is not part of a family's table.
var ErrUnknownSymbol = errors.New("unknown symbolic value")

// Entry pairs a symbolic value with its wire code.
type Entry[S ~string] struct {
	Symbol S
	Code   int
}

// Enum is a bidirectional table between symbolic values and integer wire codes.
// It is built once per parameter family and never mutated afterwards.
type Enum[S ~string] struct {
	name     string
	order    []S
	toWire   map[S]int
	fromWire map[int]S
}

// NewEnum builds a table from entries. Duplicate symbols or codes are catalog
// bugs and panic at package initialization.
func NewEnum[S ~string](name string, entries ...Entry[S]) *Enum[S] {
	e := &Enum[S]{
		name:     name,
		order:    make([]S, 0, len(entries)),
		toWire:   make(map[S]int, len(entries)),
		fromWire: make(map[int]S, len(entries)),
	}
	for _, entry := range entries {
		if _, dup := e.toWire[entry.Symbol]; dup {
			panic(fmt.Sprintf("params: %s: duplicate symbol %q", name, entry.Symbol))
		}
		if _, dup := e.fromWire[entry.Code]; dup {
			panic(fmt.Sprintf("params: %s: duplicate code %d", name, entry.Code))
		}
		e.order = append(e.order, entry.Symbol)
		e.toWire[entry.Symbol] = entry.Code
		e.fromWire[entry.Code] = entry.Symbol
	}
	return e
}

// Name returns the family name (e.g. "shutter").
func (e *Enum[S]) Name() string {
	return e.name
}

// Symbols returns the symbolic values in catalog order.
func (e *Enum[S]) Symbols() []S {
	out := make([]S, len(e.order))
	copy(out, e.order)
	return out
}

// Encode maps a symbolic value to its wire code.
func (e *Enum[S]) Encode(symbol S) (int, error) {
	code, ok := e.toWire[symbol]
	if !ok {
		return 0, fmt.Errorf("%s %q: %w", e.name, string(symbol), ErrUnknownSymbol)
	}
	return code, nil
}

// Decode maps a wire value back to its symbol. The second result is false when
// the wire value is not a number or the code is not in the table.
func (e *Enum[S]) Decode(wire any) (S, bool) {
	code, ok := WireInt(wire)
	if !ok {
		var zero S
		return zero, false
	}
	symbol, ok := e.fromWire[code]
	return symbol, ok
}

// Parse converts user input into a symbol of this family.
func (e *Enum[S]) Parse(input string) (S, error) {
	symbol := S(input)
	if _, ok := e.toWire[symbol]; !ok {
		return symbol, fmt.Errorf("%s %q: %w", e.name, input, ErrUnknownSymbol)
	}
	return symbol, nil
}

// EncodeBool maps true to 1 and false to 0.
func EncodeBool(enabled bool) int {
	if enabled {
		return 1
	}
	return 0
}

// DecodeBool reports true only for a numeric wire value of exactly 1.
func DecodeBool(wire any) bool {
	code, ok := WireInt(wire)
	return ok && code == 1
}

// RangeError reports a value outside an enforced range.
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d, got %d", e.Field, e.Min, e.Max, e.Value)
}

// Range declares inclusive bounds for a numeric field. Only ranges with
// Enforced set are checked before a request is sent; the others are advisory.
type Range struct {
	Field    string
	Min      int
	Max      int
	Enforced bool
}

// Contains reports whether v lies within the declared bounds.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Check returns a *RangeError when the range is enforced and v is out of bounds.
func (r Range) Check(v int) error {
	if !r.Enforced || r.Contains(v) {
		return nil
	}
	return &RangeError{Field: r.Field, Value: v, Min: r.Min, Max: r.Max}
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// WDRLevel is the symbolic wide dynamic range setting: WDROff or a level 1-6.
type WDRLevel int

// WDROff disables wide dynamic range.
const WDROff WDRLevel = 0

// WDRLevels lists every accepted symbolic value in catalog order.
var WDRLevels = []WDRLevel{WDROff, 1, 2, 3, 4, 5, 6}

func (l WDRLevel) String() string {
	if l == WDROff {
		return "Off"
	}
	return strconv.Itoa(int(l))
}

// ParseWDRLevel accepts "Off" (any case) or a level 1-6.
func ParseWDRLevel(input string) (WDRLevel, error) {
	if input == "Off" || input == "off" || input == "OFF" {
		return WDROff, nil
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > 6 {
		return WDROff, fmt.Errorf("wide dynamic range %q: %w", input, ErrUnknownSymbol)
	}
	return WDRLevel(n), nil
}

// EncodeWDR returns the (enable, level) pair sent to the device. Off is sent
// as enable=0 with level 1.
func EncodeWDR(level WDRLevel) (enable int, wireLevel int) {
	if level == WDROff {
		return 0, 1
	}
	return 1, int(level)
}

// DecodeWDR inspects enable first: a numeric 0 means Off whatever the level.
// Otherwise the level is returned verbatim, absent when not a number.
func DecodeWDR(enable, level any) (WDRLevel, bool) {
	if e, ok := WireInt(enable); ok && e == 0 {
		return WDROff, true
	}
	l, ok := WireInt(level)
	if !ok {
		return WDROff, false
	}
	return WDRLevel(l), true
}

// WireInt converts a decoded JSON value into an int. Only integral numbers are
// accepted; strings, booleans, nil and fractional values are not.
func WireInt(wire any) (int, bool) {
	var f float64
	switch v := wire.(type) {
	case float64:
		f = v
	case int:
		return v, true
	case int64:
		return int(v), true
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
