// Package resistor decodes the color bands printed on a resistor into its
// resistance and tolerance, and formats the result using metric prefixes.
//
// A resistor carries between 3 and 6 bands. The last band is the tolerance,
// the one before it the multiplier, and all the bands in front of those are
// the significant figures, most significant first.
package resistor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"resistortools/colorcode"
)

// Bounds on the number of bands a resistor can carry.
const (
	MinBands = 3 // MinBands is the smallest number of bands Decode accepts.
	MaxBands = 6 // MaxBands is the largest number of bands Decode accepts.
)

// Metric prefixes, largest first.
var prefixes = []struct {
	scale  int64
	symbol string
}{
	{1_000_000_000, "G"},
	{1_000_000, "M"},
	{1_000, "k"},
}

// relTolerance is the relative difference below which two tolerances are equal.
const relTolerance = 1e-9

// Resistor holds a decoded resistance in ohms and its tolerance.
type Resistor struct {
	Value     int64     // Value is the resistance in ohms.
	Tolerance Tolerance // Tolerance is the allowed deviation in percent.
}

// New creates a Resistor with the given value and tolerance.
func New(value int64, tolerance Tolerance) Resistor {
	return Resistor{
		Value:     value,
		Tolerance: tolerance,
	}
}

// Equal reports whether both resistors have the same value and tolerances
// that are equal within a relative difference of 1e-9.
func (r Resistor) Equal(other Resistor) bool {
	return r.Value == other.Value && r.Tolerance.Equal(other.Tolerance)
}

// String renders the resistor as "<value> <prefix>Ω <tolerance> %". The value
// is scaled by the largest of G, M and k that divides it exactly.
func (r Resistor) String() string {
	value, symbol := r.Value, ""
	for _, p := range prefixes {
		if value%p.scale == 0 {
			value, symbol = value/p.scale, p.symbol
			break
		}
	}
	return fmt.Sprintf("%d %sΩ %s %%", value, symbol, r.Tolerance)
}

// GoString renders the resistor as Resistor(<value>, <tolerance>).
func (r Resistor) GoString() string {
	return fmt.Sprintf("Resistor(%d, %s)", r.Value, r.Tolerance)
}

// Tolerance is a percentage that remembers whether it was given as a whole
// number, so that 3 and 3.0 are displayed the way they were written.
type Tolerance struct {
	percent float64
	whole   bool
}

// Percent returns a tolerance of p percent. It is displayed with at least one
// fractional digit.
func Percent(p float64) Tolerance {
	return Tolerance{percent: p}
}

// WholePercent returns a tolerance of p percent displayed without a fractional part.
func WholePercent(p int) Tolerance {
	return Tolerance{percent: float64(p), whole: true}
}

// Float64 returns the tolerance in percent.
func (t Tolerance) Float64() float64 {
	return t.percent
}

// Equal reports whether t and other are equal within a relative difference of 1e-9.
func (t Tolerance) Equal(other Tolerance) bool {
	if t.percent == other.percent {
		return true
	}
	diff := math.Abs(t.percent - other.percent)
	return diff <= relTolerance*math.Max(math.Abs(t.percent), math.Abs(other.percent))
}

// String renders the tolerance as a plain number, switching to exponent
// notation below 1e-4 and from 1e16 on.
func (t Tolerance) String() string {
	if t.whole {
		return strconv.FormatFloat(t.percent, 'f', 0, 64)
	}
	if math.IsInf(t.percent, 0) || math.IsNaN(t.percent) {
		return strconv.FormatFloat(t.percent, 'f', -1, 64)
	}
	if exp := decimalExponent(t.percent); exp < -4 || exp >= 16 {
		return strconv.FormatFloat(t.percent, 'e', -1, 64)
	}
	s := strconv.FormatFloat(t.percent, 'f', -1, 64)
	if strings.ContainsRune(s, '.') {
		return s
	}
	return s + ".0"
}

// decimalExponent returns the power of ten of the leading digit of f.
func decimalExponent(f float64) int {
	s := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(s[strings.IndexByte(s, 'e')+1:])
	return exp
}

// Decode reads the bands of a resistor, first band first.
//
// Example:
//
//	r, _ := Decode(colorcode.Brown, colorcode.Black, colorcode.Brown, colorcode.Brown)
//	fmt.Println(r) // 100 Ω 1.0 %
func Decode(bands ...colorcode.Color) (Resistor, error) {
	n := len(bands)
	if n < MinBands || n > MaxBands {
		return Resistor{}, &InvalidBandCountError{Count: n}
	}

	tolerance, err := colorcode.Tolerance(bands[n-1])
	if err != nil {
		return Resistor{}, &BandError{Position: n - 1, Err: err}
	}
	if !bands[n-2].IsValid() {
		return Resistor{}, &BandError{Position: n - 2, Err: &colorcode.UnsupportedRoleError{Color: bands[n-2], Role: colorcode.RoleMultiplier}}
	}
	exponent := colorcode.MultiplierExponent(bands[n-2])

	var figures int64
	for i, c := range bands[:n-2] {
		figure, err := colorcode.Figure(c)
		if err != nil {
			return Resistor{}, &BandError{Position: i, Err: err}
		}
		figures = figures*10 + int64(figure)
	}

	return New(scale(figures, exponent), Percent(tolerance)), nil
}

// DecodeNames parses the color names and decodes them like Decode.
func DecodeNames(names ...string) (Resistor, error) {
	bands, err := colorcode.ParseColors(names)
	if err != nil {
		return Resistor{}, err
	}
	return Decode(bands...)
}

// scale multiplies v by 10^exponent. Negative exponents round to the nearest
// ohm, halves rounding up.
func scale(v int64, exponent int) int64 {
	if exponent >= 0 {
		return v * pow10(exponent)
	}
	d := pow10(-exponent)
	return (v + d/2) / d
}

func pow10(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
