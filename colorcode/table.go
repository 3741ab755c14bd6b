package colorcode

import "fmt"

// Role is the meaning a color band has on a resistor.
type Role int

// The roles a band can play.
const (
	RoleFigure     Role = iota + 1 // RoleFigure is a significant figure band.
	RoleMultiplier                 // RoleMultiplier is the power-of-ten band.
	RoleTolerance                  // RoleTolerance is the tolerance band.
)

func (r Role) String() string {
	switch r {
	case RoleFigure:
		return "figure"
	case RoleMultiplier:
		return "multiplier"
	case RoleTolerance:
		return "tolerance"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// entry holds the roles of one color. The figure and the tolerance are only
// meaningful when the matching flag is set.
type entry struct {
	figure       int
	hasFigure    bool
	exponent     int
	tolerance    float64
	hasTolerance bool
}

// table maps every color to its roles: figure, multiplier (10^x), tolerance (%).
var table = [...]entry{
	Black:  {figure: 0, hasFigure: true, exponent: 0},
	Brown:  {figure: 1, hasFigure: true, exponent: 1, tolerance: 1.0, hasTolerance: true},
	Red:    {figure: 2, hasFigure: true, exponent: 2, tolerance: 2.0, hasTolerance: true},
	Orange: {figure: 3, hasFigure: true, exponent: 3},
	Yellow: {figure: 4, hasFigure: true, exponent: 4},
	Green:  {figure: 5, hasFigure: true, exponent: 5, tolerance: 0.5, hasTolerance: true},
	Blue:   {figure: 6, hasFigure: true, exponent: 6, tolerance: 0.25, hasTolerance: true},
	Violet: {figure: 7, hasFigure: true, exponent: 7, tolerance: 0.1, hasTolerance: true},
	Gray:   {figure: 8, hasFigure: true, exponent: 8, tolerance: 0.05, hasTolerance: true},
	White:  {figure: 9, hasFigure: true, exponent: 9},
	Gold:   {exponent: -1, tolerance: 5.0, hasTolerance: true},
	Silver: {exponent: -2, tolerance: 10.0, hasTolerance: true},
}

// Figure returns the significant figure the color stands for.
// Gold and silver have none and yield an *UnsupportedRoleError.
func Figure(c Color) (int, error) {
	if !c.IsValid() || !table[c].hasFigure {
		return 0, &UnsupportedRoleError{Color: c, Role: RoleFigure}
	}
	return table[c].figure, nil
}

// MultiplierExponent returns the power of ten the color stands for as a
// multiplier band. Every color has one; it panics if c is not a valid color.
func MultiplierExponent(c Color) int {
	if !c.IsValid() {
		panic(fmt.Sprintf("colorcode: invalid color %d", int(c)))
	}
	return table[c].exponent
}

// Tolerance returns the tolerance in percent the color stands for.
// Black, orange, yellow and white have none and yield an *UnsupportedRoleError.
func Tolerance(c Color) (float64, error) {
	if !c.IsValid() || !table[c].hasTolerance {
		return 0, &UnsupportedRoleError{Color: c, Role: RoleTolerance}
	}
	return table[c].tolerance, nil
}

// UnsupportedRoleError is returned when a color is used in a role it does not define.
type UnsupportedRoleError struct {
	Color Color
	Role  Role
}

func (e *UnsupportedRoleError) Error() string {
	return fmt.Sprintf("the color %s does not describe a %s", e.Color, e.Role)
}
