// Package colorcode provides the color table used to read resistor color bands.
// Each color can play up to three roles on a resistor: a significant figure, a
// power-of-ten multiplier and a tolerance. The package allows listing the colors,
// parsing them from their names and looking up the value of each role.
package colorcode

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Color is one of the twelve colors printed on a resistor band.
type Color int

// The colors in ascending order of their multiplier exponent, metallic colors last.
const (
	Black Color = iota
	Brown
	Red
	Orange
	Yellow
	Green
	Blue
	Violet
	Gray
	White
	Gold
	Silver
)

// names defines the lowercase name of every color, indexed by Color.
var names = [...]string{
	"black",
	"brown",
	"red",
	"orange",
	"yellow",
	"green",
	"blue",
	"violet",
	"gray",
	"white",
	"gold",
	"silver",
}

// aliases are accepted spellings that are not the canonical name of a color.
var aliases = map[string]Color{
	"grey": Gray,
}

// colorsByName is a precomputed map for looking up colors by their folded name.
var colorsByName = func() map[string]Color {
	m := make(map[string]Color, len(names)+len(aliases))
	for i, name := range names {
		m[name] = Color(i)
	}
	for alias, c := range aliases {
		m[alias] = c
	}
	return m
}()

// IsValid reports whether c is one of the twelve known colors.
func (c Color) IsValid() bool {
	return c >= Black && c <= Silver
}

// String returns the lowercase name of the color.
func (c Color) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return names[c]
}

// Colors returns all colors in order of their ordinal.
func Colors() []Color {
	colors := make([]Color, len(names))
	for i := range names {
		colors[i] = Color(i)
	}
	return colors
}

// ParseColor returns the color with the given name. Matching ignores case and
// surrounding white space, and accepts "grey" for Gray.
//
// Example:
//
//	c, _ := ParseColor("Red")  // returns Red
//	_, err := ParseColor("pink") // returns an *UnknownColorError
func ParseColor(name string) (Color, error) {
	key := cases.Fold().String(strings.TrimSpace(name))
	if c, exists := colorsByName[key]; exists {
		return c, nil
	}
	return 0, &UnknownColorError{Name: name, Position: -1}
}

// ParseColors parses every name in order. The first unknown name is reported
// together with its position.
func ParseColors(names []string) ([]Color, error) {
	colors := make([]Color, 0, len(names))
	for i, name := range names {
		c, err := ParseColor(name)
		if err != nil {
			return nil, &UnknownColorError{Name: name, Position: i}
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// UnknownColorError is returned when a name does not match any color.
type UnknownColorError struct {
	Name     string
	Position int // index in the parsed sequence, -1 for a single name
}

func (e *UnknownColorError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("unknown color %q at band %d", e.Name, e.Position+1)
	}
	return fmt.Sprintf("unknown color %q", e.Name)
}
