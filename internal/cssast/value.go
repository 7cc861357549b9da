// Package cssast is the data model the property handler / minification
// core operates on: the parsed rule tree, declaration blocks, and the
// typed property values handlers fold and rewrite.
//
// Alongside those shapes, the package holds a minimal parser adapter
// (ParseStyleSheet, parser.go) that builds the tree from CSS text and a
// minimal printer (Print, print.go) that serializes it back out.
package cssast

import (
	"fmt"
	"strings"
)

// Value is the interface every typed property value implements. It
// exists so Property.Value can hold any of the strongly-typed value
// kinds (or a raw string fallback) behind a single field.
type Value interface {
	cssValue()
	fmt.Stringer
	Equal(Value) bool
}

// LengthPercentageOrAuto is the value type shared by every side property
// in the margin/padding/inset family.
type LengthPercentageOrAuto struct {
	Auto   bool
	Number float64
	Unit   string // "px", "em", "%", ... ; empty only when Auto
}

func Auto() LengthPercentageOrAuto { return LengthPercentageOrAuto{Auto: true} }

func Length(number float64, unit string) LengthPercentageOrAuto {
	return LengthPercentageOrAuto{Number: number, Unit: unit}
}

func (LengthPercentageOrAuto) cssValue() {}

func (v LengthPercentageOrAuto) String() string {
	if v.Auto {
		return "auto"
	}
	return fmt.Sprintf("%g%s", v.Number, v.Unit)
}

func (v LengthPercentageOrAuto) Equal(other Value) bool {
	o, ok := other.(LengthPercentageOrAuto)
	return ok && v == o
}

// Rect is the four-sided shorthand value (margin, padding, inset),
// ordered top/right/bottom/left to match CSS shorthand serialization.
type Rect struct {
	Top, Right, Bottom, Left LengthPercentageOrAuto
}

func (Rect) cssValue() {}

func (v Rect) String() string {
	return fmt.Sprintf("%s %s %s %s", v.Top, v.Right, v.Bottom, v.Left)
}

func (v Rect) Equal(other Value) bool {
	o, ok := other.(Rect)
	return ok && v == o
}

// Size2D is the two-axis shorthand value (margin-block, margin-inline,
// and their padding/inset/scroll- counterparts): start then end.
type Size2D struct {
	Start, End LengthPercentageOrAuto
}

func (Size2D) cssValue() {}

func (v Size2D) String() string {
	return fmt.Sprintf("%s %s", v.Start, v.End)
}

func (v Size2D) Equal(other Value) bool {
	o, ok := other.(Size2D)
	return ok && v == o
}

// StringValue is a raw, already-serialized value used by property
// families whose shorthand algebra only needs presence/absence and
// equality, not a fully typed representation (e.g. font-family,
// background-repeat, transition-timing-function).
type StringValue string

func (StringValue) cssValue() {}

func (v StringValue) String() string { return string(v) }

func (v StringValue) Equal(other Value) bool {
	o, ok := other.(StringValue)
	return ok && v == o
}

// ColorKind distinguishes color functions the fallback producer knows
// how to down-level.
type ColorKind int

const (
	ColorRGB ColorKind = iota
	ColorLab
	ColorLch
	ColorOklab
	ColorOklch
	ColorMixFn
)

// ColorValue carries both the author's primary color and, when Kind is
// not ColorRGB, an sRGB approximation a fallback can fall back to.
type ColorValue struct {
	Kind        ColorKind
	Raw         string // the primary value as written, e.g. "lab(50% 40 59.5)"
	RGBFallback string // e.g. "rgb(177, 92, 70)"
}

func (ColorValue) cssValue() {}

func (v ColorValue) String() string { return v.Raw }

func (v ColorValue) Equal(other Value) bool {
	o, ok := other.(ColorValue)
	return ok && v == o
}

// GradientStop is one color stop inside a gradient function. Positions
// holds zero, one, or two offsets as written: two means the author used
// double-position syntax (e.g. "red 10% 20%"), a shorthand for two
// adjacent stops of the same color.
type GradientStop struct {
	Color     string
	Positions []string
}

func (s GradientStop) String() string {
	if len(s.Positions) == 0 {
		return s.Color
	}
	return s.Color + " " + strings.Join(s.Positions, " ")
}

func (s GradientStop) equal(other GradientStop) bool {
	return s.Color == other.Color && slicesEqual(s.Positions, other.Positions)
}

// HasDoublePosition reports whether this stop uses double-position syntax.
func (s GradientStop) HasDoublePosition() bool { return len(s.Positions) == 2 }

// Gradient is a linear-gradient/radial-gradient/conic-gradient (or
// repeating- variant) function value. The handlers route it by
// PropertyID like any other value; the fallback producer is the only
// place that looks inside it, to down-level double-position stops for
// targets that don't support that syntax.
type Gradient struct {
	Func  string // e.g. "linear-gradient", "repeating-radial-gradient"
	Stops []GradientStop
}

func (Gradient) cssValue() {}

func (v Gradient) String() string {
	parts := make([]string, len(v.Stops))
	for i, s := range v.Stops {
		parts[i] = s.String()
	}
	return v.Func + "(" + strings.Join(parts, ", ") + ")"
}

func (v Gradient) Equal(other Value) bool {
	o, ok := other.(Gradient)
	if !ok || v.Func != o.Func || len(v.Stops) != len(o.Stops) {
		return false
	}
	for i := range v.Stops {
		if !v.Stops[i].equal(o.Stops[i]) {
			return false
		}
	}
	return true
}

// HasDoublePositionStop reports whether any stop uses double-position
// syntax, the feature compat.DoublePositionGradients gates.
func (v Gradient) HasDoublePositionStop() bool {
	for _, s := range v.Stops {
		if s.HasDoublePosition() {
			return true
		}
	}
	return false
}

// ExpandDoublePositions returns a Gradient with every double-position
// stop split into two single-position stops of the same color, the
// standard fallback for engines that don't support double-position
// syntax.
func (v Gradient) ExpandDoublePositions() Gradient {
	expanded := make([]GradientStop, 0, len(v.Stops))
	for _, s := range v.Stops {
		if !s.HasDoublePosition() {
			expanded = append(expanded, s)
			continue
		}
		expanded = append(expanded,
			GradientStop{Color: s.Color, Positions: []string{s.Positions[0]}},
			GradientStop{Color: s.Color, Positions: []string{s.Positions[1]}},
		)
	}
	return Gradient{Func: v.Func, Stops: expanded}
}

func slicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
