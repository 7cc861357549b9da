// Package fallback is the Value Fallback Producer: for a typed value
// that uses a feature some target doesn't support, it yields a
// sequence of (condition, replacement-value) pairs that together cover
// the gap. The producer is pure and idempotent — feeding its own
// output back in yields no further fallbacks.
package fallback

import (
	"github.com/yacobolo/cssmin/internal/cssast"
	"github.com/yacobolo/cssmin/internal/compat"
)

// Fallback is one (condition, replacement) pair: the condition names
// the feature the *primary*, unlowered value needs; the replacement is
// what older engines failing that condition should use instead.
type Fallback struct {
	Condition cssast.SupportsCondition
	Value     cssast.Value
}

var colorFeature = map[cssast.ColorKind]compat.Feature{
	cssast.ColorLab:   compat.ColorFunctionLab,
	cssast.ColorLch:   compat.ColorFunctionLch,
	cssast.ColorOklab: compat.ColorFunctionOklab,
	cssast.ColorOklch: compat.ColorFunctionOklch,
}

// GetFallbacks returns the fallbacks needed for value under targets.
// ColorValue and Gradient are handled; every other value kind has no
// known feature gap and yields nothing. Calling GetFallbacks again on
// a fallback's own Value always returns nil, satisfying idempotence:
// fallback values are ColorValue{Kind: ColorRGB} or a Gradient with no
// double-position stops, neither of which has a further gap to cover.
func GetFallbacks(id cssast.PropertyID, value cssast.Value, targets compat.Targets) []Fallback {
	switch v := value.(type) {
	case cssast.ColorValue:
		return colorFallbacks(id, v, targets)
	case cssast.Gradient:
		return gradientFallbacks(id, v, targets)
	default:
		return nil
	}
}

// colorFallbacks keys every condition on the canonical cssast.Color id,
// never on the originating property's own id: two declarations that
// carry the identical down-level-needing color value (e.g. `color:
// lab(...)` and `background: lab(...)`) must merge into one `@supports`
// sibling regardless of which property carried the value, since
// SupportsCondition.Equal — and so AddConditionalProperty's merge — is
// a structural comparison that includes the atom's property id.
func colorFallbacks(_ cssast.PropertyID, color cssast.ColorValue, targets compat.Targets) []Fallback {
	if color.Kind == cssast.ColorMixFn {
		if compat.IsCompatible(compat.ColorMix, targets) {
			return nil
		}
		if color.RGBFallback == "" {
			return nil
		}
		return []Fallback{{
			Condition: cssast.Feature(cssast.Color, color.Raw),
			Value:     cssast.ColorValue{Kind: cssast.ColorRGB, Raw: color.RGBFallback},
		}}
	}

	feature, known := colorFeature[color.Kind]
	if !known || compat.IsCompatible(feature, targets) {
		return nil
	}
	if color.RGBFallback == "" {
		return nil
	}

	return []Fallback{{
		Condition: cssast.Feature(cssast.Color, color.Raw),
		Value:     cssast.ColorValue{Kind: cssast.ColorRGB, Raw: color.RGBFallback},
	}}
}

// gradientFallbacks down-levels double-position stops (e.g.
// "red 10% 20%") into pairs of single-position stops for targets that
// don't support compat.DoublePositionGradients. Keyed on the canonical
// cssast.BackgroundImage id (gradients overwhelmingly arrive through
// that property) for the same cross-property merge reason
// colorFallbacks keys on cssast.Color rather than the originating id.
func gradientFallbacks(_ cssast.PropertyID, gradient cssast.Gradient, targets compat.Targets) []Fallback {
	if !gradient.HasDoublePositionStop() || compat.IsCompatible(compat.DoublePositionGradients, targets) {
		return nil
	}

	return []Fallback{{
		Condition: cssast.Feature(cssast.BackgroundImage, gradient.String()),
		Value:     gradient.ExpandDoublePositions(),
	}}
}
