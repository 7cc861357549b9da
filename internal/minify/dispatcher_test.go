package minify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssmin/internal/compat"
	"github.com/yacobolo/cssmin/internal/cssast"
)

func modernTargets() compat.Targets {
	return compat.Targets{compat.Chrome: compat.NewVersion(120, 0, 0)}
}

func px(n float64) cssast.LengthPercentageOrAuto { return cssast.Length(n, "px") }

func TestDeclarationHandler_FoldsAcceptedProperties(t *testing.T) {
	ctx := NewHandlerContext(modernTargets())
	ctx.Context = ContextStyleRule
	d := NewDeclarationHandler()

	var dest []cssast.Property
	d.HandleProperty(cssast.NewProperty(cssast.MarginTop, px(1)), false, &dest, ctx)
	d.HandleProperty(cssast.NewProperty(cssast.MarginRight, px(2)), false, &dest, ctx)
	d.HandleProperty(cssast.NewProperty(cssast.MarginBottom, px(3)), false, &dest, ctx)
	d.HandleProperty(cssast.NewProperty(cssast.MarginLeft, px(4)), false, &dest, ctx)
	d.Finalize(&dest, &[]cssast.Property{}, ctx)

	require.Len(t, dest, 1)
	assert.Equal(t, cssast.Margin, dest[0].ID)
}

func TestDeclarationHandler_RestFallthroughForUnownedProperty(t *testing.T) {
	ctx := NewHandlerContext(modernTargets())
	d := NewDeclarationHandler()

	var dest []cssast.Property
	prop := cssast.NewProperty(cssast.Color, cssast.StringValue("red"))
	d.HandleProperty(prop, false, &dest, ctx)

	require.Len(t, dest, 1)
	assert.Equal(t, prop, dest[0])
}

func TestDeclarationHandler_ImportantNeverFoldsWithNormal(t *testing.T) {
	ctx := NewHandlerContext(modernTargets())
	ctx.Context = ContextStyleRule
	d := NewDeclarationHandler()

	var normal, important []cssast.Property
	d.HandleProperty(cssast.NewProperty(cssast.MarginTop, px(1)), false, &normal, ctx)
	d.HandleProperty(cssast.NewProperty(cssast.MarginRight, px(2)), true, &important, ctx)
	d.HandleProperty(cssast.NewProperty(cssast.MarginBottom, px(3)), true, &important, ctx)
	d.HandleProperty(cssast.NewProperty(cssast.MarginLeft, px(4)), true, &important, ctx)
	d.Finalize(&normal, &important, ctx)

	// The normal-bucket margin-top never merges into the important
	// bucket's three-sided state: normal flushes its own lone longhand,
	// important flushes its own three longhands (not a full rect, so no
	// shorthand either) — they must never combine into one declaration.
	require.Len(t, normal, 1)
	assert.Equal(t, cssast.MarginTop, normal[0].ID)
	require.Len(t, important, 3)
}

func TestDeclarationHandler_ColorFallbackStagedRegardlessOfBucket(t *testing.T) {
	ctx := NewHandlerContext(compat.Targets{compat.Safari: compat.NewVersion(13, 0, 0)})
	ctx.Context = ContextStyleRule
	d := NewDeclarationHandler()

	lab := cssast.ColorValue{Kind: cssast.ColorLab, Raw: "lab(50% 40 59.5)", RGBFallback: "rgb(200, 90, 40)"}
	var dest []cssast.Property
	d.HandleProperty(cssast.NewProperty(cssast.Color, lab), false, &dest, ctx)
	d.Finalize(&dest, &[]cssast.Property{}, ctx)

	require.Len(t, dest, 1)
	assert.Equal(t, lab, dest[0].Value)

	rules := ctx.GetSupportsRules(&cssast.StyleRule{Selectors: cssast.SelectorList{".a"}})
	require.Len(t, rules, 1)
}
