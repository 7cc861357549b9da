package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssmin/internal/compat"
	"github.com/yacobolo/cssmin/internal/cssast"
	"github.com/yacobolo/cssmin/internal/minify"
)

func px(n float64) cssast.LengthPercentageOrAuto { return cssast.Length(n, "px") }

func runHandler(h Handler, ctx *minify.HandlerContext, props ...cssast.Property) []cssast.Property {
	var dest []cssast.Property
	for _, p := range props {
		if !h.Accumulate(p, &dest, ctx) {
			dest = append(dest, p)
		}
	}
	h.Finalize(&dest, ctx)
	return dest
}

func modernTargets() compat.Targets {
	return compat.Targets{compat.Chrome: compat.NewVersion(120, 0, 0)}
}

func legacyTargets() compat.Targets {
	return compat.Targets{compat.Chrome: compat.NewVersion(40, 0, 0)}
}

// Fixture 1: margin folding under modern targets.
func TestSideHandler_MarginFolding(t *testing.T) {
	ctx := minify.NewHandlerContext(modernTargets())
	ctx.Context = minify.ContextStyleRule
	h := NewSideHandler(MarginFamily)

	out := runHandler(h, ctx,
		cssast.NewProperty(cssast.MarginTop, px(1)),
		cssast.NewProperty(cssast.MarginRight, px(2)),
		cssast.NewProperty(cssast.MarginBottom, px(3)),
		cssast.NewProperty(cssast.MarginLeft, px(4)),
	)

	require.Len(t, out, 1)
	assert.Equal(t, cssast.NewProperty(cssast.Margin, cssast.Rect{Top: px(1), Right: px(2), Bottom: px(3), Left: px(4)}), out[0])
}

// Fixture 2: logical inline lowering with unequal values defers to :dir() rules.
func TestSideHandler_LogicalInlineLowering_Unequal(t *testing.T) {
	ctx := minify.NewHandlerContext(legacyTargets())
	ctx.Context = minify.ContextStyleRule
	h := NewSideHandler(MarginFamily)

	out := runHandler(h, ctx,
		cssast.NewProperty(cssast.MarginInlineStart, px(1)),
		cssast.NewProperty(cssast.MarginInlineEnd, px(2)),
	)

	assert.Empty(t, out)

	rule := &cssast.StyleRule{Selectors: cssast.SelectorList{"selector"}}
	rules := ctx.GetLogicalRules(rule)
	require.Len(t, rules, 2)

	ltr := rules[0].(*cssast.StyleRule)
	assert.Equal(t, cssast.SelectorList{"selector:dir(ltr)"}, ltr.Selectors)
	assert.Equal(t, []cssast.Property{
		cssast.NewProperty(cssast.MarginLeft, px(1)),
		cssast.NewProperty(cssast.MarginRight, px(2)),
	}, ltr.Declarations.Declarations)

	rtl := rules[1].(*cssast.StyleRule)
	assert.Equal(t, cssast.SelectorList{"selector:dir(rtl)"}, rtl.Selectors)
	assert.Equal(t, []cssast.Property{
		cssast.NewProperty(cssast.MarginRight, px(1)),
		cssast.NewProperty(cssast.MarginLeft, px(2)),
	}, rtl.Declarations.Declarations)
}

// Fixture 3: logical inline lowering with equal values folds inline, no :dir() rules.
func TestSideHandler_LogicalInlineLowering_Equal(t *testing.T) {
	ctx := minify.NewHandlerContext(legacyTargets())
	ctx.Context = minify.ContextStyleRule
	h := NewSideHandler(MarginFamily)

	out := runHandler(h, ctx,
		cssast.NewProperty(cssast.MarginInlineStart, px(1)),
		cssast.NewProperty(cssast.MarginInlineEnd, px(1)),
	)

	assert.Equal(t, []cssast.Property{
		cssast.NewProperty(cssast.MarginLeft, px(1)),
		cssast.NewProperty(cssast.MarginRight, px(1)),
	}, out)

	rule := &cssast.StyleRule{Selectors: cssast.SelectorList{"selector"}}
	assert.Empty(t, ctx.GetLogicalRules(rule))
}

// Fixture 4: a category transition forces a flush, preserving input order.
func TestSideHandler_CategoryTransitionFlush(t *testing.T) {
	ctx := minify.NewHandlerContext(modernTargets())
	ctx.Context = minify.ContextStyleRule
	h := NewSideHandler(MarginFamily)

	out := runHandler(h, ctx,
		cssast.NewProperty(cssast.MarginTop, px(1)),
		cssast.NewProperty(cssast.MarginBlockStart, px(2)),
		cssast.NewProperty(cssast.MarginBottom, px(3)),
	)

	assert.Equal(t, []cssast.Property{
		cssast.NewProperty(cssast.MarginTop, px(1)),
		cssast.NewProperty(cssast.MarginBlockStart, px(2)),
		cssast.NewProperty(cssast.MarginBottom, px(3)),
	}, out)
}

// Fixture 5: inset's four-sided shorthand is itself gated behind logical support.
func TestSideHandler_InsetLegacyLonghands(t *testing.T) {
	ctx := minify.NewHandlerContext(legacyTargets())
	ctx.Context = minify.ContextStyleRule
	h := NewSideHandler(InsetFamily)

	out := runHandler(h, ctx,
		cssast.NewProperty(cssast.Top, px(1)),
		cssast.NewProperty(cssast.Right, px(2)),
		cssast.NewProperty(cssast.Bottom, px(3)),
		cssast.NewProperty(cssast.Left, px(4)),
	)

	assert.Equal(t, []cssast.Property{
		cssast.NewProperty(cssast.Top, px(1)),
		cssast.NewProperty(cssast.Bottom, px(3)),
		cssast.NewProperty(cssast.Left, px(4)),
		cssast.NewProperty(cssast.Right, px(2)),
	}, out)
}

func TestSideHandler_InsetModernShorthand(t *testing.T) {
	ctx := minify.NewHandlerContext(modernTargets())
	ctx.Context = minify.ContextStyleRule
	h := NewSideHandler(InsetFamily)

	out := runHandler(h, ctx,
		cssast.NewProperty(cssast.Top, px(1)),
		cssast.NewProperty(cssast.Right, px(2)),
		cssast.NewProperty(cssast.Bottom, px(3)),
		cssast.NewProperty(cssast.Left, px(4)),
	)

	require.Len(t, out, 1)
	assert.Equal(t, cssast.Inset, out[0].ID)
}

func TestSideHandler_UnparsedPassesThroughByPropertyFamily(t *testing.T) {
	ctx := minify.NewHandlerContext(modernTargets())
	ctx.Context = minify.ContextStyleRule
	h := NewSideHandler(MarginFamily)

	var dest []cssast.Property
	accepted := h.Accumulate(cssast.NewUnparsed(cssast.MarginTop, "var(--x)"), &dest, ctx)
	h.Finalize(&dest, ctx)

	assert.True(t, accepted)
	require.Len(t, dest, 1)
	assert.Equal(t, cssast.NewUnparsed(cssast.MarginTop, "var(--x)"), dest[0])
}

func TestSideHandler_RejectsUnrelatedProperty(t *testing.T) {
	ctx := minify.NewHandlerContext(modernTargets())
	h := NewSideHandler(MarginFamily)
	var dest []cssast.Property
	assert.False(t, h.Accumulate(cssast.NewProperty(cssast.BackgroundColor, cssast.StringValue("red")), &dest, ctx))
}
