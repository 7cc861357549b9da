package minify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssmin/internal/cssast"
)

func styleRule(selectors cssast.SelectorList, decls ...cssast.Property) *cssast.StyleRule {
	return &cssast.StyleRule{
		Selectors:    selectors,
		Declarations: cssast.DeclarationBlock{Declarations: decls},
	}
}

func TestMinifyRules_SideOutputsSpliceAfterOriginatingRule(t *testing.T) {
	ctx := NewHandlerContext(legacyTargets())
	rule := styleRule(cssast.SelectorList{".a"},
		cssast.NewProperty(cssast.MarginInlineStart, px(1)),
		cssast.NewProperty(cssast.MarginInlineEnd, px(2)),
	)

	out := MinifyRules(cssast.CssRuleList{rule}, ctx, RuleMinifyOptions{})

	require.Len(t, out, 3)
	_, isStyle := out[0].(*cssast.StyleRule)
	assert.True(t, isStyle)

	ltr, ok := out[1].(*cssast.StyleRule)
	require.True(t, ok)
	assert.Equal(t, cssast.SelectorList{".a:dir(ltr)"}, ltr.Selectors)

	rtl, ok := out[2].(*cssast.StyleRule)
	require.True(t, ok)
	assert.Equal(t, cssast.SelectorList{".a:dir(rtl)"}, rtl.Selectors)
}

func TestMinifyRules_RecursesIntoMedia(t *testing.T) {
	ctx := NewHandlerContext(modernTargets())
	inner := styleRule(cssast.SelectorList{".a"},
		cssast.NewProperty(cssast.MarginTop, px(1)),
		cssast.NewProperty(cssast.MarginRight, px(1)),
		cssast.NewProperty(cssast.MarginBottom, px(1)),
		cssast.NewProperty(cssast.MarginLeft, px(1)),
	)
	media := &cssast.MediaRule{Query: "(min-width: 100px)", Rules: cssast.CssRuleList{inner}}

	out := MinifyRules(cssast.CssRuleList{media}, ctx, RuleMinifyOptions{})

	require.Len(t, out, 1)
	m, ok := out[0].(*cssast.MediaRule)
	require.True(t, ok)
	require.Len(t, m.Rules, 1)
	sr := m.Rules[0].(*cssast.StyleRule)
	require.Len(t, sr.Declarations.Declarations, 1)
	assert.Equal(t, cssast.Margin, sr.Declarations.Declarations[0].ID)
}

func TestMinifyRules_UnusedSymbolsTreeShaking(t *testing.T) {
	ctx := NewHandlerContext(modernTargets())
	used := styleRule(cssast.SelectorList{".kept"}, cssast.NewProperty(cssast.Color, cssast.StringValue("red")))
	unused := styleRule(cssast.SelectorList{".gone"}, cssast.NewProperty(cssast.Color, cssast.StringValue("blue")))

	out := MinifyRules(cssast.CssRuleList{used, unused}, ctx, RuleMinifyOptions{
		UnusedSymbols: map[string]bool{"gone": true},
	})

	require.Len(t, out, 1)
	sr := out[0].(*cssast.StyleRule)
	assert.Equal(t, cssast.SelectorList{".kept"}, sr.Selectors)
}

func TestMinifyRules_CustomMediaInlining(t *testing.T) {
	ctx := NewHandlerContext(modernTargets())
	def := &cssast.CustomMediaRule{Name: "narrow", Query: "max-width: 30em"}
	media := &cssast.MediaRule{Query: "(--narrow)", Rules: cssast.CssRuleList{}}

	out := MinifyRules(cssast.CssRuleList{def, media}, ctx, RuleMinifyOptions{
		InlineCustomMedia:  true,
		CustomMediaQueries: map[string]string{"narrow": "max-width: 30em"},
	})

	require.Len(t, out, 1)
	m, ok := out[0].(*cssast.MediaRule)
	require.True(t, ok)
	assert.Equal(t, "(max-width: 30em)", m.Query)
}

func TestMinifyRules_KeyframesSuppressesLogicalSideOutputs(t *testing.T) {
	ctx := NewHandlerContext(legacyTargets())
	keyframes := &cssast.KeyframesRule{
		Name: "slide",
		Keyframes: []cssast.KeyframeBlock{
			{
				Selectors: []string{"0%"},
				Declarations: cssast.DeclarationBlock{Declarations: []cssast.Property{
					cssast.NewProperty(cssast.MarginInlineStart, px(1)),
					cssast.NewProperty(cssast.MarginInlineEnd, px(2)),
				}},
			},
		},
	}

	out := MinifyRules(cssast.CssRuleList{keyframes}, ctx, RuleMinifyOptions{})

	require.Len(t, out, 1)
	// No sibling rules are produced for a keyframes animation: there's
	// nowhere to hang a :dir() side rule inside @keyframes.
	assert.Empty(t, ctx.GetLogicalRules(&cssast.StyleRule{Selectors: cssast.SelectorList{".never"}}))
}
