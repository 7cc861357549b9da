package minify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssmin/internal/compat"
	"github.com/yacobolo/cssmin/internal/cssast"
)

func legacyTargets() compat.Targets {
	return compat.Targets{compat.Chrome: compat.NewVersion(60, 0, 0)}
}

func TestHandlerContext_LogicalRules(t *testing.T) {
	rule := &cssast.StyleRule{Selectors: cssast.SelectorList{".a", ".b"}}

	t.Run("no buffer produces no rule", func(t *testing.T) {
		ctx := NewHandlerContext(legacyTargets())
		assert.Empty(t, ctx.GetLogicalRules(rule))
	})

	t.Run("harvest drains and appends :dir() to every selector", func(t *testing.T) {
		ctx := NewHandlerContext(legacyTargets())
		ctx.AddLogicalRule(cssast.NewProperty(cssast.MarginLeft, cssast.Length(1, "px")), cssast.NewProperty(cssast.MarginRight, cssast.Length(1, "px")))

		rules := ctx.GetLogicalRules(rule)
		require.Len(t, rules, 2)

		ltr := rules[0].(*cssast.StyleRule)
		assert.Equal(t, cssast.SelectorList{".a:dir(ltr)", ".b:dir(ltr)"}, ltr.Selectors)
		assert.Equal(t, []cssast.Property{cssast.NewProperty(cssast.MarginLeft, cssast.Length(1, "px"))}, ltr.Declarations.Declarations)

		rtl := rules[1].(*cssast.StyleRule)
		assert.Equal(t, cssast.SelectorList{".a:dir(rtl)", ".b:dir(rtl)"}, rtl.Selectors)

		// Harvest is destructive.
		assert.Empty(t, ctx.GetLogicalRules(rule))
	})
}

func TestHandlerContext_ConditionalProperty(t *testing.T) {
	rule := &cssast.StyleRule{Selectors: cssast.SelectorList{".a"}}
	condA := cssast.Feature(cssast.Color, "lab(0% 0 0)")
	condB := cssast.Feature(cssast.Background, "color-mix(in lab, red, blue)")

	t.Run("gated off outside StyleRule context", func(t *testing.T) {
		ctx := NewHandlerContext(legacyTargets())
		ctx.AddConditionalProperty(condA, cssast.NewProperty(cssast.Color, cssast.StringValue("red")))
		assert.Empty(t, ctx.GetSupportsRules(rule))
	})

	t.Run("merges declarations under an equal condition", func(t *testing.T) {
		ctx := NewHandlerContext(legacyTargets())
		ctx.Context = ContextStyleRule
		ctx.AddConditionalProperty(condA, cssast.NewProperty(cssast.Color, cssast.StringValue("red")))
		ctx.AddConditionalProperty(condB, cssast.NewProperty(cssast.Background, cssast.StringValue("blue")))
		ctx.AddConditionalProperty(condA, cssast.NewProperty(cssast.Color, cssast.StringValue("green")))

		rules := ctx.GetSupportsRules(rule)
		require.Len(t, rules, 2)

		first := rules[0].(*cssast.SupportsRule)
		assert.True(t, first.Condition.Equal(condA))
		assert.Len(t, first.Rules[0].(*cssast.StyleRule).Declarations.Declarations, 2)

		assert.Empty(t, ctx.GetSupportsRules(rule))
	})

	t.Run("important declarations route to the important list", func(t *testing.T) {
		ctx := NewHandlerContext(legacyTargets())
		ctx.Context = ContextStyleRule
		ctx.IsImportant = true
		ctx.AddConditionalProperty(condA, cssast.NewProperty(cssast.Color, cssast.StringValue("red")))

		rules := ctx.GetSupportsRules(rule)
		require.Len(t, rules, 1)
		decl := rules[0].(*cssast.SupportsRule).Rules[0].(*cssast.StyleRule).Declarations
		assert.Empty(t, decl.Declarations)
		assert.Len(t, decl.ImportantDeclarations, 1)
	})
}

func TestHandlerContext_IsSupported(t *testing.T) {
	t.Run("style attribute forces modern output", func(t *testing.T) {
		ctx := NewHandlerContext(legacyTargets())
		ctx.Context = ContextStyleAttribute
		assert.True(t, ctx.IsSupported(compat.LogicalMargin))
	})

	t.Run("style rule defers to the oracle", func(t *testing.T) {
		ctx := NewHandlerContext(legacyTargets())
		ctx.Context = ContextStyleRule
		assert.False(t, ctx.IsSupported(compat.LogicalMargin))
	})
}
