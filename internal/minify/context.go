// Package minify is the rule-level minifier and property handler
// dispatch: it walks a parsed rule tree, folds and down-levels each
// declaration block through the handler family, and splices the
// Property Handler Context's side-outputs (feature-query rules and
// :dir()-scoped rules) back in as siblings of the originating rule.
package minify

import (
	"github.com/yacobolo/cssmin/internal/compat"
	"github.com/yacobolo/cssmin/internal/cssast"
	"github.com/yacobolo/cssmin/internal/fallback"
)

// DeclarationContext gates which side-outputs a Property Handler
// Context permits: logical side-outputs are suppressed in
// StyleAttribute (there's nowhere to hang an extra style rule), and
// conditional fallbacks are suppressed outside StyleRule/StyleAttribute.
type DeclarationContext int

const (
	ContextNone DeclarationContext = iota
	ContextStyleRule
	ContextKeyframes
	ContextStyleAttribute
)

// supportsEntry is one accumulated (condition, declarations) bucket
// inside the context's supports buffer, keyed by condition equality.
type supportsEntry struct {
	condition             cssast.SupportsCondition
	declarations          []cssast.Property
	importantDeclarations []cssast.Property
}

// HandlerContext is the scratchpad scoped to one declaration block: it
// collects logical-rule side-outputs (LTR/RTL pairs) and feature-query
// side-outputs grouped by condition. It is created once per top-level
// minify invocation and reused, rule to rule, across the walk; its
// buffers are drained ("harvested") immediately after each style rule
// is processed.
type HandlerContext struct {
	Targets     compat.Targets
	IsImportant bool
	Context     DeclarationContext

	supports []supportsEntry
	ltr      []cssast.Property
	rtl      []cssast.Property
}

// NewHandlerContext creates a context for one top-level minify call.
func NewHandlerContext(targets compat.Targets) *HandlerContext {
	return &HandlerContext{Targets: targets, Context: ContextNone}
}

// IsSupported answers whether feature can be emitted directly given the
// context's targets. StyleAttribute always answers true: its fallbacks
// would need extra style rules to host LTR/RTL variants, which a style
// attribute cannot host, so handlers are forced to their modern form.
func (c *HandlerContext) IsSupported(feature compat.Feature) bool {
	if c.Context == ContextStyleAttribute {
		return true
	}
	return compat.IsCompatible(feature, c.Targets)
}

// AddLogicalRule appends an LTR/RTL property pair to the side-output
// buffers, to be materialized as :dir(ltr)/:dir(rtl) style rules once
// GetLogicalRules drains them.
func (c *HandlerContext) AddLogicalRule(ltr, rtl cssast.Property) {
	c.ltr = append(c.ltr, ltr)
	c.rtl = append(c.rtl, rtl)
}

// GetLogicalRules drains the LTR/RTL buffers, producing up to two
// synthesized style rules whose selectors are styleRule's selectors
// with :dir(ltr)/:dir(rtl) appended. No rule is produced for an empty
// buffer. Harvest is destructive: the buffers are empty afterward.
func (c *HandlerContext) GetLogicalRules(styleRule *cssast.StyleRule) []cssast.CssRule {
	var out []cssast.CssRule

	if len(c.ltr) > 0 {
		out = append(out, &cssast.StyleRule{
			Selectors: styleRule.Selectors.WithPseudoClass("dir(ltr)"),
			Declarations: cssast.DeclarationBlock{
				Declarations: c.ltr,
			},
			Loc: styleRule.Loc,
		})
		c.ltr = nil
	}

	if len(c.rtl) > 0 {
		out = append(out, &cssast.StyleRule{
			Selectors: styleRule.Selectors.WithPseudoClass("dir(rtl)"),
			Declarations: cssast.DeclarationBlock{
				Declarations: c.rtl,
			},
			Loc: styleRule.Loc,
		})
		c.rtl = nil
	}

	return out
}

// AddConditionalProperty stages property inside the supports buffer
// under condition, merging into an existing entry with an equal
// condition or creating a new one. It is a no-op outside StyleRule
// context — keyframes and the top level have nowhere to hang an
// @supports sibling.
func (c *HandlerContext) AddConditionalProperty(condition cssast.SupportsCondition, property cssast.Property) {
	if c.Context != ContextStyleRule {
		return
	}

	for i := range c.supports {
		if c.supports[i].condition.Equal(condition) {
			if c.IsImportant {
				c.supports[i].importantDeclarations = append(c.supports[i].importantDeclarations, property)
			} else {
				c.supports[i].declarations = append(c.supports[i].declarations, property)
			}
			return
		}
	}

	entry := supportsEntry{condition: condition}
	if c.IsImportant {
		entry.importantDeclarations = append(entry.importantDeclarations, property)
	} else {
		entry.declarations = append(entry.declarations, property)
	}
	c.supports = append(c.supports, entry)
}

// AddUnparsedFallbacks stages every fallback the Value Fallback
// Producer yields for a property's value. It is gated to StyleRule and
// StyleAttribute contexts, matching the feature-query gating rule for
// conditional fallbacks, and is a no-op when no targets are configured.
func (c *HandlerContext) AddUnparsedFallbacks(id cssast.PropertyID, value cssast.Value) {
	if c.Context != ContextStyleRule && c.Context != ContextStyleAttribute {
		return
	}
	if c.Targets == nil {
		return
	}
	for _, pair := range fallback.GetFallbacks(id, value, c.Targets) {
		c.AddConditionalProperty(pair.Condition, cssast.NewProperty(id, pair.Value))
	}
}

// GetSupportsRules drains the supports buffer, synthesizing one
// `@supports (...)` rule per entry whose body is a single style rule
// cloned from styleRule (same selectors, same location) carrying only
// that entry's declarations. Harvest is destructive.
func (c *HandlerContext) GetSupportsRules(styleRule *cssast.StyleRule) []cssast.CssRule {
	if len(c.supports) == 0 {
		return nil
	}

	entries := c.supports
	c.supports = nil

	out := make([]cssast.CssRule, 0, len(entries))
	for _, entry := range entries {
		out = append(out, &cssast.SupportsRule{
			Condition: entry.condition,
			Rules: cssast.CssRuleList{
				&cssast.StyleRule{
					Selectors: styleRule.Selectors.Clone(),
					Declarations: cssast.DeclarationBlock{
						Declarations:          entry.declarations,
						ImportantDeclarations: entry.importantDeclarations,
					},
					Loc: styleRule.Loc,
				},
			},
			Loc: styleRule.Loc,
		})
	}
	return out
}
