// Package cssmin is the external interface over the property handler
// and minification core: StyleSheet/StyleAttribute entry points,
// minify options, and the error kinds a caller sees at the boundary.
// Parsing CSS text into the tree and serializing it back out are
// out of scope here (see internal/cssast's parser adapter for a
// minimal, spec-scoped implementation) — this package only orchestrates
// the walk.
package cssmin

import (
	"regexp"

	"github.com/yacobolo/cssmin/internal/compat"
	"github.com/yacobolo/cssmin/internal/cssast"
	"github.com/yacobolo/cssmin/internal/minify"
)

// StyleSheet is the input tree: a parsed rule list, the list of
// source filenames the rules were parsed from (referenced by index
// from any Location), and parser options describing what the
// upstream parser understood (CSS modules, nesting, custom media).
type StyleSheet struct {
	Rules   cssast.CssRuleList
	Sources []string

	ModulesEnabled     bool
	NestingEnabled     bool
	CustomMediaEnabled bool
}

// MinifyOptions configures one top-level minify invocation: the
// browser target matrix (nil/empty means "assume modern"), and the
// set of CSS-modules identifiers known to be unused by any consumer,
// which the rule-level minifier tree-shakes.
type MinifyOptions struct {
	Targets       compat.Targets
	UnusedSymbols map[string]bool
	Verbose       bool
}

var customMediaRef = regexp.MustCompile(`\(--([A-Za-z0-9_-]+)\)`)

// Minify runs the full rule-level minification pass: a @custom-media
// pre-scan (inlining references when targets can't be relied on to
// support @custom-media natively), then the declaration-level fold
// and down-level pass over every rule, and returns the rewritten tree.
//
// The pre-scan's gating condition — targets set and the targets can't
// be relied on to support @custom-media — mirrors the original
// stylesheet-level orchestration this module's rule-level minifier is
// grounded on.
func (s *StyleSheet) Minify(opts MinifyOptions) (cssast.CssRuleList, error) {
	defs := collectCustomMedia(s.Rules)

	inline := len(opts.Targets) > 0 && !compat.IsCompatible(compat.CustomMediaQueries, opts.Targets)
	if inline {
		if err := checkCustomMediaReferences(s.Rules, defs); err != nil {
			return nil, err
		}
	}

	ctx := minify.NewHandlerContext(opts.Targets)
	ruleOpts := minify.RuleMinifyOptions{
		UnusedSymbols:      opts.UnusedSymbols,
		InlineCustomMedia:  inline,
		CustomMediaQueries: defs,
	}

	return minify.MinifyRules(s.Rules, ctx, ruleOpts), nil
}

// StyleAttribute minifies an inline `style="..."` attribute's
// declaration block: a narrower entry point than StyleSheet.Minify,
// forcing ContextStyleAttribute so logical side-output emission is
// suppressed (there is no sibling rule to hang a :dir() variant on)
// and is_supported always reports true.
type StyleAttribute struct {
	Declarations cssast.DeclarationBlock
}

// Minify folds and down-levels the attribute's declarations in place,
// returning the rewritten block. No side-outputs are ever produced:
// StyleAttribute context gates both logical rules and conditional
// fallbacks off.
func (s *StyleAttribute) Minify(targets compat.Targets) cssast.DeclarationBlock {
	ctx := minify.NewHandlerContext(targets)
	ctx.Context = minify.ContextStyleAttribute

	dispatcher := minify.NewDeclarationHandler()
	var normal, important []cssast.Property

	for _, p := range s.Declarations.Declarations {
		dispatcher.HandleProperty(p, false, &normal, ctx)
	}
	for _, p := range s.Declarations.ImportantDeclarations {
		dispatcher.HandleProperty(p, true, &important, ctx)
	}
	dispatcher.Finalize(&normal, &important, ctx)

	return cssast.DeclarationBlock{Declarations: normal, ImportantDeclarations: important}
}

// collectCustomMedia walks rules gathering every @custom-media
// definition's name -> query text, including ones nested inside
// @media/@supports bodies.
func collectCustomMedia(rules cssast.CssRuleList) map[string]string {
	defs := make(map[string]string)
	var walk func(cssast.CssRuleList)
	walk = func(rs cssast.CssRuleList) {
		for _, r := range rs {
			switch rule := r.(type) {
			case *cssast.CustomMediaRule:
				defs[rule.Name] = rule.Query
			case *cssast.MediaRule:
				walk(rule.Rules)
			case *cssast.SupportsRule:
				walk(rule.Rules)
			case *cssast.StyleRule:
				walk(rule.Rules)
			}
		}
	}
	walk(rules)
	return defs
}

// checkCustomMediaReferences reports a MinifyError for every @media
// query referencing a @custom-media name with no matching definition.
func checkCustomMediaReferences(rules cssast.CssRuleList, defs map[string]string) error {
	var err error
	var walk func(cssast.CssRuleList)
	walk = func(rs cssast.CssRuleList) {
		for _, r := range rs {
			if err != nil {
				return
			}
			switch rule := r.(type) {
			case *cssast.MediaRule:
				for _, m := range customMediaRef.FindAllStringSubmatch(rule.Query, -1) {
					name := m[1]
					if _, ok := defs[name]; !ok {
						err = &MinifyError{Loc: Location{Line: rule.Loc.Line, Column: rule.Loc.Column, SourceIndex: rule.Loc.SourceIndex}, Err: errUndefinedCustomMedia(name)}
						return
					}
				}
				walk(rule.Rules)
			case *cssast.SupportsRule:
				walk(rule.Rules)
			case *cssast.StyleRule:
				walk(rule.Rules)
			}
		}
	}
	walk(rules)
	return err
}
