package minify

import (
	"strings"

	"github.com/yacobolo/cssmin/internal/cssast"
)

// RuleMinifyOptions carries the walk-wide settings the rule-level
// minifier needs beyond the per-block dispatcher: the set of
// CSS-modules identifiers known to be unused (for tree-shaking), and
// whether `@custom-media` references should be inlined because the
// target matrix can't be relied on to support them natively.
type RuleMinifyOptions struct {
	UnusedSymbols      map[string]bool
	InlineCustomMedia  bool
	CustomMediaQueries map[string]string
}

// MinifyRules walks rules depth-first, folding each StyleRule's
// declarations through a fresh DeclarationHandler and splicing its
// side-outputs in as siblings, recursing into conditional rules, and
// applying the `@custom-media`/unused_symbols passes described for the
// rule-level minifier.
func MinifyRules(rules cssast.CssRuleList, ctx *HandlerContext, opts RuleMinifyOptions) cssast.CssRuleList {
	out := make(cssast.CssRuleList, 0, len(rules))

	for _, rule := range rules {
		switch r := rule.(type) {
		case *cssast.StyleRule:
			if isUnusedRule(r, opts.UnusedSymbols) {
				continue
			}
			out = append(out, minifyStyleRule(r, ctx, opts)...)

		case *cssast.MediaRule:
			query := r.Query
			if opts.InlineCustomMedia {
				query = inlineCustomMedia(query, opts.CustomMediaQueries)
			}
			out = append(out, &cssast.MediaRule{
				Query: query,
				Rules: MinifyRules(r.Rules, ctx, opts),
				Loc:   r.Loc,
			})

		case *cssast.SupportsRule:
			out = append(out, &cssast.SupportsRule{
				Condition: r.Condition,
				Rules:     MinifyRules(r.Rules, ctx, opts),
				Loc:       r.Loc,
			})

		case *cssast.KeyframesRule:
			out = append(out, minifyKeyframesRule(r, ctx))

		case *cssast.CustomMediaRule:
			if opts.InlineCustomMedia {
				// Definitions are consumed at use sites above; once
				// inlined they have no further purpose in the tree.
				continue
			}
			out = append(out, r)

		default:
			out = append(out, rule)
		}
	}

	return out
}

// minifyStyleRule runs one style rule's declarations through the
// dispatcher and harvests the context's side-output buffers,
// producing [rule, ...supports rules..., ...logical rules...] per the
// side-output placement rule.
func minifyStyleRule(r *cssast.StyleRule, ctx *HandlerContext, opts RuleMinifyOptions) []cssast.CssRule {
	ctx.Context = ContextStyleRule

	dispatcher := NewDeclarationHandler()
	var normal, important []cssast.Property

	for _, p := range r.Declarations.Declarations {
		dispatcher.HandleProperty(p, false, &normal, ctx)
	}
	for _, p := range r.Declarations.ImportantDeclarations {
		dispatcher.HandleProperty(p, true, &important, ctx)
	}
	dispatcher.Finalize(&normal, &important, ctx)

	minified := &cssast.StyleRule{
		Selectors:    r.Selectors,
		VendorPrefix: r.VendorPrefix,
		Declarations: cssast.DeclarationBlock{Declarations: normal, ImportantDeclarations: important},
		Rules:        MinifyRules(r.Rules, ctx, opts),
		Loc:          r.Loc,
	}

	out := []cssast.CssRule{minified}
	out = append(out, ctx.GetSupportsRules(r)...)
	out = append(out, ctx.GetLogicalRules(r)...)
	return out
}

// minifyKeyframesRule runs each keyframe step's declarations through
// its own dispatcher under ContextKeyframes, which suppresses
// conditional-fallback staging. Keyframes cannot host nested rules, so
// any logical side-output a handler stages anyway (a handler has no
// way to know it's inside a keyframe block) is drained and discarded
// rather than left to leak into whatever style rule harvests next.
func minifyKeyframesRule(r *cssast.KeyframesRule, ctx *HandlerContext) *cssast.KeyframesRule {
	ctx.Context = ContextKeyframes

	steps := make([]cssast.KeyframeBlock, len(r.Keyframes))
	for i, step := range r.Keyframes {
		dispatcher := NewDeclarationHandler()
		var normal, important []cssast.Property

		for _, p := range step.Declarations.Declarations {
			dispatcher.HandleProperty(p, false, &normal, ctx)
		}
		for _, p := range step.Declarations.ImportantDeclarations {
			dispatcher.HandleProperty(p, true, &important, ctx)
		}
		dispatcher.Finalize(&normal, &important, ctx)

		steps[i] = cssast.KeyframeBlock{
			Selectors:    step.Selectors,
			Declarations: cssast.DeclarationBlock{Declarations: normal, ImportantDeclarations: important},
		}

		ctx.GetLogicalRules(&cssast.StyleRule{})
	}

	return &cssast.KeyframesRule{Name: r.Name, Keyframes: steps, Loc: r.Loc}
}

// isUnusedRule reports whether every selector in r exclusively
// references CSS-modules identifiers in unusedSymbols, making the rule
// a tree-shaking candidate. A selector with no class/id tokens, or
// with any token outside unusedSymbols, counts as used.
func isUnusedRule(r *cssast.StyleRule, unusedSymbols map[string]bool) bool {
	if len(unusedSymbols) == 0 || len(r.Selectors) == 0 {
		return false
	}

	for _, sel := range r.Selectors {
		tokens := selectorIdentifiers(string(sel))
		if len(tokens) == 0 {
			return false
		}
		for _, tok := range tokens {
			if !unusedSymbols[tok] {
				return false
			}
		}
	}
	return true
}

// selectorIdentifiers extracts class (.name) and id (#name) tokens
// from a raw selector string. This is a deliberately small lexical
// scan, not a selector parser: the core's scope boundary excludes
// parsing CSS text, and CSS-modules identifiers are always simple
// class/id tokens.
func selectorIdentifiers(sel string) []string {
	var tokens []string
	var cur strings.Builder
	marking := false

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
		marking = false
	}

	for _, r := range sel {
		switch {
		case r == '.' || r == '#':
			flush()
			marking = true
		case marking && (isIdentRune(r)):
			cur.WriteRune(r)
		default:
			flush()
		}
	}
	flush()

	return tokens
}

func isIdentRune(r rune) bool {
	return r == '-' || r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// inlineCustomMedia replaces every `(--name)` reference in query with
// the looked-up media feature text from defs. Unknown names pass
// through unchanged — a dangling reference is a MinifyError at the
// top-level orchestration layer, not a concern of this pure rewrite.
func inlineCustomMedia(query string, defs map[string]string) string {
	for name, resolved := range defs {
		query = strings.ReplaceAll(query, "(--"+name+")", "("+resolved+")")
	}
	return query
}
