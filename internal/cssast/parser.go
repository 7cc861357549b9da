package cssast

import (
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseStyleSheet tokenizes content with the tdewolff CSS lexer and
// builds the CssRuleList this core operates on. It is a minimal,
// spec-scoped adapter, not a general CSS parser: it recognizes style
// rules, @media/@supports nesting, and @keyframes, and routes every
// declaration's raw value through parseValue's small per-family value
// recognizers. A value containing var() is kept as an Unparsed property,
// which the handler family still routes by id; a property name outside
// the PropertyID enum (including custom properties) is kept as an
// Unparsed property under its source name; any other value it can't
// type more precisely is kept as a StringValue.
func ParseStyleSheet(content string) (CssRuleList, error) {
	lexer := css.NewLexer(parse.NewInputString(content))
	rules, _ := parseRuleList(lexer, "")
	return rules, nil
}

// parseRuleList reads rules until the lexer is exhausted or, inside a
// nested block, until the matching closing brace. stopAt is the raw
// at-rule keyword that caused recursion ("" at the top level).
func parseRuleList(lexer *css.Lexer, stopAt string) (CssRuleList, bool) {
	var rules CssRuleList
	var pending strings.Builder

	flushSelector := func() string {
		s := strings.TrimSpace(pending.String())
		pending.Reset()
		return s
	}

	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return rules, false

		case css.RightBraceToken:
			pending.Reset()
			return rules, true

		case css.AtKeywordToken:
			name := strings.TrimPrefix(string(text), "@")
			pending.Reset()
			rule := parseAtRule(lexer, name)
			if rule != nil {
				rules = append(rules, rule)
			}

		case css.LeftBraceToken:
			selectorText := flushSelector()
			decls := parseDeclarationBlock(lexer)
			rules = append(rules, &StyleRule{
				Selectors:    parseSelectorList(selectorText),
				Declarations: decls,
			})

		case css.SemicolonToken:
			pending.Reset()

		default:
			pending.WriteString(string(text))
		}
	}
}

// parseSelectorList splits a raw, comma-separated selector group into
// individual selectors, trimming whitespace from each.
func parseSelectorList(raw string) SelectorList {
	parts := strings.Split(raw, ",")
	out := make(SelectorList, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, Selector(p))
		}
	}
	return out
}

// parseAtRule dispatches on the at-rule keyword, recursing into the
// ones that carry a rule body and returning a flat rule for the ones
// that don't.
func parseAtRule(lexer *css.Lexer, name string) CssRule {
	switch name {
	case "media", "supports":
		prelude := readPrelude(lexer)
		body, _ := parseRuleList(lexer, name)
		if name == "media" {
			return &MediaRule{Query: prelude, Rules: body}
		}
		return &SupportsRule{Condition: Feature(PropertyUnknown, prelude), Rules: body}

	case "keyframes", "-webkit-keyframes":
		animName := strings.TrimSpace(readPrelude(lexer))
		return &KeyframesRule{Name: animName, Keyframes: parseKeyframeBlocks(lexer)}

	case "custom-media":
		prelude := strings.TrimSpace(readPrelude(lexer))
		return parseCustomMedia(prelude)

	case "property":
		prelude := strings.TrimSpace(readPrelude(lexer))
		return parsePropertyAtRule(prelude, lexer)

	case "font-face":
		consumeBraceOpen(lexer)
		return &FontFaceRule{Declarations: parseDeclarationBlock(lexer)}

	case "import":
		prelude := strings.TrimSpace(readPrelude(lexer))
		return parseImportRule(prelude)

	default:
		skipUnknownAtRule(lexer)
		return &IgnoredRule{}
	}
}

// readPrelude collects raw tokens up to (and consuming) the next `{`
// or `;`, returning the text before it. Used for @media/@supports
// conditions and other at-rule preludes.
func readPrelude(lexer *css.Lexer) string {
	var b strings.Builder
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken || tt == css.LeftBraceToken || tt == css.SemicolonToken {
			return strings.TrimSpace(b.String())
		}
		b.WriteString(string(text))
	}
}

func consumeBraceOpen(lexer *css.Lexer) {
	for {
		tt, _ := lexer.Next()
		if tt == css.ErrorToken || tt == css.LeftBraceToken {
			return
		}
	}
}

func skipUnknownAtRule(lexer *css.Lexer) {
	depth := 0
	for {
		tt, _ := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
			if depth <= 0 {
				return
			}
		case css.SemicolonToken:
			if depth == 0 {
				return
			}
		}
	}
}

func parseKeyframeBlocks(lexer *css.Lexer) []KeyframeBlock {
	var blocks []KeyframeBlock
	var pending strings.Builder

	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken, css.RightBraceToken:
			return blocks
		case css.LeftBraceToken:
			selText := strings.TrimSpace(pending.String())
			pending.Reset()
			var sels []string
			for _, s := range strings.Split(selText, ",") {
				s = strings.TrimSpace(s)
				if s != "" {
					sels = append(sels, s)
				}
			}
			blocks = append(blocks, KeyframeBlock{Selectors: sels, Declarations: parseDeclarationBlock(lexer)})
		default:
			pending.WriteString(string(text))
		}
	}
}

func parseCustomMedia(prelude string) *CustomMediaRule {
	name, query, _ := strings.Cut(prelude, " ")
	name = strings.TrimPrefix(strings.TrimSpace(name), "--")
	query = strings.TrimSpace(query)
	query = strings.TrimSuffix(strings.TrimPrefix(query, "("), ")")
	return &CustomMediaRule{Name: name, Query: strings.TrimSpace(query)}
}

func parseImportRule(prelude string) *ImportRule {
	url, media, _ := strings.Cut(prelude, " ")
	return &ImportRule{URL: strings.Trim(strings.TrimSpace(url), "\"'"), Media: strings.TrimSpace(media)}
}

// parsePropertyAtRule reads the `@property --name { syntax: ...; }`
// body. The prelude carries the custom property name; descriptors are
// read as plain declarations and picked out by name.
func parsePropertyAtRule(prelude string, lexer *css.Lexer) *PropertyAtRule {
	rule := &PropertyAtRule{Name: strings.TrimPrefix(prelude, "--")}
	block := parseDeclarationBlock(lexer)
	for _, p := range block.Declarations {
		if !p.Unparsed {
			continue
		}
		switch p.Name {
		case "syntax":
			rule.Syntax = strings.Trim(p.Raw, "\"'")
		case "inherits":
			rule.Inherits = strings.TrimSpace(p.Raw) == "true"
		case "initial-value":
			rule.InitialValue = p.Raw
		}
	}
	return rule
}

// parseDeclarationBlock reads `prop: value;` pairs up to the closing
// `}`, typing each value via parseValue.
func parseDeclarationBlock(lexer *css.Lexer) DeclarationBlock {
	var block DeclarationBlock
	var propName string
	var valueParts []string
	var important bool

	flush := func() {
		if propName == "" {
			return
		}
		raw := strings.TrimSpace(strings.Join(valueParts, ""))
		prop := parseValue(propName, raw)
		if important {
			block.ImportantDeclarations = append(block.ImportantDeclarations, prop)
		} else {
			block.Declarations = append(block.Declarations, prop)
		}
		propName = ""
		valueParts = nil
		important = false
	}

	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken, css.RightBraceToken:
			flush()
			return block

		case css.IdentToken:
			if propName == "" {
				propName = string(text)
			} else {
				s := string(text)
				if strings.EqualFold(s, "important") {
					important = true
					// Drop the preceding "!" delimiter (and any
					// whitespace around it) from the buffered value.
					for len(valueParts) > 0 {
						last := valueParts[len(valueParts)-1]
						if last == " " || last == "!" {
							valueParts = valueParts[:len(valueParts)-1]
							continue
						}
						break
					}
				} else {
					valueParts = append(valueParts, s)
				}
			}

		case css.ColonToken:
			// separator between property and value

		case css.SemicolonToken:
			flush()

		case css.WhitespaceToken:
			if propName != "" {
				valueParts = append(valueParts, " ")
			}

		default:
			if propName != "" {
				valueParts = append(valueParts, string(text))
			}
		}
	}
}

// parseValue converts a property name and its raw value text into a
// Property, typing it when the property belongs to a family this core
// folds and the value shape is recognized; everything else is kept
// Unparsed so handlers still route it by id.
func parseValue(propName, raw string) Property {
	id, known := PropertyIDByName(propName)
	if !known {
		return NewUnrecognized(propName, raw)
	}

	if strings.Contains(raw, "var(") {
		return NewUnparsed(id, raw)
	}

	if val, ok := parseSideValue(id, raw); ok {
		return NewProperty(id, val)
	}

	if id == Color || strings.HasSuffix(propName, "color") || isBareColorFunction(raw) {
		return NewProperty(id, parseColorValue(raw))
	}

	if id == BackgroundImage {
		if grad, ok := parseGradientValue(raw); ok {
			return NewProperty(id, grad)
		}
	}

	return NewProperty(id, StringValue(raw))
}

var fourSidedShorthands = map[PropertyID]bool{
	Inset: true, Margin: true, Padding: true, ScrollMargin: true, ScrollPadding: true,
}

var twoAxisShorthands = map[PropertyID]bool{
	InsetBlock: true, InsetInline: true, MarginBlock: true, MarginInline: true,
	PaddingBlock: true, PaddingInline: true, ScrollMarginBlock: true, ScrollMarginInline: true,
	ScrollPaddingBlock: true, ScrollPaddingInline: true,
}

var sideLonghands = map[PropertyID]bool{
	Top: true, Right: true, Bottom: true, Left: true,
	MarginTop: true, MarginRight: true, MarginBottom: true, MarginLeft: true,
	PaddingTop: true, PaddingRight: true, PaddingBottom: true, PaddingLeft: true,
	ScrollMarginTop: true, ScrollMarginRight: true, ScrollMarginBottom: true, ScrollMarginLeft: true,
	ScrollPaddingTop: true, ScrollPaddingRight: true, ScrollPaddingBottom: true, ScrollPaddingLeft: true,
	InsetBlockStart: true, InsetBlockEnd: true, InsetInlineStart: true, InsetInlineEnd: true,
	MarginBlockStart: true, MarginBlockEnd: true, MarginInlineStart: true, MarginInlineEnd: true,
	PaddingBlockStart: true, PaddingBlockEnd: true, PaddingInlineStart: true, PaddingInlineEnd: true,
	ScrollMarginBlockStart: true, ScrollMarginBlockEnd: true, ScrollMarginInlineStart: true, ScrollMarginInlineEnd: true,
	ScrollPaddingBlockStart: true, ScrollPaddingBlockEnd: true, ScrollPaddingInlineStart: true, ScrollPaddingInlineEnd: true,
}

func parseSideValue(id PropertyID, raw string) (Value, bool) {
	fields := strings.Fields(raw)

	switch {
	case fourSidedShorthands[id] && len(fields) == 4:
		vals := make([]LengthPercentageOrAuto, 4)
		for i, f := range fields {
			v, ok := parseLengthPercentageOrAuto(f)
			if !ok {
				return nil, false
			}
			vals[i] = v
		}
		return Rect{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}, true

	case twoAxisShorthands[id] && len(fields) == 2:
		start, ok1 := parseLengthPercentageOrAuto(fields[0])
		end, ok2 := parseLengthPercentageOrAuto(fields[1])
		if !ok1 || !ok2 {
			return nil, false
		}
		return Size2D{Start: start, End: end}, true

	case sideLonghands[id] && len(fields) == 1:
		v, ok := parseLengthPercentageOrAuto(fields[0])
		if !ok {
			return nil, false
		}
		return v, true
	}

	return nil, false
}

func parseLengthPercentageOrAuto(token string) (LengthPercentageOrAuto, bool) {
	if token == "auto" {
		return Auto(), true
	}

	i := len(token)
	for i > 0 && !isDigitOrDot(token[i-1]) {
		i--
	}
	numText, unit := token[:i], token[i:]
	n, err := strconv.ParseFloat(numText, 64)
	if err != nil {
		return LengthPercentageOrAuto{}, false
	}
	return Length(n, unit), true
}

func isDigitOrDot(b byte) bool {
	return (b >= '0' && b <= '9') || b == '.'
}

// isBareColorFunction reports whether raw, in its entirety, is one of
// the down-levelable color functions with no other shorthand component
// alongside it -- the case a shorthand like background/border/outline
// can carry when the author writes a bare color as the whole value
// (e.g. `background: lab(50% 40 59.5)`), as opposed to a value where a
// color function is merely one token among several
// (`border: 1px solid lab(...)`), which is left as StringValue.
func isBareColorFunction(raw string) bool {
	for _, prefix := range []string{"lab(", "lch(", "oklab(", "oklch(", "color-mix("} {
		if strings.HasPrefix(raw, prefix) {
			return strings.HasSuffix(raw, ")")
		}
	}
	return false
}

// parseColorValue recognizes the down-levelable color functions; any
// other color syntax (named colors, hex, rgb(), hsl()) is ColorRGB
// with no fallback needed. This adapter does not implement color-space
// conversion, so a non-RGB color parsed straight from source text
// carries no RGBFallback — only fixtures/tests that construct a
// ColorValue directly (or an upstream pass that computes one) exercise
// the fallback producer's replacement path end to end.
func parseColorValue(raw string) ColorValue {
	switch {
	case strings.HasPrefix(raw, "lab("):
		return ColorValue{Kind: ColorLab, Raw: raw}
	case strings.HasPrefix(raw, "lch("):
		return ColorValue{Kind: ColorLch, Raw: raw}
	case strings.HasPrefix(raw, "oklab("):
		return ColorValue{Kind: ColorOklab, Raw: raw}
	case strings.HasPrefix(raw, "oklch("):
		return ColorValue{Kind: ColorOklch, Raw: raw}
	case strings.HasPrefix(raw, "color-mix("):
		return ColorValue{Kind: ColorMixFn, Raw: raw}
	default:
		return ColorValue{Kind: ColorRGB, Raw: raw}
	}
}

var gradientFuncNames = []string{
	"repeating-linear-gradient",
	"repeating-radial-gradient",
	"repeating-conic-gradient",
	"linear-gradient",
	"radial-gradient",
	"conic-gradient",
}

// parseGradientValue recognizes the gradient functions and splits their
// stop list on top-level commas, so a fallback can be produced for
// stops using double-position syntax. It does not parse the direction/
// shape prelude (e.g. "to right", "circle at center") into anything
// structured — that prelude, if present, is kept as the first stop's
// Color text along with everything else, since nothing downstream
// needs it typed.
func parseGradientValue(raw string) (Gradient, bool) {
	for _, name := range gradientFuncNames {
		prefix := name + "("
		if strings.HasPrefix(raw, prefix) && strings.HasSuffix(raw, ")") {
			inner := raw[len(prefix) : len(raw)-1]
			return Gradient{Func: name, Stops: parseGradientStops(inner)}, true
		}
	}
	return Gradient{}, false
}

func parseGradientStops(inner string) []GradientStop {
	segments := splitTopLevel(inner, ',')
	stops := make([]GradientStop, len(segments))
	for i, seg := range segments {
		stops[i] = parseGradientStop(strings.TrimSpace(seg))
	}
	return stops
}

// parseGradientStop peels off up to two trailing position tokens (e.g.
// "10%", "20%") from the end of a stop, leaving the rest as the color
// (or, for the first segment of a gradient with a direction/shape
// prelude, that prelude verbatim).
func parseGradientStop(seg string) GradientStop {
	tokens := fieldsTopLevel(seg)
	if len(tokens) == 0 {
		return GradientStop{}
	}

	trailing := 0
	for trailing < len(tokens) && trailing < 2 && isPositionToken(tokens[len(tokens)-1-trailing]) {
		trailing++
	}

	colorTokens := tokens[:len(tokens)-trailing]
	var positions []string
	if trailing > 0 {
		positions = append([]string(nil), tokens[len(tokens)-trailing:]...)
	}
	return GradientStop{Color: strings.Join(colorTokens, " "), Positions: positions}
}

func isPositionToken(tok string) bool {
	if tok == "auto" {
		return false
	}
	_, ok := parseLengthPercentageOrAuto(tok)
	return ok
}

// splitTopLevel splits s on sep, ignoring any sep byte inside nested
// parens (so a color-stop list doesn't break on the commas inside a
// color function like "rgba(0, 0, 0, .5)").
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// fieldsTopLevel splits s on whitespace, ignoring whitespace inside
// nested parens, so a stop's color function (e.g. "rgba(0, 0, 0, .5)")
// stays one token instead of fragmenting on its internal spaces.
func fieldsTopLevel(s string) []string {
	var parts []string
	depth := 0
	start := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 && (c == ' ' || c == '\t') {
			if start >= 0 {
				parts = append(parts, s[start:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		parts = append(parts, s[start:])
	}
	return parts
}
