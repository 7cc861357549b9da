package cssast

// Location marks where a rule came from in the original source, by
// index into StyleSheet.Sources plus line/column.
type Location struct {
	SourceIndex int
	Line        int
	Column      int
}

// DeclarationBlock is the ordered pair of sequences a style rule (or a
// style attribute) carries: normal declarations and !important ones.
// Within each sequence, later entries override earlier ones per
// cascade.
type DeclarationBlock struct {
	Declarations          []Property
	ImportantDeclarations []Property
}

// Selector is the raw, already-serialized text of one compound
// selector. Parsing and printing selectors is an external collaborator
// concern; the core only needs to clone a selector list and append a
// :dir(...) pseudo-class to each entry.
type Selector string

// WithPseudoClass returns a copy of the selector with an additional
// pseudo-class appended, e.g. WithPseudoClass("dir(ltr)").
func (s Selector) WithPseudoClass(name string) Selector {
	return s + Selector(":"+name)
}

// SelectorList is a comma-separated group of selectors sharing one
// declaration block.
type SelectorList []Selector

// Clone returns an independent copy of the list.
func (l SelectorList) Clone() SelectorList {
	out := make(SelectorList, len(l))
	copy(out, l)
	return out
}

// WithPseudoClass appends name to every selector in the list.
func (l SelectorList) WithPseudoClass(name string) SelectorList {
	out := make(SelectorList, len(l))
	for i, s := range l {
		out[i] = s.WithPseudoClass(name)
	}
	return out
}

// CssRule is the tagged variant over every rule kind the core walks.
// Go has no closed sum type, so this is modeled as a marker interface
// implemented by one concrete struct per kind — callers type-switch to
// recover the variant, the same way the spec's StyleRule/Media/
// Supports/... enumeration is consumed.
type CssRule interface {
	isCssRule()
}

// CssRuleList is an ordered sequence of rules, e.g. a stylesheet body
// or the body of an @media/@supports/nested rule.
type CssRuleList []CssRule

// StyleRule is a selector list, its declaration block, any nested
// rules (CSS nesting), and its source location.
type StyleRule struct {
	Selectors    SelectorList
	VendorPrefix string
	Declarations DeclarationBlock
	Rules        CssRuleList
	Loc          Location
}

func (*StyleRule) isCssRule() {}

// MediaRule is an @media conditional block.
type MediaRule struct {
	Query string
	Rules CssRuleList
	Loc   Location
}

func (*MediaRule) isCssRule() {}

// SupportsRule is an @supports conditional block, either parsed from
// source or synthesized by the Property Handler Context to host a
// value fallback.
type SupportsRule struct {
	Condition SupportsCondition
	Rules     CssRuleList
	Loc       Location
}

func (*SupportsRule) isCssRule() {}

// KeyframeBlock is one `<selector> { declarations }` step inside an
// @keyframes rule (e.g. "0%", "from", "50%, 75%").
type KeyframeBlock struct {
	Selectors    []string
	Declarations DeclarationBlock
}

// KeyframesRule is an @keyframes animation. It cannot host nested
// rules, which is why the rule minifier runs it under a
// DeclarationContext that gates supports side-outputs off, and drains
// and discards any logical side-output staged while minifying inside one.
type KeyframesRule struct {
	Name      string
	Keyframes []KeyframeBlock
	Loc       Location
}

func (*KeyframesRule) isCssRule() {}

// CustomMediaRule is an @custom-media name definition, inlined at use
// sites when targets don't support @custom-media natively.
type CustomMediaRule struct {
	Name  string
	Query string
	Loc   Location
}

func (*CustomMediaRule) isCssRule() {}

// PropertyAtRule is the CSS Properties and Values API `@property` rule.
type PropertyAtRule struct {
	Name         string
	Syntax       string
	Inherits     bool
	InitialValue string
	Loc          Location
}

func (*PropertyAtRule) isCssRule() {}

// FontFaceRule is an @font-face rule; its declarations are not run
// through the property handler dispatcher (there is no cascade to
// fold across descriptors), but it is still walked and preserved.
type FontFaceRule struct {
	Declarations DeclarationBlock
	Loc          Location
}

func (*FontFaceRule) isCssRule() {}

// ImportRule is an @import rule. Resolving imports is out of core
// scope; the rule is carried through unchanged.
type ImportRule struct {
	URL   string
	Media string
	Loc   Location
}

func (*ImportRule) isCssRule() {}

// IgnoredRule is a rule the parser recognized but the core has no
// opinion on (e.g. an unknown at-rule). It keeps none of the rule's
// text: the minifier carries the empty node through and Print writes
// nothing for it.
type IgnoredRule struct{}

func (*IgnoredRule) isCssRule() {}
