package cssast

// PropertyID is the closed enumeration over the CSS property set this
// core understands. Adding a property is a localized edit here, in the
// handler(s) that own it, and in the compatibility table — not a new
// type in an open hierarchy.
type PropertyID int

const (
	PropertyUnknown PropertyID = iota

	// Inset family (uses the bare physical names; margin/padding have
	// their own prefixed physical names below).
	Top
	Right
	Bottom
	Left
	Inset
	InsetBlockStart
	InsetBlockEnd
	InsetBlock
	InsetInlineStart
	InsetInlineEnd
	InsetInline

	// Margin family.
	MarginTop
	MarginRight
	MarginBottom
	MarginLeft
	Margin
	MarginBlockStart
	MarginBlockEnd
	MarginBlock
	MarginInlineStart
	MarginInlineEnd
	MarginInline

	// Padding family.
	PaddingTop
	PaddingRight
	PaddingBottom
	PaddingLeft
	Padding
	PaddingBlockStart
	PaddingBlockEnd
	PaddingBlock
	PaddingInlineStart
	PaddingInlineEnd
	PaddingInline

	// Scroll-margin family.
	ScrollMarginTop
	ScrollMarginRight
	ScrollMarginBottom
	ScrollMarginLeft
	ScrollMargin
	ScrollMarginBlockStart
	ScrollMarginBlockEnd
	ScrollMarginBlock
	ScrollMarginInlineStart
	ScrollMarginInlineEnd
	ScrollMarginInline

	// Scroll-padding family.
	ScrollPaddingTop
	ScrollPaddingRight
	ScrollPaddingBottom
	ScrollPaddingLeft
	ScrollPadding
	ScrollPaddingBlockStart
	ScrollPaddingBlockEnd
	ScrollPaddingBlock
	ScrollPaddingInlineStart
	ScrollPaddingInlineEnd
	ScrollPaddingInline

	// Border family (simplified: one width/style/color triple, no
	// per-side tracking).
	BorderWidth
	BorderStyle
	BorderColor
	Border

	// Background family (single layer).
	BackgroundColor
	BackgroundImage
	BackgroundPosition
	BackgroundSize
	BackgroundRepeat
	BackgroundAttachment
	Background

	// Font family.
	FontStyle
	FontVariant
	FontWeight
	FontSize
	LineHeight
	FontFamily
	Font

	// Transition family (single layer).
	TransitionProperty
	TransitionDuration
	TransitionTimingFunction
	TransitionDelay
	Transition

	// Flex family.
	FlexGrow
	FlexShrink
	FlexBasis
	Flex

	// Text-decoration family.
	TextDecorationLine
	TextDecorationStyle
	TextDecorationColor
	TextDecoration

	// Outline family.
	OutlineWidth
	OutlineStyle
	OutlineColor
	Outline

	// Standalone properties the fallback producer exercises.
	Color
)

// PropertyCategory gates the category-transition flush: a side handler
// must flush its accumulator whenever accumulation crosses from
// Physical to Logical or back.
type PropertyCategory int

const (
	CategoryNone PropertyCategory = iota
	Physical
	Logical
)

// Property is a single declaration's property id plus its value. When
// Raw is non-empty the value is Unparsed: it contains references (such
// as var()) the core cannot interpret, but handlers still route it by
// ID so that logical rewriting and fallback staging apply to the
// property id even though the value itself passes through verbatim.
// Name carries the original source property name when ID is
// PropertyUnknown — the closed enum has no member for a property this
// core doesn't recognize, so there's no other way to round-trip it
// unchanged.
type Property struct {
	ID       PropertyID
	Value    Value
	Raw      string
	Unparsed bool
	Name     string
}

// NewProperty builds a fully-typed declaration.
func NewProperty(id PropertyID, value Value) Property {
	return Property{ID: id, Value: value}
}

// NewUnparsed builds a declaration whose value could not be resolved
// (e.g. it contains var()), keyed by the property id it would
// otherwise carry.
func NewUnparsed(id PropertyID, raw string) Property {
	return Property{ID: id, Raw: raw, Unparsed: true}
}

// NewUnrecognized builds a declaration for a property name outside the
// closed PropertyID enum. It passes through verbatim: the author's
// intent is never dropped just because this core has no opinion on
// the property.
func NewUnrecognized(name, raw string) Property {
	return Property{ID: PropertyUnknown, Name: name, Raw: raw, Unparsed: true}
}

// WithPropertyID returns a copy of the property re-keyed to a new id,
// preserving its value (or raw text). Used when lowering a logical
// longhand to its physical equivalent, or mapping inline-start/end to
// left/right for a :dir() side rule.
func (p Property) WithPropertyID(id PropertyID) Property {
	p.ID = id
	return p
}

// Equal reports whether two properties carry the same id and value.
// Two Unparsed properties are equal iff their id, name, and raw text
// match.
func (p Property) Equal(other Property) bool {
	if p.ID != other.ID || p.Unparsed != other.Unparsed {
		return false
	}
	if p.Unparsed {
		return p.Name == other.Name && p.Raw == other.Raw
	}
	if p.Value == nil || other.Value == nil {
		return p.Value == other.Value
	}
	return p.Value.Equal(other.Value)
}
