package cssast

// propertyNames maps each PropertyID to its CSS source text. Used for
// diagnostics, @supports condition rendering, and the parser adapter's
// name -> id lookup.
var propertyNames = map[PropertyID]string{
	Top: "top", Right: "right", Bottom: "bottom", Left: "left",
	Inset: "inset", InsetBlockStart: "inset-block-start", InsetBlockEnd: "inset-block-end",
	InsetBlock: "inset-block", InsetInlineStart: "inset-inline-start", InsetInlineEnd: "inset-inline-end",
	InsetInline: "inset-inline",

	MarginTop: "margin-top", MarginRight: "margin-right", MarginBottom: "margin-bottom", MarginLeft: "margin-left",
	Margin: "margin", MarginBlockStart: "margin-block-start", MarginBlockEnd: "margin-block-end",
	MarginBlock: "margin-block", MarginInlineStart: "margin-inline-start", MarginInlineEnd: "margin-inline-end",
	MarginInline: "margin-inline",

	PaddingTop: "padding-top", PaddingRight: "padding-right", PaddingBottom: "padding-bottom", PaddingLeft: "padding-left",
	Padding: "padding", PaddingBlockStart: "padding-block-start", PaddingBlockEnd: "padding-block-end",
	PaddingBlock: "padding-block", PaddingInlineStart: "padding-inline-start", PaddingInlineEnd: "padding-inline-end",
	PaddingInline: "padding-inline",

	ScrollMarginTop: "scroll-margin-top", ScrollMarginRight: "scroll-margin-right",
	ScrollMarginBottom: "scroll-margin-bottom", ScrollMarginLeft: "scroll-margin-left",
	ScrollMargin: "scroll-margin", ScrollMarginBlockStart: "scroll-margin-block-start",
	ScrollMarginBlockEnd: "scroll-margin-block-end", ScrollMarginBlock: "scroll-margin-block",
	ScrollMarginInlineStart: "scroll-margin-inline-start", ScrollMarginInlineEnd: "scroll-margin-inline-end",
	ScrollMarginInline: "scroll-margin-inline",

	ScrollPaddingTop: "scroll-padding-top", ScrollPaddingRight: "scroll-padding-right",
	ScrollPaddingBottom: "scroll-padding-bottom", ScrollPaddingLeft: "scroll-padding-left",
	ScrollPadding: "scroll-padding", ScrollPaddingBlockStart: "scroll-padding-block-start",
	ScrollPaddingBlockEnd: "scroll-padding-block-end", ScrollPaddingBlock: "scroll-padding-block",
	ScrollPaddingInlineStart: "scroll-padding-inline-start", ScrollPaddingInlineEnd: "scroll-padding-inline-end",
	ScrollPaddingInline: "scroll-padding-inline",

	BorderWidth: "border-width", BorderStyle: "border-style", BorderColor: "border-color", Border: "border",

	BackgroundColor: "background-color", BackgroundImage: "background-image", BackgroundPosition: "background-position",
	BackgroundSize: "background-size", BackgroundRepeat: "background-repeat", BackgroundAttachment: "background-attachment",
	Background: "background",

	FontStyle: "font-style", FontVariant: "font-variant", FontWeight: "font-weight", FontSize: "font-size",
	LineHeight: "line-height", FontFamily: "font-family", Font: "font",

	TransitionProperty: "transition-property", TransitionDuration: "transition-duration",
	TransitionTimingFunction: "transition-timing-function", TransitionDelay: "transition-delay", Transition: "transition",

	FlexGrow: "flex-grow", FlexShrink: "flex-shrink", FlexBasis: "flex-basis", Flex: "flex",

	TextDecorationLine: "text-decoration-line", TextDecorationStyle: "text-decoration-style",
	TextDecorationColor: "text-decoration-color", TextDecoration: "text-decoration",

	OutlineWidth: "outline-width", OutlineStyle: "outline-style", OutlineColor: "outline-color", Outline: "outline",

	Color: "color",
}

var namesToProperty = func() map[string]PropertyID {
	m := make(map[string]PropertyID, len(propertyNames))
	for id, name := range propertyNames {
		m[name] = id
	}
	return m
}()

// propertyName returns the CSS source text for id, or "" if unknown.
func propertyName(id PropertyID) string {
	return propertyNames[id]
}

// PropertyName is the exported form of propertyName, used by callers
// serializing a Property for diagnostics or fixture comparisons.
func PropertyName(id PropertyID) string {
	return propertyNames[id]
}

// PropertyIDByName looks up the PropertyID for a CSS property name,
// returning (PropertyUnknown, false) if this core doesn't recognize it.
func PropertyIDByName(name string) (PropertyID, bool) {
	id, ok := namesToProperty[name]
	return id, ok
}
