package handlers

import (
	"strings"

	"github.com/yacobolo/cssmin/internal/cssast"
	"github.com/yacobolo/cssmin/internal/minify"
)

// groupHandler is the shape shared by every non-axis property family in
// this core (border, background, font, transition, flex,
// text-decoration, outline): accumulate a fixed set of longhand slots
// in input order, and at finalize fold them into the shorthand only if
// every slot the shorthand requires is present; otherwise emit each
// present slot as a longhand. None of these families interact with the
// physical/logical axis, so unlike SideHandler there is no category-
// transition flush: pending slots flush only before an Unparsed or
// shorthand declaration of the family passes through, and at
// end-of-block finalize.
type groupHandler struct {
	slotIDs   []cssast.PropertyID
	required  []cssast.PropertyID // subset of slotIDs that must all be present to fold
	shorthand cssast.PropertyID
	fold      func(values map[cssast.PropertyID]string) string
	slots     map[cssast.PropertyID]string
	order     []cssast.PropertyID
}

func newGroupHandler(shorthand cssast.PropertyID, fold func(map[cssast.PropertyID]string) string, required []cssast.PropertyID, slotIDs []cssast.PropertyID) *groupHandler {
	return &groupHandler{
		slotIDs:   slotIDs,
		required:  required,
		shorthand: shorthand,
		fold:      fold,
		slots:     make(map[cssast.PropertyID]string),
	}
}

func (h *groupHandler) ownsID(id cssast.PropertyID) bool {
	if id == h.shorthand {
		return true
	}
	for _, s := range h.slotIDs {
		if s == id {
			return true
		}
	}
	return false
}

// stringValueOf extracts the flattened-to-text form of a slot value.
// Most slots (border-style, background-repeat, ...) are already typed
// as StringValue, but any color slot (border-color, background-color,
// outline-color, text-decoration-color) comes from the parser as a
// ColorValue, never a StringValue, so both are recognized here.
func stringValueOf(v cssast.Value) (string, bool) {
	switch val := v.(type) {
	case cssast.StringValue:
		return string(val), true
	case cssast.ColorValue:
		return val.String(), true
	default:
		return "", false
	}
}

func (h *groupHandler) Accumulate(p cssast.Property, dest *[]cssast.Property, ctx *minify.HandlerContext) bool {
	if !h.ownsID(p.ID) {
		return false
	}

	if p.Unparsed {
		h.flush(dest)
		*dest = append(*dest, p)
		return true
	}

	if p.ID == h.shorthand {
		h.flush(dest)
		*dest = append(*dest, p)
		return true
	}

	s, ok := stringValueOf(p.Value)
	if !ok {
		return false
	}

	if _, exists := h.slots[p.ID]; !exists {
		h.order = append(h.order, p.ID)
	}
	h.slots[p.ID] = s
	return true
}

func (h *groupHandler) Finalize(dest *[]cssast.Property, ctx *minify.HandlerContext) {
	h.flush(dest)
}

func (h *groupHandler) flush(dest *[]cssast.Property) {
	if len(h.slots) == 0 {
		return
	}

	complete := true
	for _, r := range h.required {
		if _, ok := h.slots[r]; !ok {
			complete = false
			break
		}
	}

	if complete {
		*dest = append(*dest, cssast.NewProperty(h.shorthand, cssast.StringValue(h.fold(h.slots))))
	} else {
		for _, id := range h.order {
			*dest = append(*dest, cssast.NewProperty(id, cssast.StringValue(h.slots[id])))
		}
	}

	h.slots = make(map[cssast.PropertyID]string)
	h.order = nil
}

// NewBorderHandler folds border-width/style/color into border when all
// three are present; a matching set of side declarations is otherwise
// unaffected since this handler only tracks the unified, non-per-side
// properties.
func NewBorderHandler() Handler {
	return newGroupHandler(cssast.Border, func(v map[cssast.PropertyID]string) string {
		return strings.Join([]string{v[cssast.BorderWidth], v[cssast.BorderStyle], v[cssast.BorderColor]}, " ")
	}, []cssast.PropertyID{cssast.BorderWidth, cssast.BorderStyle, cssast.BorderColor},
		[]cssast.PropertyID{cssast.BorderWidth, cssast.BorderStyle, cssast.BorderColor})
}

// NewOutlineHandler folds outline-width/style/color into outline.
func NewOutlineHandler() Handler {
	return newGroupHandler(cssast.Outline, func(v map[cssast.PropertyID]string) string {
		return strings.Join([]string{v[cssast.OutlineWidth], v[cssast.OutlineStyle], v[cssast.OutlineColor]}, " ")
	}, []cssast.PropertyID{cssast.OutlineWidth, cssast.OutlineStyle, cssast.OutlineColor},
		[]cssast.PropertyID{cssast.OutlineWidth, cssast.OutlineStyle, cssast.OutlineColor})
}

// NewFlexHandler folds flex-grow/shrink/basis into flex.
func NewFlexHandler() Handler {
	return newGroupHandler(cssast.Flex, func(v map[cssast.PropertyID]string) string {
		return strings.Join([]string{v[cssast.FlexGrow], v[cssast.FlexShrink], v[cssast.FlexBasis]}, " ")
	}, []cssast.PropertyID{cssast.FlexGrow, cssast.FlexShrink, cssast.FlexBasis},
		[]cssast.PropertyID{cssast.FlexGrow, cssast.FlexShrink, cssast.FlexBasis})
}

// NewTextDecorationHandler folds text-decoration-line/style/color into
// text-decoration, requiring only the line (the other two are
// optional and contribute nothing if absent).
func NewTextDecorationHandler() Handler {
	return newGroupHandler(cssast.TextDecoration, func(v map[cssast.PropertyID]string) string {
		parts := []string{v[cssast.TextDecorationLine]}
		if s, ok := v[cssast.TextDecorationStyle]; ok {
			parts = append(parts, s)
		}
		if c, ok := v[cssast.TextDecorationColor]; ok {
			parts = append(parts, c)
		}
		return strings.Join(parts, " ")
	}, []cssast.PropertyID{cssast.TextDecorationLine},
		[]cssast.PropertyID{cssast.TextDecorationLine, cssast.TextDecorationStyle, cssast.TextDecorationColor})
}

// NewTransitionHandler folds a single transition layer's
// property/duration/timing-function/delay into transition.
func NewTransitionHandler() Handler {
	return newGroupHandler(cssast.Transition, func(v map[cssast.PropertyID]string) string {
		parts := []string{v[cssast.TransitionProperty], v[cssast.TransitionDuration]}
		if tf, ok := v[cssast.TransitionTimingFunction]; ok {
			parts = append(parts, tf)
		}
		if d, ok := v[cssast.TransitionDelay]; ok {
			parts = append(parts, d)
		}
		return strings.Join(parts, " ")
	}, []cssast.PropertyID{cssast.TransitionProperty, cssast.TransitionDuration},
		[]cssast.PropertyID{cssast.TransitionProperty, cssast.TransitionDuration, cssast.TransitionTimingFunction, cssast.TransitionDelay})
}

// NewFontHandler folds font-style/variant/weight/size/line-height/family
// into font, requiring at least size and family (the CSS font
// shorthand's two mandatory components).
func NewFontHandler() Handler {
	return newGroupHandler(cssast.Font, func(v map[cssast.PropertyID]string) string {
		var parts []string
		for _, id := range []cssast.PropertyID{cssast.FontStyle, cssast.FontVariant, cssast.FontWeight} {
			if s, ok := v[id]; ok {
				parts = append(parts, s)
			}
		}
		size := v[cssast.FontSize]
		if lh, ok := v[cssast.LineHeight]; ok {
			size = size + "/" + lh
		}
		parts = append(parts, size, v[cssast.FontFamily])
		return strings.Join(parts, " ")
	}, []cssast.PropertyID{cssast.FontSize, cssast.FontFamily},
		[]cssast.PropertyID{cssast.FontStyle, cssast.FontVariant, cssast.FontWeight, cssast.FontSize, cssast.LineHeight, cssast.FontFamily})
}

// NewBackgroundHandler folds a single background layer's color, image,
// position/size, repeat and attachment into background, in the
// canonical image/position/size/repeat/attachment/color order. Only a
// single layer is modeled: a multi-layer background arrives as an
// Unparsed declaration (or a shorthand the author already wrote) and
// passes through verbatim rather than risk desynchronizing layers.
func NewBackgroundHandler() Handler {
	return newGroupHandler(cssast.Background, func(v map[cssast.PropertyID]string) string {
		var parts []string
		if s, ok := v[cssast.BackgroundImage]; ok {
			parts = append(parts, s)
		}
		if s, ok := v[cssast.BackgroundPosition]; ok {
			if sz, ok := v[cssast.BackgroundSize]; ok {
				s = s + " / " + sz
			}
			parts = append(parts, s)
		}
		if s, ok := v[cssast.BackgroundRepeat]; ok {
			parts = append(parts, s)
		}
		if s, ok := v[cssast.BackgroundAttachment]; ok {
			parts = append(parts, s)
		}
		if s, ok := v[cssast.BackgroundColor]; ok {
			parts = append(parts, s)
		}
		return strings.Join(parts, " ")
	}, []cssast.PropertyID{cssast.BackgroundColor, cssast.BackgroundImage},
		[]cssast.PropertyID{
			cssast.BackgroundColor, cssast.BackgroundImage, cssast.BackgroundPosition,
			cssast.BackgroundSize, cssast.BackgroundRepeat, cssast.BackgroundAttachment,
		})
}
