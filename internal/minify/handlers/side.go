// Package handlers is the property handler family: stateful folders
// that accumulate longhand declarations in input order and flush them
// into a destination list as shorthands or longhands, one handler per
// property family.
package handlers

import (
	"github.com/yacobolo/cssmin/internal/compat"
	"github.com/yacobolo/cssmin/internal/cssast"
	"github.com/yacobolo/cssmin/internal/minify"
)

// Handler is the shape every property handler implements: Accumulate
// ingests one declaration, reporting whether it was accepted by this
// family; Finalize flushes any pending state at block end.
type Handler interface {
	Accumulate(property cssast.Property, dest *[]cssast.Property, ctx *minify.HandlerContext) bool
	Finalize(dest *[]cssast.Property, ctx *minify.HandlerContext)
}

// SideFamily names the property ids one side handler owns: the four
// physical longhands, the four logical longhands, the four-sided and
// two-axis shorthands, and the feature gating logical emission.
type SideFamily struct {
	Top, Right, Bottom, Left                       cssast.PropertyID
	BlockStart, BlockEnd, InlineStart, InlineEnd    cssast.PropertyID
	Shorthand, BlockShorthand, InlineShorthand      cssast.PropertyID
	LogicalShorthandOnly                            bool
	Feature                                         compat.Feature
	HasFeature                                      bool
}

var (
	MarginFamily = SideFamily{
		Top: cssast.MarginTop, Right: cssast.MarginRight, Bottom: cssast.MarginBottom, Left: cssast.MarginLeft,
		BlockStart: cssast.MarginBlockStart, BlockEnd: cssast.MarginBlockEnd,
		InlineStart: cssast.MarginInlineStart, InlineEnd: cssast.MarginInlineEnd,
		Shorthand: cssast.Margin, BlockShorthand: cssast.MarginBlock, InlineShorthand: cssast.MarginInline,
		LogicalShorthandOnly: false, Feature: compat.LogicalMargin, HasFeature: true,
	}

	PaddingFamily = SideFamily{
		Top: cssast.PaddingTop, Right: cssast.PaddingRight, Bottom: cssast.PaddingBottom, Left: cssast.PaddingLeft,
		BlockStart: cssast.PaddingBlockStart, BlockEnd: cssast.PaddingBlockEnd,
		InlineStart: cssast.PaddingInlineStart, InlineEnd: cssast.PaddingInlineEnd,
		Shorthand: cssast.Padding, BlockShorthand: cssast.PaddingBlock, InlineShorthand: cssast.PaddingInline,
		LogicalShorthandOnly: false, Feature: compat.LogicalPadding, HasFeature: true,
	}

	ScrollMarginFamily = SideFamily{
		Top: cssast.ScrollMarginTop, Right: cssast.ScrollMarginRight, Bottom: cssast.ScrollMarginBottom, Left: cssast.ScrollMarginLeft,
		BlockStart: cssast.ScrollMarginBlockStart, BlockEnd: cssast.ScrollMarginBlockEnd,
		InlineStart: cssast.ScrollMarginInlineStart, InlineEnd: cssast.ScrollMarginInlineEnd,
		Shorthand: cssast.ScrollMargin, BlockShorthand: cssast.ScrollMarginBlock, InlineShorthand: cssast.ScrollMarginInline,
		LogicalShorthandOnly: false, Feature: compat.LogicalScrollMargin, HasFeature: true,
	}

	ScrollPaddingFamily = SideFamily{
		Top: cssast.ScrollPaddingTop, Right: cssast.ScrollPaddingRight, Bottom: cssast.ScrollPaddingBottom, Left: cssast.ScrollPaddingLeft,
		BlockStart: cssast.ScrollPaddingBlockStart, BlockEnd: cssast.ScrollPaddingBlockEnd,
		InlineStart: cssast.ScrollPaddingInlineStart, InlineEnd: cssast.ScrollPaddingInlineEnd,
		Shorthand: cssast.ScrollPadding, BlockShorthand: cssast.ScrollPaddingBlock, InlineShorthand: cssast.ScrollPaddingInline,
		LogicalShorthandOnly: false, Feature: compat.LogicalScrollPadding, HasFeature: true,
	}

	// InsetFamily's four-sided shorthand is itself considered a
	// logical feature in legacy engines (see the inset entry under
	// DESIGN.md's open-question decisions), so LogicalShorthandOnly is true: the shorthand form is
	// gated behind logical support, unlike margin/padding/scroll-*.
	InsetFamily = SideFamily{
		Top: cssast.Top, Right: cssast.Right, Bottom: cssast.Bottom, Left: cssast.Left,
		BlockStart: cssast.InsetBlockStart, BlockEnd: cssast.InsetBlockEnd,
		InlineStart: cssast.InsetInlineStart, InlineEnd: cssast.InsetInlineEnd,
		Shorthand: cssast.Inset, BlockShorthand: cssast.InsetBlock, InlineShorthand: cssast.InsetInline,
		LogicalShorthandOnly: true, Feature: compat.LogicalInset, HasFeature: true,
	}
)

// SideHandler is the stateful accumulator for one side family (margin,
// padding, inset, scroll-margin, scroll-padding). Its category-
// transition flush is the invariant that preserves cascade order when
// an author interleaves physical and logical declarations.
type SideHandler struct {
	family SideFamily

	top, bottom, left, right                     *cssast.LengthPercentageOrAuto
	blockStart, blockEnd, inlineStart, inlineEnd  *cssast.Property
	hasAny                                        bool
	category                                      cssast.PropertyCategory
}

// NewSideHandler creates a handler for the given family.
func NewSideHandler(family SideFamily) *SideHandler {
	return &SideHandler{family: family}
}

func lpa(v cssast.Value) (cssast.LengthPercentageOrAuto, bool) {
	l, ok := v.(cssast.LengthPercentageOrAuto)
	return l, ok
}

// Accumulate ingests one declaration. It returns false for any
// property id outside this family, causing the dispatcher to try the
// next handler.
func (h *SideHandler) Accumulate(p cssast.Property, dest *[]cssast.Property, ctx *minify.HandlerContext) bool {
	f := h.family

	switch {
	case p.Unparsed && h.ownsID(p.ID):
		switch p.ID {
		case f.BlockStart:
			h.setLogical(dest, ctx, &h.blockStart, p)
		case f.BlockEnd:
			h.setLogical(dest, ctx, &h.blockEnd, p)
		case f.InlineStart:
			h.setLogical(dest, ctx, &h.inlineStart, p)
		case f.InlineEnd:
			h.setLogical(dest, ctx, &h.inlineEnd, p)
		default:
			// Physical longhand or either shorthand: we can't interpret
			// the value, but flush what's pending and pass it through
			// verbatim so cascade order is preserved.
			h.flush(dest, ctx)
			*dest = append(*dest, p)
		}
		return true

	case p.Unparsed:
		return false

	case p.ID == f.Top:
		h.setPhysical(dest, ctx, &h.top, p.Value)
	case p.ID == f.Bottom:
		h.setPhysical(dest, ctx, &h.bottom, p.Value)
	case p.ID == f.Left:
		h.setPhysical(dest, ctx, &h.left, p.Value)
	case p.ID == f.Right:
		h.setPhysical(dest, ctx, &h.right, p.Value)

	case p.ID == f.BlockStart:
		h.setLogical(dest, ctx, &h.blockStart, p)
	case p.ID == f.BlockEnd:
		h.setLogical(dest, ctx, &h.blockEnd, p)
	case p.ID == f.InlineStart:
		h.setLogical(dest, ctx, &h.inlineStart, p)
	case p.ID == f.InlineEnd:
		h.setLogical(dest, ctx, &h.inlineEnd, p)

	case p.ID == f.BlockShorthand:
		size, ok := p.Value.(cssast.Size2D)
		if !ok {
			return false
		}
		h.setLogical(dest, ctx, &h.blockStart, cssast.NewProperty(f.BlockStart, size.Start))
		h.setLogical(dest, ctx, &h.blockEnd, cssast.NewProperty(f.BlockEnd, size.End))
	case p.ID == f.InlineShorthand:
		size, ok := p.Value.(cssast.Size2D)
		if !ok {
			return false
		}
		h.setLogical(dest, ctx, &h.inlineStart, cssast.NewProperty(f.InlineStart, size.Start))
		h.setLogical(dest, ctx, &h.inlineEnd, cssast.NewProperty(f.InlineEnd, size.End))

	case p.ID == f.Shorthand:
		rect, ok := p.Value.(cssast.Rect)
		if !ok {
			return false
		}
		top, bottom, left, right := rect.Top, rect.Bottom, rect.Left, rect.Right
		h.top, h.bottom, h.left, h.right = &top, &bottom, &left, &right
		h.blockStart, h.blockEnd, h.inlineStart, h.inlineEnd = nil, nil, nil, nil
		h.hasAny = true

	default:
		return false
	}

	return true
}

func (h *SideHandler) ownsID(id cssast.PropertyID) bool {
	f := h.family
	switch id {
	case f.Top, f.Bottom, f.Left, f.Right,
		f.BlockStart, f.BlockEnd, f.InlineStart, f.InlineEnd,
		f.Shorthand, f.BlockShorthand, f.InlineShorthand:
		return true
	default:
		return false
	}
}

func (h *SideHandler) setPhysical(dest *[]cssast.Property, ctx *minify.HandlerContext, slot **cssast.LengthPercentageOrAuto, value cssast.Value) {
	if h.category == cssast.Logical {
		h.flush(dest, ctx)
	}
	l, _ := lpa(value)
	*slot = &l
	h.category = cssast.Physical
	h.hasAny = true
}

func (h *SideHandler) setLogical(dest *[]cssast.Property, ctx *minify.HandlerContext, slot **cssast.Property, value cssast.Property) {
	if h.category == cssast.Physical {
		h.flush(dest, ctx)
	}
	v := value
	*slot = &v
	h.category = cssast.Logical
	h.hasAny = true
}

// Finalize performs a final flush at block end.
func (h *SideHandler) Finalize(dest *[]cssast.Property, ctx *minify.HandlerContext) {
	h.flush(dest, ctx)
}

func (h *SideHandler) flush(dest *[]cssast.Property, ctx *minify.HandlerContext) {
	if !h.hasAny {
		return
	}
	h.hasAny = false
	f := h.family

	top, bottom, left, right := h.top, h.bottom, h.left, h.right
	h.top, h.bottom, h.left, h.right = nil, nil, nil, nil

	logicalSupported := true
	if f.HasFeature {
		logicalSupported = ctx.IsSupported(f.Feature)
	}

	if (!f.LogicalShorthandOnly || logicalSupported) && top != nil && bottom != nil && left != nil && right != nil {
		*dest = append(*dest, cssast.NewProperty(f.Shorthand, cssast.Rect{Top: *top, Right: *right, Bottom: *bottom, Left: *left}))
	} else {
		if top != nil {
			*dest = append(*dest, cssast.NewProperty(f.Top, *top))
		}
		if bottom != nil {
			*dest = append(*dest, cssast.NewProperty(f.Bottom, *bottom))
		}
		if left != nil {
			*dest = append(*dest, cssast.NewProperty(f.Left, *left))
		}
		if right != nil {
			*dest = append(*dest, cssast.NewProperty(f.Right, *right))
		}
	}

	blockStart, blockEnd := h.blockStart, h.blockEnd
	inlineStart, inlineEnd := h.inlineStart, h.inlineEnd
	h.blockStart, h.blockEnd, h.inlineStart, h.inlineEnd = nil, nil, nil, nil

	if logicalSupported {
		h.flushLogicalAxis(dest, blockStart, blockEnd, f.BlockShorthand)
	} else {
		h.lowerToPhysical(dest, blockStart, f.Top)
		h.lowerToPhysical(dest, blockEnd, f.Bottom)
	}

	if logicalSupported {
		h.flushLogicalAxis(dest, inlineStart, inlineEnd, f.InlineShorthand)
	} else if inlineStart != nil || inlineEnd != nil {
		if h.equalValues(inlineStart, inlineEnd) {
			h.lowerToPhysical(dest, inlineStart, f.Left)
			h.lowerToPhysical(dest, inlineEnd, f.Right)
		} else {
			h.emitLogicalRulePair(ctx, inlineStart, f.Left, f.Right)
			h.emitLogicalRulePair(ctx, inlineEnd, f.Right, f.Left)
		}
	}
}

func (h *SideHandler) flushLogicalAxis(dest *[]cssast.Property, start, end *cssast.Property, shorthand cssast.PropertyID) {
	if start != nil && end != nil && !start.Unparsed && !end.Unparsed {
		sv, sok := lpa(start.Value)
		ev, eok := lpa(end.Value)
		if sok && eok {
			*dest = append(*dest, cssast.NewProperty(shorthand, cssast.Size2D{Start: sv, End: ev}))
			return
		}
	}
	if start != nil {
		*dest = append(*dest, *start)
	}
	if end != nil {
		*dest = append(*dest, *end)
	}
}

// lowerToPhysical rewrites a logical longhand (or its Unparsed form) to
// its physical equivalent when logical support isn't guaranteed.
func (h *SideHandler) lowerToPhysical(dest *[]cssast.Property, val *cssast.Property, physical cssast.PropertyID) {
	if val == nil {
		return
	}
	*dest = append(*dest, val.WithPropertyID(physical))
}

func (h *SideHandler) equalValues(a, b *cssast.Property) bool {
	if a == nil || b == nil || a.Unparsed || b.Unparsed {
		return false
	}
	return a.Equal(b.WithPropertyID(a.ID))
}

// emitLogicalRulePair defers inline-start/inline-end emission to a
// :dir()-scoped side rule when start != end: in LTR, inline-start maps
// to left; in RTL, inline-start maps to right.
func (h *SideHandler) emitLogicalRulePair(ctx *minify.HandlerContext, val *cssast.Property, ltrPhysical, rtlPhysical cssast.PropertyID) {
	if val == nil {
		return
	}
	ctx.AddLogicalRule(val.WithPropertyID(ltrPhysical), val.WithPropertyID(rtlPhysical))
}
