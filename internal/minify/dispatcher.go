package minify

import (
	"github.com/yacobolo/cssmin/internal/cssast"
	"github.com/yacobolo/cssmin/internal/minify/handlers"
)

// NewHandlerChain returns the fixed ordered list of handlers the
// Declaration Handler Dispatcher tries, one fresh instance per
// declaration block. Order only matters in that each handler owns a
// disjoint property family, so a later handler never shadows an
// earlier one's properties — the fixed order is about shape, not
// priority.
func NewHandlerChain() []handlers.Handler {
	return []handlers.Handler{
		handlers.NewSideHandler(handlers.MarginFamily),
		handlers.NewSideHandler(handlers.PaddingFamily),
		handlers.NewSideHandler(handlers.InsetFamily),
		handlers.NewSideHandler(handlers.ScrollMarginFamily),
		handlers.NewSideHandler(handlers.ScrollPaddingFamily),
		handlers.NewBorderHandler(),
		handlers.NewBackgroundHandler(),
		handlers.NewFontHandler(),
		handlers.NewTransitionHandler(),
		handlers.NewFlexHandler(),
		handlers.NewTextDecorationHandler(),
		handlers.NewOutlineHandler(),
	}
}

// DeclarationHandler is the dispatcher owning one handler chain per
// importance bucket: declarations with !important are routed through
// an entirely separate set of handler instances, so a shorthand is
// never folded across the important/non-important boundary. Anything
// no handler in the chain accepts falls through to the rest bucket
// verbatim, preserving the author's intent unconditionally per the
// error boundary policy.
type DeclarationHandler struct {
	normal    []handlers.Handler
	important []handlers.Handler
}

// NewDeclarationHandler builds a dispatcher with a fresh handler chain
// for each importance bucket.
func NewDeclarationHandler() *DeclarationHandler {
	return &DeclarationHandler{
		normal:    NewHandlerChain(),
		important: NewHandlerChain(),
	}
}

// HandleProperty routes property to the first handler in the bucket
// selected by important that accepts it, appending to dest on accept.
// A property no handler in the bucket owns is appended to dest
// verbatim — the rest-handler fallthrough. The context's IsImportant
// flag is set before any handler runs, per the context's own
// documented precondition for add_conditional_property.
//
// Any typed value carrying a feature gap (currently: color functions
// and double-position gradient stops needing a down-leveled fallback) stages its replacements in the
// context's supports buffer regardless of which handler (or the rest
// bucket) accepted the property — folding into a shorthand or passing
// through verbatim doesn't change whether the value itself needs a
// fallback.
func (d *DeclarationHandler) HandleProperty(property cssast.Property, important bool, dest *[]cssast.Property, ctx *HandlerContext) {
	ctx.IsImportant = important
	chain := d.normal
	if important {
		chain = d.important
	}

	accepted := false
	for _, h := range chain {
		if h.Accumulate(property, dest, ctx) {
			accepted = true
			break
		}
	}
	if !accepted {
		*dest = append(*dest, property)
	}

	if !property.Unparsed && property.Value != nil {
		ctx.AddUnparsedFallbacks(property.ID, property.Value)
	}
}

// Finalize flushes every handler in both buckets, normal bucket first
// then important, appending their pending output to the matching
// destination slice.
func (d *DeclarationHandler) Finalize(dest, importantDest *[]cssast.Property, ctx *HandlerContext) {
	for _, h := range d.normal {
		h.Finalize(dest, ctx)
	}
	for _, h := range d.important {
		h.Finalize(importantDest, ctx)
	}
}
