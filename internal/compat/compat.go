// Package compat is the compatibility oracle: it answers whether a CSS
// feature is supported by every browser in a target matrix.
package compat

// Browser identifies one engine tracked in a target matrix.
type Browser int

const (
	Chrome Browser = iota
	Firefox
	Safari
	IOSSafari
	Edge
	Opera
	Android
	Samsung
	IE
)

// Version packs major.minor.patch into a single integer: major occupies
// the high bits, minor the next 16, patch the low 16.
type Version uint64

// NewVersion packs a major/minor/patch triple.
func NewVersion(major, minor, patch uint32) Version {
	return Version(uint64(major)<<32 | uint64(minor)<<16 | uint64(patch))
}

// Targets maps browser keys to the minimum version a stylesheet must run on.
type Targets map[Browser]Version

// Feature is a fixed enumeration of CSS features the handlers consult
// the oracle about before emitting a modern form.
type Feature int

const (
	LogicalMargin Feature = iota
	LogicalPadding
	LogicalInset
	LogicalScrollMargin
	LogicalScrollPadding
	CustomMediaQueries
	ColorFunctionLab
	ColorFunctionLch
	ColorFunctionOklab
	ColorFunctionOklch
	ColorMix
	DoublePositionGradients
)

// support is the compiled-in minimum version, per browser, at which a
// feature became available. A feature with no entry for a browser is
// treated as never supported there.
var support = map[Feature]map[Browser]Version{
	LogicalMargin: {
		Chrome: NewVersion(87, 0, 0), Firefox: NewVersion(66, 0, 0), Safari: NewVersion(14, 1, 0),
		IOSSafari: NewVersion(14, 5, 0), Edge: NewVersion(87, 0, 0), Opera: NewVersion(73, 0, 0),
		Android: NewVersion(87, 0, 0), Samsung: NewVersion(14, 0, 0),
	},
	LogicalPadding: {
		Chrome: NewVersion(87, 0, 0), Firefox: NewVersion(66, 0, 0), Safari: NewVersion(14, 1, 0),
		IOSSafari: NewVersion(14, 5, 0), Edge: NewVersion(87, 0, 0), Opera: NewVersion(73, 0, 0),
		Android: NewVersion(87, 0, 0), Samsung: NewVersion(14, 0, 0),
	},
	LogicalInset: {
		Chrome: NewVersion(87, 0, 0), Firefox: NewVersion(63, 0, 0), Safari: NewVersion(14, 1, 0),
		IOSSafari: NewVersion(14, 5, 0), Edge: NewVersion(87, 0, 0), Opera: NewVersion(73, 0, 0),
		Android: NewVersion(87, 0, 0), Samsung: NewVersion(14, 0, 0),
	},
	LogicalScrollMargin: {
		Chrome: NewVersion(69, 0, 0), Firefox: NewVersion(68, 0, 0), Safari: NewVersion(14, 1, 0),
		IOSSafari: NewVersion(14, 5, 0), Edge: NewVersion(79, 0, 0), Opera: NewVersion(56, 0, 0),
		Android: NewVersion(69, 0, 0), Samsung: NewVersion(10, 0, 0),
	},
	LogicalScrollPadding: {
		Chrome: NewVersion(69, 0, 0), Firefox: NewVersion(68, 0, 0), Safari: NewVersion(14, 1, 0),
		IOSSafari: NewVersion(14, 5, 0), Edge: NewVersion(79, 0, 0), Opera: NewVersion(56, 0, 0),
		Android: NewVersion(69, 0, 0), Samsung: NewVersion(10, 0, 0),
	},
	CustomMediaQueries: {}, // not natively supported anywhere yet
	ColorFunctionLab: {
		Chrome: NewVersion(111, 0, 0), Firefox: NewVersion(113, 0, 0), Safari: NewVersion(15, 0, 0),
		IOSSafari: NewVersion(15, 0, 0), Edge: NewVersion(111, 0, 0), Opera: NewVersion(97, 0, 0),
	},
	ColorFunctionLch: {
		Chrome: NewVersion(111, 0, 0), Firefox: NewVersion(113, 0, 0), Safari: NewVersion(15, 0, 0),
		IOSSafari: NewVersion(15, 0, 0), Edge: NewVersion(111, 0, 0), Opera: NewVersion(97, 0, 0),
	},
	ColorFunctionOklab: {
		Chrome: NewVersion(111, 0, 0), Firefox: NewVersion(113, 0, 0), Safari: NewVersion(15, 4, 0),
		IOSSafari: NewVersion(15, 4, 0), Edge: NewVersion(111, 0, 0), Opera: NewVersion(97, 0, 0),
	},
	ColorFunctionOklch: {
		Chrome: NewVersion(111, 0, 0), Firefox: NewVersion(113, 0, 0), Safari: NewVersion(15, 4, 0),
		IOSSafari: NewVersion(15, 4, 0), Edge: NewVersion(111, 0, 0), Opera: NewVersion(97, 0, 0),
	},
	ColorMix: {
		Chrome: NewVersion(111, 0, 0), Firefox: NewVersion(113, 0, 0), Safari: NewVersion(16, 2, 0),
		IOSSafari: NewVersion(16, 2, 0), Edge: NewVersion(111, 0, 0), Opera: NewVersion(97, 0, 0),
	},
	DoublePositionGradients: {
		Chrome: NewVersion(72, 0, 0), Firefox: NewVersion(85, 0, 0), Safari: NewVersion(12, 1, 0),
		IOSSafari: NewVersion(12, 2, 0), Edge: NewVersion(79, 0, 0), Opera: NewVersion(60, 0, 0),
		Android: NewVersion(72, 0, 0), Samsung: NewVersion(11, 0, 0),
	},
}

// IsCompatible reports whether every browser in targets can be relied
// on to support feature natively. A nil/empty targets matrix means
// "assume modern" and always returns true.
func IsCompatible(feature Feature, targets Targets) bool {
	if len(targets) == 0 {
		return true
	}

	table := support[feature]
	for browser, version := range targets {
		min, ok := table[browser]
		if !ok || version < min {
			return false
		}
	}
	return true
}
