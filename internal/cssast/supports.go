package cssast

import "strings"

// SupportsAtom is a leaf condition: `(property: value-pattern)`, e.g.
// `(color: lab(0% 0 0))`.
type SupportsAtom struct {
	PropertyID   PropertyID
	ValuePattern string
}

// SupportsCondition is a boolean expression tree over SupportsAtom
// leaves, e.g. for `@supports (color: lab(...)) and not (color: color-mix(...))`.
// Exactly one of Atom, Not, And, Or is set.
type SupportsCondition struct {
	Atom *SupportsAtom
	Not  *SupportsCondition
	And  []SupportsCondition
	Or   []SupportsCondition
}

// Feature builds a leaf condition for one property/value-pattern pair.
func Feature(id PropertyID, valuePattern string) SupportsCondition {
	return SupportsCondition{Atom: &SupportsAtom{PropertyID: id, ValuePattern: valuePattern}}
}

// And2 combines two conditions with a boolean AND, e.g.
// Feature(...).And2(Negate(Feature(...))).
func (c SupportsCondition) And2(other SupportsCondition) SupportsCondition {
	return SupportsCondition{And: []SupportsCondition{c, other}}
}

// Negate wraps a condition in a boolean NOT.
func Negate(c SupportsCondition) SupportsCondition {
	cc := c
	return SupportsCondition{Not: &cc}
}

// Equal is condition identity: two SupportsEntry buffers in the
// Property Handler Context are merged when their conditions are Equal,
// so this must be a structural, not pointer, comparison.
func (c SupportsCondition) Equal(other SupportsCondition) bool {
	switch {
	case c.Atom != nil:
		return other.Atom != nil && *c.Atom == *other.Atom
	case c.Not != nil:
		return other.Not != nil && c.Not.Equal(*other.Not)
	case c.And != nil:
		return equalConditionSlice(c.And, other.And)
	case c.Or != nil:
		return equalConditionSlice(c.Or, other.Or)
	default:
		return other.Atom == nil && other.Not == nil && other.And == nil && other.Or == nil
	}
}

func equalConditionSlice(a, b []SupportsCondition) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// String renders the condition as it would appear after `@supports`.
// Print uses it for every @supports rule. An atom with no known
// property name (the parser stores a source @supports prelude that way)
// renders its ValuePattern verbatim.
func (c SupportsCondition) String() string {
	switch {
	case c.Atom != nil:
		name := propertyName(c.Atom.PropertyID)
		if name == "" {
			return c.Atom.ValuePattern
		}
		return "(" + name + ": " + c.Atom.ValuePattern + ")"
	case c.Not != nil:
		return "not " + c.Not.String()
	case c.And != nil:
		return joinConditions(c.And, " and ")
	case c.Or != nil:
		return joinConditions(c.Or, " or ")
	default:
		return ""
	}
}

func joinConditions(conds []SupportsCondition, sep string) string {
	parts := make([]string, len(conds))
	for i, cond := range conds {
		parts[i] = cond.String()
	}
	return strings.Join(parts, sep)
}
