package cssmin

import "fmt"

// Location pinpoints where an error kind originated in the source:
// which input (by index into StyleSheet.Sources) and the line/column
// within it.
type Location struct {
	SourceIndex int
	Line        int
	Column      int
}

// ParseError surfaces from the external parser; the core never
// produces one itself. It's defined here so callers wiring a parser
// in front of this core have a shared error shape to report through.
type ParseError struct {
	Loc Location
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %v", e.Loc.Line, e.Loc.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MinifyError surfaces only from top-level minify operations. In this
// package it is produced for a reference to an undefined @custom-media;
// there is no CSS-modules name-collision check. It carries a
// source-index + line/column.
type MinifyError struct {
	Loc Location
	Err error
}

func (e *MinifyError) Error() string {
	return fmt.Sprintf("minify error at %d:%d: %v", e.Loc.Line, e.Loc.Column, e.Err)
}

func (e *MinifyError) Unwrap() error { return e.Err }

// PrintError surfaces from the serializer: formatting failures and
// invalid CSS-module identifier generation. The core doesn't print;
// this type exists so a serializer built against this package's tree
// has a matching error shape.
type PrintError struct {
	Loc Location
	Err error
}

func (e *PrintError) Error() string {
	return fmt.Sprintf("print error at %d:%d: %v", e.Loc.Line, e.Loc.Column, e.Err)
}

func (e *PrintError) Unwrap() error { return e.Err }

// errUndefinedCustomMedia reports a @media query referencing a
// @custom-media name with no matching definition in the stylesheet.
func errUndefinedCustomMedia(name string) error {
	return fmt.Errorf("undefined custom media query: --%s", name)
}
