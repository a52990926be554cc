// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs holds the error taxonomy shared by every mefi package.
//
// Recoverable conditions (ShapeMismatch, WrongConnectivityVariant,
// NotFound, DimensionMismatch, CutElementNotFound) are returned as
// *Error values built with chk.Err-style formatting. Programmer errors
// (invariant violations the caller could have prevented) abort via
// chk.Panic and never reach this package.
package errs

import "github.com/cpmech/gosl/chk"

// Kind is one of the recoverable error kinds from spec §7.
type Kind int

// kinds
const (
	ShapeMismatch Kind = iota
	WrongConnectivityVariant
	NotFound
	DimensionMismatch
	CutElementNotFound
)

// String implements fmt.Stringer
func (k Kind) String() string {
	switch k {
	case ShapeMismatch:
		return "ShapeMismatch"
	case WrongConnectivityVariant:
		return "WrongConnectivityVariant"
	case NotFound:
		return "NotFound"
	case DimensionMismatch:
		return "DimensionMismatch"
	case CutElementNotFound:
		return "CutElementNotFound"
	}
	return "Unknown"
}

// Error is the concrete error value returned by recoverable operations.
type Error struct {
	Kind Kind
	Msg  string
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

// New builds a *Error the way chk.Err builds a plain error, tagged with a Kind.
func New(kind Kind, msg string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: chk.Err(msg, args...).Error()}
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
