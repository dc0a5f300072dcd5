// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package nbt

import (
	"fmt"

	"github.com/dsnet/golib/errs"
)

// ErrorKind identifies the category of a decode failure.
type ErrorKind uint8

const (
	_ ErrorKind = iota
	UnexpectedBufferEnd
	InvalidTag
	UnexpectedEndTag
	VarnumTooLarge
	InvalidOpeningTag
	UnexpectedRootName
	Validation
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedBufferEnd:
		return "unexpected-buffer-end"
	case InvalidTag:
		return "invalid-tag"
	case UnexpectedEndTag:
		return "unexpected-end-tag"
	case VarnumTooLarge:
		return "varnum-too-large"
	case InvalidOpeningTag:
		return "invalid-opening-tag"
	case UnexpectedRootName:
		return "unexpected-root-name"
	case Validation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is the wrapper type for errors produced by this package.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string { return "nbt: " + e.Kind.String() + ": " + e.Msg }

func errorf(kind ErrorKind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, a...)}
}

// panicf raises a *Error of the given kind. It is only ever called from
// within a decode attempt guarded by errs.Recover further up the call stack
// (see driver.go and cursor.go).
func panicf(kind ErrorKind, format string, a ...interface{}) {
	errs.Panic(errorf(kind, format, a...))
}
