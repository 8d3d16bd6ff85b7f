// pdfplumber - structured content extraction for PDF documents
// Copyright (C) 2026 The pdfplumber-go Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package pderr defines the error taxonomy extraction reports to callers:
// a small set of typed, wrapped errors distinguishing document-level
// failures (can't be opened at all) from page-level ones (one page is
// unreadable but the rest of the document may still extract fine).
package pderr

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// Kind classifies an extraction error for callers deciding whether to
// abort or skip-and-continue.
type Kind int

const (
	// KindOther is an uncategorized error.
	KindOther Kind = iota
	// KindEncrypted means the document requires a password pdfplumber was
	// not given, or the given password was wrong.
	KindEncrypted
	// KindMalformed means the document's structure could not be parsed at
	// all (corrupt xref table, truncated file, etc.).
	KindMalformed
	// KindUnsupportedFeature means a specific PDF feature the document
	// uses falls outside this package's scope (see each module's
	// Non-goals): encountering it skips the affected page or object
	// rather than aborting the whole document.
	KindUnsupportedFeature
	// KindPage means extraction failed for one specific page; the
	// document-level walk continues with the next page.
	KindPage
)

// Error is a typed, wrapped extraction error. Unwrap returns the
// underlying cause so errors.Is/errors.As keep working through this
// wrapper.
type Error struct {
	Kind  Kind
	Page  int // 1-based page number, 0 if not page-specific
	cause error
}

func (e *Error) Error() string {
	msg := e.cause.Error()
	if e.Page > 0 {
		return pkgerrors.Wrapf(e.cause, "page %d", e.Page).Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.cause }

// Wrap annotates err with a Kind and returns it as an *Error. Returns nil
// if err is nil.
func Wrap(err error, kind Kind) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, cause: pkgerrors.WithStack(err)}
}

// WrapPage annotates err as having occurred while processing the given
// 1-based page number.
func WrapPage(err error, page int, kind Kind) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Page: page, cause: pkgerrors.WithStack(err)}
}

// Newf builds a new *Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, cause: pkgerrors.Errorf(format, args...)}
}

// KindOf returns the Kind of err if it (or something it wraps) is an
// *Error, and KindOther otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindOther
}
