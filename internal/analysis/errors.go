// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package analysis

import (
	"errors"
	"fmt"
)

// Kind classifies analysis failures for the HTTP boundary.
type Kind int

const (
	// KindUnknown is any error that is not an *Error.
	KindUnknown Kind = iota
	// KindNotFound means the requested company has no rows.
	KindNotFound
	// KindValidation means required input was missing or malformed.
	KindValidation
	// KindUpstream means the data source failed.
	KindUpstream
)

// String returns the kind name used in logs and metric labels.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "invalid"
	case KindUpstream:
		return "upstream"
	case KindUnknown:
		return "error"
	}
	return "error"
}

// Error is a classified analysis failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports that no rows exist for companyID.
func NotFound(companyID string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("No data found for company %s", companyID)}
}

// Validation reports malformed or missing input.
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Upstream wraps a data source failure.
func Upstream(err error) *Error {
	return &Error{Kind: KindUpstream, Message: "failed to load calls table", Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var aerr *Error
	if errors.As(err, &aerr) {
		return aerr.Kind
	}
	return KindUnknown
}
