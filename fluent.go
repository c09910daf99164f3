// Copyright (C) 2025 Sean Quill. All Rights Reserved.

package jev

import (
	"fmt"

	"github.com/seaqull/jev/jerr"
)

// A Fluent chains typed sub-parsers against a single running result.
// Once any step fails, every later step is a no-op and Err returns the
// first failure. The zero Fluent is not usable; construct one with
// NewFluent.
type Fluent struct {
	s         *Stream
	err       error
	annotated bool
}

// NewFluent constructs a fluent façade over s.
func NewFluent(s *Stream) *Fluent { return &Fluent{s: s} }

// Err returns the first failure encountered by the chain, or nil.
func (f *Fluent) Err() error { return f.err }

// Stream returns the underlying stream, for mixing chained steps with
// direct sub-parser calls.
func (f *Fluent) Stream() *Stream { return f.s }

func (f *Fluent) step(run func() error) *Fluent {
	if f.err == nil {
		f.err = run()
	}
	return f
}

// StartObject consumes an opening brace.
func (f *Fluent) StartObject() *Fluent { return f.step(f.s.StartObject) }

// EndObject consumes a closing brace.
func (f *Fluent) EndObject() *Fluent { return f.step(f.s.EndObject) }

// StartArray consumes an opening bracket.
func (f *Fluent) StartArray() *Fluent { return f.step(f.s.StartArray) }

// EndArray consumes a closing bracket.
func (f *Fluent) EndArray() *Fluent { return f.step(f.s.EndArray) }

// Key consumes an object member key and requires it to equal name.
func (f *Fluent) Key(name string) *Fluent {
	return f.step(func() error {
		return f.s.Key(func(k []byte) error {
			if string(k) != name {
				return jerr.Errorf(jerr.UserValidationFailed,
					"unexpected key %q, want %q", k, name)
			}
			return nil
		})
	})
}

// Null consumes a null value.
func (f *Fluent) Null() *Fluent {
	return f.step(func() error { return f.s.Null(nil) })
}

// Bool consumes a boolean value into dst.
func (f *Fluent) Bool(dst *bool) *Fluent {
	return f.step(func() error {
		return f.s.Bool(func(v bool) error { *dst = v; return nil })
	})
}

// String consumes a string value into dst.
func (f *Fluent) String(dst *string) *Fluent {
	return f.step(func() error {
		return f.s.String(func(v []byte) error { *dst = string(v); return nil })
	})
}

// Int64 consumes a numeric value into dst.
func (f *Fluent) Int64(dst *int64) *Fluent { return NumberAs(f, dst) }

// Uint64 consumes a numeric value into dst.
func (f *Fluent) Uint64(dst *uint64) *Fluent { return NumberAs(f, dst) }

// Float64 consumes a numeric value into dst.
func (f *Fluent) Float64(dst *float64) *Fluent { return NumberAs(f, dst) }

// NumberAs consumes a numeric value into dst, converted to T.
func NumberAs[T Numeric](f *Fluent, dst *T) *Fluent {
	return f.step(func() error {
		return ParseNumber(f.s, func(v T) error { *dst = v; return nil })
	})
}

// Array consumes a complete array; see Stream.Array.
func (f *Fluent) Array(elem func(i int) error, finalize func(n int) error) *Fluent {
	return f.step(func() error { return f.s.Array(elem, finalize) })
}

// Object consumes a complete object; see Stream.Object.
func (f *Fluent) Object(member func(key []byte) error, finalize func(n int) error) *Fluent {
	return f.step(func() error { return f.s.Object(member, finalize) })
}

// AddErrorInfo annotates the first-encountered failure with additional
// context, at most once; later calls are no-ops. The original error
// remains reachable via Unwrap, so its failure code is preserved.
func (f *Fluent) AddErrorInfo(format string, args ...any) *Fluent {
	if f.err != nil && !f.annotated {
		f.err = fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), f.err)
		f.annotated = true
	}
	return f
}
