// Copyright (C) 2025 Sean Quill. All Rights Reserved.

package jev

import (
	"github.com/seaqull/jev/jerr"
)

// wrapCallback folds a user callback failure into the error taxonomy so
// that a stream position can be attached. Errors already in the taxonomy
// pass through; the original error remains reachable via Unwrap.
func wrapCallback(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*jerr.Error); ok {
		return err
	}
	return jerr.Wrap(jerr.UserValidationFailed, "callback rejected value", err)
}

// locate stamps the current cursor position onto a failure that does not
// yet carry one. Used by the container sub-parsers, which run their own
// loops outside a Parser.
func (s *Stream) locate(err error) error {
	if e, ok := err.(*jerr.Error); ok && e.Offset < 0 {
		e.Offset = s.buf.Tell()
		e.Line = s.buf.Line() + 1
		e.Col = s.buf.Col()
	}
	return err
}

// seek positions the cursor at the next token, classifying a premature end
// of stream via the item stack.
func (s *Stream) seek() error {
	if err := s.skipSpace(); err != nil {
		return err
	}
	if s.buf.AtEOF(0) {
		if s.buf.Err() != nil {
			return s.streamErr()
		}
		if err := s.stack.atEOF(); err != nil {
			return s.locate(err)
		}
		return s.locate(jerr.New(jerr.UnexpectedEOF, "end of stream, want a value"))
	}
	return nil
}

// Single-purpose strict handlers. Each accepts exactly one event kind,
// forwards it to the user callback, and reports Finished; everything else
// funnels into the Strict base's unexpected-event failure.

type nullParser struct {
	Strict
	fn func() error
}

func (p *nullParser) OnNull() (State, error) {
	if p.fn != nil {
		if err := p.fn(); err != nil {
			return Running, wrapCallback(err)
		}
	}
	return Finished, nil
}

type boolParser struct {
	Strict
	fn func(bool) error
}

func (p *boolParser) OnBool(v bool) (State, error) {
	if err := p.fn(v); err != nil {
		return Running, wrapCallback(err)
	}
	return Finished, nil
}

type stringParser struct {
	Strict
	fn func([]byte) error
}

func (p *stringParser) OnString(v []byte) (State, error) {
	if err := p.fn(v); err != nil {
		return Running, wrapCallback(err)
	}
	return Finished, nil
}

type keyParser struct {
	Strict
	fn func([]byte) error
}

func (p *keyParser) OnKey(k []byte) (State, error) {
	if err := p.fn(k); err != nil {
		return Running, wrapCallback(err)
	}
	return Finished, nil
}

type numberParser[T Numeric] struct {
	Strict
	fn func(T) error
}

func (p *numberParser[T]) OnNumber(n Number) (State, error) {
	v, ok := As[T](n)
	if !ok {
		return Running, jerr.Errorf(jerr.InvalidNumber,
			"cannot represent %q as %T", n.Text(), v)
	}
	if err := p.fn(v); err != nil {
		return Running, wrapCallback(err)
	}
	return Finished, nil
}

// Structural one-token parsers, used by the container loops and the
// fluent façade.

type startObjectParser struct{ Strict }

func (*startObjectParser) OnStartObject() (State, error) { return Finished, nil }

type endObjectParser struct{ Strict }

func (*endObjectParser) OnEndObject() (State, error) { return Finished, nil }

type startArrayParser struct{ Strict }

func (*startArrayParser) OnStartArray() (State, error) { return Finished, nil }

type endArrayParser struct{ Strict }

func (*endArrayParser) OnEndArray() (State, error) { return Finished, nil }

// Null consumes exactly one null value. The callback may be nil.
func (s *Stream) Null(fn func() error) error {
	return NewParser(s, &nullParser{fn: fn}).SubParse()
}

// Bool consumes exactly one boolean value and passes it to fn.
func (s *Stream) Bool(fn func(bool) error) error {
	return NewParser(s, &boolParser{fn: fn}).SubParse()
}

// String consumes exactly one string value and passes its decoded bytes to
// fn. The slice is reused; fn must copy it to retain it.
func (s *Stream) String(fn func([]byte) error) error {
	return NewParser(s, &stringParser{fn: fn}).SubParse()
}

// Key consumes exactly one object member key, including its colon, and
// passes the decoded key to fn. The slice is reused; fn must copy it to
// retain it.
func (s *Stream) Key(fn func([]byte) error) error {
	return NewParser(s, &keyParser{fn: fn}).SubParse()
}

// ParseNumber consumes exactly one numeric value, converts it to T, and
// passes it to fn. A lexeme that cannot be represented in T is an
// invalid-number failure.
func ParseNumber[T Numeric](s *Stream, fn func(T) error) error {
	return NewParser(s, &numberParser[T]{fn: fn}).SubParse()
}

// StartObject consumes exactly one opening brace.
func (s *Stream) StartObject() error {
	return NewParser(s, &startObjectParser{}).SubParse()
}

// EndObject consumes exactly one closing brace.
func (s *Stream) EndObject() error {
	return NewParser(s, &endObjectParser{}).SubParse()
}

// StartArray consumes exactly one opening bracket.
func (s *Stream) StartArray() error {
	return NewParser(s, &startArrayParser{}).SubParse()
}

// EndArray consumes exactly one closing bracket.
func (s *Stream) EndArray() error {
	return NewParser(s, &endArrayParser{}).SubParse()
}

// Array consumes exactly one complete array. For each element, elem is
// invoked with the zero-based element index and must consume exactly one
// value using the typed sub-parsers (nested Array and Object included).
// At the closing bracket, finalize (if non-nil) receives the element count
// for post-parse validation. Separating commas are skipped by the element
// sub-parsers; elem never sees them.
func (s *Stream) Array(elem func(i int) error, finalize func(n int) error) error {
	if err := s.StartArray(); err != nil {
		return err
	}
	n := 0
	for {
		if err := s.seek(); err != nil {
			return err
		}
		if s.buf.Peek() == ']' {
			if err := s.EndArray(); err != nil {
				return err
			}
			break
		}
		before := s.buf.Tell()
		if err := elem(n); err != nil {
			return s.locate(wrapCallback(err))
		}
		if s.buf.Tell() == before {
			return s.locate(jerr.New(jerr.UserValidationFailed,
				"element callback consumed no input"))
		}
		n++
	}
	if finalize != nil {
		if err := finalize(n); err != nil {
			return s.locate(wrapCallback(err))
		}
	}
	return nil
}

// Object consumes exactly one complete object. For each member, member is
// invoked with the decoded key (reused storage; copy to retain) and must
// consume the member's value using the typed sub-parsers. At the closing
// brace, finalize (if non-nil) receives the member count. An aggregate
// restricted to leaf values is expressed by using only leaf sub-parsers
// inside member.
func (s *Stream) Object(member func(key []byte) error, finalize func(n int) error) error {
	if err := s.StartObject(); err != nil {
		return err
	}
	n := 0
	for {
		if err := s.seek(); err != nil {
			return err
		}
		if s.buf.Peek() == '}' {
			if err := s.EndObject(); err != nil {
				return err
			}
			break
		}
		var key []byte
		if err := s.Key(func(k []byte) error { key = k; return nil }); err != nil {
			return err
		}
		before := s.buf.Tell()
		if err := member(key); err != nil {
			return s.locate(wrapCallback(err))
		}
		if s.buf.Tell() == before {
			return s.locate(jerr.New(jerr.UserValidationFailed,
				"member callback consumed no input"))
		}
		n++
	}
	if finalize != nil {
		if err := finalize(n); err != nil {
			return s.locate(wrapCallback(err))
		}
	}
	return nil
}
