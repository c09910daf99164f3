// Copyright (C) 2025 Sean Quill. All Rights Reserved.

package jev

import (
	"errors"
	"io"

	"github.com/seaqull/jev/jerr"
)

// errEndOfInput reports a clean end of input with no open containers.
// It never escapes the parse loops.
var errEndOfInput = errors.New("end of input")

// A Parser drives the event loop over a Stream, recognizing one JSON value
// per iteration and dispatching it to the statically-known handler type H.
// The parser validates structure as it goes; handlers only ever see
// correctly nested events.
type Parser[H Handler] struct {
	s *Stream
	h H

	// Position of the token being recognized, stamped onto failures.
	markOff  int
	markLine int
	markCol  int
}

// NewParser constructs a Parser delivering events from s to h.
func NewParser[H Handler](s *Stream, h H) *Parser[H] {
	return &Parser[H]{s: s, h: h}
}

// Handler returns the handler the parser dispatches to.
func (p *Parser[H]) Handler() H { return p.h }

// Parse consumes the input until a handler hook reports Finished or the
// input ends cleanly with no open containers. Values at the top level may
// repeat; each is delivered in order. The first failure stops the parse
// and is returned with the offending token's stream position attached.
func (p *Parser[H]) Parse() error {
	for {
		st, err := p.parseValue()
		if err == errEndOfInput {
			return nil
		} else if err != nil {
			return p.locate(err)
		}
		if st == Finished {
			return nil
		}
	}
}

// SubParse consumes exactly one complete value, terminating when a hook
// reports Finished. Unlike Parse, running out of input before the value is
// complete is a failure. A Finished result is not propagated: an enclosing
// parse that invoked SubParse keeps running.
func (p *Parser[H]) SubParse() error {
	for {
		st, err := p.parseValue()
		if err == errEndOfInput {
			return p.locate(jerr.New(jerr.UnexpectedEOF, "end of stream, want a value"))
		} else if err != nil {
			return p.locate(err)
		}
		if st == Finished {
			return nil
		}
	}
}

// locate stamps the position of the current token onto a failure that does
// not yet carry one. This is the single point where diagnostic support
// data is attached.
func (p *Parser[H]) locate(err error) error {
	if e, ok := err.(*jerr.Error); ok && e.Offset < 0 {
		e.Offset = p.markOff
		e.Line = p.markLine + 1
		e.Col = p.markCol
	}
	return err
}

// parseValue recognizes a single token-level event: a literal, a string or
// key, a number, a structural character, or a comma. It consults the item
// stack before dispatching the corresponding hook, so the handler never
// sees structurally invalid input.
func (p *Parser[H]) parseValue() (State, error) {
	s := p.s
	if err := s.skipSpace(); err != nil {
		return Running, err
	}
	if s.buf.AtEOF(0) {
		if s.buf.Err() != nil {
			return Running, s.streamErr()
		}
		p.mark()
		if err := s.stack.atEOF(); err != nil {
			return Running, err
		}
		return Running, errEndOfInput
	}
	p.mark()

	switch ch := s.buf.Peek(); {
	case ch == 'n':
		if err := s.skipLit("null"); err != nil {
			return Running, err
		}
		if err := s.stack.addValue(); err != nil {
			return Running, err
		}
		return p.h.OnNull()

	case ch == 't':
		if err := s.skipLit("true"); err != nil {
			return Running, err
		}
		if err := s.stack.addValue(); err != nil {
			return Running, err
		}
		return p.h.OnBool(true)

	case ch == 'f':
		if err := s.skipLit("false"); err != nil {
			return Running, err
		}
		if err := s.stack.addValue(); err != nil {
			return Running, err
		}
		return p.h.OnBool(false)

	case ch == '"':
		return p.parseStringOrKey()

	case ch == '{':
		if err := s.stack.pushObject(); err != nil {
			return Running, err
		}
		if err := s.advance(); err != nil {
			return Running, err
		}
		return p.h.OnStartObject()

	case ch == '}':
		if err := s.stack.popObject(); err != nil {
			return Running, err
		}
		if err := s.advance(); err != nil {
			return Running, err
		}
		return p.h.OnEndObject()

	case ch == '[':
		if err := s.stack.pushArray(); err != nil {
			return Running, err
		}
		if err := s.advance(); err != nil {
			return Running, err
		}
		return p.h.OnStartArray()

	case ch == ']':
		if err := s.stack.popArray(); err != nil {
			return Running, err
		}
		if err := s.advance(); err != nil {
			return Running, err
		}
		return p.h.OnEndArray()

	case ch == ',':
		if err := s.stack.comma(); err != nil {
			return Running, err
		}
		if err := s.advance(); err != nil {
			return Running, err
		}
		return p.h.OnComma()

	case isNumStart(ch):
		num, err := s.scanNumber()
		if err != nil {
			return Running, err
		}
		if err := s.stack.addValue(); err != nil {
			return Running, err
		}
		return p.h.OnNumber(num)

	default:
		return Running, jerr.Errorf(jerr.InvalidType, "unexpected %q", ch)
	}
}

// parseStringOrKey scans a quoted string and reclassifies it as an object
// member key when the next non-space character is a colon, which is then
// consumed as part of the key.
func (p *Parser[H]) parseStringOrKey() (State, error) {
	s := p.s
	if err := s.scanStringRaw(); err != nil {
		return Running, err
	}
	if err := s.skipSpace(); err != nil {
		return Running, err
	}
	if !s.buf.AtEOF(0) && s.buf.Peek() == ':' {
		if err := s.skip(':'); err != nil {
			return Running, err
		}
		if err := s.stack.addKey(); err != nil {
			return Running, err
		}
		var err error
		if s.key, err = decodeString(s.key, s.scratch); err != nil {
			return Running, err
		}
		return p.h.OnKey(s.key)
	}
	if s.buf.Err() != nil {
		return Running, s.streamErr()
	}
	if err := s.stack.addValue(); err != nil {
		return Running, err
	}
	var err error
	if s.val, err = decodeString(s.val, s.scratch); err != nil {
		return Running, err
	}
	return p.h.OnString(s.val)
}

// mark records the position of the token about to be recognized.
func (p *Parser[H]) mark() {
	p.markOff = p.s.buf.Tell()
	p.markLine = p.s.buf.Line()
	p.markCol = p.s.buf.Col()
}

// Validate consumes the entire input of s, checking structure only, and
// returns the first failure.
func Validate(s *Stream) error {
	return NewParser(s, Lenient{}).Parse()
}

// Valid reports whether the input of r is well-formed JSON within the
// default limits.
func Valid(r io.Reader) bool { return Validate(NewStream(r)) == nil }
