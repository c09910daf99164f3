// Copyright (C) 2025 Sean Quill. All Rights Reserved.

package jev

import (
	"fmt"
	"io"

	"go4.org/mem"

	"github.com/seaqull/jev/internal/escape"
	"github.com/seaqull/jev/jerr"
)

// A Config carries the construction-time limits of a Stream. Zero fields
// take the package defaults.
type Config struct {
	MaxDepth      int // maximum container nesting depth
	Window        int // read-window size of the stream buffer
	KeyReserve    int // initial capacity of the key buffer
	StringReserve int // initial capacity of the string/number buffer
}

// A Stream owns the input cursor, the structural validation stack, and the
// reusable lexeme buffers of one parse. A Stream is a unique resource: it
// must not be copied, and it is not safe for concurrent use.
type Stream struct {
	buf      *Buffer
	stack    itemStack
	key      []byte // current key lexeme, reused between keys
	val      []byte // current string/number lexeme, reused between values
	scratch  []byte // undecoded string text
	comments bool
}

// NewStream constructs a Stream reading from r with default limits.
func NewStream(r io.Reader) *Stream { return NewStreamConfig(r, Config{}) }

// NewStreamConfig constructs a Stream reading from r with the given limits.
func NewStreamConfig(r io.Reader, cfg Config) *Stream {
	return NewStreamWithBuffer(NewBuffer(r, cfg.Window), cfg)
}

// NewStreamWithBuffer constructs a Stream that consumes input from b.
// The Stream takes ownership of b.
func NewStreamWithBuffer(b *Buffer, cfg Config) *Stream {
	if cfg.KeyReserve <= 0 {
		cfg.KeyReserve = DefaultKeyReserve
	}
	if cfg.StringReserve <= 0 {
		cfg.StringReserve = DefaultStringReserve
	}
	return &Stream{
		buf:     b,
		stack:   newItemStack(cfg.MaxDepth),
		key:     make([]byte, 0, cfg.KeyReserve),
		val:     make([]byte, 0, cfg.StringReserve),
		scratch: make([]byte, 0, cfg.StringReserve),
	}
}

// AllowComments configures the stream to discard (true) or reject (false)
// C++ style comments. Comments are a non-standard extension of JSON.
func (s *Stream) AllowComments(ok bool) { s.comments = ok }

// Offset returns the absolute character offset of the cursor.
func (s *Stream) Offset() int { return s.buf.Tell() }

// Depth returns the number of currently open containers.
func (s *Stream) Depth() int { return s.stack.depth() }

// streamErr converts a sticky buffer error into a returnable error.
func (s *Stream) streamErr() error {
	return fmt.Errorf("stream read failed: %w", s.buf.Err())
}

// advance consumes one character, surfacing a stream error.
func (s *Stream) advance() error {
	if !s.buf.Advance() {
		return s.streamErr()
	}
	return nil
}

// skip consumes the single character ch at the cursor, or fails.
func (s *Stream) skip(ch byte) error {
	if s.buf.AtEOF(0) {
		if s.buf.Err() != nil {
			return s.streamErr()
		}
		return jerr.Errorf(jerr.UnexpectedEOF, "end of stream, want %q", ch)
	}
	if got := s.buf.Peek(); got != ch {
		return jerr.Errorf(jerr.InvalidString, "got %q, want %q", got, ch)
	}
	return s.advance()
}

// skipLit consumes the exact literal lit ("true", "false", "null").
// The consumed characters are compared in one step against the expected
// literal; a mismatch is an invalid-string failure.
func (s *Stream) skipLit(lit string) error {
	s.scratch = s.scratch[:0]
	for i := 0; i < len(lit); i++ {
		if s.buf.AtEOF(0) {
			if s.buf.Err() != nil {
				return s.streamErr()
			}
			return jerr.Errorf(jerr.UnexpectedEOF, "end of stream in literal %q", lit)
		}
		s.scratch = append(s.scratch, s.buf.Peek())
		if err := s.advance(); err != nil {
			return err
		}
	}
	if !mem.B(s.scratch).Equal(mem.S(lit)) {
		return jerr.Errorf(jerr.InvalidString, "unknown literal %q", s.scratch)
	}
	return nil
}

// scanWhile consumes characters matching pred, passing each to emit.
// It stops without error at end of stream or at the first non-matching
// character, which is left unconsumed.
func (s *Stream) scanWhile(pred func(byte) bool, emit func(byte)) error {
	for !s.buf.AtEOF(0) {
		ch := s.buf.Peek()
		if !pred(ch) {
			return nil
		}
		if emit != nil {
			emit(ch)
		}
		if err := s.advance(); err != nil {
			return err
		}
	}
	if s.buf.Err() != nil {
		return s.streamErr()
	}
	return nil
}

// scanIf consumes a single character matching pred, if present, and
// reports whether it did.
func (s *Stream) scanIf(pred func(byte) bool, emit func(byte)) (bool, error) {
	if s.buf.AtEOF(0) {
		if s.buf.Err() != nil {
			return false, s.streamErr()
		}
		return false, nil
	}
	ch := s.buf.Peek()
	if !pred(ch) {
		return false, nil
	}
	if emit != nil {
		emit(ch)
	}
	return true, s.advance()
}

// skipSpace discards whitespace, and comments when enabled.
func (s *Stream) skipSpace() error {
	for {
		if err := s.scanWhile(isSpace, nil); err != nil {
			return err
		}
		if !s.comments || s.buf.AtEOF(0) || s.buf.Peek() != '/' {
			return nil
		}
		if err := s.skipComment(); err != nil {
			return err
		}
	}
}

// skipComment discards one line or block comment.
// Precondition: the cursor is at the leading '/'.
func (s *Stream) skipComment() error {
	if err := s.advance(); err != nil {
		return err
	}
	if s.buf.AtEOF(0) {
		return jerr.New(jerr.InvalidType, "lone '/' at end of stream")
	}
	switch s.buf.Peek() {
	case '/': // line comment, to LF or EOF
		return s.scanWhile(func(ch byte) bool { return ch != '\n' }, nil)
	case '*': // block comment, to */
		if err := s.advance(); err != nil {
			return err
		}
		var prev byte
		for {
			if s.buf.AtEOF(0) {
				if s.buf.Err() != nil {
					return s.streamErr()
				}
				return jerr.New(jerr.UnexpectedEOF, "unterminated block comment")
			}
			ch := s.buf.Peek()
			if err := s.advance(); err != nil {
				return err
			}
			if prev == '*' && ch == '/' {
				return nil
			}
			prev = ch
		}
	default:
		return jerr.Errorf(jerr.InvalidType, "invalid %q after '/'", s.buf.Peek())
	}
}

// scanStringRaw consumes a quoted string, collecting its undecoded body
// (quotes removed) into the scratch buffer. Escape sequences are collected
// verbatim and validated during decoding.
// Precondition: the cursor is at the opening '"'.
func (s *Stream) scanStringRaw() error {
	if err := s.skip('"'); err != nil {
		return err
	}
	s.scratch = s.scratch[:0]
	for {
		if s.buf.AtEOF(0) {
			if s.buf.Err() != nil {
				return s.streamErr()
			}
			return jerr.New(jerr.UnexpectedEOF, "unterminated string")
		}
		ch := s.buf.Peek()
		switch {
		case ch == '"':
			return s.advance() // closing quote
		case ch < 0x20:
			return jerr.Errorf(jerr.InvalidString, "unescaped control %q", ch)
		case ch == '\\':
			s.scratch = append(s.scratch, ch)
			if err := s.advance(); err != nil {
				return err
			}
			if s.buf.AtEOF(0) {
				if s.buf.Err() != nil {
					return s.streamErr()
				}
				return jerr.New(jerr.UnexpectedEOF, "unterminated escape sequence")
			}
			s.scratch = append(s.scratch, s.buf.Peek())
			if err := s.advance(); err != nil {
				return err
			}
		default:
			s.scratch = append(s.scratch, ch)
			if err := s.advance(); err != nil {
				return err
			}
		}
	}
}

// decodeString decodes the scratch buffer into dst, mapping escape
// failures onto the error taxonomy.
func decodeString(dst []byte, raw []byte) ([]byte, error) {
	out, err := escape.AppendUnquote(dst[:0], mem.B(raw))
	if err == nil {
		return out, nil
	}
	if err == escape.ErrUnicodeEscape {
		return out, jerr.Wrap(jerr.UnicodeEscape, "Unicode escapes are not supported", err)
	}
	return out, jerr.Wrap(jerr.InvalidString, "invalid string escape", err)
}

// scanNumber consumes a numeric lexeme into the value buffer and detects
// its radix. The lexeme is collected greedily; whether it converts to any
// particular numeric type is decided later, on demand.
// Precondition: the cursor is at '-' or a digit.
func (s *Stream) scanNumber() (Number, error) {
	s.val = s.val[:0]
	emit := func(ch byte) { s.val = append(s.val, ch) }
	if _, err := s.scanIf(func(ch byte) bool { return ch == '-' }, emit); err != nil {
		return Number{}, err
	}
	if err := s.scanWhile(isNumByte, emit); err != nil {
		return Number{}, err
	}
	body := s.val
	if len(body) > 0 && body[0] == '-' {
		body = body[1:]
	}
	if len(body) == 0 || !isDigit(body[0]) {
		return Number{}, jerr.Errorf(jerr.InvalidNumber, "malformed number %q", s.val)
	}
	return Number{text: s.val, radix: detectRadix(body)}, nil
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }

// isNumByte admits every character that can occur in a decimal, hex, or
// octal lexeme, including exponents and hex prefixes. Exactly one
// character of lookahead: anything else ends the lexeme.
func isNumByte(ch byte) bool {
	switch {
	case isDigit(ch):
		return true
	case ch >= 'a' && ch <= 'f', ch >= 'A' && ch <= 'F':
		return true
	}
	switch ch {
	case 'x', 'X', '.', '+', '-':
		return true
	}
	return false
}
