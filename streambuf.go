// Copyright (C) 2025 Sean Quill. All Rights Reserved.

package jev

import "io"

// A Buffer is a fixed-window buffered cursor over an input stream. It
// exposes single-character peek and advance operations, refills its window
// from the underlying reader on exhaustion, and tracks the absolute number
// of characters consumed across refills.
//
// A Buffer is a unique resource: it must not be copied after first use, and
// a Stream constructed over it assumes exclusive ownership.
type Buffer struct {
	r   io.Reader
	win []byte
	pos int // cursor within win; pos < n unless the window is exhausted
	n   int // count of valid bytes in win
	gen int // number of completed windows before the current one
	eof bool
	err error // sticky stream error, never io.EOF

	line int // 0-based line of the cursor
	col  int // 0-based byte column of the cursor
}

// NewBuffer constructs a Buffer reading from r with the given window size.
// If window <= 0 the default window size is used.
func NewBuffer(r io.Reader, window int) *Buffer {
	if window <= 0 {
		window = DefaultWindow
	}
	b := &Buffer{r: r, win: make([]byte, window), gen: -1}
	b.fill()
	return b
}

// fill replaces the window contents with the next span of the stream.
// Every window except possibly the last is filled completely, so that the
// absolute offset can be recovered from the generation counter.
func (b *Buffer) fill() {
	if b.eof || b.err != nil {
		return
	}
	n, err := io.ReadFull(b.r, b.win)
	b.gen++
	b.pos, b.n = 0, n
	switch err {
	case nil:
	case io.EOF, io.ErrUnexpectedEOF:
		b.eof = true
	default:
		b.err = err
	}
}

// Peek returns the character at the cursor without consuming it.
// Peek panics if the cursor is at end of stream; callers must check AtEOF
// first.
func (b *Buffer) Peek() byte {
	if b.pos >= b.n {
		panic("jev: Peek past end of stream")
	}
	return b.win[b.pos]
}

// Advance consumes one character, refilling the window from the stream when
// it is exhausted. It reports false if the refill failed with a stream
// error; reaching end of stream is not an error.
func (b *Buffer) Advance() bool {
	if b.pos < b.n {
		if b.win[b.pos] == '\n' {
			b.line++
			b.col = 0
		} else {
			b.col++
		}
		b.pos++
	}
	if b.pos >= b.n && !b.eof {
		b.fill()
	}
	return b.err == nil
}

// AtEOF reports whether the stream is exhausted at the given lookahead
// distance from the cursor. An exhausted window with more stream data
// pending is not end of stream. A sticky stream error also exhausts the
// cursor; callers distinguish the two via Err.
func (b *Buffer) AtEOF(lookahead int) bool {
	if b.pos+lookahead < b.n {
		return false
	}
	if b.err != nil {
		return true
	}
	if b.pos >= b.n && !b.eof {
		b.fill()
		return b.pos+lookahead >= b.n && (b.eof || b.err != nil)
	}
	return b.eof
}

// Tell returns the absolute number of characters consumed since
// construction. It is used as diagnostic support data in errors.
func (b *Buffer) Tell() int {
	if b.gen <= 0 {
		return b.pos
	}
	return b.gen*len(b.win) + b.pos
}

// Line returns the 0-based line number of the cursor.
func (b *Buffer) Line() int { return b.line }

// Col returns the 0-based byte column of the cursor within its line.
func (b *Buffer) Col() int { return b.col }

// Err returns the sticky stream error, if any. End of stream is reported
// via AtEOF, not Err.
func (b *Buffer) Err() error { return b.err }
