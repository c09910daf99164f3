// Copyright (C) 2025 Sean Quill. All Rights Reserved.

package jev_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/creachadair/mds/mtest"

	"github.com/seaqull/jev"
)

func TestBufferCursor(t *testing.T) {
	const input = "abcdefghij"
	b := jev.NewBuffer(strings.NewReader(input), 4)

	for i := 0; i < len(input); i++ {
		if b.AtEOF(0) {
			t.Fatalf("AtEOF(0) true at offset %d", i)
		}
		if got := b.Tell(); got != i {
			t.Errorf("Tell() = %d, want %d", got, i)
		}
		if got := b.Peek(); got != input[i] {
			t.Errorf("Peek() at %d = %q, want %q", i, got, input[i])
		}
		if !b.Advance() {
			t.Fatalf("Advance failed at offset %d: %v", i, b.Err())
		}
	}
	if !b.AtEOF(0) {
		t.Error("AtEOF(0) false after consuming all input")
	}
	if got := b.Tell(); got != len(input) {
		t.Errorf("Tell() at end = %d, want %d", got, len(input))
	}
	if b.Err() != nil {
		t.Errorf("Err() = %v, want nil", b.Err())
	}
}

// A window boundary must not be mistaken for end of stream, even when the
// underlying reader delivers one byte at a time.
func TestBufferShortReads(t *testing.T) {
	const input = `{"key": [1, 2, 3]}`
	b := jev.NewBuffer(iotest.OneByteReader(strings.NewReader(input)), 4)

	var got []byte
	for !b.AtEOF(0) {
		got = append(got, b.Peek())
		if !b.Advance() {
			t.Fatalf("Advance failed: %v", b.Err())
		}
	}
	if string(got) != input {
		t.Errorf("consumed %q, want %q", got, input)
	}
}

func TestBufferEmpty(t *testing.T) {
	b := jev.NewBuffer(strings.NewReader(""), 8)
	if !b.AtEOF(0) {
		t.Error("AtEOF(0) false on empty input")
	}
	if got := b.Tell(); got != 0 {
		t.Errorf("Tell() = %d, want 0", got)
	}
}

func TestBufferStreamError(t *testing.T) {
	broken := errors.New("broken pipe")
	b := jev.NewBuffer(iotest.ErrReader(broken), 8)
	if !b.AtEOF(0) {
		t.Error("AtEOF(0) false on failing reader")
	}
	if !errors.Is(b.Err(), broken) {
		t.Errorf("Err() = %v, want %v", b.Err(), broken)
	}
}

func TestBufferErrorAfterData(t *testing.T) {
	// TimeoutReader yields one successful read, then an error. Data read
	// before the error remains consumable; the error surfaces afterward.
	r := iotest.TimeoutReader(iotest.OneByteReader(strings.NewReader("ab")))
	b := jev.NewBuffer(r, 8)

	if b.AtEOF(0) {
		t.Fatal("AtEOF(0) true with buffered data")
	}
	if got := b.Peek(); got != 'a' {
		t.Errorf("Peek() = %q, want 'a'", got)
	}
	b.Advance()
	for !b.AtEOF(0) {
		b.Advance()
	}
	if !errors.Is(b.Err(), iotest.ErrTimeout) {
		t.Errorf("Err() = %v, want %v", b.Err(), iotest.ErrTimeout)
	}
}

func TestBufferLineCol(t *testing.T) {
	b := jev.NewBuffer(strings.NewReader("ab\ncd"), 3)
	for !b.AtEOF(0) {
		b.Advance()
	}
	if b.Line() != 1 {
		t.Errorf("Line() = %d, want 1", b.Line())
	}
	if b.Col() != 2 {
		t.Errorf("Col() = %d, want 2", b.Col())
	}
}

func TestBufferPeekPastEnd(t *testing.T) {
	b := jev.NewBuffer(strings.NewReader(""), 8)
	mtest.MustPanic(t, func() { b.Peek() })
}
