// Copyright (C) 2025 Sean Quill. All Rights Reserved.

package jerr_test

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/seaqull/jev/jerr"
)

func TestErrorMessage(t *testing.T) {
	e := jerr.New(jerr.ExpectedValue, "want a value")
	if got := e.Error(); !strings.Contains(got, "EXPECTED_VALUE") || strings.Contains(got, "offset") {
		t.Errorf("unlocated Error() = %q", got)
	}

	e.Offset, e.Line, e.Col = 17, 2, 3
	got := e.Error()
	for _, want := range []string{"EXPECTED_VALUE", "offset 17", "2:3", "want a value"} {
		if !strings.Contains(got, want) {
			t.Errorf("located Error() = %q, missing %q", got, want)
		}
	}
}

func TestNewHasNoLocation(t *testing.T) {
	if e := jerr.New(jerr.InvalidNumber, "x"); e.Offset != -1 {
		t.Errorf("New Offset = %d, want -1", e.Offset)
	}
	if e := jerr.Errorf(jerr.InvalidNumber, "x %d", 1); e.Offset != -1 {
		t.Errorf("Errorf Offset = %d, want -1", e.Offset)
	}
}

func TestWrapUnwraps(t *testing.T) {
	e := jerr.Wrap(jerr.UserValidationFailed, "rejected", io.ErrUnexpectedEOF)
	if !errors.Is(e, io.ErrUnexpectedEOF) {
		t.Errorf("Wrap did not retain cause: %v", e)
	}
}

func TestErrorfWrapsCause(t *testing.T) {
	e := jerr.Errorf(jerr.InvalidString, "decode failed: %w", io.ErrShortBuffer)
	if !errors.Is(e, io.ErrShortBuffer) {
		t.Errorf("Errorf did not retain %%w cause: %v", e)
	}
	if !strings.Contains(e.Message, io.ErrShortBuffer.Error()) {
		t.Errorf("Errorf message = %q", e.Message)
	}
}

func TestCodeOf(t *testing.T) {
	e := jerr.New(jerr.NotInArray, "x")
	if got := jerr.CodeOf(e); got != jerr.NotInArray {
		t.Errorf("CodeOf = %v, want %v", got, jerr.NotInArray)
	}

	wrapped := fmt.Errorf("context: %w", e)
	if got := jerr.CodeOf(wrapped); got != jerr.NotInArray {
		t.Errorf("CodeOf(wrapped) = %v, want %v", got, jerr.NotInArray)
	}

	if got := jerr.CodeOf(nil); got != "" {
		t.Errorf("CodeOf(nil) = %v, want empty", got)
	}
	if got := jerr.CodeOf(io.EOF); got != "" {
		t.Errorf("CodeOf(io.EOF) = %v, want empty", got)
	}
}

func TestOffsetOf(t *testing.T) {
	e := jerr.New(jerr.InvalidType, "x")
	e.Offset = 42
	if got := jerr.OffsetOf(fmt.Errorf("outer: %w", e)); got != 42 {
		t.Errorf("OffsetOf = %d, want 42", got)
	}
	if got := jerr.OffsetOf(io.EOF); got != -1 {
		t.Errorf("OffsetOf(io.EOF) = %d, want -1", got)
	}
	if got := jerr.OffsetOf(nil); got != -1 {
		t.Errorf("OffsetOf(nil) = %d, want -1", got)
	}
}
