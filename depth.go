// Copyright (C) 2025 Sean Quill. All Rights Reserved.

package jev

import "github.com/seaqull/jev/jerr"

// Default configuration values for a Stream.
const (
	DefaultMaxDepth      = 64   // maximum container nesting depth
	DefaultWindow        = 4096 // stream read-window size in bytes
	DefaultKeyReserve    = 64   // initial capacity of the key buffer
	DefaultStringReserve = 256  // initial capacity of the value buffer
)

type frameKind byte

const (
	frameObject frameKind = iota
	frameArray
)

type expectation byte

const (
	expectKey expectation = iota
	expectValue
)

// A frame records the validation state of one open container: its kind,
// the number of elements completed so far, and what the next token must
// be. For object frames the expectation alternates key, value, key, ...;
// for array frames it is always a value. sep is set while a consumed
// separator (comma, or the colon after a key) has not yet been followed
// by the token it demands.
type frame struct {
	kind  frameKind
	want  expectation
	count int
	sep   bool
}

// An itemStack validates brace and bracket matching, key-before-value
// ordering, and comma placement. Its capacity is fixed at construction;
// pushing past it is a validation failure, never a resize.
type itemStack struct {
	frames []frame
	max    int
}

func newItemStack(maxDepth int) itemStack {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return itemStack{frames: make([]frame, 0, maxDepth), max: maxDepth}
}

func (s *itemStack) depth() int { return len(s.frames) }
func (s *itemStack) empty() bool { return len(s.frames) == 0 }
func (s *itemStack) top() *frame { return &s.frames[len(s.frames)-1] }
func (s *itemStack) inObject() bool {
	return !s.empty() && s.top().kind == frameObject
}

// checkValuePos verifies that a value may begin here: inside an object a
// value is only legal when a key has been consumed.
func (s *itemStack) checkValuePos() *jerr.Error {
	if s.inObject() && s.top().want == expectKey {
		return jerr.New(jerr.ExpectedKey, "value in object position requires a key")
	}
	return nil
}

// addValue records one completed value in the current container. At the
// top level (empty stack) any value is accepted.
func (s *itemStack) addValue() *jerr.Error {
	if err := s.checkValuePos(); err != nil {
		return err
	}
	if s.empty() {
		return nil
	}
	t := s.top()
	t.count++
	t.sep = false
	if t.kind == frameObject {
		t.want = expectKey
	}
	return nil
}

// addKey records an object member key. Keys are only legal inside an
// object whose expectation is a key.
func (s *itemStack) addKey() *jerr.Error {
	if !s.inObject() {
		return jerr.New(jerr.NotInObject, "key outside of object")
	}
	t := s.top()
	if t.want != expectKey {
		return jerr.New(jerr.ExpectedValue, "key where a value is required")
	}
	t.want = expectValue
	t.sep = true // the colon demands a value next
	return nil
}

func (s *itemStack) pushObject() *jerr.Error {
	if err := s.checkValuePos(); err != nil {
		return err
	}
	if len(s.frames) == s.max {
		return jerr.New(jerr.UnexpectedOpenBraces, "nesting depth limit exceeded")
	}
	s.frames = append(s.frames, frame{kind: frameObject, want: expectKey})
	return nil
}

func (s *itemStack) pushArray() *jerr.Error {
	if err := s.checkValuePos(); err != nil {
		return err
	}
	if len(s.frames) == s.max {
		return jerr.New(jerr.UnexpectedOpenBrackets, "nesting depth limit exceeded")
	}
	s.frames = append(s.frames, frame{kind: frameArray, want: expectValue})
	return nil
}

// popObject closes the innermost container, which must be an object whose
// last member is complete: the expectation must be a key with no pending
// separator.
func (s *itemStack) popObject() *jerr.Error {
	if s.empty() || s.top().kind != frameObject {
		return jerr.New(jerr.NotInObject, "closing brace outside of object")
	}
	t := s.top()
	if t.want == expectValue {
		return jerr.New(jerr.ExpectedValue, "object member is missing its value")
	}
	if t.sep {
		return jerr.New(jerr.ExpectedKey, "trailing comma before closing brace")
	}
	s.frames = s.frames[:len(s.frames)-1]
	return s.addValue() // the closed object is a value in its parent
}

// popArray closes the innermost container, which must be an array with no
// pending separator.
func (s *itemStack) popArray() *jerr.Error {
	if s.empty() || s.top().kind != frameArray {
		return jerr.New(jerr.NotInArray, "closing bracket outside of array")
	}
	if s.top().sep {
		return jerr.New(jerr.ExpectedValue, "trailing comma before closing bracket")
	}
	s.frames = s.frames[:len(s.frames)-1]
	return s.addValue()
}

// comma validates a separator between elements. A comma is never legal at
// the top level, before the first element, after another separator, or in
// place of an object member's value.
func (s *itemStack) comma() *jerr.Error {
	if s.empty() {
		return jerr.New(jerr.UnexpectedTopLevel, "comma outside of any container")
	}
	t := s.top()
	if t.count == 0 || t.sep {
		return jerr.New(jerr.ExpectedValue, "comma without a preceding value")
	}
	if t.kind == frameObject && t.want != expectKey {
		return jerr.New(jerr.ExpectedValue, "comma in place of an object value")
	}
	t.sep = true
	return nil
}

// atEOF classifies end of input. A clean end of stream is only valid when
// the stack is empty. A pending separator or a dangling key means a value
// was promised and never arrived; otherwise the innermost container names
// the closing token that is missing.
func (s *itemStack) atEOF() *jerr.Error {
	if s.empty() {
		return nil
	}
	t := s.top()
	if t.sep || (t.kind == frameObject && t.want == expectValue) {
		return jerr.New(jerr.UnexpectedEOF, "end of stream while a value is required")
	}
	if t.kind == frameObject {
		return jerr.New(jerr.ExpectedClosingBraces, "end of stream inside an object")
	}
	return jerr.New(jerr.ExpectedClosingBrackets, "end of stream inside an array")
}
