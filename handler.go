// Copyright (C) 2025 Sean Quill. All Rights Reserved.

package jev

import "github.com/seaqull/jev/jerr"

// State is the continuation value returned by every handler hook.
type State byte

// Constants defining the valid State values.
const (
	Running  State = iota // continue the value loop
	Finished              // terminate the current parse
)

func (s State) String() string {
	if s == Finished {
		return "finished"
	}
	return "running"
}

// Event identifies the kind of a parse event, used in diagnostics when a
// strict handler rejects an event it does not accept.
type Event byte

// Constants defining the valid Event values.
const (
	EvNull Event = iota
	EvBool
	EvNumber
	EvString
	EvKey
	EvStartObject
	EvEndObject
	EvStartArray
	EvEndArray
	EvComma
)

var eventStr = [...]string{
	EvNull:        "null",
	EvBool:        "boolean",
	EvNumber:      "number",
	EvString:      "string",
	EvKey:         "key",
	EvStartObject: "start of object",
	EvEndObject:   "end of object",
	EvStartArray:  "start of array",
	EvEndArray:    "end of array",
	EvComma:       "comma",
}

func (e Event) String() string {
	if int(e) >= len(eventStr) {
		return "invalid event"
	}
	return eventStr[e]
}

// A Handler receives events from parsing an input stream, one hook per
// event kind. Each hook returns the continuation state and an error; a
// non-nil error stops the parse immediately and is returned to the caller.
//
// The byte slices passed to OnString and OnKey, and the lexeme viewed by
// the Number passed to OnNumber, are reused between tokens: they are only
// valid until the next token of the same kind is read. A handler that
// needs a value beyond that point must copy it out.
type Handler interface {
	OnNull() (State, error)
	OnBool(v bool) (State, error)
	OnNumber(n Number) (State, error)
	OnString(v []byte) (State, error)
	OnKey(k []byte) (State, error)
	OnStartObject() (State, error)
	OnEndObject() (State, error)
	OnStartArray() (State, error)
	OnEndArray() (State, error)
	OnComma() (State, error)
}

// Lenient is a handler base whose hooks all accept their event and keep
// the parse running. Embed it to observe only the events of interest.
type Lenient struct{}

func (Lenient) OnNull() (State, error) { return Running, nil }
func (Lenient) OnBool(bool) (State, error) { return Running, nil }
func (Lenient) OnNumber(Number) (State, error) { return Running, nil }
func (Lenient) OnString([]byte) (State, error) { return Running, nil }
func (Lenient) OnKey([]byte) (State, error) { return Running, nil }
func (Lenient) OnStartObject() (State, error) { return Running, nil }
func (Lenient) OnEndObject() (State, error) { return Running, nil }
func (Lenient) OnStartArray() (State, error) { return Running, nil }
func (Lenient) OnEndArray() (State, error) { return Running, nil }
func (Lenient) OnComma() (State, error) { return Running, nil }

// Strict is a handler base whose hooks all reject their event, funneling
// into the single Unexpected extension point. A concrete parser embeds
// Strict and overrides exactly the hooks it accepts; every other event
// fails the parse with a user-validation failure.
//
// The one exception is OnComma: separators are validated structurally by
// the parser and carry no value, so a strict parser skips them. This is
// what lets typed sub-parsers run back to back across the commas of an
// enclosing container.
type Strict struct{}

// Unexpected reports the failure for an event the handler does not accept.
func (Strict) Unexpected(ev Event) (State, error) {
	return Running, jerr.Errorf(jerr.UserValidationFailed, "unexpected %v event", ev)
}

func (s Strict) OnNull() (State, error) { return s.Unexpected(EvNull) }
func (s Strict) OnBool(bool) (State, error) { return s.Unexpected(EvBool) }
func (s Strict) OnNumber(Number) (State, error) { return s.Unexpected(EvNumber) }
func (s Strict) OnString([]byte) (State, error) { return s.Unexpected(EvString) }
func (s Strict) OnKey([]byte) (State, error) { return s.Unexpected(EvKey) }
func (s Strict) OnStartObject() (State, error) { return s.Unexpected(EvStartObject) }
func (s Strict) OnEndObject() (State, error) { return s.Unexpected(EvEndObject) }
func (s Strict) OnStartArray() (State, error) { return s.Unexpected(EvStartArray) }
func (s Strict) OnEndArray() (State, error) { return s.Unexpected(EvEndArray) }
func (s Strict) OnComma() (State, error) { return Running, nil }
