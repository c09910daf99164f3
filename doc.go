// Copyright (C) 2025 Sean Quill. All Rights Reserved.

// Package jev implements a single-pass, streaming, event-driven JSON
// reader with strict structural validation and typed value extraction.
// It never builds a document tree: input is read through a fixed-window
// buffered cursor and delivered as events to a statically-selected
// handler type.
//
// # Events
//
// A Parser drives the event loop. Construct one over a Stream with a
// value implementing Handler and call Parse:
//
//	s := jev.NewStream(input)
//	if err := jev.NewParser(s, handler).Parse(); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// The methods of a Handler correspond to the syntax of JSON values:
//
//	JSON type  | Hooks                       | Description
//	---------- | --------------------------- | --------------------------------
//	object     | OnStartObject, OnEndObject  | { ... }
//	array      | OnStartArray, OnEndArray    | [ ... ]
//	key        | OnKey                       | "key" and its colon
//	value      | OnNull, OnBool, OnNumber,   | null, true, false, number,
//	           | OnString                    | string
//	--         | OnComma                     | separator between elements
//
// Each hook returns a continuation state: Running keeps the loop going,
// Finished terminates it. The parser validates nesting depth, brace and
// bracket balance, key ordering, and comma placement before dispatching,
// so a handler only ever sees well-formed structure. The first failure
// stops the parse and is returned with the offending token's absolute
// stream offset attached; there is no recovery and no partial result.
//
// Two handler bases cover the common cases. Lenient accepts every event,
// for handlers that observe a subset. Strict rejects every event, for
// single-purpose parsers that accept exactly one kind:
//
//	type boolOnly struct{ jev.Strict }
//
//	func (boolOnly) OnBool(v bool) (jev.State, error) { return jev.Finished, nil }
//
// # Typed sub-parsers
//
// The Stream methods Null, Bool, String, Key, Array, and Object, and the
// generic ParseNumber, each consume exactly one value of the named kind
// and forward it to a callback. They compose: an Array element callback
// consumes its element with another sub-parser, nesting included.
//
//	var got []bool
//	err := s.Array(func(i int) error {
//	   return s.Bool(func(v bool) error { got = append(got, v); return nil })
//	}, nil)
//
// The Fluent façade chains sub-parsers against one running result,
// short-circuiting after the first failure:
//
//	var a int64
//	f := jev.NewFluent(s).StartObject().Key("a")
//	err := jev.NumberAs(f, &a).EndObject().AddErrorInfo("config header").Err()
//
// # Buffers
//
// The key and value lexeme buffers are owned by the Stream and reused
// between tokens. A slice passed to a hook or callback is only valid for
// the duration of that call; copy it out to retain it.
package jev
