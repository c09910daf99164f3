// Copyright (C) 2025 Sean Quill. All Rights Reserved.

package jev_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaqull/jev"
	"github.com/seaqull/jev/jerr"
)

func TestFluentChain(t *testing.T) {
	f := jev.NewFluent(stream(`{"a": 1, "b": [true, false], "c": "done"}`))

	var (
		a int64
		b []bool
		c string
	)
	f.StartObject().Key("a").Int64(&a).Key("b")
	f.Array(func(int) error {
		return f.Stream().Bool(func(v bool) error { b = append(b, v); return nil })
	}, nil)
	err := f.Key("c").String(&c).EndObject().Err()
	require.NoError(t, err)
	assert.Equal(t, int64(1), a)
	assert.Equal(t, []bool{true, false}, b)
	assert.Equal(t, "done", c)
}

func TestFluentTypes(t *testing.T) {
	var (
		u uint64
		g float64
		n uint8
	)
	f := jev.NewFluent(stream(`[18446744073709551615, -0.5, 0xFF, null]`)).StartArray().
		Uint64(&u).Float64(&g)
	jev.NumberAs(f, &n)
	err := f.Null().EndArray().Err()
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), u)
	assert.Equal(t, -0.5, g)
	assert.Equal(t, uint8(255), n)
}

func TestFluentShortCircuit(t *testing.T) {
	var a, b int64
	f := jev.NewFluent(stream(`{"a": true}`)).StartObject().
		Key("a").Int64(&a). // fails, the value is a boolean
		Key("b").Int64(&b). // must not run
		EndObject()
	err := f.Err()
	require.Error(t, err)
	assert.Equal(t, jerr.UserValidationFailed, jerr.CodeOf(err))
	assert.Zero(t, a)
	assert.Zero(t, b)

	// The stream did not advance past the failing step.
	assert.Equal(t, 1, f.Stream().Depth())
}

func TestFluentKeyMismatch(t *testing.T) {
	err := jev.NewFluent(stream(`{"actual": 1}`)).StartObject().Key("expected").Err()
	require.Error(t, err)
	assert.Equal(t, jerr.UserValidationFailed, jerr.CodeOf(err))
	assert.Contains(t, err.Error(), `"actual"`)
	assert.Contains(t, err.Error(), `"expected"`)
}

func TestFluentAddErrorInfo(t *testing.T) {
	f := jev.NewFluent(stream(`"not a number"`))
	var v int64
	err := f.Int64(&v).
		AddErrorInfo("decoding record %d", 17).
		AddErrorInfo("outer context"). // second annotation is a no-op
		Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding record 17")
	assert.NotContains(t, err.Error(), "outer context")

	// Annotation wraps rather than replaces; the code survives.
	assert.Equal(t, jerr.UserValidationFailed, jerr.CodeOf(err))
}

func TestFluentAddErrorInfoNoError(t *testing.T) {
	f := jev.NewFluent(stream(`null`)).Null().AddErrorInfo("never used")
	assert.NoError(t, f.Err())
}

func TestFluentEmptyContainers(t *testing.T) {
	err := jev.NewFluent(stream(`[{}, []]`)).StartArray().
		StartObject().EndObject().
		StartArray().EndArray().
		EndArray().
		Err()
	assert.NoError(t, err)
}
