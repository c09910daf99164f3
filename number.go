// Copyright (C) 2025 Sean Quill. All Rights Reserved.

package jev

import (
	"math"
	"strconv"
)

// Radix is the numeric base of a lexeme, inferred from its leading
// characters.
type Radix byte

// Constants defining the valid Radix values.
const (
	RadixDecimal Radix = iota // decimal integer or float
	RadixHex                  // hexadecimal, "0x" or "0X" prefix
	RadixOctal                // octal, leading "0" followed by an octal digit
	RadixZero                 // the bare lexeme "0"
)

var radixStr = [...]string{
	RadixDecimal: "decimal",
	RadixHex:     "hex",
	RadixOctal:   "octal",
	RadixZero:    "zero",
}

func (r Radix) String() string {
	if int(r) >= len(radixStr) {
		return "invalid"
	}
	return radixStr[r]
}

// A Number is an immutable view over a raw numeric lexeme and its detected
// radix. Conversion to a concrete numeric type is performed on demand and
// never cached. The view is only valid until the next value token is read;
// callers that retain a Number must copy it out first.
type Number struct {
	text  []byte
	radix Radix
}

// Radix returns the detected base of the lexeme.
func (n Number) Radix() Radix { return n.radix }

// Text returns the raw lexeme. The return value is only valid until the
// next value token is read; copy it if it is needed beyond that.
func (n Number) Text() []byte { return n.text }

// String returns a copy of the raw lexeme.
func (n Number) String() string { return string(n.text) }

// Bool converts the lexeme to a boolean: "1" is true and "0" is false.
// Any other lexeme reports ok == false.
func (n Number) Bool() (v, ok bool) {
	if len(n.text) != 1 {
		return false, false
	}
	switch n.text[0] {
	case '1':
		return true, true
	case '0':
		return false, true
	}
	return false, false
}

// detectRadix infers the base of a numeric lexeme from its leading
// characters. body is the lexeme with any sign removed and starts with a
// digit.
//
//	0x.. / 0X..  hex
//	0. 0e 0E     decimal (float)
//	0<octal>     octal
//	0            bare zero
//	otherwise    decimal
func detectRadix(body []byte) Radix {
	if body[0] != '0' {
		return RadixDecimal
	}
	if len(body) == 1 {
		return RadixZero
	}
	switch {
	case body[1] == 'x' || body[1] == 'X':
		return RadixHex
	case body[1] == '.' || body[1] == 'e' || body[1] == 'E':
		return RadixDecimal
	case body[1] >= '0' && body[1] <= '7':
		return RadixOctal
	}
	return RadixDecimal
}

// Signed is the constraint of signed integer extraction targets.
type Signed interface {
	int | int8 | int16 | int32 | int64
}

// Unsigned is the constraint of unsigned integer extraction targets.
type Unsigned interface {
	uint | uint8 | uint16 | uint32 | uint64
}

// Float is the constraint of floating-point extraction targets.
type Float interface {
	float32 | float64
}

// Numeric is the constraint of all numeric extraction targets.
type Numeric interface {
	Signed | Unsigned | Float
}

// As converts n to the numeric type T. The conversion must consume the
// entire lexeme and the value must be exactly representable in T; any
// violation reports ok == false rather than a partial value.
//
// For integral targets a decimal lexeme with a fraction or exponent is
// accepted when its value is exactly integral, so "1", "1.0" and "0x1"
// all extract as 1.
func As[T Numeric](n Number) (v T, ok bool) {
	var zero T
	switch any(zero).(type) {
	case int:
		i, ok := n.asInt(strconv.IntSize)
		return T(i), ok
	case int8:
		i, ok := n.asInt(8)
		return T(i), ok
	case int16:
		i, ok := n.asInt(16)
		return T(i), ok
	case int32:
		i, ok := n.asInt(32)
		return T(i), ok
	case int64:
		i, ok := n.asInt(64)
		return T(i), ok
	case uint:
		u, ok := n.asUint(strconv.IntSize)
		return T(u), ok
	case uint8:
		u, ok := n.asUint(8)
		return T(u), ok
	case uint16:
		u, ok := n.asUint(16)
		return T(u), ok
	case uint32:
		u, ok := n.asUint(32)
		return T(u), ok
	case uint64:
		u, ok := n.asUint(64)
		return T(u), ok
	case float32:
		f, ok := n.asFloat(32)
		return T(f), ok
	case float64:
		f, ok := n.asFloat(64)
		return T(f), ok
	}
	return zero, false
}

// digits returns the lexeme split into sign and unsigned body.
func (n Number) digits() (neg bool, body string) {
	s := string(n.text)
	if len(s) > 0 && s[0] == '-' {
		return true, s[1:]
	}
	return false, s
}

func (n Number) asInt(bits int) (int64, bool) {
	s := string(n.text)
	switch n.radix {
	case RadixHex:
		neg, body := n.digits()
		v, err := strconv.ParseInt(body[2:], 16, 64)
		if err != nil {
			return 0, false
		}
		if neg {
			v = -v
		}
		return narrowInt(v, bits)
	case RadixOctal:
		v, err := strconv.ParseInt(s, 8, 64)
		if err != nil {
			return 0, false
		}
		return narrowInt(v, bits)
	case RadixZero:
		return 0, true
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return narrowInt(v, bits)
	}
	if numErr, _ := err.(*strconv.NumError); numErr != nil && numErr.Err == strconv.ErrRange {
		return 0, false
	}
	// Not a plain integer lexeme. Accept a fraction or exponent form when
	// the value is exactly integral.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	v = int64(f)
	if float64(v) != f {
		return 0, false // beyond exact integer range of float64
	}
	return narrowInt(v, bits)
}

func (n Number) asUint(bits int) (uint64, bool) {
	s := string(n.text)
	switch n.radix {
	case RadixHex:
		neg, body := n.digits()
		if neg {
			return 0, false
		}
		v, err := strconv.ParseUint(body[2:], 16, 64)
		if err != nil {
			return 0, false
		}
		return narrowUint(v, bits)
	case RadixOctal:
		v, err := strconv.ParseUint(s, 8, 64)
		if err != nil {
			return 0, false
		}
		return narrowUint(v, bits)
	case RadixZero:
		return 0, true
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err == nil {
		return narrowUint(v, bits)
	}
	if numErr, _ := err.(*strconv.NumError); numErr != nil && numErr.Err == strconv.ErrRange {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f < 0 {
		return 0, false
	}
	v = uint64(f)
	if float64(v) != f {
		return 0, false
	}
	return narrowUint(v, bits)
}

func (n Number) asFloat(bits int) (float64, bool) {
	switch n.radix {
	case RadixHex, RadixOctal:
		v, ok := n.asInt(64)
		if ok {
			return float64(v), true
		}
		u, ok := n.asUint(64)
		if !ok {
			return 0, false
		}
		return float64(u), true
	case RadixZero:
		return 0, true
	}
	v, err := strconv.ParseFloat(string(n.text), bits)
	if err != nil {
		return 0, false // includes out-of-range results
	}
	return v, true
}

// narrowInt range-checks v against a bits-wide signed integer.
func narrowInt(v int64, bits int) (int64, bool) {
	if bits == 64 {
		return v, true
	}
	min := int64(-1) << (bits - 1)
	max := int64(1)<<(bits-1) - 1
	if v < min || v > max {
		return 0, false
	}
	return v, true
}

// narrowUint range-checks v against a bits-wide unsigned integer.
func narrowUint(v uint64, bits int) (uint64, bool) {
	if bits == 64 {
		return v, true
	}
	if v > uint64(1)<<bits-1 {
		return 0, false
	}
	return v, true
}
