// Copyright (C) 2025 Sean Quill. All Rights Reserved.

package jev

import (
	"math"
	"testing"
)

// num builds a Number the way the lexer does: sign stripped for radix
// detection, lexeme kept verbatim.
func num(text string) Number {
	body := text
	if len(body) > 0 && body[0] == '-' {
		body = body[1:]
	}
	radix := RadixDecimal
	if len(body) > 0 {
		radix = detectRadix([]byte(body))
	}
	return Number{text: []byte(text), radix: radix}
}

func TestDetectRadix(t *testing.T) {
	tests := []struct {
		text string
		want Radix
	}{
		{"0", RadixZero},
		{"-0", RadixZero},
		{"1", RadixDecimal},
		{"42", RadixDecimal},
		{"-17", RadixDecimal},
		{"0.5", RadixDecimal},
		{"0e3", RadixDecimal},
		{"0E3", RadixDecimal},
		{"1.5e-9", RadixDecimal},
		{"0x1F", RadixHex},
		{"0Xff", RadixHex},
		{"-0x10", RadixHex},
		{"017", RadixOctal},
		{"-07", RadixOctal},
		{"09", RadixDecimal}, // 9 is not an octal digit
	}
	for _, test := range tests {
		if got := num(test.text).Radix(); got != test.want {
			t.Errorf("detectRadix(%q) = %v, want %v", test.text, got, test.want)
		}
	}
}

func TestAsInt(t *testing.T) {
	tests := []struct {
		text string
		want int64
		ok   bool
	}{
		{"0", 0, true},
		{"1", 1, true},
		{"-1", -1, true},
		{"9223372036854775807", math.MaxInt64, true},
		{"-9223372036854775808", math.MinInt64, true},
		{"9223372036854775808", 0, false}, // one past the max
		{"0x1F", 31, true},
		{"-0x10", -16, true},
		{"017", 15, true},
		{"1.0", 1, true}, // exactly integral
		{"2e3", 2000, true},
		{"1.5", 0, false},
		{"12ab", 0, false}, // partial consumption
		{"1e999", 0, false},
	}
	for _, test := range tests {
		got, ok := As[int64](num(test.text))
		if ok != test.ok || got != test.want {
			t.Errorf("As[int64](%q) = %d, %v; want %d, %v",
				test.text, got, ok, test.want, test.ok)
		}
	}
}

func TestAsNarrowing(t *testing.T) {
	if v, ok := As[int8](num("127")); !ok || v != 127 {
		t.Errorf("As[int8](127) = %d, %v", v, ok)
	}
	if _, ok := As[int8](num("128")); ok {
		t.Error("As[int8](128) accepted out-of-range value")
	}
	if v, ok := As[int8](num("-128")); !ok || v != -128 {
		t.Errorf("As[int8](-128) = %d, %v", v, ok)
	}
	if _, ok := As[int8](num("-129")); ok {
		t.Error("As[int8](-129) accepted out-of-range value")
	}
	if v, ok := As[uint16](num("65535")); !ok || v != 65535 {
		t.Errorf("As[uint16](65535) = %d, %v", v, ok)
	}
	if _, ok := As[uint16](num("65536")); ok {
		t.Error("As[uint16](65536) accepted out-of-range value")
	}
	if _, ok := As[uint32](num("-1")); ok {
		t.Error("As[uint32](-1) accepted negative value")
	}
}

func TestAsUint(t *testing.T) {
	tests := []struct {
		text string
		want uint64
		ok   bool
	}{
		{"0", 0, true},
		{"18446744073709551615", math.MaxUint64, true},
		{"18446744073709551616", 0, false},
		{"0xFF", 255, true},
		{"-0xFF", 0, false},
		{"010", 8, true},
		{"3.0", 3, true},
		{"-0", 0, true}, // bare zero radix, sign and all
	}
	for _, test := range tests {
		got, ok := As[uint64](num(test.text))
		if ok != test.ok || got != test.want {
			t.Errorf("As[uint64](%q) = %d, %v; want %d, %v",
				test.text, got, ok, test.want, test.ok)
		}
	}
}

func TestAsFloat(t *testing.T) {
	tests := []struct {
		text string
		want float64
		ok   bool
	}{
		{"0", 0, true},
		{"1.5", 1.5, true},
		{"-0.001e-2", -0.00001, true},
		{"3.6E+4", 36000, true},
		{"0x10", 16, true},
		{"017", 15, true},
		{"1e999", 0, false}, // out of range
		{"12ab", 0, false},
	}
	for _, test := range tests {
		got, ok := As[float64](num(test.text))
		if ok != test.ok || got != test.want {
			t.Errorf("As[float64](%q) = %v, %v; want %v, %v",
				test.text, got, ok, test.want, test.ok)
		}
	}

	if _, ok := As[float32](num("1e60")); ok {
		t.Error("As[float32](1e60) accepted out-of-range value")
	}
	if v, ok := As[float32](num("0.25")); !ok || v != 0.25 {
		t.Errorf("As[float32](0.25) = %v, %v", v, ok)
	}
}

// Textually distinct encodings of the same value extract identically.
func TestAsEncodingEquivalence(t *testing.T) {
	for _, text := range []string{"1", "1.0", "0x1", "01", "1e0"} {
		got, ok := As[int64](num(text))
		if !ok || got != 1 {
			t.Errorf("As[int64](%q) = %d, %v; want 1, true", text, got, ok)
		}
	}
}

func TestNumberBool(t *testing.T) {
	tests := []struct {
		text   string
		want   bool
		wantOK bool
	}{
		{"1", true, true},
		{"0", false, true},
		{"2", false, false},
		{"10", false, false},
		{"", false, false},
	}
	for _, test := range tests {
		got, ok := num(test.text).Bool()
		if got != test.want || ok != test.wantOK {
			t.Errorf("Number(%q).Bool() = %v, %v; want %v, %v",
				test.text, got, ok, test.want, test.wantOK)
		}
	}
}
