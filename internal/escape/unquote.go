// Copyright (C) 2025 Sean Quill. All Rights Reserved.

// Package escape handles unquoting of JSON string bodies.
package escape

import (
	"errors"

	"go4.org/mem"
)

// Errors reported by AppendUnquote.
var (
	ErrIncomplete    = errors.New("incomplete escape sequence")
	ErrBadEscape     = errors.New("invalid escape sequence")
	ErrUnicodeEscape = errors.New("unsupported Unicode escape")
)

// AppendUnquote decodes a JSON string body and appends the result to dst,
// returning the extended buffer. The input must have the enclosing double
// quotation marks already removed.
//
// The simple escapes \" \\ \/ \b \f \n \r \t are replaced with their
// unescaped equivalents. Unicode escapes (\uXXXX) are not supported and
// report ErrUnicodeEscape; any other escape reports ErrBadEscape, and a
// trailing lone backslash reports ErrIncomplete.
func AppendUnquote(dst []byte, src mem.RO) ([]byte, error) {
	for {
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dst, src), nil
		}
		dst = mem.Append(dst, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return dst, ErrIncomplete
		}
		ch := src.At(0)
		src = src.SliceFrom(1)
		switch ch {
		case '"', '\\', '/':
			dst = append(dst, ch)
		case 'b':
			dst = append(dst, '\b')
		case 'f':
			dst = append(dst, '\f')
		case 'n':
			dst = append(dst, '\n')
		case 'r':
			dst = append(dst, '\r')
		case 't':
			dst = append(dst, '\t')
		case 'u':
			return dst, ErrUnicodeEscape
		default:
			return dst, ErrBadEscape
		}
	}
}
