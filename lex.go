// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cexpr

import "github.com/beevik/cexpr/scan"

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlphaNum(c byte) bool { return isAlpha(c) || isDigit(c) }
func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isOpenBrace(c byte) bool        { return c == '(' || c == '[' }
func isSpecialOpenBrace(c byte) bool { return c == '{' }
func isSpecialCloseBrace(c byte) bool { return c == '}' }
func isQuote(c byte) bool            { return c == '"' || c == '\'' }
func isSemicolon(c byte) bool        { return c == ';' }
func isLinebreak(c byte) bool        { return c == '\n' }

func closingFor(open byte) byte {
	if open == '[' {
		return ']'
	}
	return ')'
}

// numLiteral matches "0x"/"0X" followed by a run of hexadecimal digits,
// or a run of alphanumeric bytes otherwise. This is the corrected,
// non-hex decimal branch: the original's hex branch additionally
// tolerated any lowercase letter through 'f', which this keeps via
// isHexDigit.
func numLiteral(s *scan.Scanner, pos uint64) (uint64, bool) {
	if b0, err := s.At(pos); err == nil && b0 == '0' {
		if b1, err := s.At(pos + 1); err == nil && (b1 == 'x' || b1 == 'X') {
			next, _ := scan.WhileTrue(isHexDigit)(s, pos+2)
			if next == pos+2 {
				return pos, false
			}
			return next, true
		}
	}
	next, _ := scan.WhileTrue(isAlphaNum)(s, pos)
	if next == pos {
		return pos, false
	}
	return next, true
}

// stringLiteral matches a quoted string. The opening quote character
// (" or ') selects the only terminator that can close the literal; the
// other quote character is ordinary content. Escaped quotes (preceded
// by a backslash) don't terminate the literal; an embedded raw newline
// is a hard failure.
func stringLiteral(s *scan.Scanner, pos uint64) (uint64, bool) {
	open, err := s.At(pos)
	if err != nil || !isQuote(open) {
		return pos, false
	}
	i := pos + 1
	for {
		b, err := s.At(i)
		if err != nil || b == '\n' {
			return pos, false
		}
		if b == open {
			prev, _ := s.At(i - 1)
			if prev != '\\' {
				return i + 1, true
			}
		}
		i++
	}
}

// token matches an identifier: a letter or underscore, then any run of
// letters, digits, or underscores. This is the corrected semantics; a
// variant that instead rejects any alphanumeric start byte would reject
// ordinary identifiers and is not implemented here.
func token(s *scan.Scanner, pos uint64) (uint64, bool) {
	b, err := s.At(pos)
	if err != nil || !(isAlpha(b) || b == '_') {
		return pos, false
	}
	next, _ := scan.WhileTrue(func(c byte) bool { return isAlphaNum(c) || c == '_' })(s, pos+1)
	return next, true
}

// operatorGlyph greedily matches the longest operator glyph (3, then 2,
// then 1 byte) present in the combined unary/binary/ternary tables.
func operatorGlyph(s *scan.Scanner, pos uint64) (uint64, bool) {
	for n := uint64(3); n >= 1; n-- {
		text, err := s.Substr(pos, n)
		if err != nil || uint64(len(text)) != n {
			continue
		}
		if isOperatorGlyph(text) {
			return pos + n, true
		}
	}
	return pos, false
}
