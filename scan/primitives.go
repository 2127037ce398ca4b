// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

// Char matches a single, specific byte.
func Char(c byte) Primitive {
	return func(s *Scanner, pos uint64) (uint64, bool) {
		b, err := s.At(pos)
		if err != nil || b != c {
			return pos, false
		}
		return pos + 1, true
	}
}

// CharIf matches a single byte satisfying f.
func CharIf(f func(byte) bool) Primitive {
	return func(s *Scanner, pos uint64) (uint64, bool) {
		b, err := s.At(pos)
		if err != nil || !f(b) {
			return pos, false
		}
		return pos + 1, true
	}
}

// Chars matches the literal byte sequence match.
func Chars(match string) Primitive {
	return func(s *Scanner, pos uint64) (uint64, bool) {
		p := pos
		for i := 0; i < len(match); i++ {
			b, err := s.At(p)
			if err != nil || b != match[i] {
				return pos, false
			}
			p++
		}
		return p, true
	}
}

// Word matches the literal byte sequence match only if it is followed by
// whitespace or the end of the stream, so it won't match a prefix of a
// longer identifier.
func Word(match string) Primitive {
	return func(s *Scanner, pos uint64) (uint64, bool) {
		next, ok := Chars(match)(s, pos)
		if !ok {
			return pos, false
		}
		if b, err := s.At(next); err == nil && !isSpaceByte(b) {
			return pos, false
		}
		return next, true
	}
}

// WhileTrue consumes a (possibly empty) run of bytes satisfying f.
func WhileTrue(f func(byte) bool) Primitive {
	return func(s *Scanner, pos uint64) (uint64, bool) {
		for {
			b, err := s.At(pos)
			if err != nil || !f(b) {
				break
			}
			pos++
		}
		return pos, true
	}
}

// WhileFalse consumes a (possibly empty) run of bytes not satisfying f.
func WhileFalse(f func(byte) bool) Primitive {
	return func(s *Scanner, pos uint64) (uint64, bool) {
		for {
			b, err := s.At(pos)
			if err != nil || f(b) {
				break
			}
			pos++
		}
		return pos, true
	}
}

// WhileStart consumes a run of bytes identical to the byte already at
// pos (e.g. the run of '=' in a "====" divider).
func WhileStart(s *Scanner, pos uint64) (uint64, bool) {
	first, err := s.At(pos)
	if err != nil {
		return pos, false
	}
	p := pos + 1
	for {
		b, err := s.At(p)
		if err != nil || b != first {
			break
		}
		p++
	}
	return p, true
}

// Spaces consumes a (possibly empty) run of whitespace.
func Spaces() Primitive {
	return WhileTrue(isSpaceByte)
}

// SpacesRequire consumes a run of whitespace, failing if none is
// present.
func SpacesRequire(s *Scanner, pos uint64) (uint64, bool) {
	next, _ := Spaces()(s, pos)
	if next == pos {
		return pos, false
	}
	return next, true
}

// UntilSpacing consumes a run of non-whitespace bytes.
func UntilSpacing() Primitive {
	return WhileFalse(isSpaceByte)
}

// Line consumes through and including the next newline.
func Line(s *Scanner, pos uint64) (uint64, bool) {
	next, _ := WhileFalse(func(c byte) bool { return c == '\n' })(s, pos)
	return next + 1, true
}

// AnyWord consumes a run of alphabetic bytes, failing if the run is
// empty.
func AnyWord(s *Scanner, pos uint64) (uint64, bool) {
	next, _ := WhileFalse(func(c byte) bool { return !isAlphaByte(c) })(s, pos)
	if next == pos {
		return pos, false
	}
	return next, true
}

// UntilBalance consumes bytes until the running count of inc minus dec
// bytes, seeded at initial, first rises above zero and then returns to
// zero. It is the general balanced-delimiter matcher that the call-arg
// and constructor-arg brace matching in the expression grammar builds on.
func UntilBalance(inc, dec byte, initial int) Primitive {
	return func(s *Scanner, pos uint64) (uint64, bool) {
		cnt := initial
		risen := false
		p := pos
		for {
			b, err := s.At(p)
			if err != nil {
				return pos, false
			}
			if !risen && cnt != 0 {
				risen = true
			}
			switch b {
			case inc:
				cnt++
			case dec:
				cnt--
			}
			if risen && cnt == 0 {
				return p + 1, true
			}
			p++
		}
	}
}

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isAlphaByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
