// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

// A Primitive attempts to match something at pos and reports the
// position immediately past the match along with whether it matched.
// On failure it must return pos unchanged. Primitives never mutate the
// Scanner directly; Scanner.Apply is the only thing that moves the
// cursor.
type Primitive func(s *Scanner, pos uint64) (uint64, bool)

// Scanner is a cursor over a Buffer. It carries three optional facets
// used by the expression parser together: a save/restore stack (so a
// tentative parse can back out cleanly), a one-shot extraction stack
// (so the text consumed by the next Apply can be captured without a
// second pass over the buffer), and, via the underlying Buffer, line
// and column lookup.
type Scanner struct {
	buf        *Buffer
	pos        uint64
	saved      []uint64
	extracted  []string
	armExtract bool
}

// NewScanner creates a Scanner positioned at the start of buf.
func NewScanner(buf *Buffer) *Scanner {
	return &Scanner{buf: buf}
}

// Pos returns the scanner's current absolute position.
func (s *Scanner) Pos() uint64 {
	return s.pos
}

// Size returns the total size of the underlying stream.
func (s *Scanner) Size() uint64 {
	return s.buf.Size()
}

// Exhausted reports whether the cursor has reached the end of the
// stream.
func (s *Scanner) Exhausted() bool {
	return s.pos >= s.buf.Size()
}

// At returns the byte at the given absolute position.
func (s *Scanner) At(pos uint64) (byte, error) {
	return s.buf.At(pos)
}

// Substr returns n bytes starting at pos (or Unbounded for the rest of
// the stream).
func (s *Scanner) Substr(pos, n uint64) (string, error) {
	return s.buf.Substr(pos, n)
}

// LineCol resolves an absolute position to a 1-based line and 0-based
// column.
func (s *Scanner) LineCol(pos uint64) (line, col int) {
	return s.buf.LineCol(pos)
}

// SavePos pushes the current position onto the save stack, for later
// recall via LoadSaved or PopSaved. It returns the scanner so calls can
// be chained in front of Apply.
func (s *Scanner) SavePos() *Scanner {
	s.saved = append(s.saved, s.pos)
	return s
}

func (s *Scanner) oldestSaved() uint64 {
	if len(s.saved) == 0 {
		return s.pos
	}
	return s.saved[0]
}

// LoadSaved moves the cursor back to the most recently saved position
// without popping it, and returns that position.
func (s *Scanner) LoadSaved() uint64 {
	if len(s.saved) == 0 {
		return s.pos
	}
	s.pos = s.saved[len(s.saved)-1]
	return s.pos
}

// PopSaved pops and returns the most recently saved position, without
// moving the cursor there.
func (s *Scanner) PopSaved() uint64 {
	if len(s.saved) == 0 {
		return s.pos
	}
	n := len(s.saved) - 1
	pos := s.saved[n]
	s.saved = s.saved[:n]
	return pos
}

// DropStart asks the underlying buffer to discard bytes that are no
// longer reachable: everything before both the current position and the
// oldest outstanding saved position. The buffer only actually trims once
// the discardable prefix is large enough to be worth it.
func (s *Scanner) DropStart() {
	start := s.pos
	if oldest := s.oldestSaved(); oldest < start {
		start = oldest
	}
	s.buf.SetStart(start)
}

// ExtractNext arms one-shot extraction: the text consumed by the very
// next Apply call will be pushed onto the extraction stack, retrievable
// with PopExtracted. It returns the scanner so it can be chained
// directly in front of Apply.
func (s *Scanner) ExtractNext() *Scanner {
	s.armExtract = true
	return s
}

// PopExtracted pops and returns the most recently extracted text.
func (s *Scanner) PopExtracted() string {
	if len(s.extracted) == 0 {
		return ""
	}
	n := len(s.extracted) - 1
	text := s.extracted[n]
	s.extracted = s.extracted[:n]
	return text
}

// Apply runs p from the current position. On success, the cursor moves
// to the matched position (stashing the consumed text if ExtractNext
// armed it), the buffer is hinted to drop bytes before the oldest
// outstanding save so memory stays bounded to the live span, and Apply
// returns true. On failure the cursor is left exactly where it was.
func (s *Scanner) Apply(p Primitive) bool {
	start := s.pos
	armed := s.armExtract
	s.armExtract = false
	next, ok := p(s, start)
	if !ok {
		return false
	}
	if armed {
		text, _ := s.buf.Substr(start, next-start)
		s.extracted = append(s.extracted, text)
	}
	s.pos = next
	s.DropStart()
	return true
}

// ApplyIfOk behaves like Apply, but also returns the scanner's resulting
// position, sparing the caller a separate Pos() call.
func (s *Scanner) ApplyIfOk(p Primitive) (uint64, bool) {
	ok := s.Apply(p)
	return s.pos, ok
}

// Invoke runs p from the current position without moving the cursor,
// for lookahead decisions that must not commit to a match.
func (s *Scanner) Invoke(p Primitive) (uint64, bool) {
	return p(s, s.pos)
}
