// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"strings"
	"testing"
)

func newTestScanner(t *testing.T, text string) *Scanner {
	t.Helper()
	src, err := NewReaderSource(strings.NewReader(text))
	if err != nil {
		t.Fatalf("NewReaderSource: %v", err)
	}
	buf, err := NewBuffer(src, true)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	return NewScanner(buf)
}

func TestScannerApplyAdvancesAndFails(t *testing.T) {
	s := newTestScanner(t, "abc123")

	if !s.Apply(WhileTrue(isAlphaByte)) {
		t.Fatalf("expected alpha run to match")
	}
	if s.Pos() != 3 {
		t.Fatalf("pos = %d, want 3", s.Pos())
	}
	if s.Apply(Char('x')) {
		t.Fatalf("expected Char('x') to fail")
	}
	if s.Pos() != 3 {
		t.Fatalf("pos changed on failed Apply: %d", s.Pos())
	}
	if !s.Apply(WhileTrue(func(c byte) bool { return c >= '0' && c <= '9' })) {
		t.Fatalf("expected digit run to match")
	}
	if !s.Exhausted() {
		t.Fatalf("expected scanner to be exhausted")
	}
}

func TestScannerSaveRestore(t *testing.T) {
	s := newTestScanner(t, "hello world")

	s.SavePos()
	s.Apply(WhileFalse(isSpaceByte))
	if s.Pos() != 5 {
		t.Fatalf("pos = %d, want 5", s.Pos())
	}
	s.LoadSaved()
	if s.Pos() != 0 {
		t.Fatalf("LoadSaved didn't restore: pos = %d", s.Pos())
	}
	if got := s.PopSaved(); got != 0 {
		t.Fatalf("PopSaved = %d, want 0", got)
	}
}

func TestScannerExtractNext(t *testing.T) {
	s := newTestScanner(t, "foo_bar 42")

	s.ExtractNext()
	if !s.Apply(WhileFalse(isSpaceByte)) {
		t.Fatalf("expected word to match")
	}
	if got := s.PopExtracted(); got != "foo_bar" {
		t.Fatalf("extracted = %q, want %q", got, "foo_bar")
	}
}

func TestScannerLineCol(t *testing.T) {
	s := newTestScanner(t, "abc\ndef\nghi")

	line, col := s.LineCol(0)
	if line != 1 || col != 0 {
		t.Fatalf("LineCol(0) = %d,%d, want 1,0", line, col)
	}
	line, col = s.LineCol(5)
	if line != 2 || col != 1 {
		t.Fatalf("LineCol(5) = %d,%d, want 2,1", line, col)
	}
	line, col = s.LineCol(10)
	if line != 3 || col != 2 {
		t.Fatalf("LineCol(10) = %d,%d, want 3,2", line, col)
	}
}

func TestBufferSetStartClampsToOldestSaved(t *testing.T) {
	text := strings.Repeat("a", 3000)
	src, err := NewReaderSource(strings.NewReader(text))
	if err != nil {
		t.Fatalf("NewReaderSource: %v", err)
	}
	buf, err := NewBuffer(src, false)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	s := NewScanner(buf)

	s.SavePos() // saved = 0
	s.Apply(WhileTrue(func(byte) bool { return true }))
	if s.Pos() != uint64(len(text)) {
		t.Fatalf("pos = %d, want %d", s.Pos(), len(text))
	}

	// The oldest save is still at 0, so even though the cursor raced
	// to the end, DropStart must not discard anything the saved
	// position still needs.
	s.DropStart()
	if _, err := s.At(0); err != nil {
		t.Fatalf("At(0) failed after DropStart with an outstanding save: %v", err)
	}
}

func TestUntilBalance(t *testing.T) {
	s := newTestScanner(t, "(a(b)c)tail")

	next, ok := s.ApplyIfOk(UntilBalance('(', ')', 0))
	if !ok {
		t.Fatalf("expected balanced match")
	}
	if next != 7 {
		t.Fatalf("next = %d, want 7", next)
	}
}
