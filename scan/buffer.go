// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"fmt"
	"sort"
)

// ChunkSize is the number of bytes requested from a ByteSource per
// underlying read, and the minimum number of bytes that must become
// discardable before Buffer.SetStart actually trims its window.
const ChunkSize = 1024

// Unbounded, passed as the length to Substr, requests everything from
// the given position to the end of the stream.
const Unbounded = ^uint64(0)

// Buffer is a sliding window over a ByteSource: it holds a contiguous
// run of bytes [start, start+len(data)) and grows that run by reading
// ChunkSize-byte chunks on demand. Bytes before start are assumed to be
// no longer reachable by any live cursor and may be discarded.
type Buffer struct {
	src   ByteSource
	size  uint64
	start uint64
	data  []byte
	eos   bool
	lines *lineIndex
}

// NewBuffer creates a Buffer over src. The source's total size is probed
// once, eagerly. When trackLines is true, the buffer records the offset
// of every newline it reads so that LineCol can later resolve a byte
// offset to a 1-based line and 0-based column.
func NewBuffer(src ByteSource, trackLines bool) (*Buffer, error) {
	size, err := src.Size()
	if err != nil {
		return nil, err
	}
	b := &Buffer{src: src, size: size}
	if trackLines {
		b.lines = newLineIndex()
	}
	return b, nil
}

// Size returns the total number of bytes the source can ever produce.
func (b *Buffer) Size() uint64 {
	return b.size
}

func (b *Buffer) end() uint64 {
	return b.start + uint64(len(b.data))
}

// fill pulls chunks from the source until byte offset through is held in
// the window, or the source is exhausted.
func (b *Buffer) fill(through uint64) error {
	for !b.eos && through >= b.end() {
		chunk, err := b.src.Read(ChunkSize)
		if err != nil {
			return err
		}
		if len(chunk) == 0 {
			b.eos = true
			break
		}
		if b.lines != nil {
			base := b.end()
			for i := 0; i < len(chunk); i++ {
				if chunk[i] == '\n' {
					b.lines.insert(base + uint64(i) + 1)
				}
			}
		}
		b.data = append(b.data, chunk...)
	}
	return nil
}

// At returns the byte at the given absolute offset, reading further
// chunks from the source if necessary.
func (b *Buffer) At(pos uint64) (byte, error) {
	if pos >= b.size {
		return 0, fmt.Errorf("scan: position %d out of range (size %d)", pos, b.size)
	}
	if err := b.fill(pos); err != nil {
		return 0, err
	}
	if pos < b.start || pos >= b.end() {
		return 0, fmt.Errorf("scan: position %d no longer held (start %d)", pos, b.start)
	}
	return b.data[pos-b.start], nil
}

// Substr returns the n bytes starting at the given absolute offset, or
// everything through the end of the stream if n is Unbounded. The
// returned string may be shorter than n if the stream ends first.
func (b *Buffer) Substr(pos, n uint64) (string, error) {
	if pos > b.size {
		return "", fmt.Errorf("scan: position %d out of range (size %d)", pos, b.size)
	}
	var through uint64
	if n == Unbounded || pos+n > b.size {
		through = b.size
	} else {
		through = pos + n
	}
	if through > 0 {
		through--
	}
	if err := b.fill(through); err != nil {
		return "", err
	}
	end := b.end()
	if n != Unbounded && pos+n < end {
		end = pos + n
	}
	if end > b.size {
		end = b.size
	}
	if pos < b.start {
		return "", fmt.Errorf("scan: position %d no longer held (start %d)", pos, b.start)
	}
	return string(b.data[pos-b.start : end-b.start]), nil
}

// SetStart requests that bytes before pos be dropped from the window.
// The request is clamped to the current window and is only honored once
// the discardable prefix reaches ChunkSize bytes, so trimming amortizes
// to O(1) per byte read rather than firing on every call.
func (b *Buffer) SetStart(pos uint64) {
	if pos <= b.start {
		return
	}
	if pos > b.end() {
		pos = b.end()
	}
	if pos-b.start < ChunkSize {
		return
	}
	b.data = b.data[pos-b.start:]
	b.start = pos
}

// LineCol resolves an absolute byte offset to a 1-based line number and
// 0-based column, reading further chunks from the source if necessary
// so that every newline before pos has been seen. It returns (0, 0) if
// the buffer was constructed without line tracking.
func (b *Buffer) LineCol(pos uint64) (line, col int) {
	if b.lines == nil {
		return 0, 0
	}
	b.fill(pos)
	return b.lines.lineCol(pos)
}

// lineIndex records the starting offset of every line after the first,
// in ascending order, so a position can be resolved to a line/column
// pair by binary search.
type lineIndex struct {
	starts []uint64
}

func newLineIndex() *lineIndex {
	return &lineIndex{}
}

func (li *lineIndex) insert(off uint64) {
	if n := len(li.starts); n > 0 && li.starts[n-1] >= off {
		return
	}
	li.starts = append(li.starts, off)
}

func (li *lineIndex) lineCol(pos uint64) (line, col int) {
	i := sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > pos })
	var lineStart uint64
	if i > 0 {
		lineStart = li.starts[i-1]
	}
	return i + 1, int(pos - lineStart)
}
