// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan implements a streaming, position-addressable byte scanner.
// A Buffer pulls fixed-size chunks from a ByteSource on demand and keeps
// only the bytes still reachable from outstanding cursors; a Scanner is a
// cursor over that buffer with save/restore and one-shot extraction.
package scan

import (
	"errors"
	"fmt"
	"io"
)

// Sentinel errors returned by the ByteSource implementations in this
// package, named after the byte-I/O error taxonomy the scanner sits on
// top of.
var (
	ErrCouldntOpenFile     = errors.New("scan: couldn't open file")
	ErrCouldntReadFile     = errors.New("scan: couldn't read file")
	ErrCouldntGetFileSize  = errors.New("scan: couldn't get file size")
	ErrCouldntNavigateFile = errors.New("scan: couldn't navigate file")
)

// A ByteSource supplies bytes on demand, advancing its own internal
// cursor monotonically. Implementations need not be seekable; Buffer
// never asks for anything but the next chunk.
type ByteSource interface {
	// Size returns the total number of bytes available from the source.
	Size() (uint64, error)

	// Read returns up to maxBytes of the next unread bytes. A short or
	// empty (but non-error) read means the source is exhausted.
	Read(maxBytes int) ([]byte, error)
}

// FileSource is a ByteSource backed by an *os.File opened for reading.
type FileSource struct {
	r    io.Reader
	size uint64
}

// NewFileSource wraps an io.ReadSeeker (typically an *os.File) as a
// ByteSource. The size is probed once, eagerly, at construction.
func NewFileSource(f io.ReadSeeker) (*FileSource, error) {
	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCouldntGetFileSize, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCouldntNavigateFile, err)
	}
	return &FileSource{r: f, size: uint64(size)}, nil
}

// Size implements ByteSource.
func (fs *FileSource) Size() (uint64, error) {
	return fs.size, nil
}

// Read implements ByteSource.
func (fs *FileSource) Read(maxBytes int) ([]byte, error) {
	buf := make([]byte, maxBytes)
	n, err := fs.r.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", ErrCouldntReadFile, err)
	}
	return buf[:n], nil
}

// ReaderSource is a ByteSource backed by an arbitrary io.Reader. Since an
// io.Reader can't in general report its length up front, ReaderSource
// reads the stream to completion once at construction and serves chunks
// out of the materialized bytes afterward.
type ReaderSource struct {
	data []byte
	pos  int
}

// NewReaderSource reads r to completion and wraps the result as a
// ByteSource.
func NewReaderSource(r io.Reader) (*ReaderSource, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCouldntReadFile, err)
	}
	return &ReaderSource{data: data}, nil
}

// Size implements ByteSource.
func (rs *ReaderSource) Size() (uint64, error) {
	return uint64(len(rs.data)), nil
}

// Read implements ByteSource.
func (rs *ReaderSource) Read(maxBytes int) ([]byte, error) {
	if rs.pos >= len(rs.data) {
		return nil, nil
	}
	end := rs.pos + maxBytes
	if end > len(rs.data) {
		end = len(rs.data)
	}
	chunk := rs.data[rs.pos:end]
	rs.pos = end
	return chunk, nil
}
