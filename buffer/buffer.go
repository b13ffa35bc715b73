// Package buffer provides the text storage the viewer reads and edits.
package buffer

import "io"

// A Buffer stores text addressed by byte offsets. Highlighting spans are
// byte ranges, so offsets come first and lines are a derived view. Offsets
// out of range are clamped, never panics.
type Buffer interface {
	// Bytes returns all of the bytes in the buffer. Likely a full copy;
	// use sparingly.
	Bytes() []byte

	// Slice returns the bytes in [start, end). The returned data may or
	// may not be a copy: do not write to it.
	Slice(start, end int) []byte

	// Line returns the bytes of the given zero-based line, including the
	// trailing delimiter if the line has one. Returns nil past the end.
	Line(line int) []byte

	// Len returns the number of bytes in the buffer.
	Len() int

	// Lines returns the number of lines. An empty buffer has one line.
	Lines() int

	// OffsetOfLine returns the byte offset where the given line starts.
	OffsetOfLine(line int) int

	// LineColOfOffset converts a byte offset into a line and a rune
	// column within that line.
	LineColOfOffset(off int) (line, col int)

	// Insert copies value into the buffer at the given byte offset.
	Insert(off int, value []byte)

	// Remove deletes the bytes in [start, end).
	Remove(start, end int)

	WriteTo(w io.Writer) (int64, error)
}
