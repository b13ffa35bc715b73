package buffer

import (
	"io"
	"unicode/utf8"

	"github.com/zyedidia/rope"
)

// RopeBuffer stores text in a rope so edits stay cheap even in large files.
type RopeBuffer rope.Node

func NewRopeBuffer(contents []byte) *RopeBuffer {
	return (*RopeBuffer)(rope.New(contents))
}

func (b *RopeBuffer) rope() *rope.Node { return (*rope.Node)(b) }

func (b *RopeBuffer) Bytes() []byte {
	return b.rope().Value()
}

func (b *RopeBuffer) Len() int {
	return b.rope().Len()
}

func (b *RopeBuffer) Slice(start, end int) []byte {
	start, end = b.clamp(start, end)
	if start >= end {
		return nil
	}
	return b.rope().Slice(start, end)
}

// Lines counts newline delimiters; the text after the final delimiter (or
// the whole buffer, if there is none) is also a line.
func (b *RopeBuffer) Lines() int {
	r := b.rope()
	return r.Count(0, r.Len(), []byte{'\n'}) + 1
}

// OffsetOfLine returns the byte offset where line starts. Lines past the
// end of the buffer clamp to the buffer length.
func (b *RopeBuffer) OffsetOfLine(line int) int {
	if line <= 0 {
		return 0
	}
	r := b.rope()
	off := r.Len()
	r.IndexAllFunc(0, r.Len(), []byte{'\n'}, func(idx int) bool {
		line--
		if line == 0 {
			off = idx + 1
			return true
		}
		return false
	})
	return off
}

func (b *RopeBuffer) Line(line int) []byte {
	r := b.rope()
	start := b.OffsetOfLine(line)
	if start >= r.Len() {
		return nil
	}
	end := r.Len()
	r.IndexAllFunc(0, r.Len(), []byte{'\n'}, func(idx int) bool {
		if idx >= start {
			end = idx + 1
			return true
		}
		return false
	})
	return r.Slice(start, end)
}

func (b *RopeBuffer) LineColOfOffset(off int) (int, int) {
	r := b.rope()
	if off < 0 {
		off = 0
	}
	if off > r.Len() {
		off = r.Len()
	}
	line := r.Count(0, off, []byte{'\n'})
	start := b.OffsetOfLine(line)
	col := 0
	if off > start {
		col = utf8.RuneCount(r.Slice(start, off))
	}
	return line, col
}

func (b *RopeBuffer) Insert(off int, value []byte) {
	r := b.rope()
	if off < 0 {
		off = 0
	}
	if off > r.Len() {
		off = r.Len()
	}
	r.Insert(off, value)
}

func (b *RopeBuffer) Remove(start, end int) {
	start, end = b.clamp(start, end)
	if start < end {
		b.rope().Remove(start, end)
	}
}

func (b *RopeBuffer) clamp(start, end int) (int, int) {
	n := b.rope().Len()
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start > end {
		start = end
	}
	return start, end
}

func (b *RopeBuffer) WriteTo(w io.Writer) (int64, error) {
	return b.rope().WriteTo(w)
}
