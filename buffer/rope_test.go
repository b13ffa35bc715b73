package buffer

import (
	"bytes"
	"testing"
)

func TestRopeLinesAndOffsets(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("line0\nline1\n\nline3\n"))

	if buf.Lines() != 5 {
		t.Errorf("Expected 5 lines, got %v", buf.Lines())
	}

	if off := buf.OffsetOfLine(0); off != 0 {
		t.Errorf("Expected line 0 to start at 0, got %v", off)
	}
	if off := buf.OffsetOfLine(1); off != 6 {
		t.Errorf("Expected line 1 to start at 6, got %v", off)
	}
	if off := buf.OffsetOfLine(3); off != 13 {
		t.Errorf("Expected line 3 to start at 13, got %v", off)
	}
	if off := buf.OffsetOfLine(50); off != buf.Len() {
		t.Errorf("Expected a line past the end to clamp to Len, got %v", off)
	}
}

func TestRopeLine(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("abc\ndef\nxyz"))

	if line := string(buf.Line(1)); line != "def\n" {
		t.Errorf("Expected line 1 to be \"def\\n\", got %#v", line)
	}
	if line := string(buf.Line(2)); line != "xyz" {
		t.Errorf("Expected the delimiterless last line, got %#v", line)
	}
	if line := buf.Line(9); line != nil {
		t.Errorf("Expected nil past the end, got %#v", line)
	}
}

func TestRopeLineColOfOffset(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("is (は)\nnext"))

	line, col := buf.LineColOfOffset(0)
	if line != 0 || col != 0 {
		t.Errorf("Expected 0,0 got %v,%v", line, col)
	}

	// The multibyte rune occupies bytes 4-6; the close paren starts at 7.
	line, col = buf.LineColOfOffset(7)
	if line != 0 || col != 5 {
		t.Errorf("Expected 0,5 got %v,%v", line, col)
	}

	line, col = buf.LineColOfOffset(9) // first byte of "next"
	if line != 1 || col != 0 {
		t.Errorf("Expected 1,0 got %v,%v", line, col)
	}

	line, col = buf.LineColOfOffset(10_000)
	if line != 1 || col != 4 {
		t.Errorf("Expected the offset to clamp to 1,4 got %v,%v", line, col)
	}
}

func TestRopeInsertRemove(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("some"))
	buf.Insert(4, []byte(" text\n"))
	buf.Insert(0, []byte("with\n\t"))
	//with
	//	some text
	//

	if str := string(buf.Bytes()); str != "with\n\tsome text\n" {
		t.Fatalf("Unexpected contents %#v", str)
	}

	buf.Remove(4, 11) // "\n\tsome "
	if str := string(buf.Bytes()); str != "withtext\n" {
		t.Errorf("Expected \"withtext\\n\", got %#v", str)
	}

	buf.Remove(100, 200) // out of range: no-op
	if str := string(buf.Bytes()); str != "withtext\n" {
		t.Errorf("Expected out-of-range Remove to be a no-op, got %#v", str)
	}
}

func TestRopeSliceClamps(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("abc\ndef\n"))

	if s := string(buf.Slice(0, buf.Len())); s != "abc\ndef\n" {
		t.Errorf("Whole slice was not equal, got %#v", s)
	}
	if s := string(buf.Slice(4, 100)); s != "def\n" {
		t.Errorf("Expected the end to clamp, got %#v", s)
	}
	if s := buf.Slice(5, 2); s != nil {
		t.Errorf("Expected nil for an inverted range, got %#v", s)
	}
}

func TestRopeWriteTo(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("payload"))
	var out bytes.Buffer
	n, err := buf.WriteTo(&out)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != 7 || out.String() != "payload" {
		t.Errorf("Expected the full payload, wrote %v bytes: %#v", n, out.String())
	}
}
