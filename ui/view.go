package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/fivemoreminix/vhl/buffer"
	"github.com/fivemoreminix/vhl/outline"
	"github.com/fivemoreminix/vhl/syntax"
)

// A View is a read-only presentation of a highlighted buffer: scrolling,
// a line-number gutter, and an optional outline pane. It keeps a per-line
// span cache; lines are invalidated on edits and whenever the highlighter
// publishes a new table generation, and a refresh always replaces a line's
// spans wholesale so a stale pass can never mix with a newer one.
type View struct {
	Buffer      buffer.Buffer
	Highlighter *syntax.Highlighter
	Colorscheme *Colorscheme

	x, y          int
	width, height int

	scroll  int // first visible line
	curLine int

	showOutline bool
	outlineSel  int
	entries     []outline.Entry

	lineSpans [][]syntax.Span // nil entry means the line needs a refresh
	gen       uint64          // highlighter generation the cache was built at
}

func NewView(buf buffer.Buffer, hl *syntax.Highlighter, colors *Colorscheme) *View {
	return &View{
		Buffer:      buf,
		Highlighter: hl,
		Colorscheme: colors,
	}
}

func (v *View) SetPos(x, y int) {
	v.x, v.y = x, y
}

func (v *View) SetSize(width, height int) {
	v.width, v.height = width, height
}

// InvalidateLines marks the lines between start and end, inclusively, as
// needing fresh spans before the next draw.
func (v *View) InvalidateLines(start, end int) {
	for i := start; i <= end && i < len(v.lineSpans); i++ {
		if i >= 0 {
			v.lineSpans[i] = nil
		}
	}
}

// refresh brings the span cache for the visible lines up to date. If the
// highlighter was reconfigured since the cache was built, every line is
// recomputed; the generation check means an older in-flight result can
// never overwrite a newer one.
func (v *View) refresh() {
	if v.Highlighter == nil {
		return
	}

	lines := v.Buffer.Lines()
	if len(v.lineSpans) != lines {
		v.lineSpans = make([][]syntax.Span, lines)
	}
	if gen := v.Highlighter.Generation(); gen != v.gen {
		for i := range v.lineSpans {
			v.lineSpans[i] = nil
		}
		v.gen = gen
	}

	first, last := -1, -1
	for i := v.scroll; i < v.scroll+v.height && i < lines; i++ {
		if v.lineSpans[i] == nil {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return
	}

	src := v.Buffer.Bytes()
	start := v.Buffer.OffsetOfLine(first)
	end := v.Buffer.OffsetOfLine(last + 1)
	if last+1 >= lines {
		end = len(src)
	}
	spans := v.Highlighter.ClassifyRegion(src, start, end)

	for i := first; i <= last; i++ {
		ls := v.Buffer.OffsetOfLine(i)
		le := v.Buffer.OffsetOfLine(i + 1)
		if i+1 >= lines {
			le = len(src)
		}
		v.lineSpans[i] = clipSpans(spans, ls, le)
	}
}

// clipSpans returns the parts of spans that fall inside [start, end),
// preserving order. A span crossing a line boundary contributes its
// clipped piece to both lines.
func clipSpans(spans []syntax.Span, start, end int) []syntax.Span {
	clipped := make([]syntax.Span, 0)
	for _, s := range spans {
		if s.End <= start || s.Start >= end {
			continue
		}
		c := s
		if c.Start < start {
			c.Start = start
		}
		if c.End > end {
			c.End = end
		}
		clipped = append(clipped, c)
	}
	return clipped
}

// spanAt finds the category covering the byte at off, or CategoryNone.
func spanAt(spans []syntax.Span, off int) syntax.Category {
	for _, s := range spans {
		if off < s.Start {
			break
		}
		if off < s.End {
			return s.Category
		}
	}
	return syntax.CategoryNone
}

// Draw renders the view. Will not call `Show()`.
func (v *View) Draw(s tcell.Screen) {
	v.refresh()

	defaultStyle := v.Colorscheme.GetStyle(syntax.CategoryNone)
	DrawRect(s, v.x, v.y, v.width, v.height, ' ', defaultStyle)

	textWidth := v.width
	if v.showOutline {
		textWidth = v.width * 2 / 3
	}

	lines := v.Buffer.Lines()
	gutter := len(fmt.Sprint(lines)) + 1

	for row := 0; row < v.height; row++ {
		line := v.scroll + row
		if line >= lines {
			break
		}

		gutterStyle := defaultStyle
		if line == v.curLine {
			gutterStyle = gutterStyle.Bold(true)
		}
		num := fmt.Sprint(line + 1)
		DrawStr(s, v.x+gutter-len(num)-1, v.y+row, num, gutterStyle)

		data := v.Buffer.Line(line)
		data = trimDelim(data)
		var spans []syntax.Span
		if line < len(v.lineSpans) {
			spans = v.lineSpans[line]
		}
		lineStart := v.Buffer.OffsetOfLine(line)

		col := v.x + gutter
		for i, r := range string(data) {
			if col >= v.x+textWidth {
				break
			}
			style := v.Colorscheme.GetStyle(spanAt(spans, lineStart+i))
			s.SetContent(col, v.y+row, r, nil, style)
			col += runewidth.RuneWidth(r)
		}
	}

	if v.showOutline {
		v.drawOutline(s, v.x+textWidth, v.y, v.width-textWidth, v.height)
	}
}

func (v *View) drawOutline(s tcell.Screen, x, y, width, height int) {
	style := v.Colorscheme.GetStyle(syntax.CategoryNone)
	DrawRect(s, x, y, width, height, ' ', style.Reverse(true))
	for i, e := range v.entries {
		if i >= height {
			break
		}
		entryStyle := style.Reverse(true)
		if i == v.outlineSel {
			entryStyle = entryStyle.Bold(true).Underline(true)
		}
		label := e.Kind.String() + " " + e.Label
		if runewidth.StringWidth(label) > width {
			label = runewidth.Truncate(label, width, "…")
		}
		DrawStr(s, x, y+i, label, entryStyle)
	}
}

// trimDelim drops a trailing LF or CRLF.
func trimDelim(data []byte) []byte {
	if n := len(data); n > 0 && data[n-1] == '\n' {
		data = data[:n-1]
		if n := len(data); n > 0 && data[n-1] == '\r' {
			data = data[:n-1]
		}
	}
	return data
}

// MoveCursor moves the current line by delta, scrolling to keep it visible.
func (v *View) MoveCursor(delta int) {
	v.curLine = Clamp(v.curLine+delta, 0, v.Buffer.Lines()-1)
	if v.curLine < v.scroll {
		v.scroll = v.curLine
	} else if v.curLine >= v.scroll+v.height {
		v.scroll = v.curLine - v.height + 1
	}
}

// Page moves by whole screens.
func (v *View) Page(delta int) {
	v.MoveCursor(delta * Max(v.height-1, 1))
}

// CurrentLine returns the text of the current line without its delimiter.
func (v *View) CurrentLine() string {
	return string(trimDelim(v.Buffer.Line(v.curLine)))
}

// ToggleOutline shows or hides the outline pane, re-extracting entries when
// it becomes visible.
func (v *View) ToggleOutline() {
	v.showOutline = !v.showOutline
	if v.showOutline {
		v.entries = outline.Extract(v.Buffer.Bytes())
		v.outlineSel = Clamp(v.outlineSel, 0, Max(len(v.entries)-1, 0))
	}
}

func (v *View) OutlineVisible() bool { return v.showOutline }

// MoveOutline moves the outline selection by delta.
func (v *View) MoveOutline(delta int) {
	if len(v.entries) == 0 {
		return
	}
	v.outlineSel = Clamp(v.outlineSel+delta, 0, len(v.entries)-1)
}

// JumpToSelected scrolls the view to the selected outline entry and returns
// its label, or "" when the outline is empty.
func (v *View) JumpToSelected() string {
	if len(v.entries) == 0 {
		return ""
	}
	e := v.entries[v.outlineSel]
	line, _ := v.Buffer.LineColOfOffset(e.Offset)
	v.MoveCursor(line - v.curLine)
	return e.Label
}
