package syntax

import "sort"

// Span is a classified half-open byte range [Start, End) of the buffer.
// Spans produced by one classification pass never overlap and are ordered
// by Start. Text no rule claims (most whitespace) produces no span.
type Span struct {
	Start    int
	End      int
	Category Category
}

// Classify scans src between start and end and returns the ordered spans
// claimed by the table's rules. Comment and string regions are delimited
// first by the syntax table and claim their whole extent; then each rule in
// table order sweeps the region and claims its capture extent wherever no
// earlier rule got there first. The pass is a pure function of its inputs:
// identical calls return identical spans. A nil syntax table selects the
// default one.
func (t *RuleTable) Classify(src []byte, start, end int, st *SyntaxTable) []Span {
	if st == nil {
		st = defaultSyntaxTable
	}
	if start < 0 {
		start = 0
	}
	if end > len(src) {
		end = len(src)
	}
	if start >= end {
		return nil
	}

	claimed := make([]bool, len(src))
	spans := scanDelimited(src, start, end, st)
	for _, s := range spans {
		for i := s.Start; i < s.End; i++ {
			claimed[i] = true
		}
	}

	// Rules run over the whole buffer, not the sliced region, because the
	// context-sensitive rules need to see the characters just outside it.
	// Only captures inside the region produce spans.
	for ri := range t.rules {
		r := &t.rules[ri]
	match:
		for _, m := range r.re.FindAllSubmatchIndex(src, -1) {
			gs, ge := m[2*r.group], m[2*r.group+1]
			if gs < 0 || gs == ge {
				continue
			}
			if gs < start || ge > end {
				continue
			}
			for i := gs; i < ge; i++ {
				if claimed[i] {
					continue match
				}
			}
			for i := gs; i < ge; i++ {
				claimed[i] = true
			}
			spans = append(spans, Span{Start: gs, End: ge, Category: r.category})
		}
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return spans
}

// scanDelimited finds the comment and string regions that gate structural
// matching. The walk always begins at the top of the buffer so that a
// region starting inside a string or comment is still recognized as such;
// emitted spans are clipped to [start, end). Strings run to their closing
// delimiter or the end of the buffer; there is no nested comment form, only
// the line comment.
func scanDelimited(src []byte, start, end int, st *SyntaxTable) []Span {
	var spans []Span
	emit := func(s, e int, cat Category) {
		if s < start {
			s = start
		}
		if e > end {
			e = end
		}
		if s < e {
			spans = append(spans, Span{Start: s, End: e, Category: cat})
		}
	}

	i := 0
	for i < len(src) && i < end {
		b := src[i]
		switch {
		case st.Is(b, ClassCommentStart) && i+1 < len(src) && st.Is(src[i+1], ClassCommentStart):
			j := i + 2
			for j < len(src) && !st.Is(src[j], ClassCommentEnd) {
				j++
			}
			emit(i, j, CategoryComment)
			i = j
		case st.Is(b, ClassStringDelim):
			j := i + 1
			for j < len(src) {
				if src[j] == '\\' && j+1 < len(src) {
					j += 2
					continue
				}
				if src[j] == b {
					j++
					break
				}
				j++
			}
			emit(i, j, CategoryString)
			i = j
		default:
			i++
		}
	}
	return spans
}
