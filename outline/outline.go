// Package outline extracts declaration sites and TODO-style markers from V
// source text. It applies a small fixed set of anchored line patterns,
// independent of the highlighting rule table, and produces entries suitable
// for a navigable index pane.
package outline

import (
	"regexp"
	"sort"
	"strings"
)

// EntryKind says which pattern produced an entry.
type EntryKind uint8

const (
	KindFunction EntryKind = iota
	KindStruct
	KindInterface
	KindEnum
	KindType
	KindModule
	KindMarker
)

var kindNames = [...]string{
	KindFunction:  "fn",
	KindStruct:    "struct",
	KindInterface: "interface",
	KindEnum:      "enum",
	KindType:      "type",
	KindModule:    "module",
	KindMarker:    "marker",
}

func (k EntryKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// An Entry is one navigable outline item: a label and the byte offset of
// the matched name (or marker text) in the source.
type Entry struct {
	Label  string
	Kind   EntryKind
	Offset int
}

type rule struct {
	re   *regexp.Regexp
	kind EntryKind
}

// The declaration patterns anchor at the start of a line so names in
// expression position never produce entries. The function pattern allows a
// method receiver between the introducer and the name.
var rules = []rule{
	{regexp.MustCompile(`(?m)^[ \t]*(?:pub[ \t]+)?fn[ \t]+(?:\([^)\n]*\)[ \t]*)?([A-Za-z_][A-Za-z0-9_]*)`), KindFunction},
	{regexp.MustCompile(`(?m)^[ \t]*(?:pub[ \t]+)?struct[ \t]+([A-Za-z_][A-Za-z0-9_]*)`), KindStruct},
	{regexp.MustCompile(`(?m)^[ \t]*(?:pub[ \t]+)?interface[ \t]+([A-Za-z_][A-Za-z0-9_]*)`), KindInterface},
	{regexp.MustCompile(`(?m)^[ \t]*(?:pub[ \t]+)?enum[ \t]+([A-Za-z_][A-Za-z0-9_]*)`), KindEnum},
	{regexp.MustCompile(`(?m)^[ \t]*(?:pub[ \t]+)?type[ \t]+([A-Za-z_][A-Za-z0-9_]*)`), KindType},
	{regexp.MustCompile(`(?m)^module[ \t]+([A-Za-z_][A-Za-z0-9_]*)`), KindModule},
	{regexp.MustCompile(`//[ \t]*((?:TODO|FIXME|HACK)\b[^\n]*)`), KindMarker},
}

// Extract returns every outline entry in src, ordered by offset.
func Extract(src []byte) []Entry {
	var entries []Entry
	for _, r := range rules {
		for _, m := range r.re.FindAllSubmatchIndex(src, -1) {
			gs, ge := m[2], m[3]
			if gs < 0 || gs == ge {
				continue
			}
			label := strings.TrimSpace(string(src[gs:ge]))
			entries = append(entries, Entry{Label: label, Kind: r.kind, Offset: gs})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Offset < entries[j].Offset })
	return entries
}
