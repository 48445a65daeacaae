// Package debug renders resolution results as indented text trees.
package debug

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/maruel/natural"

	"docstyle/property"
)

const indent = "  "

// TreeWriter accumulates an indented tree. The zero value is not usable, use
// NewTreeWriter.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{w: &strings.Builder{}}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) pad(depth int) {
	for range depth {
		tw.w.WriteString(indent)
	}
}

// Line writes a formatted line at depth.
func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes label with quoted value.
func (tw TreeWriter) TextBlock(depth int, label, value string) {
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// Object writes properties of o in natural key order, nested objects and
// lists one level deeper.
func (tw TreeWriter) Object(depth int, label string, o property.Object) {
	if label != "" {
		if len(o) == 0 {
			tw.Line(depth, "%s: (none)", label)
			return
		}
		tw.Line(depth, "%s:", label)
		depth++
	}
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}
		return 0
	})
	for _, k := range keys {
		tw.value(depth, k, o[k])
	}
}

func (tw TreeWriter) value(depth int, label string, v any) {
	switch v := v.(type) {
	case property.Object:
		tw.Object(depth, label, v)
	case map[string]any:
		tw.Object(depth, label, property.Object(v))
	case []any:
		tw.Line(depth, "%s: [%d]", label, len(v))
		for i, item := range v {
			tw.value(depth+1, strconv.Itoa(i), item)
		}
	case string:
		tw.TextBlock(depth, label, v)
	default:
		tw.Line(depth, "%s: %v", label, v)
	}
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
