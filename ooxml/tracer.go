package ooxml

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"docstyle/property"
)

// Tracer records cascade resolution steps for debugging.
// When enabled (via non-empty workDir), it captures which style chains were
// walked, where they were truncated and what each layer contributed.
//
// The trace is written to a file when Flush() is called, typically at the end
// of a CLI command. The trace file is placed in the working directory so it
// gets included in the debug report archive.
//
// A nil *Tracer is valid and records nothing.
type Tracer struct {
	mu       sync.Mutex
	enabled  bool
	workDir  string
	name     string
	entries  []traceEntry
	sections map[string]int // section name -> entry count for summary
}

type traceEntry struct {
	operation string // "CHAIN", "NUMBERING", "LAYER", ...
	subject   string
	details   string
}

// NewTracer creates a new tracer. If workDir is empty, tracing is disabled.
func NewTracer(workDir string) *Tracer {
	return &Tracer{
		workDir:  workDir,
		name:     "cascade-trace.txt",
		enabled:  workDir != "",
		sections: make(map[string]int),
	}
}

// WithFileName changes the name of the file written by Flush.
func (t *Tracer) WithFileName(name string) *Tracer {
	if t != nil && name != "" {
		t.name = name
	}
	return t
}

// IsEnabled returns true if tracing is active.
func (t *Tracer) IsEnabled() bool {
	if t == nil {
		return false
	}
	return t.enabled
}

func (t *Tracer) add(section string, e traceEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, e)
	t.sections[section]++
}

// TraceChain logs a walked basedOn chain (root ancestor last) and the reason
// the walk stopped.
func (t *Tracer) TraceChain(pt PropertyType, ids []string, stop string, result property.Object) {
	if !t.IsEnabled() {
		return
	}
	details := "chain: " + strings.Join(ids, " -> ")
	if stop != "" {
		details += "\n  stopped: " + stop
	}
	t.add("chains", traceEntry{
		operation: "CHAIN",
		subject:   fmt.Sprintf("%s %s", pt, firstOr(ids, "(none)")),
		details:   details + "\n" + traceFormatProperties(result),
	})
}

// TraceNumbering logs a numbering level resolution.
func (t *Tracer) TraceNumbering(pt PropertyType, numID, ilvl, tries int, note string, result property.Object) {
	if !t.IsEnabled() {
		return
	}
	details := note
	if details != "" {
		details += "\n"
	}
	t.add("numbering", traceEntry{
		operation: "NUMBERING",
		subject:   fmt.Sprintf("%s numId=%d ilvl=%d tries=%d", pt, numID, ilvl, tries),
		details:   details + traceFormatProperties(result),
	})
}

// TraceCell logs conditional table style types selected for a cell.
func (t *Tracer) TraceCell(tableStyle string, row, cell int, types []TableStyleType) {
	if !t.IsEnabled() {
		return
	}
	names := make([]string, 0, len(types))
	for _, tp := range types {
		names = append(names, tp.String())
	}
	t.add("cells", traceEntry{
		operation: "CELL",
		subject:   fmt.Sprintf("%s (%d,%d)", tableStyle, row, cell),
		details:   strings.Join(names, ", "),
	})
}

// TraceLayers logs every layer of a resolved cascade and the final result.
func (t *Tracer) TraceLayers(what string, layers []Layer, result property.Object) {
	if !t.IsEnabled() {
		return
	}
	var details strings.Builder
	for _, l := range layers {
		details.WriteString(fmt.Sprintf("%s: %s\n", l.Name, traceFormatProperties(l.Props)))
	}
	details.WriteString("=> " + traceFormatProperties(result))
	t.add("resolved", traceEntry{
		operation: "RESOLVE",
		subject:   what,
		details:   details.String(),
	})
}

// Flush writes the trace to a file and clears the buffer.
// Returns the path to the trace file, or empty string if tracing is disabled.
func (t *Tracer) Flush() string {
	if !t.IsEnabled() {
		return ""
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.entries) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("=== Cascade Trace ===\n\n")

	sb.WriteString("Summary:\n")
	sections := make([]string, 0, len(t.sections))
	for section := range t.sections {
		sections = append(sections, section)
	}
	sort.Strings(sections)
	for _, section := range sections {
		sb.WriteString(fmt.Sprintf("  %s: %d\n", section, t.sections[section]))
	}
	sb.WriteString("\n")

	sb.WriteString("Detailed Trace:\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for i, entry := range t.entries {
		sb.WriteString(fmt.Sprintf("[%04d] %s: %s\n", i+1, entry.operation, entry.subject))
		if entry.details != "" {
			for line := range strings.SplitSeq(entry.details, "\n") {
				sb.WriteString("       " + line + "\n")
			}
		}
		sb.WriteString("\n")
	}

	tracePath := filepath.Join(t.workDir, t.name)
	if err := os.WriteFile(tracePath, []byte(sb.String()), 0644); err != nil {
		return ""
	}

	t.entries = nil
	t.sections = make(map[string]int)

	return tracePath
}

func firstOr(ids []string, def string) string {
	if len(ids) == 0 {
		return def
	}
	return ids[0]
}

// traceFormatProperties formats properties for trace output, sorted by key.
func traceFormatProperties(props property.Object) string {
	if len(props) == 0 {
		return "(no properties)"
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, traceFormatValue(props[k])))
	}
	return strings.Join(parts, ", ")
}

func traceFormatValue(v any) string {
	if o, ok := property.AsObject(v); ok {
		return "{" + traceFormatProperties(o) + "}"
	}
	switch val := v.(type) {
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, traceFormatValue(item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case string:
		return fmt.Sprintf("%q", val)
	default:
		return fmt.Sprintf("%v", v)
	}
}
