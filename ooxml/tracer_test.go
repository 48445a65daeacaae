package ooxml

import (
	"os"
	"strings"
	"testing"

	"docstyle/property"
)

func TestTracerDisabled(t *testing.T) {
	var nilTracer *Tracer
	if nilTracer.IsEnabled() || nilTracer.Flush() != "" {
		t.Fatal("nil tracer must be disabled")
	}
	tr := NewTracer("")
	tr.TraceChain(ParagraphPropertiesType, []string{"A"}, "", nil)
	if tr.Flush() != "" {
		t.Fatal("tracer without work directory must not write")
	}
}

func TestTracerFlush(t *testing.T) {
	dir := t.TempDir()
	tr := NewTracer(dir)

	styles := stylesOf(
		paragraphStyle("A", "B", property.Object{"justification": "right"}),
		paragraphStyle("B", "A", nil),
	)
	r := NewResolver(Params{Styles: styles}, testLogger(t), tr)
	r.ResolveParagraphProperties(property.Object{"styleId": "A"}, nil)

	path := tr.Flush()
	if path == "" {
		t.Fatal("expected trace file")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	text := string(data)
	for _, want := range []string{"Cascade Trace", "CHAIN: paragraphProperties A", "stopped: cycle at A", "RESOLVE: paragraph A", `justification: "right"`} {
		if !strings.Contains(text, want) {
			t.Errorf("trace does not contain %q:\n%s", want, text)
		}
	}
	if tr.Flush() != "" {
		t.Fatal("flush must clear entries")
	}
}
