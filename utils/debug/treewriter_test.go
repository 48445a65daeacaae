package debug

import (
	"strings"
	"testing"

	"docstyle/property"
)

func TestTreeWriter_Lines(t *testing.T) {
	tw := NewTreeWriter()
	if tw.String() != "" {
		t.Fatal("new writer is not empty")
	}
	tw.Line(0, "run in %s", "Heading1")
	tw.Line(1, "fontSize: %d", 32)
	tw.Line(2, "theme %s/%s", "minorHAnsi", "Calibri")

	want := `run in Heading1
  fontSize: 32
    theme minorHAnsi/Calibri
`
	if got := tw.String(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tests := []struct {
		depth        int
		label, value string
		want         string
	}{
		{0, "lvlText", "", "lvlText: \n"},
		{0, "lvlText", "%1.", "lvlText: \"%1.\"\n"},
		{2, "name", "heading 1", "    name: \"heading 1\"\n"},
		{1, "font", `"Calibri Light"`, "  font: \"\\\"Calibri Light\\\"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.label+"/"+tt.value, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.TextBlock(tt.depth, tt.label, tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("TextBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeText(t *testing.T) {
	tests := map[string]string{
		"":               "",
		"Normal":         `"Normal"`,
		"tab\there":      `"tab\there"`,
		"two\nlines":     `"two\nlines"`,
		`C:\fonts\x.ttf`: `"C:\\fonts\\x.ttf"`,
	}
	for in, want := range tests {
		if got := encodeText(in); got != want {
			t.Errorf("encodeText(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTreeWriter_Object(t *testing.T) {
	props := property.Object{
		"styleId":  "Heading1",
		"keepNext": true,
		"spacing":  property.Object{"before": 240, "after": 0},
		"tabStops": []any{property.Object{"val": "left", "pos": 720}},
		"x10":      1,
		"x9":       2,
	}

	tw := NewTreeWriter()
	tw.Object(0, "paragraph", props)
	want := `paragraph:
  keepNext: true
  spacing:
    after: 0
    before: 240
  styleId: "Heading1"
  tabStops: [1]
    0:
      pos: 720
      val: "left"
  x9: 2
  x10: 1
`
	if got := tw.String(); got != want {
		t.Errorf("Object():\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestTreeWriter_ObjectEmpty(t *testing.T) {
	tw := NewTreeWriter()
	tw.Object(1, "inline", nil)
	tw.Object(0, "", property.Object{"bold": false})
	want := "  inline: (none)\nbold: false\n"
	if got := tw.String(); got != want {
		t.Errorf("Object() = %q, want %q", got, want)
	}
}

func TestTreeWriter_Layers(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "cascade")
	tw.Object(1, "docDefaults", property.Object{"fontSize": 22})
	tw.Object(1, "style Heading1", map[string]any{"bold": true})

	result := tw.String()
	if !strings.Contains(result, "  docDefaults:\n    fontSize: 22\n") {
		t.Errorf("Missing docDefaults layer in %q", result)
	}
	if !strings.Contains(result, "  style Heading1:\n    bold: true\n") {
		t.Errorf("Missing style layer in %q", result)
	}
}
