package ooxml

import (
	"reflect"
	"testing"

	"docstyle/property"
)

func TestParagraphDefaultStyleOnlyWithoutExplicitStyle(t *testing.T) {
	styles := stylesOf(
		paragraphStyle("Normal", "", property.Object{"justification": "center"}),
		paragraphStyle("Quote", "", property.Object{"justification": "right"}),
	)
	styles.DocDefaults.ParagraphProperties = property.Object{"justification": "left", "spacing": property.Object{"after": 160}}
	r := NewResolver(Params{Styles: styles}, testLogger(t), nil)

	got := r.ResolveParagraphProperties(property.Object{}, nil)
	want := property.Object{"justification": "center", "spacing": property.Object{"after": 160}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}

	got = r.ResolveParagraphProperties(property.Object{"styleId": "Quote"}, nil)
	want = property.Object{"justification": "right", "spacing": property.Object{"after": 160}, "styleId": "Quote"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestParagraphWithoutStyles(t *testing.T) {
	r := NewResolver(Params{}, testLogger(t), nil)
	inline := property.Object{"justification": "both"}
	got := r.ResolveParagraphProperties(inline, nil)
	if !reflect.DeepEqual(got, inline) {
		t.Fatalf("expected inline properties back, got %#v", got)
	}
	if got := r.ResolveParagraphProperties(nil, nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty object, got %#v", got)
	}
}

func listFixture() *Resolver {
	styles := stylesOf(
		paragraphStyle("ListParagraph", "", property.Object{"indent": property.Object{"left": 720}}),
		paragraphStyle("ListNumber", "ListParagraph", property.Object{
			"numberingProperties": property.Object{"numId": 1, "ilvl": 0},
		}),
	)
	numbering := simpleNumbering(&LevelDefinition{
		NumFmt:              "decimal",
		LvlText:             "%1.",
		ParagraphProperties: property.Object{"indent": property.Object{"left": 360, "hanging": 360}},
	})
	return NewResolver(Params{Styles: styles, Numbering: numbering}, nil, nil)
}

func TestParagraphIndentation(t *testing.T) {
	r := listFixture()

	tests := []struct {
		name   string
		inline property.Object
		want   property.Object
	}{
		{
			name: "inline numbering outranks style indentation",
			inline: property.Object{
				"styleId":             "ListParagraph",
				"numberingProperties": property.Object{"numId": 1, "ilvl": 0},
			},
			want: property.Object{"left": 360, "hanging": 360},
		},
		{
			name:   "style numbering ignores inherited style indentation",
			inline: property.Object{"styleId": "ListNumber"},
			want:   property.Object{"left": 360, "hanging": 360},
		},
		{
			name: "numId zero disables numbering",
			inline: property.Object{
				"styleId":             "ListNumber",
				"numberingProperties": property.Object{"numId": 0},
			},
			want: property.Object{"left": 720},
		},
		{
			name: "inline indentation wins and keeps exclusivity",
			inline: property.Object{
				"styleId":             "ListParagraph",
				"numberingProperties": property.Object{"numId": 1, "ilvl": 0},
				"indent":              property.Object{"firstLine": 200},
			},
			want: property.Object{"left": 360, "firstLine": 200},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := property.Clone(tt.inline)
			got := r.ResolveParagraphProperties(tt.inline, nil)
			if indent := got.Obj("indent"); !reflect.DeepEqual(indent, tt.want) {
				t.Fatalf("expected indent %#v, got %#v", tt.want, indent)
			}
			if !reflect.DeepEqual(tt.inline, snapshot) {
				t.Fatalf("inline properties modified: %#v", tt.inline)
			}
		})
	}
}

func TestParagraphStyleOwnIndentWithStyleNumbering(t *testing.T) {
	r := listFixture()
	r.params.Styles.Styles["ListNumber"].ParagraphProperties["indent"] = property.Object{"left": 1080}

	got := r.ResolveParagraphProperties(property.Object{"styleId": "ListNumber"}, nil)
	want := property.Object{"left": 1080, "hanging": 360}
	if indent := got.Obj("indent"); !reflect.DeepEqual(indent, want) {
		t.Fatalf("expected indent %#v, got %#v", want, indent)
	}
}

func TestParagraphNumberingLevelStyle(t *testing.T) {
	styles := stylesOf(paragraphStyle("ListBullet", "", property.Object{
		"numberingProperties": property.Object{"numId": 1, "ilvl": 0},
		"spacing":             property.Object{"after": 0},
	}))
	numbering := simpleNumbering(&LevelDefinition{
		StyleID:             "ListBullet",
		ParagraphProperties: property.Object{"indent": property.Object{"left": 720, "hanging": 360}},
	})
	r := NewResolver(Params{Styles: styles, Numbering: numbering}, testLogger(t), nil)

	inline := property.Object{"numberingProperties": property.Object{"numId": 1, "ilvl": 0}}
	got := r.ResolveParagraphProperties(inline, nil)
	want := property.Object{
		"indent":              property.Object{"left": 720, "hanging": 360},
		"numberingProperties": property.Object{"numId": 1, "ilvl": 0},
		"spacing":             property.Object{"after": 0},
		"styleId":             "ListBullet",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
	if inline.Has("styleId") {
		t.Fatal("inline properties modified")
	}
}

func TestNumberingDefinedInline(t *testing.T) {
	styles := stylesOf(paragraphStyle("ListBullet", "", property.Object{
		"numberingProperties": property.Object{"numId": 1, "ilvl": 0},
	}))
	numbering := simpleNumbering(&LevelDefinition{StyleID: "ListBullet"})
	numbering.Definitions[2] = &NumberingDefinition{NumID: 2, AbstractNumID: 1}
	r := NewResolver(Params{Styles: styles, Numbering: numbering}, testLogger(t), nil)

	tests := []struct {
		name   string
		inline property.Object
		want   bool
	}{
		{"no numbering", property.Object{}, false},
		{"same as level style", property.Object{"numberingProperties": property.Object{"numId": 1, "ilvl": 0}}, false},
		{"differs from level style", property.Object{"numberingProperties": property.Object{"numId": 2, "ilvl": 0}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, layers := r.ExplainParagraph(tt.inline, nil)
			if got := NumberingDefinedInline(layers); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}

	if NumberingDefinedInline(nil) {
		t.Fatal("no layers, no inline numbering")
	}
}

func TestParagraphTabStops(t *testing.T) {
	styles := stylesOf(paragraphStyle("Tabs", "", property.Object{
		"tabStops": []any{
			property.Object{"val": "left", "pos": 1440},
			property.Object{"val": "left", "pos": 720},
		},
	}))
	r := NewResolver(Params{Styles: styles}, testLogger(t), nil)

	got := r.ResolveParagraphProperties(property.Object{
		"styleId": "Tabs",
		"tabStops": []any{
			property.Object{"val": "clear", "pos": 720},
			property.Object{"val": "right", "pos": 2000},
			property.Object{"val": "clear", "pos": 3000},
		},
	}, nil)
	want := []any{
		property.Object{"val": "left", "pos": 1440},
		property.Object{"val": "right", "pos": 2000},
	}
	if !reflect.DeepEqual(got["tabStops"], want) {
		t.Fatalf("expected %#v, got %#v", want, got["tabStops"])
	}
}

func TestParagraphInTable(t *testing.T) {
	r := NewResolver(Params{Styles: stylesOf(gridStyle())}, testLogger(t), nil)

	cell := &TableInfo{
		TableProperties: property.Object{"tableStyleId": "Grid", "tblLook": property.Object{"firstRow": true}},
		RowIndex:        2, CellIndex: 0, NumRows: 3, NumCells: 3,
	}
	types := r.CellStyleTypes(cell)
	if !reflect.DeepEqual(types, []TableStyleType{WholeTable, Band2Horz, Band1Vert}) {
		t.Fatalf("unexpected style types %v", types)
	}
	got := r.ResolveParagraphProperties(property.Object{}, cell)
	if want := (property.Object{"spacing": property.Object{"after": 0}}); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}

	cell.RowIndex = 0
	got = r.ResolveParagraphProperties(property.Object{}, cell)
	if v, _ := got.String("justification"); v != "center" {
		t.Fatalf("expected header justification, got %#v", got)
	}
}

func TestExplainParagraphLayers(t *testing.T) {
	r := listFixture()
	_, layers := r.ExplainParagraph(property.Object{"styleId": "ListNumber"}, nil)
	var names []string
	for _, l := range layers {
		names = append(names, l.Name)
	}
	want := []string{"docDefaults", "numbering", "style ListNumber", "inline"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
}
