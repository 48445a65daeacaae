package ooxml

import (
	"reflect"
	"testing"

	"docstyle/property"
)

func runFixture(t *testing.T) *Resolver {
	styles := stylesOf(
		&StyleDefinition{ID: "Normal", Type: StyleTypeParagraph, Default: true, RunProperties: property.Object{"fontSize": 24}},
		&StyleDefinition{ID: "Heading1", Type: StyleTypeParagraph, RunProperties: property.Object{
			"bold":  true,
			"color": property.Object{"val": "2F5496", "themeColor": "accent1", "themeShade": "BF"},
		}},
		&StyleDefinition{ID: "TOC1", Type: StyleTypeParagraph},
		&StyleDefinition{ID: "Emphasis", Type: StyleTypeCharacter, RunProperties: property.Object{
			"italic": true,
			"color":  property.Object{"val": "C00000"},
		}},
	)
	styles.DocDefaults.RunProperties = property.Object{
		"fontSize":   22,
		"fontFamily": property.Object{"asciiTheme": "minorHAnsi", "hAnsiTheme": "minorHAnsi"},
	}
	numbering := simpleNumbering(&LevelDefinition{
		RunProperties: property.Object{"bold": true, "fontFamily": property.Object{"ascii": "Symbol", "hAnsi": "Symbol"}},
	})
	return NewResolver(Params{Styles: styles, Numbering: numbering}, testLogger(t), nil)
}

func TestResolveRunCascade(t *testing.T) {
	r := runFixture(t)

	got := r.ResolveRunProperties(
		property.Object{"styleId": "Emphasis", "fontSize": 28},
		property.Object{"styleId": "Heading1"},
		nil, false, false)
	want := property.Object{
		"styleId":    "Emphasis",
		"fontSize":   28,
		"fontFamily": property.Object{"asciiTheme": "minorHAnsi", "hAnsiTheme": "minorHAnsi"},
		"bold":       true,
		"italic":     true,
		"color":      property.Object{"val": "C00000"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}

	got = r.ResolveRunProperties(property.Object{}, property.Object{}, nil, false, false)
	if v, _ := got.Int("fontSize"); v != 24 {
		t.Fatalf("expected default paragraph style font size, got %#v", got)
	}
}

func TestResolveRunSkipsCharacterStyleInTOC(t *testing.T) {
	r := runFixture(t)
	got := r.ResolveRunProperties(property.Object{"styleId": "Emphasis"}, property.Object{"styleId": "TOC1"}, nil, false, false)
	if got.Has("italic") {
		t.Fatalf("character style must be skipped in TOC paragraphs, got %#v", got)
	}
}

func TestResolveRunListMarker(t *testing.T) {
	r := runFixture(t)
	paragraph := property.Object{"numberingProperties": property.Object{"numId": 1, "ilvl": 0}}
	inline := property.Object{"italic": true, "bold": false, "underline": property.Object{"val": "single"}}

	got := r.ResolveRunProperties(inline, paragraph, nil, true, false)
	if got.Has("italic") || got.Has("underline") {
		t.Fatalf("inline properties must be discarded for style numbering, got %#v", got)
	}
	if b, _ := got.Bool("bold"); !b {
		t.Fatalf("expected numbering bold, got %#v", got)
	}
	wantFont := property.Object{"ascii": "Symbol", "hAnsi": "Symbol"}
	if !reflect.DeepEqual(got.Obj("fontFamily"), wantFont) {
		t.Fatalf("expected marker font %#v, got %#v", wantFont, got.Obj("fontFamily"))
	}

	got = r.ResolveRunProperties(inline, paragraph, nil, true, true)
	if b, _ := got.Bool("italic"); !b {
		t.Fatalf("expected inline italic to survive, got %#v", got)
	}
	if got.Has("underline") {
		t.Fatalf("underline must never reach list markers, got %#v", got)
	}
	if b, _ := got.Bool("bold"); !b {
		t.Fatalf("numbering must win over inline bold, got %#v", got)
	}
	if !inline.Has("underline") {
		t.Fatal("inline properties modified")
	}

	got = r.ResolveRunProperties(inline, paragraph, nil, false, false)
	if !got.Has("underline") || got.Has("fontFamily") && got.Obj("fontFamily").Has("ascii") {
		t.Fatalf("body text must not get marker formatting, got %#v", got)
	}
}

func TestCombineRunProperties(t *testing.T) {
	tests := []struct {
		name  string
		chain []property.Object
		want  property.Object
	}{
		{
			name: "color replaced wholesale",
			chain: []property.Object{
				{"color": property.Object{"val": "FF0000", "themeColor": "accent2"}},
				{"color": property.Object{"val": "00FF00"}},
			},
			want: property.Object{"color": property.Object{"val": "00FF00"}},
		},
		{
			name: "font slots merge",
			chain: []property.Object{
				{"fontFamily": property.Object{"ascii": "Calibri", "eastAsia": "MS Mincho"}},
				{"fontFamily": property.Object{"hAnsi": "Arial"}},
			},
			want: property.Object{"fontFamily": property.Object{"ascii": "Calibri", "eastAsia": "MS Mincho", "hAnsi": "Arial"}},
		},
		{
			name: "theme reference drops explicit name of the slot",
			chain: []property.Object{
				{"fontFamily": property.Object{"ascii": "Calibri", "hAnsi": "Calibri", "eastAsiaTheme": "minorEastAsia"}},
				{"fontFamily": property.Object{"asciiTheme": "majorHAnsi"}},
			},
			want: property.Object{"fontFamily": property.Object{"hAnsi": "Calibri", "eastAsiaTheme": "minorEastAsia", "asciiTheme": "majorHAnsi"}},
		},
		{
			name: "explicit name drops theme reference of the slot",
			chain: []property.Object{
				{"fontFamily": property.Object{"asciiTheme": "minorHAnsi", "cstheme": "minorBidi"}},
				{"fontFamily": property.Object{"ascii": "Arial"}},
			},
			want: property.Object{"fontFamily": property.Object{"ascii": "Arial", "cstheme": "minorBidi"}},
		},
		{
			name: "other objects deep merge",
			chain: []property.Object{
				{"underline": property.Object{"val": "single", "color": "FF0000"}},
				{"underline": property.Object{"val": "double"}},
			},
			want: property.Object{"underline": property.Object{"val": "double", "color": "FF0000"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CombineRunProperties(tt.chain)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %#v, got %#v", tt.want, got)
			}
		})
	}
}

func TestRunInTableCell(t *testing.T) {
	r := NewResolver(Params{Styles: stylesOf(gridStyle())}, testLogger(t), nil)
	header := &TableInfo{
		TableProperties: property.Object{"tableStyleId": "Grid"},
		RowIndex:        0, CellIndex: 0, NumRows: 2, NumCells: 2,
	}
	got := r.ResolveRunProperties(property.Object{}, property.Object{"styleId": "Body"}, header, false, false)
	want := property.Object{
		"fontSize": 20,
		"color":    property.Object{"val": "FFFFFF"},
		"italic":   true,
		"bold":     true,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}
