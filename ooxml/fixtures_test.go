package ooxml

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"docstyle/property"
)

func testLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
}

func intPtr(v int) *int { return &v }

func paragraphStyle(id, basedOn string, ppr property.Object) *StyleDefinition {
	return &StyleDefinition{ID: id, Type: StyleTypeParagraph, BasedOn: basedOn, ParagraphProperties: ppr}
}

func stylesOf(defs ...*StyleDefinition) *StylesDocument {
	doc := &StylesDocument{Styles: make(map[string]*StyleDefinition, len(defs))}
	for _, d := range defs {
		doc.Styles[d.ID] = d
	}
	return doc
}

// simpleNumbering builds numId 1 -> abstract 1 with a single level 0.
func simpleNumbering(level *LevelDefinition) *NumberingDocument {
	return &NumberingDocument{
		Definitions: map[int]*NumberingDefinition{
			1: {NumID: 1, AbstractNumID: 1},
		},
		Abstracts: map[int]*AbstractNumbering{
			1: {ID: 1, Levels: map[int]*LevelDefinition{0: level}},
		},
	}
}

const testThemeXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office Theme">
  <a:themeElements>
    <a:clrScheme name="Office">
      <a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>
      <a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>
      <a:dk2><a:srgbClr val="44546A"/></a:dk2>
      <a:accent1><a:srgbClr val="4472c4"/></a:accent1>
    </a:clrScheme>
    <a:fontScheme name="Office">
      <a:majorFont><a:latin typeface="Calibri Light"/><a:ea typeface=""/></a:majorFont>
      <a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/></a:minorFont>
    </a:fontScheme>
  </a:themeElements>
</a:theme>`

func testTheme(t *testing.T) *Theme {
	t.Helper()
	theme, err := ParseTheme([]byte(testThemeXML))
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}
	return theme
}
