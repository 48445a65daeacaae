// Package ooxml resolves effective paragraph and run formatting of OOXML
// (DOCX) content the way Word does: document defaults, default paragraph
// style, table style and its conditional formatting, numbering levels, named
// styles with their basedOn chains and direct formatting are combined in a
// fixed order with per-property merge rules.
//
// All resolution is synchronous and works on immutable snapshots of the style,
// numbering and theme tables. Missing or malformed data never fails the
// resolution, it only shortens the cascade.
package ooxml

import "docstyle/property"

// PropertyType selects which property set of a style participates in a
// resolution.
type PropertyType string

const (
	ParagraphPropertiesType PropertyType = "paragraphProperties"
	RunPropertiesType       PropertyType = "runProperties"
	TablePropertiesType     PropertyType = "tableProperties"
	TableCellPropertiesType PropertyType = "tableCellProperties"
)

// Style types as declared by w:style/@w:type.
const (
	StyleTypeParagraph = "paragraph"
	StyleTypeCharacter = "character"
	StyleTypeTable     = "table"
	StyleTypeNumbering = "numbering"
)

// TableStyleBucket holds conditional formatting of a table style for one
// TableStyleType.
type TableStyleBucket struct {
	ParagraphProperties property.Object
	RunProperties       property.Object
	TableCellProperties property.Object
}

func (b *TableStyleBucket) properties(pt PropertyType) property.Object {
	if b == nil {
		return nil
	}
	switch pt {
	case ParagraphPropertiesType:
		return b.ParagraphProperties
	case RunPropertiesType:
		return b.RunProperties
	case TableCellPropertiesType:
		return b.TableCellProperties
	}
	return nil
}

// StyleDefinition is a single named style.
type StyleDefinition struct {
	ID      string
	Type    string
	Name    string
	BasedOn string
	// Default marks the default style of its type (w:default="1").
	Default bool

	ParagraphProperties  property.Object
	RunProperties        property.Object
	TableProperties      property.Object
	TableCellProperties  property.Object
	TableStyleProperties map[TableStyleType]*TableStyleBucket
}

func (s *StyleDefinition) properties(pt PropertyType) property.Object {
	if s == nil {
		return nil
	}
	switch pt {
	case ParagraphPropertiesType:
		return s.ParagraphProperties
	case RunPropertiesType:
		return s.RunProperties
	case TablePropertiesType:
		return s.TableProperties
	case TableCellPropertiesType:
		return s.TableCellProperties
	}
	return nil
}

// DocDefaults are w:docDefaults.
type DocDefaults struct {
	ParagraphProperties property.Object
	RunProperties       property.Object
}

// StylesDocument is the style table of a document (word/styles.xml).
type StylesDocument struct {
	DocDefaults DocDefaults
	Styles      map[string]*StyleDefinition
}

// Style returns the style with the given id or nil.
func (d *StylesDocument) Style(id string) *StyleDefinition {
	if d == nil || id == "" {
		return nil
	}
	return d.Styles[id]
}

// LevelDefinition is a single w:lvl of an abstract numbering definition (or a
// level override).
type LevelDefinition struct {
	Ilvl    int
	Start   *int
	NumFmt  string
	LvlText string
	LvlJc   string
	Suffix  string
	// StyleID links the level to a paragraph style (w:pStyle).
	StyleID string

	ParagraphProperties property.Object
	RunProperties       property.Object
}

func (l *LevelDefinition) properties(pt PropertyType) property.Object {
	if l == nil {
		return nil
	}
	switch pt {
	case ParagraphPropertiesType:
		return l.ParagraphProperties
	case RunPropertiesType:
		return l.RunProperties
	}
	return nil
}

// LevelOverride is w:lvlOverride of a numbering instance.
type LevelOverride struct {
	StartOverride *int
	Level         *LevelDefinition
}

// NumberingDefinition is a numbering instance (w:num).
type NumberingDefinition struct {
	NumID          int
	AbstractNumID  int
	LevelOverrides map[int]*LevelOverride
}

// AbstractNumbering is w:abstractNum.
type AbstractNumbering struct {
	ID           int
	NumStyleLink string
	StyleLink    string
	Levels       map[int]*LevelDefinition
}

// NumberingDocument is the numbering table of a document (word/numbering.xml).
type NumberingDocument struct {
	Definitions map[int]*NumberingDefinition
	Abstracts   map[int]*AbstractNumbering
}

// TableInfo describes the table cell a paragraph or run lives in. It is only
// valid for the duration of a single resolution call.
type TableInfo struct {
	// TableProperties are the direct table properties: tableStyleId, tblLook,
	// tableStyleRowBandSize and tableStyleColBandSize are consulted.
	TableProperties property.Object
	RowIndex        int
	CellIndex       int
	NumRows         int
	NumCells        int
}

// Keys of the property objects interpreted by the resolvers.
const (
	keyStyleID             = "styleId"
	keyNumberingProperties = "numberingProperties"
	keyNumID               = "numId"
	keyIlvl                = "ilvl"
	keyIndent              = "indent"
	keyFirstLine           = "firstLine"
	keyHanging             = "hanging"
	keyTabStops            = "tabStops"
	keyUnderline           = "underline"
	keyFontFamily          = "fontFamily"
	keyColor               = "color"
	keyShading             = "shading"
	keyTableStyleID        = "tableStyleId"
	keyTblLook             = "tblLook"
	keyRowBandSize         = "tableStyleRowBandSize"
	keyColBandSize         = "tableStyleColBandSize"
)
