package docx

import (
	"github.com/beevik/etree"
	"go.uber.org/zap"

	"docstyle/ooxml"
)

// ParseNumbering converts word/numbering.xml into the numbering table.
func ParseNumbering(data []byte, log *zap.Logger) (*ooxml.NumberingDocument, error) {
	if log == nil {
		log = zap.NewNop()
	}
	root, err := readXML(partNumbering, data)
	if err != nil {
		return nil, err
	}
	c := &converter{log: log}
	return c.numbering(root), nil
}

func (c *converter) numbering(root *etree.Element) *ooxml.NumberingDocument {
	doc := &ooxml.NumberingDocument{
		Definitions: make(map[int]*ooxml.NumberingDefinition),
		Abstracts:   make(map[int]*ooxml.AbstractNumbering),
	}
	for _, el := range root.ChildElements() {
		switch el.Tag {
		case "abstractNum":
			id, ok := intAttr(el, "abstractNumId")
			if !ok {
				c.log.Debug("Abstract numbering without id, ignoring")
				continue
			}
			doc.Abstracts[id] = c.abstractNumbering(id, el)
		case "num":
			id, ok := intAttr(el, "numId")
			if !ok {
				c.log.Debug("Numbering instance without id, ignoring")
				continue
			}
			doc.Definitions[id] = c.numberingDefinition(id, el)
		}
	}
	return doc
}

func (c *converter) abstractNumbering(id int, el *etree.Element) *ooxml.AbstractNumbering {
	abs := &ooxml.AbstractNumbering{ID: id, Levels: make(map[int]*ooxml.LevelDefinition)}
	for _, e := range el.ChildElements() {
		switch e.Tag {
		case "numStyleLink":
			abs.NumStyleLink = val(e)
		case "styleLink":
			abs.StyleLink = val(e)
		case "lvl":
			lvl := c.level(e)
			abs.Levels[lvl.Ilvl] = lvl
		}
	}
	return abs
}

func (c *converter) numberingDefinition(id int, el *etree.Element) *ooxml.NumberingDefinition {
	def := &ooxml.NumberingDefinition{NumID: id}
	for _, e := range el.ChildElements() {
		switch e.Tag {
		case "abstractNumId":
			if v, ok := intAttr(e, "val"); ok {
				def.AbstractNumID = v
			}
		case "lvlOverride":
			ilvl, ok := intAttr(e, "ilvl")
			if !ok {
				continue
			}
			override := &ooxml.LevelOverride{}
			if v, ok := intAttr(child(e, "startOverride"), "val"); ok {
				override.StartOverride = &v
			}
			if lvl := child(e, "lvl"); lvl != nil {
				override.Level = c.level(lvl)
				override.Level.Ilvl = ilvl
			}
			if def.LevelOverrides == nil {
				def.LevelOverrides = make(map[int]*ooxml.LevelOverride)
			}
			def.LevelOverrides[ilvl] = override
		}
	}
	return def
}

func (c *converter) level(el *etree.Element) *ooxml.LevelDefinition {
	lvl := &ooxml.LevelDefinition{}
	lvl.Ilvl, _ = intAttr(el, "ilvl")
	for _, e := range el.ChildElements() {
		switch e.Tag {
		case "start":
			if v, ok := intAttr(e, "val"); ok {
				lvl.Start = &v
			}
		case "numFmt":
			lvl.NumFmt = val(e)
		case "lvlText":
			lvl.LvlText = val(e)
		case "lvlJc":
			lvl.LvlJc = val(e)
		case "suff":
			lvl.Suffix = val(e)
		case "pStyle":
			lvl.StyleID = val(e)
		case "pPr":
			lvl.ParagraphProperties = c.paragraph(e)
		case "rPr":
			lvl.RunProperties = c.run(e)
		}
	}
	return lvl
}
