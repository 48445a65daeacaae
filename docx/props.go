package docx

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"docstyle/property"
)

// converter turns w:pPr, w:rPr, w:tblPr and w:tcPr trees into property
// objects keyed the way the ooxml resolvers expect. Elements without a
// dedicated mapping are kept in generic form under their local name.
type converter struct {
	log *zap.Logger
}

func (c *converter) paragraph(el *etree.Element) property.Object {
	if el == nil {
		return nil
	}
	out := property.Object{}
	for _, e := range el.ChildElements() {
		switch e.Tag {
		case "pStyle":
			if v := val(e); v != "" {
				out["styleId"] = v
			}
		case "keepNext", "keepLines", "pageBreakBefore", "widowControl",
			"contextualSpacing", "suppressAutoHyphens", "suppressLineNumbers", "bidi":
			out[e.Tag] = onOff(e)
		case "jc":
			out["justification"] = val(e)
		case "ind":
			if ind := indent(e); len(ind) > 0 {
				out["indent"] = ind
			}
		case "spacing":
			if sp := paragraphSpacing(e); len(sp) > 0 {
				out["spacing"] = sp
			}
		case "tabs":
			if tabs := tabStops(e); len(tabs) > 0 {
				out["tabStops"] = tabs
			}
		case "numPr":
			if num := numberingProperties(e); len(num) > 0 {
				out["numberingProperties"] = num
			}
		case "outlineLvl":
			if v, ok := intAttr(e, "val"); ok {
				out["outlineLvl"] = v
			}
		case "shd":
			out["shading"] = attrObject(e)
		case "pBdr":
			out["borders"] = borders(e)
		case "rPr":
			if run := c.run(e); len(run) > 0 {
				out["runProperties"] = run
			}
		case "sectPr", "pPrChange":
			// section breaks and revisions do not take part in the cascade
		default:
			out[e.Tag] = generic(e)
		}
	}
	return out
}

func (c *converter) run(el *etree.Element) property.Object {
	if el == nil {
		return nil
	}
	out := property.Object{}
	for _, e := range el.ChildElements() {
		switch e.Tag {
		case "rStyle":
			if v := val(e); v != "" {
				out["styleId"] = v
			}
		case "b":
			out["bold"] = onOff(e)
		case "bCs":
			out["boldCs"] = onOff(e)
		case "i":
			out["italic"] = onOff(e)
		case "iCs":
			out["italicCs"] = onOff(e)
		case "strike", "dstrike", "caps", "smallCaps", "vanish", "emboss", "imprint", "outline", "shadow":
			out[e.Tag] = onOff(e)
		case "sz":
			if v, ok := intAttr(e, "val"); ok {
				out["fontSize"] = v
			}
		case "szCs":
			if v, ok := intAttr(e, "val"); ok {
				out["fontSizeCs"] = v
			}
		case "color":
			out["color"] = attrObject(e)
		case "rFonts":
			out["fontFamily"] = attrObject(e)
		case "u":
			out["underline"] = attrObject(e)
		case "highlight":
			out["highlight"] = attrObject(e)
		case "shd":
			out["shading"] = attrObject(e)
		case "lang":
			out["lang"] = c.lang(e)
		case "vertAlign":
			out["vertAlign"] = val(e)
		case "spacing":
			if v, ok := intAttr(e, "val"); ok {
				out["letterSpacing"] = v
			}
		case "kern", "position":
			if v, ok := intAttr(e, "val"); ok {
				out[e.Tag] = v
			}
		case "rPrChange":
		default:
			out[e.Tag] = generic(e)
		}
	}
	return out
}

func (c *converter) table(el *etree.Element) property.Object {
	if el == nil {
		return nil
	}
	out := property.Object{}
	for _, e := range el.ChildElements() {
		switch e.Tag {
		case "tblStyle":
			if v := val(e); v != "" {
				out["tableStyleId"] = v
			}
		case "tblLook":
			out["tblLook"] = tableLook(e)
		case "tblStyleRowBandSize":
			if v, ok := intAttr(e, "val"); ok {
				out["tableStyleRowBandSize"] = v
			}
		case "tblStyleColBandSize":
			if v, ok := intAttr(e, "val"); ok {
				out["tableStyleColBandSize"] = v
			}
		case "jc":
			out["justification"] = val(e)
		case "tblW":
			out["tableWidth"] = attrObject(e)
		case "tblInd":
			out["tableIndent"] = attrObject(e)
		case "tblBorders":
			out["borders"] = borders(e)
		case "shd":
			out["shading"] = attrObject(e)
		case "tblPrChange":
		default:
			out[e.Tag] = generic(e)
		}
	}
	return out
}

func (c *converter) cell(el *etree.Element) property.Object {
	if el == nil {
		return nil
	}
	out := property.Object{}
	for _, e := range el.ChildElements() {
		switch e.Tag {
		case "shd":
			out["shading"] = attrObject(e)
		case "vAlign":
			out["vAlign"] = val(e)
		case "tcW":
			out["cellWidth"] = attrObject(e)
		case "tcBorders":
			out["borders"] = borders(e)
		case "tcPrChange":
		default:
			out[e.Tag] = generic(e)
		}
	}
	return out
}

// lang canonicalizes the language tags of w:lang.
func (c *converter) lang(el *etree.Element) property.Object {
	out := property.Object{}
	for _, a := range el.Attr {
		tag, err := language.Parse(a.Value)
		if err != nil {
			c.log.Debug("Unable to parse language tag, keeping as is", zap.String("lang", a.Value), zap.Error(err))
			out[a.Key] = a.Value
			continue
		}
		out[a.Key] = tag.String()
	}
	return out
}

func indent(el *etree.Element) property.Object {
	out := property.Object{}
	for _, a := range el.Attr {
		key := a.Key
		switch key {
		case "start":
			key = "left"
		case "end":
			key = "right"
		case "left", "right", "firstLine", "hanging":
		default:
			continue
		}
		if v, err := strconv.Atoi(a.Value); err == nil {
			out[key] = v
		}
	}
	return out
}

func paragraphSpacing(el *etree.Element) property.Object {
	out := property.Object{}
	for _, a := range el.Attr {
		switch a.Key {
		case "before", "after", "line":
			if v, err := strconv.Atoi(a.Value); err == nil {
				out[a.Key] = v
			}
		case "lineRule":
			out[a.Key] = a.Value
		case "beforeAutospacing", "afterAutospacing":
			out[a.Key] = onOffValue(a.Value)
		}
	}
	return out
}

func tabStops(el *etree.Element) []any {
	var out []any
	for _, e := range el.ChildElements() {
		if e.Tag != "tab" {
			continue
		}
		pos, ok := intAttr(e, "pos")
		if !ok {
			continue
		}
		stop := property.Object{"val": val(e), "pos": pos}
		if leader := attrValue(e, "leader"); leader != "" {
			stop["leader"] = leader
		}
		out = append(out, stop)
	}
	return out
}

func numberingProperties(el *etree.Element) property.Object {
	out := property.Object{}
	if v, ok := intAttr(child(el, "numId"), "val"); ok {
		out["numId"] = v
	}
	if v, ok := intAttr(child(el, "ilvl"), "val"); ok {
		out["ilvl"] = v
	}
	return out
}

func tableLook(el *etree.Element) property.Object {
	out := property.Object{}
	for _, a := range el.Attr {
		switch a.Key {
		case "firstRow", "lastRow", "firstColumn", "lastColumn", "noHBand", "noVBand":
			out[a.Key] = onOffValue(a.Value)
		case "val":
			out[a.Key] = a.Value
		}
	}
	return out
}

func borders(el *etree.Element) property.Object {
	out := property.Object{}
	for _, e := range el.ChildElements() {
		out[e.Tag] = attrObject(e)
	}
	return out
}

// attrObject maps attributes by local name. Numeric sizes stay strings apart
// from the well known integer ones.
func attrObject(el *etree.Element) property.Object {
	out := property.Object{}
	for _, a := range el.Attr {
		if a.Space == "xmlns" || a.Key == "xmlns" {
			continue
		}
		switch a.Key {
		case "sz", "space", "w":
			if v, err := strconv.Atoi(a.Value); err == nil {
				out[a.Key] = v
				continue
			}
		}
		out[a.Key] = a.Value
	}
	return out
}

func generic(el *etree.Element) any {
	children := el.ChildElements()
	if len(children) == 0 {
		if len(el.Attr) == 0 {
			return true
		}
		if v, ok := attr(el, "val"); ok && len(el.Attr) == 1 {
			return v
		}
	}
	out := attrObject(el)
	for _, e := range children {
		out[e.Tag] = generic(e)
	}
	return out
}

func onOffValue(v string) bool {
	switch v {
	case "0", "false", "off":
		return false
	}
	return true
}

// Fragment parsers accept a single w:pPr, w:rPr or w:tblPr element (with or
// without namespace declarations) and return its property object.

// ParseParagraphProperties converts a w:pPr fragment.
func ParseParagraphProperties(data []byte, log *zap.Logger) (property.Object, error) {
	return parseFragment(data, "pPr", log, (*converter).paragraph)
}

// ParseRunProperties converts a w:rPr fragment.
func ParseRunProperties(data []byte, log *zap.Logger) (property.Object, error) {
	return parseFragment(data, "rPr", log, (*converter).run)
}

// ParseTableProperties converts a w:tblPr fragment.
func ParseTableProperties(data []byte, log *zap.Logger) (property.Object, error) {
	return parseFragment(data, "tblPr", log, (*converter).table)
}

func parseFragment(data []byte, tag string, log *zap.Logger, conv func(*converter, *etree.Element) property.Object) (property.Object, error) {
	root, err := readXML(tag, data)
	if err != nil {
		return nil, err
	}
	if root.Tag != tag {
		return nil, fmt.Errorf("unexpected root element %q, expected %q", root.Tag, tag)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return conv(&converter{log: log}, root), nil
}
