package docx

import (
	"github.com/beevik/etree"
	"go.uber.org/zap"

	"docstyle/ooxml"
)

// ParseStyles converts word/styles.xml into the style table.
func ParseStyles(data []byte, log *zap.Logger) (*ooxml.StylesDocument, error) {
	if log == nil {
		log = zap.NewNop()
	}
	root, err := readXML(partStyles, data)
	if err != nil {
		return nil, err
	}
	c := &converter{log: log}
	return c.styles(root), nil
}

func (c *converter) styles(root *etree.Element) *ooxml.StylesDocument {
	doc := &ooxml.StylesDocument{Styles: make(map[string]*ooxml.StyleDefinition)}
	for _, el := range root.ChildElements() {
		switch el.Tag {
		case "docDefaults":
			doc.DocDefaults = ooxml.DocDefaults{
				ParagraphProperties: c.paragraph(child(child(el, "pPrDefault"), "pPr")),
				RunProperties:       c.run(child(child(el, "rPrDefault"), "rPr")),
			}
		case "style":
			s := c.style(el)
			if s.ID == "" {
				c.log.Debug("Style without id, ignoring", zap.String("name", s.Name))
				continue
			}
			if _, dup := doc.Styles[s.ID]; dup {
				c.log.Debug("Duplicate style id, keeping first", zap.String("id", s.ID))
				continue
			}
			doc.Styles[s.ID] = s
		case "latentStyles":
		default:
			c.log.Debug("Unexpected tag in styles, ignoring", zap.String("tag", el.Tag))
		}
	}
	return doc
}

func (c *converter) style(el *etree.Element) *ooxml.StyleDefinition {
	def, ok := attr(el, "default")
	s := &ooxml.StyleDefinition{
		ID:      attrValue(el, "styleId"),
		Type:    attrValue(el, "type"),
		Default: ok && onOffValue(def),
	}
	if s.Type == "" {
		s.Type = ooxml.StyleTypeParagraph
	}
	for _, e := range el.ChildElements() {
		switch e.Tag {
		case "name":
			s.Name = val(e)
		case "basedOn":
			s.BasedOn = val(e)
		case "pPr":
			s.ParagraphProperties = c.paragraph(e)
		case "rPr":
			s.RunProperties = c.run(e)
		case "tblPr":
			s.TableProperties = c.table(e)
		case "tcPr":
			s.TableCellProperties = c.cell(e)
		case "tblStylePr":
			typ, err := ooxml.ParseTableStyleType(attrValue(e, "type"))
			if err != nil {
				c.log.Debug("Unknown table style condition, ignoring", zap.String("style", s.ID), zap.Error(err))
				continue
			}
			if s.TableStyleProperties == nil {
				s.TableStyleProperties = make(map[ooxml.TableStyleType]*ooxml.TableStyleBucket)
			}
			s.TableStyleProperties[typ] = &ooxml.TableStyleBucket{
				ParagraphProperties: c.paragraph(child(e, "pPr")),
				RunProperties:       c.run(child(e, "rPr")),
				TableCellProperties: c.cell(child(e, "tcPr")),
			}
		}
	}
	return s
}
