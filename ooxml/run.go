package ooxml

import "docstyle/property"

// fontSlots pairs explicit font names with their theme references.
var fontSlots = [...][2]string{
	{"ascii", "asciiTheme"},
	{"hAnsi", "hAnsiTheme"},
	{"eastAsia", "eastAsiaTheme"},
	{"cs", "cstheme"},
}

var runOptions = []property.Option{
	property.WithFullOverride(keyColor, "highlight", keyShading),
	property.WithSpecialHandler(keyFontFamily, combineFontFamily),
}

// CombineRunProperties combines run property objects, lowest priority first.
// Colors, highlight and shading are atomic and replaced wholesale. Font family
// sub-fields merge individually, but a level naming a slot explicitly drops
// the inherited theme reference of that slot and vice versa.
func CombineRunProperties(chain []property.Object) property.Object {
	return property.Combine(chain, runOptions...)
}

func combineFontFamily(acc, next property.Object) any {
	incoming, ok := property.AsObject(next[keyFontFamily])
	if !ok {
		return next[keyFontFamily]
	}
	prev, _ := property.AsObject(acc[keyFontFamily])
	out := property.Clone(prev)
	if out == nil {
		out = property.Object{}
	}
	for _, slot := range fontSlots {
		name, theme := slot[0], slot[1]
		switch {
		case incoming.Has(theme) && !incoming.Has(name):
			delete(out, name)
		case incoming.Has(name) && !incoming.Has(theme):
			delete(out, theme)
		}
	}
	for k, v := range incoming {
		if v != nil {
			out[k] = v
		}
	}
	return out
}

// RunContext carries what a run resolution needs to know about the run
// besides its direct formatting.
type RunContext struct {
	// Paragraph holds resolved paragraph properties of the enclosing
	// paragraph (styleId and numberingProperties are consulted).
	Paragraph property.Object
	Table     *TableInfo
	// IsListNumber is set when the run renders the list marker of the
	// paragraph rather than its text.
	IsListNumber bool
	// NumberingDefinedInline reports that paragraph numbering came from
	// direct formatting rather than from the paragraph style.
	NumberingDefinedInline bool
}

// ResolveRunProperties returns effective run properties of a run with direct
// formatting inline in a paragraph whose properties were already resolved.
// inline is never modified. Without a style table inline is returned as is.
func (r *Resolver) ResolveRunProperties(inline, paragraph property.Object, table *TableInfo, isListNumber, numberingDefinedInline bool) property.Object {
	res, _ := r.ExplainRun(inline, RunContext{
		Paragraph:              paragraph,
		Table:                  table,
		IsListNumber:           isListNumber,
		NumberingDefinedInline: numberingDefinedInline,
	})
	return res
}

// ExplainRun resolves run properties and also returns the cascade layers in
// application order.
func (r *Resolver) ExplainRun(inline property.Object, rc RunContext) (property.Object, []Layer) {
	if r.styles() == nil {
		res := property.Clone(inline)
		if res == nil {
			res = property.Object{}
		}
		return res, []Layer{{Name: "inline", Props: res}}
	}

	inline = property.Clone(inline)
	paragraphStyleID, _ := rc.Paragraph.String(keyStyleID)

	layers := []Layer{{Name: "docDefaults", Props: r.styles().DocDefaults.RunProperties}}
	if paragraphStyleID == "" {
		layers = append(layers, Layer{
			Name:  "default style " + r.defaultParagraphStyle,
			Props: r.ResolveStyleChain(RunPropertiesType, r.defaultParagraphStyle, true),
		})
	}
	if tp := r.tableStyleProperties(RunPropertiesType, rc.Table); len(tp) > 0 {
		layers = append(layers, Layer{Name: "table style", Props: tp})
	}
	layers = append(layers, r.cellLayers(RunPropertiesType, rc.Table)...)
	if paragraphStyleID != "" {
		layers = append(layers, Layer{
			Name:  "paragraph style " + paragraphStyleID,
			Props: r.ResolveStyleChain(RunPropertiesType, paragraphStyleID, true),
		})
	}
	if charStyleID, _ := inline.String(keyStyleID); charStyleID != "" && !isTOCStyle(paragraphStyleID) {
		layers = append(layers, Layer{
			Name:  "character style " + charStyleID,
			Props: r.ResolveStyleChain(RunPropertiesType, charStyleID, true),
		})
	}

	var numberingLayer *Layer
	if rc.IsListNumber {
		if !rc.NumberingDefinedInline {
			inline = property.Object{}
		}
		delete(inline, keyUnderline)
		numbering := rc.Paragraph.Obj(keyNumberingProperties)
		numID, ok := numbering.Int(keyNumID)
		if ok && numID != 0 {
			ilvl, _ := numbering.Int(keyIlvl)
			numberingLayer = &Layer{Name: "numbering", Props: r.ResolveNumbering(RunPropertiesType, ilvl, numID)}
		}
	}
	layers = append(layers, Layer{Name: "inline", Props: inline})
	if numberingLayer != nil {
		layers = append(layers, *numberingLayer)
	}

	res := CombineRunProperties(layerProps(layers))
	r.tracer.TraceLayers("run in "+paragraphStyleID, layers, res)
	return res, layers
}
