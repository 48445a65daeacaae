package ooxml

import (
	"cmp"
	"slices"

	"docstyle/property"
)

// ResolveParagraphProperties returns effective paragraph properties of a
// paragraph with direct formatting inline, optionally placed in a table cell.
// inline is never modified. Without a style table inline is returned as is.
func (r *Resolver) ResolveParagraphProperties(inline property.Object, table *TableInfo) property.Object {
	res, _ := r.ExplainParagraph(inline, table)
	return res
}

// ExplainParagraph resolves paragraph properties and also returns the layers
// of the general cascade in application order.
func (r *Resolver) ExplainParagraph(inline property.Object, table *TableInfo) (property.Object, []Layer) {
	if r.styles() == nil {
		res := property.Clone(inline)
		if res == nil {
			res = property.Object{}
		}
		return res, []Layer{{Name: "inline", Props: res}}
	}

	inline = property.Clone(inline)
	styleID, _ := inline.String(keyStyleID)

	var styleProps property.Object
	if styleID != "" {
		styleProps = r.ResolveStyleChain(ParagraphPropertiesType, styleID, true)
	}

	numbering := inline.Obj(keyNumberingProperties)
	if numbering == nil {
		numbering = styleProps.Obj(keyNumberingProperties)
	}
	ilvl, _ := numbering.Int(keyIlvl)
	numID, hasNumID := numbering.Int(keyNumID)
	isList := hasNumID && numID != 0

	var numberingProps property.Object
	if isList {
		numberingProps = r.ResolveNumbering(ParagraphPropertiesType, ilvl, numID)
		if linked, ok := numberingProps.String(keyStyleID); ok && linked != "" {
			delete(numberingProps, keyStyleID)
			styleID = linked
			styleProps = r.ResolveStyleChain(ParagraphPropertiesType, styleID, true)
			inline[keyStyleID] = styleID
			if sameNumbering(styleProps.Obj(keyNumberingProperties), inline.Obj(keyNumberingProperties)) {
				delete(inline, keyNumberingProperties)
			}
		}
	}
	numberingDefinedInline := inline.Obj(keyNumberingProperties).Has(keyNumID)

	defaults := []Layer{{Name: "docDefaults", Props: r.styles().DocDefaults.ParagraphProperties}}
	if styleID == "" {
		defaults = append(defaults, Layer{
			Name:  "default style " + r.defaultParagraphStyle,
			Props: r.ResolveStyleChain(ParagraphPropertiesType, r.defaultParagraphStyle, true),
		})
	}

	layers := slices.Clone(defaults)
	if tp := r.tableStyleProperties(ParagraphPropertiesType, table); len(tp) > 0 {
		layers = append(layers, Layer{Name: "table style", Props: tp})
	}
	layers = append(layers, r.cellLayers(ParagraphPropertiesType, table)...)
	numLayer := Layer{Name: "numbering", Props: numberingProps}
	styleLayer := Layer{Name: "style " + styleID, Props: styleProps}
	inlineLayer := Layer{Name: "inline", Props: inline}
	layers = append(layers, numLayer, styleLayer, inlineLayer)

	res := property.Combine(layerProps(layers), property.WithSpecialHandler(keyTabStops, combineTabStops))

	var indentLayers []Layer
	switch {
	case isList && numberingDefinedInline:
		indentLayers = append(slices.Clone(defaults), styleLayer, numLayer, inlineLayer)
	case isList:
		own := Layer{Name: "style " + styleID + " (own)", Props: r.ResolveStyleChain(ParagraphPropertiesType, styleID, false)}
		indentLayers = append(slices.Clone(defaults), numLayer, own, inlineLayer)
	default:
		indentLayers = append(slices.Clone(defaults), numLayer, styleLayer, inlineLayer)
	}
	indent := property.CombineIndent(layerProps(indentLayers)).Obj(keyIndent)
	if len(indent) > 0 {
		res[keyIndent] = indent
	} else {
		delete(res, keyIndent)
	}

	if styleID != "" {
		res[keyStyleID] = styleID
	}

	r.tracer.TraceLayers("paragraph "+styleID, layers, res)
	return res, layers
}

// NumberingDefinedInline reports whether the inline layer of a paragraph
// resolution (see ExplainParagraph) still carries its own numbering. Inline
// numbering repeating the one of the linked level style is dropped during
// resolution and does not count.
func NumberingDefinedInline(layers []Layer) bool {
	for i := len(layers) - 1; i >= 0; i-- {
		if layers[i].Name == "inline" {
			return layers[i].Props.Obj(keyNumberingProperties).Has(keyNumID)
		}
	}
	return false
}

func sameNumbering(a, b property.Object) bool {
	if a == nil || b == nil {
		return false
	}
	aID, aok := a.Int(keyNumID)
	bID, bok := b.Int(keyNumID)
	if !aok || !bok || aID != bID {
		return false
	}
	aLvl, _ := a.Int(keyIlvl)
	bLvl, _ := b.Int(keyIlvl)
	return aLvl == bLvl
}

// tabStop extracts position and alignment of a tab stop entry. Both the flat
// {val, pos} form and the wrapped {tab: {tabType, pos}} form are accepted.
func tabStop(v any) (pos int, kind string, ok bool) {
	o, isObj := property.AsObject(v)
	if !isObj {
		return 0, "", false
	}
	if inner := o.Obj("tab"); inner != nil {
		o = inner
	}
	pos, ok = o.Int("pos")
	if !ok {
		return 0, "", false
	}
	if kind, _ = o.String("tabType"); kind == "" {
		kind, _ = o.String("val")
	}
	return pos, kind, true
}

// combineTabStops accumulates tab stops across levels. A clear entry removes
// stops at its position defined below it, a regular entry replaces a stop at
// the same position. Clear entries themselves are not kept.
func combineTabStops(acc, next property.Object) any {
	incoming := list(next[keyTabStops])
	prev := list(acc[keyTabStops])

	cleared := make(map[int]bool)
	for _, e := range incoming {
		if pos, _, ok := tabStop(e); ok {
			cleared[pos] = true
		}
	}

	out := make([]any, 0, len(prev)+len(incoming))
	for _, e := range prev {
		if pos, _, ok := tabStop(e); ok && cleared[pos] {
			continue
		}
		out = append(out, e)
	}
	for _, e := range incoming {
		if _, kind, ok := tabStop(e); !ok || kind == "clear" {
			continue
		}
		out = append(out, e)
	}
	if len(out) == 0 {
		return nil
	}
	slices.SortStableFunc(out, func(a, b any) int {
		pa, _, _ := tabStop(a)
		pb, _, _ := tabStop(b)
		return cmp.Compare(pa, pb)
	})
	return out
}

func list(v any) []any {
	switch l := v.(type) {
	case []any:
		return l
	case []property.Object:
		out := make([]any, len(l))
		for i, o := range l {
			out[i] = o
		}
		return out
	case []map[string]any:
		out := make([]any, len(l))
		for i, o := range l {
			out[i] = o
		}
		return out
	}
	return nil
}
