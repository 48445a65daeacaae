package ooxml

import (
	"strconv"

	"go.uber.org/zap"

	"docstyle/property"
)

// maxNumberingLinkHops is the number of numbering style links followed before
// the abstract definition at hand is used as is.
const maxNumberingLinkHops = 1

// ResolveNumbering returns properties of type pt of list level ilvl of
// numbering instance numID. Level override properties win over the abstract
// level. For paragraph properties the paragraph style linked to the level is
// returned under "styleId".
func (r *Resolver) ResolveNumbering(pt PropertyType, ilvl, numID int) property.Object {
	return r.resolveNumbering(pt, ilvl, numID, 0)
}

func (r *Resolver) resolveNumbering(pt PropertyType, ilvl, numID, tries int) property.Object {
	num := r.numberingDefinition(numID)
	if num == nil {
		return property.Object{}
	}

	var overrideProps property.Object
	if ov := num.LevelOverrides[ilvl]; ov != nil && ov.Level != nil {
		overrideProps = levelProperties(ov.Level, pt)
	}

	abs := r.abstractNumbering(num.AbstractNumID)
	if abs == nil {
		r.log.Debug("Numbering references missing abstract definition",
			zap.Int("numId", numID), zap.Int("abstractNumId", num.AbstractNumID))
		return property.Object{}
	}

	if linkedNumID, ok := r.linkedNumID(abs); ok {
		if tries < maxNumberingLinkHops {
			linked := r.resolveNumbering(pt, ilvl, linkedNumID, tries+1)
			res := r.combine(pt, []property.Object{linked, overrideProps})
			r.tracer.TraceNumbering(pt, numID, ilvl, tries, "via style link to numId "+strconv.Itoa(linkedNumID), res)
			return res
		}
		r.log.Debug("Numbering style link not followed",
			zap.Int("numId", numID), zap.Int("linkedNumId", linkedNumID), zap.Int("tries", tries))
	}

	lvl := abs.Levels[ilvl]
	if lvl == nil {
		r.log.Debug("Numbering level is not defined",
			zap.Int("numId", numID), zap.Int("abstractNumId", abs.ID), zap.Int("ilvl", ilvl))
		return property.Object{}
	}

	res := r.combine(pt, []property.Object{levelProperties(lvl, pt), overrideProps})
	r.tracer.TraceNumbering(pt, numID, ilvl, tries, "", res)
	return res
}

func (r *Resolver) numberingDefinition(numID int) *NumberingDefinition {
	if r.params.Numbering == nil {
		return nil
	}
	return r.params.Numbering.Definitions[numID]
}

func (r *Resolver) abstractNumbering(id int) *AbstractNumbering {
	if r.params.Numbering == nil {
		return nil
	}
	return r.params.Numbering.Abstracts[id]
}

// linkedNumID follows numStyleLink (or styleLink) of abs to the numbering
// instance referenced by the linked numbering style.
func (r *Resolver) linkedNumID(abs *AbstractNumbering) (int, bool) {
	link := abs.NumStyleLink
	if link == "" {
		link = abs.StyleLink
	}
	if link == "" {
		return 0, false
	}
	style := r.style(link)
	if style == nil {
		return 0, false
	}
	numID, ok := style.ParagraphProperties.Int(keyNumberingProperties, keyNumID)
	if !ok || numID == 0 {
		return 0, false
	}
	return numID, true
}

// levelProperties builds a new object from the level definition without
// touching the definition itself.
func levelProperties(lvl *LevelDefinition, pt PropertyType) property.Object {
	props := property.Clone(lvl.properties(pt))
	if props == nil {
		props = property.Object{}
	}
	if pt == ParagraphPropertiesType && lvl.StyleID != "" {
		props[keyStyleID] = lvl.StyleID
	}
	return props
}
