package ooxml

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"docstyle/property"
)

// Theme is the parsed theme part of a document (word/theme/theme1.xml).
type Theme struct {
	doc *etree.Document
}

// NewTheme wraps an already parsed theme tree. nil gives nil.
func NewTheme(doc *etree.Document) *Theme {
	if doc == nil {
		return nil
	}
	return &Theme{doc: doc}
}

// ParseTheme parses theme XML.
func ParseTheme(data []byte) (*Theme, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("unable to parse theme: %w", err)
	}
	return NewTheme(doc), nil
}

// Document returns the underlying tree.
func (t *Theme) Document() *etree.Document {
	if t == nil {
		return nil
	}
	return t.doc
}

// element walks from the theme root along local tag names.
func (t *Theme) element(path ...string) *etree.Element {
	if t == nil || t.doc == nil {
		return nil
	}
	cur := t.doc.Root()
	if cur == nil || cur.Tag != "theme" {
		return nil
	}
	for _, tag := range path {
		cur = childByTag(cur, tag)
		if cur == nil {
			return nil
		}
	}
	return cur
}

func childByTag(el *etree.Element, tag string) *etree.Element {
	for _, c := range el.ChildElements() {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// FontTypeface returns latin typeface of the major or minor theme font. Any
// slot starting with "minor" (minorHAnsi, minorBidi...) selects the minor font.
func (t *Theme) FontTypeface(slot string) (string, bool) {
	font := "majorFont"
	if strings.HasPrefix(slot, "minor") {
		font = "minorFont"
	}
	latin := t.element("themeElements", "fontScheme", font, "latin")
	if latin == nil {
		return "", false
	}
	face := latin.SelectAttrValue("typeface", "")
	return face, face != ""
}

var themeColorAliases = map[string]string{
	"text1":             "dk1",
	"tx1":               "dk1",
	"dark1":             "dk1",
	"background1":       "lt1",
	"bg1":               "lt1",
	"light1":            "lt1",
	"text2":             "dk2",
	"tx2":               "dk2",
	"dark2":             "dk2",
	"background2":       "lt2",
	"bg2":               "lt2",
	"light2":            "lt2",
	"hyperlink":         "hlink",
	"followedHyperlink": "folHlink",
}

// Color resolves a theme color name (accent1, text1, bg2...) to RRGGBB.
func (t *Theme) Color(name string) (string, bool) {
	if alias, ok := themeColorAliases[name]; ok {
		name = alias
	}
	el := t.element("themeElements", "clrScheme", name)
	if el == nil {
		return "", false
	}
	for _, c := range el.ChildElements() {
		var v string
		switch c.Tag {
		case "srgbClr":
			v = c.SelectAttrValue("val", "")
		case "sysClr":
			v = c.SelectAttrValue("lastClr", "")
		}
		if len(v) == 6 {
			return strings.ToUpper(v), true
		}
	}
	return "", false
}

// EffectiveColor returns RRGGBB of a run color object ({val, themeColor,
// themeTint, themeShade}). Theme colors win over val when the theme resolves
// them. "auto" and unknown colors give "".
func (r *Resolver) EffectiveColor(color property.Object) string {
	if color == nil {
		return ""
	}
	if name, ok := color.String("themeColor"); ok && name != "" {
		if hex, ok := r.params.Theme.Color(name); ok {
			if tint, ok := hexFraction(color, "themeTint"); ok {
				hex = ApplyTint(hex, tint)
			}
			if shade, ok := hexFraction(color, "themeShade"); ok {
				hex = ApplyShade(hex, shade)
			}
			return hex
		}
	}
	val, _ := color.String("val")
	if len(val) != 6 || strings.EqualFold(val, "auto") {
		return ""
	}
	if _, err := strconv.ParseUint(val, 16, 32); err != nil {
		return ""
	}
	return strings.ToUpper(val)
}

// hexFraction reads a 00..FF OOXML tint/shade value as a 0..1 fraction.
func hexFraction(o property.Object, key string) (float64, bool) {
	s, ok := o.String(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, false
	}
	return float64(v) / 255, true
}

// ApplyTint lightens RRGGBB: luminance becomes L*tint + (1-tint).
func ApplyTint(hex string, tint float64) string {
	return adjustLuminance(hex, func(l float64) float64 { return l*tint + (1 - tint) })
}

// ApplyShade darkens RRGGBB: luminance becomes L*shade.
func ApplyShade(hex string, shade float64) string {
	return adjustLuminance(hex, func(l float64) float64 { return l * shade })
}

func adjustLuminance(hex string, f func(float64) float64) string {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || len(hex) != 6 {
		return hex
	}
	r := float64((v>>16)&0xFF) / 255
	g := float64((v>>8)&0xFF) / 255
	b := float64(v&0xFF) / 255

	h, s, l := rgbToHSL(r, g, b)
	l = math.Max(0, math.Min(1, f(l)))
	r, g, b = hslToRGB(h, s, l)
	return fmt.Sprintf("%02X%02X%02X", toByte(r), toByte(g), toByte(b))
}

func toByte(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

func rgbToHSL(r, g, b float64) (h, s, l float64) {
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l = (maxC + minC) / 2
	if maxC == minC {
		return 0, 0, l
	}
	d := maxC - minC
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h / 6, s, l
}

func hslToRGB(h, s, l float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return hueToRGB(p, q, h+1.0/3), hueToRGB(p, q, h), hueToRGB(p, q, h-1.0/3)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}
