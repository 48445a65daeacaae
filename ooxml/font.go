package ooxml

import (
	"strings"

	"docstyle/property"
)

// ResolveFontFamily returns the family named by a fontFamily object. An
// explicit ascii name wins. Otherwise the asciiTheme reference is looked up
// in theme, "major" being assumed when only other slots carry a theme
// reference or when hint is "default" and no font is named. mapper, when
// set, post-processes the family (see CSSFontFamily). nil attrs give false.
func ResolveFontFamily(attrs property.Object, theme *Theme, mapper func(string) string) (string, bool) {
	if attrs == nil {
		return "", false
	}
	ascii, _ := attrs.String("ascii")
	if ascii != "" {
		return mapFamily(ascii, mapper), true
	}

	slot, _ := attrs.String("asciiTheme")
	if slot == "" {
		hint, _ := attrs.String("hint")
		if hasThemeReference(attrs) || (hint == "default" && !hasFontName(attrs)) {
			slot = "major"
		}
	}
	if slot != "" {
		if face, ok := theme.FontTypeface(slot); ok {
			return mapFamily(face, mapper), true
		}
	}

	// theme did not help, try the other explicit names
	for _, key := range []string{"hAnsi", "eastAsia", "cs"} {
		if name, _ := attrs.String(key); name != "" {
			return mapFamily(name, mapper), true
		}
	}
	return "", false
}

func hasThemeReference(attrs property.Object) bool {
	for _, slot := range fontSlots {
		if attrs.Has(slot[1]) {
			return true
		}
	}
	return false
}

func hasFontName(attrs property.Object) bool {
	for _, slot := range fontSlots {
		if name, _ := attrs.String(slot[0]); name != "" {
			return true
		}
	}
	return false
}

func mapFamily(name string, mapper func(string) string) string {
	if mapper == nil {
		return name
	}
	return mapper(name)
}

// ResolveFontFamily resolves fontFamily of run properties against the
// document theme.
func (r *Resolver) ResolveFontFamily(runProps property.Object, mapper func(string) string) (string, bool) {
	return ResolveFontFamily(runProps.Obj(keyFontFamily), r.params.Theme, mapper)
}

var genericFamilies = map[string]string{
	"courier new":     "monospace",
	"courier":         "monospace",
	"consolas":        "monospace",
	"lucida console":  "monospace",
	"menlo":           "monospace",
	"times new roman": "serif",
	"times":           "serif",
	"cambria":         "serif",
	"georgia":         "serif",
	"garamond":        "serif",
	"book antiqua":    "serif",
	"palatino":        "serif",
	"constantia":      "serif",
}

// CSSFontFamily renders a family as a CSS font-family value with a generic
// fallback. Families not known to be serif or monospace get sans-serif.
func CSSFontFamily(name string) string {
	return CSSFontFamilyWithFallback(name, "sans-serif")
}

// CSSFontFamilyWithFallback is CSSFontFamily with a configurable fallback for
// unknown families.
func CSSFontFamilyWithFallback(name, fallback string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	generic, ok := genericFamilies[strings.ToLower(name)]
	if !ok {
		generic = fallback
	}
	if strings.ContainsAny(name, " ,") {
		name = `"` + strings.ReplaceAll(name, `"`, ``) + `"`
	}
	return name + ", " + generic
}
