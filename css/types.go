// Package css reads inline CSS declarations (style attributes) of rendered
// layout snapshots.
package css

import (
	"strings"
	"unicode"
)

// Value represents a parsed CSS property value.
type Value struct {
	Raw     string  // Original CSS value string (e.g., "1.2em", "bold", "#ff0000")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "em", "px", "%", "pt", etc.
	Keyword string  // Keyword if applicable: "bold", "italic", "center", etc.
	// Important is set for "!important" declarations.
	Important bool
}

// IsNumeric returns true if the value has a numeric component.
// This includes explicit zero values like "0" or "0px".
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	if v.Value != 0 && v.Keyword == "" {
		return true
	}
	if v.Raw != "" && v.Keyword == "" {
		firstChar := rune(v.Raw[0])
		if unicode.IsDigit(firstChar) || firstChar == '.' || firstChar == '-' || firstChar == '+' {
			return true
		}
	}
	return false
}

// IsKeyword returns true if the value is a keyword (no numeric component).
func (v Value) IsKeyword() bool {
	return v.Keyword != "" && v.Unit == ""
}

// List splits a comma separated value (font-family and alike) into unquoted
// items.
func (v Value) List() []string {
	src := v.Keyword
	if src == "" {
		src = v.Raw
	}
	var out []string
	for item := range strings.SplitSeq(src, ",") {
		if item = unquote(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

const (
	pxPerInch = 96.0
	pxPerPt   = pxPerInch / 72
)

// Pixels converts an absolute or font relative length to CSS pixels. em and
// rem are resolved against fontSize (in pixels). Percentages and keywords
// are not lengths.
func (v Value) Pixels(fontSize float64) (float64, bool) {
	if !v.IsNumeric() {
		return 0, false
	}
	switch v.Unit {
	case "", "px":
		if v.Unit == "" && v.Value != 0 {
			// unitless lengths are only valid for zero
			return 0, false
		}
		return v.Value, true
	case "pt":
		return v.Value * pxPerPt, true
	case "pc":
		return v.Value * pxPerPt * 12, true
	case "in":
		return v.Value * pxPerInch, true
	case "cm":
		return v.Value * pxPerInch / 2.54, true
	case "mm":
		return v.Value * pxPerInch / 25.4, true
	case "em", "rem":
		return v.Value * fontSize, true
	}
	return 0, false
}

// Declarations are the properties of a single declaration block keyed by
// lower case property name. Later declarations of the same property win
// unless the earlier one is important.
type Declarations map[string]Value

// Get returns the value of a property.
func (d Declarations) Get(name string) (Value, bool) {
	v, ok := d[strings.ToLower(name)]
	return v, ok
}

// Keyword returns the keyword of a property or "".
func (d Declarations) Keyword(name string) string {
	v, _ := d.Get(name)
	return v.Keyword
}

// Length returns a property converted to pixels.
func (d Declarations) Length(name string, fontSize float64) (float64, bool) {
	v, ok := d.Get(name)
	if !ok {
		return 0, false
	}
	return v.Pixels(fontSize)
}

func (d Declarations) set(name string, v Value) {
	if prev, ok := d[name]; ok && prev.Important && !v.Important {
		return
	}
	d[name] = v
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
