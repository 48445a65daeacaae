package ooxml

import (
	"strconv"
	"strings"
)

// ListLevel is the effective format of one list level of a numbering instance.
type ListLevel struct {
	NumID   int
	Ilvl    int
	Start   int
	NumFmt  string
	LvlText string
	LvlJc   string
	Suffix  string
	StyleID string
}

// ResolveListLevel merges the abstract level with the instance level override
// (style links are followed the same way ResolveNumbering does).
func (r *Resolver) ResolveListLevel(numID, ilvl int) (ListLevel, bool) {
	return r.resolveListLevel(numID, ilvl, 0)
}

func (r *Resolver) resolveListLevel(numID, ilvl, tries int) (ListLevel, bool) {
	num := r.numberingDefinition(numID)
	if num == nil {
		return ListLevel{}, false
	}
	abs := r.abstractNumbering(num.AbstractNumID)
	if abs == nil {
		return ListLevel{}, false
	}

	level := ListLevel{Start: 1, NumFmt: "decimal", Suffix: "tab", LvlJc: "left"}
	found := false
	if linked, ok := r.linkedNumID(abs); ok && tries < maxNumberingLinkHops {
		level, found = r.resolveListLevel(linked, ilvl, tries+1)
	}
	if !found {
		if lvl := abs.Levels[ilvl]; lvl != nil {
			level.apply(lvl)
			found = true
		}
	}

	if !found {
		return ListLevel{}, false
	}
	if ov := num.LevelOverrides[ilvl]; ov != nil {
		if ov.Level != nil {
			level.apply(ov.Level)
		}
		if ov.StartOverride != nil {
			level.Start = *ov.StartOverride
		}
	}
	level.NumID, level.Ilvl = numID, ilvl
	return level, found
}

func (l *ListLevel) apply(def *LevelDefinition) {
	if def.Start != nil {
		l.Start = *def.Start
	}
	if def.NumFmt != "" {
		l.NumFmt = def.NumFmt
	}
	if def.LvlText != "" {
		l.LvlText = def.LvlText
	}
	if def.LvlJc != "" {
		l.LvlJc = def.LvlJc
	}
	if def.Suffix != "" {
		l.Suffix = def.Suffix
	}
	if def.StyleID != "" {
		l.StyleID = def.StyleID
	}
}

// FormatListMarker expands lvlText of level ("%1.%2.") with counters, where
// counters[i] is the current value of level i. levels returns the format of
// level i and may be nil, in which case every placeholder uses level's format.
func FormatListMarker(level ListLevel, counters []int, levels func(int) ListLevel) string {
	switch level.NumFmt {
	case "none":
		return ""
	case "bullet":
		return level.LvlText
	}

	var sb strings.Builder
	text := level.LvlText
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '%' || i+1 >= len(text) || text[i+1] < '1' || text[i+1] > '9' {
			sb.WriteByte(c)
			continue
		}
		idx := int(text[i+1] - '1')
		i++
		value := 0
		if idx < len(counters) {
			value = counters[idx]
		}
		format := level.NumFmt
		if levels != nil && idx != level.Ilvl {
			format = levels(idx).NumFmt
		}
		sb.WriteString(FormatNumber(value, format))
	}
	return sb.String()
}

// FormatNumber renders value in OOXML number format numFmt. Unsupported
// formats are rendered as decimal.
func FormatNumber(value int, numFmt string) string {
	switch numFmt {
	case "none", "bullet":
		return ""
	case "decimalZero":
		if value >= 0 && value < 10 {
			return "0" + strconv.Itoa(value)
		}
	case "lowerLetter":
		return letters(value, 'a')
	case "upperLetter":
		return letters(value, 'A')
	case "lowerRoman":
		return strings.ToLower(roman(value))
	case "upperRoman":
		return roman(value)
	}
	return strconv.Itoa(value)
}

// letters renders a, b, ..., z, aa, bb, ... as Word does.
func letters(value int, base byte) string {
	if value < 1 {
		return strconv.Itoa(value)
	}
	n := (value-1)/26 + 1
	return strings.Repeat(string(rune(base+byte((value-1)%26))), n)
}

var romanDigits = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func roman(value int) string {
	if value < 1 || value > 3999 {
		return strconv.Itoa(value)
	}
	var sb strings.Builder
	for _, d := range romanDigits {
		for value >= d.value {
			sb.WriteString(d.symbol)
			value -= d.value
		}
	}
	return sb.String()
}
