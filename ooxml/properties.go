package ooxml

import "docstyle/property"

// Indent is w:ind in twips.
type Indent struct {
	Left      *int
	Right     *int
	FirstLine *int
	Hanging   *int
}

// Spacing is w:spacing. Before and After are twips, Line depends on LineRule.
type Spacing struct {
	Before   *int
	After    *int
	Line     *int
	LineRule string
}

// TabStop is a single w:tab.
type TabStop struct {
	Kind   string
	Pos    int
	Leader string
}

// NumberingRef is w:numPr.
type NumberingRef struct {
	NumID int
	Ilvl  int
}

// ParagraphProperties is a typed view of paragraph properties. Keys not
// covered by fields (or carrying unexpected values) are kept in Extra.
type ParagraphProperties struct {
	StyleID       string
	Justification string
	KeepNext      *bool
	KeepLines     *bool
	Indent        *Indent
	Spacing       *Spacing
	TabStops      []TabStop
	Numbering     *NumberingRef
	Extra         property.Object
}

// FontFamily is w:rFonts.
type FontFamily struct {
	ASCII         string
	HAnsi         string
	EastAsia      string
	CS            string
	ASCIITheme    string
	HAnsiTheme    string
	EastAsiaTheme string
	CSTheme       string
	Hint          string
}

// Color is w:color.
type Color struct {
	Val        string
	ThemeColor string
	ThemeTint  string
	ThemeShade string
}

// Underline is w:u.
type Underline struct {
	Val   string
	Color string
}

// RunProperties is a typed view of run properties. FontSize is in half
// points as stored by OOXML.
type RunProperties struct {
	StyleID    string
	Bold       *bool
	Italic     *bool
	Strike     *bool
	FontSize   *int
	Color      *Color
	FontFamily *FontFamily
	Underline  *Underline
	Extra      property.Object
}

// fields moves known keys out of a copy of an object. A key is taken only if
// its value has the expected shape, everything else stays for Extra.
type fields struct {
	rest property.Object
}

func newFields(o property.Object) *fields {
	rest := property.Clone(o)
	if rest == nil {
		rest = property.Object{}
	}
	return &fields{rest: rest}
}

func (f *fields) str(key string) string {
	v, ok := f.rest[key].(string)
	if ok && v != "" {
		delete(f.rest, key)
	}
	return v
}

func (f *fields) boolPtr(key string) *bool {
	b, ok := f.rest[key].(bool)
	if !ok {
		return nil
	}
	delete(f.rest, key)
	return &b
}

func (f *fields) intPtr(key string) *int {
	v, ok := f.rest[key]
	if !ok {
		return nil
	}
	if _, isString := v.(string); isString {
		return nil
	}
	n, ok := property.Int(v)
	if !ok {
		return nil
	}
	delete(f.rest, key)
	return &n
}

// sub returns fields of the nested object stored under key.
func (f *fields) sub(key string) *fields {
	o, ok := property.AsObject(f.rest[key])
	if !ok {
		return nil
	}
	return newFields(o)
}

// consumed removes key when every field of its object s was taken.
func (f *fields) consumed(key string, s *fields) bool {
	if len(s.rest) != 0 {
		return false
	}
	delete(f.rest, key)
	return true
}

func (f *fields) extra() property.Object {
	if len(f.rest) == 0 {
		return nil
	}
	return f.rest
}

// ParagraphFromObject builds the typed view of paragraph properties.
func ParagraphFromObject(o property.Object) ParagraphProperties {
	f := newFields(o)
	p := ParagraphProperties{
		StyleID:       f.str(keyStyleID),
		Justification: f.str("justification"),
		KeepNext:      f.boolPtr("keepNext"),
		KeepLines:     f.boolPtr("keepLines"),
	}
	if s := f.sub(keyIndent); s != nil {
		ind := &Indent{
			Left:      s.intPtr("left"),
			Right:     s.intPtr("right"),
			FirstLine: s.intPtr(keyFirstLine),
			Hanging:   s.intPtr(keyHanging),
		}
		if f.consumed(keyIndent, s) {
			p.Indent = ind
		}
	}
	if s := f.sub("spacing"); s != nil {
		sp := &Spacing{
			Before:   s.intPtr("before"),
			After:    s.intPtr("after"),
			Line:     s.intPtr("line"),
			LineRule: s.str("lineRule"),
		}
		if f.consumed("spacing", s) {
			p.Spacing = sp
		}
	}
	if s := f.sub(keyNumberingProperties); s != nil {
		numID, ilvl := s.intPtr(keyNumID), s.intPtr(keyIlvl)
		if numID != nil && ilvl != nil && f.consumed(keyNumberingProperties, s) {
			p.Numbering = &NumberingRef{NumID: *numID, Ilvl: *ilvl}
		}
	}
	if stops, ok := typedTabStops(f.rest[keyTabStops]); ok {
		p.TabStops = stops
		delete(f.rest, keyTabStops)
	}
	p.Extra = f.extra()
	return p
}

func typedTabStops(v any) ([]TabStop, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]TabStop, 0, len(items))
	for _, item := range items {
		o, ok := property.AsObject(item)
		if !ok {
			return nil, false
		}
		s := newFields(o)
		kind, pos, leader := s.str("val"), s.intPtr("pos"), s.str("leader")
		if pos == nil || len(s.rest) != 0 {
			return nil, false
		}
		out = append(out, TabStop{Kind: kind, Pos: *pos, Leader: leader})
	}
	return out, true
}

// Object converts the view back to a property object.
func (p ParagraphProperties) Object() property.Object {
	o := property.Clone(p.Extra)
	if o == nil {
		o = property.Object{}
	}
	setStr(o, keyStyleID, p.StyleID)
	setStr(o, "justification", p.Justification)
	setBool(o, "keepNext", p.KeepNext)
	setBool(o, "keepLines", p.KeepLines)
	if p.Indent != nil {
		ind := property.Object{}
		setInt(ind, "left", p.Indent.Left)
		setInt(ind, "right", p.Indent.Right)
		setInt(ind, keyFirstLine, p.Indent.FirstLine)
		setInt(ind, keyHanging, p.Indent.Hanging)
		o[keyIndent] = ind
	}
	if p.Spacing != nil {
		sp := property.Object{}
		setInt(sp, "before", p.Spacing.Before)
		setInt(sp, "after", p.Spacing.After)
		setInt(sp, "line", p.Spacing.Line)
		setStr(sp, "lineRule", p.Spacing.LineRule)
		o["spacing"] = sp
	}
	if p.Numbering != nil {
		o[keyNumberingProperties] = property.Object{keyNumID: p.Numbering.NumID, keyIlvl: p.Numbering.Ilvl}
	}
	if p.TabStops != nil {
		stops := make([]any, 0, len(p.TabStops))
		for _, t := range p.TabStops {
			s := property.Object{"pos": t.Pos}
			setStr(s, "val", t.Kind)
			setStr(s, "leader", t.Leader)
			stops = append(stops, s)
		}
		o[keyTabStops] = stops
	}
	return o
}

// RunFromObject builds the typed view of run properties.
func RunFromObject(o property.Object) RunProperties {
	f := newFields(o)
	r := RunProperties{
		StyleID:  f.str(keyStyleID),
		Bold:     f.boolPtr("bold"),
		Italic:   f.boolPtr("italic"),
		Strike:   f.boolPtr("strike"),
		FontSize: f.intPtr("fontSize"),
	}
	if s := f.sub(keyColor); s != nil {
		c := &Color{
			Val:        s.str("val"),
			ThemeColor: s.str("themeColor"),
			ThemeTint:  s.str("themeTint"),
			ThemeShade: s.str("themeShade"),
		}
		if f.consumed(keyColor, s) {
			r.Color = c
		}
	}
	if s := f.sub(keyFontFamily); s != nil {
		ff := &FontFamily{
			ASCII:         s.str("ascii"),
			HAnsi:         s.str("hAnsi"),
			EastAsia:      s.str("eastAsia"),
			CS:            s.str("cs"),
			ASCIITheme:    s.str("asciiTheme"),
			HAnsiTheme:    s.str("hAnsiTheme"),
			EastAsiaTheme: s.str("eastAsiaTheme"),
			CSTheme:       s.str("cstheme"),
			Hint:          s.str("hint"),
		}
		if f.consumed(keyFontFamily, s) {
			r.FontFamily = ff
		}
	}
	// a partially understood object stays in Extra as a whole
	if s := f.sub(keyUnderline); s != nil {
		u := &Underline{Val: s.str("val"), Color: s.str("color")}
		if f.consumed(keyUnderline, s) {
			r.Underline = u
		}
	}
	r.Extra = f.extra()
	return r
}

// Object converts the view back to a property object.
func (r RunProperties) Object() property.Object {
	o := property.Clone(r.Extra)
	if o == nil {
		o = property.Object{}
	}
	setStr(o, keyStyleID, r.StyleID)
	setBool(o, "bold", r.Bold)
	setBool(o, "italic", r.Italic)
	setBool(o, "strike", r.Strike)
	setInt(o, "fontSize", r.FontSize)
	if r.Color != nil {
		c := property.Object{}
		setStr(c, "val", r.Color.Val)
		setStr(c, "themeColor", r.Color.ThemeColor)
		setStr(c, "themeTint", r.Color.ThemeTint)
		setStr(c, "themeShade", r.Color.ThemeShade)
		o[keyColor] = c
	}
	if ff := r.FontFamily; ff != nil {
		c := property.Object{}
		setStr(c, "ascii", ff.ASCII)
		setStr(c, "hAnsi", ff.HAnsi)
		setStr(c, "eastAsia", ff.EastAsia)
		setStr(c, "cs", ff.CS)
		setStr(c, "asciiTheme", ff.ASCIITheme)
		setStr(c, "hAnsiTheme", ff.HAnsiTheme)
		setStr(c, "eastAsiaTheme", ff.EastAsiaTheme)
		setStr(c, "cstheme", ff.CSTheme)
		setStr(c, "hint", ff.Hint)
		o[keyFontFamily] = c
	}
	if r.Underline != nil {
		u := property.Object{}
		setStr(u, "val", r.Underline.Val)
		setStr(u, "color", r.Underline.Color)
		o[keyUnderline] = u
	}
	return o
}

// ResolveParagraph is ResolveParagraphProperties over typed views.
func (r *Resolver) ResolveParagraph(inline ParagraphProperties, table *TableInfo) ParagraphProperties {
	return ParagraphFromObject(r.ResolveParagraphProperties(inline.Object(), table))
}

// ResolveRun is ResolveRunProperties over typed views.
func (r *Resolver) ResolveRun(inline RunProperties, paragraph ParagraphProperties, table *TableInfo, isListNumber, numberingDefinedInline bool) RunProperties {
	return RunFromObject(r.ResolveRunProperties(inline.Object(), paragraph.Object(), table, isListNumber, numberingDefinedInline))
}

func setStr(o property.Object, key, v string) {
	if v != "" {
		o[key] = v
	}
}

func setBool(o property.Object, key string, v *bool) {
	if v != nil {
		o[key] = *v
	}
}

func setInt(o property.Object, key string, v *int) {
	if v != nil {
		o[key] = *v
	}
}
