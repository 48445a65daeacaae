package css_test

import (
	"math"
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"docstyle/css"
)

func newParser(t *testing.T) *css.Parser {
	return css.NewParser(zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1))))
}

func TestParser_ParseInline(t *testing.T) {
	p := newParser(t)
	decls := p.ParseInline("position: absolute; LEFT: 96px; top: 72pt; width: 50%; line-height: 1.25; " +
		"font-family: 'Times New Roman', serif; color: #FF0000; margin: 0 auto")

	tests := []struct {
		name string
		want css.Value
	}{
		{"position", css.Value{Raw: "absolute", Keyword: "absolute"}},
		{"left", css.Value{Raw: "96px", Value: 96, Unit: "px"}},
		{"top", css.Value{Raw: "72pt", Value: 72, Unit: "pt"}},
		{"width", css.Value{Raw: "50%", Value: 50, Unit: "%"}},
		{"line-height", css.Value{Raw: "1.25", Value: 1.25}},
		{"font-family", css.Value{Raw: "'Times New Roman', serif", Keyword: "'Times New Roman', serif"}},
		{"color", css.Value{Raw: "#FF0000", Keyword: "#FF0000"}},
		{"margin", css.Value{Raw: "0 auto", Keyword: "0 auto"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decls.Get(tt.name)
			if !ok {
				t.Fatalf("property %s not parsed", tt.name)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}

	if got := decls.Keyword("position"); got != "absolute" {
		t.Errorf("Keyword(position) = %q", got)
	}
	if family, _ := decls.Get("font-family"); !reflect.DeepEqual(family.List(), []string{"Times New Roman", "serif"}) {
		t.Errorf("List() = %v", family.List())
	}
}

func TestParser_Empty(t *testing.T) {
	p := newParser(t)
	for _, in := range []string{"", "   ", ";"} {
		if decls := p.ParseInline(in); len(decls) != 0 {
			t.Errorf("ParseInline(%q) = %v, want empty", in, decls)
		}
	}
}

func TestParser_Important(t *testing.T) {
	p := newParser(t)
	decls := p.ParseInline("top: 10px !important; top: 20px; left: 1px; left: 2px")

	top, _ := decls.Get("top")
	if top.Value != 10 || !top.Important {
		t.Errorf("important declaration must win, got %+v", top)
	}
	left, _ := decls.Get("left")
	if left.Value != 2 {
		t.Errorf("later declaration must win, got %+v", left)
	}
}

func TestValue_Pixels(t *testing.T) {
	tests := []struct {
		in     css.Value
		want   float64
		wantOK bool
	}{
		{css.Value{Raw: "12px", Value: 12, Unit: "px"}, 12, true},
		{css.Value{Raw: "12pt", Value: 12, Unit: "pt"}, 16, true},
		{css.Value{Raw: "1in", Value: 1, Unit: "in"}, 96, true},
		{css.Value{Raw: "2.54cm", Value: 2.54, Unit: "cm"}, 96, true},
		{css.Value{Raw: "2em", Value: 2, Unit: "em"}, 32, true},
		{css.Value{Raw: "0", Value: 0}, 0, true},
		{css.Value{Raw: "5", Value: 5}, 0, false},
		{css.Value{Raw: "50%", Value: 50, Unit: "%"}, 0, false},
		{css.Value{Raw: "auto", Keyword: "auto"}, 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.in.Pixels(16)
		if ok != tt.wantOK || math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s.Pixels(16) = %v, %v; want %v, %v", tt.in.Raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDeclarations_Length(t *testing.T) {
	decls := newParser(t).ParseInline("height: 1.5em; width: auto")
	if h, ok := decls.Length("height", 20); !ok || h != 30 {
		t.Errorf("Length(height) = %v, %v", h, ok)
	}
	if _, ok := decls.Length("width", 20); ok {
		t.Error("auto is not a length")
	}
	if _, ok := decls.Length("missing", 20); ok {
		t.Error("missing property is not a length")
	}
}
