package ooxml

import (
	"testing"

	"docstyle/property"
)

func TestResolveFontFamily(t *testing.T) {
	theme := testTheme(t)

	tests := []struct {
		name   string
		attrs  property.Object
		mapper func(string) string
		want   string
		ok     bool
	}{
		{"nil attributes", nil, nil, "", false},
		{"explicit ascii", property.Object{"ascii": "Arial", "asciiTheme": "minorHAnsi"}, nil, "Arial", true},
		{"minor theme", property.Object{"asciiTheme": "minorHAnsi"}, nil, "Calibri", true},
		{"major theme", property.Object{"asciiTheme": "majorHAnsi"}, nil, "Calibri Light", true},
		{"default hint", property.Object{"hint": "default"}, nil, "Calibri Light", true},
		{"default hint with hAnsi name", property.Object{"hint": "default", "hAnsi": "Cambria"}, nil, "Cambria", true},
		{"default hint with cs name", property.Object{"hint": "default", "cs": "Arial"}, nil, "Arial", true},
		{"default hint with theme reference", property.Object{"hint": "default", "hAnsiTheme": "minorHAnsi", "hAnsi": "Cambria"}, nil, "Calibri Light", true},
		{"other slot reference", property.Object{"eastAsiaTheme": "minorEastAsia"}, nil, "Calibri Light", true},
		{"falls back to other names", property.Object{"hAnsi": "Cambria"}, nil, "Cambria", true},
		{"nothing", property.Object{"hint": "eastAsia"}, nil, "", false},
		{"mapper", property.Object{"asciiTheme": "majorHAnsi"}, CSSFontFamily, `"Calibri Light", sans-serif`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveFontFamily(tt.attrs, theme, tt.mapper)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("expected %q, %v; got %q, %v", tt.want, tt.ok, got, ok)
			}
		})
	}

	if got, ok := ResolveFontFamily(property.Object{"asciiTheme": "minorHAnsi"}, nil, nil); ok {
		t.Fatalf("expected no family without theme, got %q", got)
	}
}

func TestThemeColor(t *testing.T) {
	theme := testTheme(t)
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"accent1", "4472C4", true},
		{"text1", "000000", true},
		{"background1", "FFFFFF", true},
		{"tx2", "44546A", true},
		{"accent6", "", false},
	}
	for _, tt := range tests {
		got, ok := theme.Color(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Color(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEffectiveColor(t *testing.T) {
	r := NewResolver(Params{Theme: testTheme(t)}, testLogger(t), nil)
	tests := []struct {
		name  string
		color property.Object
		want  string
	}{
		{"nil", nil, ""},
		{"auto", property.Object{"val": "auto"}, ""},
		{"explicit", property.Object{"val": "ff0000"}, "FF0000"},
		{"theme wins", property.Object{"val": "FF0000", "themeColor": "text1"}, "000000"},
		{"theme shade", property.Object{"themeColor": "background1", "themeShade": "80"}, "808080"},
		{"unknown theme color falls back", property.Object{"val": "00FF00", "themeColor": "accent6"}, "00FF00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.EffectiveColor(tt.color); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTintShade(t *testing.T) {
	if got := ApplyTint("000000", 0.5); got != "808080" {
		t.Fatalf("tint: got %s", got)
	}
	if got := ApplyShade("FFFFFF", 0.5); got != "808080" {
		t.Fatalf("shade: got %s", got)
	}
	if got := ApplyShade("FF0000", 1); got != "FF0000" {
		t.Fatalf("identity shade: got %s", got)
	}
	if got := ApplyTint("zz", 0.5); got != "zz" {
		t.Fatalf("invalid color must be returned unchanged, got %s", got)
	}
}

func TestCSSFontFamily(t *testing.T) {
	tests := map[string]string{
		"Times New Roman": `"Times New Roman", serif`,
		"Consolas":        "Consolas, monospace",
		"Arial":           "Arial, sans-serif",
		"":                "sans-serif",
	}
	for in, want := range tests {
		if got := CSSFontFamily(in); got != want {
			t.Errorf("CSSFontFamily(%q) = %q, want %q", in, got, want)
		}
	}
	if got := CSSFontFamilyWithFallback("Unknown", "serif"); got != "Unknown, serif" {
		t.Errorf("unexpected fallback %q", got)
	}
}
