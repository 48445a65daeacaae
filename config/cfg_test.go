package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Resolver.NormalStyleID != "Normal" {
		t.Errorf("NormalStyleID = %q, want Normal", cfg.Resolver.NormalStyleID)
	}
	if cfg.Resolver.FontFallback != "sans-serif" {
		t.Errorf("FontFallback = %q, want sans-serif", cfg.Resolver.FontFallback)
	}
	if cfg.Resolver.Trace {
		t.Error("Trace should be off by default")
	}
	if cfg.Resolver.TraceNameTemplate != "{{ .Slug }}-cascade-trace.txt" {
		t.Errorf("TraceNameTemplate was expanded: %q", cfg.Resolver.TraceNameTemplate)
	}
	if cfg.Layout.DefaultFontSize != 16 || cfg.Layout.LineHeight != 1.2 || cfg.Layout.ViewportWidth != 1024 {
		t.Errorf("Layout = %+v", cfg.Layout)
	}
	if cfg.Layout.Measure != MeasureModeFont {
		t.Errorf("Measure = %s, want font", cfg.Layout.Measure)
	}
	if cfg.Output.Format != OutputFormatTable {
		t.Errorf("Format = %s, want table", cfg.Output.Format)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" || cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, `version: 1
resolver:
  normal_style_id: Standard
  font_fallback: serif
  trace: true
layout:
  default_font_size: 12
  measure: proportional
output:
  format: json
logging:
  console:
    level: debug
  file:
    level: debug
    destination: `+filepath.ToSlash(filepath.Join(tmpDir, "logs", "test.log"))+`
    mode: append
reporting:
  destination: `+filepath.ToSlash(filepath.Join(tmpDir, "report.zip"))+`
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Resolver.NormalStyleID != "Standard" || cfg.Resolver.FontFallback != "serif" || !cfg.Resolver.Trace {
		t.Errorf("Resolver = %+v", cfg.Resolver)
	}
	if cfg.Layout.DefaultFontSize != 12 {
		t.Errorf("DefaultFontSize = %v, want 12", cfg.Layout.DefaultFontSize)
	}
	if cfg.Layout.LineHeight != 1.2 {
		t.Errorf("LineHeight = %v, default expected", cfg.Layout.LineHeight)
	}
	if cfg.Layout.Measure != MeasureModeProportional {
		t.Errorf("Measure = %s, want proportional", cfg.Layout.Measure)
	}
	if cfg.Output.Format != OutputFormatJson {
		t.Errorf("Format = %s, want json", cfg.Output.Format)
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("Mode = %q, want append", cfg.Logging.FileLogger.Mode)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "logs")); err != nil {
		t.Errorf("log directory should be created by sanitizer: %v", err)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid version", "version: 2\n"},
		{"unknown field", "version: 1\nresolver:\n  cascade: true\n"},
		{"unknown measure mode", "version: 1\nlayout:\n  measure: pixels\n"},
		{"unknown output format", "version: 1\noutput:\n  format: xml\n"},
		{"bad font fallback", "version: 1\nresolver:\n  font_fallback: comic\n"},
		{"non positive font size", "version: 1\nlayout:\n  default_font_size: 0\n"},
		{"bad log level", "version: 1\nlogging:\n  console:\n    level: verbose\n"},
		{"not yaml", "version: [1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadConfiguration_MissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not exist error, got %v", err)
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	called := false
	option := func(*gencfg.ProcessingOptions) {
		called = true
	}
	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
	if !called {
		t.Error("option was not applied")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if _, err := unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Layout.Measure = MeasureModeProportional
	cfg.Output.Format = OutputFormatTree

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	for _, want := range []string{"measure: proportional", "format: tree", "normal_style_id: Normal"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Dump() output misses %q:\n%s", want, data)
		}
	}

	back, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("dumped configuration does not load: %v", err)
	}
	if back.Layout.Measure != MeasureModeProportional || back.Output.Format != OutputFormatTree {
		t.Errorf("round trip lost enums: %+v %+v", back.Layout, back.Output)
	}
}

func TestResolverConfig_TraceName(t *testing.T) {
	tests := []struct {
		name     string
		template string
		source   string
		want     string
		wantErr  bool
	}{
		{"slug", "{{ .Slug }}-cascade-trace.txt", filepath.Join("docs", "My Report.docx"), "my-report-cascade-trace.txt", false},
		{"source", "{{ .Source }}.txt", "plain.docx", "plain.txt", false},
		{"sprig functions", `{{ .Source | upper | trunc 3 }}.txt`, "report.docx", "REP.txt", false},
		{"separators removed", "{{ .Source }}/trace.txt", "a.docx", "atrace.txt", false},
		{"bad template", "{{ .Slug", "a.docx", "", true},
		{"unknown field", "{{ .Missing }}", "a.docx", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := ResolverConfig{TraceNameTemplate: tt.template}
			got, err := conf.TraceName(tt.source)
			if (err != nil) != tt.wantErr {
				t.Fatalf("TraceName() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("TraceName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleanFileName(t *testing.T) {
	if got := CleanFileName("a/b"); got != "ab" {
		t.Errorf("CleanFileName() = %q, want ab", got)
	}
	if got := CleanFileName(""); got != badFileName {
		t.Errorf("CleanFileName() = %q, want %q", got, badFileName)
	}
}

func TestEnums(t *testing.T) {
	if _, err := ParseMeasureMode("font"); err != nil {
		t.Error(err)
	}
	if _, err := ParseOutputFormat("yaml"); !errors.Is(err, ErrInvalidOutputFormat) {
		t.Errorf("expected ErrInvalidOutputFormat, got %v", err)
	}
	if got := strings.Join(OutputFormatNames(), ","); got != "table,json,tree" {
		t.Errorf("OutputFormatNames() = %s", got)
	}
}
