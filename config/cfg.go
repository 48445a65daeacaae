package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"
	"github.com/rupor-github/gencfg"
	yaml "gopkg.in/yaml.v3"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	ResolverConfig struct {
		// NormalStyleID names the default paragraph style when no style is
		// flagged as default.
		NormalStyleID string `yaml:"normal_style_id" validate:"required"`
		// FontFallback is the generic CSS family appended to families not
		// known to be serif or monospace.
		FontFallback      string `yaml:"font_fallback" validate:"oneof=serif sans-serif monospace cursive fantasy system-ui"`
		Trace             bool   `yaml:"trace"`
		TraceNameTemplate string `yaml:"trace_name_template" validate:"required_if=Trace true"`
	}

	LayoutConfig struct {
		DefaultFontSize float64     `yaml:"default_font_size" validate:"gt=0"`
		LineHeight      float64     `yaml:"line_height" validate:"gt=0"`
		ViewportWidth   float64     `yaml:"viewport_width" validate:"gt=0"`
		Measure         MeasureMode `yaml:"measure" validate:"gte=0"`
	}

	OutputConfig struct {
		Format OutputFormat `yaml:"format" validate:"gte=0"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Resolver  ResolverConfig `yaml:"resolver"`
		Layout    LayoutConfig   `yaml:"layout"`
		Output    OutputConfig   `yaml:"output"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above
	TraceNameTemplateFieldName TemplateFieldName = "trace_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(TraceNameTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// only fields we know about are accepted
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if !process {
		return cfg, nil
	}
	if err := gencfg.Sanitize(cfg); err != nil {
		return nil, err
	}
	if err := gencfg.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfiguration expands the embedded template for defaults, puts values
// from the file at path (if any) on top of it and validates the result.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if cfg, err = unmarshalConfig(data, cfg, true); err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare returns the expanded default configuration.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}

// TraceName expands the trace name template for the source file. Template
// sees .Source (file name without directory and extension) and .Slug (its slug).
func (conf *ResolverConfig) TraceName(source string) (string, error) {
	tmpl, err := template.New(string(TraceNameTemplateFieldName)).Funcs(sprig.FuncMap()).Parse(conf.TraceNameTemplate)
	if err != nil {
		return "", fmt.Errorf("unable to parse %s: %w", TraceNameTemplateFieldName, err)
	}
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Source, Slug string }{base, slug.Make(base)}); err != nil {
		return "", fmt.Errorf("unable to expand %s: %w", TraceNameTemplateFieldName, err)
	}
	return CleanFileName(strings.TrimSpace(buf.String())), nil
}
