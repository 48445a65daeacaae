package ooxml

import (
	"slices"
	"strings"

	"go.uber.org/zap"

	"docstyle/property"
)

// DefaultNormalStyleID is used for the default paragraph style when the style
// table does not flag one.
const DefaultNormalStyleID = "Normal"

// Params is the immutable input of a resolution pass. Resolvers never modify
// anything reachable from it.
type Params struct {
	Styles    *StylesDocument
	Numbering *NumberingDocument
	Theme     *Theme
	// NormalStyleID overrides the id of the default paragraph style lookup
	// when no style is flagged as default.
	NormalStyleID string
}

// Resolver computes effective properties for paragraphs and runs of a single
// document. It is safe for concurrent use.
type Resolver struct {
	params Params
	log    *zap.Logger
	tracer *Tracer

	defaultParagraphStyle string
}

// Layer is a single named level of a resolved cascade, lowest priority first.
type Layer struct {
	Name  string
	Props property.Object
}

// NewResolver creates a resolver over params. log and tracer may be nil.
func NewResolver(params Params, log *zap.Logger, tracer *Tracer) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Resolver{
		params: params,
		log:    log.Named("ooxml"),
		tracer: tracer,
	}
	r.defaultParagraphStyle = r.findDefaultParagraphStyle()
	return r
}

// Params returns the resolver input.
func (r *Resolver) Params() Params {
	return r.params
}

// DefaultParagraphStyle returns the id of the style applied to paragraphs
// without an explicit style.
func (r *Resolver) DefaultParagraphStyle() string {
	return r.defaultParagraphStyle
}

func (r *Resolver) findDefaultParagraphStyle() string {
	fallback := r.params.NormalStyleID
	if fallback == "" {
		fallback = DefaultNormalStyleID
	}
	if r.params.Styles == nil {
		return fallback
	}
	var flagged []string
	for id, s := range r.params.Styles.Styles {
		if s != nil && s.Default && s.Type == StyleTypeParagraph {
			flagged = append(flagged, id)
		}
	}
	if len(flagged) == 0 {
		return fallback
	}
	// several flagged styles is malformed, pick deterministically
	slices.Sort(flagged)
	if len(flagged) > 1 {
		r.log.Debug("Multiple default paragraph styles", zap.Strings("styles", flagged))
	}
	return flagged[0]
}

func (r *Resolver) styles() *StylesDocument {
	return r.params.Styles
}

func (r *Resolver) style(id string) *StyleDefinition {
	return r.params.Styles.Style(id)
}

func (r *Resolver) combine(pt PropertyType, chain []property.Object) property.Object {
	if pt == RunPropertiesType {
		return CombineRunProperties(chain)
	}
	if pt == ParagraphPropertiesType {
		return property.Combine(chain, property.IndentHandlers()...)
	}
	return property.Combine(chain)
}

func layerProps(layers []Layer) []property.Object {
	chain := make([]property.Object, 0, len(layers))
	for _, l := range layers {
		chain = append(chain, l.Props)
	}
	return chain
}

func isTOCStyle(id string) bool {
	return strings.HasPrefix(id, "TOC")
}
