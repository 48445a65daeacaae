// Package htmldom builds a layoutbridge element tree from an HTML snapshot of
// rendered pages.
//
// Geometry is taken from inline styles: left and top place an element
// relative to its parent, width and height size it. Elements without explicit
// placement flow: blocks stack vertically, inline elements line up
// horizontally. Text elements without explicit width are measured.
package htmldom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"docstyle/css"
	"docstyle/layoutbridge"
)

const (
	// DefaultFontSize is the root font size in pixels.
	DefaultFontSize = 16.0
	// DefaultLineHeight is the line height factor of text elements.
	DefaultLineHeight = 1.2
	// DefaultViewportWidth is the width of the root element in pixels.
	DefaultViewportWidth = 1024.0
)

type options struct {
	log           *zap.Logger
	measurer      layoutbridge.Measurer
	fontSize      float64
	lineHeight    float64
	viewportWidth float64
}

// Option configures Parse.
type Option func(*options)

func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithMeasurer sets text measurement for elements without explicit width.
// The default is a FontMeasurer.
func WithMeasurer(m layoutbridge.Measurer) Option {
	return func(o *options) { o.measurer = m }
}

func WithFontSize(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.fontSize = px
		}
	}
}

func WithLineHeight(factor float64) Option {
	return func(o *options) {
		if factor > 0 {
			o.lineHeight = factor
		}
	}
}

func WithViewportWidth(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.viewportWidth = px
		}
	}
}

// Document is a laid out snapshot.
type Document struct {
	doc    *goquery.Document
	root   *Element
	byNode map[*html.Node]*Element
}

// Parse reads an HTML snapshot and lays it out. The root element is the first
// .superdoc-layout or .presentation-editor element, or body.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	o := options{
		fontSize:      DefaultFontSize,
		lineHeight:    DefaultLineHeight,
		viewportWidth: DefaultViewportWidth,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	log := o.log.Named("htmldom")

	if o.measurer == nil {
		fm, err := NewFontMeasurer(o.fontSize)
		if err != nil {
			return nil, err
		}
		o.measurer = fm
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("unable to parse snapshot: %w", err)
	}

	rootSel := doc.Find(".superdoc-layout, .presentation-editor").First()
	if rootSel.Length() == 0 {
		rootSel = doc.Find("body").First()
	}
	if rootSel.Length() == 0 {
		return nil, fmt.Errorf("snapshot has no body")
	}

	l := &layouter{
		opts:   o,
		log:    log,
		css:    css.NewParser(log),
		byNode: make(map[*html.Node]*Element),
	}
	root := l.build(rootSel, l.style(rootSel), nil, 0, 0, o.viewportWidth, o.fontSize)

	log.Debug("Snapshot laid out", zap.Int("elements", len(l.byNode)))
	return &Document{doc: doc, root: root, byNode: l.byNode}, nil
}

// Container returns the root element for layoutbridge.
func (d *Document) Container() layoutbridge.Element {
	if d == nil || d.root == nil {
		return nil
	}
	return d.root
}

// Root returns the root element.
func (d *Document) Root() *Element {
	if d == nil {
		return nil
	}
	return d.root
}

// Find returns laid out elements matching a CSS selector in document order.
// Elements outside of the root or not rendered are not returned.
func (d *Document) Find(selector string) []*Element {
	if d == nil {
		return nil
	}
	var out []*Element
	d.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if el, ok := d.byNode[s.Get(0)]; ok {
			out = append(out, el)
		}
	})
	return out
}

type layouter struct {
	opts   options
	log    *zap.Logger
	css    *css.Parser
	byNode map[*html.Node]*Element
}

func (l *layouter) style(sel *goquery.Selection) css.Declarations {
	return l.css.ParseInline(sel.AttrOr("style", ""))
}

// build lays out sel at (x, y). It returns nil for elements which are not
// rendered.
func (l *layouter) build(sel *goquery.Selection, decls css.Declarations, parent *Element, x, y, availWidth, parentFontSize float64) *Element {
	if decls.Keyword("display") == "none" {
		return nil
	}
	n := sel.Get(0)

	fontSize := parentFontSize
	if v, ok := decls.Length("font-size", parentFontSize); ok && v > 0 {
		fontSize = v
	}
	el := &Element{
		node:     n,
		parent:   parent,
		classes:  strings.Fields(sel.AttrOr("class", "")),
		attrs:    make(map[string]string, len(n.Attr)),
		text:     sel.Text(),
		clip:     clips(decls),
		fontSize: fontSize,
	}
	for _, a := range n.Attr {
		el.attrs[a.Key] = a.Val
	}
	l.byNode[n] = el

	inline := isInline(n.Data, decls)
	width, hasWidth := decls.Length("width", fontSize)
	height, hasHeight := decls.Length("height", fontSize)
	if !hasWidth && !inline {
		width, hasWidth = availWidth, true
	}
	contentWidth := availWidth
	if hasWidth {
		contentWidth = width
	}

	cursorX, cursorY, rowHeight, right := x, y, 0.0, x
	sel.Children().Each(func(_ int, cs *goquery.Selection) {
		cd := l.style(cs)
		left, hasLeft := cd.Length("left", fontSize)
		top, hasTop := cd.Length("top", fontSize)
		if hasLeft || hasTop {
			if c := l.build(cs, cd, el, x+left, y+top, contentWidth, fontSize); c != nil {
				el.children = append(el.children, c)
			}
			return
		}
		if isInline(cs.Get(0).Data, cd) {
			c := l.build(cs, cd, el, cursorX, cursorY, contentWidth-(cursorX-x), fontSize)
			if c == nil {
				return
			}
			el.children = append(el.children, c)
			cursorX += c.rect.Width
			rowHeight = max(rowHeight, c.rect.Height)
			right = max(right, cursorX)
			return
		}
		if cursorX != x || rowHeight > 0 {
			cursorY += rowHeight
			cursorX, rowHeight = x, 0
		}
		c := l.build(cs, cd, el, x, cursorY, contentWidth, fontSize)
		if c == nil {
			return
		}
		el.children = append(el.children, c)
		cursorY += c.rect.Height
		right = max(right, c.rect.Right())
	})

	if sel.Children().Length() == 0 {
		if !hasWidth {
			width = l.opts.measurer.Advance(el, el.text)
		}
		if !hasHeight && strings.TrimSpace(el.text) != "" {
			height = fontSize * l.opts.lineHeight
		}
	} else {
		if !hasWidth {
			width = right - x
		}
		if !hasHeight {
			height = cursorY + rowHeight - y
		}
	}
	el.rect = layoutbridge.Rect{X: x, Y: y, Width: width, Height: height}
	return el
}

func clips(decls css.Declarations) bool {
	for _, name := range []string{"overflow", "overflow-x", "overflow-y"} {
		switch decls.Keyword(name) {
		case "hidden", "clip":
			return true
		}
	}
	return false
}

var inlineTags = map[string]bool{
	"a": true, "abbr": true, "b": true, "bdi": true, "bdo": true, "br": true, "code": true,
	"em": true, "font": true, "i": true, "img": true, "label": true, "mark": true, "q": true,
	"s": true, "small": true, "span": true, "strong": true, "sub": true, "sup": true, "u": true,
}

func isInline(tag string, decls css.Declarations) bool {
	switch decls.Keyword("display") {
	case "inline", "inline-block", "inline-flex", "inline-grid":
		return true
	case "":
		return inlineTags[tag]
	}
	return false
}
