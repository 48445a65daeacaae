package htmldom

import (
	"slices"

	"golang.org/x/net/html"

	"docstyle/layoutbridge"
)

// Element is a laid out HTML element. It implements layoutbridge.Element.
type Element struct {
	node     *html.Node
	parent   *Element
	children []*Element

	classes  []string
	attrs    map[string]string
	rect     layoutbridge.Rect
	text     string
	clip     bool
	fontSize float64
}

var _ layoutbridge.Element = (*Element)(nil)

func (e *Element) Parent() layoutbridge.Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *Element) Children() []layoutbridge.Element {
	out := make([]layoutbridge.Element, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

func (e *Element) HasClass(name string) bool { return slices.Contains(e.classes, name) }

func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *Element) Rect() layoutbridge.Rect { return e.rect }
func (e *Element) Text() string            { return e.text }
func (e *Element) ClipsContent() bool      { return e.clip }

// FontSize is the computed font size in pixels.
func (e *Element) FontSize() float64 { return e.fontSize }

// Tag returns the element name.
func (e *Element) Tag() string { return e.node.Data }

// Node returns the underlying HTML node.
func (e *Element) Node() *html.Node { return e.node }
