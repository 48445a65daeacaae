// Package layoutbridge maps pointer coordinates over rendered document pages
// back to logical document positions.
//
// The rendered tree follows a fixed class and attribute convention: pages,
// fragments (paragraph or table cell rendering units) and lines are tagged
// with classes, leaf elements carry the logical range they render in
// data-pm-start and data-pm-end. The package works over the abstract Element
// interface so it can be driven by a browser bridge, an HTML snapshot (see
// htmldom) or synthetic trees.
package layoutbridge

import (
	"strconv"
	"strings"
)

// Class names of the rendered tree.
const (
	ClassPage                    = "superdoc-page"
	ClassFragment                = "superdoc-fragment"
	ClassTableFragment           = "superdoc-table-fragment"
	ClassLine                    = "superdoc-line"
	ClassStructuredContentInline = "superdoc-structured-content-inline"
)

// Attributes of the rendered tree.
const (
	AttrPmStart   = "data-pm-start"
	AttrPmEnd     = "data-pm-end"
	AttrPageIndex = "data-page-index"
	AttrBlockID   = "data-block-id"
)

// Rect is an axis aligned box in container coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Contains reports whether the point is inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return r.ContainsX(x) && r.ContainsY(y)
}

func (r Rect) ContainsX(x float64) bool { return x >= r.X && x <= r.Right() }
func (r Rect) ContainsY(y float64) bool { return y >= r.Y && y <= r.Bottom() }

// Element is a node of the rendered tree. Implementations must return an
// untyped nil from Parent for the root.
type Element interface {
	Parent() Element
	// Children are returned in paint order, later children are on top.
	Children() []Element
	HasClass(name string) bool
	Attr(name string) (string, bool)
	// Rect is the border box in container coordinates.
	Rect() Rect
	// Text is the rendered text of the element and its descendants.
	Text() string
	// ClipsContent reports overflow clipping: descendants are invisible
	// outside the element box.
	ClipsContent() bool
}

// Range returns the logical range of an element. Both attributes must be
// present and integer.
func Range(el Element) (start, end int, ok bool) {
	if el == nil {
		return 0, 0, false
	}
	start, ok = intAttr(el, AttrPmStart)
	if !ok {
		return 0, 0, false
	}
	end, ok = intAttr(el, AttrPmEnd)
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

func intAttr(el Element, name string) (int, bool) {
	v, ok := el.Attr(name)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return i, true
}

// closest returns el or its nearest ancestor with class.
func closest(el Element, class string) Element {
	for e := el; e != nil; e = e.Parent() {
		if e.HasClass(class) {
			return e
		}
	}
	return nil
}

// descendants returns all descendants of root with class in document order.
// Matching elements are not searched further.
func descendants(root Element, class string) []Element {
	var out []Element
	var walk func(Element)
	walk = func(el Element) {
		for _, c := range el.Children() {
			if c.HasClass(class) {
				out = append(out, c)
				continue
			}
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}
