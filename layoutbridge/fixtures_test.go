package layoutbridge

import (
	"slices"
	"strconv"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// node is a synthetic rendered element.
type node struct {
	parent   *node
	children []*node
	classes  []string
	attrs    map[string]string
	rect     Rect
	text     string
	clip     bool
}

func (n *node) Parent() Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node) Children() []Element {
	out := make([]Element, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *node) HasClass(name string) bool { return slices.Contains(n.classes, name) }

func (n *node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

func (n *node) Rect() Rect { return n.rect }

func (n *node) Text() string {
	if len(n.children) == 0 {
		return n.text
	}
	var sb strings.Builder
	for _, c := range n.children {
		sb.WriteString(c.Text())
	}
	return sb.String()
}

func (n *node) ClipsContent() bool { return n.clip }

func box(x, y, w, h float64, class string, kids ...*node) *node {
	n := &node{rect: Rect{X: x, Y: y, Width: w, Height: h}, attrs: map[string]string{}}
	if class != "" {
		n.classes = strings.Fields(class)
	}
	for _, k := range kids {
		k.parent = n
		n.children = append(n.children, k)
	}
	return n
}

func (n *node) attr(name, value string) *node {
	n.attrs[name] = value
	return n
}

func (n *node) pm(start, end int) *node {
	return n.attr(AttrPmStart, strconv.Itoa(start)).attr(AttrPmEnd, strconv.Itoa(end))
}

func (n *node) clipped() *node {
	n.clip = true
	return n
}

func span(x, y, w, h float64, text string, start, end int) *node {
	n := box(x, y, w, h, "").pm(start, end)
	n.text = text
	return n
}

// testDocument renders a page with a two line paragraph and a table:
//
//	line 1 (pm 1..13): "Hello " [1,7] at 50..110, "world" [8,13] at 120..170
//	line 2 (pm 12..21): marker "1." at 50..70, structured content wrapper
//	  [12,20] at 80..180 holding "abc" [12,15] at 80..110 and "defgh" [15,20]
//	  at 110..160
//	table fragment at 50..350 x 200..300 clipping its cell line (pm 30..35)
func testDocument() *node {
	marker := box(50, 70, 20, 20, "")
	marker.text = "1."
	return box(0, 0, 800, 1200, "superdoc-layout",
		box(0, 0, 800, 1000, ClassPage,
			box(50, 50, 700, 60, ClassFragment,
				box(50, 50, 700, 20, ClassLine,
					span(50, 50, 60, 20, "Hello ", 1, 7),
					span(120, 50, 50, 20, "world", 8, 13),
				).pm(1, 13),
				box(50, 70, 700, 20, ClassLine,
					marker,
					box(80, 70, 100, 20, ClassStructuredContentInline,
						span(80, 70, 30, 20, "abc", 12, 15),
						span(110, 70, 50, 20, "defgh", 15, 20),
					).pm(12, 20),
				).pm(12, 21),
			).attr(AttrBlockID, "p1"),
			box(50, 200, 300, 100, ClassTableFragment,
				box(60, 210, 100, 20, ClassLine,
					span(60, 210, 50, 20, "cell", 30, 34),
				).pm(30, 35),
			).attr(AttrBlockID, "t1").clipped(),
		).attr(AttrPageIndex, "0"),
	)
}

func testLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
}
