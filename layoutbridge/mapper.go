package layoutbridge

import (
	"cmp"
	"slices"

	"go.uber.org/zap"
)

// Mapper resolves points over rendered pages to document positions. It keeps
// no state between calls: the rendered tree may change freely in between.
type Mapper struct {
	log      *zap.Logger
	measurer Measurer
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithMeasurer sets text measurement used to place the caret inside an
// element. The default is ProportionalMeasurer.
func WithMeasurer(m Measurer) Option {
	return func(mp *Mapper) {
		if m != nil {
			mp.measurer = m
		}
	}
}

// NewMapper creates a mapper. log may be nil.
func NewMapper(log *zap.Logger, opts ...Option) *Mapper {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Mapper{log: log.Named("layoutbridge"), measurer: ProportionalMeasurer{}}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Hit describes a resolved point.
type Hit struct {
	Pos int
	// PageIndex is data-page-index of the page, -1 when absent.
	PageIndex int
	// BlockID is data-block-id of the enclosing fragment, if any.
	BlockID string
	Line    Element
	// Target is the element the position was measured in, nil when the
	// position snapped to a line edge.
	Target Element
}

// MapClickToPosition maps a point to a document position with a default
// mapper.
func MapClickToPosition(container Element, x, y float64, opts ...Option) (int, bool) {
	return NewMapper(nil, opts...).MapClickToPosition(container, x, y)
}

// MapClickToPosition returns the document position under the point. false
// means there is no answer and callers should fall back to another strategy,
// in particular table fragments hit outside of any line are left to
// geometry based table hit testing.
func (m *Mapper) MapClickToPosition(container Element, x, y float64) (int, bool) {
	h, ok := m.Locate(container, x, y)
	return h.Pos, ok
}

// Locate is MapClickToPosition returning the details of the resolution.
func (m *Mapper) Locate(container Element, x, y float64) (Hit, bool) {
	if container == nil {
		return Hit{}, false
	}

	page := pageAt(container, x, y)
	if page == nil {
		m.log.Debug("No page at point", zap.Float64("x", x), zap.Float64("y", y))
		return Hit{}, false
	}

	chain := ElementsFromPoint(page, x, y)
	line := firstWithClass(chain, ClassLine)
	if line == nil && firstWithClass(chain, ClassTableFragment) != nil {
		m.log.Debug("Table fragment hit outside of lines, deferring", zap.Float64("x", x), zap.Float64("y", y))
		return Hit{}, false
	}
	if line == nil {
		fragment := firstWithClass(chain, ClassFragment)
		if fragment == nil {
			fragment = fragmentAt(page, x, y)
		}
		if fragment == nil {
			m.log.Debug("No fragment at point", zap.Float64("x", x), zap.Float64("y", y))
			return Hit{}, false
		}
		if line = lineAt(fragment, y); line == nil {
			m.log.Debug("Fragment has no lines", zap.String("block", attrOr(fragment, AttrBlockID)))
			return Hit{}, false
		}
	}

	lineStart, lineEnd, ok := Range(line)
	if !ok {
		m.log.Debug("Line without usable position range",
			zap.String(AttrPmStart, attrOr(line, AttrPmStart)),
			zap.String(AttrPmEnd, attrOr(line, AttrPmEnd)))
		return Hit{}, false
	}

	h := Hit{PageIndex: -1, Line: line}
	if idx, ok := intAttr(page, AttrPageIndex); ok {
		h.PageIndex = idx
	}
	if fragment := closest(line, ClassFragment); fragment != nil {
		h.BlockID = attrOr(fragment, AttrBlockID)
	} else if fragment := closest(line, ClassTableFragment); fragment != nil {
		h.BlockID = attrOr(fragment, AttrBlockID)
	}
	h.Pos, h.Target = m.positionInLine(line, x, lineStart, lineEnd)
	return h, true
}

func (m *Mapper) positionInLine(line Element, x float64, lineStart, lineEnd int) (int, Element) {
	leaves := positionedLeaves(line)
	slices.SortStableFunc(leaves, func(a, b Element) int {
		return cmp.Compare(a.Rect().X, b.Rect().X)
	})

	if len(leaves) == 0 {
		r := line.Rect()
		if x < r.X+r.Width/2 {
			return lineStart, nil
		}
		return lineEnd, nil
	}
	if x < leaves[0].Rect().X {
		return lineStart, nil
	}
	if x > leaves[len(leaves)-1].Rect().Right() {
		return lineEnd, nil
	}

	for i, leaf := range leaves {
		r := leaf.Rect()
		if r.ContainsX(x) {
			return m.caret(leaf, x), leaf
		}
		if i+1 == len(leaves) {
			break
		}
		next := leaves[i+1]
		if x > r.Right() && x < next.Rect().X {
			// gap between two elements, snap to the nearer edge
			if x-r.Right() <= next.Rect().X-x {
				_, end, _ := Range(leaf)
				return end, leaf
			}
			start, _, _ := Range(next)
			return start, next
		}
	}
	return lineEnd, nil
}

// caret places the position inside a leaf element.
func (m *Mapper) caret(el Element, x float64) int {
	start, end, _ := Range(el)
	if end <= start || el.Text() == "" {
		r := el.Rect()
		if x < r.X+r.Width/2 {
			return start
		}
		return end
	}
	return min(start+caretIndex(m.measurer, el, x), end)
}

// positionedLeaves returns the elements of a line carrying a position range
// in document order. Structured content wrappers span the range of all their
// children and are replaced by them. Elements without a range (list markers,
// tabs) contribute their positioned descendants, if any.
func positionedLeaves(el Element) []Element {
	var out []Element
	for _, c := range el.Children() {
		if c.HasClass(ClassStructuredContentInline) {
			out = append(out, positionedLeaves(c)...)
			continue
		}
		if _, _, ok := Range(c); ok {
			out = append(out, c)
			continue
		}
		out = append(out, positionedLeaves(c)...)
	}
	return out
}

func pageAt(container Element, x, y float64) Element {
	pages := descendants(container, ClassPage)
	if container.HasClass(ClassPage) {
		pages = append([]Element{container}, pages...)
	}
	for _, p := range pages {
		if p.Rect().Contains(x, y) {
			return p
		}
	}
	return nil
}

// fragmentAt returns the fragment containing the point, or else the first
// one whose vertical extent contains y.
func fragmentAt(page Element, x, y float64) Element {
	fragments := descendants(page, ClassFragment)
	for _, f := range fragments {
		if f.Rect().Contains(x, y) {
			return f
		}
	}
	for _, f := range fragments {
		if f.Rect().ContainsY(y) {
			return f
		}
	}
	return nil
}

// lineAt returns the line whose vertical extent contains y, the first line
// when y is above all of them, the last when below, otherwise the nearest.
func lineAt(fragment Element, y float64) Element {
	lines := descendants(fragment, ClassLine)
	if len(lines) == 0 {
		return nil
	}
	if y < lines[0].Rect().Y {
		return lines[0]
	}
	if y > lines[len(lines)-1].Rect().Bottom() {
		return lines[len(lines)-1]
	}

	var best Element
	bestDist := -1.0
	for _, l := range lines {
		r := l.Rect()
		if r.ContainsY(y) {
			return l
		}
		d := r.Y - y
		if y > r.Bottom() {
			d = y - r.Bottom()
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = l, d
		}
	}
	return best
}

func attrOr(el Element, name string) string {
	v, _ := el.Attr(name)
	return v
}
