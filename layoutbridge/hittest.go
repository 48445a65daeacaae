package layoutbridge

// ElementsFromPoint returns the elements under the point, deepest first,
// followed by its ancestors up to root. The topmost (last painted) subtree
// wins. Descendants of a clipping element are not hit outside its box.
func ElementsFromPoint(root Element, x, y float64) []Element {
	if root == nil {
		return nil
	}
	return hit(root, x, y)
}

func hit(el Element, x, y float64) []Element {
	inside := el.Rect().Contains(x, y)
	if el.ClipsContent() && !inside {
		return nil
	}
	children := el.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if chain := hit(children[i], x, y); chain != nil {
			return append(chain, el)
		}
	}
	if inside {
		return []Element{el}
	}
	return nil
}

func firstWithClass(chain []Element, class string) Element {
	for _, el := range chain {
		if el.HasClass(class) {
			return el
		}
	}
	return nil
}
