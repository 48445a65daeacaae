package ooxml

import (
	"go.uber.org/zap"

	"docstyle/property"
)

// ResolveStyleChain returns properties of type pt defined by style styleID.
// With followBasedOn the basedOn ancestors are merged in, root ancestor first,
// so the style itself wins. Unknown styles give an empty object; cycles and
// dangling parents silently truncate the chain.
func (r *Resolver) ResolveStyleChain(pt PropertyType, styleID string, followBasedOn bool) property.Object {
	defs, stop := r.walkBasedOn(styleID, followBasedOn)
	if len(defs) == 0 {
		return property.Object{}
	}

	chain := make([]property.Object, 0, len(defs))
	for i := len(defs) - 1; i >= 0; i-- {
		chain = append(chain, defs[i].properties(pt))
	}
	merged := r.combine(pt, chain)

	if r.tracer.IsEnabled() {
		ids := make([]string, 0, len(defs))
		for _, d := range defs {
			ids = append(ids, d.ID)
		}
		r.tracer.TraceChain(pt, ids, stop, merged)
	}
	return merged
}

// StyleChain returns ids of the styles walked for styleID, the style itself
// first and its root ancestor last.
func (r *Resolver) StyleChain(styleID string) []string {
	defs, _ := r.walkBasedOn(styleID, true)
	ids := make([]string, 0, len(defs))
	for _, d := range defs {
		ids = append(ids, d.ID)
	}
	return ids
}

// walkBasedOn builds inheritance chain (style -> parent -> grandparent -> ...).
// The second value explains why the walk ended early, if it did.
func (r *Resolver) walkBasedOn(styleID string, follow bool) ([]*StyleDefinition, string) {
	def := r.style(styleID)
	if def == nil {
		return nil, ""
	}
	chain := []*StyleDefinition{def}
	if !follow {
		return chain, ""
	}

	visited := map[string]bool{styleID: true}
	current := def
	for current.BasedOn != "" {
		if visited[current.BasedOn] {
			r.log.Debug("Circular basedOn chain, truncating",
				zap.String("style", styleID), zap.String("at", current.ID), zap.String("parent", current.BasedOn))
			return chain, "cycle at " + current.BasedOn
		}
		parent := r.style(current.BasedOn)
		if parent == nil {
			r.log.Debug("Dangling basedOn reference",
				zap.String("style", current.ID), zap.String("parent", current.BasedOn))
			return chain, "missing " + current.BasedOn
		}
		visited[current.BasedOn] = true
		chain = append(chain, parent)
		current = parent
	}
	return chain, ""
}
