package main

import (
	"cmp"
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// suggest returns up to limit candidates close to id: subsequence matches
// first, then near misses by edit distance.
func suggest(id string, candidates []string, limit int) []string {
	type scored struct {
		name string
		dist int
	}
	if id == "" || limit <= 0 {
		return nil
	}

	seen := make(map[string]bool)
	var found []scored
	for _, r := range fuzzy.RankFindNormalizedFold(id, candidates) {
		found = append(found, scored{r.Target, r.Distance})
		seen[r.Target] = true
	}

	lower := strings.ToLower(id)
	allowed := max(2, len(id)/3)
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		if d := fuzzy.LevenshteinDistance(lower, strings.ToLower(c)); d <= allowed {
			found = append(found, scored{c, d})
			seen[c] = true
		}
	}

	slices.SortFunc(found, func(a, b scored) int {
		if c := cmp.Compare(a.dist, b.dist); c != 0 {
			return c
		}
		return compareNatural(a.name, b.name)
	})

	out := make([]string, 0, min(limit, len(found)))
	for _, s := range found[:min(limit, len(found))] {
		out = append(out, s.name)
	}
	return out
}
