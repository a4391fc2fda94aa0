package menu

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Match is a search hit within a registry.
type Match struct {
	ID       string
	Element  Element
	Distance int
}

// Search returns the elements whose titles fuzzy-match query, closest first.
// Ties keep tree order. A blank query matches nothing.
func (r *Registry) Search(query string) []Match {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil
	}
	titles := make([]string, len(r.order))
	for i, id := range r.order {
		titles[i] = r.nodes[id].Title()
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, titles)
	if len(ranks) == 0 {
		return nil
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	matches := make([]Match, 0, len(ranks))
	for _, rank := range ranks {
		id := r.order[rank.OriginalIndex]
		matches = append(matches, Match{ID: id, Element: r.nodes[id], Distance: rank.Distance})
	}
	return matches
}
