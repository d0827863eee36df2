package domain

import "sort"

// TopStories is the maximum number of stories included in a digest.
const TopStories = 50

// Rank orders stories by composite score descending and truncates the result
// to at most limit entries. The sort is stable: stories with equal composite
// scores keep their relative input order. The input slice is not modified.
func Rank(stories []Story, limit int) []Story {
	ranked := make([]Story, len(stories))
	copy(ranked, stories)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CompositeScore() > ranked[j].CompositeScore()
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
