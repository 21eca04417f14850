package related

import (
	"sort"

	"github.com/fivenightsatbothra-commits/MD-Blog/internal/model"
)

// maxRelated caps how many related posts a post carries.
const maxRelated = 3

// Rank orders the rest of the corpus by shared-tag count with the target,
// keeping only posts with at least one shared tag and at most maxRelated of
// them. The sort is stable over corpus order, which the compiler establishes
// as date descending, so ties favor more recent posts. No overlap means an
// empty result, never an error.
func Rank(target *model.Post, corpus []*model.Post) []*model.Post {
	type candidate struct {
		post    *model.Post
		matches int
	}

	candidates := make([]candidate, 0, len(corpus))
	for _, other := range corpus {
		if other.Slug == target.Slug {
			continue
		}
		if n := sharedTags(target.Tags, other.Tags); n > 0 {
			candidates = append(candidates, candidate{post: other, matches: n})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].matches > candidates[j].matches
	})

	if len(candidates) > maxRelated {
		candidates = candidates[:maxRelated]
	}

	out := make([]*model.Post, len(candidates))
	for i, c := range candidates {
		out[i] = c.post
	}
	return out
}

// sharedTags counts how many of target's tags appear in other's tag set.
func sharedTags(target, other []string) int {
	set := make(map[string]struct{}, len(other))
	for _, tag := range other {
		set[tag] = struct{}{}
	}
	n := 0
	for _, tag := range target {
		if _, ok := set[tag]; ok {
			n++
		}
	}
	return n
}
