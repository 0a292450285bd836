package news

import (
	"sort"

	"newslens/internal/metrics"
	"newslens/internal/model"
)

// Dedupe collapses near-identical titles (syndicated wire copy) within one
// category's raw fetched set, then sorts the survivors by recency and caps
// the list.
//
// The walk is first-seen-wins over the input's arrival order: an article is
// dropped when its title's Jaccard similarity against any already-accepted
// title exceeds threshold. Because the orchestrator's join produces no
// deterministic arrival order, borderline keep/drop decisions can differ
// run to run; callers must not rely on which near-twin survives.
func Dedupe(articles []model.Article, threshold float64, limit int) []model.Article {
	accepted := make([]model.Article, 0, len(articles))
	acceptedTokens := make([]map[string]struct{}, 0, len(articles))
	dropped := 0

	for _, article := range articles {
		tokens := titleTokens(article.Title)

		duplicate := false
		for _, seen := range acceptedTokens {
			if jaccard(tokens, seen) > threshold {
				duplicate = true
				break
			}
		}
		if duplicate {
			dropped++
			continue
		}

		accepted = append(accepted, article)
		acceptedTokens = append(acceptedTokens, tokens)
	}

	if dropped > 0 {
		metrics.Global.AddDuplicatesFiltered(dropped)
	}

	// The only ordering guarantee in the pipeline: most recent first.
	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].Published.After(accepted[j].Published)
	})

	if limit > 0 && len(accepted) > limit {
		accepted = accepted[:limit]
	}
	return accepted
}
