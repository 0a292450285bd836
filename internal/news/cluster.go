package news

import (
	"sort"
	"time"

	"newslens/internal/metrics"
	"newslens/internal/model"
)

// GroupStories clusters distinctly-titled articles that cover the same
// event across outlets. It answers a coarser question than Dedupe: the
// titles differ, but the token overlap is still high and the publish times
// are close.
//
// This is deliberately a single greedy forward pass, not a globally optimal
// clustering: the next ungrouped article anchors a group, every later
// ungrouped article with title similarity above threshold and a publish
// time within window of the anchor is pulled in and removed from further
// consideration, and an article skipped past is never reconsidered. Which
// group a borderline article lands in therefore depends on input order.
//
// A formed group is kept only when it has two or more members from at least
// two distinct sources; discarded singletons surface downstream as ordinary
// ungrouped articles. Kept groups come back sorted by descending member
// count, with the anchor as the representative.
func GroupStories(articles []model.Article, threshold float64, window time.Duration) []model.StoryGroup {
	tokens := make([]map[string]struct{}, len(articles))
	for i, a := range articles {
		tokens[i] = titleTokens(a.Title)
	}

	used := make([]bool, len(articles))
	var groups []model.StoryGroup

	for i := range articles {
		if used[i] {
			continue
		}
		used[i] = true
		members := []model.Article{articles[i]}

		for j := i + 1; j < len(articles); j++ {
			if used[j] {
				continue
			}
			if jaccard(tokens[i], tokens[j]) <= threshold {
				continue
			}
			gap := articles[j].Published.Sub(articles[i].Published)
			if gap < 0 {
				gap = -gap
			}
			if gap >= window {
				continue
			}
			used[j] = true
			members = append(members, articles[j])
		}

		if len(members) < 2 {
			continue
		}
		group := model.StoryGroup{
			Lead:    articles[i],
			Members: members,
			Bias:    summarizeBias(members),
		}
		if group.SourceCount() < 2 {
			// One outlet re-posting an update is not multi-source coverage.
			continue
		}
		groups = append(groups, group)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return len(groups[a].Members) > len(groups[b].Members)
	})

	if len(groups) > 0 {
		metrics.Global.AddStoryGroupsFormed(len(groups))
	}
	return groups
}

// summarizeBias aggregates the numeric bias projections of the rated
// members. Unrated members are excluded from the aggregate, never
// zero-filled into it.
func summarizeBias(members []model.Article) model.BiasSummary {
	var summary model.BiasSummary
	sum := 0.0
	for _, a := range members {
		if !a.Source.Bias.Rated() {
			continue
		}
		score := a.Source.Bias.Score()
		if summary.Rated == 0 {
			summary.Min = score
			summary.Max = score
		} else {
			if score < summary.Min {
				summary.Min = score
			}
			if score > summary.Max {
				summary.Max = score
			}
		}
		sum += score
		summary.Rated++
	}
	if summary.Rated > 0 {
		summary.Mean = sum / float64(summary.Rated)
	}
	return summary
}
