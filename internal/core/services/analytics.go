package services

import (
	"sort"
	"time"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
)

// Ensure Analytics implements the interface.
var _ driven.StateDeriver = (*Analytics)(nil)

const (
	defaultRecentWindow = 7
	defaultTopTags      = 10
)

// Analytics derives the system state from archive records.
// It reads only the fields a record has; empty records still count.
type Analytics struct {
	// RecentWindow is how many scored entries the recent mood covers.
	RecentWindow int

	// TopTags caps the tag ranking.
	TopTags int
}

// NewAnalytics creates an analytics deriver with default windows.
func NewAnalytics() *Analytics {
	return &Analytics{
		RecentWindow: defaultRecentWindow,
		TopTags:      defaultTopTags,
	}
}

// Derive computes the state over records sorted by date.
func (a *Analytics) Derive(records []domain.ArchiveRecord) domain.SystemState {
	state := domain.SystemState{
		EntryCount:  len(records),
		TopTags:     []domain.TagCount{},
		OpenActions: []domain.ActionItem{},
	}
	state.Mood.RecentWindow = a.RecentWindow
	if len(records) == 0 {
		return state
	}

	state.FirstDate = records[0].Date
	state.LastDate = records[len(records)-1].Date
	state.Streak = streak(records)
	state.Mood = a.moodStats(records)
	state.TopTags = a.topTags(records)

	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		if state.LastSummary == "" && r.Summary != "" && r.Summary != domain.FailedAnalysis().Summary {
			state.LastSummary = r.Summary
		}
		if len(state.OpenActions) == 0 && len(r.ActionItems) > 0 {
			state.OpenActions = append(state.OpenActions, r.ActionItems...)
		}
		if state.LastSummary != "" && len(state.OpenActions) > 0 {
			break
		}
	}
	return state
}

// streak counts consecutive calendar days ending at the latest valid date.
func streak(records []domain.ArchiveRecord) int {
	days := make(map[string]bool, len(records))
	var latest time.Time
	for _, r := range records {
		t, err := time.Parse(domain.DateLayout, r.Date)
		if err != nil || r.Date == domain.EpochDate {
			continue
		}
		days[r.Date] = true
		if t.After(latest) {
			latest = t
		}
	}
	if latest.IsZero() {
		return 0
	}

	count := 0
	for day := latest; days[day.Format(domain.DateLayout)]; day = day.AddDate(0, 0, -1) {
		count++
	}
	return count
}

func (a *Analytics) moodStats(records []domain.ArchiveRecord) domain.MoodStats {
	stats := domain.MoodStats{RecentWindow: a.RecentWindow}

	var scores []float64
	for _, r := range records {
		if r.Mood != nil {
			scores = append(scores, *r.Mood)
		}
	}
	stats.Samples = len(scores)
	if len(scores) == 0 {
		return stats
	}

	stats.Average = mean(scores)
	latest := scores[len(scores)-1]
	stats.Latest = &latest

	window := a.RecentWindow
	if window <= 0 || window > len(scores) {
		window = len(scores)
	}
	stats.RecentAverage = mean(scores[len(scores)-window:])
	return stats
}

func (a *Analytics) topTags(records []domain.ArchiveRecord) []domain.TagCount {
	counts := make(map[string]int)
	for _, r := range records {
		seen := make(map[string]bool, len(r.Tags))
		for _, tag := range r.Tags {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			counts[tag]++
		}
	}

	ranked := make([]domain.TagCount, 0, len(counts))
	for tag, n := range counts {
		ranked = append(ranked, domain.TagCount{Tag: tag, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Tag < ranked[j].Tag
	})
	if a.TopTags > 0 && len(ranked) > a.TopTags {
		ranked = ranked[:a.TopTags]
	}
	return ranked
}

func mean(values []float64) *float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	avg := sum / float64(len(values))
	return &avg
}
