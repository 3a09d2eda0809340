package domain

// SystemState is the aggregate derived from the whole archive.
// It is regenerated wholesale on every compaction and never patched.
// The JSON shape is the contract with downstream readers of system_state.json.
type SystemState struct {
	EntryCount  int          `json:"entry_count"`
	FirstDate   string       `json:"first_date,omitempty"`
	LastDate    string       `json:"last_date,omitempty"`
	Streak      int          `json:"streak_days"`
	Mood        MoodStats    `json:"mood"`
	TopTags     []TagCount   `json:"top_tags"`
	OpenActions []ActionItem `json:"open_actions"`
	LastSummary string       `json:"last_summary,omitempty"`
}

// MoodStats summarises mood scores. Pointers are nil when no entry has a mood.
type MoodStats struct {
	Samples int      `json:"samples"`
	Average *float64 `json:"average,omitempty"`
	Latest  *float64 `json:"latest,omitempty"`

	// RecentAverage covers the last RecentWindow scored entries.
	RecentAverage *float64 `json:"recent_average,omitempty"`
	RecentWindow  int      `json:"recent_window"`
}

// TagCount is how many archive records carry a tag.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}
