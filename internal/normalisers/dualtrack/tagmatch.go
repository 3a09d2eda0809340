package dualtrack

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// TagMatcher matches tags against case-insensitive glob patterns.
// A nil *TagMatcher matches nothing.
type TagMatcher struct {
	patterns []glob.Glob
}

// NewTagMatcher compiles the patterns. A leading '#' is ignored so both
// "journal" and "#journal" work in configuration.
func NewTagMatcher(patterns []string) (*TagMatcher, error) {
	m := &TagMatcher{}
	for _, pattern := range patterns {
		pattern = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(pattern), "#"))
		if pattern == "" {
			continue
		}
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile tag pattern %q: %w", pattern, err)
		}
		m.patterns = append(m.patterns, g)
	}
	return m, nil
}

// Match reports whether the tag matches any pattern.
func (m *TagMatcher) Match(tag string) bool {
	if m == nil {
		return false
	}
	tag = strings.ToLower(tag)
	for _, g := range m.patterns {
		if g.Match(tag) {
			return true
		}
	}
	return false
}

// Filter returns the tags that match no pattern, order preserved.
func (m *TagMatcher) Filter(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if !m.Match(tag) {
			out = append(out, tag)
		}
	}
	return out
}
