package dualtrack

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.EntryParser = (*Parser)(nil)

// tagPattern matches #tag tokens that are not part of a heading run (##)
// or glued to a preceding word (C#).
var tagPattern = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_#])#([\p{L}\p{N}_]+)`)

// bulletPattern strips a list marker and an optional checkbox.
var bulletPattern = regexp.MustCompile(`^[-*+]\s+(?:\[[ xX]?\]\s*)?(.*)$`)

type section int

const (
	sectionNone section = iota
	sectionProject
	sectionLife
)

// Parser splits dual-track entries into project and life sections.
// It is safe for concurrent use.
type Parser struct {
	projectMarker string
	lifeMarker    string
	stopMarkers   []string
	nextActions   *regexp.Regexp
	denylist      *TagMatcher
}

// NewParser creates a parser from settings. Empty markers fall back to the defaults.
func NewParser(cfg domain.ParserSettings) (*Parser, error) {
	defaults := domain.DefaultSettings().Parser
	if strings.TrimSpace(cfg.ProjectMarker) == "" {
		cfg.ProjectMarker = defaults.ProjectMarker
	}
	if strings.TrimSpace(cfg.LifeMarker) == "" {
		cfg.LifeMarker = defaults.LifeMarker
	}
	if len(cfg.NextActionHeaders) == 0 {
		cfg.NextActionHeaders = defaults.NextActionHeaders
	}

	denylist, err := NewTagMatcher(cfg.PrimaryTagDenylist)
	if err != nil {
		return nil, fmt.Errorf("primary tag denylist: %w", err)
	}

	p := &Parser{
		projectMarker: strings.ToLower(strings.TrimSpace(cfg.ProjectMarker)),
		lifeMarker:    strings.ToLower(strings.TrimSpace(cfg.LifeMarker)),
		nextActions:   regexp.MustCompile(`(?i)` + headerAlternation(cfg.NextActionHeaders)),
		denylist:      denylist,
	}
	for _, m := range cfg.StopMarkers {
		if m = strings.ToLower(strings.TrimSpace(m)); m != "" {
			p.stopMarkers = append(p.stopMarkers, m)
		}
	}
	return p, nil
}

// Parse splits raw journal text. Missing markers yield empty sections.
func (p *Parser) Parse(raw string) domain.ParsedSections {
	var project, life []string
	current := sectionNone

	for _, line := range strings.Split(normaliseNewlines(raw), "\n") {
		switch {
		case p.isMarker(line, p.projectMarker):
			current = sectionProject
			continue
		case p.isMarker(line, p.lifeMarker):
			current = sectionLife
			continue
		case p.isStop(line):
			current = sectionNone
			continue
		}

		switch current {
		case sectionProject:
			project = append(project, line)
		case sectionLife:
			life = append(life, line)
		}
	}

	projectContent := strings.TrimSpace(strings.Join(project, "\n"))
	tags := ExtractTags(projectContent)

	return domain.ParsedSections{
		Project: domain.ProjectSection{
			PrimaryTag:  p.PrimaryTag(tags),
			Tags:        tags,
			Content:     projectContent,
			NextActions: p.nextActionItems(projectContent),
		},
		Life: domain.LifeSection{
			Content: strings.TrimSpace(strings.Join(life, "\n")),
		},
	}
}

// PrimaryTag picks the first tag outside the denylist. When every tag is
// denylisted the first tag wins; with no tags the entry is Uncategorized.
func (p *Parser) PrimaryTag(tags []string) string {
	if len(tags) == 0 {
		return domain.UncategorizedTag
	}
	for _, tag := range tags {
		if !p.denylist.Match(tag) {
			return tag
		}
	}
	return tags[0]
}

// isMarker reports whether line opens the section named by marker: either a
// heading mentioning it or a line starting with it.
func (p *Parser) isMarker(line, marker string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(line))
	if trimmed == "" || marker == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "#") {
		return strings.Contains(trimmed, marker)
	}
	return strings.HasPrefix(trimmed, marker)
}

func (p *Parser) isStop(line string) bool {
	for _, m := range p.stopMarkers {
		if p.isMarker(line, m) {
			return true
		}
	}
	return false
}

func (p *Parser) nextActionItems(content string) []string {
	var actions []string
	inBlock := false
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if !inBlock {
			inBlock = p.nextActions.MatchString(line)
			continue
		}
		if strings.HasPrefix(trimmed, "##") {
			break
		}
		m := bulletPattern.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		if item := strings.TrimSpace(m[1]); item != "" {
			actions = append(actions, item)
		}
	}
	return actions
}

// ExtractTags returns the #tags in content in order of first appearance.
func ExtractTags(content string) []string {
	matches := tagPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		tags = append(tags, m[1])
	}
	return tags
}

const apostrophe = "['’‘`]?"

// headerAlternation builds a regexp alternation of header phrases where an
// apostrophe matches any quote style or none ("Tomorrows MIT") and spaces
// match any whitespace run.
func headerAlternation(phrases []string) string {
	parts := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			continue
		}
		quoted := regexp.QuoteMeta(phrase)
		quoted = strings.NewReplacer("'", apostrophe, "’", apostrophe).Replace(quoted)
		quoted = regexp.MustCompile(`\s+`).ReplaceAllString(quoted, `\s+`)
		parts = append(parts, quoted)
	}
	if len(parts) == 0 {
		// Never matches.
		return `[^\s\S]`
	}
	return "(?:" + strings.Join(parts, "|") + ")"
}

func normaliseNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
