package dualtrack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
)

const sampleEntry = `# Daily 2025-03-01

## A. Project Log
Worked on the ingest pipeline #LifeOS #Health #健康
Fixed flaky test in C# client.

### Tomorrow's MIT
- Ship the parser
* [ ] Write docs
Not a bullet
-

## B. Life Log
Walked by the river.
Felt calm.

## Graph Seeds
- seed one
`

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser(domain.DefaultSettings().Parser)
	require.NoError(t, err)
	return p
}

func TestNewParser(t *testing.T) {
	p, err := NewParser(domain.ParserSettings{})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "project log", p.projectMarker)
	assert.Equal(t, "life log", p.lifeMarker)
}

func TestNewParser_InvalidDenylist(t *testing.T) {
	_, err := NewParser(domain.ParserSettings{PrimaryTagDenylist: []string{"[oops"}})
	assert.Error(t, err)
}

func TestParse_BothSections(t *testing.T) {
	p := newTestParser(t)
	parsed := p.Parse(sampleEntry)

	assert.True(t, strings.HasPrefix(parsed.Project.Content, "Worked on the ingest pipeline"))
	assert.Contains(t, parsed.Project.Content, "Ship the parser")
	assert.NotContains(t, parsed.Project.Content, "Walked by the river")
	assert.NotContains(t, parsed.Project.Content, "Life Log")

	assert.Equal(t, "Walked by the river.\nFelt calm.", parsed.Life.Content)
	assert.NotContains(t, parsed.Life.Content, "seed one")
}

func TestParse_SectionsDoNotOverlapAndCoverSpan(t *testing.T) {
	p := newTestParser(t)
	raw := "## Project Log\nalpha #Work\nbeta\n## Life Log\ngamma\ndelta"
	parsed := p.Parse(raw)

	assert.Equal(t, "alpha #Work\nbeta", parsed.Project.Content)
	assert.Equal(t, "gamma\ndelta", parsed.Life.Content)

	covered := parsed.Project.Content + "\n" + parsed.Life.Content
	for _, line := range []string{"alpha #Work", "beta", "gamma", "delta"} {
		assert.Equal(t, 1, strings.Count(covered, line), line)
	}
}

func TestParse_LifeBeforeProject(t *testing.T) {
	p := newTestParser(t)
	parsed := p.Parse("Life Log\nslept well\nProject Log\nrefactor #Core")

	assert.Equal(t, "slept well", parsed.Life.Content)
	assert.Equal(t, "refactor #Core", parsed.Project.Content)
	assert.Equal(t, "Core", parsed.Project.PrimaryTag)
}

func TestParse_NoMarkers(t *testing.T) {
	p := newTestParser(t)

	for _, raw := range []string{"", "just some thoughts #Idea", "### heading\n- item"} {
		parsed := p.Parse(raw)
		assert.Empty(t, parsed.Project.Content, raw)
		assert.Empty(t, parsed.Life.Content, raw)
		assert.Empty(t, parsed.Project.Tags, raw)
		assert.Empty(t, parsed.Project.NextActions, raw)
		assert.Equal(t, domain.UncategorizedTag, parsed.Project.PrimaryTag, raw)
		assert.False(t, parsed.HasProject())
	}
}

func TestParse_OnlyLifeMarker(t *testing.T) {
	p := newTestParser(t)
	parsed := p.Parse("## Life Log\nquiet day")

	assert.Empty(t, parsed.Project.Content)
	assert.Equal(t, "quiet day", parsed.Life.Content)
}

func TestParse_CaseInsensitiveMarkers(t *testing.T) {
	p := newTestParser(t)
	parsed := p.Parse("## PROJECT LOG\nwork\n## life log\nrest")

	assert.Equal(t, "work", parsed.Project.Content)
	assert.Equal(t, "rest", parsed.Life.Content)
}

func TestParse_CRLF(t *testing.T) {
	p := newTestParser(t)
	parsed := p.Parse("## Project Log\r\nwork #Ops\r\n## Life Log\r\nrest\r\n")

	assert.Equal(t, "work #Ops", parsed.Project.Content)
	assert.Equal(t, "rest", parsed.Life.Content)
}

func TestParse_Tags(t *testing.T) {
	p := newTestParser(t)
	parsed := p.Parse(sampleEntry)

	assert.Equal(t, []string{"LifeOS", "Health", "健康"}, parsed.Project.Tags)
}

func TestParse_TagsOnlyFromProjectSection(t *testing.T) {
	p := newTestParser(t)
	parsed := p.Parse("## Project Log\nwork #Alpha\n## Life Log\nfamily #Home")

	assert.Equal(t, []string{"Alpha"}, parsed.Project.Tags)
}

func TestParse_NextActions(t *testing.T) {
	p := newTestParser(t)
	parsed := p.Parse(sampleEntry)

	assert.Equal(t, []string{"Ship the parser", "Write docs"}, parsed.Project.NextActions)
}

func TestParse_NextActionsHeaderVariants(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		name   string
		header string
	}{
		{"straight apostrophe", "### Tomorrow's MIT"},
		{"curly apostrophe", "### Tomorrow’s MIT"},
		{"no apostrophe", "### Tomorrows MIT"},
		{"backtick", "### Tomorrow`s MIT"},
		{"numbered", "### 3. Tomorrow's MIT:"},
		{"next steps", "## Next Steps"},
		{"plain line", "Next   steps:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := p.Parse("## Project Log\n" + tt.header + "\n- one\n+ two\n### Notes\n- not an action")
			assert.Equal(t, []string{"one", "two"}, parsed.Project.NextActions)
		})
	}
}

func TestParse_NoNextActionsBlock(t *testing.T) {
	p := newTestParser(t)
	parsed := p.Parse("## Project Log\n- a bullet without a heading")

	assert.Empty(t, parsed.Project.NextActions)
}

func TestPrimaryTag(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		name string
		tags []string
		want string
	}{
		{"denylisted first", []string{"LifeOS", "Health"}, "Health"},
		{"only denylisted", []string{"LifeOS"}, "LifeOS"},
		{"all denylisted", []string{"DualMemory", "LifeOS"}, "DualMemory"},
		{"case insensitive denylist", []string{"lifeos", "Work"}, "Work"},
		{"no tags", nil, domain.UncategorizedTag},
		{"plain", []string{"Garden", "Health"}, "Garden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.PrimaryTag(tt.tags))
		})
	}
}

func TestExtractTags(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"start of text", "#one two", []string{"one"}},
		{"duplicates", "#a #b #a", []string{"a", "b"}},
		{"cjk", "今天 #學習 很好", []string{"學習"}},
		{"heading is not a tag", "## Heading\n### Sub", nil},
		{"glued to word", "C#sharp and x#y", nil},
		{"punctuation before", "(#paren) ,#comma", []string{"paren", "comma"}},
		{"underscore", "#deep_work", []string{"deep_work"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTags(tt.content))
		})
	}
}
