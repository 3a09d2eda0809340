package domain

// UncategorizedTag is the primary project when an entry has no usable tag.
const UncategorizedTag = "Uncategorized"

// ParsedSections is the project/life split of one entry's text.
// It is derived on demand and never persisted on its own.
type ParsedSections struct {
	Project ProjectSection
	Life    LifeSection
}

// ProjectSection is the "Project Log" part of a dual-track entry.
type ProjectSection struct {
	// PrimaryTag is the first usable tag, or UncategorizedTag.
	PrimaryTag string

	// Tags are every tag in the section, in order of first appearance.
	Tags []string

	// Content is the section body, trimmed.
	Content string

	// NextActions are the bullets under the next-actions heading.
	NextActions []string
}

// LifeSection is the "Life Log" part of a dual-track entry.
type LifeSection struct {
	Content string
}

// HasProject reports whether the entry carried any project text.
func (p ParsedSections) HasProject() bool {
	return p.Project.Content != ""
}

// NextActionStatus is the latest next-actions report for one project.
type NextActionStatus struct {
	Date    string   `json:"date"`
	Actions []string `json:"actions"`
}
