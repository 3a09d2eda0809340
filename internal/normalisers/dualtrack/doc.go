// Package dualtrack parses dual-track journal entries.
//
// A dual-track entry carries a "Project Log" narrative and a "Life Log"
// narrative in one Markdown document. Parser splits the two, picks the
// primary project tag and collects the declared next actions. TaskExtractor
// mines actionable bullets for when the analyzer reports none.
//
// The heuristics here are a fixed contract with existing journals: they are
// line scans and regular expressions, not a Markdown parser.
package dualtrack
