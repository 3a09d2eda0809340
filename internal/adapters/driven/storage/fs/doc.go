// Package fs provides filesystem implementations of the pipeline's driven ports.
//
// All paths are relative to the data directory:
//
//	inbox/<date>_<id>.md      entry body with YAML frontmatter
//	inbox/<date>_<id>.json    analysis sidecar
//	projects/<tag>.md         per-project log
//	life/life_log_<period>.md per-period life log
//	archive/lifeos_db.json    JSON export of the archive
//	archive/system_state.json derived state
//	status/latest_actions.json next actions per project
//
// Whole-file writes go through a temp file and a rename so readers never
// see a partial file. Log appends use O_APPEND.
package fs
