package fs

import (
	"context"
	"path/filepath"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
)

// Ensure JSONExporter implements the interface.
var _ driven.ArchiveExporter = (*JSONExporter)(nil)

// JSONExporter writes the archive as a JSON array for downstream readers.
// Embeddings are left out. Extra frontmatter fields are flattened into
// each object; the named columns win on a clash.
type JSONExporter struct {
	path string
}

// NewJSONExporter creates an exporter writing to archive/lifeos_db.json.
func NewJSONExporter(paths domain.PathSettings) *JSONExporter {
	return &JSONExporter{path: filepath.Join(paths.ArchiveDir(), ExportFile)}
}

// Path returns the export file.
func (e *JSONExporter) Path() string {
	return e.path
}

// Export replaces the export with records.
func (e *JSONExporter) Export(_ context.Context, records []domain.ArchiveRecord) error {
	rows := make([]map[string]any, 0, len(records))
	for i := range records {
		rows = append(rows, exportRow(&records[i]))
	}
	return writeJSON(e.path, rows)
}

func exportRow(r *domain.ArchiveRecord) map[string]any {
	row := make(map[string]any, len(r.Extra)+10)
	for k, v := range r.Extra {
		row[k] = v
	}
	row["uuid"] = r.ID
	row["date"] = r.Date
	row["content"] = r.Content
	row["mood"] = r.Mood
	row["tags"] = r.Tags
	row["summary"] = r.Summary
	row["action_items"] = r.ActionItems
	row["project_data"] = r.ProjectData
	row["life_data"] = r.LifeData
	row["ai_analysis"] = r.Analysis
	return row
}
