package columnar

import (
	"fmt"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
)

// columns is the payload: one array per record field, all of length Rows.
type columns struct {
	Rows        int                   `cbor:"rows"`
	ID          []string              `cbor:"id"`
	Date        []string              `cbor:"date"`
	Content     []string              `cbor:"content"`
	Mood        []*float64            `cbor:"mood"`
	Tags        [][]string            `cbor:"tags"`
	Summary     []string              `cbor:"summary"`
	ActionItems [][]domain.ActionItem `cbor:"action_items"`
	ProjectData []map[string]any      `cbor:"project_data"`
	LifeData    []map[string]any      `cbor:"life_data"`
	Analysis    []map[string]any      `cbor:"analysis"`
	Embedding   [][]float32           `cbor:"embedding"`
	Extra       []map[string]any      `cbor:"extra"`
}

func toColumns(records []domain.ArchiveRecord) columns {
	n := len(records)
	c := columns{
		Rows:        n,
		ID:          make([]string, n),
		Date:        make([]string, n),
		Content:     make([]string, n),
		Mood:        make([]*float64, n),
		Tags:        make([][]string, n),
		Summary:     make([]string, n),
		ActionItems: make([][]domain.ActionItem, n),
		ProjectData: make([]map[string]any, n),
		LifeData:    make([]map[string]any, n),
		Analysis:    make([]map[string]any, n),
		Embedding:   make([][]float32, n),
		Extra:       make([]map[string]any, n),
	}
	for i := range records {
		r := &records[i]
		c.ID[i] = r.ID
		c.Date[i] = r.Date
		c.Content[i] = r.Content
		c.Mood[i] = r.Mood
		c.Tags[i] = r.Tags
		c.Summary[i] = r.Summary
		c.ActionItems[i] = r.ActionItems
		c.ProjectData[i] = r.ProjectData
		c.LifeData[i] = r.LifeData
		c.Analysis[i] = r.Analysis
		c.Embedding[i] = r.Embedding
		c.Extra[i] = r.Extra
	}
	return c
}

func (c *columns) records() ([]domain.ArchiveRecord, error) {
	n := c.Rows
	lengths := map[string]int{
		"id":           len(c.ID),
		"date":         len(c.Date),
		"content":      len(c.Content),
		"mood":         len(c.Mood),
		"tags":         len(c.Tags),
		"summary":      len(c.Summary),
		"action_items": len(c.ActionItems),
		"project_data": len(c.ProjectData),
		"life_data":    len(c.LifeData),
		"analysis":     len(c.Analysis),
		"embedding":    len(c.Embedding),
		"extra":        len(c.Extra),
	}
	for name, l := range lengths {
		if l != n {
			return nil, fmt.Errorf("column %s has %d rows, expected %d", name, l, n)
		}
	}

	records := make([]domain.ArchiveRecord, n)
	for i := range records {
		records[i] = domain.ArchiveRecord{
			ID:          c.ID[i],
			Date:        c.Date[i],
			Content:     c.Content[i],
			Mood:        c.Mood[i],
			Tags:        c.Tags[i],
			Summary:     c.Summary[i],
			ActionItems: c.ActionItems[i],
			ProjectData: c.ProjectData[i],
			LifeData:    c.LifeData[i],
			Analysis:    c.Analysis[i],
			Embedding:   c.Embedding[i],
			Extra:       c.Extra[i],
		}
	}
	return records, nil
}
