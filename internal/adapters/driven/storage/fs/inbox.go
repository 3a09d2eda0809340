package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tidwall/jsonc"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
)

// Ensure Inbox implements the interface.
var _ driven.Inbox = (*Inbox)(nil)

const (
	markdownExt = ".md"
	sidecarExt  = ".json"
)

// Frontmatter keys with a dedicated RawEntry field. Others go to Extra.
var reservedFrontmatter = map[string]bool{
	"id":   true,
	"uuid": true,
	"date": true,
	"tags": true,
}

// Inbox stores pending entries as a Markdown body plus a JSON sidecar
// sharing the file stem. Either file alone is a valid entry.
type Inbox struct {
	dir string
}

// NewInbox creates an inbox rooted at dir. The directory is created on first write.
func NewInbox(dir string) *Inbox {
	return &Inbox{dir: dir}
}

// Dir returns the inbox directory.
func (in *Inbox) Dir() string {
	return in.dir
}

// sidecar is the JSON file written next to each body.
// Older sidecars use "uuid" for the id and "note" for the text.
type sidecar struct {
	ID        string         `json:"id,omitempty"`
	UUID      string         `json:"uuid,omitempty"`
	Date      string         `json:"date,omitempty"`
	RawText   string         `json:"raw_text,omitempty"`
	Note      string         `json:"note,omitempty"`
	Analysis  map[string]any `json:"analysis"`
	Embedding []float32      `json:"embedding"`
}

// List reads every entry in name order. Unreadable files are reported in
// the listing and left in place; a missing inbox is empty.
func (in *Inbox) List(ctx context.Context) (*driven.InboxListing, error) {
	files, err := os.ReadDir(in.dir)
	if errors.Is(err, os.ErrNotExist) {
		return &driven.InboxListing{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading inbox: %w", err)
	}

	stems := make(map[string]*domain.RawEntry)
	for _, f := range files {
		name := f.Name()
		if f.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		ext := filepath.Ext(name)
		if ext != markdownExt && ext != sidecarExt {
			continue
		}
		stem := strings.TrimSuffix(name, ext)
		entry, ok := stems[stem]
		if !ok {
			entry = &domain.RawEntry{}
			stems[stem] = entry
		}
		path := filepath.Join(in.dir, name)
		if ext == markdownExt {
			entry.MarkdownPath = path
		} else {
			entry.SidecarPath = path
		}
	}

	names := make([]string, 0, len(stems))
	for stem := range stems {
		names = append(names, stem)
	}
	sort.Strings(names)

	listing := &driven.InboxListing{}
	for _, stem := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entry := stems[stem]
		if path, err := in.load(entry); err != nil {
			listing.Skipped = append(listing.Skipped, driven.SkippedFile{Path: path, Err: err})
			continue
		}
		listing.Entries = append(listing.Entries, *entry)
	}
	return listing, nil
}

// load fills entry from its files. On failure it returns the offending path.
func (in *Inbox) load(entry *domain.RawEntry) (string, error) {
	if entry.SidecarPath != "" {
		if err := loadSidecar(entry); err != nil {
			return entry.SidecarPath, err
		}
	}
	if entry.MarkdownPath != "" {
		if err := loadMarkdown(entry); err != nil {
			return entry.MarkdownPath, err
		}
	}
	return "", nil
}

func loadSidecar(entry *domain.RawEntry) error {
	data, err := os.ReadFile(entry.SidecarPath)
	if err != nil {
		return err
	}
	var sc sidecar
	if err := json.Unmarshal(jsonc.ToJSON(data), &sc); err != nil {
		return fmt.Errorf("decoding sidecar: %w", err)
	}

	entry.ID = firstNonEmpty(sc.ID, sc.UUID)
	entry.RawText = firstNonEmpty(sc.RawText, sc.Note)
	entry.Analysis = domain.AnalysisFromMap(sc.Analysis)
	entry.Embedding = sc.Embedding
	entry.Date = sc.Date
	if entry.Date == "" && sc.Analysis != nil {
		entry.Date, _ = sc.Analysis["date"].(string)
	}
	return nil
}

// loadMarkdown reads the body. Frontmatter values take precedence over the sidecar.
func loadMarkdown(entry *domain.RawEntry) error {
	data, err := os.ReadFile(entry.MarkdownPath)
	if err != nil {
		return err
	}
	meta, body, err := splitFrontmatter(data)
	if err != nil {
		return err
	}

	if body = strings.TrimSpace(body); body != "" {
		entry.RawText = body
	}
	if id := firstNonEmpty(metaString(meta["id"]), metaString(meta["uuid"])); id != "" {
		entry.ID = id
	}
	if date := metaString(meta["date"]); date != "" {
		entry.Date = date
	}
	if tags := domain.AsStrings(meta["tags"]); len(tags) > 0 {
		entry.Tags = tags
	}
	for k, v := range meta {
		if reservedFrontmatter[k] {
			continue
		}
		if entry.Extra == nil {
			entry.Extra = make(map[string]any)
		}
		entry.Extra[k] = v
	}
	return nil
}

// Put writes the sidecar, then the body, under <date>_<id>.
func (in *Inbox) Put(_ context.Context, entry *domain.RawEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("%w: entry has no id", domain.ErrInvalidInput)
	}
	base := filepath.Join(in.dir, entry.Date+"_"+entry.ID)

	embedding := entry.Embedding
	if embedding == nil {
		embedding = []float32{}
	}
	sc := sidecar{
		UUID:      entry.ID,
		Date:      entry.Date,
		RawText:   entry.RawText,
		Analysis:  entry.Analysis.ToMap(),
		Embedding: embedding,
	}
	if err := writeJSON(base+sidecarExt, sc); err != nil {
		return fmt.Errorf("writing sidecar: %w", err)
	}

	meta := entryFrontmatter{UUID: entry.ID, Date: entry.Date}
	if entry.Analysis != nil {
		meta.Mood = entry.Analysis.Mood
	}
	body, err := joinFrontmatter(meta, entry.RawText)
	if err != nil {
		return err
	}
	if err := WriteFileAtomic(base+markdownExt, body, 0644); err != nil {
		return fmt.Errorf("writing body: %w", err)
	}

	entry.SidecarPath = base + sidecarExt
	entry.MarkdownPath = base + markdownExt
	return nil
}

// Remove deletes the entry's files. Already-missing files are not an error.
func (in *Inbox) Remove(_ context.Context, entry domain.RawEntry) error {
	var errs []error
	for _, path := range entry.Files() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// metaString renders a scalar frontmatter value as a string.
// YAML timestamps become ISO dates.
func metaString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case time.Time:
		return s.Format(domain.DateLayout)
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
