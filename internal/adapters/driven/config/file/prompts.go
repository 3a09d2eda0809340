package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// PromptStore loads analyzer prompts from user-editable files on disk,
// falling back to embedded defaults.
//
// Files are only created on the first Load, not in the constructor.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	cache     map[string]string
	initOnce  sync.Once
	initErr   error
}

// prompt is an embedded default plus the placeholders an edited copy must keep.
type prompt struct {
	text         string
	placeholders int
}

//nolint:lll // Prompt content is intentionally long and should not be wrapped.
var defaultPrompts = map[string]prompt{
	driven.PromptAnalyzeEntry: {placeholders: 1, text: `You are the parser for LifeOS. Convert the raw "Dual-Track" journal below into structured JSON.

### Input Text:
%s

### Extraction Logic:
1. Project Intelligence: 'name_candidates', 'signals', 'blind_spots', 'open_nodes' under "project_data".
2. Action Extraction: 'action_items' from "Tomorrow's MIT" or "Next Steps", each {"task", "priority" (High|Med|Low), "context"}.
3. Life Telemetry: 'energy_stability', 'relationship_presence', 'baseline_safety' under "life_data".

### Output Format (strict JSON, no prose):
{
  "mood": 5.0, "focus": 5.0, "tags": [], "action_items": [],
  "project_data": {}, "life_data": {}, "summary": "..."
}`},
}

// NewPromptStore creates a new file-based prompt store.
// If promptDir is empty, defaults to ~/.lifeos/prompts/.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(DefaultDir(home), "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
	}, nil
}

// Load returns the prompt template for the given name.
// An edited file that lost its %s placeholder is ignored in favour of the default.
func (s *PromptStore) Load(name string) (string, error) {
	s.initOnce.Do(s.initialise)

	def, known := defaultPrompts[name]
	if s.initErr != nil {
		if known {
			return def.text, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	s.mu.RLock()
	if cached, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	text, err := s.loadFromFile(name)
	switch {
	case err != nil && known:
		return def.text, nil
	case err != nil:
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	case known && strings.Count(text, "%s") != def.placeholders:
		return def.text, nil
	}

	s.mu.Lock()
	if existing, ok := s.cache[name]; ok {
		text = existing
	} else {
		s.cache[name] = text
	}
	s.mu.Unlock()

	return text, nil
}

// Reload clears the prompt cache, forcing fresh loads from disk.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

// initialise creates the prompt directory, default files and a README.
func (s *PromptStore) initialise() {
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	for name, def := range defaultPrompts {
		path := filepath.Join(s.promptDir, name+".txt")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(def.text), 0600); err != nil {
				s.initErr = fmt.Errorf("create default prompt %q: %w", name, err)
				return
			}
		}
	}

	if err := s.createReadme(); err != nil {
		s.initErr = err
	}
}

func (s *PromptStore) loadFromFile(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.promptDir, name+".txt"))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *PromptStore) createReadme() error {
	path := filepath.Join(s.promptDir, "README.md")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil
	}

	content := `# LifeOS Prompts

This directory contains the prompt sent to the analyzer when an entry is captured.

## Files

- ` + "`analyze_entry.txt`" + ` - Turns a dual-track entry into the analysis JSON

## Customisation

Edit the file to change what the analyzer extracts. Changes take effect on the
next capture.

The prompt must keep exactly one ` + "`%s`" + ` placeholder, where the entry text is
inserted. A prompt without it is ignored and the built-in one is used.

The analyzer must answer with a JSON object. Keys the pipeline reads are
mood, focus, tags, action_items, project_data, life_data and summary; any
other keys are kept in the archive as-is.
`
	return os.WriteFile(path, []byte(content), 0600)
}
