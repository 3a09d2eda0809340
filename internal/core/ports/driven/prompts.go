package driven

// PromptStore provides access to analyzer prompt templates.
// Implementations may load prompts from files or embed them in the binary.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// If the prompt is not found, implementations should return a sensible default
	// or an error, depending on whether the prompt is required.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	Reload()
}

// Well-known prompt names.
const (
	// PromptAnalyzeEntry turns a dual-track entry into the analysis JSON.
	// The template expects one %s placeholder for the entry text.
	PromptAnalyzeEntry = "analyze_entry"
)
