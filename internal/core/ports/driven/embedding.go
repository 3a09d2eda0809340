package driven

import "context"

// EmbeddingService turns entry text into a vector stored with its archive
// record. It is optional: with no service configured, records are archived
// without a vector.
type EmbeddingService interface {
	Embed(ctx context.Context, text string) ([]float32, error)

	// ModelName is recorded next to each vector so mixed models can be told apart.
	ModelName() string
}
