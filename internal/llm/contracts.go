package llm

import "context"

// Generator is the interface the extraction pipeline depends on. One call
// answers one field prompt against one document's text.
type Generator interface {
	Generate(ctx context.Context, documentText, prompt string) (string, error)
}
