package chat

import (
	"context"
)

// ModelClient sends a single non-streaming prompt and returns the provider's
// raw response payload. Text extraction is left to ExtractText.
type ModelClient interface {
	GenerateContent(ctx context.Context, prompt string) ([]byte, error)
}
