package config

import (
	"Go-Pantry-Assistant/internal/utils"
	"Go-Pantry-Assistant/pkg/chat"
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// NewModelClient builds the generative model client for the configured
// provider. Vertex AI reuses the Firebase service account.
func NewModelClient(ctx context.Context, cfg *utils.Config) (chat.ModelClient, error) {
	switch cfg.ModelProvider {
	case utils.ProviderOpenAI:
		return chat.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	case utils.ProviderVertex:
		data, err := os.ReadFile(cfg.FirebaseCredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("error reading credentials file: %w", err)
		}

		creds, err := google.CredentialsFromJSON(ctx, data, cloudPlatformScope)
		if err != nil {
			return nil, fmt.Errorf("error parsing google credentials: %w", err)
		}

		httpClient := oauth2.NewClient(ctx, creds.TokenSource)
		return chat.NewVertexClient(httpClient, cfg.GoogleCloudProject, cfg.VertexAILocation, cfg.VertexAIModel), nil
	default:
		return nil, fmt.Errorf("unknown model provider %q", cfg.ModelProvider)
	}
}
