package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type vertexClient struct {
	httpClient *http.Client
	endpoint   string
}

// NewVertexClient calls the Vertex AI generateContent endpoint. httpClient
// must attach Google credentials, e.g. one built with golang.org/x/oauth2/google.
func NewVertexClient(httpClient *http.Client, project, location, model string) ModelClient {
	return &vertexClient{
		httpClient: httpClient,
		endpoint:   VertexEndpoint(project, location, model),
	}
}

func VertexEndpoint(project, location, model string) string {
	host := fmt.Sprintf("%s-aiplatform.googleapis.com", location)
	if location == "global" {
		host = "aiplatform.googleapis.com"
	}
	return fmt.Sprintf(
		"https://%s/v1/projects/%s/locations/%s/publishers/google/models/%s:generateContent",
		host, project, location, model,
	)
}

func (c *vertexClient) GenerateContent(ctx context.Context, prompt string) ([]byte, error) {
	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vertex AI error: %s - %s", resp.Status, string(body))
	}

	return body, nil
}
