package chat

import (
	"Go-Pantry-Assistant/domain"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// responseShape is one known layout of a model reply. extract reports false
// when the payload is not in that layout or carries no text.
type responseShape struct {
	name    string
	extract func(raw []byte) (string, bool)
}

// responseShapes is tried in order; the first match wins.
var responseShapes = []responseShape{
	{name: "text", extract: extractDirectText},
	{name: "candidates", extract: extractCandidateText},
	{name: "choices", extract: extractChoiceText},
	{name: "string", extract: extractStringRendering},
}

// ExtractText pulls the reply text out of a raw model payload. Payloads that
// match none of the known shapes fail with domain.ErrUnrecognizedResponse
// instead of being passed through verbatim.
func ExtractText(raw []byte) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", domain.ErrEmptyModelResponse
	}

	for _, shape := range responseShapes {
		if text, ok := shape.extract(trimmed); ok {
			return text, nil
		}
	}

	return "", fmt.Errorf("%w: %s", domain.ErrUnrecognizedResponse, preview(string(trimmed), 200))
}

func extractDirectText(raw []byte) (string, bool) {
	var payload struct {
		Text *string `json:"text"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || payload.Text == nil {
		return "", false
	}
	return *payload.Text, *payload.Text != ""
}

func extractCandidateText(raw []byte) (string, bool) {
	var payload struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || len(payload.Candidates) == 0 {
		return "", false
	}

	var sb strings.Builder
	for _, part := range payload.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), sb.Len() > 0
}

func extractChoiceText(raw []byte) (string, bool) {
	var payload struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || len(payload.Choices) == 0 {
		return "", false
	}
	content := payload.Choices[0].Message.Content
	return content, content != ""
}

// extractStringRendering accepts a payload that is itself the reply: a bare
// JSON string or plain text. Any other JSON value is not a reply.
func extractStringRendering(raw []byte) (string, bool) {
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		s = strings.TrimSpace(s)
		return s, s != ""
	}

	if json.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
