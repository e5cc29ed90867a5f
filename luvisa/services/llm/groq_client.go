// luvisa/services/llm/groq_client.go
package llm

import (
	"context"
	"fmt"
	httputils "luvisa/luvisa/utils/http"
	"luvisa/luvisa/utils/logging"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
	TopP        float64   `json:"top_p"`
}

// Completer is the completion API boundary: one best-effort attempt,
// raw text of the first choice on success.
type Completer interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

type GroqClient struct {
	baseURL string
	apiKey  string
}

// NewGroqClient returns a client pointing to the Groq Chat endpoint.
func NewGroqClient(apiKey string) *GroqClient {
	// Groq's OpenAI-compatible base path
	return &GroqClient{
		baseURL: "https://api.groq.com/openai/v1",
		apiKey:  apiKey,
	}
}

func (c *GroqClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	defer logging.LogDuration(ctx, "groq_complete")()

	url := fmt.Sprintf("%s/chat/completions", c.baseURL)

	var resp struct {
		ID      string `json:"id"`
		Object  string `json:"object"`
		Created int64  `json:"created"`
		Model   string `json:"model"`
		Choices []struct {
			Message Message `json:"message"`
		} `json:"choices"`
	}

	if err := httputils.PostJSONWithAuth(ctx, url, c.apiKey, req, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) > 0 {
		return resp.Choices[0].Message.Content, nil
	}
	return "", fmt.Errorf("no choices returned")
}
