package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/recipe-genie/backend/config"
)

const (
	chatModel     = "gpt-4o-2024-05-13"
	chatMaxTokens = 500
)

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest represents a request to the chat completions API
type chatRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

// chatResponse is the subset of the chat completions response we consume
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// LLMService invokes the remote text-generation capability. One call per
// request, bounded output, no retry: a failed call is terminal for the
// pipeline.
type LLMService struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewLLMService creates a new LLMService instance
func NewLLMService(cfg *config.Config) (*LLMService, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY or OPENAI_API_KEY_FILE must be set")
	}

	return &LLMService{
		apiKey: cfg.OpenAIAPIKey,
		apiURL: cfg.OpenAIChatURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

// GenerateRecipeText sends the compiled prompt to the text model and
// returns the raw free-text candidate.
func (s *LLMService) GenerateRecipeText(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: chatModel,
		Messages: []Message{
			{Role: "system", Content: "You are a professional and experienced chef."},
			{Role: "user", Content: prompt},
		},
		MaxTokens: chatMaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[LLMService] API request failed with status %d: %s", resp.StatusCode, string(body))
		return "", fmt.Errorf("%w: API request failed with status %d", ErrGenerationFailed, resp.StatusCode)
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", ErrGenerationFailed
	}

	return result.Choices[0].Message.Content, nil
}
