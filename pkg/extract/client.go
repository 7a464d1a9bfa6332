package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	openAIBaseURL    = "https://api.openai.com/v1"
	extractMaxTokens = 2000
)

var ErrExtractorDisabled = fmt.Errorf("lineup extraction is not configured")

const extractionPrompt = `Extract the festival lineup information from this image. Return ONLY valid JSON with this exact structure (no markdown, no extra text):
{
  "festivalName": "name of festival if visible",
  "date": "YYYY-MM-DD format if visible",
  "stages": [
    {
      "name": "stage name",
      "artists": [
        {
          "name": "artist name",
          "startTime": "HH:MM in 24hr format if visible",
          "endTime": "HH:MM in 24hr format if visible"
        }
      ]
    }
  ]
}

If you can't determine something, use reasonable defaults like "Main Stage" for stage name. Extract ALL artist names you can see.`

// Client recovers a structured lineup from a poster image.
type Client interface {
	ExtractLineup(ctx context.Context, imageDataURI string) (ExtractedLineup, error)
}

// OpenAIClient talks to the OpenAI chat completions API with a vision prompt.
type OpenAIClient struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewOpenAIClient(apiKey string, model string) *OpenAIClient {
	return &OpenAIClient{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type chatMessagePart struct {
	Type     string         `json:"type"`
	Text     string         `json:"text,omitempty"`
	ImageURL *chatImagePart `json:"image_url,omitempty"`
}

type chatImagePart struct {
	URL string `json:"url"`
}

type chatMessage struct {
	Role    string            `json:"role"`
	Content []chatMessagePart `json:"content"`
}

type chatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ExtractLineup sends the poster image to the vision model and parses the
// JSON lineup from its reply.
func (c *OpenAIClient) ExtractLineup(ctx context.Context, imageDataURI string) (ExtractedLineup, error) {
	if c.apiKey == "" {
		return ExtractedLineup{}, ErrExtractorDisabled
	}

	requestBody := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{
				Role: "user",
				Content: []chatMessagePart{
					{Type: "text", Text: extractionPrompt},
					{Type: "image_url", ImageURL: &chatImagePart{URL: imageDataURI}},
				},
			},
		},
		MaxTokens: extractMaxTokens,
	}
	payload, err := json.Marshal(requestBody)
	if err != nil {
		return ExtractedLineup{}, fmt.Errorf("failed to marshal extraction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", openAIBaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		log.Errorf("Failed to create request: %v", err)
		return ExtractedLineup{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("Failed to execute request: %v", err)
		return ExtractedLineup{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("OpenAI API returned non-OK status: %d", resp.StatusCode)
		log.Error(err)
		return ExtractedLineup{}, err
	}

	var response chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		log.Errorf("Failed to decode response: %v", err)
		return ExtractedLineup{}, err
	}
	if len(response.Choices) == 0 {
		return ExtractedLineup{}, fmt.Errorf("OpenAI API returned no choices")
	}

	content := stripJSONFence(response.Choices[0].Message.Content)
	var lineup ExtractedLineup
	if err := json.Unmarshal([]byte(content), &lineup); err != nil {
		log.Errorf("Failed to parse extracted lineup: %v", err)
		return ExtractedLineup{}, fmt.Errorf("model returned invalid lineup JSON: %w", err)
	}

	return lineup, nil
}
