package qagen

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DirectGeminiClient is an AIProvider backed by a persistent Gemini client.
// Unlike llm.GeminiProvider it holds the client across calls, which matters
// when generating for a whole registry in one run.
type DirectGeminiClient struct {
	client    *genai.Client
	modelName string
}

var _ AIProvider = (*DirectGeminiClient)(nil)

func NewDirectGeminiClient(ctx context.Context, modelName string) (*DirectGeminiClient, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}

	if modelName == "" {
		modelName = "gemini-2.0-flash-exp"
	}

	return &DirectGeminiClient{
		client:    client,
		modelName: modelName,
	}, nil
}

func (c *DirectGeminiClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	model := c.client.GenerativeModel(c.modelName)
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"
	if systemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemPrompt)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", err
	}

	return extractText(resp)
}

// extractText concatenates the text parts of the first candidate. Non-text
// parts (inline blobs, function calls) are ignored.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String(), nil
}

// Close releases the underlying client connection.
func (c *DirectGeminiClient) Close() error {
	return c.client.Close()
}
