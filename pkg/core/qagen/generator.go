// Package qagen turns filing text into question/answer training pairs via an
// LLM provider.
package qagen

import (
	"context"
	"fmt"

	"filingqa/pkg/core/agent"
	"filingqa/pkg/core/registry"
	"filingqa/pkg/core/utils"
	"filingqa/pkg/models"
)

// AIProvider interface for LLM interaction
type AIProvider interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}

// ProviderAdapter bridges the agent manager's provider layer to the narrower
// AIProvider contract the generator needs. Prompts go through
// Manager.ExecutePrompt so per-agent provider selection and instruction
// adaptation apply.
type ProviderAdapter struct {
	Manager   *agent.Manager
	AgentType string
	Options   map[string]interface{}
}

func (a *ProviderAdapter) Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	opts := a.Options
	if opts == nil {
		opts = map[string]interface{}{}
	}
	return a.Manager.ExecutePrompt(ctx, a.AgentType, userPrompt, systemPrompt, opts)
}

// Request describes one generation call.
type Request struct {
	Ticker       string
	Year         int
	MaxQuestions int
	Section      registry.Section // SectionMDA restricts grounding to Item 7
}

// DefaultMaxQuestions bounds a generation call when the request leaves
// MaxQuestions unset.
const DefaultMaxQuestions = 10

const systemPrompt = `You are an expert Financial Analyst preparing training data.
Your task is to write question/answer pairs strictly grounded in the SEC 10-K excerpt you are given.
Every answer must be verifiable from the excerpt alone. Do not use outside knowledge.
You must respond with JSON only, following the schema in the user message exactly.`

// Generator produces QA pairs from filing text.
type Generator struct {
	provider AIProvider
}

func NewGenerator(provider AIProvider) *Generator {
	return &Generator{provider: provider}
}

// Generate returns at most req.MaxQuestions pairs grounded in the requested
// section of the filing. Any provider or parse error is returned as-is; the
// orchestrator decides skip semantics.
func (g *Generator) Generate(ctx context.Context, filingText string, req Request) ([]models.QAPair, error) {
	if g.provider == nil {
		return nil, fmt.Errorf("no AI provider configured")
	}

	maxQ := req.MaxQuestions
	if maxQ <= 0 {
		maxQ = DefaultMaxQuestions
	}

	text, err := registry.SelectSection(filingText, req.Section)
	if err != nil {
		return nil, fmt.Errorf("section selection failed for %s FY%d: %w", req.Ticker, req.Year, err)
	}

	// MD&A alone can exceed the context budget; first 40k chars covers the
	// narrative discussion in practice
	if len(text) > 40000 {
		text = text[:40000] + "... [truncated]"
	}

	userPrompt := fmt.Sprintf(`Generate up to %d question/answer pairs about %s's fiscal year %d 10-K filing.
Requirements:
1. Questions must be answerable from the excerpt below.
2. Answers must be factual, specific, and cite figures where the excerpt provides them.
3. For each pair include a short "context" quote from the excerpt that supports the answer.

Excerpt:
%s

Return JSON:
{
  "pairs": [
    {"question": "string", "answer": "string", "context": "supporting quote"}
  ]
}`, maxQ, req.Ticker, req.Year, text)

	resp, err := g.provider.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("generation failed for %s FY%d: %w", req.Ticker, req.Year, err)
	}

	pairs, err := parsePairs(resp)
	if err != nil {
		return nil, fmt.Errorf("unparseable generator output for %s FY%d: %w", req.Ticker, req.Year, err)
	}

	// Enforce the requested bound even when the model overshoots
	if len(pairs) > maxQ {
		pairs = pairs[:maxQ]
	}
	return pairs, nil
}

type pairsResponse struct {
	Pairs []models.QAPair `json:"pairs"`
}

// parsePairs decodes the model's JSON, repairing common LLM formatting damage
// first, and drops structurally empty entries.
func parsePairs(raw string) ([]models.QAPair, error) {
	cleaned := utils.CleanMarkdown(raw)

	var resp pairsResponse
	if _, err := utils.SmartParse(cleaned, &resp); err != nil {
		return nil, err
	}

	valid := make([]models.QAPair, 0, len(resp.Pairs))
	for _, p := range resp.Pairs {
		if p.Question == "" || p.Answer == "" {
			continue
		}
		valid = append(valid, p)
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("generator returned no usable pairs")
	}
	return valid, nil
}
