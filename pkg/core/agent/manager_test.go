package agent

import (
	"context"
	"testing"

	"filingqa/pkg/core/llm"

	"gopkg.in/yaml.v2"
)

type fakeProvider struct {
	lastPrompt       string
	lastSystemPrompt string
	lastOptions      map[string]interface{}
}

func (p *fakeProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	p.lastPrompt = prompt
	p.lastSystemPrompt = systemPrompt
	p.lastOptions = options
	return "ok", nil
}

func (p *fakeProvider) AdaptInstructions(raw string) string {
	return "adapted: " + raw
}

func TestExecutePromptAdaptsInstructions(t *testing.T) {
	fake := &fakeProvider{}
	m := &Manager{
		config:    Config{ActiveProvider: "fake"},
		providers: map[string]llm.Provider{"fake": fake},
	}

	opts := map[string]interface{}{"model": "m1"}
	got, err := m.ExecutePrompt(context.Background(), "qa_generator", "user prompt", "raw system", opts)
	if err != nil {
		t.Fatalf("ExecutePrompt failed: %v", err)
	}
	if got != "ok" {
		t.Errorf("ExecutePrompt = %q", got)
	}
	if fake.lastSystemPrompt != "adapted: raw system" {
		t.Errorf("System prompt not adapted: %q", fake.lastSystemPrompt)
	}
	if fake.lastPrompt != "user prompt" {
		t.Errorf("Prompt = %q", fake.lastPrompt)
	}
	if fake.lastOptions["model"] != "m1" {
		t.Errorf("Options not forwarded: %+v", fake.lastOptions)
	}
}

func TestGetProviderAgentOverride(t *testing.T) {
	cfg := Config{
		ActiveProvider: "gemini",
		Agents: map[string]AgentConfig{
			"qa_generator": {Provider: "deepseek"},
		},
	}
	m := NewManager(cfg)

	if p := m.GetProvider("qa_generator"); p != m.GetProviderByName("deepseek") {
		t.Error("Agent override not honored")
	}
	if p := m.GetProvider("other_agent"); p != m.GetProviderByName("gemini") {
		t.Error("Global provider not used for unconfigured agent")
	}
}

func TestGetProviderFallback(t *testing.T) {
	m := NewManager(Config{ActiveProvider: "does-not-exist"})
	if p := m.GetProvider("anything"); p == nil {
		t.Error("Expected fallback provider, got nil")
	}
}

func TestSetGlobalProvider(t *testing.T) {
	m := NewManager(Config{ActiveProvider: "gemini"})

	if err := m.SetGlobalProvider("deepseek"); err != nil {
		t.Fatalf("SetGlobalProvider failed: %v", err)
	}
	if m.GetActiveProvider() != "deepseek" {
		t.Errorf("Active provider = %s, want deepseek", m.GetActiveProvider())
	}

	if err := m.SetGlobalProvider("unknown"); err == nil {
		t.Error("Expected error for unknown provider")
	}
}

func TestConfigUnmarshalsFromYAML(t *testing.T) {
	raw := `
active_provider: deepseek
agents:
  qa_generator:
    provider: gemini
    model: gemini-2.0-flash-exp
    description: QA generation
`
	var cfg Config
	if err := yaml.Unmarshal([]byte(raw), &cfg); err != nil {
		t.Fatalf("yaml.Unmarshal failed: %v", err)
	}
	if cfg.ActiveProvider != "deepseek" {
		t.Errorf("ActiveProvider = %s", cfg.ActiveProvider)
	}
	if cfg.Agents["qa_generator"].Provider != "gemini" || cfg.Agents["qa_generator"].Model != "gemini-2.0-flash-exp" {
		t.Errorf("Agent config wrong: %+v", cfg.Agents["qa_generator"])
	}
}
