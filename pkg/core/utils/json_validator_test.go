package utils

import (
	"testing"
)

type qaPayload struct {
	Pairs []struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	} `json:"pairs"`
}

func TestSmartParseValidJSON(t *testing.T) {
	var out qaPayload
	input := `{"pairs": [{"question": "Q?", "answer": "A"}]}`

	if _, err := SmartParse(input, &out); err != nil {
		t.Fatalf("SmartParse failed on valid JSON: %v", err)
	}
	if len(out.Pairs) != 1 || out.Pairs[0].Question != "Q?" {
		t.Errorf("Parse result wrong: %+v", out)
	}
}

func TestSmartParseRepairsTrailingComma(t *testing.T) {
	var out qaPayload
	input := `{"pairs": [{"question": "Q?", "answer": "A",},]}`

	if _, err := SmartParse(input, &out); err != nil {
		t.Fatalf("SmartParse failed on repairable JSON: %v", err)
	}
	if len(out.Pairs) != 1 {
		t.Errorf("Expected 1 pair after repair, got %d", len(out.Pairs))
	}
}

func TestSmartParseHjsonFallback(t *testing.T) {
	var out map[string]interface{}
	// Unquoted keys and a comment: only the Hjson path accepts this
	input := "{\n  # generator metadata\n  provider: gemini\n  count: 3\n}"

	if _, err := SmartParse(input, &out); err != nil {
		t.Fatalf("SmartParse failed on hjson input: %v", err)
	}
	if out["provider"] != "gemini" {
		t.Errorf("Hjson parse wrong: %+v", out)
	}
}

func TestSmartParseGarbageFails(t *testing.T) {
	var out qaPayload
	if _, err := SmartParse("complete nonsense {{{", &out); err == nil {
		t.Error("Expected failure on unparseable input")
	}
}

func TestCleanMarkdownStripsFences(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\": 1}\n```":  `{"a": 1}`,
		"```markdown\n# Title\n```": "# Title",
		"```\nplain fenced\n```":    "plain fenced",
		"  no fences at all  ":     "no fences at all",
	}
	for input, want := range cases {
		if got := CleanMarkdown(input); got != want {
			t.Errorf("CleanMarkdown(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestValidateMarkdown(t *testing.T) {
	if !ValidateMarkdown("# Heading\n\nBody text.") {
		t.Error("Expected valid markdown to pass")
	}
}
