package e2e_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"filingqa/pkg/core/pipeline"
	"filingqa/pkg/core/qagen"
	"filingqa/pkg/core/registry"
	"filingqa/pkg/core/store"
	"filingqa/pkg/core/writer"
)

// scriptedProvider returns canned JSON per ticker, erroring for tickers in
// failFor. Stands in for the live LLM so the full pipeline wiring runs
// deterministically.
type scriptedProvider struct {
	failFor map[string]bool
}

func (p *scriptedProvider) Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	for ticker := range p.failFor {
		if strings.Contains(userPrompt, ticker) {
			return "", fmt.Errorf("simulated provider outage")
		}
	}
	return `{"pairs": [
		{"question": "What drove revenue growth?", "answer": "Product demand.", "context": "Revenue commentary"},
		{"question": "What is the margin trend?", "answer": "Improving.", "context": "Margin commentary"}
	]}`, nil
}

func writeFilingFixtures(t *testing.T) (string, []registry.FilingDescriptor) {
	t.Helper()
	dir := t.TempDir()
	descriptors := []registry.FilingDescriptor{
		{Filename: "alpha_10k.md", Company: "Alpha Corp", Ticker: "ALPH", Year: 2024, LocalPath: "alpha_10k.md"},
		{Filename: "beta_10k.md", Company: "Beta Inc", Ticker: "BETA", Year: 2024, LocalPath: "beta_10k.md"},
		{Filename: "gamma_10k.md", Company: "Gamma Ltd", Ticker: "GAMM", Year: 2023, LocalPath: "gamma_10k.md"},
	}
	for _, d := range descriptors {
		body := "# Annual Report\n\n## Item 7. Management's Discussion and Analysis\n\nRevenue commentary. Margin commentary.\n\n## Item 8. Financial Statements\n\nTables.\n"
		if err := os.WriteFile(filepath.Join(dir, d.LocalPath), []byte(body), 0644); err != nil {
			t.Fatalf("fixture setup failed: %v", err)
		}
	}
	return dir, descriptors
}

func TestFullPipelineProducesDataset(t *testing.T) {
	dir, descriptors := writeFilingFixtures(t)

	filings, err := registry.Resolve(descriptors, dir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	outPath := filepath.Join(t.TempDir(), "qa_dataset.jsonl")
	out, err := writer.Create(outPath)
	if err != nil {
		t.Fatalf("writer.Create failed: %v", err)
	}

	generator := qagen.NewGenerator(&scriptedProvider{})
	orch := pipeline.NewOrchestrator(generator, out, pipeline.Config{
		MaxQuestions: 5,
		Section:      registry.SectionMDA,
		ProviderName: "scripted",
	})
	orch.SetRepository(store.NewDatasetStore(nil, t.TempDir()))

	summary, err := orch.Run(context.Background(), filings)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if summary.Processed != 3 || summary.Records != 6 {
		t.Errorf("Summary wrong: %+v", summary)
	}

	records, err := writer.ReadRecords(outPath)
	if err != nil {
		t.Fatalf("ReadRecords failed: %v", err)
	}
	if len(records) != 6 {
		t.Fatalf("Expected 6 output lines, got %d", len(records))
	}
	for _, rec := range records {
		if !filepath.IsAbs(rec.SourceFile) {
			t.Errorf("source_file not absolute: %s", rec.SourceFile)
		}
		if rec.Question == "" || rec.Answer == "" {
			t.Errorf("Incomplete record: %+v", rec)
		}
	}
}

func TestFullPipelineIsolatesFailures(t *testing.T) {
	dir, descriptors := writeFilingFixtures(t)

	filings, err := registry.Resolve(descriptors, dir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	outPath := filepath.Join(t.TempDir(), "qa_dataset.jsonl")
	out, err := writer.Create(outPath)
	if err != nil {
		t.Fatalf("writer.Create failed: %v", err)
	}

	generator := qagen.NewGenerator(&scriptedProvider{failFor: map[string]bool{"BETA": true}})
	orch := pipeline.NewOrchestrator(generator, out, pipeline.Config{MaxQuestions: 5})

	summary, err := orch.Run(context.Background(), filings)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if summary.Failed != 1 || summary.Processed != 2 {
		t.Errorf("Summary wrong: %+v", summary)
	}

	records, err := writer.ReadRecords(outPath)
	if err != nil {
		t.Fatalf("ReadRecords failed: %v", err)
	}
	for _, rec := range records {
		if rec.Company == "Beta Inc" {
			t.Errorf("Failed filing leaked into output: %+v", rec)
		}
	}
	if len(records) != 4 {
		t.Errorf("Expected 4 lines from surviving filings, got %d", len(records))
	}
}

func TestSecondRunSkipsViaStore(t *testing.T) {
	dir, descriptors := writeFilingFixtures(t)

	filings, err := registry.Resolve(descriptors, dir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	storeDir := t.TempDir()
	generator := qagen.NewGenerator(&scriptedProvider{})

	runOnce := func() pipeline.RunSummary {
		out, err := writer.Create(filepath.Join(t.TempDir(), "qa.jsonl"))
		if err != nil {
			t.Fatalf("writer.Create failed: %v", err)
		}
		orch := pipeline.NewOrchestrator(generator, out, pipeline.Config{MaxQuestions: 5, ProviderName: "scripted"})
		orch.SetRepository(store.NewDatasetStore(nil, storeDir))
		summary, err := orch.Run(context.Background(), filings)
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if err := out.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
		return summary
	}

	first := runOnce()
	if first.Processed != 3 {
		t.Fatalf("First run summary wrong: %+v", first)
	}

	second := runOnce()
	if second.Skipped != 3 || second.Processed != 0 {
		t.Errorf("Second run did not skip stored filings: %+v", second)
	}
}
