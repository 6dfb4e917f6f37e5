// Package pipeline wires the filing registry, the QA generator, and the
// result writer into one sequential run with per-filing error isolation.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"filingqa/pkg/core/qagen"
	"filingqa/pkg/core/registry"
	"filingqa/pkg/models"
)

// QAGenerator produces QA pairs for one filing.
type QAGenerator interface {
	Generate(ctx context.Context, filingText string, req qagen.Request) ([]models.QAPair, error)
}

// ResultWriter persists pairs as output records.
type ResultWriter interface {
	WritePairs(d registry.FilingDescriptor, pairs []models.QAPair) (int, error)
}

// DatasetRepository lets the orchestrator skip filings that already have a
// stored dataset and persist fresh runs.
type DatasetRepository interface {
	Has(ctx context.Context, ticker string, fiscalYear int) bool
	Save(ctx context.Context, run *models.DatasetRun) error
}

// Config tunes one pipeline run.
type Config struct {
	MaxQuestions int
	Section      registry.Section // SectionMDA grounds generation in Item 7 only
	ProviderName string           // Recorded on stored runs
	ForceRefresh bool             // Regenerate even when the store has a run
}

// Orchestrator manages the Registry -> Generator -> Writer flow.
type Orchestrator struct {
	generator QAGenerator
	writer    ResultWriter
	repo      DatasetRepository // nil disables skip/persist
	config    Config
}

func NewOrchestrator(generator QAGenerator, writer ResultWriter, config Config) *Orchestrator {
	return &Orchestrator{
		generator: generator,
		writer:    writer,
		config:    config,
	}
}

// SetRepository injects a dataset store (e.g. for smart-ingestion skipping).
func (o *Orchestrator) SetRepository(repo DatasetRepository) {
	o.repo = repo
}

// RunSummary reports the outcome of a run.
type RunSummary struct {
	Processed int // Filings that produced records
	Skipped   int // Filings with an existing stored dataset
	Failed    int // Filings skipped due to load/generation errors
	Records   int // Total output lines written
}

// Run processes each filing in order. A failure on one filing is printed and
// that filing contributes zero output lines; the rest still run. Only a
// writer failure aborts, since the output file is then unusable.
func (o *Orchestrator) Run(ctx context.Context, filings []registry.FilingDescriptor) (RunSummary, error) {
	var summary RunSummary
	start := time.Now()

	fmt.Printf("Starting QA pipeline over %d filings...\n", len(filings))

	for _, filing := range filings {
		fmt.Printf("Processing %s FY%d (%s)...\n", filing.Ticker, filing.Year, filing.Filename)

		if o.repo != nil && !o.config.ForceRefresh && o.repo.Has(ctx, filing.Ticker, filing.Year) {
			fmt.Printf("Skipping %s FY%d (already generated)\n", filing.Ticker, filing.Year)
			summary.Skipped++
			continue
		}

		content, err := filing.Load()
		if err != nil {
			fmt.Printf("Warning: failed to load %s: %v. Skipping.\n", filing.Filename, err)
			summary.Failed++
			continue
		}

		pairs, err := o.generator.Generate(ctx, content, qagen.Request{
			Ticker:       filing.Ticker,
			Year:         filing.Year,
			MaxQuestions: o.config.MaxQuestions,
			Section:      o.config.Section,
		})
		if err != nil {
			fmt.Printf("Warning: generation failed for %s FY%d: %v. Skipping.\n", filing.Ticker, filing.Year, err)
			summary.Failed++
			continue
		}

		written, err := o.writer.WritePairs(filing, pairs)
		if err != nil {
			return summary, fmt.Errorf("writer failed on %s: %w", filing.Filename, err)
		}
		summary.Records += written
		summary.Processed++
		fmt.Printf("Wrote %d records for %s FY%d\n", written, filing.Ticker, filing.Year)

		if o.repo != nil {
			run := &models.DatasetRun{
				Ticker:      filing.Ticker,
				FiscalYear:  filing.Year,
				Company:     filing.Company,
				SourceFile:  filing.LocalPath,
				Pairs:       pairs,
				LLMProvider: o.config.ProviderName,
			}
			if err := o.repo.Save(ctx, run); err != nil {
				// Storage is best-effort; the JSONL output already has the data
				fmt.Printf("Warning: failed to persist run for %s FY%d: %v\n", filing.Ticker, filing.Year, err)
			}
		}
	}

	fmt.Printf("Pipeline finished in %v: %d processed, %d skipped, %d failed, %d records\n",
		time.Since(start), summary.Processed, summary.Skipped, summary.Failed, summary.Records)
	return summary, nil
}
