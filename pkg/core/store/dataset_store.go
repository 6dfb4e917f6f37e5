package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"filingqa/pkg/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DatasetStore persists generated QA datasets.
// Hybrid vault: DB (primary) + file system (fallback/local).
type DatasetStore struct {
	pool    *pgxpool.Pool
	fileDir string
}

// NewDatasetStore creates a store. If pool is nil it falls back to a
// file-based store in dir; with both nil/empty it defaults to a local
// .cache directory.
func NewDatasetStore(pool *pgxpool.Pool, dir string) *DatasetStore {
	if pool == nil && dir == "" {
		dir = filepath.Join(".cache", "qa_datasets")
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("[WARNING] Check DatasetStore dir: %v\n", err)
		}
	}
	return &DatasetStore{pool: pool, fileDir: dir}
}

// Get retrieves a stored run by ticker and fiscal year. A miss returns
// (nil, nil).
func (s *DatasetStore) Get(ctx context.Context, ticker string, fiscalYear int) (*models.DatasetRun, error) {
	ticker = strings.ToUpper(ticker)

	// 1. Try DB
	if s.pool != nil {
		query := `
			SELECT data
			FROM qa_dataset_runs
			WHERE ticker = $1 AND fiscal_year = $2
			ORDER BY generated_at DESC
			LIMIT 1
		`
		var dataJSON []byte
		err := s.pool.QueryRow(ctx, query, ticker, fiscalYear).Scan(&dataJSON)
		if err != nil {
			return nil, nil // Cache miss
		}
		var run models.DatasetRun
		if err := json.Unmarshal(dataJSON, &run); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stored run: %w", err)
		}
		return &run, nil
	}

	// 2. Try file system
	if s.fileDir != "" {
		return s.loadFromFile(s.runPath(ticker, fiscalYear))
	}

	return nil, nil
}

// Has reports whether a run exists for ticker/fiscalYear. Used by the
// orchestrator's skip logic.
func (s *DatasetStore) Has(ctx context.Context, ticker string, fiscalYear int) bool {
	run, err := s.Get(ctx, ticker, fiscalYear)
	return err == nil && run != nil
}

// Save stores a run, assigning an ID when missing.
func (s *DatasetStore) Save(ctx context.Context, run *models.DatasetRun) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.GeneratedAt.IsZero() {
		run.GeneratedAt = time.Now().UTC()
	}
	run.Ticker = strings.ToUpper(run.Ticker)

	dataJSON, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	// 1. Save to DB
	if s.pool != nil {
		query := `
			INSERT INTO qa_dataset_runs (
				id, ticker, fiscal_year, company, source_file,
				pair_count, llm_provider, data, generated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (ticker, fiscal_year)
			DO UPDATE SET
				data = EXCLUDED.data,
				pair_count = EXCLUDED.pair_count,
				llm_provider = EXCLUDED.llm_provider,
				generated_at = EXCLUDED.generated_at
		`
		_, err = s.pool.Exec(ctx, query,
			run.ID, run.Ticker, run.FiscalYear, run.Company, run.SourceFile,
			len(run.Pairs), run.LLMProvider, dataJSON, run.GeneratedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to save run to db: %w", err)
		}
	}

	// 2. Save to file (always when configured)
	if s.fileDir != "" {
		path := s.runPath(run.Ticker, run.FiscalYear)
		if err := os.WriteFile(path, dataJSON, 0644); err != nil {
			return fmt.Errorf("failed to save run to file: %w", err)
		}
	}

	return nil
}

func (s *DatasetStore) runPath(ticker string, fiscalYear int) string {
	return filepath.Join(s.fileDir, fmt.Sprintf("%s_fy%d.json", strings.ToLower(ticker), fiscalYear))
}

func (s *DatasetStore) loadFromFile(path string) (*models.DatasetRun, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read stored run: %w", err)
	}
	var run models.DatasetRun
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored run %s: %w", path, err)
	}
	return &run, nil
}
