// Package writer serializes generated QA pairs as JSON Lines, one
// OutputRecord per line.
package writer

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"filingqa/pkg/core/registry"
	"filingqa/pkg/models"
)

// JSONLWriter appends OutputRecords to a JSON Lines file.
type JSONLWriter struct {
	file  *os.File
	buf   *bufio.Writer
	enc   *json.Encoder
	count int
}

// Create opens (truncating) the output file, creating parent directories as
// needed.
func Create(path string) (*JSONLWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	buf := bufio.NewWriter(f)
	return &JSONLWriter{file: f, buf: buf, enc: json.NewEncoder(buf)}, nil
}

// WriteRecord appends one record as a single JSON line.
func (w *JSONLWriter) WriteRecord(rec models.OutputRecord) error {
	if err := w.enc.Encode(rec); err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	w.count++
	return nil
}

// WritePairs emits one OutputRecord per QAPair for the given filing.
// SourceFile is the descriptor's resolved local path.
func (w *JSONLWriter) WritePairs(d registry.FilingDescriptor, pairs []models.QAPair) (int, error) {
	written := 0
	for _, p := range pairs {
		rec := models.OutputRecord{
			Company:    d.Company,
			Year:       d.Year,
			SourceFile: d.LocalPath,
			Question:   p.Question,
			Answer:     p.Answer,
			Context:    p.Context,
		}
		if err := w.WriteRecord(rec); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

// Count returns the number of records written so far.
func (w *JSONLWriter) Count() int {
	return w.count
}

// Close flushes and closes the underlying file.
func (w *JSONLWriter) Close() error {
	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return w.file.Close()
}

// ReadRecords parses a JSON Lines file back into records. Used for round-trip
// verification of generated datasets.
func ReadRecords(path string) ([]models.OutputRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	var records []models.OutputRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec models.OutputRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("malformed dataset line %d: %w", len(records)+1, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan dataset: %w", err)
	}
	return records, nil
}
