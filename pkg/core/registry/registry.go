// Package registry holds the static list of 10-K filings the pipeline
// processes. Descriptors are authored once and never mutated; filing bodies
// live on disk as Markdown (the cache format produced by the EDGAR
// fetch/convert stage upstream of this repo).
package registry

import (
	"fmt"
	"os"
	"path/filepath"
)

// FilingDescriptor identifies one local 10-K filing.
type FilingDescriptor struct {
	Filename  string `json:"filename"`
	Company   string `json:"company"`
	Ticker    string `json:"ticker"`
	Year      int    `json:"year"`
	LocalPath string `json:"local_path"`
	SourceURL string `json:"source_url"`
}

// Default returns the authored filing set, with paths relative to the
// filings directory.
func Default() []FilingDescriptor {
	return []FilingDescriptor{
		{
			Filename:  "aapl_10k_fy2024.md",
			Company:   "Apple Inc.",
			Ticker:    "AAPL",
			Year:      2024,
			LocalPath: "aapl_10k_fy2024.md",
			SourceURL: "https://www.sec.gov/Archives/edgar/data/320193/000032019324000123/aapl-20240928.htm",
		},
		{
			Filename:  "msft_10k_fy2024.md",
			Company:   "Microsoft Corporation",
			Ticker:    "MSFT",
			Year:      2024,
			LocalPath: "msft_10k_fy2024.md",
			SourceURL: "https://www.sec.gov/Archives/edgar/data/789019/000095017024087843/msft-20240630.htm",
		},
		{
			Filename:  "amzn_10k_fy2023.md",
			Company:   "Amazon.com, Inc.",
			Ticker:    "AMZN",
			Year:      2023,
			LocalPath: "amzn_10k_fy2023.md",
			SourceURL: "https://www.sec.gov/Archives/edgar/data/1018724/000101872424000008/amzn-20231231.htm",
		},
	}
}

// Resolve rebases each descriptor's LocalPath onto baseDir and makes it
// absolute. The absolute path is what ends up in the output records.
func Resolve(filings []FilingDescriptor, baseDir string) ([]FilingDescriptor, error) {
	resolved := make([]FilingDescriptor, 0, len(filings))
	for _, f := range filings {
		path := f.LocalPath
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path for %s: %w", f.Filename, err)
		}
		f.LocalPath = abs
		resolved = append(resolved, f)
	}
	return resolved, nil
}

// Load reads the filing body from disk.
func (d FilingDescriptor) Load() (string, error) {
	data, err := os.ReadFile(d.LocalPath)
	if err != nil {
		return "", fmt.Errorf("failed to read filing %s: %w", d.LocalPath, err)
	}
	return string(data), nil
}
