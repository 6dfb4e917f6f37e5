package registry

import (
	"strings"
	"testing"
)

const sampleFiling = `# Annual Report

## Item 1. Business

We design, manufacture and market smartphones.

## Item 7. Management's Discussion and Analysis of Financial Condition and Results of Operations

Net sales increased 2% during 2024 compared to 2023.

### Products

Products net sales decreased slightly.

## Item 7A. Quantitative and Qualitative Disclosures About Market Risk

Interest rate risk discussion.

## Item 8. Financial Statements

Balance sheet tables here.
`

func TestSelectSectionFullPassthrough(t *testing.T) {
	got, err := SelectSection(sampleFiling, SectionFull)
	if err != nil {
		t.Fatalf("SelectSection failed: %v", err)
	}
	if got != sampleFiling {
		t.Error("FULL selection must return the entire body unchanged")
	}
}

func TestSelectSectionMDA(t *testing.T) {
	got, err := SelectSection(sampleFiling, SectionMDA)
	if err != nil {
		t.Fatalf("SelectSection failed: %v", err)
	}

	if !strings.Contains(got, "Net sales increased 2%") {
		t.Errorf("MD&A body missing from selection:\n%s", got)
	}
	// Sub-headings inside MD&A stay in
	if !strings.Contains(got, "Products net sales") {
		t.Errorf("MD&A sub-section dropped:\n%s", got)
	}
	// Neighboring items stay out
	if strings.Contains(got, "Interest rate risk") {
		t.Errorf("Item 7A leaked into MD&A selection:\n%s", got)
	}
	if strings.Contains(got, "We design, manufacture") {
		t.Errorf("Item 1 leaked into MD&A selection:\n%s", got)
	}
}

func TestSelectSectionMDAMissing(t *testing.T) {
	_, err := SelectSection("# Annual Report\n\n## Item 1. Business\n\nText.\n", SectionMDA)
	if err == nil {
		t.Error("Expected error when filing has no MD&A heading")
	}
}

func TestSelectSectionUnknown(t *testing.T) {
	if _, err := SelectSection(sampleFiling, Section("ITEM_9")); err == nil {
		t.Error("Expected error for unknown section")
	}
}
