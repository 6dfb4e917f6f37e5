package registry

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Section identifies a filing subsection selectable for generation.
type Section string

const (
	SectionFull Section = "FULL" // Entire filing body
	SectionMDA  Section = "MDA"  // Item 7: Management's Discussion and Analysis
)

// mdaMarkers match the heading of Item 7 across filer formatting variants.
var mdaMarkers = []string{
	"management's discussion and analysis",
	"management’s discussion and analysis",
	"item 7.",
	"item 7 ",
}

// SelectSection returns the requested subsection of a Markdown filing body.
// For SectionMDA it walks the Goldmark AST and slices the source from the
// matching heading up to the next heading of the same or higher level.
func SelectSection(markdown string, section Section) (string, error) {
	if section == SectionFull || section == "" {
		return markdown, nil
	}
	if section != SectionMDA {
		return "", fmt.Errorf("unknown filing section %q", section)
	}

	source := []byte(markdown)
	parser := goldmark.DefaultParser()
	doc := parser.Parse(text.NewReader(source))

	var start, end int = -1, len(source)
	var matchedLevel int

	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		heading, ok := node.(*ast.Heading)
		if !ok || heading.Lines().Len() == 0 {
			continue
		}
		seg := heading.Lines().At(0)
		title := strings.ToLower(string(source[seg.Start:seg.Stop]))

		if start < 0 {
			if isMDAHeading(title) {
				start = seg.Start
				matchedLevel = heading.Level
			}
			continue
		}
		// Section ends at the next peer or parent heading
		if heading.Level <= matchedLevel {
			end = seg.Start
			break
		}
	}

	if start < 0 {
		return "", fmt.Errorf("MD&A section not found in filing")
	}

	// Rewind to include the heading's own markup (e.g. leading '#' characters)
	for start > 0 && source[start-1] != '\n' {
		start--
	}

	return string(source[start:end]), nil
}

func isMDAHeading(title string) bool {
	for _, marker := range mdaMarkers {
		if strings.Contains(title, marker) {
			// "Item 7A." (Quantitative and Qualitative Disclosures) is a
			// different section and must not match
			if strings.Contains(title, "item 7a") && !strings.Contains(title, "discussion") {
				continue
			}
			return true
		}
	}
	return false
}
