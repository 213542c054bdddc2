package render

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/Ojas37/Legal-AI-Analyzer/model"
)

// Section titles, in the fixed order they may appear.
const (
	TitleDocumentInfo = "Document Information"
	TitleEntities     = "Legal Entities"
	TitleKeyClauses   = "Key Clauses"
	TitleSummary      = "Document Summary"
)

// Section is one block of the analysis report. Expanded controls body
// visibility only; toggling never touches the underlying payload.
type Section struct {
	Title    string
	Fields   []Field
	Groups   []Group
	Text     string
	Expanded bool
}

// Field is one label/value row of the Document Information section.
type Field struct {
	Label string
	Value string
}

// Group is an expandable sub-section: entity tags under a category, or a
// clause body under its category.
type Group struct {
	Label    string
	Tags     []string
	Text     string
	Expanded bool
}

// Toggle flips body visibility.
func (s *Section) Toggle() { s.Expanded = !s.Expanded }

// Toggle flips body visibility.
func (g *Group) Toggle() { g.Expanded = !g.Expanded }

// Render projects a result payload into its display sections. The order is
// fixed; each section appears exactly when its payload key is present.
// Pure: the payload is never mutated and equal payloads render equally.
func Render(result model.Result) []Section {
	var sections []Section

	if result.DocumentInfo != nil {
		sections = append(sections, Section{
			Title:    TitleDocumentInfo,
			Fields:   documentFields(result.DocumentInfo),
			Expanded: true,
		})
	}

	if result.Entities != nil {
		sections = append(sections, Section{
			Title: TitleEntities,
			Groups: lo.Map(result.Entities, func(g model.EntityGroup, _ int) Group {
				return Group{
					Label:    fmt.Sprintf("%s (%d)", g.Label, len(g.Items)),
					Tags:     g.Items,
					Expanded: true,
				}
			}),
			Expanded: true,
		})
	}

	if result.KeyClauses != nil {
		sections = append(sections, Section{
			Title: TitleKeyClauses,
			Groups: lo.Map(result.KeyClauses, func(g model.ClauseGroup, _ int) Group {
				return Group{
					Label:    fmt.Sprintf("%s (%s)", g.Label, percent(g.Clause.Confidence)),
					Text:     g.Clause.Text,
					Expanded: true,
				}
			}),
			Expanded: true,
		})
	}

	if result.Summary != nil {
		sections = append(sections, Section{
			Title:    TitleSummary,
			Text:     *result.Summary,
			Expanded: true,
		})
	}

	return sections
}

func documentFields(info *model.DocumentInfo) []Field {
	docType := info.Type
	if docType == "" {
		docType = "Unknown"
	}
	return []Field{
		{Label: "Type", Value: docType},
		{Label: "Confidence", Value: percent(info.Confidence)},
		{Label: "Length", Value: fmt.Sprintf("%d words", info.Length)},
		{Label: "Processed", Value: formatTimestamp(info.ProcessedAt)},
	}
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

// formatTimestamp renders the service's ISO-8601 processed_at value for
// humans. The service may or may not include fractional seconds or a zone;
// an unparseable value is shown as-is.
func formatTimestamp(raw string) string {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2, 2006 3:04 PM")
		}
	}
	return raw
}
