package stubserver

import (
	"regexp"
	"strings"
	"time"

	"github.com/Ojas37/Legal-AI-Analyzer/model"
	"github.com/samber/lo"
)

// The analyzer reproduces the service's keyword and pattern layer so the
// client has realistic payloads to work against. There is no NLP here.

var docTypeIndicators = []struct {
	docType    string
	indicators []string
}{
	{"contract", []string{"agreement", "party", "whereas", "covenant"}},
	{"license", []string{"license", "licensor", "licensee", "grant"}},
	{"lease", []string{"lease", "lessor", "lessee", "rent", "premises"}},
	{"employment", []string{"employee", "employer", "employment", "salary"}},
	{"nda", []string{"confidential", "non-disclosure", "proprietary"}},
}

var clauseQueries = []struct {
	key      string
	keywords []string
}{
	{"the parties", []string{"between", "party", "parties"}},
	{"the effective date", []string{"effective", "commence", "entered", "dated"}},
	{"the payment terms", []string{"payment", "pay", "compensation", "fee"}},
	{"the governing law", []string{"governed", "law", "jurisdiction"}},
}

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	moneyPattern      = regexp.MustCompile(`\$[\d,]+(?:\.\d{2})?`)
	datePattern       = regexp.MustCompile(`(?i)\b(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2},\s+\d{4}\b|\b\d{1,2}/\d{1,2}/\d{4}\b`)
	sentencePattern   = regexp.MustCompile(`[.!?]\s+`)
)

const summaryWordLimit = 50

// Analyze runs the toy pipeline over plain text and assembles the result
// payload in the same shape the real service produces.
func Analyze(text string) model.Result {
	normalized := preprocess(text)

	docType, confidence := classify(normalized)
	summary := summarize(normalized)

	return model.Result{
		DocumentInfo: &model.DocumentInfo{
			Type:        docType,
			Confidence:  confidence,
			Length:      len(strings.Fields(text)),
			ProcessedAt: time.Now().Format(time.RFC3339Nano),
		},
		Entities:   extractEntities(normalized),
		KeyClauses: extractClauses(normalized),
		Summary:    &summary,
	}
}

// preprocess collapses runs of whitespace into single spaces.
func preprocess(text string) string {
	return whitespacePattern.ReplaceAllString(strings.TrimSpace(text), " ")
}

// classify scores each document type by the fraction of its indicator
// words present in the text. Ties keep the earliest type.
func classify(text string) (string, float64) {
	lower := strings.ToLower(text)

	bestType := docTypeIndicators[0].docType
	bestScore := -1.0
	for _, candidate := range docTypeIndicators {
		hits := lo.CountBy(candidate.indicators, func(word string) bool {
			return strings.Contains(lower, word)
		})
		score := float64(hits) / float64(len(candidate.indicators))
		if score > bestScore {
			bestType = candidate.docType
			bestScore = score
		}
	}
	return bestType, bestScore
}

func extractEntities(text string) model.EntityGroups {
	return model.EntityGroups{
		{Label: "DATE", Items: lo.Uniq(datePattern.FindAllString(text, -1))},
		{Label: "monetary_amounts", Items: lo.Uniq(moneyPattern.FindAllString(text, -1))},
	}
}

// extractClauses picks, per clause category, the first sentence that
// mentions one of the category's keywords. Confidence is the fraction of
// keywords the sentence matched.
func extractClauses(text string) model.ClauseGroups {
	sentences := splitSentences(text)

	groups := make(model.ClauseGroups, 0, len(clauseQueries))
	for _, query := range clauseQueries {
		for _, sentence := range sentences {
			lower := strings.ToLower(sentence)
			hits := lo.CountBy(query.keywords, func(word string) bool {
				return strings.Contains(lower, word)
			})
			if hits == 0 {
				continue
			}
			groups = append(groups, model.ClauseGroup{
				Label: query.key,
				Clause: model.Clause{
					Text:       sentence,
					Confidence: float64(hits) / float64(len(query.keywords)),
				},
			})
			break
		}
	}
	return groups
}

// summarize truncates the text to the first summaryWordLimit words.
func summarize(text string) string {
	words := strings.Fields(text)
	if len(words) <= summaryWordLimit {
		return text
	}
	return strings.Join(words[:summaryWordLimit], " ") + "…"
}

func splitSentences(text string) []string {
	parts := sentencePattern.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSuffix(strings.TrimSpace(part), ".")
		if part != "" {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

// extractDocumentText pulls printable text out of uploaded bytes. Real PDF
// parsing is out of scope; runs of printable characters are good enough for
// the plain-text "PDFs" used in development and tests.
func extractDocumentText(content []byte) string {
	var runs []string
	var current strings.Builder
	for _, b := range content {
		if b >= 0x20 && b < 0x7f {
			current.WriteByte(b)
			continue
		}
		if current.Len() >= 4 {
			runs = append(runs, current.String())
		}
		current.Reset()
	}
	if current.Len() >= 4 {
		runs = append(runs, current.String())
	}
	return strings.TrimSpace(strings.Join(runs, " "))
}
