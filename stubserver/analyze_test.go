package stubserver

import (
	"strings"
	"testing"
)

const sampleEmployment = `EMPLOYMENT AGREEMENT

This employment agreement is entered into on January 15, 2024 between
Acme Corporation (the employer) and Jane Smith (the employee). The
employee shall receive a salary of $85,000.00 per year, with payment made
monthly. This agreement shall be governed by the law of the State of
California.`

func TestAnalyzeClassifiesEmployment(t *testing.T) {
	result := Analyze(sampleEmployment)

	if result.DocumentInfo == nil {
		t.Fatal("Expected document_info")
	}
	if result.DocumentInfo.Type != "employment" {
		t.Errorf("Expected type employment, got %s", result.DocumentInfo.Type)
	}
	if result.DocumentInfo.Confidence <= 0 {
		t.Errorf("Expected positive confidence, got %f", result.DocumentInfo.Confidence)
	}
	if result.DocumentInfo.Length != len(strings.Fields(sampleEmployment)) {
		t.Errorf("Unexpected word count %d", result.DocumentInfo.Length)
	}
	if result.DocumentInfo.ProcessedAt == "" {
		t.Error("Expected processed_at timestamp")
	}
}

func TestAnalyzeDefaultsToContract(t *testing.T) {
	result := Analyze("nothing legal about this text at all")

	if result.DocumentInfo.Type != "contract" {
		t.Errorf("Expected fallback type contract, got %s", result.DocumentInfo.Type)
	}
	if result.DocumentInfo.Confidence != 0 {
		t.Errorf("Expected zero confidence, got %f", result.DocumentInfo.Confidence)
	}
}

func TestAnalyzeExtractsEntities(t *testing.T) {
	result := Analyze(sampleEmployment)

	var dates, amounts []string
	for _, group := range result.Entities {
		switch group.Label {
		case "DATE":
			dates = group.Items
		case "monetary_amounts":
			amounts = group.Items
		default:
			t.Errorf("Unexpected entity category %s", group.Label)
		}
	}

	if len(dates) != 1 || dates[0] != "January 15, 2024" {
		t.Errorf("Unexpected dates %v", dates)
	}
	if len(amounts) != 1 || amounts[0] != "$85,000.00" {
		t.Errorf("Unexpected amounts %v", amounts)
	}
}

func TestAnalyzeExtractsClauses(t *testing.T) {
	result := Analyze(sampleEmployment)

	labels := make([]string, 0, len(result.KeyClauses))
	for _, group := range result.KeyClauses {
		labels = append(labels, group.Label)
		if group.Clause.Text == "" {
			t.Errorf("Clause %s has empty text", group.Label)
		}
		if group.Clause.Confidence <= 0 || group.Clause.Confidence > 1 {
			t.Errorf("Clause %s confidence %f out of range", group.Label, group.Clause.Confidence)
		}
	}

	// Categories keep their query order
	want := []string{"the parties", "the effective date", "the payment terms", "the governing law"}
	if len(labels) != len(want) {
		t.Fatalf("Expected %d clauses, got %v", len(want), labels)
	}
	for i, label := range want {
		if labels[i] != label {
			t.Errorf("Clause %d: expected %s, got %s", i, label, labels[i])
		}
	}
}

func TestAnalyzeSummaryTruncation(t *testing.T) {
	long := strings.Repeat("whereas the party agrees to the covenant ", 20)
	result := Analyze(long)

	if result.Summary == nil {
		t.Fatal("Expected summary")
	}
	if got := len(strings.Fields(*result.Summary)); got > summaryWordLimit {
		t.Errorf("Summary has %d words, limit is %d", got, summaryWordLimit)
	}
	if !strings.HasSuffix(*result.Summary, "…") {
		t.Error("Expected truncated summary to end with ellipsis")
	}

	short := "Short agreement."
	if result := Analyze(short); *result.Summary != short {
		t.Errorf("Expected short text kept verbatim, got %q", *result.Summary)
	}
}

func TestExtractDocumentText(t *testing.T) {
	content := append([]byte("%PDF-1.4\x00\x01"), []byte("This agreement is binding.")...)
	content = append(content, 0x00, 0x02)

	text := extractDocumentText(content)
	if !strings.Contains(text, "This agreement is binding.") {
		t.Errorf("Expected extracted sentence, got %q", text)
	}

	if got := extractDocumentText([]byte{0x00, 0x01, 'a', 'b', 0x02}); got != "" {
		t.Errorf("Expected empty extraction for binary noise, got %q", got)
	}
}
