package workflow

import "github.com/Ojas37/Legal-AI-Analyzer/model"

// File constraints the service accepts.
const (
	AcceptedMIMEType = "application/pdf"
	MaxDocumentBytes = 10 * 1024 * 1024
)

// Verdict is the outcome of validating a candidate document.
type Verdict struct {
	Accepted bool
	Reason   string
}

// Validate checks the declared type and size of a candidate document. Pure
// function of those two attributes; it never reads the content.
func Validate(doc *model.Document) Verdict {
	if doc.MIMEType != AcceptedMIMEType {
		return Verdict{Reason: "unsupported type"}
	}
	if doc.SizeBytes > MaxDocumentBytes {
		return Verdict{Reason: "file too large"}
	}
	return Verdict{Accepted: true}
}
