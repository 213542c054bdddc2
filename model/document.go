package model

import "io"

// Document is a candidate file selected for analysis. The workflow reads the
// content exactly once to build the upload payload and never persists it.
type Document struct {
	Name      string
	MIMEType  string
	SizeBytes int64
	Content   io.Reader
}
