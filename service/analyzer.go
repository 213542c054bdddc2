package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/Ojas37/Legal-AI-Analyzer/config"
	"github.com/Ojas37/Legal-AI-Analyzer/model"
)

// Analysis service endpoints. The upload endpoint answers either with a
// task_id (asynchronous processing) or with the result payload itself.
const (
	uploadPath      = "/analyze-pdf"
	statusPathBase  = "/status/"
	analyzeTextPath = "/analyze"

	// Field name the service expects the file part under.
	uploadFieldName = "file"
)

// ProgressFunc receives display-state updates: a progress percentage and a
// status line for the user.
type ProgressFunc func(percent int, message string)

// UploadError reports a failed submission. Error returns exactly the
// user-facing message; any underlying cause stays reachable via Unwrap.
type UploadError struct {
	Message string
	Cause   error
}

func (e *UploadError) Error() string { return e.Message }

func (e *UploadError) Unwrap() error { return e.Cause }

// AnalyzerClient talks to the document analysis service.
type AnalyzerClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewAnalyzerClient(cfg *config.APIConfig) *AnalyzerClient {
	return &AnalyzerClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout(),
		},
	}
}

func (c *AnalyzerClient) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// Submit uploads the document and interprets the immediate response.
// Before the request goes out it reports (10, "Uploading document…") so the
// caller knows a submission is in flight. A 2xx body containing task_id is
// an AsyncJob; any other 2xx body is the result payload itself.
func (c *AnalyzerClient) Submit(ctx context.Context, doc *model.Document, report ProgressFunc) (model.UploadOutcome, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(uploadFieldName, doc.Name)
	if err != nil {
		return nil, &UploadError{Message: err.Error(), Cause: err}
	}
	if _, err := io.Copy(part, doc.Content); err != nil {
		return nil, &UploadError{Message: err.Error(), Cause: err}
	}
	if err := writer.Close(); err != nil {
		return nil, &UploadError{Message: err.Error(), Cause: err}
	}

	if report != nil {
		report(10, "Uploading document…")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+uploadPath, body)
	if err != nil {
		return nil, &UploadError{Message: err.Error(), Cause: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UploadError{Message: err.Error(), Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UploadError{Message: err.Error(), Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UploadError{Message: errorDetail(raw)}
	}

	var handle struct {
		TaskID string `json:"task_id"`
	}
	if err := json.Unmarshal(raw, &handle); err != nil {
		return nil, &UploadError{Message: err.Error(), Cause: err}
	}
	if handle.TaskID != "" {
		return model.AsyncJob{TaskID: handle.TaskID}, nil
	}

	var results model.Result
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, &UploadError{Message: err.Error(), Cause: err}
	}
	return model.ImmediateResult{Results: results}, nil
}

// statusEnvelope is the status endpoint's wire shape. Any discriminator
// other than completed/error counts as pending.
type statusEnvelope struct {
	Status   string        `json:"status"`
	Progress *int          `json:"progress,omitempty"`
	Message  string        `json:"message,omitempty"`
	Results  *model.Result `json:"results,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// TaskStatus queries one poll tick for the given task.
func (c *AnalyzerClient) TaskStatus(ctx context.Context, taskID string) (model.Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+statusPathBase+taskID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New("Status check failed")
	}

	var envelope statusEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to parse status response: %w", err)
	}

	switch envelope.Status {
	case "completed":
		var results model.Result
		if envelope.Results != nil {
			results = *envelope.Results
		}
		return model.Completed{Results: results}, nil
	case "error":
		return model.Failed{Message: envelope.Error}, nil
	default:
		return model.Pending{Progress: envelope.Progress, Message: envelope.Message}, nil
	}
}

// AnalyzeText sends plain document text for synchronous analysis.
func (c *AnalyzerClient) AnalyzeText(ctx context.Context, text string) (model.Result, error) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return model.Result{}, &UploadError{Message: err.Error(), Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+analyzeTextPath, bytes.NewReader(payload))
	if err != nil {
		return model.Result{}, &UploadError{Message: err.Error(), Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Result{}, &UploadError{Message: err.Error(), Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Result{}, &UploadError{Message: err.Error(), Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.Result{}, &UploadError{Message: errorDetail(raw)}
	}

	var results model.Result
	if err := json.Unmarshal(raw, &results); err != nil {
		return model.Result{}, &UploadError{Message: err.Error(), Cause: err}
	}
	return results, nil
}

// errorDetail extracts the service's human-readable detail field from an
// error body, falling back to a generic message.
func errorDetail(raw []byte) string {
	var e struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &e); err == nil && e.Detail != "" {
		return e.Detail
	}
	return "Upload failed"
}
