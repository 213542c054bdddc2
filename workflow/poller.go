package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/Ojas37/Legal-AI-Analyzer/model"
	"github.com/Ojas37/Legal-AI-Analyzer/service"
)

const (
	// DefaultPollInterval is the fixed wait between poll attempts.
	DefaultPollInterval = 500 * time.Millisecond
	// DefaultMaxAttempts bounds a polling session; together with the
	// interval it caps total polling time at 30 seconds.
	DefaultMaxAttempts = 60

	defaultPendingProgress = 50
	defaultPendingMessage  = "Processing document…"
)

// Poller follows an asynchronous analysis task until it reaches a terminal
// state or the attempt budget runs out.
type Poller struct {
	client      *service.AnalyzerClient
	interval    time.Duration
	maxAttempts int
}

func NewPoller(client *service.AnalyzerClient, interval time.Duration, maxAttempts int) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Poller{
		client:      client,
		interval:    interval,
		maxAttempts: maxAttempts,
	}
}

// Poll runs the bounded status loop for one task. Attempts are strictly
// sequential; each one starts only after the previous response was fully
// processed and the interval elapsed. Service-reported progress values pass
// through unclamped.
func (p *Poller) Poll(ctx context.Context, taskID string, report service.ProgressFunc) (model.Result, error) {
	for attempt := 1; ; attempt++ {
		status, err := p.client.TaskStatus(ctx, taskID)
		if err != nil {
			return model.Result{}, &PollError{Message: err.Error()}
		}

		switch s := status.(type) {
		case model.Completed:
			if report != nil {
				report(100, "")
			}
			return s.Results, nil

		case model.Failed:
			message := s.Message
			if message == "" {
				message = "Processing failed"
			}
			return model.Result{}, &PollError{Message: message}

		case model.Pending:
			progress := defaultPendingProgress
			if s.Progress != nil {
				progress = *s.Progress
			}
			message := s.Message
			if message == "" {
				message = defaultPendingMessage
			}
			if report != nil {
				report(progress, message)
			}

		default:
			return model.Result{}, &PollError{Message: fmt.Sprintf("unexpected status %T", status)}
		}

		if attempt >= p.maxAttempts {
			return model.Result{}, &PollError{Message: "Processing timed out"}
		}

		select {
		case <-ctx.Done():
			return model.Result{}, &PollError{Message: ctx.Err().Error()}
		case <-time.After(p.interval):
		}
	}
}
