package workflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/Ojas37/Legal-AI-Analyzer/model"
	"github.com/Ojas37/Legal-AI-Analyzer/pkg/logger"
	"github.com/Ojas37/Legal-AI-Analyzer/service"
)

// Controller drives one analysis session end to end: validate, submit, poll
// when the service answers with a job handle, then hand the result to the
// caller for rendering. There is never more than one session in flight per
// controller; a concurrent Analyze call fails with ErrSessionActive instead
// of interleaving with the active session.
type Controller struct {
	client  *service.AnalyzerClient
	poller  *Poller
	session *Session
	mu      sync.Mutex
}

func NewController(client *service.AnalyzerClient, poller *Poller, sink service.ProgressFunc) *Controller {
	return &Controller{
		client:  client,
		poller:  poller,
		session: NewSession(sink),
	}
}

// Session exposes the display state surfaced to the user.
func (c *Controller) Session() *Session {
	return c.session
}

// Analyze runs a full session for doc. On any failure the session state is
// reset and the returned error's message is what the user should see; the
// caller prefixes it with "Error: ". On success progress stays at 100 until
// the next session begins.
func (c *Controller) Analyze(ctx context.Context, doc *model.Document) (model.Result, error) {
	if !c.mu.TryLock() {
		return model.Result{}, ErrSessionActive
	}
	defer c.mu.Unlock()

	c.session.Reset()

	if verdict := Validate(doc); !verdict.Accepted {
		c.session.Reset()
		return model.Result{}, &ValidationError{Reason: verdict.Reason}
	}

	outcome, err := c.client.Submit(ctx, doc, c.session.Update)
	if err != nil {
		c.session.Reset()
		return model.Result{}, err
	}

	switch o := outcome.(type) {
	case model.ImmediateResult:
		c.session.Update(100, "")
		return o.Results, nil

	case model.AsyncJob:
		ctx := context.WithValue(ctx, logger.TaskIDKey, o.TaskID)
		logger.Debug(ctx, "analysis queued, polling for result")

		result, err := c.poller.Poll(ctx, o.TaskID, c.session.Update)
		if err != nil {
			c.session.Reset()
			return model.Result{}, err
		}
		logger.Debug(ctx, "analysis completed")
		return result, nil

	default:
		c.session.Reset()
		return model.Result{}, fmt.Errorf("unexpected upload outcome %T", outcome)
	}
}
