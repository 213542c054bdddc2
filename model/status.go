package model

// Status is the tagged state a task reports from the status endpoint.
// Exactly one of the three variants is produced per poll.
type Status interface {
	status()
}

// Pending means the task is still processing. Progress is nil when the
// service did not report a value.
type Pending struct {
	Progress *int
	Message  string
}

// Completed is terminal and carries the final result payload.
type Completed struct {
	Results Result
}

// Failed is terminal and carries the service-reported failure message.
type Failed struct {
	Message string
}

func (Pending) status()   {}
func (Completed) status() {}
func (Failed) status()    {}

// UploadOutcome is what a submission produced: either the full result right
// away or a handle to an asynchronous job.
type UploadOutcome interface {
	outcome()
}

// ImmediateResult means the service analyzed the document synchronously.
type ImmediateResult struct {
	Results Result
}

// AsyncJob correlates the submission with subsequent status queries. The
// handle is only valid for one polling session.
type AsyncJob struct {
	TaskID string
}

func (ImmediateResult) outcome() {}
func (AsyncJob) outcome()        {}
