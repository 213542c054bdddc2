package stubserver

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/Ojas37/Legal-AI-Analyzer/model"
)

// Task states mirror the stages the analysis service moves through.
const (
	StateStarting   = "starting"
	StateExtracting = "extracting_text"
	StateAnalyzing  = "analyzing"
	StateCompleted  = "completed"
	StateError      = "error"
)

// Task is one in-flight or finished analysis job.
type Task struct {
	ID        string
	State     string
	Progress  int
	Message   string
	Results   *model.Result
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TaskStore is an in-memory store for analysis tasks.
// In production, this should be replaced with a database.
type TaskStore struct {
	tasks    map[string]*Task
	mu       sync.RWMutex
	maxTasks int // Maximum tasks to keep, 0 = unlimited
}

// NewTaskStore creates a store that retains at most maxTasks entries.
func NewTaskStore(maxTasks int) *TaskStore {
	if maxTasks < 0 {
		maxTasks = 0
	}
	return &TaskStore{
		tasks:    make(map[string]*Task),
		maxTasks: maxTasks,
	}
}

// Create registers a new task in the starting state.
func (s *TaskStore) Create(id string) *Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	task := &Task{
		ID:        id,
		State:     StateStarting,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.tasks[id] = task

	// Cleanup if exceeds max
	s.cleanupIfNeeded()

	return task
}

// Get returns a snapshot of the task, or nil if it does not exist.
// A copy is returned because background processing mutates the original.
func (s *TaskStore) Get(id string) *Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.tasks[id]
	if !ok {
		return nil
	}
	snapshot := *task
	return &snapshot
}

// SetProgress moves the task into a new processing stage.
func (s *TaskStore) SetProgress(id, state string, progress int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if task, ok := s.tasks[id]; ok {
		task.State = state
		task.Progress = progress
		task.Message = message
		task.UpdatedAt = time.Now()
	}
}

// Complete stores the analysis results and marks the task finished.
func (s *TaskStore) Complete(id string, results model.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if task, ok := s.tasks[id]; ok {
		task.State = StateCompleted
		task.Progress = 100
		task.Message = ""
		task.Results = &results
		task.UpdatedAt = time.Now()
	}
}

// Fail marks the task as errored with the given message.
func (s *TaskStore) Fail(id, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if task, ok := s.tasks[id]; ok {
		task.State = StateError
		task.Error = errMsg
		task.UpdatedAt = time.Now()
	}
}

// cleanupIfNeeded removes oldest tasks if store exceeds maxTasks
// Must be called with lock held
func (s *TaskStore) cleanupIfNeeded() {
	if s.maxTasks <= 0 {
		return // Unlimited
	}

	if len(s.tasks) <= s.maxTasks {
		return
	}

	// Sort tasks by creation time
	tasks := make([]*Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})

	// Remove oldest tasks
	removeCount := len(tasks) - s.maxTasks
	for i := 0; i < removeCount; i++ {
		slog.Info("auto-cleaning old task",
			"task_id", tasks[i].ID,
			"created_at", tasks[i].CreatedAt,
		)
		delete(s.tasks, tasks[i].ID)
	}
}

// Count returns the number of tasks in the store
func (s *TaskStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}
