package stubserver

import (
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ojas37/Legal-AI-Analyzer/model"
)

// Stage messages shown while a task is pending.
const (
	extractingMessage = "Extracting text…"
	analyzingMessage  = "Analyzing document…"
)

const defaultMaxTasks = 100

// Config tunes the stub's behavior.
type Config struct {
	// StageDelay is the pause between processing stages. Zero completes
	// tasks as fast as the scheduler allows, which is what tests want.
	StageDelay time.Duration
	// MaxTasks caps the in-memory store, 0 uses the default.
	MaxTasks int
}

// Server is a local stand-in for the document analysis service.
type Server struct {
	store      *TaskStore
	stageDelay time.Duration
}

func New(cfg Config) *Server {
	maxTasks := cfg.MaxTasks
	if maxTasks <= 0 {
		maxTasks = defaultMaxTasks
	}
	return &Server{
		store:      NewTaskStore(maxTasks),
		stageDelay: cfg.StageDelay,
	}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(recoveryMiddleware(), requestLogger())

	router.POST("/analyze-pdf", s.analyzePDF)
	router.GET("/status/:task_id", s.taskStatus)
	router.POST("/analyze", s.analyzeText)
	router.GET("/health", s.health)

	return router
}

type statusResponse struct {
	Status   string        `json:"status"`
	Progress int           `json:"progress"`
	Message  string        `json:"message,omitempty"`
	Results  *model.Result `json:"results,omitempty"`
	Error    string        `json:"error,omitempty"`
}

type textRequest struct {
	Text string `json:"text"`
}

func (s *Server) analyzePDF(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "No file provided"})
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "File must be a PDF"})
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to read uploaded file"})
		return
	}

	taskID := uuid.New().String()
	s.store.Create(taskID)

	slog.Info("received document for analysis",
		"task_id", taskID,
		"filename", header.Filename,
		"size", len(content),
	)

	go s.process(taskID, content)

	c.JSON(http.StatusOK, gin.H{"task_id": taskID, "status": "processing"})
}

// process walks the task through the extraction and analysis stages.
func (s *Server) process(taskID string, content []byte) {
	s.store.SetProgress(taskID, StateExtracting, 10, extractingMessage)
	s.pause()

	text := extractDocumentText(content)
	if text == "" {
		s.store.Fail(taskID, "Could not extract text from PDF")
		slog.Warn("text extraction failed", "task_id", taskID)
		return
	}

	s.store.SetProgress(taskID, StateAnalyzing, 50, analyzingMessage)
	s.pause()

	s.store.Complete(taskID, Analyze(text))
	slog.Info("analysis completed", "task_id", taskID)
}

func (s *Server) pause() {
	if s.stageDelay > 0 {
		time.Sleep(s.stageDelay)
	}
}

func (s *Server) taskStatus(c *gin.Context) {
	task := s.store.Get(c.Param("task_id"))
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, statusResponse{
		Status:   task.State,
		Progress: task.Progress,
		Message:  task.Message,
		Results:  task.Results,
		Error:    task.Error,
	})
}

func (s *Server) analyzeText(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "No document content provided"})
		return
	}

	c.JSON(http.StatusOK, Analyze(req.Text))
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "tasks": s.store.Count()})
}

// requestLogger logs each request with its status and latency.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"status", status,
			"method", c.Request.Method,
			"path", path,
			"latency_ms", time.Since(start).Milliseconds(),
		}

		switch {
		case status >= 500:
			slog.Error("request completed", attrs...)
		case status >= 400:
			slog.Warn("request completed", attrs...)
		default:
			slog.Info("request completed", attrs...)
		}
	}
}

// recoveryMiddleware turns panics into 500 responses.
func recoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("panic recovered",
					"error", err,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"detail": "Internal server error",
				})
			}
		}()

		c.Next()
	}
}
