// Package server is a development store that serves a task collection over
// the same REST protocol the client speaks.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CollectionPath is where the task collection is mounted.
const CollectionPath = "/data"

// Config configures the development store.
type Config struct {
	Addr     string
	DataFile string // empty keeps the collection in memory
}

// Server wires the repository, handlers and HTTP listener together.
type Server struct {
	Engine *gin.Engine
	Repo   *TaskRepository
	lock   *DataLock // nil when the collection is memory only
	cfg    Config
	log    zerolog.Logger
}

// NewEngine builds the gin engine serving repo.
func NewEngine(repo *TaskRepository, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log))

	h := NewTaskHandler(repo)
	r.GET(CollectionPath, h.List)
	r.POST(CollectionPath, h.Create)
	r.GET(CollectionPath+"/:id", h.GetByID)
	r.PUT(CollectionPath+"/:id", h.Update)
	r.DELETE(CollectionPath+"/:id", h.Delete)

	return r
}

// Init opens the repository and builds the engine.
func Init(cfg Config, log zerolog.Logger) (*Server, error) {
	var repo *TaskRepository
	var lock *DataLock
	if cfg.DataFile != "" {
		lock = NewDataLock(cfg.DataFile)
		if err := lock.Acquire(); err != nil {
			return nil, err
		}
		var err error
		repo, err = OpenTaskRepository(cfg.DataFile)
		if err != nil {
			lock.Release()
			return nil, fmt.Errorf("failed to open task repository: %w", err)
		}
		log.Info().Str("file", cfg.DataFile).Int("tasks", len(repo.List())).Msg("loaded tasks")
	} else {
		repo = NewTaskRepository()
	}

	return &Server{
		Engine: NewEngine(repo, log),
		Repo:   repo,
		lock:   lock,
		cfg:    cfg,
		log:    log,
	}, nil
}

// Run serves until SIGINT/SIGTERM or ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	defer s.Close()

	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.Engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr).Str("path", CollectionPath).Msg("store listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down store")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	s.log.Info().Msg("store exited properly")
	return nil
}

// Close releases the data file lock. It is safe to call more than once.
func (s *Server) Close() error {
	if s.lock == nil {
		return nil
	}
	return s.lock.Release()
}
