package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hajnalm/ClearPoint/internal/observability/logging"
	"github.com/hajnalm/ClearPoint/internal/task"
)

// Resource roots. LegacyTasksPath serves clients of the older /api/TodoItems API.
const (
	TasksPath       = "/tasks"
	LegacyTasksPath = "/api/TodoItems"
)

type Options struct {
	Logger         *slog.Logger
	Ready          Pinger
	RequestTimeout time.Duration
}

type Server struct {
	service *task.Service
	logger  *slog.Logger
	handler http.Handler
}

func NewServer(service *task.Service, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 3 * time.Second
	}

	srv := &Server{
		service: service,
		logger:  opts.Logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", srv.handleHealth)
	if opts.Ready != nil {
		mux.HandleFunc("GET /readyz", ReadyzHandler(opts.Ready))
	}
	srv.mountTasks(mux, TasksPath)
	srv.mountTasks(mux, LegacyTasksPath)

	srv.handler = WithRequestID(
		Logging(opts.Logger)(
			Timeout(opts.RequestTimeout)(mux),
		),
	)
	return srv
}

func (s *Server) mountTasks(mux *http.ServeMux, root string) {
	mux.HandleFunc("GET "+root, s.handleListTasks)
	mux.HandleFunc("GET "+root+"/{id}", s.handleGetTask)
	mux.HandleFunc("PUT "+root, s.handleUpsertTask(root))
	mux.HandleFunc("POST "+root, s.handleCreateTask(root))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
