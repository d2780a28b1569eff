package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hajnalm/ClearPoint/internal/model"
	"github.com/hajnalm/ClearPoint/internal/observability/logging"
	"github.com/hajnalm/ClearPoint/internal/task"
)

const (
	msgInvalidDescription = "Invalid request. Provide a non-empty item description"
	msgDescriptionExists  = "Description already exists"
	msgListFailed         = "Error retrieving items."
	msgWriteFailed        = "Error creating or updating the item."
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.service.ListIncomplete(r.Context())
	if err != nil {
		s.internalError(w, r, "list incomplete tasks", err, msgListFailed)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		// no task can have a malformed id
		writeError(w, http.StatusNotFound, "task not found")
		return
	}

	found, err := s.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			writeError(w, http.StatusNotFound, "task not found")
			return
		}
		s.internalError(w, r, "get task", err, "Error retrieving item with the ID "+id.String()+".")
		return
	}
	writeJSON(w, http.StatusOK, found)
}

func (s *Server) handleUpsertTask(root string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := readTaskWrite(w, r)
		if !ok {
			return
		}

		res, err := s.service.Upsert(r.Context(), in)
		if err != nil {
			if errors.Is(err, task.ErrInvalidDescription) {
				writeError(w, http.StatusBadRequest, msgInvalidDescription)
				return
			}
			s.internalError(w, r, "upsert task", err, msgWriteFailed)
			return
		}

		if !res.Created {
			writeJSON(w, http.StatusOK, res.Task)
			return
		}
		w.Header().Set("Location", root+"/"+res.Task.ID.String())
		writeJSON(w, http.StatusCreated, res.Task)
	}
}

func (s *Server) handleCreateTask(root string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := readTaskWrite(w, r)
		if !ok {
			return
		}

		created, err := s.service.Create(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, task.ErrInvalidDescription):
				writeError(w, http.StatusBadRequest, msgInvalidDescription)
			case errors.Is(err, task.ErrDescriptionExists):
				writeError(w, http.StatusBadRequest, msgDescriptionExists)
			default:
				s.internalError(w, r, "create task", err, msgWriteFailed)
			}
			return
		}

		id, _ := created.ID.Get()
		w.Header().Set("Location", root+"/"+id.String())
		writeJSON(w, http.StatusCreated, created)
	}
}

// readTaskWrite writes a 400 response and reports false when the body is
// not a valid TaskWrite document.
func readTaskWrite(w http.ResponseWriter, r *http.Request) (model.TaskWrite, bool) {
	body, err := readBody(r, maxBodyBytes)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, errBodyTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		writeError(w, status, err.Error())
		return model.TaskWrite{}, false
	}

	var in model.TaskWrite
	if err := decodeTaskWrite(body, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return model.TaskWrite{}, false
	}
	return in, true
}

// internalError logs err in full and answers with msg only.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, op string, err error, msg string) {
	s.logger.Error(op+" failed",
		"rid", RequestIDFromContext(r.Context()),
		logging.Err(err),
	)
	writeError(w, http.StatusInternalServerError, msg)
}
