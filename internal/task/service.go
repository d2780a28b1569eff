package task

import (
	"context"

	"github.com/google/uuid"

	"github.com/hajnalm/ClearPoint/internal/ids"
	"github.com/hajnalm/ClearPoint/internal/model"
)

type TaskRepository interface {
	GetIncompleteTasks(ctx context.Context) ([]model.Task, error)
	GetTask(ctx context.Context, id uuid.UUID) (model.Task, bool, error)
	TaskIDExists(ctx context.Context, id uuid.UUID) (bool, error)
	IncompleteDescriptionExists(ctx context.Context, description string) (bool, error)
	CreateOrUpdateTask(ctx context.Context, t model.Task) (model.Task, error)
	CreateTask(ctx context.Context, t model.Task) (model.Task, error)
}

var _ TaskRepository = (*Repository)(nil)

type Service struct {
	repo  TaskRepository
	newID func() uuid.UUID
}

func NewService(repo TaskRepository) *Service {
	return &Service{repo: repo, newID: ids.NewTaskID}
}

type UpsertResult struct {
	Task model.TaskRead
	// Created is false only when the request named an id that was
	// already stored before the write.
	Created bool
}

func (s *Service) ListIncomplete(ctx context.Context) ([]model.TaskRead, error) {
	tasks, err := s.repo.GetIncompleteTasks(ctx)
	if err != nil {
		return nil, err
	}
	return ToReadList(tasks), nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (model.TaskRead, error) {
	t, found, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return model.TaskRead{}, err
	}
	if !found {
		return model.TaskRead{}, ErrTaskNotFound
	}
	return ToRead(t), nil
}

func (s *Service) Upsert(ctx context.Context, w model.TaskWrite) (UpsertResult, error) {
	if err := ValidateDescription(w.Description); err != nil {
		return UpsertResult{}, err
	}

	inputID, hasID := w.ID.Get()
	existed := false
	if hasID {
		var err error
		if existed, err = s.repo.TaskIDExists(ctx, inputID); err != nil {
			return UpsertResult{}, err
		}
	}

	saved, err := s.repo.CreateOrUpdateTask(ctx, FromWrite(w, s.newID))
	if err != nil {
		return UpsertResult{}, err
	}

	updated := hasID && existed && inputID == saved.ID
	return UpsertResult{Task: ToRead(saved), Created: !updated}, nil
}

// Create rejects a description already used by an incomplete task. The
// result is the write representation carrying the assigned id.
func (s *Service) Create(ctx context.Context, w model.TaskWrite) (model.TaskWrite, error) {
	if err := ValidateDescription(w.Description); err != nil {
		return model.TaskWrite{}, err
	}

	exists, err := s.repo.IncompleteDescriptionExists(ctx, w.Description)
	if err != nil {
		return model.TaskWrite{}, err
	}
	if exists {
		return model.TaskWrite{}, ErrDescriptionExists
	}

	created, err := s.repo.CreateTask(ctx, FromWrite(w, s.newID))
	if err != nil {
		return model.TaskWrite{}, err
	}
	return ToWrite(created), nil
}
