package task

import (
	"github.com/google/uuid"

	"github.com/hajnalm/ClearPoint/internal/model"
)

func ToRead(t model.Task) model.TaskRead {
	return model.TaskRead{
		ID:          t.ID,
		Description: t.Description,
		IsCompleted: t.IsCompleted,
	}
}

func ToReadList(tasks []model.Task) []model.TaskRead {
	out := make([]model.TaskRead, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, ToRead(t))
	}
	return out
}

// FromWrite builds a task record, calling newID when w carries no id.
func FromWrite(w model.TaskWrite, newID func() uuid.UUID) model.Task {
	return model.Task{
		ID:          w.ID.OrElse(newID),
		Description: w.Description,
		IsCompleted: w.IsCompleted,
	}
}

func ToWrite(t model.Task) model.TaskWrite {
	return model.TaskWrite{
		ID:          model.SomeID(t.ID),
		Description: t.Description,
		IsCompleted: t.IsCompleted,
	}
}
