package service

import (
	"context"
	"errors"
	"strings"

	"github.com/BuzzLyutic/simplido/internal/model"
	"github.com/BuzzLyutic/simplido/internal/repo"
)

var (
	ErrValidation = errors.New("validation error")
)

// TaskService выполняет CRUD над задачами. Каждая операция принимает
// владельца, уже разрезолвленного гейтом, и фильтрует по нему.
type TaskService struct {
	repo repo.TaskRepository
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Create(ctx context.Context, owner model.User, title string, description *string) (model.Task, error) {
	if strings.TrimSpace(title) == "" {
		return model.Task{}, ErrValidation
	}
	return s.repo.Create(ctx, model.Task{
		Title:       title,
		Description: description,
		OwnerID:     owner.ID,
	})
}

func (s *TaskService) ListForOwner(ctx context.Context, owner model.User) ([]model.Task, error) {
	return s.repo.ListByOwner(ctx, owner.ID)
}

// Update полностью перезаписывает три мутабельных поля.
// Чужая и несуществующая задача дают одинаковый ErrorNotFound.
func (s *TaskService) Update(ctx context.Context, owner model.User, taskID int64, title string, description *string, completed bool) (model.Task, error) {
	if strings.TrimSpace(title) == "" {
		return model.Task{}, ErrValidation
	}
	return s.repo.Update(ctx, model.Task{
		ID:          taskID,
		OwnerID:     owner.ID,
		Title:       title,
		Description: description,
		Completed:   completed,
	})
}

func (s *TaskService) Delete(ctx context.Context, owner model.User, taskID int64) error {
	return s.repo.Delete(ctx, taskID, owner.ID)
}

func (s *TaskService) StatsForOwner(ctx context.Context, owner model.User) (repo.Stats, error) {
	return s.repo.StatsByOwner(ctx, owner.ID)
}
