package repo

import (
	"context"

	"github.com/BuzzLyutic/simplido/internal/model"
)

// UserRepository определяет интерфейс для работы с пользователями
type UserRepository interface {
	Create(ctx context.Context, u model.User) (model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
}

// TaskRepository определяет интерфейс для работы с задачами.
// Все выборки и мутации фильтруются по владельцу на уровне SQL.
type TaskRepository interface {
	Create(ctx context.Context, t model.Task) (model.Task, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Task, error)
	Update(ctx context.Context, t model.Task) (model.Task, error)
	Delete(ctx context.Context, id, ownerID int64) error
	StatsByOwner(ctx context.Context, ownerID int64) (Stats, error)
}
