package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/simplido/internal/model"
)

type Stats struct {
	Open int `json:"open"`
	Completed int `json:"completed"`
	Total int `json:"total"`
}

type TaskRepo struct {
	pool *pgxpool.Pool
}

func NewTaskRepo(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{
		pool: pool,
	}
}

func (r *TaskRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (title, description, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, title, description, completed, owner_id, created_at, updated_at
	`, t.Title, t.Description, t.OwnerID).Scan(
		&t.ID, &t.Title, &t.Description, &t.Completed, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *TaskRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, completed, owner_id, created_at, updated_at
		FROM tasks
		WHERE owner_id = $1
		ORDER BY id
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepo) Update(ctx context.Context, t model.Task) (model.Task, error) {
	// Фильтр по owner_id в WHERE: чужая задача неотличима от несуществующей
	err := r.pool.QueryRow(ctx, `
		UPDATE tasks
		SET title = $3, description = $4, completed = $5, updated_at = now()
		WHERE id = $1 AND owner_id = $2
		RETURNING id, title, description, completed, owner_id, created_at, updated_at
	`, t.ID, t.OwnerID, t.Title, t.Description, t.Completed).Scan(
		&t.ID, &t.Title, &t.Description, &t.Completed, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return t, ErrorNotFound
	}
	return t, err
}

func (r *TaskRepo) Delete(ctx context.Context, id, ownerID int64) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM tasks WHERE id = $1 AND owner_id = $2", id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrorNotFound
	}
	return nil
}

func (r *TaskRepo) StatsByOwner(ctx context.Context, ownerID int64) (Stats, error) {
	var s Stats
	err := r.pool.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE NOT completed),
			COUNT(*) FILTER (WHERE completed),
			COUNT(*)
		FROM tasks
		WHERE owner_id = $1
	`, ownerID).Scan(&s.Open, &s.Completed, &s.Total)
	return s, err
}
