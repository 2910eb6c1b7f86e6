package repository

import (
	"context"

	"taskdeck/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, description, completed, created_at
		 FROM tasks
		 WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Description, &t.Completed, &t.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO tasks (user_id, description, completed)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		t.UserID, t.Description, t.Completed,
	).Scan(&t.ID, &t.CreatedAt)
}

// SetCompleted updates the completion flag. The user_id filter is the
// ownership check: a task owned by someone else behaves exactly like a
// missing one.
func (r *TaskRepository) SetCompleted(ctx context.Context, userID, id int64, completed bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE tasks SET completed = $1 WHERE id = $2 AND user_id = $3`,
		completed, id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// DeleteAllForUser removes every task the user owns. Used by account
// deletion, which must clear tasks before the user row goes away.
func (r *TaskRepository) DeleteAllForUser(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE user_id = $1`, userID)
	return err
}
