package goal

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repo interface {
	Store(ctx context.Context, userId int, goal Goal) (int, error)
	GetAll(ctx context.Context, userId int) ([]Goal, error)
	Update(ctx context.Context, userId int, goal Goal) (bool, error)
	Delete(ctx context.Context, userId int, goalId int) (bool, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewGoalRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Store(ctx context.Context, userId int, goal Goal) (int, error) {
	query := `INSERT INTO goals (user_id, title, target_amount, saved_amount, deadline)
				VALUES (?, ?, ?, ?, ?) RETURNING id`
	var id int
	err := r.db.QueryRowContext(ctx, query,
		userId,
		goal.Title,
		goal.Target,
		goal.Saved,
		nullableString(goal.Deadline),
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not store goal: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r *RepoImpl) GetAll(ctx context.Context, userId int) ([]Goal, error) {
	query := `SELECT id, title, target_amount, saved_amount, deadline FROM goals
				WHERE user_id = ? ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query goals: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var goals []Goal
	for rows.Next() {
		var goal Goal
		var deadline sql.NullString
		if err := rows.Scan(&goal.ID, &goal.Title, &goal.Target, &goal.Saved, &deadline); err != nil {
			err := fmt.Errorf("could not scan goal: %w", err)
			log.Error(err)
			return nil, err
		}
		goal.Deadline = deadline.String
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return goals, nil
}

func (r *RepoImpl) Update(ctx context.Context, userId int, goal Goal) (bool, error) {
	query := `UPDATE goals SET title = ?, target_amount = ?, saved_amount = ?, deadline = ?
				WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, query,
		goal.Title,
		goal.Target,
		goal.Saved,
		nullableString(goal.Deadline),
		goal.ID,
		userId,
	)
	if err != nil {
		err := fmt.Errorf("could not update goal: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func (r *RepoImpl) Delete(ctx context.Context, userId int, goalId int) (bool, error) {
	query := `DELETE FROM goals WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, query, goalId, userId)
	if err != nil {
		err := fmt.Errorf("could not delete goal: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
