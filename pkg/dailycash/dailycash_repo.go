package dailycash

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repo interface {
	Upsert(ctx context.Context, userId int, entry Entry) error
	GetAll(ctx context.Context, userId int) ([]Entry, error)
	GetForRange(ctx context.Context, userId int, from, to string) ([]Entry, error)
	Delete(ctx context.Context, userId int, entryId int) (bool, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewDailyCashRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Upsert(ctx context.Context, userId int, entry Entry) error {
	query := `INSERT INTO daily_cash (user_id, date, amount, notes)
				VALUES (?, ?, ?, ?)
				ON CONFLICT (user_id, date) DO UPDATE SET amount = excluded.amount, notes = excluded.notes`
	_, err := r.db.ExecContext(ctx, query, userId, entry.Date, entry.Amount, nullableString(entry.Notes))
	if err != nil {
		err := fmt.Errorf("could not upsert daily cash entry: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepoImpl) GetAll(ctx context.Context, userId int) ([]Entry, error) {
	query := `SELECT id, date, amount, notes FROM daily_cash
				WHERE user_id = ? ORDER BY date DESC`
	return r.queryEntries(ctx, query, userId)
}

func (r *RepoImpl) GetForRange(ctx context.Context, userId int, from, to string) ([]Entry, error) {
	query := `SELECT id, date, amount, notes FROM daily_cash
				WHERE user_id = ? AND date >= ? AND date <= ? ORDER BY date DESC`
	return r.queryEntries(ctx, query, userId, from, to)
}

func (r *RepoImpl) Delete(ctx context.Context, userId int, entryId int) (bool, error) {
	query := `DELETE FROM daily_cash WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, query, entryId, userId)
	if err != nil {
		err := fmt.Errorf("could not delete daily cash entry: %w", err)
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

func (r *RepoImpl) queryEntries(ctx context.Context, query string, args ...any) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query daily cash entries: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var notes sql.NullString
		if err := rows.Scan(&entry.ID, &entry.Date, &entry.Amount, &notes); err != nil {
			err := fmt.Errorf("could not scan daily cash entry: %w", err)
			log.Error(err)
			return nil, err
		}
		entry.Notes = notes.String
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return entries, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
