package template

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repo interface {
	Store(ctx context.Context, userId int, template Template) (int, error)
	GetAll(ctx context.Context, userId int) ([]Template, error)
	Update(ctx context.Context, userId int, template Template) (bool, error)
	Delete(ctx context.Context, userId int, templateId int) (bool, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewTemplateRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Store(ctx context.Context, userId int, template Template) (int, error) {
	query := `INSERT INTO expense_templates (user_id, name, description, amount, category_id)
				VALUES (?, ?, ?, ?, ?) RETURNING id`
	var id int
	err := r.db.QueryRowContext(ctx, query,
		userId,
		template.Name,
		nullableString(template.Description),
		nullableInt64(template.Amount),
		nullableInt(template.CategoryID),
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not store template: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r *RepoImpl) GetAll(ctx context.Context, userId int) ([]Template, error) {
	query := `SELECT id, name, description, amount, category_id FROM expense_templates
				WHERE user_id = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query templates: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var templates []Template
	for rows.Next() {
		var template Template
		var description sql.NullString
		var amount, categoryId sql.NullInt64
		if err := rows.Scan(&template.ID, &template.Name, &description, &amount, &categoryId); err != nil {
			err := fmt.Errorf("could not scan template: %w", err)
			log.Error(err)
			return nil, err
		}
		template.Description = description.String
		template.Amount = amount.Int64
		template.CategoryID = int(categoryId.Int64)
		templates = append(templates, template)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return templates, nil
}

func (r *RepoImpl) Update(ctx context.Context, userId int, template Template) (bool, error) {
	query := `UPDATE expense_templates SET name = ?, description = ?, amount = ?, category_id = ?
				WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, query,
		template.Name,
		nullableString(template.Description),
		nullableInt64(template.Amount),
		nullableInt(template.CategoryID),
		template.ID,
		userId,
	)
	if err != nil {
		err := fmt.Errorf("could not update template: %w", err)
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

func (r *RepoImpl) Delete(ctx context.Context, userId int, templateId int) (bool, error) {
	query := `DELETE FROM expense_templates WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, query, templateId, userId)
	if err != nil {
		err := fmt.Errorf("could not delete template: %w", err)
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

func nullableInt(i int) any {
	if i == 0 {
		return nil
	}
	return i
}

func nullableInt64(i int64) any {
	if i == 0 {
		return nil
	}
	return i
}
