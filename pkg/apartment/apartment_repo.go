package apartment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("apartment not found")

type Repo interface {
	Store(ctx context.Context, userId int, apartment Apartment) (int, error)
	GetAll(ctx context.Context, userId int) ([]Apartment, error)
	GetByID(ctx context.Context, userId int, apartmentId int) (Apartment, error)
	Update(ctx context.Context, userId int, apartment Apartment) (bool, error)
	Delete(ctx context.Context, userId int, apartmentId int) (bool, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewApartmentRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Store(ctx context.Context, userId int, apartment Apartment) (int, error) {
	query := `INSERT INTO apartments (user_id, name, monthly_fee, active)
				VALUES (?, ?, ?, ?) RETURNING id`
	var id int
	err := r.db.QueryRowContext(ctx, query, userId, apartment.Name, apartment.MonthlyFee, apartment.Active).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not store apartment: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r *RepoImpl) GetAll(ctx context.Context, userId int) ([]Apartment, error) {
	query := `SELECT id, name, monthly_fee, active FROM apartments
				WHERE user_id = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query apartments: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var apartments []Apartment
	for rows.Next() {
		var apartment Apartment
		if err := rows.Scan(&apartment.ID, &apartment.Name, &apartment.MonthlyFee, &apartment.Active); err != nil {
			err := fmt.Errorf("could not scan apartment: %w", err)
			log.Error(err)
			return nil, err
		}
		apartments = append(apartments, apartment)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return apartments, nil
}

func (r *RepoImpl) GetByID(ctx context.Context, userId int, apartmentId int) (Apartment, error) {
	query := `SELECT id, name, monthly_fee, active FROM apartments
				WHERE id = ? AND user_id = ?`
	var apartment Apartment
	err := r.db.QueryRowContext(ctx, query, apartmentId, userId).
		Scan(&apartment.ID, &apartment.Name, &apartment.MonthlyFee, &apartment.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return Apartment{}, ErrNotFound
	}
	if err != nil {
		err := fmt.Errorf("could not get apartment: %w", err)
		log.Error(err)
		return Apartment{}, err
	}
	return apartment, nil
}

func (r *RepoImpl) Update(ctx context.Context, userId int, apartment Apartment) (bool, error) {
	query := `UPDATE apartments SET name = ?, monthly_fee = ?, active = ?
				WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, query, apartment.Name, apartment.MonthlyFee, apartment.Active, apartment.ID, userId)
	if err != nil {
		err := fmt.Errorf("could not update apartment: %w", err)
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

func (r *RepoImpl) Delete(ctx context.Context, userId int, apartmentId int) (bool, error) {
	query := `DELETE FROM apartments WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, query, apartmentId, userId)
	if err != nil {
		err := fmt.Errorf("could not delete apartment: %w", err)
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
