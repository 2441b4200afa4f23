package apartment

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// PaymentRepo stores settled fees. Ownership is enforced through the
// apartment row; payments carry no user column of their own.
type PaymentRepo interface {
	Upsert(ctx context.Context, payment Payment) error
	Delete(ctx context.Context, apartmentId int, period string) (bool, error)
	GetForPeriod(ctx context.Context, userId int, period string) ([]Payment, error)
}

type PaymentRepoImpl struct {
	db *sql.DB
}

func NewPaymentRepo(db *sql.DB) *PaymentRepoImpl {
	return &PaymentRepoImpl{db: db}
}

func (r *PaymentRepoImpl) Upsert(ctx context.Context, payment Payment) error {
	query := `INSERT INTO payments (apartment_id, amount, period_month)
				VALUES (?, ?, ?)
				ON CONFLICT (apartment_id, period_month) DO UPDATE SET amount = excluded.amount`
	_, err := r.db.ExecContext(ctx, query, payment.ApartmentID, payment.Amount, periodDate(payment.Period))
	if err != nil {
		err := fmt.Errorf("could not upsert payment: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *PaymentRepoImpl) Delete(ctx context.Context, apartmentId int, period string) (bool, error) {
	query := `DELETE FROM payments WHERE apartment_id = ? AND period_month = ?`
	result, err := r.db.ExecContext(ctx, query, apartmentId, periodDate(period))
	if err != nil {
		err := fmt.Errorf("could not delete payment: %w", err)
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

func (r *PaymentRepoImpl) GetForPeriod(ctx context.Context, userId int, period string) ([]Payment, error) {
	query := `SELECT p.id, p.apartment_id, p.amount FROM payments p
				JOIN apartments a ON a.id = p.apartment_id
				WHERE a.user_id = ? AND p.period_month = ?`
	rows, err := r.db.QueryContext(ctx, query, userId, periodDate(period))
	if err != nil {
		err := fmt.Errorf("could not query payments: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var payments []Payment
	for rows.Next() {
		payment := Payment{Period: period}
		if err := rows.Scan(&payment.ID, &payment.ApartmentID, &payment.Amount); err != nil {
			err := fmt.Errorf("could not scan payment: %w", err)
			log.Error(err)
			return nil, err
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return payments, nil
}

// periodDate anchors a YYYY-MM period on the first of the month, which is
// how the natural key is stored.
func periodDate(period string) string {
	return period + "-01"
}
