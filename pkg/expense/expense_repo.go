package expense

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("expense not found")

type Repo interface {
	Store(ctx context.Context, userId int, expense Expense) (int, error)
	GetAll(ctx context.Context, userId int) ([]Expense, error)
	// GetForRange returns expenses with from <= incurred_at <= to.
	GetForRange(ctx context.Context, userId int, from, to string) ([]Expense, error)
	GetByID(ctx context.Context, userId int, expenseId int) (Expense, error)
	Update(ctx context.Context, userId int, expense Expense) (bool, error)
	Delete(ctx context.Context, userId int, expenseId int) (bool, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewExpenseRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Store(ctx context.Context, userId int, expense Expense) (int, error) {
	query := `INSERT INTO expenses (user_id, amount, incurred_at, description, recipient, category_id, receipt_path)
				VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id`

	var id int
	err := r.db.QueryRowContext(ctx, query,
		userId,
		expense.Amount,
		expense.IncurredAt,
		nullableString(expense.Description),
		nullableString(expense.Recipient),
		nullableInt(expense.CategoryID),
		nullableString(expense.ReceiptPath),
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not store expense: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r *RepoImpl) GetAll(ctx context.Context, userId int) ([]Expense, error) {
	query := `SELECT id, amount, incurred_at, description, recipient, category_id, receipt_path
				FROM expenses WHERE user_id = ? ORDER BY incurred_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query expenses: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()
	return scanExpenses(rows)
}

func (r *RepoImpl) GetForRange(ctx context.Context, userId int, from, to string) ([]Expense, error) {
	query := `SELECT id, amount, incurred_at, description, recipient, category_id, receipt_path
				FROM expenses WHERE user_id = ? AND incurred_at >= ? AND incurred_at <= ?
				ORDER BY incurred_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userId, from, to)
	if err != nil {
		err := fmt.Errorf("could not query expenses: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()
	return scanExpenses(rows)
}

func (r *RepoImpl) GetByID(ctx context.Context, userId int, expenseId int) (Expense, error) {
	query := `SELECT id, amount, incurred_at, description, recipient, category_id, receipt_path
				FROM expenses WHERE id = ? AND user_id = ?`
	row := r.db.QueryRowContext(ctx, query, expenseId, userId)

	expense, err := scanExpense(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Expense{}, ErrNotFound
	} else if err != nil {
		err := fmt.Errorf("could not get expense: %w", err)
		log.Error(err)
		return Expense{}, err
	}
	return expense, nil
}

func (r *RepoImpl) Update(ctx context.Context, userId int, expense Expense) (bool, error) {
	query := `UPDATE expenses SET amount = ?, incurred_at = ?, description = ?, recipient = ?, category_id = ?
				WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, query,
		expense.Amount,
		expense.IncurredAt,
		nullableString(expense.Description),
		nullableString(expense.Recipient),
		nullableInt(expense.CategoryID),
		expense.ID,
		userId,
	)
	if err != nil {
		err := fmt.Errorf("could not update expense: %w", err)
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

func (r *RepoImpl) Delete(ctx context.Context, userId int, expenseId int) (bool, error) {
	query := `DELETE FROM expenses WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, query, expenseId, userId)
	if err != nil {
		err := fmt.Errorf("could not delete expense: %w", err)
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

func scanExpenses(rows *sql.Rows) ([]Expense, error) {
	var expenses []Expense
	for rows.Next() {
		expense, err := scanExpense(rows.Scan)
		if err != nil {
			err := fmt.Errorf("could not scan expense: %w", err)
			log.Error(err)
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return expenses, nil
}

func scanExpense(scan func(dest ...any) error) (Expense, error) {
	var expense Expense
	var description, recipient, receiptPath sql.NullString
	var categoryId sql.NullInt64
	err := scan(
		&expense.ID,
		&expense.Amount,
		&expense.IncurredAt,
		&description,
		&recipient,
		&categoryId,
		&receiptPath,
	)
	if err != nil {
		return Expense{}, err
	}
	expense.Description = description.String
	expense.Recipient = recipient.String
	expense.ReceiptPath = receiptPath.String
	expense.CategoryID = int(categoryId.Int64)
	return expense, nil
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
