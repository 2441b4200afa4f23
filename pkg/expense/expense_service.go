package expense

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/domakasa/domakasa/internal/storage"
	"github.com/domakasa/domakasa/internal/utils"
	"github.com/domakasa/domakasa/internal/validation"
	"github.com/domakasa/domakasa/pkg/user"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	GetAll(ctx context.Context) ([]Expense, error)
	GetForRange(ctx context.Context, from, to string) ([]Expense, error)
	// Create stores the optional receipt first; the stored path ends up on the
	// row. A failed upload aborts the whole create.
	Create(ctx context.Context, expense Expense, receipt *ReceiptUpload) (Expense, error)
	Update(ctx context.Context, expense Expense) (Expense, error)
	// Delete removes the row, then the receipt file best-effort.
	Delete(ctx context.Context, id int) (bool, error)
	ReceiptURL(ctx context.Context, id int) (string, error)
}

type ServiceImpl struct {
	repo  Repo
	files storage.Storage
	clock utils.Clock
}

func NewExpenseService(repo Repo, files storage.Storage, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, files: files, clock: clock}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Expense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId)
}

func (s *ServiceImpl) GetForRange(ctx context.Context, from, to string) ([]Expense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := validation.First(
		validation.Date("from", from),
		validation.Date("to", to),
	); err != nil {
		return nil, err
	}
	return s.repo.GetForRange(ctx, userId, from, to)
}

func (s *ServiceImpl) Create(ctx context.Context, expense Expense, receipt *ReceiptUpload) (Expense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Expense{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := validateExpense(expense); err != nil {
		return Expense{}, err
	}

	if receipt != nil {
		receiptPath, err := s.storeReceipt(receipt)
		if err != nil {
			return Expense{}, err
		}
		expense.ReceiptPath = receiptPath
	}

	id, err := s.repo.Store(ctx, userId, expense)
	if err != nil {
		return Expense{}, err
	}
	expense.ID = id
	return expense, nil
}

func (s *ServiceImpl) Update(ctx context.Context, expense Expense) (Expense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Expense{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := validateExpense(expense); err != nil {
		return Expense{}, err
	}

	updated, err := s.repo.Update(ctx, userId, expense)
	if err != nil {
		return Expense{}, err
	}
	if !updated {
		return Expense{}, ErrNotFound
	}
	// Receipt attachment is not editable; echo the stored row.
	return s.repo.GetByID(ctx, userId, expense.ID)
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}

	expense, err := s.repo.GetByID(ctx, userId, id)
	if err != nil {
		return false, err
	}

	deleted, err := s.repo.Delete(ctx, userId, id)
	if err != nil || !deleted {
		return deleted, err
	}

	if expense.ReceiptPath != "" {
		if err := s.files.Delete(expense.ReceiptPath); err != nil {
			// The row is gone; a leftover file is not worth failing the delete.
			log.Warnf("failed to delete receipt %s: %v", expense.ReceiptPath, err)
		}
	}
	return true, nil
}

func (s *ServiceImpl) ReceiptURL(ctx context.Context, id int) (string, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}
	expense, err := s.repo.GetByID(ctx, userId, id)
	if err != nil {
		return "", err
	}
	if expense.ReceiptPath == "" {
		return "", nil
	}
	return s.files.PublicURL(expense.ReceiptPath), nil
}

func (s *ServiceImpl) storeReceipt(receipt *ReceiptUpload) (string, error) {
	if len(receipt.Content) > MaxReceiptSize {
		return "", &validation.Error{Field: "receipt", Message: "file must not be larger than 10MB"}
	}
	if !strings.HasPrefix(receipt.ContentType, "image/") {
		return "", &validation.Error{Field: "receipt", Message: "file must be an image"}
	}

	receiptPath := fmt.Sprintf("%d_%s", s.clock.Now().UnixMilli(), sanitizeFilename(receipt.Filename))
	if err := s.files.Store(receiptPath, receipt.Content, receipt.ContentType, false); err != nil {
		return "", fmt.Errorf("could not store receipt: %w", err)
	}
	return receiptPath, nil
}

func validateExpense(expense Expense) error {
	return validation.First(
		validation.Amount("amount", expense.Amount),
		validation.Date("date", expense.IncurredAt),
		validation.Text("description", expense.Description, false, 500),
		validation.Text("recipient", expense.Recipient, false, 200),
	)
}

func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if name == "" || name == "." {
		name = "receipt"
	}
	return name
}
