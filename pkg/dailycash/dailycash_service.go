package dailycash

import (
	"context"
	"fmt"

	"github.com/domakasa/domakasa/internal/validation"
	"github.com/domakasa/domakasa/pkg/user"
)

type Service interface {
	GetAll(ctx context.Context) ([]Entry, error)
	GetForRange(ctx context.Context, from, to string) ([]Entry, error)
	Record(ctx context.Context, entry Entry) error
	Delete(ctx context.Context, id int) (bool, error)
}

type ServiceImpl struct {
	repo Repo
}

func NewDailyCashService(repo Repo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Entry, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId)
}

func (s *ServiceImpl) GetForRange(ctx context.Context, from, to string) ([]Entry, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := validation.First(validation.Date("from", from), validation.Date("to", to)); err != nil {
		return nil, err
	}
	return s.repo.GetForRange(ctx, userId, from, to)
}

// Record stores the snapshot for the entry's day, replacing any earlier
// snapshot for that day.
func (s *ServiceImpl) Record(ctx context.Context, entry Entry) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	if err := validateEntry(entry); err != nil {
		return err
	}
	return s.repo.Upsert(ctx, userId, entry)
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.Delete(ctx, userId, id)
}

func validateEntry(entry Entry) error {
	return validation.First(
		validation.Date("date", entry.Date),
		validation.NonNegativeAmount("amount", entry.Amount),
		validation.Text("notes", entry.Notes, false, 500),
	)
}
