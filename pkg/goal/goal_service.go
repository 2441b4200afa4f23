package goal

import (
	"context"
	"fmt"
	"strings"

	"github.com/domakasa/domakasa/internal/validation"
	"github.com/domakasa/domakasa/pkg/user"
)

type Service interface {
	GetAll(ctx context.Context) ([]Goal, error)
	Create(ctx context.Context, goal Goal) (Goal, error)
	Update(ctx context.Context, goal Goal) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ServiceImpl struct {
	repo Repo
}

func NewGoalService(repo Repo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Goal, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId)
}

func (s *ServiceImpl) Create(ctx context.Context, goal Goal) (Goal, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Goal{}, fmt.Errorf("failed to get current user: %w", err)
	}
	goal.Title = strings.TrimSpace(goal.Title)
	if err := validateGoal(goal); err != nil {
		return Goal{}, err
	}

	id, err := s.repo.Store(ctx, userId, goal)
	if err != nil {
		return Goal{}, err
	}
	goal.ID = id
	return goal, nil
}

func (s *ServiceImpl) Update(ctx context.Context, goal Goal) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	goal.Title = strings.TrimSpace(goal.Title)
	if err := validateGoal(goal); err != nil {
		return false, err
	}
	return s.repo.Update(ctx, userId, goal)
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.Delete(ctx, userId, id)
}

func validateGoal(goal Goal) error {
	checks := []error{
		validation.Text("title", goal.Title, true, 200),
		validation.Amount("target", goal.Target),
		validation.NonNegativeAmount("saved", goal.Saved),
	}
	if goal.Saved > goal.Target {
		checks = append(checks, &validation.Error{Field: "saved", Message: "saved amount cannot exceed the target"})
	}
	if goal.Deadline != "" {
		checks = append(checks, validation.Date("deadline", goal.Deadline))
	}
	return validation.First(checks...)
}
