package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/domakasa/domakasa/internal/validation"
	"github.com/domakasa/domakasa/pkg/user"
)

var ErrNameTaken = errors.New("category name already exists")

type Service interface {
	GetAll(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, category Category) (Category, error)
	// Ensure returns the category with the given name, creating it if missing.
	Ensure(ctx context.Context, name string) (Category, error)
	Update(ctx context.Context, category Category) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ServiceImpl struct {
	repo Repo
}

func NewCategoryService(repo Repo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Category, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId)
}

func (s *ServiceImpl) Create(ctx context.Context, category Category) (Category, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Category{}, fmt.Errorf("failed to get current user: %w", err)
	}
	category.Name = strings.TrimSpace(category.Name)
	if err := validation.Text("name", category.Name, true, 100); err != nil {
		return Category{}, err
	}
	if _, err := s.repo.FindByName(ctx, userId, category.Name); err == nil {
		return Category{}, ErrNameTaken
	} else if !errors.Is(err, ErrNotFound) {
		return Category{}, err
	}

	id, err := s.repo.Store(ctx, userId, category)
	if err != nil {
		return Category{}, err
	}
	category.ID = id
	return category, nil
}

func (s *ServiceImpl) Ensure(ctx context.Context, name string) (Category, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Category{}, fmt.Errorf("failed to get current user: %w", err)
	}
	name = strings.TrimSpace(name)
	existing, err := s.repo.FindByName(ctx, userId, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Category{}, err
	}
	return s.Create(ctx, Category{Name: name})
}

func (s *ServiceImpl) Update(ctx context.Context, category Category) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	category.Name = strings.TrimSpace(category.Name)
	if err := validation.Text("name", category.Name, true, 100); err != nil {
		return false, err
	}
	return s.repo.Update(ctx, userId, category)
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.Delete(ctx, userId, id)
}
