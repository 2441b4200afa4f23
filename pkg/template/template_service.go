package template

import (
	"context"
	"fmt"
	"strings"

	"github.com/domakasa/domakasa/internal/validation"
	"github.com/domakasa/domakasa/pkg/user"
)

type Service interface {
	GetAll(ctx context.Context) ([]Template, error)
	Create(ctx context.Context, template Template) (Template, error)
	Update(ctx context.Context, template Template) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ServiceImpl struct {
	repo Repo
}

func NewTemplateService(repo Repo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Template, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId)
}

func (s *ServiceImpl) Create(ctx context.Context, template Template) (Template, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Template{}, fmt.Errorf("failed to get current user: %w", err)
	}
	template.Name = strings.TrimSpace(template.Name)
	if err := validateTemplate(template); err != nil {
		return Template{}, err
	}

	id, err := s.repo.Store(ctx, userId, template)
	if err != nil {
		return Template{}, err
	}
	template.ID = id
	return template, nil
}

func (s *ServiceImpl) Update(ctx context.Context, template Template) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	template.Name = strings.TrimSpace(template.Name)
	if err := validateTemplate(template); err != nil {
		return false, err
	}
	return s.repo.Update(ctx, userId, template)
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.Delete(ctx, userId, id)
}

func validateTemplate(template Template) error {
	checks := []error{
		validation.Text("name", template.Name, true, 200),
		validation.Text("description", template.Description, false, 500),
	}
	// Amount is an optional prefill; zero means "not suggested".
	if template.Amount != 0 {
		checks = append(checks, validation.Amount("amount", template.Amount))
	}
	return validation.First(checks...)
}
