package template

import (
	"context"
	"sort"
)

type StubTemplateRepo struct {
	nextId int
	data   map[int]Template
}

func NewStubTemplateRepo() *StubTemplateRepo {
	return &StubTemplateRepo{data: map[int]Template{}}
}

func (s *StubTemplateRepo) Store(ctx context.Context, userId int, template Template) (int, error) {
	s.nextId++
	template.ID = s.nextId
	s.data[template.ID] = template
	return template.ID, nil
}

func (s *StubTemplateRepo) GetAll(ctx context.Context, userId int) ([]Template, error) {
	templates := make([]Template, 0, len(s.data))
	for _, t := range s.data {
		templates = append(templates, t)
	}
	sort.Slice(templates, func(i, j int) bool { return templates[i].Name < templates[j].Name })
	return templates, nil
}

func (s *StubTemplateRepo) Update(ctx context.Context, userId int, template Template) (bool, error) {
	if _, ok := s.data[template.ID]; !ok {
		return false, nil
	}
	s.data[template.ID] = template
	return true, nil
}

func (s *StubTemplateRepo) Delete(ctx context.Context, userId int, templateId int) (bool, error) {
	if _, ok := s.data[templateId]; !ok {
		return false, nil
	}
	delete(s.data, templateId)
	return true, nil
}

func (s *StubTemplateRepo) Cleanup() {
	s.data = map[int]Template{}
}
