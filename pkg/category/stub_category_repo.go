package category

import (
	"context"
	"sort"
)

type StubCategoryRepo struct {
	nextId int
	data   map[int]Category
}

func NewStubCategoryRepo() *StubCategoryRepo {
	return &StubCategoryRepo{data: map[int]Category{}}
}

func (s *StubCategoryRepo) Store(ctx context.Context, userId int, category Category) (int, error) {
	s.nextId++
	category.ID = s.nextId
	s.data[category.ID] = category
	return category.ID, nil
}

func (s *StubCategoryRepo) GetAll(ctx context.Context, userId int) ([]Category, error) {
	categories := make([]Category, 0, len(s.data))
	for _, c := range s.data {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (s *StubCategoryRepo) FindByName(ctx context.Context, userId int, name string) (Category, error) {
	for _, c := range s.data {
		if c.Name == name {
			return c, nil
		}
	}
	return Category{}, ErrNotFound
}

func (s *StubCategoryRepo) Update(ctx context.Context, userId int, category Category) (bool, error) {
	if _, ok := s.data[category.ID]; !ok {
		return false, nil
	}
	s.data[category.ID] = category
	return true, nil
}

func (s *StubCategoryRepo) Delete(ctx context.Context, userId int, categoryId int) (bool, error) {
	if _, ok := s.data[categoryId]; !ok {
		return false, nil
	}
	delete(s.data, categoryId)
	return true, nil
}

func (s *StubCategoryRepo) Cleanup() {
	s.data = map[int]Category{}
}
