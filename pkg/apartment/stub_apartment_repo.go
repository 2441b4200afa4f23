package apartment

import (
	"context"
	"sort"
)

type StubApartmentRepo struct {
	nextId int
	data   map[int]Apartment
}

func NewStubApartmentRepo() *StubApartmentRepo {
	return &StubApartmentRepo{data: map[int]Apartment{}}
}

func (s *StubApartmentRepo) Store(ctx context.Context, userId int, apartment Apartment) (int, error) {
	s.nextId++
	apartment.ID = s.nextId
	s.data[apartment.ID] = apartment
	return apartment.ID, nil
}

func (s *StubApartmentRepo) GetAll(ctx context.Context, userId int) ([]Apartment, error) {
	apartments := make([]Apartment, 0, len(s.data))
	for _, a := range s.data {
		apartments = append(apartments, a)
	}
	sort.Slice(apartments, func(i, j int) bool { return apartments[i].Name < apartments[j].Name })
	return apartments, nil
}

func (s *StubApartmentRepo) GetByID(ctx context.Context, userId int, apartmentId int) (Apartment, error) {
	apartment, ok := s.data[apartmentId]
	if !ok {
		return Apartment{}, ErrNotFound
	}
	return apartment, nil
}

func (s *StubApartmentRepo) Update(ctx context.Context, userId int, apartment Apartment) (bool, error) {
	if _, ok := s.data[apartment.ID]; !ok {
		return false, nil
	}
	s.data[apartment.ID] = apartment
	return true, nil
}

func (s *StubApartmentRepo) Delete(ctx context.Context, userId int, apartmentId int) (bool, error) {
	if _, ok := s.data[apartmentId]; !ok {
		return false, nil
	}
	delete(s.data, apartmentId)
	return true, nil
}

func (s *StubApartmentRepo) Cleanup() {
	s.data = map[int]Apartment{}
}
