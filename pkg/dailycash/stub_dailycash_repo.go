package dailycash

import (
	"context"
	"sort"
)

type StubDailyCashRepo struct {
	nextId int
	data   map[string]Entry // keyed by date
}

func NewStubDailyCashRepo() *StubDailyCashRepo {
	return &StubDailyCashRepo{data: map[string]Entry{}}
}

func (s *StubDailyCashRepo) Upsert(ctx context.Context, userId int, entry Entry) error {
	if existing, ok := s.data[entry.Date]; ok {
		existing.Amount = entry.Amount
		existing.Notes = entry.Notes
		s.data[entry.Date] = existing
		return nil
	}
	s.nextId++
	entry.ID = s.nextId
	s.data[entry.Date] = entry
	return nil
}

func (s *StubDailyCashRepo) GetAll(ctx context.Context, userId int) ([]Entry, error) {
	entries := make([]Entry, 0, len(s.data))
	for _, e := range s.data {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date > entries[j].Date })
	return entries, nil
}

func (s *StubDailyCashRepo) GetForRange(ctx context.Context, userId int, from, to string) ([]Entry, error) {
	var entries []Entry
	for _, e := range s.data {
		if e.Date >= from && e.Date <= to {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date > entries[j].Date })
	return entries, nil
}

func (s *StubDailyCashRepo) Delete(ctx context.Context, userId int, entryId int) (bool, error) {
	for date, e := range s.data {
		if e.ID == entryId {
			delete(s.data, date)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubDailyCashRepo) Cleanup() {
	s.data = map[string]Entry{}
}
