package goal

import (
	"context"
	"sort"
)

type StubGoalRepo struct {
	nextId int
	data   map[int]Goal
}

func NewStubGoalRepo() *StubGoalRepo {
	return &StubGoalRepo{data: map[int]Goal{}}
}

func (s *StubGoalRepo) Store(ctx context.Context, userId int, goal Goal) (int, error) {
	s.nextId++
	goal.ID = s.nextId
	s.data[goal.ID] = goal
	return goal.ID, nil
}

func (s *StubGoalRepo) GetAll(ctx context.Context, userId int) ([]Goal, error) {
	goals := make([]Goal, 0, len(s.data))
	for _, g := range s.data {
		goals = append(goals, g)
	}
	sort.Slice(goals, func(i, j int) bool { return goals[i].ID > goals[j].ID })
	return goals, nil
}

func (s *StubGoalRepo) Update(ctx context.Context, userId int, goal Goal) (bool, error) {
	if _, ok := s.data[goal.ID]; !ok {
		return false, nil
	}
	s.data[goal.ID] = goal
	return true, nil
}

func (s *StubGoalRepo) Delete(ctx context.Context, userId int, goalId int) (bool, error) {
	if _, ok := s.data[goalId]; !ok {
		return false, nil
	}
	delete(s.data, goalId)
	return true, nil
}

func (s *StubGoalRepo) Cleanup() {
	s.data = map[int]Goal{}
}
