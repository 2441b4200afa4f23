package expense

import (
	"context"
	"sort"
)

type StubExpenseRepo struct {
	nextId int
	data   map[int]Expense
}

func NewStubExpenseRepo() *StubExpenseRepo {
	return &StubExpenseRepo{data: map[int]Expense{}}
}

func (s *StubExpenseRepo) Store(ctx context.Context, userId int, expense Expense) (int, error) {
	s.nextId++
	expense.ID = s.nextId
	s.data[expense.ID] = expense
	return expense.ID, nil
}

func (s *StubExpenseRepo) GetAll(ctx context.Context, userId int) ([]Expense, error) {
	expenses := make([]Expense, 0, len(s.data))
	for _, e := range s.data {
		expenses = append(expenses, e)
	}
	sortExpenses(expenses)
	return expenses, nil
}

func (s *StubExpenseRepo) GetForRange(ctx context.Context, userId int, from, to string) ([]Expense, error) {
	var expenses []Expense
	for _, e := range s.data {
		if e.IncurredAt >= from && e.IncurredAt <= to {
			expenses = append(expenses, e)
		}
	}
	sortExpenses(expenses)
	return expenses, nil
}

func (s *StubExpenseRepo) GetByID(ctx context.Context, userId int, expenseId int) (Expense, error) {
	e, ok := s.data[expenseId]
	if !ok {
		return Expense{}, ErrNotFound
	}
	return e, nil
}

func (s *StubExpenseRepo) Update(ctx context.Context, userId int, expense Expense) (bool, error) {
	existing, ok := s.data[expense.ID]
	if !ok {
		return false, nil
	}
	expense.ReceiptPath = existing.ReceiptPath
	s.data[expense.ID] = expense
	return true, nil
}

func (s *StubExpenseRepo) Delete(ctx context.Context, userId int, expenseId int) (bool, error) {
	if _, ok := s.data[expenseId]; !ok {
		return false, nil
	}
	delete(s.data, expenseId)
	return true, nil
}

func (s *StubExpenseRepo) Cleanup() {
	s.data = map[int]Expense{}
}

func sortExpenses(expenses []Expense) {
	sort.Slice(expenses, func(i, j int) bool {
		if expenses[i].IncurredAt != expenses[j].IncurredAt {
			return expenses[i].IncurredAt > expenses[j].IncurredAt
		}
		return expenses[i].ID > expenses[j].ID
	})
}
