package apartment

import (
	"context"
	"fmt"
	"strings"

	"github.com/domakasa/domakasa/internal/validation"
	"github.com/domakasa/domakasa/pkg/user"
)

type Service interface {
	GetAll(ctx context.Context) ([]Apartment, error)
	Create(ctx context.Context, apartment Apartment) (Apartment, error)
	Update(ctx context.Context, apartment Apartment) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	MarkPaid(ctx context.Context, apartmentId int, period string) error
	MarkUnpaid(ctx context.Context, apartmentId int, period string) error
	GetMonthSummary(ctx context.Context, period string) (MonthSummary, error)
}

type ServiceImpl struct {
	repo        Repo
	paymentRepo PaymentRepo
}

func NewApartmentService(repo Repo, paymentRepo PaymentRepo) *ServiceImpl {
	return &ServiceImpl{repo: repo, paymentRepo: paymentRepo}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Apartment, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId)
}

func (s *ServiceImpl) Create(ctx context.Context, apartment Apartment) (Apartment, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Apartment{}, fmt.Errorf("failed to get current user: %w", err)
	}
	apartment.Name = strings.TrimSpace(apartment.Name)
	if err := validateApartment(apartment); err != nil {
		return Apartment{}, err
	}

	id, err := s.repo.Store(ctx, userId, apartment)
	if err != nil {
		return Apartment{}, err
	}
	apartment.ID = id
	return apartment, nil
}

func (s *ServiceImpl) Update(ctx context.Context, apartment Apartment) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	apartment.Name = strings.TrimSpace(apartment.Name)
	if err := validateApartment(apartment); err != nil {
		return false, err
	}
	return s.repo.Update(ctx, userId, apartment)
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.Delete(ctx, userId, id)
}

// MarkPaid settles the apartment's fee for the period. Repeating the call
// for the same period refreshes the amount rather than duplicating it.
func (s *ServiceImpl) MarkPaid(ctx context.Context, apartmentId int, period string) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	if err := validation.Month("period", period); err != nil {
		return err
	}
	apartment, err := s.repo.GetByID(ctx, userId, apartmentId)
	if err != nil {
		return err
	}
	return s.paymentRepo.Upsert(ctx, Payment{
		ApartmentID: apartment.ID,
		Amount:      apartment.MonthlyFee,
		Period:      period,
	})
}

// MarkUnpaid reverses MarkPaid. Removing a period that was never paid is
// not an error.
func (s *ServiceImpl) MarkUnpaid(ctx context.Context, apartmentId int, period string) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	if err := validation.Month("period", period); err != nil {
		return err
	}
	if _, err := s.repo.GetByID(ctx, userId, apartmentId); err != nil {
		return err
	}
	_, err = s.paymentRepo.Delete(ctx, apartmentId, period)
	return err
}

// GetMonthSummary reports collection progress for one period over the
// active apartments. Collected counts actual payments, Total the fees owed.
func (s *ServiceImpl) GetMonthSummary(ctx context.Context, period string) (MonthSummary, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return MonthSummary{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := validation.Month("period", period); err != nil {
		return MonthSummary{}, err
	}

	apartments, err := s.repo.GetAll(ctx, userId)
	if err != nil {
		return MonthSummary{}, err
	}
	payments, err := s.paymentRepo.GetForPeriod(ctx, userId, period)
	if err != nil {
		return MonthSummary{}, err
	}

	paidBy := make(map[int]int64, len(payments))
	for _, p := range payments {
		paidBy[p.ApartmentID] = p.Amount
	}

	summary := MonthSummary{Period: period}
	for _, a := range apartments {
		if !a.Active {
			continue
		}
		amount, paid := paidBy[a.ID]
		summary.Statuses = append(summary.Statuses, Status{Apartment: a, Paid: paid, Amount: amount})
		summary.Total += a.MonthlyFee
		summary.TotalCount++
		if paid {
			summary.Collected += amount
			summary.PaidCount++
		}
	}
	if summary.Total > 0 {
		summary.Progress = int((summary.Collected*200 + summary.Total) / (2 * summary.Total))
	}
	return summary, nil
}

func validateApartment(apartment Apartment) error {
	return validation.First(
		validation.Text("name", apartment.Name, true, 200),
		validation.Amount("monthlyFee", apartment.MonthlyFee),
	)
}
