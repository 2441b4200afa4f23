package apartment

import "context"

type paymentKey struct {
	apartmentId int
	period      string
}

type StubPaymentRepo struct {
	nextId int
	data   map[paymentKey]Payment
}

func NewStubPaymentRepo() *StubPaymentRepo {
	return &StubPaymentRepo{data: map[paymentKey]Payment{}}
}

func (s *StubPaymentRepo) Upsert(ctx context.Context, payment Payment) error {
	key := paymentKey{payment.ApartmentID, payment.Period}
	if existing, ok := s.data[key]; ok {
		existing.Amount = payment.Amount
		s.data[key] = existing
		return nil
	}
	s.nextId++
	payment.ID = s.nextId
	s.data[key] = payment
	return nil
}

func (s *StubPaymentRepo) Delete(ctx context.Context, apartmentId int, period string) (bool, error) {
	key := paymentKey{apartmentId, period}
	if _, ok := s.data[key]; !ok {
		return false, nil
	}
	delete(s.data, key)
	return true, nil
}

func (s *StubPaymentRepo) GetForPeriod(ctx context.Context, userId int, period string) ([]Payment, error) {
	var payments []Payment
	for key, p := range s.data {
		if key.period == period {
			payments = append(payments, p)
		}
	}
	return payments, nil
}

func (s *StubPaymentRepo) Cleanup() {
	s.data = map[paymentKey]Payment{}
}
