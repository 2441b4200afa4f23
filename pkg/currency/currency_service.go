package currency

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/domakasa/domakasa/internal/money"
	"github.com/domakasa/domakasa/internal/utils"
	"github.com/domakasa/domakasa/pkg/user"
	log "github.com/sirupsen/logrus"
)

// FixedRate is the official BGN-per-EUR peg, the terminal fallback when no
// upstream source answers.
const FixedRate = 1.95583

// cacheTTL bounds how long a fetched rate is reused before asking upstream
// again. The peg makes staleness harmless.
const cacheTTL = time.Hour

// Rate is a BGN-per-EUR quote together with where it came from.
type Rate struct {
	Value  float64
	Source string
}

type Service interface {
	GetDisplayCurrency(ctx context.Context) (user.Currency, error)
	// SetDisplayCurrency persists the preference. A switch to euro also
	// refreshes the rate once; a switch back to lev fetches nothing.
	SetDisplayCurrency(ctx context.Context, currency user.Currency) (user.Currency, error)
	GetRate(ctx context.Context) Rate
	// Convert renders a base-currency amount in the requested display
	// currency as a decimal value.
	Convert(stotinki int64, to user.Currency, rate float64) float64
	Format(value float64, currency user.Currency) string
}

type ServiceImpl struct {
	userService user.Service
	sources     []RateSource
	clock       utils.Clock

	mu        sync.Mutex
	cached    Rate
	fetchedAt time.Time
}

func NewCurrencyService(userService user.Service, sources []RateSource, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{userService: userService, sources: sources, clock: clock}
}

func (s *ServiceImpl) GetDisplayCurrency(ctx context.Context) (user.Currency, error) {
	current, err := s.userService.GetCurrentUser(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}
	return current.DisplayCurrency, nil
}

func (s *ServiceImpl) SetDisplayCurrency(ctx context.Context, currency user.Currency) (user.Currency, error) {
	updated, err := s.userService.SetDisplayCurrency(ctx, currency)
	if err != nil {
		return "", err
	}
	if updated.DisplayCurrency == user.CurrencyEUR {
		s.GetRate(ctx)
	}
	return updated.DisplayCurrency, nil
}

// GetRate returns the current BGN-per-EUR quote. Sources are tried in
// order and the first answer wins; when all of them fail the official peg
// is used. A fetched quote is cached for an hour.
func (s *ServiceImpl) GetRate(ctx context.Context) Rate {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if s.cached.Value > 0 && now.Sub(s.fetchedAt) < cacheTTL {
		return s.cached
	}

	for _, source := range s.sources {
		value, err := source.Fetch(ctx)
		if err != nil {
			log.Warnf("rate source %s failed: %v", source.Name(), err)
			continue
		}
		s.cached = Rate{Value: value, Source: source.Name()}
		s.fetchedAt = now
		return s.cached
	}

	return Rate{Value: FixedRate, Source: "fixed"}
}

func (s *ServiceImpl) Convert(stotinki int64, to user.Currency, rate float64) float64 {
	lev := money.ToLev(stotinki)
	if to != user.CurrencyEUR {
		return lev
	}
	if rate <= 0 {
		rate = FixedRate
	}
	return lev / rate
}

func (s *ServiceImpl) Format(value float64, currency user.Currency) string {
	if currency == user.CurrencyEUR {
		return fmt.Sprintf("€%.2f", value)
	}
	return fmt.Sprintf("%.2f лв.", value)
}
