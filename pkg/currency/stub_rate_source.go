package currency

import "context"

type StubRateSource struct {
	SourceName string
	Rate       float64
	Err        error
	Calls      int
}

func (s *StubRateSource) Name() string {
	return s.SourceName
}

func (s *StubRateSource) Fetch(ctx context.Context) (float64, error) {
	s.Calls++
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Rate, nil
}
