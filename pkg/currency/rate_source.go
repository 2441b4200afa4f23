package currency

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// RateSource fetches the current BGN-per-EUR rate from one upstream.
// Sources are consulted in order; any failure moves on to the next one.
type RateSource interface {
	Name() string
	Fetch(ctx context.Context) (float64, error)
}

// BNBSource reads the Bulgarian National Bank fixed-rate XML feed.
type BNBSource struct {
	url    string
	client *http.Client
}

func NewBNBSource(url string, client *http.Client) *BNBSource {
	return &BNBSource{url: url, client: client}
}

func (s *BNBSource) Name() string {
	return "bnb"
}

type bnbRow struct {
	Code  string `xml:"CODE"`
	Rate  string `xml:"RATE"`
	Ratio string `xml:"RATIO"`
}

type bnbDocument struct {
	Rows []bnbRow `xml:"ROW"`
}

func (s *BNBSource) Fetch(ctx context.Context) (float64, error) {
	body, err := get(ctx, s.client, s.url)
	if err != nil {
		return 0, err
	}

	var doc bnbDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return 0, fmt.Errorf("could not parse BNB feed: %w", err)
	}
	for _, row := range doc.Rows {
		if strings.TrimSpace(row.Code) != "EUR" {
			continue
		}
		rate, err := strconv.ParseFloat(strings.TrimSpace(row.Rate), 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse BNB rate %q: %w", row.Rate, err)
		}
		if ratio, err := strconv.ParseFloat(strings.TrimSpace(row.Ratio), 64); err == nil && ratio > 0 {
			rate /= ratio
		}
		if rate <= 0 {
			return 0, fmt.Errorf("BNB feed returned a non-positive rate")
		}
		return rate, nil
	}
	return 0, fmt.Errorf("BNB feed has no EUR row")
}

// ExchangeRateAPISource reads a JSON feed with EUR as the base currency.
type ExchangeRateAPISource struct {
	url    string
	client *http.Client
}

func NewExchangeRateAPISource(url string, client *http.Client) *ExchangeRateAPISource {
	return &ExchangeRateAPISource{url: url, client: client}
}

func (s *ExchangeRateAPISource) Name() string {
	return "exchangerate-api"
}

func (s *ExchangeRateAPISource) Fetch(ctx context.Context) (float64, error) {
	body, err := get(ctx, s.client, s.url)
	if err != nil {
		return 0, err
	}

	var payload struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, fmt.Errorf("could not parse rate feed: %w", err)
	}
	rate, ok := payload.Rates["BGN"]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("rate feed has no usable BGN rate")
	}
	return rate, nil
}

func get(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Warnf("could not close rate feed body: %v", err)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate feed responded with status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 1<<20))
}
