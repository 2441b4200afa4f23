package currency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bnbFeed = `<?xml version="1.0" encoding="UTF-8"?>
<ROWSET>
  <ROW>
    <CODE>USD</CODE>
    <RATE>1.68325</RATE>
    <RATIO>1</RATIO>
  </ROW>
  <ROW>
    <CODE>EUR</CODE>
    <RATE>1.95583</RATE>
    <RATIO>1</RATIO>
  </ROW>
</ROWSET>`

func TestBNBSource_Fetch(t *testing.T) {
	t.Run("should pick the euro row out of the feed", func(t *testing.T) {
		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(bnbFeed))
		}))
		defer server.Close()
		source := NewBNBSource(server.URL, server.Client())

		// when
		rate, err := source.Fetch(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, 1.95583, rate)
	})

	t.Run("should normalize a rate quoted per hundred units", func(t *testing.T) {
		// given
		feed := `<ROWSET><ROW><CODE>EUR</CODE><RATE>195.583</RATE><RATIO>100</RATIO></ROW></ROWSET>`
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(feed))
		}))
		defer server.Close()
		source := NewBNBSource(server.URL, server.Client())

		// when
		rate, err := source.Fetch(context.Background())

		// then
		require.NoError(t, err)
		assert.InDelta(t, 1.95583, rate, 0.00001)
	})

	t.Run("should report a feed without a euro row", func(t *testing.T) {
		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<ROWSET><ROW><CODE>USD</CODE><RATE>1.68</RATE></ROW></ROWSET>`))
		}))
		defer server.Close()
		source := NewBNBSource(server.URL, server.Client())

		// when
		_, err := source.Fetch(context.Background())

		// then
		assert.Error(t, err)
	})

	t.Run("should report an upstream error status", func(t *testing.T) {
		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()
		source := NewBNBSource(server.URL, server.Client())

		// when
		_, err := source.Fetch(context.Background())

		// then
		assert.Error(t, err)
	})
}

func TestExchangeRateAPISource_Fetch(t *testing.T) {
	t.Run("should read the BGN rate from the JSON feed", func(t *testing.T) {
		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"base":"EUR","rates":{"BGN":1.9558,"USD":1.08}}`))
		}))
		defer server.Close()
		source := NewExchangeRateAPISource(server.URL, server.Client())

		// when
		rate, err := source.Fetch(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, 1.9558, rate)
	})

	t.Run("should report a feed without a BGN rate", func(t *testing.T) {
		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"base":"EUR","rates":{"USD":1.08}}`))
		}))
		defer server.Close()
		source := NewExchangeRateAPISource(server.URL, server.Client())

		// when
		_, err := source.Fetch(context.Background())

		// then
		assert.Error(t, err)
	})
}
