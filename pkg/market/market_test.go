package market

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lavoura/entities"
)

func TestQuotesBoard(t *testing.T) {
	s := New("")
	qs := s.Quotes()
	require.Len(t, qs, len(commodities)+1)

	assert.Equal(t, "dolar", qs[0].ID)
	assert.True(t, qs[0].Degraded, "no feed configured degrades the currency entry")

	for _, q := range qs[1:] {
		assert.True(t, q.Simulated)
		assert.Len(t, q.History, 30)
		assert.InDelta(t, 0, q.VariationPct, 2.0, "variation stays within the 2 percent band")
		assert.Greater(t, q.Price, 0.0)
	}
}

func TestQuotesAreCachedWithinWindow(t *testing.T) {
	s := New("")
	a := s.Quotes()
	b := s.Quotes()
	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Price, b[i].Price, "repeated callers see the same snapshot")
	}
}

// exercised with -race: concurrent cache misses draw from the shared rng
func TestQuotesConcurrentCallers(t *testing.T) {
	s := New("")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				s.walk(100, 10)
				qs := s.Quotes()
				assert.Len(t, qs, len(commodities)+1)
			}
		}()
	}
	wg.Wait()
}

func TestPriceFor(t *testing.T) {
	s := New("")
	assert.Greater(t, s.PriceFor(entities.CropSoy), 0.0)
	assert.Greater(t, s.PriceFor(entities.CropCoffee), 0.0)
	assert.Equal(t, 0.0, s.PriceFor(entities.CropType("mandioca")), "unlisted culture quotes at zero")
}

func TestFetchCurrencyLiveFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"USDBRL":{"bid":"5.4321","pctChange":"-0.37"}}`))
	}))
	defer srv.Close()

	s := New(srv.URL)
	q := s.fetchCurrency()
	assert.False(t, q.Degraded)
	assert.False(t, q.Simulated)
	assert.Equal(t, 5.43, q.Price)
	assert.Equal(t, -0.37, q.VariationPct)
	assert.Len(t, q.History, 30)
}

func TestFetchCurrencyBadFeedFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	s := New(srv.URL)
	q := s.fetchCurrency()
	assert.True(t, q.Degraded)
	assert.Equal(t, dollarBaseline, q.Price)
	assert.NotEmpty(t, q.Reason)
}
