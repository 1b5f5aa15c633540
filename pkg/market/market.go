// Package market serves commodity quotes for the dashboard. Only the
// currency entry comes from a live feed; commodity entries are simulated
// around fixed baselines with a small randomized variation. That mix is a
// product decision: the simulated entries are display-illustrative, not
// tradable quotes.
package market

import (
	"encoding/json"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog/log"

	"lavoura/entities"
)

type Quote struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	VariationPct float64   `json:"variation_pct"`
	Unit         string    `json:"unit"`
	Color        string    `json:"color"`
	History      []float64 `json:"history"`
	Simulated    bool      `json:"simulated"`
	Degraded     bool      `json:"degraded,omitempty"`
	Reason       string    `json:"reason,omitempty"`
}

type baseline struct {
	id, name, unit, color string
	price                 float64
}

var commodities = []baseline{
	{"soja", "Soja", "sc 60kg", "#7cb342", 132.50},
	{"milho", "Milho", "sc 60kg", "#fbc02d", 64.80},
	{"algodao", "Algodão", "@", "#eceff1", 158.30},
	{"cafe", "Café Arábica", "sc 60kg", "#6d4c41", 1350.00},
	{"feijao", "Feijão Carioca", "sc 60kg", "#8d6e63", 245.00},
	{"cana", "Cana-de-açúcar", "t", "#9ccc65", 152.00},
	{"boi", "Boi Gordo", "@", "#d84315", 238.50},
}

const dollarBaseline = 5.20

// quotesTTL mirrors the 60-second refresh interval of the consuming view.
const quotesTTL = 60 * time.Second

type Service struct {
	feedURL string
	httpc   *http.Client
	cache   *expirable.LRU[string, []Quote]

	// rng is shared across request goroutines; every draw goes through randf
	rngMu sync.Mutex
	rng   *rand.Rand
}

func New(currencyFeedURL string) *Service {
	return &Service{
		feedURL: currencyFeedURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
		cache:   expirable.NewLRU[string, []Quote](4, nil, quotesTTL),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Quotes returns the full board, cached for one refresh interval so that
// late or repeated callers within the window see the same snapshot.
func (s *Service) Quotes() []Quote {
	if qs, ok := s.cache.Get("board"); ok {
		return qs
	}
	qs := make([]Quote, 0, len(commodities)+1)
	qs = append(qs, s.fetchCurrency())
	for _, b := range commodities {
		qs = append(qs, s.simulate(b))
	}
	s.cache.Add("board", qs)
	return qs
}

// PriceFor maps a crop type to its current quote price; 0 when the culture
// has no quote, which downstream suppresses the revenue figure.
func (s *Service) PriceFor(ct entities.CropType) float64 {
	for _, q := range s.Quotes() {
		if q.ID == string(ct) {
			return q.Price
		}
	}
	return 0
}

func (s *Service) randf() float64 {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Float64()
}

func (s *Service) simulate(b baseline) Quote {
	variation := (s.randf()*2 - 1) * 2.0 // ±2%
	price := b.price * (1 + variation/100)
	return Quote{
		ID:           b.id,
		Name:         b.name,
		Price:        round2(price),
		VariationPct: round2(variation),
		Unit:         b.unit,
		Color:        b.color,
		History:      s.walk(b.price, 30),
		Simulated:    true,
	}
}

// walk produces an illustrative history series ending near the baseline.
func (s *Service) walk(price float64, n int) []float64 {
	out := make([]float64, n)
	v := price * (1 - 0.03 + s.randf()*0.06)
	for i := 0; i < n; i++ {
		v *= 1 + (s.randf()*2-1)*0.01
		out[i] = round2(v)
	}
	out[n-1] = round2(price)
	return out
}

func (s *Service) fetchCurrency() Quote {
	q := Quote{ID: "dolar", Name: "Dólar", Unit: "R$", Color: "#43a047"}
	fail := func(reason string) Quote {
		log.Warn().Str("reason", reason).Msg("currency feed unavailable, using baseline")
		q.Price = dollarBaseline
		q.History = s.walk(dollarBaseline, 30)
		q.Simulated = true
		q.Degraded = true
		q.Reason = reason
		return q
	}
	if s.feedURL == "" {
		return fail("no feed configured")
	}
	resp, err := s.httpc.Get(s.feedURL)
	if err != nil {
		return fail(err.Error())
	}
	defer resp.Body.Close()

	// AwesomeAPI shape: {"USDBRL": {"bid": "5.43", "pctChange": "0.12"}}
	var out map[string]struct {
		Bid       string `json:"bid"`
		PctChange string `json:"pctChange"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fail("parse feed: " + err.Error())
	}
	for _, v := range out {
		bid, err := strconv.ParseFloat(v.Bid, 64)
		if err != nil || bid <= 0 {
			return fail("bad bid value")
		}
		pct, _ := strconv.ParseFloat(v.PctChange, 64)
		q.Price = round2(bid)
		q.VariationPct = round2(pct)
		q.History = s.walk(bid, 30)
		return q
	}
	return fail("empty feed response")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
