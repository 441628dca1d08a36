package market

import (
	"math/rand/v2"
	"strings"
)

// minPrice is the floor Drift will never push a quote below.
const minPrice = 0.01

type Company struct {
	Ticker      string `yaml:"ticker" json:"ticker"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

type Quote struct {
	Price          float64 `json:"price"`
	PriceYesterday float64 `json:"priceYesterday"`
}

// QuoteRange bounds the prices and day-on-day moves RandomQuote produces.
type QuoteRange struct {
	PriceMin     float64 `yaml:"price_min" json:"priceMin"`
	PriceMax     float64 `yaml:"price_max" json:"priceMax"`
	ChangePctMin float64 `yaml:"change_pct_min" json:"changePctMin"`
	ChangePctMax float64 `yaml:"change_pct_max" json:"changePctMax"`
}

var DefaultRange = QuoteRange{
	PriceMin:     500,
	PriceMax:     3000,
	ChangePctMin: -10,
	ChangePctMax: 10,
}

type StockQuote struct {
	Company Company `json:"company"`
	Quote   Quote   `json:"quote"`
}

// ChangePercent is the move against yesterday's close, 0 when there is no close.
func (q Quote) ChangePercent() float64 {
	if q.PriceYesterday == 0 {
		return 0
	}
	return (q.Price - q.PriceYesterday) / q.PriceYesterday * 100
}

func RandomQuote(rng *rand.Rand, r QuoteRange) Quote {
	price := uniform(rng, r.PriceMin, r.PriceMax)
	return Quote{
		Price:          price,
		PriceYesterday: (1 + uniform(rng, r.ChangePctMin, r.ChangePctMax)/100) * price,
	}
}

// Drift moves the price by at most maxPct percent either way.
func (q Quote) Drift(rng *rand.Rand, maxPct float64) Quote {
	if maxPct <= 0 {
		return q
	}
	q.Price *= 1 + uniform(rng, -maxPct, maxPct)/100
	if q.Price < minPrice {
		q.Price = minPrice
	}
	return q
}

func GenerateQuotes(rng *rand.Rand, companies []Company, r QuoteRange) []StockQuote {
	quotes := make([]StockQuote, 0, len(companies))
	for _, c := range companies {
		quotes = append(quotes, StockQuote{Company: c, Quote: RandomQuote(rng, r)})
	}
	return quotes
}

// Reconcile rebuilds the quote list for a new set of companies. Tickers that
// survive keep their prices, new ones get a fresh quote and the order follows
// companies.
func Reconcile(old []StockQuote, companies []Company, rng *rand.Rand, r QuoteRange) []StockQuote {
	prev := make(map[string]Quote, len(old))
	for _, sq := range old {
		prev[strings.ToUpper(sq.Company.Ticker)] = sq.Quote
	}

	quotes := make([]StockQuote, 0, len(companies))
	for _, c := range companies {
		q, ok := prev[strings.ToUpper(c.Ticker)]
		if !ok {
			q = RandomQuote(rng, r)
		}
		quotes = append(quotes, StockQuote{Company: c, Quote: q})
	}
	return quotes
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
