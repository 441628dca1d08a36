package market

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// FeedCapacity is how many headlines the Latest news panel keeps.
const FeedCapacity = 50

// flatBand is the |change%| under which a quote counts as unchanged.
const flatBand = 0.5

type NewsItem struct {
	Time     time.Time `json:"time"`
	Ticker   string    `json:"ticker"`
	Headline string    `json:"headline"`
}

var (
	upHeadlines = []string{
		"%s shares climb %.1f%% as airship orders pile up",
		"Brokers cheer %s, stock up %.1f%% by the noon bell",
		"%s rallies %.1f%% on rumours of a new aether patent",
		"Foundry district buzzing: %s gains %.1f%%",
	}
	downHeadlines = []string{
		"%s slides %.1f%% after boiler inspection delays",
		"Investors dump %s, shares down %.1f%%",
		"%s sheds %.1f%% as coal prices bite",
		"Gear shortage weighs on %s, off %.1f%%",
	}
	flatHeadlines = []string{
		"%s steady as the exchange awaits the harbour report",
		"Quiet session for %s, traders idle at the gaslamps",
		"%s holds its ground amid cog market chatter",
	}
)

// Headline writes a story for q whose tone follows the day's move.
func Headline(rng *rand.Rand, q StockQuote, now time.Time) NewsItem {
	pct := q.Quote.ChangePercent()
	name := q.Company.Name
	if name == "" {
		name = q.Company.Ticker
	}

	var text string
	switch {
	case pct >= flatBand:
		text = fmt.Sprintf(upHeadlines[rng.IntN(len(upHeadlines))], name, pct)
	case pct <= -flatBand:
		text = fmt.Sprintf(downHeadlines[rng.IntN(len(downHeadlines))], name, -pct)
	default:
		text = fmt.Sprintf(flatHeadlines[rng.IntN(len(flatHeadlines))], name)
	}
	return NewsItem{Time: now, Ticker: q.Company.Ticker, Headline: text}
}

// GenerateNews returns one headline per quote, newest first. Items are spaced
// a minute apart going back from now.
func GenerateNews(rng *rand.Rand, quotes []StockQuote, now time.Time) []NewsItem {
	items := make([]NewsItem, 0, len(quotes))
	for i, q := range quotes {
		items = append(items, Headline(rng, q, now.Add(-time.Duration(i)*time.Minute)))
	}
	return items
}

// Feed is a bounded newest-first list of headlines.
type Feed struct {
	items    []NewsItem
	capacity int
}

func NewFeed(capacity int, items ...NewsItem) *Feed {
	if capacity <= 0 {
		capacity = FeedCapacity
	}
	f := &Feed{capacity: capacity}
	for i := len(items) - 1; i >= 0; i-- {
		f.Push(items[i])
	}
	return f
}

// Push adds item at the front and drops the oldest one when full.
func (f *Feed) Push(item NewsItem) {
	f.items = append([]NewsItem{item}, f.items...)
	if len(f.items) > f.capacity {
		f.items = f.items[:f.capacity]
	}
}

func (f *Feed) Items() []NewsItem {
	return f.items
}

func (f *Feed) Len() int {
	return len(f.items)
}
