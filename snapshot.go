package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/andareed/iron-ledger/market"
)

// --- Wire format ---

const snapshotVersion = 1

var errEmptySnapshot = errors.New("snapshot has no quotes")

type snapshotDTO struct {
	Version  int                 `json:"version"`
	SavedAt  time.Time           `json:"savedAt"`
	Currency market.Currency     `json:"currency"`
	Range    market.QuoteRange   `json:"range"`
	Quotes   []market.StockQuote `json:"quotes"`
	News     []market.NewsItem   `json:"news"`
	Marks    map[string]string   `json:"marks"` // ticker -> MarkColor
}

var exportHeader = []string{"Ticker", "Name", "Price", "Currency", "PreviousClose", "Change%", "Mark", "Description"}

// --- Public API ---

// ExportQuotes writes the *currently filtered* quotes to a CSV file,
// with the mark colour as an extra column.
func ExportQuotes(m *model, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	// if filteredIndices is empty, fall back to all quotes
	indices := m.data.filteredIndices
	if len(indices) == 0 {
		indices = make([]int, len(m.data.quotes))
		for i := range m.data.quotes {
			indices[i] = i
		}
	}

	for _, idx := range indices {
		if idx < 0 || idx >= len(m.data.quotes) {
			return fmt.Errorf("filtered index %d out of range", idx)
		}
		q := m.data.quotes[idx]
		out := []string{
			q.Company.Ticker,
			q.Company.Name,
			strconv.FormatFloat(q.Quote.Price, 'f', 2, 64),
			m.data.currency.Symbol,
			strconv.FormatFloat(q.Quote.PriceYesterday, 'f', 2, 64),
			strconv.FormatFloat(q.Quote.ChangePercent(), 'f', 2, 64),
			string(m.data.marks[markKey(q.Company.Ticker)]),
			q.Company.Description,
		}
		if err := w.Write(out); err != nil {
			return fmt.Errorf("write row %d: %w", idx, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// SaveSnapshot writes quotes, news and marks to a JSON file.
func SaveSnapshot(m *model, path string) error {
	dto := snapshotDTO{
		Version:  snapshotVersion,
		SavedAt:  time.Now().UTC(),
		Currency: m.data.currency,
		Range:    m.data.quoteRange,
		Quotes:   append([]market.StockQuote(nil), m.data.quotes...),
		Marks:    make(map[string]string, len(m.data.marks)),
	}
	if m.data.news != nil {
		dto.News = m.data.news.Items()
	}
	for k, v := range m.data.marks {
		if v != MarkNone {
			dto.Marks[k] = string(v)
		}
	}

	data, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// LoadSnapshot replaces the market data of m with the snapshot from path.
// The UI is left alone; callers reset it once loading succeeds.
func LoadSnapshot(m *model, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var dto snapshotDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	if dto.Version != snapshotVersion {
		return fmt.Errorf("snapshot version %d not supported (want %d)", dto.Version, snapshotVersion)
	}
	if len(dto.Quotes) == 0 {
		return errEmptySnapshot
	}
	companies := make([]market.Company, len(dto.Quotes))
	for i, q := range dto.Quotes {
		companies[i] = q.Company
	}
	if err := market.ValidateTickers(companies); err != nil {
		return err
	}
	if err := dto.Range.Validate(); err != nil {
		return err
	}

	if dto.Currency.NamePlural == "" {
		dto.Currency.NamePlural = market.DefaultCurrency.NamePlural
	}
	if dto.Currency.Symbol == "" {
		dto.Currency.Symbol = market.DefaultCurrency.Symbol
	}

	m.data.currency = dto.Currency
	m.data.quoteRange = dto.Range
	m.data.quotes = dto.Quotes
	m.data.news = market.NewFeed(market.FeedCapacity, dto.News...)

	m.data.marks = make(map[string]MarkColor, len(dto.Marks))
	for k, v := range dto.Marks {
		if c := sanitizeMarkColor(v); c != MarkNone {
			m.data.marks[markKey(k)] = c
		}
	}
	return nil
}

// --- Save / export plumbing ---

func (m *model) defaultSaveName() string {
	return "ledger-" + time.Now().Format("20060102-150405") + ".json"
}

func (m *model) defaultExportName() string {
	return "quotes-" + time.Now().Format("20060102-150405") + ".csv"
}

// lastDir is where bare file names typed into a dialog end up.
func (m *model) lastDir() string {
	switch {
	case m.lastPath != "":
		return filepath.Dir(m.lastPath)
	case m.sourcePath != "":
		return filepath.Dir(m.sourcePath)
	}
	return ""
}
