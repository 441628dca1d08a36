package main

import (
	"regexp"

	"github.com/andareed/iron-ledger/market"
)

type dataState struct {
	currency        market.Currency
	quoteRange      market.QuoteRange
	quotes          []market.StockQuote
	news            *market.Feed
	marks           map[string]MarkColor // keyed by upper-cased ticker
	showOnlyMarked  bool
	filterRegex     *regexp.Regexp
	filteredIndices []int // indices into quotes that pass the filter, in order
}
