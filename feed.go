package portfolio

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/pezpher/portfolioAllocation-analysis/date"
)

// This file handles the standard price feed format: a CSV file with one
// record per instrument per trading day.
//
//	Date,Ticker,Name,Price,Dividend
//
// The feed is assumed validated and deduplicated per (instrument, date) by
// its producer; a duplicate simply overwrites the earlier observation.

// feedHeader is the canonical column list of the feed format.
var feedHeader = []string{"Date", "Ticker", "Name", "Price", "Dividend"}

// DecodeMarket reads a market from the CSV feed format.
//
// The date column tolerates a trailing time component (the reference
// dataset is exported from timezone-aware daily bars).
func DecodeMarket(r io.Reader) (*Market, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(feedHeader)

	m := NewMarket()
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("format error in feed line %d: %w", line+1, err)
		}
		line++
		if line == 1 && strings.EqualFold(record[0], "Date") {
			continue // header
		}

		day, ticker, name := record[0], record[1], record[2]
		// keep only the date part of a "2015-09-01 00:00:00-04:00" style stamp.
		day, _, _ = strings.Cut(day, " ")
		on, err := date.Parse(day)
		if err != nil {
			return nil, fmt.Errorf("format error in feed line %d: %w", line, err)
		}
		if ticker == "" {
			continue
		}

		price, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, fmt.Errorf("format error in feed line %d: invalid price %q: %w", line, record[3], err)
		}
		var dividend float64
		if record[4] != "" {
			dividend, err = strconv.ParseFloat(record[4], 64)
			if err != nil {
				return nil, fmt.Errorf("format error in feed line %d: invalid dividend %q: %w", line, record[4], err)
			}
		}
		m.Add(ticker, name, on, price, dividend)
	}
	return m, nil
}

// EncodeMarket writes the market back out in the CSV feed format, tickers
// in alphabetical order and dates ascending, so the output is stable and
// diff-friendly.
func EncodeMarket(w io.Writer, m *Market) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(feedHeader); err != nil {
		return fmt.Errorf("cannot write feed header: %w", err)
	}

	tickers := make([]string, 0, len(m.instruments))
	for _, sec := range m.instruments {
		// The synthetic cash instrument is rebuilt on load, not persisted.
		if sec.ticker == CashTicker {
			continue
		}
		tickers = append(tickers, sec.ticker)
	}
	slices.Sort(tickers)

	for _, ticker := range tickers {
		sec := m.index[ticker]
		for on, price := range sec.prices.Values() {
			dividend, _ := sec.dividends.Get(on)
			record := []string{
				on.String(),
				sec.ticker,
				sec.name,
				strconv.FormatFloat(price, 'f', -1, 64),
				strconv.FormatFloat(dividend, 'f', -1, 64),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("cannot write feed record for %q on %s: %w", ticker, on, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
