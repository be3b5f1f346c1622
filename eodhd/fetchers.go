package eodhd

import (
	"fmt"
	"slices"

	"github.com/pezpher/portfolioAllocation-analysis/date"
	"github.com/shopspring/decimal"
)

// Record is one daily observation in the standard feed shape.
type Record struct {
	Date     date.Date
	Price    float64
	Dividend float64
}

// fetchPrices returns the daily adjusted close prices for a ticker.
func fetchPrices(apiKey, ticker string, window date.Range) (map[date.Date]float64, error) {
	// https://eodhd.com/api/eod/IVV.US?api_token=demo&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	  },
	// bounds are included in the response.
	addr := fmt.Sprintf("https://eodhd.com/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s",
		ticker, apiKey, window.From, window.To)

	type info struct {
		Date          date.Date       `json:"date"`
		AdjustedClose decimal.Decimal `json:"adjusted_close"`
	}
	content := make([]info, 0)
	if err := jwget(newDailyCachingClient(), addr, &content); err != nil {
		return nil, fmt.Errorf("cannot fetch prices for %q: %w", ticker, err)
	}

	prices := make(map[date.Date]float64, len(content))
	for _, i := range content {
		prices[i.Date] = i.AdjustedClose.InexactFloat64()
	}
	return prices, nil
}

// fetchDividends returns the per-share distributions for a ticker, keyed by
// ex-dividend date.
func fetchDividends(apiKey, ticker string, window date.Range) (map[date.Date]float64, error) {
	// https://eodhd.com/api/div/IVV.US?api_token=demo&fmt=json
	// [
	//	{
	//		"date": "2024-03-20",
	//		"declarationDate": "2024-03-15",
	//		"value": 1.8342,
	//		"unadjustedValue": 1.8342,
	//		"currency": "USD",
	//	  },
	addr := fmt.Sprintf("https://eodhd.com/api/div/%s?fmt=json&api_token=%s&from=%s&to=%s",
		ticker, apiKey, window.From, window.To)

	type info struct {
		Date  date.Date       `json:"date"`
		Value decimal.Decimal `json:"value"`
	}
	content := make([]info, 0)
	if err := jwget(newDailyCachingClient(), addr, &content); err != nil {
		return nil, fmt.Errorf("cannot fetch dividends for %q: %w", ticker, err)
	}

	dividends := make(map[date.Date]float64, len(content))
	for _, i := range content {
		dividends[i.Date] = i.Value.InexactFloat64()
	}
	return dividends, nil
}

// Fetch returns the daily observations for a ticker over the window,
// merging prices with dividend events. Dividends falling on a date with no
// price bar are dropped: the feed format carries one record per trading day.
func Fetch(apiKey, ticker string, window date.Range) ([]Record, error) {
	prices, err := fetchPrices(apiKey, ticker, window)
	if err != nil {
		return nil, err
	}
	dividends, err := fetchDividends(apiKey, ticker, window)
	if err != nil {
		return nil, err
	}
	return merge(prices, dividends), nil
}

// merge combines price bars and dividend events into chronological records.
func merge(prices, dividends map[date.Date]float64) []Record {
	records := make([]Record, 0, len(prices))
	for on, price := range prices {
		records = append(records, Record{Date: on, Price: price, Dividend: dividends[on]})
	}
	// map iteration is unordered; the feed wants chronological records.
	slices.SortFunc(records, func(a, b Record) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})
	return records
}
