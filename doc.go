// Package portfolio simulates the historical performance of a weighted
// portfolio of instruments and computes risk, return and yield statistics.
//
// The core functionalities include:
//   - Market Data: per-instrument daily price and dividend histories,
//     loaded from the standard CSV feed or fetched from a remote provider.
//   - Timeline Alignment: merging multi-instrument histories onto a common
//     daily timeline over a look-back window.
//   - Rebalancing Simulation: a share-based walk over the aligned timeline
//     with dividend cash accrual and calendar-year rebalancing back to the
//     target weights.
//   - Metrics: annualized return (CAGR), annualized volatility and yield,
//     reported for the whole portfolio and broken down by asset class and
//     by instrument.
//
// This package serves as the foundational logic for the `paa` command-line
// tool. One analysis run is a pure function of (portfolio, market data,
// horizon): there is no shared mutable state across runs, and the market
// store is read-only once loaded.
package portfolio
