// Package indexfund turns a fund composition (ticker, market capitalization,
// share price) into a concrete buy order: an integer number of shares per
// ticker that approximates market-cap weighting under a per-equity cap, within
// a cash budget, net of proportional transaction costs.
//
// The pipeline has two pure stages:
//   - CapWeights converts raw market capitalizations into a capped,
//     redistributed weight vector.
//   - Allocate converts that weight vector, a budget and per-share prices
//     into integer share counts and realized costs.
//
// Both stages are stateless and fail fast on invalid input: no partial result
// is ever returned. The package performs no I/O besides the fund-file codec
// and keeps all monetary arithmetic in exact decimals.
//
// This package serves as the foundational logic for the `ifund` command-line
// tool.
package indexfund
