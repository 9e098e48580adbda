package indexfund

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
)

// This file contains the fund-file codec. A fund file is a JSON array of
// objects, one per equity, with keys "ticker", "market_cap" and "price"
// (plus an optional "title"), the exact shape the exchange fetcher emits.

// jequity is the object read from the file using the json parser.
type jequity struct {
	Title     string          `json:"title,omitempty"`
	Ticker    string          `json:"ticker"`
	MarketCap decimal.Decimal `json:"market_cap"`
	Price     decimal.Decimal `json:"price"`
}

// DecodeFund parses a fund file. Prices are denominated in the given
// currency; the file itself carries no currency information.
func DecodeFund(r io.Reader, currency string) (Fund, error) {
	var jequities []jequity
	if err := json.NewDecoder(r).Decode(&jequities); err != nil {
		return nil, fmt.Errorf("format error in fund data: %w", err)
	}

	fund := make(Fund, 0, len(jequities))
	for _, je := range jequities {
		fund = append(fund, Equity{
			Ticker:    je.Ticker,
			Name:      je.Title,
			MarketCap: je.MarketCap,
			Price:     M(je.Price, currency),
		})
	}
	if err := fund.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fund data: %w", err)
	}
	return fund, nil
}

// EncodeFund writes the fund as an indented JSON array, one object per
// equity, in fund order.
func EncodeFund(w io.Writer, f Fund) error {
	jequities := make([]jequity, 0, len(f))
	for _, e := range f {
		jequities = append(jequities, jequity{
			Title:     e.Name,
			Ticker:    e.Ticker,
			MarketCap: e.MarketCap,
			Price:     e.Price.value,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jequities)
}

// LoadFund reads a fund file from disk.
func LoadFund(path, currency string) (Fund, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open fund file %q: %w", path, err)
	}
	defer r.Close()
	fund, err := DecodeFund(r, currency)
	if err != nil {
		return nil, fmt.Errorf("cannot read fund file %q: %w", path, err)
	}
	return fund, nil
}

// SaveFund writes a fund file to disk, replacing any previous content.
func SaveFund(path string, f Fund) error {
	w, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create fund file %q: %w", path, err)
	}
	defer w.Close()
	if err := EncodeFund(w, f); err != nil {
		return fmt.Errorf("cannot write fund file %q: %w", path, err)
	}
	return nil
}
