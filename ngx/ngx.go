// Package ngx fetches equity quotes from the Nigerian Exchange public data
// endpoints. It is the data-acquisition collaborator of the allocation
// pipeline: it produces fund records (ticker, market cap, price) and knows
// nothing about weights or budgets.
package ngx

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/adewale/indexfund"
)

// defaultBaseURL is the NGX REST facade serving the daily equities board.
const defaultBaseURL = "https://doclib.ngxgroup.com"

// equitiesPath lists every listed equity with its last close price and
// market capitalization.
const equitiesPath = "/REST/api/statistics/equities/?market=&sector=&orderby=&pageSize=300&pageNo=0"

// Client queries the exchange. The zero value is not usable; use NewClient.
type Client struct {
	// HTTP is the client used for requests. NewClient installs a disk cache
	// that expires daily.
	HTTP *http.Client
	// BaseURL points at the exchange REST facade; overridable for tests.
	BaseURL string
}

// NewClient returns a client with a daily-caching transport.
func NewClient() *Client {
	return &Client{HTTP: newDailyCachingClient(), BaseURL: defaultBaseURL}
}

// Fetch returns one fund record per requested ticker, priced in currency.
//
// The exchange serves the whole equities board in a single response; Fetch
// downloads it once, indexes it by symbol and picks the requested tickers.
// Like the board itself, a missing price or market capitalization degrades to
// zero rather than failing the whole fetch; tickers absent from the board are
// logged and skipped.
func (c *Client) Fetch(ctx context.Context, tickers []string, currency string) (indexfund.Fund, error) {
	addr := c.BaseURL + equitiesPath

	// The payload is a JSON array of loosely-typed rows; fields come and go
	// with the exchange's releases, so they are extracted by path instead of
	// a rigid struct.
	var rows []any
	if err := jwget(ctx, c.HTTP, addr, &rows); err != nil {
		return nil, fmt.Errorf("cannot fetch the equities board: %w", err)
	}

	board := make(map[string]any, len(rows))
	for _, row := range rows {
		symbol := jstring(row, "$.Symbol")
		if symbol == "" {
			log.Printf("skipping a board row with no symbol: %v", row)
			continue
		}
		board[symbol] = row
	}

	var fund indexfund.Fund
	for _, ticker := range tickers {
		row, ok := board[ticker]
		if !ok {
			log.Printf("ticker %q is not on the equities board, skipping", ticker)
			continue
		}
		fund = append(fund, indexfund.NewEquity(
			ticker,
			jstring(row, "$.Company2"),
			jnumber(row, "$.MarketCapitalization"),
			jnumber(row, "$.ClosePrice"),
			currency,
		))
	}
	if len(fund) == 0 {
		return nil, fmt.Errorf("none of the %d requested tickers are on the equities board", len(tickers))
	}
	return fund, nil
}

// jstring extracts a string by json path, or "" when absent or not a string.
func jstring(doc any, path string) string {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return ""
	}
	s, _ := jval.(string)
	return s
}

// jnumber extracts a number by json path, or 0 when absent or not a number.
func jnumber(doc any, path string) float64 {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return 0
	}
	f, _ := jval.(float64)
	return f
}
