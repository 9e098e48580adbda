package indexfund

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Universe is the configured ticker list per fund. It replaces a baked-in
// constant: which equities compose a fund is configuration, not code.
//
// The file is YAML:
//
//	currency: NGN
//	funds:
//	  afribank:
//	    - ACCESSCORP
//	    - GTCO
//	    - UBA
type Universe struct {
	Currency string              `yaml:"currency"`
	Funds    map[string][]string `yaml:"funds"`
}

// LoadUniverse reads a universe file and expands ${VAR} environment
// variables in it.
func LoadUniverse(path string) (*Universe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read universe file %q: %w", path, err)
	}
	expanded := os.ExpandEnv(string(data))

	var u Universe
	if err := yaml.Unmarshal([]byte(expanded), &u); err != nil {
		return nil, fmt.Errorf("cannot parse universe file %q: %w", path, err)
	}
	if u.Currency == "" {
		u.Currency = "NGN"
	}
	if err := u.validate(); err != nil {
		return nil, fmt.Errorf("invalid universe file %q: %w", path, err)
	}
	return &u, nil
}

func (u *Universe) validate() error {
	if len(u.Funds) == 0 {
		return fmt.Errorf("no funds defined")
	}
	for name, tickers := range u.Funds {
		if len(tickers) == 0 {
			return fmt.Errorf("fund %q has no tickers", name)
		}
		seen := make(map[string]bool, len(tickers))
		for _, t := range tickers {
			if t == "" {
				return fmt.Errorf("fund %q contains an empty ticker", name)
			}
			if seen[t] {
				return fmt.Errorf("fund %q lists ticker %q twice", name, t)
			}
			seen[t] = true
		}
	}
	return nil
}

// Tickers returns the configured ticker list for a fund. When the universe
// defines a single fund, the empty name selects it.
func (u *Universe) Tickers(fund string) ([]string, error) {
	if fund == "" && len(u.Funds) == 1 {
		for _, tickers := range u.Funds {
			return tickers, nil
		}
	}
	tickers, ok := u.Funds[fund]
	if !ok {
		return nil, fmt.Errorf("fund %q is not defined in the universe", fund)
	}
	return tickers, nil
}
