package indexfund

import "fmt"

// Percent is a display value in percent points (15.0 means 15%).
type Percent float64

// AsPercent converts a fraction (0.15) into percent points (15.0).
func AsPercent(fraction float64) Percent { return Percent(fraction * 100) }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
