package indexfund

import (
	"errors"
	"math"
	"testing"
)

// testFund builds a fund from ticker -> market cap pairs, keeping the
// declaration order stable for reproducible tests.
func testFund(t *testing.T, caps map[string]float64) Fund {
	t.Helper()
	fund := make(Fund, 0, len(caps))
	// map order does not matter for weights, only for readability of failures.
	for _, ticker := range []string{"A", "B", "C", "D", "E"} {
		if mc, ok := caps[ticker]; ok {
			fund = append(fund, NewEquity(ticker, "", mc, 1, "NGN"))
		}
	}
	return fund
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCapWeights(t *testing.T) {
	testCases := []struct {
		name    string
		caps    map[string]float64
		cap     float64
		want    map[string]float64
		wantSum float64
	}{
		{
			name:    "proportional when no equity exceeds the cap",
			caps:    map[string]float64{"A": 1000, "B": 3000},
			cap:     0.8,
			want:    map[string]float64{"A": 0.25, "B": 0.75},
			wantSum: 1,
		},
		{
			name: "excess redistributed to the single uncapped equity",
			caps: map[string]float64{"A": 1000, "B": 9000},
			cap:  0.5,
			// B is pinned at the cap and its excess lands entirely on A,
			// which then sits exactly at the cap too.
			want:    map[string]float64{"A": 0.5, "B": 0.5},
			wantSum: 1,
		},
		{
			name: "single-pass redistribution is enough",
			caps: map[string]float64{"A": 60, "B": 25, "C": 15},
			cap:  0.4,
			want: map[string]float64{"A": 0.4, "B": 0.375, "C": 0.225},
			wantSum: 1,
		},
		{
			name: "redistribution pushes an equity over the cap and repeats",
			caps: map[string]float64{"A": 70, "B": 20, "C": 10},
			cap:  0.35,
			// first pass pins A and overshoots B; the second pass moves
			// B's own excess onto C.
			want:    map[string]float64{"A": 0.35, "B": 0.35, "C": 0.30},
			wantSum: 1,
		},
		{
			name: "infeasible cap leaves a residual",
			caps: map[string]float64{"A": 7000, "B": 3000},
			cap:  0.4,
			// 2 equities at 40% cannot carry 100%: both sit at the cap and
			// the remaining 20% stays unallocated.
			want:    map[string]float64{"A": 0.4, "B": 0.4},
			wantSum: 0.8,
		},
		{
			name:    "zero market cap equity keeps a zero weight",
			caps:    map[string]float64{"A": 0, "B": 5000},
			cap:     1,
			want:    map[string]float64{"A": 0, "B": 1},
			wantSum: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			weights, err := CapWeights(testFund(t, tc.caps), tc.cap)
			if err != nil {
				t.Fatalf("CapWeights() returned unexpected error: %v", err)
			}
			if len(weights) != len(tc.want) {
				t.Fatalf("CapWeights() returned %d weights, want %d", len(weights), len(tc.want))
			}
			for ticker, want := range tc.want {
				if got := weights[ticker]; !near(got, want) {
					t.Errorf("weight[%s] = %v, want %v", ticker, got, want)
				}
			}
			if got := weights.Sum(); !near(got, tc.wantSum) {
				t.Errorf("Sum() = %v, want %v", got, tc.wantSum)
			}
			for ticker, w := range weights {
				if w < 0 || w > tc.cap+1e-9 {
					t.Errorf("weight[%s] = %v outside [0, %v]", ticker, w, tc.cap)
				}
			}
		})
	}
}

func TestCapWeights_InputErrors(t *testing.T) {
	testCases := []struct {
		name string
		fund Fund
		cap  float64
	}{
		{"empty fund", Fund{}, 0.5},
		{"zero total market cap", testFund(t, map[string]float64{"A": 0, "B": 0}), 0.5},
		{"zero cap", testFund(t, map[string]float64{"A": 1000}), 0},
		{"cap above one", testFund(t, map[string]float64{"A": 1000}), 1.2},
		{"negative market cap", testFund(t, map[string]float64{"A": -5, "B": 100}), 0.5},
		{"empty ticker", Fund{NewEquity("", "", 100, 1, "NGN")}, 0.5},
		{"duplicate ticker", Fund{
			NewEquity("A", "", 100, 1, "NGN"),
			NewEquity("A", "", 200, 1, "NGN"),
		}, 0.5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			weights, err := CapWeights(tc.fund, tc.cap)
			if err == nil {
				t.Fatalf("CapWeights() = %v, want an error", weights)
			}
			var ierr *InputError
			if !errors.As(err, &ierr) {
				t.Errorf("CapWeights() error = %v, want an *InputError", err)
			}
			if weights != nil {
				t.Errorf("CapWeights() returned a partial result %v alongside the error", weights)
			}
		})
	}
}

// Tightening the cap must never raise the weight of an equity already pinned
// at the cap, and every weight must respect the new cap.
func TestCapWeights_CapMonotonicity(t *testing.T) {
	fund := testFund(t, map[string]float64{"A": 6000, "B": 2500, "C": 1500})

	prev := math.Inf(1)
	for _, cap := range []float64{0.6, 0.5, 0.4, 0.35} {
		weights, err := CapWeights(fund, cap)
		if err != nil {
			t.Fatalf("CapWeights(cap=%v) returned unexpected error: %v", cap, err)
		}
		if w := weights["A"]; w > prev+1e-9 {
			t.Errorf("weight[A] grew from %v to %v when cap tightened to %v", prev, w, cap)
		} else {
			prev = w
		}
		for ticker, w := range weights {
			if w > cap+1e-9 {
				t.Errorf("cap %v: weight[%s] = %v exceeds it", cap, ticker, w)
			}
		}
	}
}

func TestCapWeights_Idempotent(t *testing.T) {
	fund := testFund(t, map[string]float64{"A": 70, "B": 20, "C": 10})

	first, err := CapWeights(fund, 0.35)
	if err != nil {
		t.Fatalf("CapWeights() returned unexpected error: %v", err)
	}
	second, err := CapWeights(fund, 0.35)
	if err != nil {
		t.Fatalf("CapWeights() returned unexpected error: %v", err)
	}
	for ticker, w := range first {
		if second[ticker] != w {
			t.Errorf("weight[%s] differs between identical calls: %v vs %v", ticker, w, second[ticker])
		}
	}
}
