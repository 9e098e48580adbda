package renderer

import (
	"strings"
	"testing"

	"github.com/adewale/indexfund"
)

func setupPlanTest(t *testing.T) (indexfund.Fund, *indexfund.AllocationResult) {
	t.Helper()
	fund := indexfund.Fund{
		indexfund.NewEquity("GTCO", "Guaranty Trust Holding Company Plc", 9000, 5, "NGN"),
		indexfund.NewEquity("UBA", "United Bank for Africa Plc", 1000, 10, "NGN"),
		indexfund.NewEquity("PENNY", "Penny Stock Plc", 1, 100000, "NGN"),
	}
	weights, err := indexfund.CapWeights(fund, 0.5)
	if err != nil {
		t.Fatalf("CapWeights() returned unexpected error: %v", err)
	}
	result, err := indexfund.Allocate(fund, weights, indexfund.M(1000, "NGN"), 0.03)
	if err != nil {
		t.Fatalf("Allocate() returned unexpected error: %v", err)
	}
	return fund, result
}

func TestRenderPlan(t *testing.T) {
	fund, result := setupPlanTest(t)
	md := RenderPlan(NewPlan(fund, result, 0.03, 0.5))

	for _, want := range []string{
		"# Buy Order",
		"Transaction Cost Rate: 3.00%",
		"Maximum Weight Per Equity: 50.00%",
		"| GTCO |",
		"| UBA |",
		"Remaining Cash:",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("RenderPlan() output misses %q:\n%s", want, md)
		}
	}

	// PENNY is unaffordable: zero-share rows are elided from the order.
	if strings.Contains(md, "PENNY") {
		t.Errorf("RenderPlan() lists a zero-share row:\n%s", md)
	}
}

func TestRenderWeights(t *testing.T) {
	fund, _ := setupPlanTest(t)
	weights, err := indexfund.CapWeights(fund, 0.5)
	if err != nil {
		t.Fatalf("CapWeights() returned unexpected error: %v", err)
	}
	md := RenderWeights(NewWeights(fund, weights, 0.5))

	if !strings.Contains(md, "# Capped Weights") {
		t.Errorf("RenderWeights() misses the title:\n%s", md)
	}
	// GTCO is pinned at the cap and must carry the marker.
	if !strings.Contains(md, "| GTCO | Guaranty Trust Holding Company Plc | 50.00% | X |") {
		t.Errorf("RenderWeights() misses the capped GTCO row:\n%s", md)
	}
	// heaviest first: GTCO's row comes before UBA's.
	if strings.Index(md, "| GTCO |") > strings.Index(md, "| UBA |") {
		t.Errorf("RenderWeights() rows are not sorted by weight:\n%s", md)
	}
}

func TestRenderFund(t *testing.T) {
	fund, _ := setupPlanTest(t)
	md := RenderFund(NewFundView(fund))

	for _, want := range []string{
		"# Fund Composition",
		"| GTCO | Guaranty Trust Holding Company Plc | 9000 |",
		"| UBA | United Bank for Africa Plc | 1000 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("RenderFund() output misses %q:\n%s", want, md)
		}
	}
}
