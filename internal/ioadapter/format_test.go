package ioadapter

import (
	"encoding/json"
	"testing"

	"github.com/piwi3910/ganger/internal/baseline"
	"github.com/piwi3910/ganger/internal/ganging"
	"github.com/piwi3910/ganger/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOutput_RoundTripsBaselineAndPlans(t *testing.T) {
	layout := ganging.PricedLayout{
		LayoutID:  "base_jobA",
		Layout:    ganging.Layout{PrintingSheet: ganging.Size{Width: 500, Length: 350}, CountPerJob: map[string]int{"jobA": 4}},
		Machine:   ganging.Machine{ID: "press1"},
		NetSheets: 3,
		TotalCost: 1234,
	}
	result := pipeline.Result{
		Baseline: baseline.Result{
			Layouts:   map[string]ganging.PricedLayout{"base_jobA": layout},
			TotalCost: 1234,
		},
		Plans: []ganging.Plan{
			{Layouts: []ganging.PricedLayout{layout}, TotalCost: 1000},
		},
	}

	data, err := FormatOutput(result)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Costs are dollars (float), not internal cents.
	summary := decoded["summary"].(map[string]interface{})
	assert.Equal(t, 12.34, summary["baselineTotalCost"])

	baselineSolution := decoded["baselineSolution"].(map[string]interface{})
	assert.Equal(t, 12.34, baselineSolution["total_cost"])
	baselineLayouts := baselineSolution["layouts"].(map[string]interface{})
	require.Contains(t, baselineLayouts, "base_jobA")
	baselineLayout := baselineLayouts["base_jobA"].(map[string]interface{})
	assert.Equal(t, "press1", baselineLayout["machine"])

	ganged := decoded["gangedSolutions"].([]interface{})
	require.Len(t, ganged, 1)
	first := ganged[0].(map[string]interface{})
	gangedSummary := first["summary"].(map[string]interface{})
	assert.Equal(t, 10.0, gangedSummary["gangedTotalCost"])

	plan := first["productionPlan"].([]interface{})
	require.Len(t, plan, 1)
	item := plan[0].(map[string]interface{})
	assert.Equal(t, "base_jobA", item["id"])
	assert.Equal(t, 3.0, item["sheets"])
	assert.Equal(t, 12.34, item["costForThisPlanItem"])

	gangedLayouts := first["layouts"].(map[string]interface{})
	require.Contains(t, gangedLayouts, "base_jobA")
	gangedLayout := gangedLayouts["base_jobA"].(map[string]interface{})
	assert.Equal(t, "base_jobA", gangedLayout["layoutId"])
}

func TestDollars_ConvertsCentsExactly(t *testing.T) {
	assert.Equal(t, 0.5, dollars(50))
	assert.Equal(t, 50.0, dollars(5000))
	assert.Equal(t, 0.0, dollars(0))
}
