package costmodel

import (
	"testing"

	"github.com/piwi3910/ganger/internal/ganging"
	"github.com/stretchr/testify/assert"
)

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 150, roundCents(1.5))
	assert.Equal(t, -150, roundCents(-1.5))
	assert.Equal(t, 0, roundCents(0))
}

func TestPrintingCost_PerPassPricing(t *testing.T) {
	machine := ganging.Machine{
		SetupCost:      ganging.CostInfo{Price: 10},
		WashCost:       ganging.CostInfo{Price: 5},
		ImpressionCost: ganging.ImpressionCostInfo{PricePerThousand: 20},
	}
	needs := ganging.PrintNeeds{Technique: "SIMPLEX", TotalPlates: 4, Passes: 2}

	breakdown := PrintingCost(machine, needs, 500)

	assert.Equal(t, roundCents(10*2), breakdown.SetupCost)
	assert.Equal(t, roundCents(5*2), breakdown.WashCost)
	assert.Equal(t, roundCents((500.0/1000.0)*20*2), breakdown.ImpressionCost)
}

func TestPrintingCost_PerInkPricing(t *testing.T) {
	machine := ganging.Machine{
		SetupCost:      ganging.CostInfo{Price: 10, PerInk: true},
		WashCost:       ganging.CostInfo{Price: 5, PerInk: true},
		ImpressionCost: ganging.ImpressionCostInfo{PricePerThousand: 20},
	}
	needs := ganging.PrintNeeds{Technique: "SIMPLEX", TotalPlates: 4, Passes: 2}

	breakdown := PrintingCost(machine, needs, 1000)

	assert.Equal(t, roundCents(10*4), breakdown.SetupCost)
	assert.Equal(t, roundCents(5*4), breakdown.WashCost)
	assert.Equal(t, roundCents((1000.0/1000.0)*20*2), breakdown.ImpressionCost)
}

func TestPrintingCost_MinimumImpressionCharge(t *testing.T) {
	minCharge := 2000
	machine := ganging.Machine{
		MinImpressionsCharge: &minCharge,
		ImpressionCost:       ganging.ImpressionCostInfo{PricePerThousand: 10},
	}
	needs := ganging.PrintNeeds{Technique: "SIMPLEX", Passes: 1}

	breakdown := PrintingCost(machine, needs, 10)

	assert.Equal(t, roundCents((2000.0/1000.0)*10*1), breakdown.ImpressionCost)
}

func TestPrintingCost_DuplexChargesTwoPasses(t *testing.T) {
	machine := ganging.Machine{
		ImpressionCost: ganging.ImpressionCostInfo{PricePerThousand: 10},
	}
	needs := ganging.PrintNeeds{Technique: "DUPLEX", Passes: 1}

	breakdown := PrintingCost(machine, needs, 1000)

	assert.Equal(t, roundCents((1000.0/1000.0)*10*2), breakdown.ImpressionCost)
}
