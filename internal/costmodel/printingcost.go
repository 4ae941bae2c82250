package costmodel

import "github.com/piwi3910/ganger/internal/ganging"

// roundCents rounds a dollar amount to the nearest integer cent, matching
// the "currency stored as cents (integer) inside the solver" rule of
// spec.md §3.
func roundCents(dollars float64) int {
	if dollars < 0 {
		return -int(-dollars*100 + 0.5)
	}
	return int(dollars*100 + 0.5)
}

// PrintingCost computes the press-time cost breakdown for a run of
// netSheets, per spec.md §4.2.
func PrintingCost(machine ganging.Machine, needs ganging.PrintNeeds, netSheets int) ganging.PrintingCostBreakdown {
	setupUnits := needs.Passes
	if machine.SetupCost.PerInk {
		setupUnits = needs.TotalPlates
	}
	washUnits := needs.Passes
	if machine.WashCost.PerInk {
		washUnits = needs.TotalPlates
	}

	setup := roundCents(machine.SetupCost.Price * float64(setupUnits))
	wash := roundCents(machine.WashCost.Price * float64(washUnits))

	minCharge := 0
	if machine.MinImpressionsCharge != nil {
		minCharge = *machine.MinImpressionsCharge
	}
	chargeable := netSheets
	if minCharge > chargeable {
		chargeable = minCharge
	}

	passesForImpression := needs.Passes
	if needs.Technique == "DUPLEX" {
		passesForImpression = 2
	}
	impression := roundCents((float64(chargeable) / 1000.0) * machine.ImpressionCost.PricePerThousand * float64(passesForImpression))

	return ganging.PrintingCostBreakdown{
		SetupCost:         setup,
		WashCost:          wash,
		ImpressionCost:    impression,
		TotalPrintingCost: setup + wash + impression,
	}
}
