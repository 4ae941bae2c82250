package costmodel

import "github.com/piwi3910/ganger/internal/ganging"

// LayoutCost prices a Layout on a machine: it derives net_sheets, aggregates
// ink requirements across the jobs sharing the sheet, and sums material +
// printing cost (spec.md §4.2 "Layout total cost"). All jobs in a layout are
// assumed to share one material (enforced by the candidate generator); the
// material of the last job visited in CountPerJob's (unordered) iteration is
// used. Returns ok=false if the layout is
// empty, if any per-sheet count is non-positive, or if no factory sheet can
// supply the material.
func LayoutCost(layout ganging.Layout, jobsByID map[string]ganging.Job, machine ganging.Machine, dollarRate float64) (ganging.PricedLayout, bool) {
	if len(layout.CountPerJob) == 0 {
		return ganging.PricedLayout{}, false
	}

	netSheets := 0
	var material ganging.Material
	frontInks, backInks := 0, 0
	isDuplex := false

	for jobID, countPerSheet := range layout.CountPerJob {
		if countPerSheet <= 0 {
			return ganging.PricedLayout{}, false
		}
		job, ok := jobsByID[jobID]
		if !ok {
			return ganging.PricedLayout{}, false
		}
		runs := ceilDiv(job.Quantity, countPerSheet)
		if runs > netSheets {
			netSheets = runs
		}
		if job.FrontInks > frontInks {
			frontInks = job.FrontInks
		}
		if job.BackInks > backInks {
			backInks = job.BackInks
		}
		isDuplex = isDuplex || job.IsDuplex
		material = job.Material
	}
	if netSheets == 0 {
		return ganging.PricedLayout{}, false
	}

	printNeeds := PrintingNeeds(frontInks, backInks, isDuplex, machine.PrintingBodies)

	overageSheets := machine.Overage.Amount
	if machine.Overage.PerInk {
		overageSheets = machine.Overage.Amount * printNeeds.TotalPlates
	}
	totalPrintingSheets := netSheets + overageSheets

	materialNeeds, ok := MaterialCost(material, layout.PrintingSheet, totalPrintingSheets, dollarRate)
	if !ok {
		return ganging.PricedLayout{}, false
	}

	printingCost := PrintingCost(machine, printNeeds, netSheets)
	totalCost := materialNeeds.TotalMaterialCost + printingCost.TotalPrintingCost

	return ganging.PricedLayout{
		Layout:    layout,
		Machine:   machine,
		NetSheets: netSheets,
		TotalCost: totalCost,
		CostBreakdown: ganging.CostBreakdown{
			MaterialCost: materialNeeds.TotalMaterialCost,
			PrintingCost: printingCost,
		},
		MaterialNeeds: materialNeeds,
		PrintNeeds:    printNeeds,
	}, true
}
