package ioadapter

import (
	"encoding/json"
	"math"

	"github.com/piwi3910/ganger/internal/ganging"
	"github.com/piwi3910/ganger/internal/pipeline"
)

// dollars converts an integer cents amount to a float rounded to 2 decimal
// places, matching original_source/api/optimizer.py's round(x, 2) and
// spec.md §6's `:float` typing for every cost field on the wire. Internal
// components keep working in cents (spec.md §3); only the JSON boundary
// converts back to dollars.
func dollars(cents int) float64 {
	return math.Round(float64(cents)) / 100.0
}

// jobInLayout is one job's share of a layout's print run.
type jobInLayout struct {
	ID               string `json:"id"`
	QuantityPerSheet int    `json:"quantityPerSheet"`
}

type printingCostOut struct {
	SetupCost         float64 `json:"setupCost"`
	WashCost          float64 `json:"washCost"`
	ImpressionCost    float64 `json:"impressionCost"`
	TotalPrintingCost float64 `json:"totalPrintingCost"`
}

type costBreakdownOut struct {
	MaterialCost float64         `json:"materialCost"`
	PrintingCost printingCostOut `json:"printingCost"`
}

type materialNeedsOut struct {
	TotalMaterialCost float64                 `json:"totalMaterialCost"`
	FactorySheets     ganging.FactorySheetPlan `json:"factorySheets"`
}

// layoutOut is the wire shape of a priced layout, spec.md §6's LayoutOut.
type layoutOut struct {
	LayoutID      string              `json:"layoutId"`
	SheetsToPrint int                 `json:"sheetsToPrint"`
	Machine       string              `json:"machine"`
	PrintingSheet ganging.Size        `json:"printingSheet"`
	CostBreakdown costBreakdownOut    `json:"costBreakdown"`
	MaterialNeeds materialNeedsOut    `json:"materialNeeds"`
	PrintNeeds    ganging.PrintNeeds  `json:"printNeeds"`
	JobsInLayout  []jobInLayout       `json:"jobsInLayout"`
	Placements    []ganging.Placement `json:"placements"`
}

func formatLayout(l ganging.PricedLayout) layoutOut {
	jobIDs := l.Layout.JobIDs()
	jobs := make([]jobInLayout, len(jobIDs))
	for i, id := range jobIDs {
		jobs[i] = jobInLayout{ID: id, QuantityPerSheet: l.Layout.CountPerJob[id]}
	}

	return layoutOut{
		LayoutID:      l.LayoutID,
		SheetsToPrint: l.NetSheets,
		Machine:       l.Machine.ID,
		PrintingSheet: l.Layout.PrintingSheet,
		CostBreakdown: costBreakdownOut{
			MaterialCost: dollars(l.CostBreakdown.MaterialCost),
			PrintingCost: printingCostOut{
				SetupCost:         dollars(l.CostBreakdown.PrintingCost.SetupCost),
				WashCost:          dollars(l.CostBreakdown.PrintingCost.WashCost),
				ImpressionCost:    dollars(l.CostBreakdown.PrintingCost.ImpressionCost),
				TotalPrintingCost: dollars(l.CostBreakdown.PrintingCost.TotalPrintingCost),
			},
		},
		MaterialNeeds: materialNeedsOut{
			TotalMaterialCost: dollars(l.MaterialNeeds.TotalMaterialCost),
			FactorySheets:     l.MaterialNeeds.FactorySheets,
		},
		PrintNeeds:   l.PrintNeeds,
		JobsInLayout: jobs,
		Placements:   l.Layout.Placements,
	}
}

func formatLayoutMap(layouts []ganging.PricedLayout) map[string]layoutOut {
	out := make(map[string]layoutOut, len(layouts))
	for _, l := range layouts {
		out[l.LayoutID] = formatLayout(l)
	}
	return out
}

// productionPlanItemOut is the terse per-layout line item spec.md §6 lists
// under `productionPlan`, distinct from the full LayoutOut under `layouts`.
type productionPlanItemOut struct {
	ID                  string  `json:"id"`
	Sheets              int     `json:"sheets"`
	CostForThisPlanItem float64 `json:"costForThisPlanItem"`
}

type baselineSolutionOut struct {
	TotalCost float64              `json:"total_cost"`
	Layouts   map[string]layoutOut `json:"layouts"`
}

type gangedSolutionOut struct {
	Summary struct {
		GangedTotalCost float64 `json:"gangedTotalCost"`
	} `json:"summary"`
	ProductionPlan []productionPlanItemOut `json:"productionPlan"`
	Layouts        map[string]layoutOut    `json:"layouts"`
}

type responseJSON struct {
	Summary struct {
		BaselineTotalCost float64 `json:"baselineTotalCost"`
	} `json:"summary"`
	BaselineSolution baselineSolutionOut `json:"baselineSolution"`
	GangedSolutions  []gangedSolutionOut `json:"gangedSolutions"`
}

// FormatOutput renders a pipeline.Result as the spec.md §6 response body.
func FormatOutput(result pipeline.Result) ([]byte, error) {
	var resp responseJSON
	resp.Summary.BaselineTotalCost = dollars(result.Baseline.TotalCost)

	resp.BaselineSolution.TotalCost = dollars(result.Baseline.TotalCost)
	resp.BaselineSolution.Layouts = make(map[string]layoutOut, len(result.Baseline.Layouts))
	for id, l := range result.Baseline.Layouts {
		resp.BaselineSolution.Layouts[id] = formatLayout(l)
	}

	for _, plan := range result.Plans {
		var out gangedSolutionOut
		out.Summary.GangedTotalCost = dollars(plan.TotalCost)
		out.Layouts = formatLayoutMap(plan.Layouts)
		for _, l := range plan.Layouts {
			out.ProductionPlan = append(out.ProductionPlan, productionPlanItemOut{
				ID:                  l.LayoutID,
				Sheets:              l.NetSheets,
				CostForThisPlanItem: dollars(l.TotalCost),
			})
		}
		resp.GangedSolutions = append(resp.GangedSolutions, out)
	}

	return json.MarshalIndent(resp, "", "  ")
}
