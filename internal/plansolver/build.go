// Package plansolver selects, from the baseline layouts and the candidate
// ganged layouts, the subset that covers every job's demand at minimum cost
// plus a diversity penalty (spec.md §4.5). Grounded on
// original_source/api/optimizer.py's solve_optimal_plan.
package plansolver

import (
	"fmt"
	"sort"

	"github.com/piwi3910/ganger/internal/candidates"
	"github.com/piwi3910/ganger/internal/costmodel"
	"github.com/piwi3910/ganger/internal/ganging"
)

// BuildLayouts combines the baseline per-job layouts with the machine-agnostic
// candidates, pricing every candidate against every machine it physically
// fits on. The result is the full universe of layouts the solver chooses
// from. Candidate layout ids follow the "ganging_{i}_{machine_id}" scheme of
// spec.md §6, where i is the candidate's position in the (already
// deterministic) generator output.
func BuildLayouts(baseline map[string]ganging.PricedLayout, cands []candidates.Candidate, jobsByID map[string]ganging.Job, machines []ganging.Machine, dollarRate float64) []ganging.PricedLayout {
	out := make([]ganging.PricedLayout, 0, len(baseline)+len(cands)*len(machines))

	ids := make([]string, 0, len(baseline))
	for id := range baseline {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		out = append(out, baseline[id])
	}

	for i, cand := range cands {
		layout := ganging.Layout{
			PrintingSheet: cand.PrintingSheet,
			CountPerJob:   cand.CountPerJob,
			Placements:    cand.Placements,
		}
		for _, machine := range machines {
			if !machine.FitsWithinMaxSheet(cand.PrintingSheet) {
				continue
			}
			priced, ok := costmodel.LayoutCost(layout, jobsByID, machine, dollarRate)
			if !ok {
				continue
			}
			priced.LayoutID = fmt.Sprintf("ganging_%d_%s", i, machine.ID)
			out = append(out, priced)
		}
	}

	return out
}
