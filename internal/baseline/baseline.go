// Package baseline computes the best single-job layout per job: the lower
// bound of the "no ganging" cost, independent of every other job. Grounded
// on original_source/api/optimizer.py's calculate_base_solution.
package baseline

import (
	"fmt"

	"github.com/piwi3910/ganger/internal/costmodel"
	"github.com/piwi3910/ganger/internal/ganging"
	"github.com/piwi3910/ganger/internal/geometry"
)

// Result is the per-job baseline plus its total cost, keyed by layout id
// ("base_{job_id}").
type Result struct {
	Layouts   map[string]ganging.PricedLayout
	TotalCost int // cents
}

// cutsForFactorySize returns the printing-sheet sizes permitted for a
// factory sheet, matching by {w,l} multiset per spec.md §3.
func cutsForFactorySize(fs ganging.FactorySize, cuts []ganging.AvailableCutMap) []ganging.Size {
	for _, m := range cuts {
		if m.ForPaperSize.EqualUnderRotation(fs.Size) {
			return m.SheetSizes
		}
	}
	return nil
}

// Solve finds, for every job, the cheapest (machine, factory size, printing
// sheet) combination that fits a single-job layout, and sums the minima.
func Solve(in ganging.Input) Result {
	result := Result{Layouts: make(map[string]ganging.PricedLayout)}
	jobsByID := make(map[string]ganging.Job, len(in.Jobs))
	for _, j := range in.Jobs {
		jobsByID[j.ID] = j
	}

	for _, job := range in.Jobs {
		best, ok := bestLayoutForJob(job, in, jobsByID)
		if !ok {
			continue
		}
		layoutID := fmt.Sprintf("base_%s", job.ID)
		best.LayoutID = layoutID
		result.Layouts[layoutID] = best
		result.TotalCost += best.TotalCost
	}
	return result
}

func bestLayoutForJob(job ganging.Job, in ganging.Input, jobsByID map[string]ganging.Job) (ganging.PricedLayout, bool) {
	var best ganging.PricedLayout
	bestCost := -1

	for _, machine := range in.Machines {
		for _, fs := range job.Material.FactorySizes {
			for _, printingSheet := range cutsForFactorySize(fs, in.AvailableCuts) {
				if !machine.FitsWithinMaxSheet(printingSheet) {
					continue
				}
				jobSize := ganging.Size{Width: job.Width, Length: job.Length}
				cut := geometry.GridCut(printingSheet, jobSize)
				if cut.CutsPerSheet == 0 {
					continue
				}

				layout := ganging.Layout{
					PrintingSheet: printingSheet,
					CountPerJob:   map[string]int{job.ID: cut.CutsPerSheet},
					Placements:    placementsForJob(job.ID, cut.Positions),
				}
				priced, ok := costmodel.LayoutCost(layout, jobsByID, machine, in.DollarRate)
				if !ok {
					continue
				}
				if bestCost < 0 || priced.TotalCost < bestCost {
					bestCost = priced.TotalCost
					best = priced
				}
			}
		}
	}

	return best, bestCost >= 0
}

// placementsForJob stamps the job id onto grid-cut positions (which carry
// width/length but no job id, since grid cut is job-agnostic).
func placementsForJob(jobID string, positions []ganging.Placement) []ganging.Placement {
	out := make([]ganging.Placement, len(positions))
	for i, p := range positions {
		p.JobID = jobID
		out[i] = p
	}
	return out
}
