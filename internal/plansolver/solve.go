package plansolver

import (
	"context"
	"sort"

	"github.com/piwi3910/ganger/internal/ganging"
)

// search holds the read-only problem data for one branch-and-bound run.
type search struct {
	layouts      []ganging.PricedLayout
	layoutsByJob map[string][]int // jobID -> indices into layouts, covering it
	jobOrder     []string         // deterministic job-id order
	penalties    ganging.Penalties
	ctx          context.Context

	nodes     int
	timedOut  bool
	minCost   int // strict lower bound a found solution's cost must beat; -1 means none
	best      []int
	bestCost  int
	bestFound bool
}

// Solve selects up to numberOfSolutions distinct-cost covering plans from
// layouts, cheapest first, respecting ctx's deadline. Returns
// ganging.InfeasibleError if no selection of layouts covers every job.
func Solve(ctx context.Context, layouts []ganging.PricedLayout, jobs []ganging.Job, penalties ganging.Penalties, numberOfSolutions int) ([]ganging.Plan, error) {
	if numberOfSolutions < 1 {
		numberOfSolutions = 1
	}

	jobOrder := make([]string, len(jobs))
	for i, j := range jobs {
		jobOrder[i] = j.ID
	}
	sort.Strings(jobOrder)

	byJob := make(map[string][]int, len(jobOrder))
	for idx, l := range layouts {
		for jobID := range l.Layout.CountPerJob {
			byJob[jobID] = append(byJob[jobID], idx)
		}
	}
	for _, ids := range byJob {
		sort.Slice(ids, func(i, j int) bool {
			return layouts[ids[i]].TotalCost < layouts[ids[j]].TotalCost
		})
	}

	for _, jobID := range jobOrder {
		if len(byJob[jobID]) == 0 {
			return nil, ganging.NewInfeasibleError("no layout covers job " + jobID)
		}
	}

	var plans []ganging.Plan
	lastCost := -1

	for len(plans) < numberOfSolutions {
		s := &search{
			layouts:      layouts,
			layoutsByJob: byJob,
			jobOrder:     jobOrder,
			penalties:    penalties,
			ctx:          ctx,
			minCost:      lastCost,
		}
		selection, cost, ok, timedOut := s.run()
		if timedOut && !ok {
			break
		}
		if !ok {
			break
		}
		plans = append(plans, buildPlan(layouts, selection, cost))
		lastCost = cost
		if timedOut {
			break
		}
	}

	if len(plans) == 0 {
		return nil, ganging.NewInfeasibleError("no covering selection of layouts exists")
	}
	return plans, nil
}

// run performs one branch-and-bound search for the cheapest covering
// selection whose total (cost+penalty) strictly exceeds s.minCost.
func (s *search) run() (selection []int, cost int, ok bool, timedOut bool) {
	s.bestCost = -1
	covered := make(map[string]bool, len(s.jobOrder))
	var chosen []int
	s.search(covered, chosen, 0)

	if s.bestFound {
		return s.best, s.bestCost, true, s.timedOut
	}
	return nil, 0, false, s.timedOut
}

func (s *search) search(covered map[string]bool, chosen []int, partialCost int) {
	if s.timedOut {
		return
	}
	s.nodes++
	if s.nodes%2048 == 0 {
		select {
		case <-s.ctx.Done():
			s.timedOut = true
			return
		default:
		}
	}

	if s.bestFound && partialCost >= s.bestCost {
		return
	}

	target := s.firstUncovered(covered)
	if target == "" {
		total := partialCost + penaltyFor(s.layouts, chosen, s.penalties, partialCost)
		if s.minCost >= 0 && total <= s.minCost {
			return
		}
		if !s.bestFound || total < s.bestCost {
			s.bestFound = true
			s.bestCost = total
			s.best = append([]int(nil), chosen...)
		}
		return
	}

	for _, idx := range s.layoutsByJob[target] {
		layout := s.layouts[idx]
		if conflicts(layout, covered) {
			continue
		}
		newCovered := markCovered(covered, layout)
		s.search(newCovered, append(chosen, idx), partialCost+layout.TotalCost)
		if s.timedOut {
			return
		}
	}
}

func (s *search) firstUncovered(covered map[string]bool) string {
	for _, jobID := range s.jobOrder {
		if !covered[jobID] {
			return jobID
		}
	}
	return ""
}

func conflicts(layout ganging.PricedLayout, covered map[string]bool) bool {
	for jobID := range layout.Layout.CountPerJob {
		if covered[jobID] {
			return true
		}
	}
	return false
}

func markCovered(covered map[string]bool, layout ganging.PricedLayout) map[string]bool {
	out := make(map[string]bool, len(covered)+len(layout.Layout.CountPerJob))
	for k, v := range covered {
		out[k] = v
	}
	for jobID := range layout.Layout.CountPerJob {
		out[jobID] = true
	}
	return out
}

// penaltyFor computes the extra-diversity surcharge of spec.md §4.5: a
// percentage of total cost for every distinct machine, press sheet, and
// factory sheet beyond the first one used across the whole plan.
func penaltyFor(layouts []ganging.PricedLayout, chosen []int, penalties ganging.Penalties, totalCost int) int {
	machines := make(map[string]bool)
	pressSheets := make(map[ganging.Size]bool)
	factorySheets := make(map[ganging.Size]bool)

	for _, idx := range chosen {
		l := layouts[idx]
		machines[l.Machine.ID] = true
		pressSheets[l.Layout.PrintingSheet] = true
		factorySheets[l.MaterialNeeds.FactorySheets.Size.Size] = true
	}

	extraMachines := max0(len(machines) - 1)
	extraPS := max0(len(pressSheets) - 1)
	extraFS := max0(len(factorySheets) - 1)

	percent := extraMachines*penalties.DifferentMachinePenalty +
		extraPS*penalties.DifferentPressSheetPenalty +
		extraFS*penalties.DifferentFactorySheetPenalty

	return (totalCost * percent) / 100
}

func max0(x int) int {
	if x < 0 {
		return 0
	}
	return x
}

func buildPlan(layouts []ganging.PricedLayout, selection []int, totalCost int) ganging.Plan {
	sorted := append([]int(nil), selection...)
	sort.Slice(sorted, func(i, j int) bool {
		return layouts[sorted[i]].LayoutID < layouts[sorted[j]].LayoutID
	})
	plan := ganging.Plan{TotalCost: totalCost}
	for _, idx := range sorted {
		plan.Layouts = append(plan.Layouts, layouts[idx])
	}
	return plan
}
