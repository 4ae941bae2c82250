// Package pipeline orchestrates one ganging request end to end: baseline and
// candidate generation run concurrently, then the plan solver ranks ganged
// alternatives against the baseline. Grounded on the concurrency idiom of
// AlejandroRuiz99-polybot's cmd/scanner/main.go (errgroup + slog) and on
// original_source/api/optimizer.py's top-level orchestration.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/piwi3910/ganger/internal/baseline"
	"github.com/piwi3910/ganger/internal/candidates"
	"github.com/piwi3910/ganger/internal/ganging"
	"github.com/piwi3910/ganger/internal/plansolver"
)

// Result is the full output of one solve: the baseline (always present, the
// lower bound) and the ranked ganged plans strictly cheaper than baseline
// (possibly empty, if no ganging candidate beat it).
type Result struct {
	Baseline baseline.Result
	Plans    []ganging.Plan
}

// Run validates in, then solves it: baseline and candidate generation run
// concurrently under in.Options.TimeoutSeconds, and the plan solver ranks up
// to in.Options.NumberOfSolutions ganged alternatives strictly cheaper than
// baseline. A job whose rectangle fits no printing sheet at all is a hard
// failure of the whole request (spec.md §7/§8 E4) — distinct from simply
// finding no ganged improvement, which just yields an empty Result.Plans.
func Run(ctx context.Context, log *slog.Logger, in ganging.Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	if log == nil {
		log = slog.Default()
	}

	deadline := time.Duration(in.Options.TimeoutSeconds) * time.Second
	if deadline <= 0 {
		deadline = 30 * time.Second
	}
	solveCtx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	jobsByID := make(map[string]ganging.Job, len(in.Jobs))
	for _, j := range in.Jobs {
		jobsByID[j.ID] = j
	}

	var baselineResult baseline.Result
	var cands []candidates.Candidate

	g, gctx := errgroup.WithContext(solveCtx)
	g.Go(func() error {
		log.Info("baseline solve starting", "jobs", len(in.Jobs))
		baselineResult = baseline.Solve(in)
		log.Info("baseline solve done", "totalCost", baselineResult.TotalCost, "layouts", len(baselineResult.Layouts))
		return nil
	})
	g.Go(func() error {
		log.Info("candidate generation starting")
		cands = candidates.Generate(gctx, in.Jobs, in.AvailableCuts)
		log.Info("candidate generation done", "candidates", len(cands))
		return nil
	})
	// errgroup.Go never returns a non-nil error here; both stages are
	// best-effort and report via their own return values.
	_ = g.Wait()

	for _, job := range in.Jobs {
		if _, ok := baselineResult.Layouts["base_"+job.ID]; !ok {
			return Result{}, ganging.NewInfeasibleError("job " + job.ID + " fits no printing sheet on any machine")
		}
	}

	layouts := plansolver.BuildLayouts(baselineResult.Layouts, cands, jobsByID, in.Machines, in.DollarRate)

	log.Info("plan solving starting", "layouts", len(layouts))
	plans, err := plansolver.Solve(solveCtx, layouts, in.Jobs, in.Options.Penalties, in.Options.NumberOfSolutions)
	if err != nil {
		// Baseline already covers every job, so the plan solver always has a
		// trivial feasible covering (all-baseline); reaching here means a
		// real modeling gap, not the "no ganged improvement" case.
		return Result{}, err
	}
	log.Info("plan solving done", "plans", len(plans))

	if solveCtx.Err() != nil {
		log.Warn("solve deadline reached, returning best-so-far")
	}

	var improved []ganging.Plan
	for _, plan := range plans {
		if plan.TotalCost < baselineResult.TotalCost {
			improved = append(improved, plan)
		}
	}

	return Result{Baseline: baselineResult, Plans: improved}, nil
}
