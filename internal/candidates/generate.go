// Package candidates enumerates profitable multi-job packings of rectangles
// onto printing sheets ("ganging"). Grounded on
// original_source/api/optimizer.py's generate_candidate_layouts, with the
// same "first pack wins, smallest tiraje first" heuristic (spec.md §4.4).
package candidates

import (
	"context"
	"sort"

	"github.com/piwi3910/ganger/internal/ganging"
	"github.com/piwi3910/ganger/internal/geometry"
)

// MaxTupleQuantity is the hard per-job cap on how many copies of a job are
// tried on one sheet during enumeration (spec.md §4.4 step 3, §9).
const MaxTupleQuantity = 30

// Candidate is a machine-agnostic ganged layout: a job subset packed onto a
// printing sheet, with the recipe (count per job) and the placements the
// packer found for it.
type Candidate struct {
	PrintingSheet ganging.Size
	CountPerJob   map[string]int
	Placements    []ganging.Placement
}

// Generate enumerates candidate ganged layouts across every material group,
// every job subset of size >= 2, and every printing sheet reachable from
// that material. It respects ctx's deadline, checked before each
// (subset, sheet) pair, and returns whatever candidates were found so far if
// the deadline passes (spec.md §4.4, §5).
func Generate(ctx context.Context, jobs []ganging.Job, cuts []ganging.AvailableCutMap) []Candidate {
	var result []Candidate

	for _, group := range groupByMaterial(jobs) {
		if len(group) < 2 {
			continue
		}
		sheets := reachableSheets(group[0].Material, cuts)

		for size := 2; size <= len(group); size++ {
			for _, subset := range combinations(group, size) {
				for _, sheet := range sheets {
					select {
					case <-ctx.Done():
						return result
					default:
					}

					if cand, ok := bestCandidateFor(subset, sheet); ok {
						result = append(result, cand)
					}
				}
			}
		}
	}

	return result
}

// groupByMaterial buckets jobs by material id, each group sorted by job id
// for deterministic subset enumeration (spec.md §5).
func groupByMaterial(jobs []ganging.Job) [][]ganging.Job {
	byMaterial := make(map[string][]ganging.Job)
	var order []string
	for _, j := range jobs {
		if _, seen := byMaterial[j.Material.ID]; !seen {
			order = append(order, j.Material.ID)
		}
		byMaterial[j.Material.ID] = append(byMaterial[j.Material.ID], j)
	}
	sort.Strings(order)

	groups := make([][]ganging.Job, 0, len(order))
	for _, matID := range order {
		g := byMaterial[matID]
		sort.Slice(g, func(i, j int) bool { return g[i].ID < g[j].ID })
		groups = append(groups, g)
	}
	return groups
}

// reachableSheets is the deduplicated union of printing-sheet sizes cuttable
// from any factory size the material ships in.
func reachableSheets(material ganging.Material, cuts []ganging.AvailableCutMap) []ganging.Size {
	seen := make(map[ganging.Size]bool)
	var out []ganging.Size
	for _, fs := range material.FactorySizes {
		for _, m := range cuts {
			if !m.ForPaperSize.EqualUnderRotation(fs.Size) {
				continue
			}
			for _, s := range m.SheetSizes {
				if !seen[s] {
					seen[s] = true
					out = append(out, s)
				}
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Width != out[j].Width {
			return out[i].Width < out[j].Width
		}
		return out[i].Length < out[j].Length
	})
	return out
}

// combinations returns every size-k subset of jobs (already sorted by id),
// in lexicographic order by index.
func combinations(jobs []ganging.Job, k int) [][]ganging.Job {
	n := len(jobs)
	if k > n {
		return nil
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	var out [][]ganging.Job
	for {
		subset := make([]ganging.Job, k)
		for i, id := range idx {
			subset[i] = jobs[id]
		}
		out = append(out, subset)

		// Advance idx to the next combination, or stop.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}

// tuple is one candidate recipe for a subset: quantity per sheet for each
// job, in subset order, plus its tiraje metric.
type tuple struct {
	quantities []int
	tiraje     int
}

// bestCandidateFor tries every count-tuple for subset on sheet, smallest
// tiraje first, and returns the first one the packer can fit in full.
func bestCandidateFor(subset []ganging.Job, sheet ganging.Size) (Candidate, bool) {
	sheetArea := sheet.Area()

	maxQty := make([]int, len(subset))
	for i, j := range subset {
		area := j.Area()
		if area == 0 {
			return Candidate{}, false
		}
		q := sheetArea / area
		if q > MaxTupleQuantity {
			q = MaxTupleQuantity
		}
		if q == 0 {
			return Candidate{}, false
		}
		maxQty[i] = q
	}

	tuples := enumerateTuples(subset, maxQty, sheetArea)
	if len(tuples) == 0 {
		return Candidate{}, false
	}

	sort.SliceStable(tuples, func(i, j int) bool {
		if tuples[i].tiraje != tuples[j].tiraje {
			return tuples[i].tiraje < tuples[j].tiraje
		}
		return lexicographicLess(tuples[i].quantities, tuples[j].quantities)
	})

	for _, t := range tuples {
		items := make([]geometry.PackItem, 0)
		countPerJob := make(map[string]int, len(subset))
		for i, j := range subset {
			countPerJob[j.ID] = t.quantities[i]
			for c := 0; c < t.quantities[i]; c++ {
				items = append(items, geometry.PackItem{JobID: j.ID, Width: j.Width, Length: j.Length})
			}
		}
		geometry.SortDescendingLongerSide(items)

		if ok, placements := geometry.Pack(sheet, items); ok {
			return Candidate{PrintingSheet: sheet, CountPerJob: countPerJob, Placements: placements}, true
		}
	}
	return Candidate{}, false
}

func lexicographicLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// enumerateTuples walks the cartesian product [1,maxQty[0]] x ... x
// [1,maxQty[n-1]], keeping only tuples whose total rectangle area fits the
// sheet (spec.md §4.4 step 4), and computing each tuple's tiraje.
func enumerateTuples(subset []ganging.Job, maxQty []int, sheetArea int) []tuple {
	var out []tuple
	current := make([]int, len(subset))

	var recurse func(pos int)
	recurse = func(pos int) {
		if pos == len(subset) {
			total := 0
			tiraje := 0
			for i, j := range subset {
				total += current[i] * j.Area()
				run := ceilDiv(j.Quantity, current[i])
				if run > tiraje {
					tiraje = run
				}
			}
			if total <= sheetArea {
				quantities := make([]int, len(current))
				copy(quantities, current)
				out = append(out, tuple{quantities: quantities, tiraje: tiraje})
			}
			return
		}
		for q := 1; q <= maxQty[pos]; q++ {
			current[pos] = q
			recurse(pos + 1)
		}
	}
	recurse(0)
	return out
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
