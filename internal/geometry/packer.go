package geometry

import "github.com/piwi3910/ganger/internal/ganging"

// PackItem is one rectangle to place, labeled with the job it belongs to.
// A job requesting a count of N appears N times in the slice the caller
// builds — the packer places items one at a time in the given order.
type PackItem struct {
	JobID  string
	Width  int
	Length int
}

// rect is a free rectangle inside the sheet, tracked by the packer.
type rect struct {
	x, y, w, h int
}

// packer implements the maximal-rectangles guillotine packer from the
// teacher's internal/engine/optimizer.go, stripped of rotation support: the
// ganging path never rotates a job (spec §9).
type packer struct {
	freeRects []rect
}

func newPacker(sheet ganging.Size) *packer {
	return &packer{freeRects: []rect{{0, 0, sheet.Width, sheet.Length}}}
}

// insert places a w x h rectangle using best-area-fit, splitting all
// overlapping free rectangles around the placement. Returns ok=false if no
// free rectangle is large enough.
func (p *packer) insert(w, h int) (ok bool, x, y int) {
	bestIdx := -1
	bestAreaFit := -1
	for i, r := range p.freeRects {
		if w <= r.w && h <= r.h {
			areaFit := r.w*r.h - w*h
			if bestIdx < 0 || areaFit < bestAreaFit {
				bestIdx = i
				bestAreaFit = areaFit
			}
		}
	}
	if bestIdx < 0 {
		return false, 0, 0
	}

	chosen := p.freeRects[bestIdx]
	placed := rect{chosen.x, chosen.y, w, h}
	p.splitAroundPlacement(placed)
	return true, chosen.x, chosen.y
}

// splitAroundPlacement removes every free rect overlapping the placement and
// replaces each with up to four maximal sub-rects for the non-overlapping
// remainder, then prunes rects fully contained within another.
func (p *packer) splitAroundPlacement(placed rect) {
	var next []rect
	for _, r := range p.freeRects {
		if !rectsOverlap(r, placed) {
			next = append(next, r)
			continue
		}
		if placed.x > r.x {
			next = append(next, rect{r.x, r.y, placed.x - r.x, r.h})
		}
		if placed.x+placed.w < r.x+r.w {
			next = append(next, rect{placed.x + placed.w, r.y, (r.x + r.w) - (placed.x + placed.w), r.h})
		}
		if placed.y > r.y {
			next = append(next, rect{r.x, r.y, r.w, placed.y - r.y})
		}
		if placed.y+placed.h < r.y+r.h {
			next = append(next, rect{r.x, placed.y + placed.h, r.w, (r.y + r.h) - (placed.y + placed.h)})
		}
	}
	p.freeRects = pruneContained(next)
}

func rectsOverlap(a, b rect) bool {
	return a.x < b.x+b.w && a.x+a.w > b.x && a.y < b.y+b.h && a.y+a.h > b.y
}

func pruneContained(rects []rect) []rect {
	if len(rects) <= 1 {
		return rects
	}
	kept := make([]rect, 0, len(rects))
	for i, a := range rects {
		contained := false
		for j, b := range rects {
			if i != j && containsRect(b, a) {
				contained = true
				break
			}
		}
		if !contained {
			kept = append(kept, a)
		}
	}
	return kept
}

func containsRect(outer, inner rect) bool {
	return outer.x <= inner.x && outer.y <= inner.y &&
		outer.x+outer.w >= inner.x+inner.w && outer.y+outer.h >= inner.y+inner.h
}

// Pack attempts to place every item (in the caller-supplied order) onto a
// sheet of the given size, without rotation. It returns ok=false the moment
// any item fails to fit — "did not pack all" per spec §4.1 — with no
// placements. On success it returns the full list of placements, one per
// item, in the same order as items.
func Pack(sheet ganging.Size, items []PackItem) (ok bool, placements []ganging.Placement) {
	p := newPacker(sheet)
	placements = make([]ganging.Placement, 0, len(items))
	for _, it := range items {
		placed, x, y := p.insert(it.Width, it.Length)
		if !placed {
			return false, nil
		}
		placements = append(placements, ganging.Placement{
			JobID: it.JobID, X: x, Y: y, Width: it.Width, Length: it.Length,
		})
	}
	return true, placements
}

// SortDescendingLongerSide sorts items in place by descending longer side,
// ties broken by descending area — the ordering spec §4.1 requires the
// caller to supply before invoking Pack.
func SortDescendingLongerSide(items []PackItem) {
	longerSide := func(it PackItem) int {
		if it.Width > it.Length {
			return it.Width
		}
		return it.Length
	}
	area := func(it PackItem) int { return it.Width * it.Length }

	// Simple insertion sort: item counts per sheet are small (capped at 30
	// per job by the candidate generator), so this stays linear in practice
	// and keeps the ordering stable and easy to verify against spec by hand.
	for i := 1; i < len(items); i++ {
		for j := i; j > 0; j-- {
			a, b := items[j-1], items[j]
			swap := longerSide(a) < longerSide(b) ||
				(longerSide(a) == longerSide(b) && area(a) < area(b))
			if !swap {
				break
			}
			items[j-1], items[j] = items[j], items[j-1]
		}
	}
}
