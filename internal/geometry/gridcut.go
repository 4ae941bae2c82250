// Package geometry implements the two placement primitives the ganging
// pipeline needs: cutting a factory sheet into printing sheets on a regular
// grid, and packing a multiset of job rectangles onto a printing sheet.
//
// Both are grounded on the guillotine-style packer in the teacher repo's
// internal/engine/optimizer.go, adapted to integer millimetres and to the
// spec's asymmetric rotation rule (§9): grid cut may rotate the printing
// sheet against the factory sheet; the job packer never rotates a job.
package geometry

import "github.com/piwi3910/ganger/internal/ganging"

// GridCutResult is the chosen orientation's yield and the row-major list of
// printing-sheet positions within the factory sheet.
type GridCutResult struct {
	CutsPerSheet int
	Positions    []ganging.Placement
}

// GridCut cuts a factorySize sheet into printingSheet-sized pieces, choosing
// whichever of the two orientations (printing sheet as-is, or rotated 90
// degrees against the factory sheet) yields more pieces. Ties prefer the
// non-rotated orientation. Positions are returned in row-major order.
func GridCut(factory, printing ganging.Size) GridCutResult {
	if printing.Width <= 0 || printing.Length <= 0 {
		return GridCutResult{}
	}

	normal := gridCutOneWay(factory, printing.Width, printing.Length)
	rotated := gridCutOneWay(factory, printing.Length, printing.Width)

	if normal.CutsPerSheet >= rotated.CutsPerSheet {
		return normal
	}
	return rotated
}

// gridCutOneWay computes ⌊W/w⌋·⌊H/h⌋ pieces of size (w,h) from sheet
// (factory.Width, factory.Length), without rotating w/h against factory.
func gridCutOneWay(factory ganging.Size, w, h int) GridCutResult {
	if factory.Width < w || factory.Length < h {
		return GridCutResult{}
	}
	cols := factory.Width / w
	rows := factory.Length / h
	count := cols * rows
	if count == 0 {
		return GridCutResult{}
	}

	positions := make([]ganging.Placement, 0, count)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			positions = append(positions, ganging.Placement{
				X: c * w, Y: r * h, Width: w, Length: h,
			})
		}
	}
	return GridCutResult{CutsPerSheet: count, Positions: positions}
}
