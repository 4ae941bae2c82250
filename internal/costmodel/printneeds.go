// Package costmodel computes printing needs (technique, plates, passes) and
// the material/printing cost of running a layout on a machine. Grounded on
// original_source/api/optimizer.py's get_printing_needs,
// calculate_printing_cost and calculate_material_needs, translated to
// integer-cents Go per spec.md §3.
package costmodel

import (
	"math"

	"github.com/piwi3910/ganger/internal/ganging"
)

// UnusablePasses marks a machine with no ink stations: it can never print
// the requested plates, so its pass count is treated as infinite.
const UnusablePasses = math.MaxInt32

// PrintingNeeds derives technique/totalPlates/passes from the aggregate ink
// counts of a layout and the machine's ink-station count (spec §4.2).
func PrintingNeeds(frontInks, backInks int, isDuplex bool, printingBodies *int) ganging.PrintNeeds {
	technique := "SIMPLEX"
	totalPlates := frontInks
	if isDuplex {
		technique = "DUPLEX"
		totalPlates = frontInks + backInks
	}

	bodies := 0
	if printingBodies != nil {
		bodies = *printingBodies
	}

	var passes int
	if bodies <= 0 {
		passes = UnusablePasses
	} else if isDuplex {
		passes = ceilDiv(frontInks, bodies) + ceilDiv(backInks, bodies)
	} else {
		passes = ceilDiv(frontInks, bodies)
	}

	return ganging.PrintNeeds{Technique: technique, TotalPlates: totalPlates, Passes: passes}
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return UnusablePasses
	}
	return (a + b - 1) / b
}
