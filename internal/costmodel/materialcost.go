package costmodel

import (
	"math"

	"github.com/piwi3910/ganger/internal/ganging"
	"github.com/piwi3910/ganger/internal/geometry"
)

// MaterialCost picks the cheapest factory sheet size (by fewest factory
// sheets needed, tie-broken by smaller factory area) for cutting
// totalPrintingSheets printing sheets, and prices the result. Returns ok=false
// if no factory size of the material can yield a single printing sheet.
func MaterialCost(material ganging.Material, printingSheet ganging.Size, totalPrintingSheets int, dollarRate float64) (ganging.MaterialNeeds, bool) {
	bestSheets := math.MaxInt32
	bestArea := math.MaxInt32
	var best ganging.FactorySize
	var bestCut geometry.GridCutResult
	found := false

	for _, fs := range material.FactorySizes {
		cut := geometry.GridCut(fs.Size, printingSheet)
		if cut.CutsPerSheet == 0 {
			continue
		}
		needed := ceilDiv(totalPrintingSheets, cut.CutsPerSheet)
		area := fs.Area()
		if needed < bestSheets || (needed == bestSheets && area < bestArea) {
			bestSheets = needed
			bestArea = area
			best = fs
			bestCut = cut
			found = true
		}
	}

	if !found {
		return ganging.MaterialNeeds{}, false
	}

	unitCost := (float64(best.Width) / 1000.0) * (float64(best.Length) / 1000.0) * float64(material.Grammage) / 1000.0 / 1000.0 * best.USDPerTon
	total := roundCents(float64(bestSheets) * unitCost * dollarRate)

	return ganging.MaterialNeeds{
		TotalMaterialCost: total,
		FactorySheets: ganging.FactorySheetPlan{
			Size:           best,
			QuantityNeeded: bestSheets,
			CutsPerSheet:   bestCut.CutsPerSheet,
		},
	}, true
}
