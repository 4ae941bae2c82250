package costmodel

import (
	"testing"

	"github.com/piwi3910/ganger/internal/ganging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialCost_PicksFewestFactorySheets(t *testing.T) {
	material := ganging.Material{
		Grammage: 150,
		FactorySizes: []ganging.FactorySize{
			{Size: ganging.Size{Width: 700, Length: 500}, USDPerTon: 1000},
			{Size: ganging.Size{Width: 1400, Length: 1000}, USDPerTon: 1000},
		},
	}
	printingSheet := ganging.Size{Width: 350, Length: 500}

	needs, ok := MaterialCost(material, printingSheet, 8, 1.0)

	require.True(t, ok)
	// 700x500 yields 2 cuts/sheet -> 4 sheets needed; 1400x1000 yields 8 cuts/sheet -> 1 sheet.
	assert.Equal(t, 1, needs.FactorySheets.QuantityNeeded)
	assert.Equal(t, 1400, needs.FactorySheets.Size.Width)
}

func TestMaterialCost_NoFactorySizeFits(t *testing.T) {
	material := ganging.Material{
		FactorySizes: []ganging.FactorySize{
			{Size: ganging.Size{Width: 100, Length: 100}, USDPerTon: 1000},
		},
	}
	printingSheet := ganging.Size{Width: 500, Length: 500}

	_, ok := MaterialCost(material, printingSheet, 1, 1.0)

	assert.False(t, ok)
}
