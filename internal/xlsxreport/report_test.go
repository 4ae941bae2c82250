package xlsxreport

import (
	"testing"

	"github.com/piwi3910/ganger/internal/ganging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_BuildsWorkbookWithRows(t *testing.T) {
	baseline := ganging.Plan{
		TotalCost: 300,
		Layouts: []ganging.PricedLayout{
			{
				LayoutID:  "base_A",
				Machine:   ganging.Machine{ID: "m1", Name: "Press One"},
				Layout:    ganging.Layout{PrintingSheet: ganging.Size{Width: 500, Length: 350}, CountPerJob: map[string]int{"A": 4}},
				NetSheets: 3,
				TotalCost: 300,
			},
		},
	}

	f, err := Write(baseline, nil)

	require.NoError(t, err)
	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 3)
	assert.Equal(t, "Layout ID", rows[0][0])
	assert.Equal(t, "base_A", rows[2][0])
}
