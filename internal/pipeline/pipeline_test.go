package pipeline

import (
	"context"
	"testing"

	"github.com/piwi3910/ganger/internal/ganging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInput() ganging.Input {
	material := ganging.Material{
		ID:       "mat1",
		Grammage: 150,
		FactorySizes: []ganging.FactorySize{
			{Size: ganging.Size{Width: 1000, Length: 700}, USDPerTon: 1000},
		},
	}
	jobs := []ganging.Job{
		{ID: "A", Width: 200, Length: 300, Quantity: 50, FrontInks: 2, Material: material},
		{ID: "B", Width: 200, Length: 300, Quantity: 50, FrontInks: 2, Material: material},
	}
	machine := ganging.Machine{
		ID:             "press1",
		MaxSheetSize:   ganging.Size{Width: 1000, Length: 700},
		SetupCost:      ganging.CostInfo{Price: 5},
		ImpressionCost: ganging.ImpressionCostInfo{PricePerThousand: 10},
	}
	cuts := []ganging.AvailableCutMap{
		{ForPaperSize: ganging.Size{Width: 1000, Length: 700}, SheetSizes: []ganging.Size{
			{Width: 700, Length: 500},
			{Width: 1000, Length: 700},
		}},
	}

	return ganging.Input{
		Options:       ganging.Options{TimeoutSeconds: 5, NumberOfSolutions: 1},
		DollarRate:    1.0,
		Jobs:          jobs,
		Machines:      []ganging.Machine{machine},
		AvailableCuts: cuts,
	}
}

func TestRun_ProducesBaseline(t *testing.T) {
	in := sampleInput()

	result, err := Run(context.Background(), nil, in)

	require.NoError(t, err)
	assert.Len(t, result.Baseline.Layouts, 2)
	assert.Greater(t, result.Baseline.TotalCost, 0)
	// Plans only contains ganged alternatives strictly cheaper than
	// baseline; every returned plan must honor that, whatever the count.
	for _, plan := range result.Plans {
		assert.Less(t, plan.TotalCost, result.Baseline.TotalCost)
	}
}

func TestRun_RejectsInvalidInput(t *testing.T) {
	in := sampleInput()
	in.Jobs = nil

	_, err := Run(context.Background(), nil, in)

	require.Error(t, err)
	var valErr *ganging.ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestRun_HardFailsWhenJobFitsNoSheet(t *testing.T) {
	in := sampleInput()
	in.Jobs[0].Width = 5000 // exceeds every available printing sheet and factory size

	_, err := Run(context.Background(), nil, in)

	require.Error(t, err)
	var infeasible *ganging.InfeasibleError
	assert.ErrorAs(t, err, &infeasible)
}
