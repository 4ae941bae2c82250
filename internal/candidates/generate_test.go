package candidates

import (
	"context"
	"testing"
	"time"

	"github.com/piwi3910/ganger/internal/ganging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoJobsSameMaterial() []ganging.Job {
	material := ganging.Material{
		ID:       "mat1",
		Grammage: 150,
		FactorySizes: []ganging.FactorySize{
			{Size: ganging.Size{Width: 1000, Length: 700}, USDPerTon: 1000},
		},
	}
	return []ganging.Job{
		{ID: "A", Width: 200, Length: 300, Quantity: 50, Material: material},
		{ID: "B", Width: 200, Length: 300, Quantity: 50, Material: material},
	}
}

func TestGenerate_ProducesMultiJobCandidate(t *testing.T) {
	jobs := twoJobsSameMaterial()
	cuts := []ganging.AvailableCutMap{
		{ForPaperSize: ganging.Size{Width: 1000, Length: 700}, SheetSizes: []ganging.Size{
			{Width: 700, Length: 500},
		}},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cands := Generate(ctx, jobs, cuts)

	require.NotEmpty(t, cands)
	for _, c := range cands {
		assert.Contains(t, []string{"A", "B"}, pickAnyKey(c.CountPerJob))
	}
}

func TestGenerate_SingleJobMaterialSkipped(t *testing.T) {
	jobs := twoJobsSameMaterial()[:1]
	cuts := []ganging.AvailableCutMap{
		{ForPaperSize: ganging.Size{Width: 1000, Length: 700}, SheetSizes: []ganging.Size{
			{Width: 700, Length: 500},
		}},
	}

	cands := Generate(context.Background(), jobs, cuts)

	assert.Empty(t, cands)
}

func TestGenerate_RespectsContextDeadline(t *testing.T) {
	jobs := twoJobsSameMaterial()
	cuts := []ganging.AvailableCutMap{
		{ForPaperSize: ganging.Size{Width: 1000, Length: 700}, SheetSizes: []ganging.Size{
			{Width: 700, Length: 500},
		}},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cands := Generate(ctx, jobs, cuts)

	assert.Empty(t, cands)
}

func pickAnyKey(m map[string]int) string {
	for k := range m {
		return k
	}
	return ""
}
