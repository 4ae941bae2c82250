package costmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintingNeeds_Simplex(t *testing.T) {
	bodies := 2
	needs := PrintingNeeds(4, 0, false, &bodies)

	assert.Equal(t, "SIMPLEX", needs.Technique)
	assert.Equal(t, 4, needs.TotalPlates)
	assert.Equal(t, 2, needs.Passes)
}

func TestPrintingNeeds_Duplex(t *testing.T) {
	bodies := 2
	needs := PrintingNeeds(4, 2, true, &bodies)

	assert.Equal(t, "DUPLEX", needs.Technique)
	assert.Equal(t, 6, needs.TotalPlates)
	assert.Equal(t, 3, needs.Passes) // ceil(4/2) + ceil(2/2) = 2 + 1
}

func TestPrintingNeeds_UnusableMachine(t *testing.T) {
	needs := PrintingNeeds(4, 0, false, nil)

	assert.Equal(t, UnusablePasses, needs.Passes)
}
