package geometry

import (
	"testing"

	"github.com/piwi3910/ganger/internal/ganging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack_FitsAllItems(t *testing.T) {
	sheet := ganging.Size{Width: 1000, Length: 700}
	items := []PackItem{
		{JobID: "A", Width: 500, Length: 350},
		{JobID: "A", Width: 500, Length: 350},
		{JobID: "A", Width: 500, Length: 350},
		{JobID: "A", Width: 500, Length: 350},
	}

	ok, placements := Pack(sheet, items)

	require.True(t, ok)
	assert.Len(t, placements, 4)
}

func TestPack_FailsWhenItemDoesNotFit(t *testing.T) {
	sheet := ganging.Size{Width: 400, Length: 400}
	items := []PackItem{
		{JobID: "A", Width: 500, Length: 350},
	}

	ok, placements := Pack(sheet, items)

	assert.False(t, ok)
	assert.Nil(t, placements)
}

func TestPack_StopsAtFirstUnfittableItem(t *testing.T) {
	sheet := ganging.Size{Width: 500, Length: 350}
	items := []PackItem{
		{JobID: "A", Width: 500, Length: 350},
		{JobID: "B", Width: 100, Length: 100},
	}

	ok, placements := Pack(sheet, items)

	assert.False(t, ok)
	assert.Nil(t, placements)
}

func TestSortDescendingLongerSide(t *testing.T) {
	items := []PackItem{
		{JobID: "small", Width: 100, Length: 100},
		{JobID: "long", Width: 50, Length: 900},
		{JobID: "mid", Width: 300, Length: 300},
	}

	SortDescendingLongerSide(items)

	assert.Equal(t, "long", items[0].JobID)
	assert.Equal(t, "mid", items[1].JobID)
	assert.Equal(t, "small", items[2].JobID)
}
