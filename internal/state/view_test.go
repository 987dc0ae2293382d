package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentledger-dev/rentledger/internal/model"
)

func viewFixtures() []model.Property {
	return []model.Property{
		{ID: "1", Name: "Oak House", Rent: dec("800"), PaymentDate: "2025-03-01"},
		{ID: "2", Name: "Sunset Villa", Rent: dec("1200"), PaymentDate: "2025-01-15"},
		{ID: "3", Name: "Oak House", Rent: dec("950"), PaymentDate: "2025-02-01"},
	}
}

func TestFilterByName(t *testing.T) {
	all := viewFixtures()

	assert.Len(t, FilterByName(all, ""), 3)
	assert.Len(t, FilterByName(all, "Oak House"), 2)
	assert.Empty(t, FilterByName(all, "Nowhere"))
}

func TestSortProperties(t *testing.T) {
	all := viewFixtures()

	byName := SortProperties(all, SortByName, false)
	assert.Equal(t, "Oak House", byName[0].Name)
	assert.Equal(t, "Sunset Villa", byName[2].Name)

	byRent := SortProperties(all, SortByRent, true)
	assert.True(t, byRent[0].Rent.Equal(dec("1200")))

	byDate := SortProperties(all, SortByDate, false)
	assert.Equal(t, "2025-01-15", byDate[0].PaymentDate)

	assert.Equal(t, "1", all[0].ID, "input order is untouched")
}

func TestSortProperties_UnknownField(t *testing.T) {
	all := viewFixtures()
	same := SortProperties(all, "color", false)
	assert.Equal(t, all, same)
}

func TestNames(t *testing.T) {
	names := Names(viewFixtures())
	assert.Equal(t, []string{"Oak House", "Sunset Villa"}, names)
}

func TestDateRange(t *testing.T) {
	start, end := DateRange(viewFixtures(), "Oak House")
	assert.Equal(t, "2025-02-01", start)
	assert.Equal(t, "2025-03-01", end)
}

func TestDateRange_NoMatch(t *testing.T) {
	start, end := DateRange(viewFixtures(), "Nowhere")
	require.Empty(t, start)
	require.Empty(t, end)
}
