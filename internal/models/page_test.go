package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	items := []string{"mar", "feb", "jan"}

	tests := []struct {
		name   string
		number int
		limit  int
		want   []string
	}{
		{name: "first page", number: 1, limit: 2, want: []string{"mar", "feb"}},
		{name: "last partial page", number: 2, limit: 2, want: []string{"jan"}},
		{name: "page past the end", number: 3, limit: 2, want: []string{}},
		{name: "everything on one page", number: 1, limit: 10, want: []string{"mar", "feb", "jan"}},
		{name: "zero page", number: 0, limit: 2, want: []string{}},
		{name: "negative page", number: -1, limit: 2, want: []string{}},
		{name: "zero limit", number: 1, limit: 0, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(items, tt.number, tt.limit)
			require.Equal(t, tt.want, page.Items)
			require.Equal(t, 3, page.Total)
			require.LessOrEqual(t, len(page.Items), max(tt.limit, 0))
		})
	}
}

func TestPaginate_ContiguousSlices(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	for limit := 1; limit <= 25; limit++ {
		var seen []int
		for number := 1; number <= Paginate(items, 1, limit).TotalPages(); number++ {
			page := Paginate(items, number, limit)
			require.LessOrEqual(t, len(page.Items), limit)
			seen = append(seen, page.Items...)
		}
		require.Equal(t, items, seen, "limit %d", limit)
	}
}

func TestPage_Nav(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	first := Paginate(items, 1, 2)
	require.True(t, first.ShowNav())
	require.False(t, first.HasPrevious())
	require.True(t, first.HasNext())
	require.Equal(t, 3, first.TotalPages())

	last := Paginate(items, 3, 2)
	require.True(t, last.HasPrevious())
	require.False(t, last.HasNext())

	single := Paginate(items, 1, 5)
	require.False(t, single.ShowNav())
	require.False(t, single.HasNext())
}
