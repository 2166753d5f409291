package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate_Defaults(t *testing.T) {
	items := make([]int, 120)
	for i := range items {
		items[i] = i
	}

	page := paginate(items, 0, 0)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, defaultPageSize, page.Size)
	assert.Equal(t, 120, page.Total)
	assert.Equal(t, 3, page.Pages)
	assert.Len(t, page.Items, defaultPageSize)
	assert.Equal(t, 0, page.Items[0])
}

func TestPaginate_SecondPage(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	page := paginate(items, 2, 2)

	assert.Equal(t, []string{"c", "d"}, page.Items)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 3, page.Pages)
}

func TestPaginate_PastTheEnd(t *testing.T) {
	page := paginate([]int{1, 2, 3}, 9, 2)

	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.Pages)
	assert.Equal(t, 9, page.Page)
}

func TestPaginate_SizeCapped(t *testing.T) {
	items := make([]int, 300)

	page := paginate(items, 1, 1000)

	assert.Equal(t, maxPageSize, page.Size)
	assert.Len(t, page.Items, maxPageSize)
	assert.Equal(t, 3, page.Pages)
}

func TestPaginate_Empty(t *testing.T) {
	page := paginate([]int{}, 1, 10)

	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 0, page.Pages)
}
