package response_test

import (
	"testing"

	"go-hris-leave/internal/shared/response"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	t.Run("first page", func(t *testing.T) {
		got, meta := response.Paginate(items, 1, 2)
		assert.Equal(t, []int{1, 2}, got)
		assert.Equal(t, int64(5), meta.Total)
		assert.Equal(t, 3, meta.TotalPages)
	})

	t.Run("last partial page", func(t *testing.T) {
		got, _ := response.Paginate(items, 3, 2)
		assert.Equal(t, []int{5}, got)
	})

	t.Run("page past the end", func(t *testing.T) {
		got, meta := response.Paginate(items, 9, 2)
		assert.Empty(t, got)
		assert.Equal(t, 9, meta.Page)
	})
}
