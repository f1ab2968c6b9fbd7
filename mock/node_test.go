package mock_test

import (
	"testing"

	"github.com/fwojciec/itinerary/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode(t *testing.T) {
	t.Parallel()

	first := mock.El("table", "product-details", "",
		mock.El("tr", "", "", mock.El("td", "", "Aller"), mock.El("td", "", "08h04")),
	)
	second := mock.El("table", "passengers", "")
	root := mock.El("div", "main", "", first, second)

	t.Run("finds by class and tag in document order", func(t *testing.T) {
		t.Parallel()

		assert.Len(t, root.Find(".product-details"), 1)
		cells := root.Find("td")
		require.Len(t, cells, 2)
		assert.Equal(t, "Aller", cells[0].Text())
		assert.Equal(t, "08h04", cells[1].Text())
	})

	t.Run("concatenates descendant text", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Aller08h04", first.Text())
	})

	t.Run("walks to next sibling", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, second, first.Next())
		assert.Nil(t, second.Next())
		assert.Nil(t, root.Next())
	})
}
