package itinerary_test

import (
	"testing"

	"github.com/fwojciec/itinerary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyFare(t *testing.T) {
	t.Parallel()

	marker := itinerary.DefaultLayout().ExchangeableMarker

	assert.Equal(t, itinerary.FareExchangeable, itinerary.ClassifyFare("Tarif Normal - Billet échangeable et remboursable", marker))
	assert.Equal(t, itinerary.FareNonExchangeable, itinerary.ClassifyFare("Billet non échangeable", marker))
	assert.Equal(t, itinerary.FareNonExchangeable, itinerary.ClassifyFare("", marker))
}

func TestExtractAge(t *testing.T) {
	t.Parallel()

	t.Run("returns first parenthesized text", func(t *testing.T) {
		t.Parallel()

		age, err := itinerary.ExtractAge("Passager 1 (26 à 59 ans) (carte)")

		require.NoError(t, err)
		assert.Equal(t, "(26 à 59 ans)", age)
	})

	t.Run("fails without parentheses", func(t *testing.T) {
		t.Parallel()

		_, err := itinerary.ExtractAge("Passager 1")

		require.Error(t, err)
		assert.Equal(t, itinerary.ENOTFOUND, itinerary.ErrorCode(err))
	})
}
