package itinerary_test

import (
	"testing"

	"github.com/fwojciec/itinerary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	t.Parallel()

	got, err := itinerary.FormatDate("25/12/2023")

	require.NoError(t, err)
	assert.Equal(t, "2023-12-25 00:00:00.000Z", got)
}

func TestFormatDate_InvalidCalendarDate(t *testing.T) {
	t.Parallel()

	_, err := itinerary.FormatDate("31/02/2023")

	require.Error(t, err)
	assert.Equal(t, itinerary.EDATE, itinerary.ErrorCode(err))
}

func TestExtractDates(t *testing.T) {
	t.Parallel()

	t.Run("extracts single embedded date", func(t *testing.T) {
		t.Parallel()

		dates, err := itinerary.ExtractDates("Aller : Mardi 25/12/2023 PARIS")

		require.NoError(t, err)
		assert.Equal(t, []string{"2023-12-25 00:00:00.000Z"}, dates)
	})

	t.Run("extracts every date in order", func(t *testing.T) {
		t.Parallel()

		dates, err := itinerary.ExtractDates("Aller 02/01/2017 Retour 05/01/2017")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"2017-01-02 00:00:00.000Z",
			"2017-01-05 00:00:00.000Z",
		}, dates)
	})

	t.Run("fails without any date", func(t *testing.T) {
		t.Parallel()

		_, err := itinerary.ExtractDates("Aller simple PARIS - LYON")

		require.Error(t, err)
		assert.Equal(t, itinerary.EDATE, itinerary.ErrorCode(err))
	})
}
