package goquery_test

import (
	"context"
	"os"
	"testing"

	"github.com/fwojciec/itinerary"
	"github.com/fwojciec/itinerary/extract"
	"github.com/fwojciec/itinerary/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return string(data)
}

func TestClean(t *testing.T) {
	t.Parallel()

	got := goquery.Clean(`<div class=\"pnr-ref\">\r\nRéférence : ABC</div>\n`)

	assert.Equal(t, `<div class="pnr-ref">Référence : ABC</div>`, got)
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("scopes escaped document to root", func(t *testing.T) {
		t.Parallel()

		loader := goquery.NewLoader("#main-column")

		scope, err := loader.Load(context.Background(), readFixture(t, "confirmation.html"))

		require.NoError(t, err)
		refs := scope.Find(".pnr-ref")
		require.Len(t, refs, 1)
		assert.Equal(t, "Référence : QWERTY", refs[0].Text())
	})

	t.Run("ignores elements outside root", func(t *testing.T) {
		t.Parallel()

		loader := goquery.NewLoader("#main-column")
		raw := `<div class="pnr-name">Nom : OUT</div><div id="main-column"><span class="pnr-name">Nom : IN</span></div>`

		scope, err := loader.Load(context.Background(), raw)

		require.NoError(t, err)
		names := scope.Find(".pnr-name")
		require.Len(t, names, 1)
		assert.Equal(t, "Nom : IN", names[0].Text())
	})

	t.Run("returns empty scope without root", func(t *testing.T) {
		t.Parallel()

		loader := goquery.NewLoader("#main-column")

		scope, err := loader.Load(context.Background(), `<div class="pnr-name">Nom : X</div>`)

		require.NoError(t, err)
		assert.Empty(t, scope.Find(".pnr-name"))
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := goquery.NewLoader("#main-column").Load(ctx, "<html></html>")

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestSession_ParseFixture(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	layout := itinerary.DefaultLayout()
	s := extract.NewSession(goquery.NewLoader(layout.Root), extract.WithLayout(layout))
	require.NoError(t, s.Init(ctx, "confirmation.html", readFixture(t, "confirmation.html")))

	env := s.Parse(ctx)

	require.True(t, env.OK(), "unexpected failure: %s %s", env.Field, env.Message)
	rec := env.Result.Trips[0]
	assert.Equal(t, "dupont", rec.Name)
	assert.Equal(t, "QWERTY", rec.Code)
	assert.InDelta(t, 194.0, rec.Details.Price, 1e-9)
	assert.Equal(t, []itinerary.PriceItem{{Value: 144}, {Value: 50}}, env.Result.Custom.Prices)

	require.Len(t, rec.Details.RoundTrips, 2)
	assert.Equal(t, itinerary.Trip{
		Type: "Aller",
		Date: "2017-01-02 00:00:00.000Z",
		Trains: []itinerary.Train{{
			DepartureTime:    "16:57",
			DepartureStation: "PARIS GARE DE LYON",
			ArrivalTime:      "19:00",
			ArrivalStation:   "LYON PART DIEU",
			Type:             "TGV",
			Number:           "6687",
		}},
	}, rec.Details.RoundTrips[0])

	ret := rec.Details.RoundTrips[1]
	assert.Equal(t, "Retour", ret.Type)
	assert.Equal(t, "2017-01-05 00:00:00.000Z", ret.Date)
	assert.Equal(t, "6608", ret.Trains[0].Number)
	assert.Equal(t, []itinerary.Passenger{
		{Type: itinerary.FareExchangeable, Age: "(26 à 59 ans)"},
		{Type: itinerary.FareNonExchangeable, Age: "(12 à 25 ans)"},
	}, ret.Trains[0].Passengers)
}

func TestExtractor_PriceWithEntitySpace(t *testing.T) {
	t.Parallel()

	layout := itinerary.DefaultLayout()
	scope, err := goquery.NewLoader(layout.Root).Load(context.Background(),
		`<div id="main-column"><table><tr><td class="very-important">194,00&nbsp;€</td></tr></table></div>`)
	require.NoError(t, err)

	price, err := extract.NewExtractor(scope, layout).Price()

	require.NoError(t, err)
	assert.InDelta(t, 194.0, price, 1e-9)
}
