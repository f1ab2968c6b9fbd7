package extract_test

import "github.com/fwojciec/itinerary/mock"

func td(text string) *mock.Node { return mock.El("td", "", text) }

func tr(cells ...*mock.Node) *mock.Node { return mock.El("tr", "", "", cells...) }

// detailBlock builds a trip-detail table with a departure row and an
// arrival row.
func detailBlock(tripType, dep, depStation, trainType, number, arr, arrStation string) *mock.Node {
	return mock.El("table", "product-details", "",
		tr(td(tripType), td(dep), td(depStation), td(trainType), td(number)),
		tr(td(arr), td(""), td(arrStation)),
	)
}

// passengerTable builds a fare table: each passenger contributes a header
// row followed by a data row.
func passengerTable(rows ...[2]string) *mock.Node {
	var children []*mock.Node
	for i, r := range rows {
		children = append(children,
			tr(td("Passager"), td("")),
			tr(td(""), td("Passager "+string(rune('1'+i))+" "+r[0]), td(r[1])),
		)
	}
	return mock.El("table", "passengers", "", children...)
}

func summary(text string) *mock.Node { return mock.El("div", "pnr-summary", text) }

// confirmation builds a scope with name, code, total price and two line
// items, followed by extra (summaries, blocks, passenger tables).
func confirmation(extra ...*mock.Node) *mock.Node {
	children := []*mock.Node{
		mock.El("span", "pnr-name", "Nom : ancien"),
		mock.El("span", "pnr-name", "Nom : DUPONT"),
		mock.El("span", "pnr-ref", "Référence : ABCDEF"),
		mock.El("td", "very-important", " 768,50 € "),
		mock.El("table", "product-header", "", tr(td("Aller"), td("315,50 €"))),
		mock.El("table", "product-header", "", tr(td("Retour"), td("10 €"))),
	}
	return mock.El("div", "main-column", "", append(children, extra...)...)
}
