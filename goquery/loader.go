// Package goquery implements document loading and querying on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/itinerary"
	"golang.org/x/net/html"
)

// Ensure Loader implements itinerary.Loader at compile time.
var _ itinerary.Loader = (*Loader)(nil)

// escapes are literal escape sequences left behind when the confirmation
// page was saved as a JSON string.
var escapes = strings.NewReplacer(`\"`, `"`, `\n`, "", `\r`, "")

// Clean removes literal \" \n and \r escape sequences from raw document text.
func Clean(raw string) string {
	return escapes.Replace(raw)
}

// Loader parses HTML documents and scopes them to a root selector.
type Loader struct {
	root string
}

// NewLoader creates a Loader scoping every document to root (e.g. "#main-column").
func NewLoader(root string) *Loader {
	return &Loader{root: root}
}

// Load cleans and parses raw HTML and returns the root scope. A document
// without the root element yields an empty scope, not an error.
func (l *Loader) Load(ctx context.Context, raw string) (itinerary.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := html.Parse(strings.NewReader(Clean(raw)))
	if err != nil {
		return nil, itinerary.Errorf(itinerary.EINVALID, "failed to parse HTML: %v", err)
	}

	doc := goquery.NewDocumentFromNode(root)
	return &Node{sel: doc.Find(l.root)}, nil
}
