// Package meta reads page metadata: Open Graph meta tags and schema.org
// microdata. Accessors return "" when the page does not declare the
// requested value; they never fail.
package meta

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/docref/docref"
)

func document(p *docref.Page) *goquery.Document {
	return goquery.NewDocumentFromNode(p.Root)
}

// OpenGraph returns the content attribute of <meta property="...">, or "".
func OpenGraph(p *docref.Page, property string) string {
	v, _ := document(p).Find(fmt.Sprintf("meta[property='%s']", property)).First().Attr("content")
	return v
}
