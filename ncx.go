package novelpub

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// ncxRoot represents the root <ncx> element of the navigation document.
type ncxRoot struct {
	XMLName  xml.Name  `xml:"ncx"`
	Version  string    `xml:"version,attr"`
	Xmlns    string    `xml:"xmlns,attr"`
	Head     ncxHead   `xml:"head"`
	DocTitle ncxText   `xml:"docTitle"`
	NavMap   ncxNavMap `xml:"navMap"`
}

// ncxHead wraps the <head> element and its dtb: meta entries.
type ncxHead struct {
	Metas []ncxMeta `xml:"meta"`
}

// ncxMeta represents a <meta name="dtb:..." content="..."/> element.
type ncxMeta struct {
	Name    string `xml:"name,attr"`
	Content string `xml:"content,attr"`
}

// ncxText wraps a <text> child element, used by docTitle and navLabel.
type ncxText struct {
	Text string `xml:"text"`
}

// ncxNavMap wraps the <navMap> element.
type ncxNavMap struct {
	NavPoints []ncxNavPoint `xml:"navPoint"`
}

// ncxNavPoint represents a single navigation entry. PlayOrder values are
// strictly increasing from 1 across the whole navMap.
type ncxNavPoint struct {
	ID        string     `xml:"id,attr"`
	PlayOrder string     `xml:"playOrder,attr"`
	NavLabel  ncxText    `xml:"navLabel"`
	Content   ncxContent `xml:"content"`
}

// ncxContent represents the <content src="..."/> element of a navPoint.
type ncxContent struct {
	Src string `xml:"src,attr"`
}

const ncxNamespace = "http://www.daisy.org/z3986/2005/ncx/"

// buildNCX serializes the navigation document: cover, title page, then
// chapters in ascending Number order, with play orders 1, 2, 3, ….
// identifier is the same generated unique identifier used in the package
// document metadata.
func buildNCX(b *Book, identifier string) ([]byte, error) {
	navMap := ncxNavMap{
		NavPoints: []ncxNavPoint{
			{
				ID:        "cover",
				PlayOrder: "1",
				NavLabel:  ncxText{Text: "Cover"},
				Content:   ncxContent{Src: "cover.xhtml"},
			},
			{
				ID:        "title",
				PlayOrder: "2",
				NavLabel:  ncxText{Text: "Title Page"},
				Content:   ncxContent{Src: "title.xhtml"},
			},
		},
	}
	for i, ch := range b.sortedChapters() {
		navMap.NavPoints = append(navMap.NavPoints, ncxNavPoint{
			ID:        chapterID(ch.Number),
			PlayOrder: strconv.Itoa(i + 3),
			NavLabel:  ncxText{Text: chapterHeading(ch)},
			Content:   ncxContent{Src: chapterFile(ch.Number)},
		})
	}

	ncx := ncxRoot{
		Version: "2005-1",
		Xmlns:   ncxNamespace,
		Head: ncxHead{
			Metas: []ncxMeta{
				{Name: "dtb:uid", Content: identifier},
				{Name: "dtb:depth", Content: "1"},
				{Name: "dtb:totalPageCount", Content: "0"},
				{Name: "dtb:maxPageNumber", Content: "0"},
			},
		},
		DocTitle: ncxText{Text: b.Title},
		NavMap:   navMap,
	}

	data, err := marshalXML(ncx)
	if err != nil {
		return nil, fmt.Errorf("novelpub: build toc.ncx: %w", err)
	}
	return data, nil
}
