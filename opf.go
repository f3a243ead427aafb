package novelpub

import (
	"encoding/xml"
	"fmt"
)

// opfPackage represents the root <package> element of the package
// document (EPUB 2.0 OPF).
//
// Namespace prefixes are emitted literally: encoding/xml has no native
// support for prefixed output, so the dc: elements carry their prefix in
// the field tag and the metadata element declares xmlns:dc itself.
type opfPackage struct {
	XMLName          xml.Name    `xml:"package"`
	Version          string      `xml:"version,attr"`
	Xmlns            string      `xml:"xmlns,attr"`
	UniqueIdentifier string      `xml:"unique-identifier,attr"`
	Metadata         opfMetadata `xml:"metadata"`
	Manifest         opfManifest `xml:"manifest"`
	Spine            opfSpine    `xml:"spine"`
	Guide            opfGuide    `xml:"guide"`
}

// opfMetadata holds the Dublin Core metadata of the package document.
type opfMetadata struct {
	XmlnsDC    string        `xml:"xmlns:dc,attr"`
	Title      string        `xml:"dc:title"`
	Creator    string        `xml:"dc:creator"`
	Language   string        `xml:"dc:language"`
	Identifier opfIdentifier `xml:"dc:identifier"`
	Metas      []opfMeta     `xml:"meta"`
}

// opfIdentifier represents the dc:identifier element carrying the
// generated unique identifier.
type opfIdentifier struct {
	ID    string `xml:"id,attr"`
	Value string `xml:",chardata"`
}

// opfMeta represents an ePub 2 <meta name="..." content="..."/> element.
type opfMeta struct {
	Name    string `xml:"name,attr"`
	Content string `xml:"content,attr"`
}

// opfManifest wraps the <manifest> element.
type opfManifest struct {
	Items []opfManifestItem `xml:"item"`
}

// opfManifestItem represents a single <item> in the manifest.
type opfManifestItem struct {
	ID        string `xml:"id,attr"`
	Href      string `xml:"href,attr"`
	MediaType string `xml:"media-type,attr"`
}

// opfSpine wraps the <spine> element.
type opfSpine struct {
	Toc      string            `xml:"toc,attr"`
	ItemRefs []opfSpineItemRef `xml:"itemref"`
}

// opfSpineItemRef represents a single <itemref> in the spine.
type opfSpineItemRef struct {
	IDRef string `xml:"idref,attr"`
}

// opfGuide wraps the <guide> element.
type opfGuide struct {
	References []opfGuideReference `xml:"reference"`
}

// opfGuideReference represents a single <reference> in the guide.
type opfGuideReference struct {
	Type  string `xml:"type,attr"`
	Title string `xml:"title,attr"`
	Href  string `xml:"href,attr"`
}

const (
	opfNamespace = "http://www.idpf.org/2007/opf"
	dcNamespace  = "http://purl.org/dc/elements/1.1/"

	xhtmlMediaType = "application/xhtml+xml"
	ncxMediaType   = "application/x-dtbncx+xml"
)

// buildOPF serializes the package document: Dublin Core metadata, a
// manifest listing every generated file, a spine ordering cover → title
// page → chapters (ascending chapter number), and a guide entry for the
// cover. identifier is the generated unique identifier for this export.
func buildOPF(b *Book, identifier string) ([]byte, error) {
	chapters := b.sortedChapters()

	manifest := opfManifest{
		Items: []opfManifestItem{
			{ID: "ncx", Href: "toc.ncx", MediaType: ncxMediaType},
			{ID: "cover", Href: "cover.xhtml", MediaType: xhtmlMediaType},
			{ID: "title", Href: "title.xhtml", MediaType: xhtmlMediaType},
		},
	}
	spine := opfSpine{
		Toc: "ncx",
		ItemRefs: []opfSpineItemRef{
			{IDRef: "cover"},
			{IDRef: "title"},
		},
	}
	for _, ch := range chapters {
		manifest.Items = append(manifest.Items, opfManifestItem{
			ID:        chapterID(ch.Number),
			Href:      chapterFile(ch.Number),
			MediaType: xhtmlMediaType,
		})
		spine.ItemRefs = append(spine.ItemRefs, opfSpineItemRef{
			IDRef: chapterID(ch.Number),
		})
	}

	pkg := opfPackage{
		Version:          "2.0",
		Xmlns:            opfNamespace,
		UniqueIdentifier: "bookid",
		Metadata: opfMetadata{
			XmlnsDC:    dcNamespace,
			Title:      b.Title,
			Creator:    b.Author,
			Language:   b.Language,
			Identifier: opfIdentifier{ID: "bookid", Value: identifier},
			Metas: []opfMeta{
				{Name: "cover", Content: "cover"},
			},
		},
		Manifest: manifest,
		Spine:    spine,
		Guide: opfGuide{
			References: []opfGuideReference{
				{Type: "cover", Title: "Cover", Href: "cover.xhtml"},
			},
		},
	}

	data, err := marshalXML(pkg)
	if err != nil {
		return nil, fmt.Errorf("novelpub: build content.opf: %w", err)
	}
	return data, nil
}
