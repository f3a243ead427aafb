package novelpub

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

// pageHead is the shared <head> of every generated XHTML page.
type pageHead struct {
	Title string   `xml:"title"`
	Meta  pageMeta `xml:"meta"`
	Style string   `xml:"style"`
}

// pageMeta represents the <meta charset="utf-8"/> element.
type pageMeta struct {
	Charset string `xml:"charset,attr"`
}

// chapterPage is the XHTML document for a single chapter: a heading
// followed by one paragraph per non-blank content line.
type chapterPage struct {
	XMLName xml.Name    `xml:"html"`
	Xmlns   string      `xml:"xmlns,attr"`
	Lang    string      `xml:"xml:lang,attr"`
	Head    pageHead    `xml:"head"`
	Body    chapterBody `xml:"body"`
}

type chapterBody struct {
	Heading    string   `xml:"h1"`
	Paragraphs []string `xml:"p"`
}

// coverPage is the static cover: book title over author name.
type coverPage struct {
	XMLName xml.Name  `xml:"html"`
	Xmlns   string    `xml:"xmlns,attr"`
	Lang    string    `xml:"xml:lang,attr"`
	Head    pageHead  `xml:"head"`
	Body    coverBody `xml:"body"`
}

type coverBody struct {
	Content headingDiv `xml:"div"`
}

// headingDiv is a classed <div> holding a title/author heading pair.
type headingDiv struct {
	Class  string `xml:"class,attr"`
	Title  string `xml:"h1"`
	Author string `xml:"h2"`
}

// titlePage is the title page: headings plus an info block carrying the
// generation timestamp and chapter count.
type titlePage struct {
	XMLName xml.Name  `xml:"html"`
	Xmlns   string    `xml:"xmlns,attr"`
	Lang    string    `xml:"xml:lang,attr"`
	Head    pageHead  `xml:"head"`
	Body    titleBody `xml:"body"`
}

type titleBody struct {
	Divs []titleDiv `xml:"div"`
}

// titleDiv is one classed <div> of the title page: either the heading
// block (h1/h2) or the info block (p lines). Unused parts are omitted.
type titleDiv struct {
	Class  string   `xml:"class,attr"`
	Title  string   `xml:"h1,omitempty"`
	Author string   `xml:"h2,omitempty"`
	Lines  []string `xml:"p,omitempty"`
}

const xhtmlNamespace = "http://www.w3.org/1999/xhtml"

const chapterStyle = `
body { font-family: Georgia, serif; margin: 2em; line-height: 1.6; }
h1 { text-align: center; margin-bottom: 1em; }
p { text-indent: 2em; margin: 0.5em 0; }
`

const coverStyle = `
body { font-family: Georgia, serif; margin: 0; padding: 0; text-align: center; }
.cover-content { margin-top: 35vh; padding: 2em; }
h1 { font-size: 2.5em; margin-bottom: 0.5em; }
h2 { font-size: 1.5em; margin-top: 0; font-weight: normal; }
`

const titleStyle = `
body { font-family: Georgia, serif; margin: 2em; line-height: 1.6; }
.title-page { text-align: center; margin-top: 4em; }
h1 { font-size: 2.5em; margin-bottom: 0.5em; }
h2 { font-size: 1.5em; margin-bottom: 2em; font-weight: normal; }
.info { margin-top: 3em; text-align: center; }
`

// splitParagraphs splits raw chapter content into paragraphs: one per
// non-blank line, trimmed. Lines are literal text, never markup.
func splitParagraphs(content string) []string {
	var paragraphs []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paragraphs = append(paragraphs, line)
		}
	}
	return paragraphs
}

// buildChapterPage serializes the content page for one chapter.
func buildChapterPage(b *Book, ch Chapter) ([]byte, error) {
	heading := chapterHeading(ch)
	page := chapterPage{
		Xmlns: xhtmlNamespace,
		Lang:  b.Language,
		Head: pageHead{
			Title: heading,
			Meta:  pageMeta{Charset: "utf-8"},
			Style: chapterStyle,
		},
		Body: chapterBody{
			Heading:    heading,
			Paragraphs: splitParagraphs(ch.Content),
		},
	}

	data, err := marshalXML(page)
	if err != nil {
		return nil, fmt.Errorf("novelpub: build %s: %w", chapterFile(ch.Number), err)
	}
	return data, nil
}

// buildCoverPage serializes the cover page.
func buildCoverPage(b *Book) ([]byte, error) {
	page := coverPage{
		Xmlns: xhtmlNamespace,
		Lang:  b.Language,
		Head: pageHead{
			Title: "Cover",
			Meta:  pageMeta{Charset: "utf-8"},
			Style: coverStyle,
		},
		Body: coverBody{
			Content: headingDiv{
				Class:  "cover-content",
				Title:  b.Title,
				Author: b.Author,
			},
		},
	}

	data, err := marshalXML(page)
	if err != nil {
		return nil, fmt.Errorf("novelpub: build cover.xhtml: %w", err)
	}
	return data, nil
}

// buildTitlePage serializes the title page, stamping the generation time
// and the chapter count.
func buildTitlePage(b *Book, generatedAt time.Time) ([]byte, error) {
	page := titlePage{
		Xmlns: xhtmlNamespace,
		Lang:  b.Language,
		Head: pageHead{
			Title: "Title Page",
			Meta:  pageMeta{Charset: "utf-8"},
			Style: titleStyle,
		},
		Body: titleBody{
			Divs: []titleDiv{
				{
					Class:  "title-page",
					Title:  b.Title,
					Author: b.Author,
				},
				{
					Class: "info",
					Lines: []string{
						"Generated: " + generatedAt.Format("January 2, 2006 15:04"),
						fmt.Sprintf("Chapters: %d", len(b.chapters)),
					},
				},
			},
		},
	}

	data, err := marshalXML(page)
	if err != nil {
		return nil, fmt.Errorf("novelpub: build title.xhtml: %w", err)
	}
	return data, nil
}
