package novelpub

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"golang.org/x/net/html"
)

// elementTexts parses an XHTML page and returns the concatenated text of
// every element with the given tag, in document order.
func elementTexts(t *testing.T, data []byte, tag string) []string {
	t.Helper()
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parse page: %v", err)
	}

	var texts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			var sb strings.Builder
			var collect func(*html.Node)
			collect = func(c *html.Node) {
				if c.Type == html.TextNode {
					sb.WriteString(c.Data)
				}
				for child := c.FirstChild; child != nil; child = child.NextSibling {
					collect(child)
				}
			}
			collect(n)
			texts = append(texts, sb.String())
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return texts
}

func TestSplitParagraphs(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"single line", "Only line", []string{"Only line"}},
		{"two lines", "Line A\nLine B", []string{"Line A", "Line B"}},
		{"blank lines dropped", "Line A\n\n\nLine B\n", []string{"Line A", "Line B"}},
		{"whitespace trimmed", "  padded  \n\t tabbed \t", []string{"padded", "tabbed"}},
		{"empty content", "", nil},
		{"only blanks", "\n \n\t\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitParagraphs(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitParagraphs(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestBuildChapterPage_HeadingAndParagraphs(t *testing.T) {
	b := NewBook("Demo", "")
	data, err := buildChapterPage(b, Chapter{Number: 2, Title: "Two", Content: "Line A\nLine B"})
	if err != nil {
		t.Fatalf("buildChapterPage: %v", err)
	}

	headings := elementTexts(t, data, "h1")
	if len(headings) != 1 || headings[0] != "Chapter 2: Two" {
		t.Errorf("h1 = %v, want [Chapter 2: Two]", headings)
	}

	paragraphs := elementTexts(t, data, "p")
	if !reflect.DeepEqual(paragraphs, []string{"Line A", "Line B"}) {
		t.Errorf("paragraphs = %v, want [Line A, Line B]", paragraphs)
	}
}

func TestBuildChapterPage_ContentIsLiteralText(t *testing.T) {
	// Markup-looking input must be escaped, never parsed as elements.
	b := NewBook("Demo", "")
	data, err := buildChapterPage(b, Chapter{Number: 1, Content: "a <b>bold</b> & done"})
	if err != nil {
		t.Fatalf("buildChapterPage: %v", err)
	}

	if got := elementTexts(t, data, "b"); len(got) != 0 {
		t.Errorf("found <b> elements %v; markup must stay literal", got)
	}
	paragraphs := elementTexts(t, data, "p")
	if len(paragraphs) != 1 || paragraphs[0] != "a <b>bold</b> & done" {
		t.Errorf("paragraphs = %v, want the literal input line", paragraphs)
	}
}

func TestBuildCoverPage(t *testing.T) {
	b := NewBook("Demo", "Tester")
	data, err := buildCoverPage(b)
	if err != nil {
		t.Fatalf("buildCoverPage: %v", err)
	}

	if got := elementTexts(t, data, "h1"); len(got) != 1 || got[0] != "Demo" {
		t.Errorf("h1 = %v, want [Demo]", got)
	}
	if got := elementTexts(t, data, "h2"); len(got) != 1 || got[0] != "Tester" {
		t.Errorf("h2 = %v, want [Tester]", got)
	}
}

func TestBuildTitlePage_InfoBlock(t *testing.T) {
	b := NewBook("Demo", "Tester")
	b.AddChapter(1, "One", "x")
	b.AddChapter(2, "Two", "y")

	generatedAt := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	data, err := buildTitlePage(b, generatedAt)
	if err != nil {
		t.Fatalf("buildTitlePage: %v", err)
	}

	// Both body blocks must render: the heading div and the info div.
	if got := elementTexts(t, data, "h1"); len(got) != 1 || got[0] != "Demo" {
		t.Errorf("h1 = %v, want [Demo]", got)
	}
	if got := elementTexts(t, data, "h2"); len(got) != 1 || got[0] != "Tester" {
		t.Errorf("h2 = %v, want [Tester]", got)
	}

	paragraphs := elementTexts(t, data, "p")
	want := []string{
		"Generated: March 14, 2026 09:30",
		"Chapters: 2",
	}
	if !reflect.DeepEqual(paragraphs, want) {
		t.Errorf("info paragraphs = %v, want %v", paragraphs, want)
	}
}
