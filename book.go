package novelpub

import (
	"fmt"
	"sort"
)

// DefaultAuthor is used when a Book is created with an empty author.
const DefaultAuthor = "AI Novel Generator"

// DefaultLanguage is the BCP 47 language tag used when none is set.
const DefaultLanguage = "en"

// Chapter is a single chapter of a book. Values are immutable once added
// to a Book; Content is treated as literal text (newline-delimited
// paragraphs), never parsed as markup.
type Chapter struct {
	// Number is the chapter number (≥ 1). It defines reading order and
	// the derived file/manifest identifiers.
	Number int

	// Title is the display title. May be empty.
	Title string

	// Content is the raw chapter body. Blank lines are dropped during
	// rendering; every other line becomes one paragraph.
	Content string
}

// Book holds the metadata and chapters for one export operation.
// Construct with NewBook, add chapters with AddChapter, then call
// ExportTo. A Book is not safe for concurrent use by multiple goroutines,
// and two exports must not target the same output path concurrently.
type Book struct {
	// Title is the book title shown in metadata, cover, and title page.
	Title string

	// Author is the book author. Defaults to DefaultAuthor.
	Author string

	// Language is the dc:language tag. Defaults to DefaultLanguage.
	Language string

	chapters []Chapter
}

// NewBook creates a Book with the given title and author.
// An empty author falls back to DefaultAuthor.
func NewBook(title, author string) *Book {
	if author == "" {
		author = DefaultAuthor
	}
	return &Book{
		Title:    title,
		Author:   author,
		Language: DefaultLanguage,
	}
}

// AddChapter appends a chapter. No uniqueness validation is performed:
// duplicate chapter numbers are accepted and produce duplicate identifiers
// in the output (see chapterID).
func (b *Book) AddChapter(number int, title, content string) {
	b.chapters = append(b.chapters, Chapter{
		Number:  number,
		Title:   title,
		Content: content,
	})
}

// Chapters returns a copy of the chapters in insertion order.
func (b *Book) Chapters() []Chapter {
	return append([]Chapter(nil), b.chapters...)
}

// sortedChapters returns the chapters in ascending Number order,
// regardless of insertion order. The sort is stable, so chapters sharing
// a number keep their relative insertion order.
func (b *Book) sortedChapters() []Chapter {
	sorted := append([]Chapter(nil), b.chapters...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Number < sorted[j].Number
	})
	return sorted
}

// chapterID derives the manifest/spine/nav identifier for a chapter
// number. It is injective over distinct numbers; two chapters sharing a
// number map to the same identifier, which yields duplicate ids in the
// package document (accepted input, see AddChapter).
func chapterID(number int) string {
	return fmt.Sprintf("chapter_%d", number)
}

// chapterFile derives the content file name for a chapter number.
func chapterFile(number int) string {
	return chapterID(number) + ".xhtml"
}

// chapterHeading builds the display heading for a chapter, used for the
// page <h1>, the page <title>, and the navigation label.
func chapterHeading(ch Chapter) string {
	if ch.Title == "" {
		return fmt.Sprintf("Chapter %d", ch.Number)
	}
	return fmt.Sprintf("Chapter %d: %s", ch.Number, ch.Title)
}
