package novelpub

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

// benchBook builds a book with the given number of chapters, each with a
// few paragraphs of text.
func benchBook(numChapters int) *Book {
	b := NewBook("Benchmark Book", "Bench Author")
	paragraph := strings.Repeat("All work and no play makes Jack a dull boy. ", 8)
	content := strings.Join([]string{paragraph, paragraph, paragraph}, "\n")
	for i := 1; i <= numChapters; i++ {
		b.AddChapter(i, fmt.Sprintf("Chapter Title %d", i), content)
	}
	return b
}

func BenchmarkExportTo(b *testing.B) {
	for _, numChapters := range []int{10, 100} {
		b.Run(fmt.Sprintf("chapters=%d", numChapters), func(b *testing.B) {
			book := benchBook(numChapters)
			dir := b.TempDir()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				path := filepath.Join(dir, fmt.Sprintf("bench_%d.epub", i))
				if err := book.ExportTo(path); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkBuildOPF(b *testing.B) {
	book := benchBook(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := buildOPF(book, testIdentifier); err != nil {
			b.Fatal(err)
		}
	}
}
