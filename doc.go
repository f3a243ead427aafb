// Package novelpub assembles generated novel chapters into ePub 2
// archives.
//
// A [Book] holds the title, author, and an ordered chapter collection;
// [Book.ExportTo] renders the full ePub container (container descriptor,
// package document, NCX navigation document, one XHTML page per chapter,
// plus cover and title pages) into a scratch directory and packs it into
// a single ZIP archive with the stored, uncompressed mimetype entry
// first, as the container format requires.
//
// # Building a book
//
//	book := novelpub.NewBook("My Novel", "Jane Doe")
//	book.AddChapter(1, "The Beginning", "First line.\nSecond line.")
//	book.AddChapter(2, "The End", "Only line.")
//	if err := book.ExportTo("out/my-novel.epub"); err != nil {
//	    log.Fatal(err)
//	}
//
// Chapters may be added in any order; the spine and navigation map list
// them in ascending chapter number order. Duplicate chapter numbers are
// accepted and produce duplicate identifiers in the output — callers
// that need uniqueness must enforce it themselves.
//
// # Loading chapters from disk
//
// [Loader] reads a directory of chapter_<N>.txt files, extracting each
// chapter title from the first non-blank line:
//
//	loader := novelpub.NewLoader(logger)
//	err := loader.ExportNovel("novels/demo", "out/demo.epub", "Demo", "")
//
// # Error handling
//
// All failures abort the whole export and surface as a single error;
// there is no partial-success mode. The package defines sentinel errors
// for loader-level failures:
//   - [ErrNoChapters] – no usable chapter files were found
//   - [ErrChapterDirNotFound] – the chapters directory is missing
package novelpub
