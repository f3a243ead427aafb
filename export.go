package novelpub

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// scratchDirName is the name of the scratch directory created beside the
// output path. It is derived from the output location, not a per-call
// token, which is why concurrent exports to the same path are undefined.
const scratchDirName = "epub_temp"

// ExportTo builds the ePub archive at outputPath. It renders every
// required document into a scratch directory beside the output path,
// packs the directory into the archive, and removes the scratch
// directory whether or not packing succeeded.
//
// Any error aborts the whole export; there is no partial-success mode.
// On a mid-archive failure the output file may be left partially
// written — callers must not assume a failed export leaves no file.
func (b *Book) ExportTo(outputPath string) error {
	outDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("novelpub: create output directory: %w", err)
	}

	// A scratch tree left over from a prior failed run is removed first
	// to guarantee a clean start.
	scratchDir := filepath.Join(outDir, scratchDirName)
	if err := os.RemoveAll(scratchDir); err != nil {
		return fmt.Errorf("novelpub: clear scratch directory: %w", err)
	}
	defer os.RemoveAll(scratchDir)

	if err := b.renderScratch(scratchDir); err != nil {
		return err
	}
	return writeArchive(scratchDir, outputPath)
}

// renderScratch generates every document of the ePub container into the
// scratch directory: the mimetype marker, the container descriptor, the
// package document, the navigation document, one content page per
// chapter, and the cover and title pages.
func (b *Book) renderScratch(scratchDir string) error {
	for _, dir := range []string{
		scratchDir,
		filepath.Join(scratchDir, "META-INF"),
		filepath.Join(scratchDir, "OEBPS"),
	} {
		if err := os.Mkdir(dir, 0o755); err != nil {
			return fmt.Errorf("novelpub: create scratch directory: %w", err)
		}
	}

	if err := writeScratchFile(scratchDir, mimetypeName, []byte(Mimetype)); err != nil {
		return err
	}

	container, err := buildContainer()
	if err != nil {
		return err
	}
	if err := writeScratchFile(scratchDir, containerPath, container); err != nil {
		return err
	}

	// One identifier per export, shared by the package document and the
	// navigation document head.
	identifier := "urn:uuid:" + uuid.NewString()

	opf, err := buildOPF(b, identifier)
	if err != nil {
		return err
	}
	if err := writeScratchFile(scratchDir, opfPath, opf); err != nil {
		return err
	}

	ncx, err := buildNCX(b, identifier)
	if err != nil {
		return err
	}
	if err := writeScratchFile(scratchDir, "OEBPS/toc.ncx", ncx); err != nil {
		return err
	}

	for _, ch := range b.sortedChapters() {
		page, err := buildChapterPage(b, ch)
		if err != nil {
			return err
		}
		if err := writeScratchFile(scratchDir, "OEBPS/"+chapterFile(ch.Number), page); err != nil {
			return err
		}
	}

	cover, err := buildCoverPage(b)
	if err != nil {
		return err
	}
	if err := writeScratchFile(scratchDir, "OEBPS/cover.xhtml", cover); err != nil {
		return err
	}

	title, err := buildTitlePage(b, time.Now())
	if err != nil {
		return err
	}
	return writeScratchFile(scratchDir, "OEBPS/title.xhtml", title)
}

// writeScratchFile writes one generated document under the scratch
// directory. name is the archive-internal, slash-separated path.
func writeScratchFile(scratchDir, name string, data []byte) error {
	p := filepath.Join(scratchDir, filepath.FromSlash(name))
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("novelpub: write %s: %w", name, err)
	}
	return nil
}
