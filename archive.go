package novelpub

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// mimetypeName is the fixed name of the archive's first entry.
	mimetypeName = "mimetype"

	// Mimetype is the required content of the mimetype entry in a valid
	// ePub archive.
	Mimetype = "application/epub+zip"
)

// writeArchive packs the scratch directory into a ZIP archive at
// outputPath. The mimetype entry is written first and stored without
// compression: readers locate it by offset, so deviating from this
// produces a file some e-reader software rejects. All other entries use
// deflate, with names relative to the scratch root (forward slashes).
func writeArchive(scratchDir, outputPath string) (err error) {
	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("novelpub: create archive %s: %w", outputPath, err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("novelpub: close archive %s: %w", outputPath, closeErr)
		}
	}()

	zw := zip.NewWriter(out)

	if err := writeMimetypeEntry(zw, scratchDir); err != nil {
		zw.Close()
		return err
	}

	walkErr := filepath.WalkDir(scratchDir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(scratchDir, p)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if name == mimetypeName {
			// Already written as the first entry.
			return nil
		}
		return addDeflatedEntry(zw, p, name)
	})
	if walkErr != nil {
		zw.Close()
		return fmt.Errorf("novelpub: pack archive: %w", walkErr)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("novelpub: finalize archive: %w", err)
	}
	return nil
}

// writeMimetypeEntry writes the mimetype file from the scratch directory
// as the first archive entry, using the Store method.
func writeMimetypeEntry(zw *zip.Writer, scratchDir string) error {
	data, err := os.ReadFile(filepath.Join(scratchDir, mimetypeName))
	if err != nil {
		return fmt.Errorf("novelpub: read mimetype: %w", err)
	}

	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:   mimetypeName,
		Method: zip.Store,
	})
	if err != nil {
		return fmt.Errorf("novelpub: create mimetype entry: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("novelpub: write mimetype entry: %w", err)
	}
	return nil
}

// addDeflatedEntry copies one scratch file into the archive under the
// given entry name using the default deflate method.
func addDeflatedEntry(zw *zip.Writer, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("create entry %s: %w", name, err)
	}
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("write entry %s: %w", name, err)
	}
	return nil
}
