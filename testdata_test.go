package novelpub

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"path/filepath"
	"testing"
)

// exportBook exports b into a fresh temporary directory and returns the
// archive path. It calls t.Fatal on failure.
func exportBook(t *testing.T, b *Book) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book.epub")
	if err := b.ExportTo(path); err != nil {
		t.Fatalf("ExportTo: %v", err)
	}
	return path
}

// openArchive opens the produced archive for inspection and registers
// cleanup with the test.
func openArchive(t *testing.T, path string) *zip.ReadCloser {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open archive %s: %v", path, err)
	}
	t.Cleanup(func() { zr.Close() })
	return zr
}

// readEntry reads the named entry from the archive. It calls t.Fatal when
// the entry is missing or unreadable.
func readEntry(t *testing.T, zr *zip.Reader, name string) []byte {
	t.Helper()
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open entry %s: %v", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read entry %s: %v", name, err)
		}
		return data
	}
	t.Fatalf("entry %s not found in archive", name)
	return nil
}

// hasEntry reports whether the archive contains the named entry.
func hasEntry(zr *zip.Reader, name string) bool {
	for _, f := range zr.File {
		if f.Name == name {
			return true
		}
	}
	return false
}

// parsedContainer is the namespace-aware read model of container.xml
// used to verify generated output.
type parsedContainer struct {
	XMLName   xml.Name `xml:"container"`
	RootFiles []struct {
		FullPath  string `xml:"full-path,attr"`
		MediaType string `xml:"media-type,attr"`
	} `xml:"rootfiles>rootfile"`
}

// parsedOPF is the namespace-aware read model of the package document.
type parsedOPF struct {
	XMLName          xml.Name `xml:"package"`
	Version          string   `xml:"version,attr"`
	UniqueIdentifier string   `xml:"unique-identifier,attr"`
	Metadata         struct {
		Title      string `xml:"http://purl.org/dc/elements/1.1/ title"`
		Creator    string `xml:"http://purl.org/dc/elements/1.1/ creator"`
		Language   string `xml:"http://purl.org/dc/elements/1.1/ language"`
		Identifier struct {
			ID    string `xml:"id,attr"`
			Value string `xml:",chardata"`
		} `xml:"http://purl.org/dc/elements/1.1/ identifier"`
	} `xml:"metadata"`
	Manifest struct {
		Items []struct {
			ID        string `xml:"id,attr"`
			Href      string `xml:"href,attr"`
			MediaType string `xml:"media-type,attr"`
		} `xml:"item"`
	} `xml:"manifest"`
	Spine struct {
		Toc      string `xml:"toc,attr"`
		ItemRefs []struct {
			IDRef string `xml:"idref,attr"`
		} `xml:"itemref"`
	} `xml:"spine"`
	Guide struct {
		References []struct {
			Type string `xml:"type,attr"`
			Href string `xml:"href,attr"`
		} `xml:"reference"`
	} `xml:"guide"`
}

// parsedNCX is the namespace-aware read model of the navigation document.
type parsedNCX struct {
	XMLName xml.Name `xml:"ncx"`
	Head    struct {
		Metas []struct {
			Name    string `xml:"name,attr"`
			Content string `xml:"content,attr"`
		} `xml:"meta"`
	} `xml:"head"`
	DocTitle struct {
		Text string `xml:"text"`
	} `xml:"docTitle"`
	NavPoints []struct {
		ID        string `xml:"id,attr"`
		PlayOrder string `xml:"playOrder,attr"`
		Label     string `xml:"navLabel>text"`
		Content   struct {
			Src string `xml:"src,attr"`
		} `xml:"content"`
	} `xml:"navMap>navPoint"`
}

// parseEntry unmarshals an archive entry into out.
func parseEntry(t *testing.T, zr *zip.Reader, name string, out any) {
	t.Helper()
	data := readEntry(t, zr, name)
	if err := xml.Unmarshal(data, out); err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}
}

// assertWellFormed consumes the full token stream of an XML document,
// failing the test on any syntax error.
func assertWellFormed(t *testing.T, name string, data []byte) {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatalf("%s is not well-formed: %v", name, err)
		}
	}
}
