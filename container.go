package novelpub

import (
	"encoding/xml"
	"fmt"
)

// containerXML models the META-INF/container.xml file that points readers
// at the package document.
type containerXML struct {
	XMLName   xml.Name   `xml:"container"`
	Version   string     `xml:"version,attr"`
	Xmlns     string     `xml:"xmlns,attr"`
	RootFiles []rootFile `xml:"rootfiles>rootfile"`
}

// rootFile represents a single <rootfile> element inside container.xml.
type rootFile struct {
	FullPath  string `xml:"full-path,attr"`
	MediaType string `xml:"media-type,attr"`
}

const (
	// containerPath is the well-known location of container.xml in an
	// ePub archive.
	containerPath = "META-INF/container.xml"

	// opfPath is the archive-internal location of the package document.
	opfPath = "OEBPS/content.opf"

	containerNamespace = "urn:oasis:names:tc:opendocument:xmlns:container"
	opfMediaType       = "application/oebps-package+xml"
)

// buildContainer serializes the container descriptor pointing at the
// package document.
func buildContainer() ([]byte, error) {
	c := containerXML{
		Version: "1.0",
		Xmlns:   containerNamespace,
		RootFiles: []rootFile{{
			FullPath:  opfPath,
			MediaType: opfMediaType,
		}},
	}

	data, err := marshalXML(c)
	if err != nil {
		return nil, fmt.Errorf("novelpub: build container.xml: %w", err)
	}
	return data, nil
}

// marshalXML serializes v with two-space indentation and a leading XML
// declaration, the layout every generated document in the archive uses.
func marshalXML(v any) ([]byte, error) {
	body, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}
