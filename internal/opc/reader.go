// Package opc reads Open Packaging Conventions containers (the zip layout
// underneath .docx) back: part listing, content types and relationship
// manifests. It backs the CLI inspect command and the encoder's own
// round-trip tests.
package opc

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

var (
	ErrContentTypesNotFound = errors.New("[Content_Types].xml not found")
	ErrDocumentNotFound     = errors.New("word/document.xml not found")
)

// Reader provides access to the parts of an OPC package held in memory.
type Reader struct {
	files map[string]*zip.File
}

// ContentTypes is the parsed [Content_Types].xml manifest.
type ContentTypes struct {
	Defaults  map[string]string // extension -> content type
	Overrides map[string]string // part name -> content type
}

// Relationship is one entry of a .rels part.
type Relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type relationships struct {
	Entries []Relationship `xml:"Relationship"`
}

type contentTypesXML struct {
	Defaults []struct {
		Extension   string `xml:"Extension,attr"`
		ContentType string `xml:"ContentType,attr"`
	} `xml:"Default"`
	Overrides []struct {
		PartName    string `xml:"PartName,attr"`
		ContentType string `xml:"ContentType,attr"`
	} `xml:"Override"`
}

// NewReader opens a package from its raw bytes and validates that the two
// parts every wordprocessing package must carry are present.
func NewReader(data []byte) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open package: %w", err)
	}

	r := &Reader{files: make(map[string]*zip.File)}
	for _, f := range zr.File {
		r.files[normalizePath(f.Name)] = f
	}

	if _, ok := r.files["[Content_Types].xml"]; !ok {
		return nil, ErrContentTypesNotFound
	}
	if _, ok := r.files["word/document.xml"]; !ok {
		return nil, ErrDocumentNotFound
	}
	return r, nil
}

// Parts returns the part names in the package, sorted.
func (r *Reader) Parts() []string {
	names := make([]string, 0, len(r.files))
	for name := range r.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the package contains the named part.
func (r *Reader) Has(path string) bool {
	_, ok := r.files[normalizePath(path)]
	return ok
}

// ReadPart returns the contents of one part.
func (r *Reader) ReadPart(path string) ([]byte, error) {
	f, ok := r.files[normalizePath(path)]
	if !ok {
		return nil, fmt.Errorf("part not found: %s", path)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open part %s: %w", path, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// ContentTypes parses the [Content_Types].xml manifest.
func (r *Reader) ContentTypes() (*ContentTypes, error) {
	data, err := r.ReadPart("[Content_Types].xml")
	if err != nil {
		return nil, err
	}
	var parsed contentTypesXML
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse content types: %w", err)
	}
	ct := &ContentTypes{
		Defaults:  make(map[string]string, len(parsed.Defaults)),
		Overrides: make(map[string]string, len(parsed.Overrides)),
	}
	for _, d := range parsed.Defaults {
		ct.Defaults[d.Extension] = d.ContentType
	}
	for _, o := range parsed.Overrides {
		ct.Overrides[o.PartName] = o.ContentType
	}
	return ct, nil
}

// Relationships parses one .rels part, e.g. "_rels/.rels" or
// "word/_rels/document.xml.rels".
func (r *Reader) Relationships(path string) ([]Relationship, error) {
	data, err := r.ReadPart(path)
	if err != nil {
		return nil, err
	}
	var rels relationships
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil, fmt.Errorf("failed to parse relationships %s: %w", path, err)
	}
	return rels.Entries, nil
}

// MediaExtensions returns the distinct file extensions present under
// word/media/, sorted.
func (r *Reader) MediaExtensions() []string {
	seen := make(map[string]bool)
	for name := range r.files {
		if !strings.HasPrefix(name, "word/media/") {
			continue
		}
		if idx := strings.LastIndex(name, "."); idx >= 0 {
			seen[name[idx+1:]] = true
		}
	}
	exts := make([]string, 0, len(seen))
	for ext := range seen {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func normalizePath(path string) string {
	return strings.TrimPrefix(path, "./")
}
