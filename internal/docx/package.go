// Package docx encodes a proposal document model into an OOXML (.docx)
// package: per-section WordprocessingML fragments stitched into
// word/document.xml, embedded media parts, and the relationship and
// content-type manifests the container format requires.
package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yuanying/docxport/internal/model"
)

// Options configure a single package build.
type Options struct {
	// IncludeImages embeds data-URI images as media parts. When false, image
	// sections render their caption only and no media, image relationships or
	// image content types appear in the package.
	IncludeImages bool

	// IncludeMetadata adds the creator element to docProps/core.xml.
	IncludeMetadata bool

	// MaxImageWidth, when positive, downscales embedded raster images to at
	// most this many pixels wide. Zero embeds payloads untouched.
	MaxImageWidth int
}

// Writer assembles a complete .docx package for one document. It reads the
// document and writes only freshly allocated output, so concurrent writers
// over the same document are safe.
type Writer struct {
	doc  *model.Document
	opts Options
}

var ErrNilDocument = errors.New("document is required")

// NewWriter creates a package writer for the given document.
func NewWriter(doc *model.Document, opts Options) (*Writer, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	return &Writer{doc: doc, opts: opts}, nil
}

// Bytes builds the package in memory. Either a complete archive is returned
// or an error; there is no partial output.
func (w *Writer) Bytes() ([]byte, error) {
	ctx := newRenderContext(w.opts)

	// Traversal order is Order ascending, not input order. Image sections
	// register their media (and relationship IDs) as they render, so the
	// manifests built afterwards cover exactly what the body references.
	var body strings.Builder
	for _, sec := range w.doc.SortedSections() {
		body.WriteString(renderSection(ctx, sec))
	}

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML(ctx.media.Extensions())},
		{"_rels/.rels", rootRelsXML},
		{"docProps/core.xml", coreXML(w.doc.Name, w.opts.IncludeMetadata)},
		{"docProps/app.xml", appXML},
		{"word/document.xml", documentXML(body.String())},
		{"word/_rels/document.xml.rels", docRelsXML(ctx.media.Images())},
		{"word/styles.xml", stylesXML},
		{"word/settings.xml", settingsXML},
		{"word/numbering.xml", numberingXML},
	}
	for _, part := range parts {
		if err := addPart(zw, part.name, []byte(part.content)); err != nil {
			return nil, err
		}
	}

	for _, img := range ctx.media.Images() {
		if err := addPart(zw, "word/media/"+img.Filename, img.Data); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteTo writes the complete package to out.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	data, err := w.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := out.Write(data)
	if err != nil {
		return int64(n), fmt.Errorf("failed to write package: %w", err)
	}
	return int64(n), nil
}

func addPart(zw *zip.Writer, name string, data []byte) error {
	f, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create part %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write part %s: %w", name, err)
	}
	return nil
}
