// Package export is the public entry point of the encoder: it selects the
// output pipeline by requested format and converts every failure into a
// structured result instead of letting it escape to the caller.
package export

import (
	"errors"
	"fmt"

	"github.com/yuanying/docxport/internal/docx"
	"github.com/yuanying/docxport/internal/htmlprint"
	"github.com/yuanying/docxport/internal/model"
)

// Export formats.
const (
	FormatDocx = "docx"
	FormatPDF  = "pdf"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrNoPrintSurface    = errors.New("could not create print frame")
)

// Options configure one export call.
type Options struct {
	// Format selects the pipeline: FormatDocx or FormatPDF.
	Format string

	IncludeImages   bool
	IncludeMetadata bool

	// MaxImageWidth, when positive, downscales embedded images (docx path).
	MaxImageWidth int

	// Printer receives the rendered HTML on the PDF path. The PDF bytes are
	// produced by whatever print capability backs it, outside this package.
	Printer PrintTrigger
}

// Result is the outcome of one export call. On the docx path Bytes holds the
// complete package; the PDF path returns no bytes, only the suggested
// filename, because the host print pipeline produces the final file.
type Result struct {
	Success  bool
	Bytes    []byte
	Filename string
	Err      error
}

// PrintTrigger abstracts the host print capability. Implementations own the
// rendering surface: they must create it fresh per call and tear it down on
// every path, including failures.
type PrintTrigger interface {
	Print(html string) error
}

func failure(err error) Result {
	return Result{Err: err}
}

// Export encodes the document in the requested format. It is a pure reader
// of the document and never panics through to the caller; every failure
// surfaces as a Result with a displayable error.
func Export(doc *model.Document, opts Options) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = failure(fmt.Errorf("export failed: %v", r))
		}
	}()

	if doc == nil {
		return failure(docx.ErrNilDocument)
	}

	switch opts.Format {
	case FormatDocx:
		return exportDocx(doc, opts)
	case FormatPDF:
		return exportPDF(doc, opts)
	default:
		return failure(fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format))
	}
}

func exportDocx(doc *model.Document, opts Options) Result {
	w, err := docx.NewWriter(doc, docx.Options{
		IncludeImages:   opts.IncludeImages,
		IncludeMetadata: opts.IncludeMetadata,
		MaxImageWidth:   opts.MaxImageWidth,
	})
	if err != nil {
		return failure(err)
	}
	data, err := w.Bytes()
	if err != nil {
		return failure(err)
	}
	return Result{
		Success:  true,
		Bytes:    data,
		Filename: SanitizeFilename(doc.Name) + ".docx",
	}
}

func exportPDF(doc *model.Document, opts Options) Result {
	if opts.Printer == nil {
		return failure(ErrNoPrintSurface)
	}
	html := htmlprint.Render(doc)
	if err := opts.Printer.Print(html); err != nil {
		return failure(fmt.Errorf("%w: %v", ErrNoPrintSurface, err))
	}
	return Result{
		Success:  true,
		Filename: SanitizeFilename(doc.Name) + ".pdf",
	}
}
