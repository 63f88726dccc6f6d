package export

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yuanying/docxport/internal/model"
	"github.com/yuanying/docxport/internal/opc"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct{ in, want string }{
		{"My/Proposal: Q4<2024>", "My_Proposal_Q42024"},
		{"Acme Deal", "Acme_Deal"},
		{`back\slash|pipe`, "back_slash_pipe"},
		{"  padded   name  ", "padded_name"},
		{"***", "proposal"},
		{"", "proposal"},
		{"___underscores___", "underscores"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeFilename_CapsAt100Runes(t *testing.T) {
	got := SanitizeFilename(strings.Repeat("a", 150))
	if len([]rune(got)) != 100 {
		t.Fatalf("length = %d, want 100", len([]rune(got)))
	}
}

func TestExport_UnsupportedFormat(t *testing.T) {
	res := Export(&model.Document{Name: "X"}, Options{Format: "xlsx"})
	if res.Success {
		t.Fatal("Success = true for unsupported format")
	}
	if !errors.Is(res.Err, ErrUnsupportedFormat) {
		t.Fatalf("Err = %v, want ErrUnsupportedFormat", res.Err)
	}
}

func TestExport_NilDocument(t *testing.T) {
	res := Export(nil, Options{Format: FormatDocx})
	if res.Success || res.Err == nil {
		t.Fatalf("res = %+v, want failure", res)
	}
}

func TestExport_Docx(t *testing.T) {
	doc := &model.Document{
		Name: "Acme Deal",
		Sections: []model.Section{
			{Kind: model.KindHero, Content: model.Hero{Title: "Acme Proposal"}},
		},
	}
	res := Export(doc, Options{Format: FormatDocx})
	if !res.Success || res.Err != nil {
		t.Fatalf("res = %+v, want success", res)
	}
	if res.Filename != "Acme_Deal.docx" {
		t.Fatalf("Filename = %q, want Acme_Deal.docx", res.Filename)
	}
	r, err := opc.NewReader(res.Bytes)
	if err != nil {
		t.Fatalf("exported bytes are not a readable package: %v", err)
	}
	if !r.Has("word/document.xml") {
		t.Fatal("package missing word/document.xml")
	}
}

type capturePrinter struct {
	html string
	err  error
}

func (p *capturePrinter) Print(html string) error {
	p.html = html
	return p.err
}

func TestExport_PDFHandsHTMLToPrinter(t *testing.T) {
	printer := &capturePrinter{}
	doc := &model.Document{
		Name: "Acme Deal",
		Sections: []model.Section{
			{Kind: model.KindText, Content: model.Text{Body: "hello"}},
		},
	}
	res := Export(doc, Options{Format: FormatPDF, Printer: printer})
	if !res.Success || res.Err != nil {
		t.Fatalf("res = %+v, want success", res)
	}
	if res.Filename != "Acme_Deal.pdf" {
		t.Fatalf("Filename = %q, want Acme_Deal.pdf", res.Filename)
	}
	if res.Bytes != nil {
		t.Fatal("PDF path must not return bytes")
	}
	if !strings.Contains(printer.html, "hello") {
		t.Fatalf("printer received %q, want rendered page", printer.html)
	}
}

func TestExport_PDFWithoutPrinter(t *testing.T) {
	res := Export(&model.Document{Name: "X"}, Options{Format: FormatPDF})
	if res.Success || !errors.Is(res.Err, ErrNoPrintSurface) {
		t.Fatalf("res = %+v, want ErrNoPrintSurface", res)
	}
}

func TestExport_PDFPrinterFailure(t *testing.T) {
	printer := &capturePrinter{err: errors.New("surface gone")}
	res := Export(&model.Document{Name: "X"}, Options{Format: FormatPDF, Printer: printer})
	if res.Success {
		t.Fatal("Success = true despite printer failure")
	}
	if !errors.Is(res.Err, ErrNoPrintSurface) {
		t.Fatalf("Err = %v, want wrapped ErrNoPrintSurface", res.Err)
	}
}

func TestHTMLFilePrinter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	if err := (HTMLFilePrinter{Path: path}).Print("<html>page</html>"); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "<html>page</html>" {
		t.Fatalf("file contents = %q", data)
	}

	if err := (HTMLFilePrinter{}).Print("x"); err == nil {
		t.Fatal("Print() with no path expected error")
	}
}
