package docx

import (
	"fmt"
	"strings"

	"github.com/yuanying/docxport/internal/markup"
)

// Fragment builders for WordprocessingML. Child element order inside w:pPr
// and w:rPr follows the schema sequence (numPr, ind, jc / b, i, color, sz).

// paraProps bundles paragraph-level formatting.
type paraProps struct {
	Align      string // "center" or "right"; empty inherits
	IndentLeft int    // twips
	Bullet     bool   // references the bullet list definition in numbering.xml
}

// runProps bundles character-level formatting.
type runProps struct {
	Bold   bool
	Italic bool
	Color  string // RRGGBB hex; empty inherits
	Size   int    // half-points; 0 inherits
}

func (pp paraProps) xml() string {
	var b strings.Builder
	if pp.Bullet {
		b.WriteString(`<w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr>`)
	}
	if pp.IndentLeft > 0 {
		fmt.Fprintf(&b, `<w:ind w:left="%d"/>`, pp.IndentLeft)
	}
	if pp.Align != "" {
		fmt.Fprintf(&b, `<w:jc w:val="%s"/>`, pp.Align)
	}
	if b.Len() == 0 {
		return ""
	}
	return "<w:pPr>" + b.String() + "</w:pPr>"
}

func (rp runProps) xml() string {
	var b strings.Builder
	if rp.Bold {
		b.WriteString("<w:b/>")
	}
	if rp.Italic {
		b.WriteString("<w:i/>")
	}
	if rp.Color != "" {
		fmt.Fprintf(&b, `<w:color w:val="%s"/>`, rp.Color)
	}
	if rp.Size > 0 {
		fmt.Fprintf(&b, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, rp.Size, rp.Size)
	}
	if b.Len() == 0 {
		return ""
	}
	return "<w:rPr>" + b.String() + "</w:rPr>"
}

// run emits a single text run. Text is escaped here, never by callers.
func run(text string, rp runProps) string {
	var b strings.Builder
	b.WriteString("<w:r>")
	b.WriteString(rp.xml())
	b.WriteString(`<w:t xml:space="preserve">`)
	b.WriteString(markup.EscapeXML(text))
	b.WriteString("</w:t></w:r>")
	return b.String()
}

// paragraph wraps runs in a w:p element.
func paragraph(pp paraProps, runs ...string) string {
	var b strings.Builder
	b.WriteString("<w:p>")
	b.WriteString(pp.xml())
	for _, r := range runs {
		b.WriteString(r)
	}
	b.WriteString("</w:p>")
	return b.String()
}

// heading emits a bold paragraph sized between body text and the hero title.
func heading(text string) string {
	return paragraph(paraProps{}, run(text, runProps{Bold: true, Size: 32}))
}

const tableBorders = `<w:tblBorders>` +
	`<w:top w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:left w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:bottom w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:right w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:insideH w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:insideV w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`</w:tblBorders>`

const tablePrologue = `<w:tbl><w:tblPr><w:tblW w:w="0" w:type="auto"/>` + tableBorders + `</w:tblPr>`

const headerShading = `<w:tcPr><w:shd w:val="clear" w:color="auto" w:fill="D9D9D9"/></w:tcPr>`

// tableCell emits one w:tc holding a single paragraph.
func tableCell(text string, rp runProps, shaded bool) string {
	var b strings.Builder
	b.WriteString("<w:tc>")
	if shaded {
		b.WriteString(headerShading)
	}
	b.WriteString(paragraph(paraProps{}, run(text, rp)))
	b.WriteString("</w:tc>")
	return b.String()
}

func tableRow(cells ...string) string {
	return "<w:tr>" + strings.Join(cells, "") + "</w:tr>"
}

// Nominal inline image box: 6in x 3.5in in EMU (914400 per inch).
const (
	imageBoxWidthEMU  = 6 * 914400
	imageBoxHeightEMU = 3200400
)

// drawing emits an inline picture bound to a pre-registered relationship ID.
// It never touches image bytes; registration happens in the media set before
// this fragment is produced.
func drawing(relID string, docPrID int, alt string) string {
	name := fmt.Sprintf("Picture %d", docPrID)
	return fmt.Sprintf(`<w:p><w:r><w:drawing>`+
		`<wp:inline distT="0" distB="0" distL="0" distR="0">`+
		`<wp:extent cx="%[1]d" cy="%[2]d"/>`+
		`<wp:effectExtent l="0" t="0" r="0" b="0"/>`+
		`<wp:docPr id="%[3]d" name="%[4]s" descr="%[5]s"/>`+
		`<wp:cNvGraphicFramePr><a:graphicFrameLocks noChangeAspect="1"/></wp:cNvGraphicFramePr>`+
		`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture">`+
		`<pic:pic>`+
		`<pic:nvPicPr><pic:cNvPr id="%[3]d" name="%[4]s"/><pic:cNvPicPr/></pic:nvPicPr>`+
		`<pic:blipFill><a:blip r:embed="%[6]s"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>`+
		`<pic:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%[1]d" cy="%[2]d"/></a:xfrm>`+
		`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr>`+
		`</pic:pic>`+
		`</a:graphicData></a:graphic>`+
		`</wp:inline>`+
		`</w:drawing></w:r></w:p>`,
		imageBoxWidthEMU, imageBoxHeightEMU, docPrID, markup.EscapeXML(name), markup.EscapeXML(alt), relID)
}
