package docx

import (
	"strings"

	"github.com/yuanying/docxport/internal/markup"
	"github.com/yuanying/docxport/internal/model"
)

// RenderContext carries the per-export state a section renderer may need:
// the media set that allocates image relationship IDs, and the image toggle.
// Renderers are otherwise pure string producers.
type RenderContext struct {
	media         *mediaSet
	includeImages bool
}

func newRenderContext(opts Options) *RenderContext {
	return &RenderContext{
		media:         newMediaSet(opts.MaxImageWidth),
		includeImages: opts.IncludeImages,
	}
}

type renderFunc func(ctx *RenderContext, sec model.Section) string

// renderers maps section kinds to their fragment encoders. Kinds absent from
// the map take the fallback path: best-effort text, or an intentionally empty
// contribution.
var renderers = map[string]renderFunc{
	model.KindHero:    renderHero,
	model.KindText:    renderText,
	model.KindImage:   renderImage,
	model.KindTable:   renderTable,
	model.KindQuote:   renderQuote,
	model.KindPricing: renderPricing,
}

func renderSection(ctx *RenderContext, sec model.Section) string {
	if render, ok := renderers[sec.Kind]; ok {
		return render(ctx, sec)
	}
	return renderFallback(ctx, sec)
}

// content extracts the typed payload for a renderer. A nil or mismatched
// payload yields the all-defaults value, so renderers never branch on
// missing data.
func content[T model.Content](sec model.Section) T {
	c, _ := sec.Content.(T)
	return c
}

func renderHero(_ *RenderContext, sec model.Section) string {
	c := content[model.Hero](sec)
	var b strings.Builder
	if c.Title != "" {
		b.WriteString(paragraph(paraProps{Align: "center"}, run(c.Title, runProps{Bold: true, Size: 48})))
	}
	if c.Subtitle != "" {
		b.WriteString(paragraph(paraProps{Align: "center"}, run(c.Subtitle, runProps{Size: 28, Color: "595959"})))
	}
	return b.String()
}

func renderText(_ *RenderContext, sec model.Section) string {
	c := content[model.Text](sec)
	return textFragment(c.Heading, c.Body)
}

// textFragment is shared by the text renderer and the unknown-kind fallback.
func textFragment(head, body string) string {
	var b strings.Builder
	if head != "" {
		b.WriteString(heading(head))
	}
	for _, block := range markup.SplitBlocks(body) {
		for _, line := range block {
			if item, ok := markup.BulletItem(line); ok {
				b.WriteString(paragraph(paraProps{Bullet: true}, run(item, runProps{})))
			} else {
				b.WriteString(paragraph(paraProps{}, run(line, runProps{})))
			}
		}
	}
	return b.String()
}

func renderImage(ctx *RenderContext, sec model.Section) string {
	c := content[model.Image](sec)
	var b strings.Builder
	if ctx.includeImages {
		if img, ok := ctx.media.Embed(c.Src); ok {
			b.WriteString(drawing(img.RelID, img.Index, c.Alt))
		}
	}
	if c.Caption != "" {
		b.WriteString(paragraph(paraProps{Align: "center"}, run(c.Caption, runProps{Italic: true, Color: "595959"})))
	}
	return b.String()
}

func renderTable(_ *RenderContext, sec model.Section) string {
	c := content[model.Table](sec)
	if c.Title == "" && len(c.Headers) == 0 && len(c.Rows) == 0 {
		return ""
	}
	var b strings.Builder
	if c.Title != "" {
		b.WriteString(heading(c.Title))
	}
	if len(c.Headers) == 0 && len(c.Rows) == 0 {
		return b.String()
	}
	b.WriteString(tablePrologue)
	if len(c.Headers) > 0 {
		cells := make([]string, 0, len(c.Headers))
		for _, h := range c.Headers {
			cells = append(cells, tableCell(h, runProps{Bold: true}, true))
		}
		b.WriteString(tableRow(cells...))
	}
	// Ragged rows render as-is: no padding or truncation to header length.
	for _, row := range c.Rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, tableCell(cell, runProps{}, false))
		}
		b.WriteString(tableRow(cells...))
	}
	b.WriteString("</w:tbl><w:p/>")
	return b.String()
}

func renderQuote(_ *RenderContext, sec model.Section) string {
	c := content[model.Quote](sec)
	var b strings.Builder
	if c.Body != "" {
		b.WriteString(paragraph(paraProps{IndentLeft: 720}, run(c.Body, runProps{Italic: true})))
	}
	if c.Author != "" {
		attribution := "— " + c.Author
		if c.Role != "" {
			attribution += ", " + c.Role
		}
		b.WriteString(paragraph(paraProps{Align: "right"}, run(attribution, runProps{})))
	}
	return b.String()
}

func renderPricing(_ *RenderContext, sec model.Section) string {
	c := content[model.Pricing](sec)
	if c.Title == "" && len(c.Items) == 0 {
		return ""
	}
	var b strings.Builder
	if c.Title != "" {
		b.WriteString(heading(c.Title))
	}
	b.WriteString(tablePrologue)
	b.WriteString(tableRow(
		tableCell("Package", runProps{Bold: true}, true),
		tableCell("Price", runProps{Bold: true}, true),
		tableCell("Description", runProps{Bold: true}, true),
	))
	for _, item := range c.Items {
		b.WriteString(tableRow(
			tableCell(item.Name, runProps{}, false),
			tableCell(item.Price, runProps{Bold: true}, false),
			tableCell(item.Description, runProps{}, false),
		))
	}
	b.WriteString("</w:tbl><w:p/>")
	return b.String()
}

// renderFallback handles section kinds without a dedicated renderer. If the
// payload carried a text field it renders like a text section with the
// section title as heading; otherwise it contributes nothing.
func renderFallback(_ *RenderContext, sec model.Section) string {
	c := content[model.Fallback](sec)
	if c.Body == "" {
		return ""
	}
	return textFragment(sec.Title, c.Body)
}
