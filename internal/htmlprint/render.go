// Package htmlprint renders a proposal document as one self-contained HTML
// page for the print-to-PDF flow. The output carries its styling inline and
// references nothing external except remote image URLs; how (or whether) the
// page is handed to a print surface is the caller's concern.
package htmlprint

import (
	"fmt"
	"strings"

	"github.com/yuanying/docxport/internal/markup"
	"github.com/yuanying/docxport/internal/model"
)

const baseCSS = `
body { font-family: 'Segoe UI', Arial, sans-serif; color: #1a1a1a; margin: 40px auto; max-width: 760px; line-height: 1.5; }
section { page-break-inside: avoid; margin-bottom: 28px; }
h1 { font-size: 32px; text-align: center; margin-bottom: 4px; }
h2 { font-size: 22px; margin-bottom: 8px; }
p.subtitle { text-align: center; color: #595959; font-size: 18px; margin-top: 0; }
p.caption { text-align: center; color: #595959; font-style: italic; font-size: 13px; }
img { display: block; max-width: 100%; margin: 0 auto; }
blockquote { border-left: 3px solid #bbb; margin-left: 0; padding-left: 16px; font-style: italic; }
blockquote cite { display: block; text-align: right; font-style: normal; margin-top: 8px; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
th { background: #ececec; }
`

type renderFunc func(sec model.Section) string

var renderers = map[string]renderFunc{
	model.KindHero:    renderHero,
	model.KindText:    renderText,
	model.KindImage:   renderImage,
	model.KindTable:   renderTable,
	model.KindQuote:   renderQuote,
	model.KindPricing: renderPricing,
}

// Render produces the complete HTML document. It is a pure function of the
// document: no package assembly, no side effects.
func Render(doc *model.Document) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>")
	b.WriteString(markup.EscapeHTML(doc.Name))
	b.WriteString("</title>\n<style>")
	b.WriteString(baseCSS)
	b.WriteString("</style>\n</head>\n<body>\n")
	for _, sec := range doc.SortedSections() {
		fragment := renderSection(sec)
		if fragment == "" {
			continue
		}
		b.WriteString("<section>")
		b.WriteString(fragment)
		b.WriteString("</section>\n")
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func renderSection(sec model.Section) string {
	if render, ok := renderers[sec.Kind]; ok {
		return render(sec)
	}
	return renderFallback(sec)
}

func content[T model.Content](sec model.Section) T {
	c, _ := sec.Content.(T)
	return c
}

func renderHero(sec model.Section) string {
	c := content[model.Hero](sec)
	var b strings.Builder
	if c.Title != "" {
		b.WriteString("<h1>" + markup.EscapeHTML(c.Title) + "</h1>")
	}
	if c.Subtitle != "" {
		b.WriteString(`<p class="subtitle">` + markup.EscapeHTML(c.Subtitle) + "</p>")
	}
	return b.String()
}

func renderText(sec model.Section) string {
	c := content[model.Text](sec)
	return textFragment(c.Heading, c.Body)
}

// textFragment emits an optional h2 heading followed by the body blocks.
// Within a block, consecutive bullet lines become a list; other lines are
// joined with <br> into one paragraph.
func textFragment(head, body string) string {
	var b strings.Builder
	if head != "" {
		b.WriteString("<h2>" + markup.EscapeHTML(head) + "</h2>")
	}
	for _, block := range markup.SplitBlocks(body) {
		var plain []string
		flushPlain := func() {
			if len(plain) > 0 {
				b.WriteString("<p>" + strings.Join(plain, "<br>") + "</p>")
				plain = nil
			}
		}
		inList := false
		for _, line := range block {
			if item, ok := markup.BulletItem(line); ok {
				flushPlain()
				if !inList {
					b.WriteString("<ul>")
					inList = true
				}
				b.WriteString("<li>" + markup.EscapeHTML(item) + "</li>")
				continue
			}
			if inList {
				b.WriteString("</ul>")
				inList = false
			}
			plain = append(plain, markup.EscapeHTML(line))
		}
		if inList {
			b.WriteString("</ul>")
		}
		flushPlain()
	}
	return b.String()
}

func renderImage(sec model.Section) string {
	c := content[model.Image](sec)
	var b strings.Builder
	if c.Src != "" {
		fmt.Fprintf(&b, `<img src="%s" alt="%s">`, markup.EscapeHTML(c.Src), markup.EscapeHTML(c.Alt))
	}
	if c.Caption != "" {
		b.WriteString(`<p class="caption">` + markup.EscapeHTML(c.Caption) + "</p>")
	}
	return b.String()
}

func renderTable(sec model.Section) string {
	c := content[model.Table](sec)
	if c.Title == "" && len(c.Headers) == 0 && len(c.Rows) == 0 {
		return ""
	}
	var b strings.Builder
	if c.Title != "" {
		b.WriteString("<h2>" + markup.EscapeHTML(c.Title) + "</h2>")
	}
	if len(c.Headers) == 0 && len(c.Rows) == 0 {
		return b.String()
	}
	b.WriteString("<table>")
	if len(c.Headers) > 0 {
		b.WriteString("<thead><tr>")
		for _, h := range c.Headers {
			b.WriteString("<th>" + markup.EscapeHTML(h) + "</th>")
		}
		b.WriteString("</tr></thead>")
	}
	b.WriteString("<tbody>")
	for _, row := range c.Rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>" + markup.EscapeHTML(cell) + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

func renderQuote(sec model.Section) string {
	c := content[model.Quote](sec)
	if c.Body == "" && c.Author == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("<blockquote>")
	if c.Body != "" {
		b.WriteString("<p>" + markup.EscapeHTML(c.Body) + "</p>")
	}
	if c.Author != "" {
		attribution := "— " + c.Author
		if c.Role != "" {
			attribution += ", " + c.Role
		}
		b.WriteString("<cite>" + markup.EscapeHTML(attribution) + "</cite>")
	}
	b.WriteString("</blockquote>")
	return b.String()
}

func renderPricing(sec model.Section) string {
	c := content[model.Pricing](sec)
	if c.Title == "" && len(c.Items) == 0 {
		return ""
	}
	var b strings.Builder
	if c.Title != "" {
		b.WriteString("<h2>" + markup.EscapeHTML(c.Title) + "</h2>")
	}
	b.WriteString("<table><thead><tr><th>Package</th><th>Price</th><th>Description</th></tr></thead><tbody>")
	for _, item := range c.Items {
		b.WriteString("<tr>")
		b.WriteString("<td>" + markup.EscapeHTML(item.Name) + "</td>")
		b.WriteString("<td><strong>" + markup.EscapeHTML(item.Price) + "</strong></td>")
		b.WriteString("<td>" + markup.EscapeHTML(item.Description) + "</td>")
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

func renderFallback(sec model.Section) string {
	c := content[model.Fallback](sec)
	if c.Body == "" {
		return ""
	}
	return textFragment(sec.Title, c.Body)
}
