package htmlprint

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuanying/docxport/internal/model"
)

func mustParse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse rendered HTML: %v", err)
	}
	return doc
}

func TestRender_SelfContained(t *testing.T) {
	doc := &model.Document{Name: "Acme Deal"}
	html := Render(doc)

	parsed := mustParse(t, html)
	if got := parsed.Find("title").Text(); got != "Acme Deal" {
		t.Fatalf("title = %q, want Acme Deal", got)
	}
	if parsed.Find("style").Length() != 1 {
		t.Fatal("exactly one inline style block expected")
	}
	if parsed.Find("link, script").Length() != 0 {
		t.Fatal("rendered page must not reference external resources")
	}
}

func TestRender_Hero(t *testing.T) {
	doc := &model.Document{
		Name: "Hero",
		Sections: []model.Section{
			{Kind: model.KindHero, Content: model.Hero{Title: "Big & Bold", Subtitle: "Sub"}},
		},
	}
	parsed := mustParse(t, Render(doc))
	if got := parsed.Find("h1").Text(); got != "Big & Bold" {
		t.Fatalf("h1 = %q", got)
	}
	if got := parsed.Find("p.subtitle").Text(); got != "Sub" {
		t.Fatalf("subtitle = %q", got)
	}
}

func TestRender_TextBulletsAndBreaks(t *testing.T) {
	doc := &model.Document{
		Name: "Text",
		Sections: []model.Section{
			{Kind: model.KindText, Content: model.Text{
				Heading: "Scope",
				Body:    "line one\nline two\n\n- alpha\n- beta",
			}},
		},
	}
	html := Render(doc)
	parsed := mustParse(t, html)

	if got := parsed.Find("h2").Text(); got != "Scope" {
		t.Fatalf("h2 = %q", got)
	}
	if !strings.Contains(html, "line one<br>line two") {
		t.Fatalf("lines within a block must be br-joined: %q", html)
	}
	items := parsed.Find("ul li")
	if items.Length() != 2 {
		t.Fatalf("li count = %d, want 2", items.Length())
	}
	if got := items.First().Text(); got != "alpha" {
		t.Fatalf("first item = %q, want marker stripped", got)
	}
}

func TestRender_ImageWithCaption(t *testing.T) {
	doc := &model.Document{
		Name: "Img",
		Sections: []model.Section{
			{Kind: model.KindImage, Content: model.Image{
				Src: "https://example.com/a.png", Alt: "alt text", Caption: "Figure 1",
			}},
		},
	}
	parsed := mustParse(t, Render(doc))
	img := parsed.Find("img")
	if src, _ := img.Attr("src"); src != "https://example.com/a.png" {
		t.Fatalf("img src = %q", src)
	}
	if alt, _ := img.Attr("alt"); alt != "alt text" {
		t.Fatalf("img alt = %q", alt)
	}
	if got := parsed.Find("p.caption").Text(); got != "Figure 1" {
		t.Fatalf("caption = %q", got)
	}
}

func TestRender_Quote(t *testing.T) {
	doc := &model.Document{
		Name: "Quote",
		Sections: []model.Section{
			{Kind: model.KindQuote, Content: model.Quote{Body: "Ship it", Author: "Ada", Role: "CTO"}},
		},
	}
	parsed := mustParse(t, Render(doc))
	if got := parsed.Find("blockquote p").Text(); got != "Ship it" {
		t.Fatalf("quote body = %q", got)
	}
	if got := parsed.Find("blockquote cite").Text(); got != "— Ada, CTO" {
		t.Fatalf("cite = %q", got)
	}
}

func TestRender_PricingTable(t *testing.T) {
	doc := &model.Document{
		Name: "Pricing",
		Sections: []model.Section{
			{Kind: model.KindPricing, Content: model.Pricing{
				Title: "Investment",
				Items: []model.PricingItem{{Name: "Standard", Price: "$10,000", Description: "Core package"}},
			}},
		},
	}
	parsed := mustParse(t, Render(doc))

	headers := parsed.Find("table thead th")
	if headers.Length() != 3 {
		t.Fatalf("header count = %d, want 3", headers.Length())
	}
	if got := parsed.Find("tbody td strong").Text(); got != "$10,000" {
		t.Fatalf("price = %q, want bold $10,000", got)
	}
}

func TestRender_RaggedTableRows(t *testing.T) {
	doc := &model.Document{
		Name: "Table",
		Sections: []model.Section{
			{Kind: model.KindTable, Content: model.Table{
				Headers: []string{"A", "B", "C"},
				Rows:    [][]string{{"1"}, {"1", "2", "3", "4"}},
			}},
		},
	}
	parsed := mustParse(t, Render(doc))
	rows := parsed.Find("tbody tr")
	if rows.Length() != 2 {
		t.Fatalf("row count = %d, want 2", rows.Length())
	}
	if n := rows.First().Find("td").Length(); n != 1 {
		t.Fatalf("short row cells = %d, want 1", n)
	}
	if n := rows.Last().Find("td").Length(); n != 4 {
		t.Fatalf("long row cells = %d, want 4", n)
	}
}

func TestRender_UnknownKindFallsBackToText(t *testing.T) {
	doc := &model.Document{
		Name: "Fallback",
		Sections: []model.Section{
			{
				Kind:    "unknown-made-up-type",
				Title:   "My Title",
				Content: model.DecodeContent("unknown-made-up-type", map[string]any{"text": "hello"}),
			},
		},
	}
	parsed := mustParse(t, Render(doc))
	if got := parsed.Find("h2").Text(); got != "My Title" {
		t.Fatalf("fallback heading = %q", got)
	}
	if got := parsed.Find("section p").Text(); got != "hello" {
		t.Fatalf("fallback body = %q", got)
	}
}

func TestRender_EmptySectionsContributeNothing(t *testing.T) {
	doc := &model.Document{
		Name: "Empty",
		Sections: []model.Section{
			{Kind: model.KindHero},
			{Kind: "mystery"},
		},
	}
	parsed := mustParse(t, Render(doc))
	if n := parsed.Find("section").Length(); n != 0 {
		t.Fatalf("section count = %d, want 0 for empty fragments", n)
	}
}

func TestRender_SectionOrder(t *testing.T) {
	doc := &model.Document{
		Name: "Order",
		Sections: []model.Section{
			{Kind: model.KindText, Order: 1, Content: model.Text{Body: "SECOND"}},
			{Kind: model.KindText, Order: 0, Content: model.Text{Body: "FIRST"}},
		},
	}
	html := Render(doc)
	if strings.Index(html, "FIRST") > strings.Index(html, "SECOND") {
		t.Fatal("sections must render in Order sequence")
	}
}
