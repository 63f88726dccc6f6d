package model

import (
	"reflect"
	"testing"
)

func TestSortedSections_OrderFieldWins(t *testing.T) {
	doc := &Document{
		Sections: []Section{
			{ID: "c", Order: 2},
			{ID: "a", Order: 0},
			{ID: "b", Order: 1},
		},
	}
	got := doc.SortedSections()
	ids := []string{got[0].ID, got[1].ID, got[2].ID}
	if !reflect.DeepEqual(ids, []string{"a", "b", "c"}) {
		t.Fatalf("sorted IDs = %v, want [a b c]", ids)
	}
}

func TestSortedSections_StableForTies(t *testing.T) {
	doc := &Document{
		Sections: []Section{
			{ID: "first", Order: 5},
			{ID: "second", Order: 5},
			{ID: "zero", Order: 0},
		},
	}
	got := doc.SortedSections()
	if got[1].ID != "first" || got[2].ID != "second" {
		t.Fatalf("tie order = [%s %s], want [first second]", got[1].ID, got[2].ID)
	}
}

func TestSortedSections_DoesNotMutateInput(t *testing.T) {
	doc := &Document{
		Sections: []Section{{ID: "b", Order: 1}, {ID: "a", Order: 0}},
	}
	doc.SortedSections()
	if doc.Sections[0].ID != "b" {
		t.Fatal("SortedSections mutated the document")
	}
}

func TestDecodeContent_Hero(t *testing.T) {
	c := DecodeContent(KindHero, map[string]any{"title": "Big", "subtitle": "Small"})
	hero, ok := c.(Hero)
	if !ok {
		t.Fatalf("DecodeContent() = %T, want Hero", c)
	}
	if hero.Title != "Big" || hero.Subtitle != "Small" {
		t.Fatalf("hero = %+v", hero)
	}
}

func TestDecodeContent_MissingFieldsDefault(t *testing.T) {
	c := DecodeContent(KindQuote, map[string]any{})
	quote := c.(Quote)
	if quote.Body != "" || quote.Author != "" || quote.Role != "" {
		t.Fatalf("quote = %+v, want zero value", quote)
	}
}

func TestDecodeContent_NilPayload(t *testing.T) {
	for _, kind := range []string{KindHero, KindText, KindImage, KindTable, KindQuote, KindPricing, "mystery"} {
		if c := DecodeContent(kind, nil); c == nil {
			t.Errorf("DecodeContent(%q, nil) = nil, want typed zero value", kind)
		}
	}
}

func TestDecodeContent_NumbersCoerceToStrings(t *testing.T) {
	c := DecodeContent(KindPricing, map[string]any{
		"title": "Plans",
		"items": []any{
			map[string]any{"name": "Basic", "price": float64(4900)},
		},
	})
	pricing := c.(Pricing)
	if len(pricing.Items) != 1 || pricing.Items[0].Price != "4900" {
		t.Fatalf("pricing = %+v", pricing)
	}
}

func TestDecodeContent_TableRaggedRows(t *testing.T) {
	c := DecodeContent(KindTable, map[string]any{
		"headers": []any{"A", "B", "C"},
		"rows": []any{
			[]any{"1"},
			[]any{"1", "2", "3", "4"},
			"not a row",
		},
	})
	table := c.(Table)
	if len(table.Headers) != 3 {
		t.Fatalf("headers = %v", table.Headers)
	}
	if len(table.Rows) != 2 || len(table.Rows[0]) != 1 || len(table.Rows[1]) != 4 {
		t.Fatalf("rows = %v, want ragged rows preserved", table.Rows)
	}
}

func TestDecodeContent_UnknownKindKeepsText(t *testing.T) {
	c := DecodeContent("dashboard", map[string]any{"text": "hello", "widgets": []any{"x"}})
	fb, ok := c.(Fallback)
	if !ok {
		t.Fatalf("DecodeContent() = %T, want Fallback", c)
	}
	if fb.Body != "hello" {
		t.Fatalf("fallback body = %q, want %q", fb.Body, "hello")
	}
}

func TestLoadDocument(t *testing.T) {
	data := []byte(`{
		"id": "doc-1",
		"name": "Acme Deal",
		"sections": [
			{"id": "s1", "type": "hero", "order": 0, "content": {"title": "Acme Proposal"}},
			{"type": "text", "order": 1, "content": {"text": "body"}}
		]
	}`)
	doc, err := LoadDocument(data)
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	if doc.Name != "Acme Deal" || len(doc.Sections) != 2 {
		t.Fatalf("doc = %+v", doc)
	}
	if doc.Sections[0].ID != "s1" {
		t.Fatalf("section ID = %q, want s1", doc.Sections[0].ID)
	}
	if doc.Sections[1].ID == "" {
		t.Fatal("missing section ID should be assigned a generated one")
	}
	hero, ok := doc.Sections[0].Content.(Hero)
	if !ok || hero.Title != "Acme Proposal" {
		t.Fatalf("hero content = %#v", doc.Sections[0].Content)
	}
}

func TestLoadDocument_InvalidJSON(t *testing.T) {
	if _, err := LoadDocument([]byte("{nope")); err == nil {
		t.Fatal("LoadDocument() expected error for invalid JSON")
	}
}
