package model

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// The upstream editor stores section content as free-form JSON whose shape
// depends on the section kind. Decoding is deliberately forgiving: missing or
// mistyped fields become empty values here, so renderers operate on fully
// typed payloads and never deal with absent data themselves.

type jsonDocument struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Sections []jsonSection `json:"sections"`
}

type jsonSection struct {
	ID      string         `json:"id"`
	Type    string         `json:"type"`
	Title   string         `json:"title"`
	Order   int            `json:"order"`
	Content map[string]any `json:"content"`
}

// LoadDocument decodes a document from its JSON representation. Only the
// top-level structure can fail to decode; section content is coerced field by
// field with safe defaults. Sections without an ID are assigned a fresh UUID.
func LoadDocument(data []byte) (*Document, error) {
	var jd jsonDocument
	if err := json.Unmarshal(data, &jd); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	doc := &Document{
		ID:       jd.ID,
		Name:     jd.Name,
		Sections: make([]Section, 0, len(jd.Sections)),
	}
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}

	for _, js := range jd.Sections {
		id := js.ID
		if id == "" {
			id = uuid.NewString()
		}
		doc.Sections = append(doc.Sections, Section{
			ID:      id,
			Kind:    js.Type,
			Title:   js.Title,
			Order:   js.Order,
			Content: DecodeContent(js.Type, js.Content),
		})
	}

	return doc, nil
}

// DecodeContent converts an open key-value payload into the typed content
// for the given section kind. Unknown kinds keep their "text" field, if any,
// as Fallback content. A nil payload decodes to an all-defaults value.
func DecodeContent(kind string, raw map[string]any) Content {
	switch kind {
	case KindHero:
		return Hero{
			Title:    str(raw, "title"),
			Subtitle: str(raw, "subtitle"),
		}
	case KindText:
		return Text{
			Heading: str(raw, "heading"),
			Body:    str(raw, "text"),
		}
	case KindImage:
		return Image{
			Src:     str(raw, "src"),
			Alt:     str(raw, "alt"),
			Caption: str(raw, "caption"),
		}
	case KindTable:
		return Table{
			Title:   str(raw, "title"),
			Headers: strs(raw, "headers"),
			Rows:    rows(raw, "rows"),
		}
	case KindQuote:
		return Quote{
			Body:   str(raw, "text"),
			Author: str(raw, "author"),
			Role:   str(raw, "role"),
		}
	case KindPricing:
		return Pricing{
			Title: str(raw, "title"),
			Items: pricingItems(raw, "items"),
		}
	default:
		return Fallback{Body: str(raw, "text")}
	}
}

// str reads a string field, stringifying numbers and booleans. Anything else
// becomes the empty string.
func str(raw map[string]any, key string) string {
	if raw == nil {
		return ""
	}
	switch v := raw[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func strs(raw map[string]any, key string) []string {
	if raw == nil {
		return nil
	}
	list, ok := raw[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, anyToStr(item))
	}
	return out
}

func rows(raw map[string]any, key string) [][]string {
	if raw == nil {
		return nil
	}
	list, ok := raw[key].([]any)
	if !ok {
		return nil
	}
	out := make([][]string, 0, len(list))
	for _, item := range list {
		cells, ok := item.([]any)
		if !ok {
			continue
		}
		row := make([]string, 0, len(cells))
		for _, cell := range cells {
			row = append(row, anyToStr(cell))
		}
		out = append(out, row)
	}
	return out
}

func pricingItems(raw map[string]any, key string) []PricingItem {
	if raw == nil {
		return nil
	}
	list, ok := raw[key].([]any)
	if !ok {
		return nil
	}
	out := make([]PricingItem, 0, len(list))
	for _, item := range list {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, PricingItem{
			Name:        str(fields, "name"),
			Price:       str(fields, "price"),
			Description: str(fields, "description"),
		})
	}
	return out
}

func anyToStr(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
