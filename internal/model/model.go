package model

import "sort"

// Document is the exportable unit: an ordered collection of content sections.
type Document struct {
	ID       string
	Name     string
	Sections []Section
}

// Section is one typed content block within a document.
// Kind is open-ended: kinds without a dedicated renderer fall back to a
// best-effort text rendering downstream.
type Section struct {
	ID      string
	Kind    string
	Title   string
	Order   int
	Content Content
}

// Section kinds with dedicated renderers. Other kinds (dashboard, team,
// roadmap, ...) decode to Fallback content.
const (
	KindHero    = "hero"
	KindText    = "text"
	KindImage   = "image"
	KindTable   = "table"
	KindQuote   = "quote"
	KindPricing = "pricing"
)

// Content is the typed payload of a section. Exactly one concrete type exists
// per section kind; all fields carry safe zero defaults so renderers never
// need to re-check for missing data.
type Content interface {
	sectionContent()
}

// Hero is a document opener: big centered title with a subtitle underneath.
type Hero struct {
	Title    string
	Subtitle string
}

// Text is free-form body text. Body uses blank lines as paragraph breaks and
// single newlines as line breaks; lines starting with "-", "*" or "•" are
// bullet items.
type Text struct {
	Heading string
	Body    string
}

// Image references a picture by source. Src may be an http(s) URL, a
// site-relative path, or a base64 data URI; only data URIs are embeddable.
type Image struct {
	Src     string
	Alt     string
	Caption string
}

// Table is a titled grid. Rows may be ragged; they are rendered as-is.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Quote is an attributed pull quote.
type Quote struct {
	Body   string
	Author string
	Role   string
}

// Pricing is a titled list of priced packages.
type Pricing struct {
	Title string
	Items []PricingItem
}

// PricingItem is one row of a pricing table.
type PricingItem struct {
	Name        string
	Price       string
	Description string
}

// Fallback carries the best-effort text of a section whose kind has no
// dedicated payload shape.
type Fallback struct {
	Body string
}

func (Hero) sectionContent()     {}
func (Text) sectionContent()     {}
func (Image) sectionContent()    {}
func (Table) sectionContent()    {}
func (Quote) sectionContent()    {}
func (Pricing) sectionContent()  {}
func (Fallback) sectionContent() {}

// SortedSections returns the sections re-sorted by Order ascending, stable
// for ties. The Order field, not slice position, determines encode order.
func (d *Document) SortedSections() []Section {
	sections := make([]Section, len(d.Sections))
	copy(sections, d.Sections)
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})
	return sections
}
