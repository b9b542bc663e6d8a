package models

// SectionKind identifies which of the two gallery sections an item belongs to.
type SectionKind string

const (
	// KindGraphics is the client work gallery
	KindGraphics SectionKind = "graphics"
	// KindExperiments is the lab experiments gallery
	KindExperiments SectionKind = "experiments"
)

// DefaultColumns returns the column weight used for items of this kind that
// carry no explicit columns value.
func (k SectionKind) DefaultColumns() int {
	if k == KindExperiments {
		return 2
	}
	return 1
}

// DocumentPath returns the fixed path of the JSON document for this kind,
// relative to the configured base URL.
func (k SectionKind) DocumentPath() string {
	if k == KindExperiments {
		return "/data/experiments.json"
	}
	return "/data/graphics.json"
}

// Item describes one gallery entry as fetched from the JSON documents.
// All fields are optional; items are never mutated after decoding.
type Item struct {
	Filename    string `json:"filename,omitempty"`
	Client      string `json:"client,omitempty"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
	Number      string `json:"number,omitempty"`
	Columns     int    `json:"columns,omitempty"`
}

// Document is the wire shape of a fetched gallery section
type Document struct {
	Items []Item `json:"items"`
}

// Feed is the JSON export shape: both sections keyed by kind
type Feed struct {
	Graphics    []Item `json:"graphics"`
	Experiments []Item `json:"experiments"`
}
