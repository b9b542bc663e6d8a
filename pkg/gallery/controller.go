// Package gallery drives the page: it locates each section container in a
// parsed shell document, fetches its item list, and renders batches into the
// grid until the section is exhausted.
package gallery

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"golang.org/x/net/html"

	"portfolio-gallery/pkg/layout"
	"portfolio-gallery/pkg/models"
	"portfolio-gallery/pkg/render"
)

// Phase is a section's position in its lifecycle
type Phase int

const (
	PhaseLocating Phase = iota
	PhaseFetching
	PhaseRendering
	PhaseIdle
	PhaseExhausted
	PhaseFailed
)

// errorMessage replaces a section's content when its fetch fails
const errorMessage = "Failed to load gallery. Please try again later."

// Fetcher supplies the item list for a section
type Fetcher interface {
	FetchItems(ctx context.Context, kind models.SectionKind) ([]models.Item, error)
}

// section tracks one gallery section's items, counters and grid nodes.
// displayed only ever grows; the button node is dropped for good once the
// section is exhausted.
type section struct {
	mu        sync.Mutex
	kind      models.SectionKind
	phase     Phase
	items     []models.Item
	displayed int
	clicks    int

	container *html.Node
	content   *html.Node
	grid      *html.Node
	divider   *html.Node
	button    *html.Node
}

// Controller renders both gallery sections of a shell document
type Controller struct {
	doc         *html.Node
	fetcher     Fetcher
	renderer    *render.Renderer
	viewport    layout.Viewport
	buttonQuery string
	sections    map[models.SectionKind]*section
}

// New builds a controller over a parsed shell document. Nothing is fetched or
// rendered until Init runs.
func New(doc *html.Node, fetcher Fetcher, renderer *render.Renderer, vp layout.Viewport) *Controller {
	return &Controller{
		doc:      doc,
		fetcher:  fetcher,
		renderer: renderer,
		viewport: vp,
		sections: make(map[models.SectionKind]*section),
	}
}

// SetButtonQuery appends extra query parameters to every Load More link, so
// a follow-up request keeps its viewport selection. The string must start
// with "&", e.g. "&vw=375".
func (c *Controller) SetButtonQuery(query string) {
	c.buttonQuery = query
}

// moreHref builds the Load More link for the nth trigger
func (c *Controller) moreHref(n int) string {
	return fmt.Sprintf("?more=%d%s", n, c.buttonQuery)
}

// Init locates, fetches and renders the first batch of every section. A
// section whose container is missing is skipped; a section whose fetch fails
// shows a static error message. Sections fail independently.
func (c *Controller) Init(ctx context.Context) {
	for _, kind := range []models.SectionKind{models.KindGraphics, models.KindExperiments} {
		c.initSection(ctx, kind)
	}
}

func (c *Controller) initSection(ctx context.Context, kind models.SectionKind) {
	sec := &section{kind: kind, phase: PhaseLocating}
	c.sections[kind] = sec
	sec.mu.Lock()
	defer sec.mu.Unlock()

	sec.container = findSection(c.doc, string(kind))
	if sec.container == nil {
		// No container on this page; leave the section alone
		return
	}
	sec.content = findByClass(sec.container, "gallery-content")
	if sec.content == nil {
		return
	}

	sec.phase = PhaseFetching
	items, err := c.fetcher.FetchItems(ctx, kind)
	if err != nil {
		log.Printf("Error loading %s gallery: %v", kind, err)
		sec.fail()
		return
	}
	sec.items = items

	c.installGrid(sec)
	count := layout.InitialCount(sec.items, c.viewport, kind.DefaultColumns())
	c.renderBatch(ctx, sec, count)
}

// LoadMore renders the next batch for a section. It reports whether anything
// new was rendered; triggers on exhausted, failed or still-rendering sections
// are dropped.
func (c *Controller) LoadMore(ctx context.Context, kind models.SectionKind) bool {
	sec := c.sections[kind]
	if sec == nil {
		return false
	}

	// Held across the whole batch. A trigger racing an in-flight render is
	// dropped, not queued: clicks during Rendering are ignored.
	if !sec.mu.TryLock() {
		return false
	}
	defer sec.mu.Unlock()

	if sec.phase != PhaseIdle {
		return false
	}

	sec.clicks++
	remaining := sec.items[sec.displayed:]
	count := layout.MoreCount(remaining, c.viewport, kind.DefaultColumns())
	c.renderBatch(ctx, sec, count)
	return count > 0
}

// renderBatch renders the next count items into the grid, in order, and
// settles the section into Idle or Exhausted. A zero count exhausts the
// section without rendering. The caller holds sec.mu.
func (c *Controller) renderBatch(ctx context.Context, sec *section, count int) {
	sec.phase = PhaseRendering

	if count == 0 {
		sec.exhaust()
		return
	}

	batch := sec.items[sec.displayed : sec.displayed+count]
	for _, item := range batch {
		sec.grid.AppendChild(c.renderer.RenderItem(ctx, item, sec.kind))
	}
	sec.displayed += count

	if sec.displayed >= len(sec.items) {
		sec.exhaust()
		return
	}
	sec.button.Attr = setAttr(sec.button.Attr, "href", c.moreHref(sec.clicks+1))
	sec.phase = PhaseIdle
}

// installGrid replaces the section's placeholder content with the grid, a
// divider and the Load More button. A disclaimer block, when present, stays.
func (c *Controller) installGrid(sec *section) {
	disclaimer := findByClass(sec.content, "gallery-disclaimer")
	removeChildren(sec.content)

	sec.grid = render.Element("div", render.Attr("class", "gallery-grid"))
	sec.divider = render.Element("div", render.Attr("class", "gallery-divider"))
	sec.button = render.Element("a",
		render.Attr("class", "load-more"),
		render.Attr("href", c.moreHref(1)))
	sec.button.AppendChild(render.Text("Load More"))

	sec.content.AppendChild(sec.grid)
	sec.content.AppendChild(sec.divider)
	sec.content.AppendChild(sec.button)
	if disclaimer != nil {
		sec.content.AppendChild(disclaimer)
	}
}

// Displayed returns how many items a section has rendered
func (c *Controller) Displayed(kind models.SectionKind) int {
	sec := c.sections[kind]
	if sec == nil {
		return 0
	}
	sec.mu.Lock()
	defer sec.mu.Unlock()
	return sec.displayed
}

// PhaseOf returns a section's current phase
func (c *Controller) PhaseOf(kind models.SectionKind) Phase {
	sec := c.sections[kind]
	if sec == nil {
		return PhaseLocating
	}
	sec.mu.Lock()
	defer sec.mu.Unlock()
	return sec.phase
}

// Exhausted reports whether a section has rendered everything it has
func (c *Controller) Exhausted(kind models.SectionKind) bool {
	return c.PhaseOf(kind) == PhaseExhausted
}

// Render serializes the whole document
func (c *Controller) Render(w io.Writer) error {
	return html.Render(w, c.doc)
}

// exhaust hides the Load More button permanently
func (s *section) exhaust() {
	if s.button != nil && s.button.Parent != nil {
		s.button.Parent.RemoveChild(s.button)
	}
	s.button = nil
	s.phase = PhaseExhausted
}

// fail replaces the section content with a static error message
func (s *section) fail() {
	removeChildren(s.content)
	msg := render.Element("p", render.Attr("class", "gallery-error"))
	msg.AppendChild(render.Text(errorMessage))
	s.content.AppendChild(msg)
	s.phase = PhaseFailed
}
