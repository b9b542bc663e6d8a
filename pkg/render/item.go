package render

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"portfolio-gallery/pkg/layout"
	"portfolio-gallery/pkg/models"
)

// Image path prefixes, relative to the base URL
const (
	WorkImagePrefix = "/images/work/"
	LabImagePrefix  = "/images/lab/"
	LogoPrefix      = "/images/logos/"
)

// lazyPlaceholder holds an img element's src until the page script promotes
// the real source from data-src on visibility.
const lazyPlaceholder = "data:image/gif;base64,R0lGODlhAQABAIAAAAAAAP///yH5BAEAAAAALAAAAAABAAEAAAIBRAA7"

// numberRegexp matches the leading <letters>-<digits> token of an experiment
// filename, e.g. "G-002" in "G-002.png".
var numberRegexp = regexp.MustCompile(`^[A-Za-z]+-[0-9]+`)

// Renderer builds one grid cell per gallery item
type Renderer struct {
	Prober *SizeProber
	// BaseURL prefixes probe URLs; image attributes stay relative
	BaseURL string
}

// NewRenderer returns a renderer probing sizes against baseURL
func NewRenderer(baseURL string) *Renderer {
	return &Renderer{Prober: NewSizeProber(), BaseURL: baseURL}
}

// RenderItem builds the cell for an item of the given section kind. The
// item's size probe completes before RenderItem returns, so rendering a batch
// in a plain loop keeps captions in source order.
func (r *Renderer) RenderItem(ctx context.Context, item models.Item, kind models.SectionKind) *html.Node {
	if kind == models.KindExperiments {
		return r.renderExperiment(ctx, item)
	}
	return r.renderGraphic(ctx, item)
}

func (r *Renderer) renderGraphic(ctx context.Context, item models.Item) *html.Node {
	cell := newCell(layout.Weight(item, models.KindGraphics.DefaultColumns()))
	alt := graphicAltText(item)

	switch {
	case item.Logo != "":
		// Logos load eagerly and are never size-probed
		cell.AppendChild(Element("img",
			Attr("src", LogoPrefix+item.Logo),
			Attr("alt", alt)))
	case item.Filename != "":
		cell.AppendChild(lazyImage(WorkImagePrefix+item.Filename, alt))
	}

	caption := Element("div", Attr("class", "caption"))
	if line := BuildCaption(item.Client, item.Description, "client"); line != nil {
		caption.AppendChild(line)
	}
	if item.Filename != "" {
		caption.AppendChild(r.Prober.BuildFilenameLine(ctx,
			WorkImagePrefix, item.Filename, r.BaseURL+WorkImagePrefix+item.Filename))
	}
	cell.AppendChild(caption)

	return cell
}

func (r *Renderer) renderExperiment(ctx context.Context, item models.Item) *html.Node {
	cell := newCell(layout.Weight(item, models.KindExperiments.DefaultColumns()))

	number := item.Number
	displayName := item.Filename
	if number == "" && item.Filename != "" {
		number, displayName = DeriveExperimentNames(item.Filename)
	}
	alt := experimentAltText(number, item)

	if item.Filename != "" {
		cell.AppendChild(lazyImage(LabImagePrefix+item.Filename, alt))
	}

	caption := Element("div", Attr("class", "caption"))
	if line := BuildCaption(number, item.Description, "number"); line != nil {
		caption.AppendChild(line)
	}
	if item.Filename != "" {
		caption.AppendChild(r.Prober.BuildFilenameLine(ctx,
			LabImagePrefix, displayName, r.BaseURL+LabImagePrefix+item.Filename))
	}
	cell.AppendChild(caption)

	return cell
}

// DeriveExperimentNames extracts an item number and a shortened display name
// from an experiment filename: "G-002.png" yields ("G-002", "002.png").
// Filenames without a leading <letters>-<digits> token come back unchanged
// with an empty number.
func DeriveExperimentNames(filename string) (number, displayName string) {
	base := filename
	if dot := strings.IndexByte(filename, '.'); dot >= 0 {
		base = filename[:dot]
	}
	number = numberRegexp.FindString(base)
	if number == "" {
		return "", filename
	}
	prefix := number[:strings.IndexByte(number, '-')+1]
	return number, strings.TrimPrefix(filename, prefix)
}

func graphicAltText(item models.Item) string {
	switch {
	case item.Client != "" && item.Description != "":
		return item.Client + " - " + item.Description
	case item.Client != "":
		return item.Client
	case item.Description != "":
		return item.Description
	default:
		return item.Filename
	}
}

func experimentAltText(number string, item models.Item) string {
	upper := strings.ToUpper(number)
	switch {
	case upper != "" && item.Description != "":
		return upper + " - " + item.Description
	case upper != "":
		return upper
	case item.Description != "":
		return item.Description
	default:
		return item.Filename
	}
}

func newCell(columns int) *html.Node {
	return Element("div", Attr("class", fmt.Sprintf("gallery-item cols-%d", columns)))
}

func lazyImage(path, alt string) *html.Node {
	return Element("img",
		Attr("class", "lazy"),
		Attr("src", lazyPlaceholder),
		Attr("data-src", path),
		Attr("alt", alt))
}
