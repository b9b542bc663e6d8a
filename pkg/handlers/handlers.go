package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/eknkc/pug"
	"golang.org/x/net/html"

	"portfolio-gallery/pkg/config"
	"portfolio-gallery/pkg/gallery"
	"portfolio-gallery/pkg/layout"
	"portfolio-gallery/pkg/models"
	"portfolio-gallery/pkg/render"
	"portfolio-gallery/pkg/services"
)

// DefaultViewportWidth is assumed when the request does not report one
const DefaultViewportWidth = 1280

// PageOptions selects what one page render shows
type PageOptions struct {
	// Clicks is how many Load More triggers to replay after the initial batch
	Clicks int
	// ViewportWidth selects the mobile or desktop batch policy
	ViewportWidth int
}

// RenderPage compiles the page shell, runs the gallery controller over it and
// writes the resulting HTML. With the pipeline disabled the shell is written
// untouched, placeholders and all.
func RenderPage(ctx context.Context, w io.Writer, cfg *config.Config, fetcher gallery.Fetcher, opts PageOptions) error {
	template, err := pug.CompileFile("./views/index.pug", pug.Options{})
	if err != nil {
		return fmt.Errorf("failed to compile page shell: %v", err)
	}

	var shell bytes.Buffer
	if err := template.Execute(&shell, nil); err != nil {
		return fmt.Errorf("failed to execute page shell: %v", err)
	}

	doc, err := html.Parse(&shell)
	if err != nil {
		return fmt.Errorf("failed to parse page shell: %v", err)
	}

	if cfg.Disabled {
		log.Println("Gallery pipeline disabled; rendering shell only")
		return html.Render(w, doc)
	}

	width := opts.ViewportWidth
	if width == 0 {
		width = DefaultViewportWidth
	}

	controller := gallery.New(doc, fetcher, render.NewRenderer(cfg.BaseURL), layout.ClassifyViewport(width))
	if opts.ViewportWidth != 0 {
		// Load More links must carry the reported viewport, or the
		// follow-up request falls back to the desktop batch policy
		controller.SetButtonQuery(fmt.Sprintf("&vw=%d", opts.ViewportWidth))
	}
	controller.Init(ctx)
	for i := 0; i < opts.Clicks; i++ {
		controller.LoadMore(ctx, models.KindGraphics)
		controller.LoadMore(ctx, models.KindExperiments)
	}

	return controller.Render(w)
}

// GalleryHandler handles requests for the gallery page
func GalleryHandler(cfg *config.Config, fetcher gallery.Fetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Println("Generating gallery page")

		opts := PageOptions{
			Clicks:        queryInt(r, "more"),
			ViewportWidth: queryInt(r, "vw"),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := RenderPage(r.Context(), w, cfg, fetcher, opts); err != nil {
			log.Printf("Page render error: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
	}
}

// FeedHandler handles requests for the gallery feed (JSON)
func FeedHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Generating feed")

	feed, err := services.GetFeed(r.Context())
	if err != nil {
		log.Printf("Feed error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(feed); err != nil {
		log.Printf("Feed encode error: %v", err)
	}
}

// queryInt reads a non-negative integer query parameter, zero when absent or
// malformed
func queryInt(r *http.Request, key string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || value < 0 {
		return 0
	}
	return value
}
