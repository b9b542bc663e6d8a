package render

import (
	"context"
	"fmt"
	"log"
	"math"
	"net/http"
	"time"

	"golang.org/x/net/html"
)

// fileGlyph decorates the start of every filename line
const fileGlyph = "⌗ "

// SizeProber issues metadata-only requests against image URLs to annotate
// filename lines with a size suffix. Probe failures are never fatal.
type SizeProber struct {
	Client *http.Client
}

// NewSizeProber returns a prober with a short per-request timeout
func NewSizeProber() *SizeProber {
	return &SizeProber{Client: &http.Client{Timeout: 10 * time.Second}}
}

// SizeSuffix issues a HEAD request against url and formats the reported
// content length as " (<n>kb)". It returns an empty string when url is empty,
// the request fails, the status is not OK, or no length is reported; failures
// are logged as warnings only.
func (p *SizeProber) SizeSuffix(ctx context.Context, url string) string {
	if url == "" {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		log.Printf("Warning: failed to build size probe for %s: %v", url, err)
		return ""
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		log.Printf("Warning: size probe failed for %s: %v", url, err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Warning: size probe for %s returned status %d", url, resp.StatusCode)
		return ""
	}
	if resp.ContentLength < 0 {
		return ""
	}

	return FormatSize(resp.ContentLength)
}

// FormatSize renders a byte count as a kilobyte suffix, e.g. " (2kb)"
func FormatSize(bytes int64) string {
	kb := int(math.Round(float64(bytes) / 1024))
	return fmt.Sprintf(" (%dkb)", kb)
}

// BuildFilenameLine builds one filename line: a fixed glyph, the de-emphasized
// base path and display name, and the size suffix when probeURL yields one.
// The probe completes before this function returns.
func (p *SizeProber) BuildFilenameLine(ctx context.Context, basePath, displayName, probeURL string) *html.Node {
	line := Element("p", Attr("class", "file-line"))
	line.AppendChild(Text(fileGlyph))

	path := Element("span", Attr("class", DimClass))
	path.AppendChild(Text(basePath))
	line.AppendChild(path)

	name := Element("span", Attr("class", DimClass))
	name.AppendChild(Text(displayName))
	line.AppendChild(name)

	if suffix := p.SizeSuffix(ctx, probeURL); suffix != "" {
		size := Element("span", Attr("class", DimClass))
		size.AppendChild(Text(suffix))
		line.AppendChild(size)
	}

	return line
}
