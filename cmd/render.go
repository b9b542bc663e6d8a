package cmd

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"

	"portfolio-gallery/pkg/handlers"
	"portfolio-gallery/pkg/services"
)

// newRenderCmd creates a new command for one-shot static page rendering
func newRenderCmd() *cobra.Command {
	var (
		outputPath    string
		clicks        int
		viewportWidth int
	)

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render the gallery page once",
		Long: `Render the gallery page to a file or standard output. The --more flag
replays that many Load More triggers after the initial batch; --width selects
the mobile or desktop batch policy.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			services.InitService(cfg)

			out := os.Stdout
			if outputPath != "" {
				file, err := os.Create(outputPath)
				if err != nil {
					log.Fatalf("Failed to create %s: %v", outputPath, err)
				}
				defer file.Close()
				out = file
			}

			opts := handlers.PageOptions{Clicks: clicks, ViewportWidth: viewportWidth}
			if err := handlers.RenderPage(context.Background(), out, cfg, services.Default(), opts); err != nil {
				log.Fatalf("Render failed: %v", err)
			}
		},
	}

	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the page to this file instead of stdout")
	renderCmd.Flags().IntVar(&clicks, "more", 0, "Replay this many Load More triggers")
	renderCmd.Flags().IntVar(&viewportWidth, "width", handlers.DefaultViewportWidth, "Viewport width used for batch sizing")

	return renderCmd
}
