package cmd

import (
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"portfolio-gallery/pkg/config"
	"portfolio-gallery/pkg/handlers"
	"portfolio-gallery/pkg/services"
)

// newServeCmd creates a new command for serving the web application
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long:  `Start the web server to serve the rendered gallery pages via HTTP.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			services.InitService(cfg)
			serveWebsite(cfg)
		},
	}
}

// serveWebsite runs the web server to serve the gallery pages
func serveWebsite(cfg *config.Config) {
	fileServer := http.FileServer(http.Dir("./public"))
	http.Handle("/static/", http.StripPrefix("/static/", fileServer))
	http.HandleFunc("/feed", handlers.FeedHandler)
	http.HandleFunc("/", handlers.GalleryHandler(cfg, services.Default()))

	// Start server
	cfg.PrintServerStartMessage()
	if err := http.ListenAndServe(cfg.ServerAddress(), nil); err != nil {
		log.Printf("Server error: %v", err)
		os.Exit(1)
	}
}
