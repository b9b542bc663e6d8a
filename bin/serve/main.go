package main

import (
	"log"
	"net/http"
	"os"

	"portfolio-gallery/pkg/config"
	"portfolio-gallery/pkg/handlers"
	"portfolio-gallery/pkg/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize services
	services.InitService(cfg)

	// Set up HTTP handlers
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
