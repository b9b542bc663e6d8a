package config

import (
	"errors"
	"fmt"
	"os"
)

// Config holds all configuration for the application
type Config struct {
	// BaseURL is where the gallery JSON documents and images are served from
	BaseURL string
	// BucketName, when set, switches item fetching to a Cloud Storage bucket
	BucketName string
	Port       string
	// Disabled turns off the whole fetch/render pipeline; sections keep
	// their placeholder markup.
	Disabled bool
}

// ErrBaseURLNotSet is returned when the BASE_URL environment variable is not set
var ErrBaseURLNotSet = errors.New("BASE_URL environment variable not set")

// Load loads configuration from environment variables
func Load() (*Config, error) {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" && os.Getenv("BUCKET_NAME") == "" {
		return nil, ErrBaseURLNotSet
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		BaseURL:    baseURL,
		BucketName: os.Getenv("BUCKET_NAME"),
		Port:       port,
		Disabled:   os.Getenv("GALLERY_DISABLED") != "",
	}, nil
}

// ServerAddress returns the server address with port
func (c *Config) ServerAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// PrintServerStartMessage prints a message when the server starts
func (c *Config) PrintServerStartMessage() {
	fmt.Printf("Starting server at port %s\n", c.Port)
	fmt.Printf("Gallery URL: http://localhost:%s/\n", c.Port)
	fmt.Printf("Feed URL: http://localhost:%s/feed\n", c.Port)
}
