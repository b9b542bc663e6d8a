package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"portfolio-gallery/pkg/config"
)

// Configuration flags
var (
	baseURL    string
	bucketName string
	portNumber string
	disabled   bool
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "portfolio-gallery",
		Short: "Portfolio Gallery renders paginated image gallery pages",
		Long: `Portfolio Gallery is a command line application that fetches gallery item
documents (graphics and experiments), renders them into paginated HTML
gallery pages, and can serve the result via a web interface.`,
	}

	// Define persistent flags that will be available for all commands
	rootCmd.PersistentFlags().StringVarP(&baseURL, "base-url", "u", "", "Set the BASE_URL (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&bucketName, "bucket", "b", "", "Set the BUCKET_NAME (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&portNumber, "port", "p", "", "Set the PORT (overrides environment variable)")
	rootCmd.PersistentFlags().BoolVar(&disabled, "disabled", false, "Disable the fetch/render pipeline (sections keep their placeholders)")

	// Add commands to root
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newListItemsCmd())
	rootCmd.AddCommand(newListDocumentsCmd())
	rootCmd.AddCommand(newExportCmd())

	return rootCmd
}

// LoadConfig loads configuration with respect to command line flags
func LoadConfig() (*config.Config, error) {
	// Set environment variables from flags if provided
	if baseURL != "" {
		os.Setenv("BASE_URL", baseURL)
	}

	if bucketName != "" {
		os.Setenv("BUCKET_NAME", bucketName)
	}

	if portNumber != "" {
		os.Setenv("PORT", portNumber)
	}

	if disabled {
		os.Setenv("GALLERY_DISABLED", "1")
	}

	// Load configuration from environment variables (potentially set above)
	return config.Load()
}
