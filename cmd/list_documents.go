package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"portfolio-gallery/pkg/services"
)

// newListDocumentsCmd creates a new command for listing bucket documents
func newListDocumentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-documents",
		Short: "List item documents in the storage bucket",
		Long:  `List the JSON item documents available in the configured Cloud Storage bucket.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			services.InitService(cfg)
			listDocuments()
		},
	}
}

// listDocuments displays the JSON documents found in the bucket
func listDocuments() {
	names, err := services.ListDocuments(context.Background())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Item Documents:")
	fmt.Println("===============")
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	fmt.Printf("Total: %d documents\n", len(names))
}
