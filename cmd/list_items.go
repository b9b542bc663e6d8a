package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"portfolio-gallery/pkg/layout"
	"portfolio-gallery/pkg/models"
	"portfolio-gallery/pkg/services"
)

// newListItemsCmd creates a new command for listing gallery items
func newListItemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-items",
		Short: "List all gallery items",
		Long:  `List the items of both gallery sections with their column weights.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			services.InitService(cfg)
			listItems()
		},
	}
}

// listItems displays both sections and their items
func listItems() {
	fmt.Println("Gallery Items:")
	fmt.Println("==============")

	total := 0
	for _, kind := range []models.SectionKind{models.KindGraphics, models.KindExperiments} {
		items, err := services.FetchItems(context.Background(), kind)
		if err != nil {
			fmt.Printf("Section %s: error: %v\n\n", kind, err)
			continue
		}

		fmt.Printf("Section: %s (items: %d)\n", kind, len(items))
		for i, item := range items {
			name := item.Filename
			if name == "" {
				name = item.Logo
			}
			fmt.Printf("  %d. %s (columns: %d)\n", i+1, name, layout.Weight(item, kind.DefaultColumns()))
			if item.Client != "" {
				fmt.Printf("     Client: %s\n", item.Client)
			}
			if item.Number != "" {
				fmt.Printf("     Number: %s\n", item.Number)
			}
			if item.Description != "" {
				fmt.Printf("     Description: %s\n", item.Description)
			}
		}
		total += len(items)
		fmt.Println()
	}

	fmt.Printf("Total: %d items\n", total)
}
