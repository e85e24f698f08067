package main

import (
	"fmt"

	"github.com/spf13/cobra"

	portal "github.com/swdepot/go-portal"
)

var softwareCmd = &cobra.Command{
	Use:   "software",
	Short: "Browse the software catalog",
}

var softwareListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		search, _ := cmd.Flags().GetString("search")
		limit, _ := cmd.Flags().GetInt("limit")

		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		page, err := app.software.List(cmd.Context(), portal.SoftwareListParams{
			PageParams: portal.PageParams{Limit: limit},
			Category:   category,
			Search:     search,
		})
		if err != nil {
			return err
		}

		fmt.Printf("%d entries (showing %d)\n", page.Total, len(page.Items))
		for _, item := range page.Items {
			version := item.LatestVersion
			if version == "" {
				version = "-"
			}
			fmt.Printf("%6d  %-30s %-12s %s\n", item.ID, item.Name, version, item.Category)
		}
		return nil
	},
}

var softwareCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List catalog categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		names, err := app.software.Categories(cmd.Context())
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show download statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		stats, err := app.downloads.Stats(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Total downloads: %d\n", stats.TotalDownloads)
		fmt.Printf("Unique users:    %d\n", stats.UniqueUsers)
		return nil
	},
}

func init() {
	softwareListCmd.Flags().String("category", "", "filter by category")
	softwareListCmd.Flags().String("search", "", "filter by name")
	softwareListCmd.Flags().Int("limit", 20, "page size")

	softwareCmd.AddCommand(softwareListCmd, softwareCategoriesCmd)
	rootCmd.AddCommand(softwareCmd, statsCmd)
}
