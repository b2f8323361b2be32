package main

import (
	"fmt"

	"cull/internal/discover"

	"github.com/spf13/cobra"
)

// NewScanCmd creates the scan command
func NewScanCmd() *cobra.Command {
	var (
		recurse bool
		exclude []string
	)

	cmd := &cobra.Command{
		Use:   "scan [roots...]",
		Short: "List the images a review would pick up",
		Long: `Scan runs discovery without opening the review, printing what a
review of the same roots would queue.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			roots := args
			if len(roots) == 0 {
				roots = []string{"."}
			}

			rec := cfg.Review.Recurse
			if cmd.Flags().Changed("recurse") {
				rec = recurse
			}
			excludes := cfg.Discovery.Exclude
			if cmd.Flags().Changed("exclude") {
				excludes = exclude
			}

			total := 0
			for _, root := range roots {
				images := discover.Find([]string{root}, discover.Options{Recurse: rec, Exclude: excludes})
				fmt.Printf("%s: %d images\n", root, len(images))
				for _, img := range images {
					fmt.Printf("  %s\n", img)
				}
				total += len(images)
			}
			if len(roots) > 1 {
				fmt.Printf("Total: %d images\n", total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recurse, "recurse", "r", false, "descend below the first level of each root")
	cmd.Flags().StringArrayVarP(&exclude, "exclude", "x", nil, "glob of paths to skip during discovery (repeatable)")

	return cmd
}
