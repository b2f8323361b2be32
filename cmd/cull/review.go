package main

import (
	"fmt"

	"cull/internal/discover"
	"cull/internal/keymap"
	"cull/internal/log"
	"cull/internal/review"
	"cull/internal/tui"

	"github.com/spf13/cobra"
)

// NewReviewCmd creates the review command
func NewReviewCmd() *cobra.Command {
	var (
		binds   []string
		output  string
		recurse bool
		exclude []string
	)

	cmd := &cobra.Command{
		Use:   "review [roots...]",
		Short: "Review images one at a time and write a move script",
		Long: `Review walks the given roots for images and shows them one at a time.
Single keys log decisions: space skips, d deletes, r renames, and any
bound key files the image into its directory. Nothing touches the disk
until you run the script written with w.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			roots := args
			if len(roots) == 0 {
				roots = []string{"."}
			}

			out := cfg.Review.Output
			if cmd.Flags().Changed("output") {
				out = output
			}
			rec := cfg.Review.Recurse
			if cmd.Flags().Changed("recurse") {
				rec = recurse
			}
			excludes := cfg.Discovery.Exclude
			if cmd.Flags().Changed("exclude") {
				excludes = exclude
			}

			// Bind flags replace the configured bindings wholesale; a
			// partial merge would silently mix binding sets.
			pairs := cfg.BindingPairs()
			if len(binds) > 0 {
				var err error
				pairs, err = keymap.ParseSpecs(binds)
				if err != nil {
					return err
				}
			}

			bindings, create, err := keymap.Resolve(pairs)
			if err != nil {
				return err
			}

			images := discover.Find(roots, discover.Options{Recurse: rec, Exclude: excludes})
			if len(images) == 0 {
				fmt.Println("No images found, nothing to review.")
				return nil
			}

			log.LogWithFields(
				log.F("images", len(images)),
				log.F("bindings", len(bindings)),
				log.F("output", out),
			).Info("Starting review")

			session := review.New(images, bindings, create, out)
			return tui.Run(session)
		},
	}

	cmd.Flags().StringArrayVarP(&binds, "bind", "b", nil, "bind a key to a destination directory, as key=dir (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "path of the shell script to write")
	cmd.Flags().BoolVarP(&recurse, "recurse", "r", false, "descend below the first level of each root")
	cmd.Flags().StringArrayVarP(&exclude, "exclude", "x", nil, "glob of paths to skip during discovery (repeatable)")

	return cmd
}
