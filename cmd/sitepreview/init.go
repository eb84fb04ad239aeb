package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DelanoJo/sitepreview/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter site into a directory",
	Long: `init writes a minimal previewable site — an index page, an example
markdown page, a default layout, and a _config.yml — into the given
directory (default "."). Existing files are never overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		if err := scaffold.Generate(dir); err != nil {
			return err
		}
		fmt.Printf("Starter site written to %s. Run `sitepreview %s` to preview it.\n", dir, dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
