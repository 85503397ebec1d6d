package main

import (
	"fmt"
	"os"

	"github.com/arvhem/foyer"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check the content directory for consistency",
	Long:  `Loads every page document and reports malformed front matter, missing fields, or duplicate paths.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return err
		}
	}

	// Loading performs the full validation pass: front matter, required
	// fields, markdown rendering, and route table construction.
	app, err := foyer.New(dir)
	if err != nil {
		return err
	}

	fmt.Printf("Content is valid: %d pages ✅\n", len(app.Routes()))
	return nil
}
