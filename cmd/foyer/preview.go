package main

import (
	"fmt"
	"os"

	"github.com/arvhem/foyer"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var previewCmd = &cobra.Command{
	Use:   "preview <page-id>",
	Short: "Render a page's Markdown in the terminal",
	Long:  `Renders the body of a page document in the terminal. When stdout is not a terminal the raw Markdown is printed instead.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPreview(cmd, args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, id string) error {
	dir, _ := cmd.Flags().GetString("dir")

	app, err := foyer.New(dir)
	if err != nil {
		return err
	}

	source, err := app.PageSource(id)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(source)
		return nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	out, err := r.Render(source)
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	fmt.Print(out)
	return nil
}
