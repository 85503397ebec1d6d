package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "foyer",
	Short: "Foyer is a server-rendered application shell",
	Long:  `Foyer serves a small web application shell: a route table of pages, a navigation bar hidden on the home path, and a footer on every page. Pages are Markdown files with YAML front matter.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", "", "Content directory (empty serves the embedded default pages)")
}
