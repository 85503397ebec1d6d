package main

import (
	"fmt"

	"github.com/arvhem/foyer"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of foyer",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("foyer version %s\n", foyer.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
