package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/arvhem/foyer"
	"github.com/arvhem/foyer/pkg/routes"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the route table",
	Long:  `Lists every registered route with its page title and whether the navigation bar is shown on it.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")

		app, err := foyer.New(dir)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PATH\tPAGE\tTITLE\tNAV")
		for _, r := range app.Routes() {
			nav := "shown"
			if !routes.ShowNav(r.Path) {
				nav = "hidden"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Path, r.ID, r.Title, nav)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
