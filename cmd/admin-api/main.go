package main

import (
	"log"

	"github.com/spf13/cobra"
)

// @title        Shop Admin API
// @version      1.0
// @description  Store administration backend: stores, billboards, categories, colours, sizes, products and dashboard metrics.
// @BasePath     /api
func main() {
	root := &cobra.Command{
		Use:          "admin-api",
		Short:        "Store administration backend",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCommand(), newMigrateCommand())
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
