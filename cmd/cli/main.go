package main

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roboforecast",
	Short: "Robotics industry market projections",
}

func init() {
	rootCmd.AddCommand(dataCmd)
	rootCmd.AddCommand(projectionsCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)

	projectionsCmd.Flags().BoolVar(&printReport, "report", false, "Print the projection report to stdout")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
