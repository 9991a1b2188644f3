// Package main provides the entry point for the CV Alchemist CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_alchemist",
	Short: "CV Alchemist HTTP API server and CLI",
	Long:  "CV Alchemist turns a base CV into a master CV, job-targeted CVs, LinkedIn content and ATS compatibility reports, and exports styled PDF documents.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
