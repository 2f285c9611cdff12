// Package main provides the entry point for the mock interview HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "interview_agent",
	Short: "Mock Interview HTTP API Server",
	Long:  "Interview Coach runs rule-based mock interviews: it extracts skills from resumes and job descriptions, asks adaptive-difficulty questions, and scores answers with explainable heuristics via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
