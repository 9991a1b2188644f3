package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvarela/cv-alchemist/internal/ats"
	"github.com/mvarela/cv-alchemist/internal/config"
	"github.com/mvarela/cv-alchemist/internal/llm"
	"github.com/mvarela/cv-alchemist/internal/observability"
	"github.com/mvarela/cv-alchemist/internal/prompts"
)

var (
	analyzeJobFile string
	analyzeDetails bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <cv-text-file>",
	Short: "Run an ATS compatibility analysis on a CV text file",
	Long: `Analyze a CV against applicant tracking system criteria, optionally
matched to a job description, and print the scored report.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeJobFile, "job", "", "Path to a job description text file")
	analyzeCmd.Flags().BoolVar(&analyzeDetails, "details", false, "Print the per-criterion breakdown")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	cvText, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read CV text: %w", err)
	}

	var jobText string
	if analyzeJobFile != "" {
		data, err := os.ReadFile(analyzeJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		jobText = string(data)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if !cfg.HasProviderKey() {
		return fmt.Errorf("set OPENAI_API_KEY or GEMINI_API_KEY to run the analysis")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	generator := llm.NewGenerator(cfg.LLM(), logger)
	defer func() { _ = generator.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	prompt := prompts.BuildATSAnalysis(string(cvText), jobText)
	out := generator.Generate(ctx, prompt, llm.Options{})
	if out.Failed() {
		return fmt.Errorf("%s", out.Text)
	}

	analysis := ats.Parse(out.Text)
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintATSAnalysis(analysis)
	if analyzeDetails {
		printer.PrintDetails(analysis)
	}

	if !analysis.Sections.Score {
		fmt.Fprintln(os.Stderr, "warning: the reply did not include a parseable score; showing raw defaults")
	}
	return nil
}
