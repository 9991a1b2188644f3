package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvarela/cv-alchemist/internal/render"
	"github.com/mvarela/cv-alchemist/internal/templates"
)

var (
	renderTemplate string
	renderOutput   string
	renderTitle    string
)

var renderCmd = &cobra.Command{
	Use:   "render <cv-text-file>",
	Short: "Render a CV text file to a styled PDF",
	Long: `Render generated CV text to PDF with one of the visual templates
(classic, modern, minimal, creative). Requires Chrome or Chromium.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderTemplate, "template", templates.DefaultName, "Visual template name")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "cv.pdf", "Output PDF path")
	renderCmd.Flags().StringVar(&renderTitle, "title", "CV", "Document title")
	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read CV text: %w", err)
	}

	renderer := &render.Renderer{
		ChromePath: os.Getenv("CHROME_PATH"),
		Timeout:    2 * time.Minute,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	pdf, err := renderer.RenderPDF(ctx, string(content), templates.Get(renderTemplate), renderTitle)
	if err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}

	if err := os.WriteFile(renderOutput, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	fmt.Printf("Wrote %s (%d bytes, template %s)\n", renderOutput, len(pdf), templates.Get(renderTemplate).DisplayName)
	return nil
}
