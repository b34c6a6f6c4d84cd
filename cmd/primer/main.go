package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/goliatone/go-enum-primer"
	"github.com/goliatone/go-enum-primer/internal/demo"
	"github.com/goliatone/go-enum-primer/internal/logging"
	"github.com/goliatone/go-enum-primer/pkg/interfaces"
)

func main() {
	var (
		docsDir    = flag.String("docs-dir", "docs", "Path to the lesson Markdown root")
		filePath   = flag.String("file", "enumerated-types.md", "Lesson file to preview (relative to the docs root)")
		renderHTML = flag.Bool("render-html", true, "Render the lesson body into HTML as part of the preview")
		runDemos   = flag.Bool("run-demos", true, "Execute the lesson's worked examples after the preview")
		logLevel   = flag.String("log-level", "info", "Logging level (trace, debug, info, warn, error, fatal)")
		logFormat  = flag.String("log-format", "console", "Logging format (json, console, pretty)")
	)

	flag.Parse()

	cfg := primer.DefaultConfig()
	cfg.DocsDir = *docsDir
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat

	p, err := primer.New(cfg)
	if err != nil {
		log.Fatalf("bootstrap primer: %v", err)
	}

	ctx := context.Background()
	runID := uuid.NewString()

	docLogger := logging.WithFields(p.MarkdownLogger(), map[string]any{"run_id": runID})

	doc, err := p.Docs().Load(ctx, *filePath, interfaces.LoadOptions{})
	if err != nil {
		docLogger.Error("lesson.load.failed", "error", err)
		os.Exit(1)
	}
	docLogger.Info("lesson.loaded", "path", doc.FilePath, "slug", doc.FrontMatter.Slug)

	fmt.Fprintf(os.Stdout, "Path: %s\nChecksum: %x\n\n", doc.FilePath, doc.Checksum)

	if doc.FrontMatter.Raw != nil {
		frontmatter, err := json.MarshalIndent(doc.FrontMatter.Raw, "", "  ")
		if err == nil {
			fmt.Fprintf(os.Stdout, "Frontmatter:\n%s\n\n", frontmatter)
		}
	}

	if *renderHTML {
		fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", string(doc.BodyHTML))
	} else {
		fmt.Fprintf(os.Stdout, "Markdown Body:\n%s\n", string(doc.Body))
	}

	if !*runDemos {
		return
	}

	demoLogger := logging.WithFields(p.DemoLogger(), map[string]any{"run_id": runID})

	fmt.Fprintln(os.Stdout, "--- Example 1: report categories ---")
	noiseHandler := demo.NewNoiseReportHandler(os.Stdout, demoLogger)
	err = noiseHandler.Execute(ctx, demo.NoiseReportCommand{
		Title: "Night shift",
		Readings: map[string]float64{
			"ambient":    38.2,
			"peak":       71.5,
			"average":    46.9,
			"background": 33.1,
		},
	})
	if err != nil {
		demoLogger.Error("demo.noise_report.failed", "error", err)
		os.Exit(1)
	}

	// The lesson's motivating defect: the same report built from a typo'd raw
	// key fails loudly instead of rendering an unlabelled row.
	err = noiseHandler.Execute(ctx, demo.NoiseReportCommand{
		Readings: map[string]float64{"ambiant": 38.2},
	})
	if err != nil {
		demoLogger.Warn("demo.noise_report.typo_rejected", "error", err)
	}

	fmt.Fprintln(os.Stdout, "--- Example 2: membership checks ---")
	boatHandler := demo.NewBoatGreetingHandler(os.Stdout, demoLogger)
	rosters := []demo.BoatGreetingCommand{
		{Class: "Sloop", Passengers: []string{"Mary Read", "Blackbeard"}},
		{Class: "Brigantine", Passengers: []string{"Anne Bonny", "Mary Read"}},
		{Class: "Dinghy", Passengers: []string{"Israel Hands"}},
	}
	for _, roster := range rosters {
		if err := boatHandler.Execute(ctx, roster); err != nil {
			demoLogger.Error("demo.boat_greeting.failed", "error", err)
			os.Exit(1)
		}
	}
}
