// Package main provides the normalizer command-line tool for cleaning a raw
// catalog CSV into typed, analysis-ready columns.
package main

import (
	"flag"
	"fmt"
	"os"

	"catalogclean/internal/config"
	"catalogclean/internal/logger"
	"catalogclean/internal/pipeline"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	inputPath := flag.String("input", "", "Path to raw input CSV (overrides input.path)")
	outputPath := flag.String("output", "", "Path to cleaned output CSV (overrides output.path)")
	reportPath := flag.String("report", "", "Path to markdown summary (overrides output.report_path)")
	quiet := flag.Bool("quiet", false, "Do not print the summary to stdout")
	verbose := flag.Bool("verbose", false, "Log at debug level regardless of logging.level")
	saveConfig := flag.String("save-config", "", "Write the effective configuration to this YAML file and exit")
	flag.Parse()

	cfg := config.DefaultConfig()

	if *configFile != "" {
		loaded, err := config.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "normalizer: %v\n", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	if *inputPath != "" {
		cfg.Input.Path = *inputPath
	}

	if *outputPath != "" {
		cfg.Output.Path = *outputPath
	}

	if *reportPath != "" {
		cfg.Output.ReportPath = *reportPath
	}

	if *saveConfig != "" {
		if err := cfg.SaveConfig(*saveConfig); err != nil {
			fmt.Fprintf(os.Stderr, "normalizer: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Configuration saved to: %s\n", *saveConfig)
		os.Exit(0)
	}

	if cfg.Input.Path == "" || cfg.Output.Path == "" {
		fmt.Println("Usage: normalizer -input <raw.csv> -output <clean.csv> [-config <file.yaml>] [-report <summary.md>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	log := logger.New(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	if *verbose {
		log.SetLevel("debug")
	}

	res, err := pipeline.Run(cfg, log)
	if err != nil {
		log.Error("cleaning failed", "error", err)
		os.Exit(1)
	}

	if !*quiet {
		fmt.Print(res.Summary.Markdown())
	}

	fmt.Printf("Cleaning complete! Saved to: %s\n", res.OutputPath)
}
