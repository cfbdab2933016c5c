// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/jeranaias/markings/internal/config"
	"github.com/jeranaias/markings/internal/controls"
	"github.com/jeranaias/markings/internal/marking"
	"github.com/jeranaias/markings/internal/parser"
	"github.com/jeranaias/markings/internal/vocab"
)

// parseResult is the JSON shape for parse/portion output.
type parseResult struct {
	Input          string   `json:"input"`
	Valid          bool     `json:"valid"`
	Classification string   `json:"classification,omitempty"`
	Type           string   `json:"type,omitempty"`
	Errors         []string `json:"errors,omitempty"`
}

func loadConfig(path string) *config.Config {
	if path == "" {
		resolved, err := config.DefaultPath()
		if err != nil {
			return config.Default()
		}
		path = resolved
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v; using default configuration\n", err)
		return config.Default()
	}
	return cfg
}

// HandleParse handles "markctl parse <banner text>".
func HandleParse(args Args) {
	runParse(args, parser.ParseBanner)
}

// HandlePortion handles "markctl portion <portion text>".
func HandlePortion(args Args) {
	runParse(args, parser.ParsePortion)
}

func runParse(args Args, parse func(string) (marking.Marking, error)) {
	cfg := loadConfig(args.ConfigPath)
	m, err := parse(args.Text)

	result := parseResult{Input: args.Text}
	if err != nil {
		result.Valid = false
		var invalid *marking.InvalidMarking
		if errors.As(err, &invalid) {
			for _, ve := range invalid.Errors {
				result.Errors = append(result.Errors, citedError(cfg, ve))
			}
			if len(result.Errors) == 0 {
				result.Errors = []string{invalid.Message}
			}
		} else {
			result.Errors = []string{err.Error()}
		}
	} else {
		result.Valid = true
		result.Classification = m.Classification().String()
		result.Type = m.Type().String()
	}

	if args.JSON || cfg.Output.Format == "json" {
		printJSON(result)
		return
	}

	if result.Valid {
		fmt.Printf("valid: %s (%s)\n", result.Classification, result.Type)
		return
	}
	fmt.Println("invalid:")
	for _, e := range result.Errors {
		fmt.Println("  " + e)
	}
	os.Exit(1)
}

// citedError rewrites a ValidationError's citation through the config's
// per-paragraph overrides before rendering it.
func citedError(cfg *config.Config, ve marking.ValidationError) string {
	ve.Paragraph = cfg.CitationOverride(ve.Paragraph)
	return ve.Error()
}

// HandleBanner handles "markctl banner <banner text>": renders a
// colorized banner line for terminals that support ANSI color.
func HandleBanner(args Args) {
	m, err := parser.ParseBanner(args.Text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(RenderBanner(m))
}

// HandleRenderAea handles "markctl render-aea <category> [-N] [-SIGMA n...]".
func HandleRenderAea(args Args) {
	category, ok := vocab.AeaTypeByPrefix(args.Category)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown AEA category %q\n", args.Category)
		os.Exit(1)
	}

	m := controls.AeaMarking{Category: category}
	for i := 0; i < len(args.Raw); i++ {
		switch args.Raw[i] {
		case "-N":
			m.CNWDI = true
		case "-SIGMA", "-SG":
			for j := i + 1; j < len(args.Raw); j++ {
				n, err := strconv.Atoi(args.Raw[j])
				if err != nil {
					break
				}
				m.Sigmas = append(m.Sigmas, n)
				i = j
			}
		}
	}

	fmt.Println(m.Render())
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}
