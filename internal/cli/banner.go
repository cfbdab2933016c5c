// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli renders parsed markings for markctl: a colorized banner
// line, adapted from the teacher's GetSecurityBannerStyle/RenderTopBanner
// (internal/security/classification.go), and plain-text/JSON result
// dumps for the parse subcommands.
package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/markings/internal/marking"
	"github.com/jeranaias/markings/internal/vocab"
)

var levelColor = map[vocab.ClassificationLevel]lipgloss.Color{
	vocab.Unclassified: lipgloss.Color("#00FF00"),
	vocab.Restricted:   lipgloss.Color("#808000"),
	vocab.Confidential: lipgloss.Color("#0000FF"),
	vocab.Secret:       lipgloss.Color("#FF0000"),
	vocab.TopSecret:    lipgloss.Color("#FFA500"),
}

// bannerStyle returns the lipgloss style for a classification level,
// using black text on UNCLASSIFIED/TOP SECRET backgrounds and white text
// elsewhere for contrast.
func bannerStyle(level vocab.ClassificationLevel) lipgloss.Style {
	bg, ok := levelColor[level]
	if !ok {
		bg = levelColor[vocab.Unclassified]
	}

	fg := lipgloss.Color("#FFFFFF")
	if level == vocab.Unclassified || level == vocab.TopSecret {
		fg = lipgloss.Color("#000000")
	}

	return lipgloss.NewStyle().
		Bold(true).
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
}

// RenderBanner renders m as a single colorized line: the classification
// level plus every active dissem/other-dissem/REL TO caveat, joined with
// "//" the way a real banner line reads.
func RenderBanner(m marking.Marking) string {
	var parts []string
	parts = append(parts, m.Classification().String())

	for _, d := range m.Dissem() {
		parts = append(parts, d.String())
	}
	for _, o := range m.OtherDissem() {
		parts = append(parts, o.String())
	}
	if rel := m.RelTo(); len(rel) > 0 {
		parts = append(parts, "REL TO "+strings.Join(rel, ", "))
	}

	text := strings.Join(parts, "//")
	return bannerStyle(m.Classification()).Render(text)
}
