// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeranaias/markings/internal/parser"
)

func TestRenderBanner_ContainsClassificationAndCaveats(t *testing.T) {
	m, err := parser.ParseBanner("SECRET//NOFORN")
	require.NoError(t, err)

	rendered := RenderBanner(m)
	require.True(t, strings.Contains(rendered, "SECRET"), "expected rendered banner to contain SECRET, got %q", rendered)
	require.True(t, strings.Contains(rendered, "NOFORN"), "expected rendered banner to contain NOFORN, got %q", rendered)
}

func TestRenderBanner_RelTo(t *testing.T) {
	m, err := parser.ParseBanner("SECRET//REL TO USA, GBR")
	require.NoError(t, err)

	rendered := RenderBanner(m)
	require.True(t, strings.Contains(rendered, "REL TO USA, GBR"), "expected rendered banner to contain REL TO list, got %q", rendered)
}
