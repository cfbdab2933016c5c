// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	require.Equal(t, "text", cfg.Output.Format)
}

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[output]\nformat = \"json\"\n\n[citations]\n\"10.e.4\" = \"Enc 4, 10.e.4 (local override)\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "json", cfg.Output.Format)
	require.Equal(t, "Enc 4, 10.e.4 (local override)", cfg.CitationOverride("10.e.4"))
	require.Equal(t, "8.a.4", cfg.CitationOverride("8.a.4"), "expected passthrough for unconfigured paragraph")
}

func TestLoad_InvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nformat = \"xml\"\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}
