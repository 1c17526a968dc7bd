package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Build(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name      string
		opts      Options
		wantError string
		check     func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid_minimal",
			opts: Options{
				Root:        root,
				Pattern:     `<h1>(.*?)</h1>`,
				Replacement: `<h2>$1</h2>`,
			},
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, filepath.IsAbs(cfg.Root))
				assert.Equal(t, []string{"html"}, cfg.Extensions)
				assert.True(t, cfg.ExtensionsDefaulted)
				assert.False(t, cfg.Verbose)
				assert.False(t, cfg.Force)
			},
		},
		{
			name: "explicit_extensions_not_defaulted",
			opts: Options{
				Root:        root,
				Pattern:     `a`,
				Replacement: `b`,
				Extensions:  []string{"js", "css"},
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"js", "css"}, cfg.Extensions)
				assert.False(t, cfg.ExtensionsDefaulted)
			},
		},
		{
			name: "flags_carried_over",
			opts: Options{
				Root:        root,
				Pattern:     `a`,
				Replacement: `b`,
				Verbose:     true,
				Force:       true,
			},
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Verbose)
				assert.True(t, cfg.Force)
			},
		},
		{
			name:      "missing_root",
			opts:      Options{Pattern: `a`, Replacement: `b`},
			wantError: "root path is required",
		},
		{
			name:      "root_does_not_exist",
			opts:      Options{Root: filepath.Join(root, "nope"), Pattern: `a`, Replacement: `b`},
			wantError: "checking root path",
		},
		{
			name:      "missing_pattern",
			opts:      Options{Root: root, Replacement: `b`},
			wantError: "pattern is required",
		},
		{
			name:      "malformed_pattern",
			opts:      Options{Root: root, Pattern: `<h1>(.*?</h1>`, Replacement: `b`},
			wantError: "malformed pattern",
		},
		{
			name:      "missing_replacement",
			opts:      Options{Root: root, Pattern: `a`},
			wantError: "replacement is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := tt.opts.Build(context.Background())

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestOptions_Build_RootIsFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file.html")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := Options{Root: file, Pattern: `a`, Replacement: `b`}.Build(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}
