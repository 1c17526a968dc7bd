package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDefaults(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults_YAML(t *testing.T) {
	path := writeDefaults(t, ".resub.yaml", `
extensions:
  - js
  - css
ignore:
  - "vendor/**"
verbose: true
`)

	defaults, err := LoadDefaults(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"js", "css"}, defaults.Extensions)
	assert.Equal(t, []string{"vendor/**"}, defaults.Ignore)
	assert.True(t, defaults.Verbose)
	assert.False(t, defaults.Force)
}

func TestLoadDefaults_YAML_UnknownField(t *testing.T) {
	path := writeDefaults(t, ".resub.yaml", `
extensions: [js]
bogus: true
`)

	_, err := LoadDefaults(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing defaults file")
}

func TestLoadDefaults_HCL(t *testing.T) {
	path := writeDefaults(t, ".resub.hcl", `
extensions = ["html", "htm"]
ignore     = ["node_modules/**"]
force      = true
`)

	defaults, err := LoadDefaults(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"html", "htm"}, defaults.Extensions)
	assert.Equal(t, []string{"node_modules/**"}, defaults.Ignore)
	assert.True(t, defaults.Force)
	assert.False(t, defaults.Verbose)
}

func TestLoadDefaults_Errors(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadDefaults(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading defaults file")
	})

	t.Run("unsupported_format", func(t *testing.T) {
		path := writeDefaults(t, "defaults.toml", `verbose = true`)
		_, err := LoadDefaults(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no parser found")
	})

	t.Run("invalid_hcl", func(t *testing.T) {
		path := writeDefaults(t, ".resub.hcl", `extensions = [`)
		_, err := LoadDefaults(context.Background(), path)
		require.Error(t, err)
	})
}

func TestOptions_ApplyDefaults(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		defaults *FileDefaults
		want     Options
	}{
		{
			name:     "fills_unset_fields",
			opts:     Options{},
			defaults: &FileDefaults{Extensions: []string{"js"}, Ignore: []string{"dist/**"}, Verbose: true},
			want:     Options{Extensions: []string{"js"}, IgnoreGlobs: []string{"dist/**"}, Verbose: true},
		},
		{
			name:     "cli_lists_win",
			opts:     Options{Extensions: []string{"css"}},
			defaults: &FileDefaults{Extensions: []string{"js"}},
			want:     Options{Extensions: []string{"css"}},
		},
		{
			name:     "bool_flags_are_ored",
			opts:     Options{Force: true},
			defaults: &FileDefaults{Verbose: true},
			want:     Options{Force: true, Verbose: true},
		},
		{
			name:     "nil_defaults_is_noop",
			opts:     Options{Extensions: []string{"css"}},
			defaults: nil,
			want:     Options{Extensions: []string{"css"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			opts.ApplyDefaults(tt.defaults)
			assert.Equal(t, tt.want, opts)
		})
	}
}
