package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(parse(t))
	require.NoError(t, err)

	assert.False(t, cfg.List)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultPython, cfg.Python)
	assert.Equal(t, DefaultTagLimit, cfg.TagLimit)
	assert.Empty(t, cfg.SitePackages)
	assert.Empty(t, cfg.BPECache)
}

func TestLoad_NilFlags(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultOutput, cfg.Output)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := Load(parse(t,
		"--list", "-v", "--debug", "--no-color",
		"-o", "json",
		"--python", "/opt/venv/bin/python",
		"--site-packages", "/a", "--site-packages", "/b,/c",
		"--bpe-cache", "/cache",
		"--tag-limit", "3",
	))
	require.NoError(t, err)

	assert.True(t, cfg.List)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "/opt/venv/bin/python", cfg.Python)
	assert.Equal(t, []string{"/a", "/b", "/c"}, cfg.SitePackages)
	assert.Equal(t, "/cache", cfg.BPECache)
	assert.Equal(t, 3, cfg.TagLimit)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][]string{
		"output":    {"--output", "xml"},
		"tag limit": {"--tag-limit=-1"},
		"python":    {"--python", " "},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(parse(t, args...))
			assert.Error(t, err)
		})
	}
}
