// Package config resolves the inspector settings from built-in defaults and
// command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Default values.
const (
	DefaultOutput   = "text"
	DefaultPython   = "python3"
	DefaultTagLimit = 10
)

// Output formats accepted by --output.
var OutputFormats = []string{"text", "json", "yaml"}

// Config holds the resolved settings of one invocation.
type Config struct {
	List         bool     `koanf:"list"`
	Verbose      bool     `koanf:"verbose"`
	Debug        bool     `koanf:"debug"`
	NoColor      bool     `koanf:"no_color"`
	Output       string   `koanf:"output"`
	Python       string   `koanf:"python"`
	SitePackages []string `koanf:"site_packages"`
	BPECache     string   `koanf:"bpe_cache"`
	TagLimit     int      `koanf:"tag_limit"`
}

// BindFlags registers the flags Load reads.
func BindFlags(flags *pflag.FlagSet) {
	flags.BoolP("list", "l", false, "List locally installed models and exit")
	flags.BoolP("verbose", "v", false, "Show extra detail in the report")
	flags.Bool("debug", false, "Log debug output to stderr")
	flags.Bool("no-color", false, "Disable styled output")
	flags.StringP("output", "o", DefaultOutput, "Output format ("+strings.Join(OutputFormats, "|")+")")
	flags.String("python", DefaultPython, "Python interpreter spaCy is installed into")
	flags.StringSlice("site-packages", nil, "Directory to search for installed models (repeatable; default: the interpreter's sys.path)")
	flags.String("bpe-cache", "", "Directory holding cl100k_base.tiktoken for the verbose subword comparison")
	flags.Int("tag-limit", DefaultTagLimit, "Number of POS tags shown without --verbose")
}

// Load merges defaults and explicitly set flags.
// Precedence (highest to lowest): flags > defaults
func Load(flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"list":          false,
		"verbose":       false,
		"debug":         false,
		"no_color":      false,
		"output":        DefaultOutput,
		"python":        DefaultPython,
		"site_packages": []string{},
		"bpe_cache":     "",
		"tag_limit":     DefaultTagLimit,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that flags cannot constrain by type.
func (c *Config) Validate() error {
	valid := false
	for _, f := range OutputFormats {
		if c.Output == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid output format %q (want one of %s)", c.Output, strings.Join(OutputFormats, ", "))
	}
	if c.TagLimit < 0 {
		return fmt.Errorf("tag limit must not be negative, got %d", c.TagLimit)
	}
	if strings.TrimSpace(c.Python) == "" {
		return fmt.Errorf("python interpreter must not be empty")
	}
	return nil
}
