// Package config loads the generator manifest.
//
// The manifest is a YAML file (structindex.yaml by default) naming the schema
// files to read, where output goes, and which targets to render. Every key can
// be overridden from the environment with the STRUCTINDEX_ prefix, and from
// command-line flags bound by the caller.
package config

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// DefaultFile is the manifest name looked up in the working directory.
const DefaultFile = "structindex.yaml"

// Targets understood by the generator.
const (
	TargetRust = "rust"
	TargetGo   = "go"
)

// Config is the generator manifest.
type Config struct {
	// Schemas are the declaration files to process, relative to the
	// working directory.
	Schemas []string `mapstructure:"schemas"`
	// Output is the directory generated files are written under.
	Output string `mapstructure:"output"`
	// Package is the Go package name of the go target's output.
	Package string `mapstructure:"package"`
	// Targets selects the renderers: "rust", "go".
	Targets  []string `mapstructure:"targets"`
	Verbose  bool     `mapstructure:"verbose"`
	JSONLogs bool     `mapstructure:"json_logs"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output", ".")
	v.SetDefault("package", "main")
	v.SetDefault("targets", []string{TargetRust})
	v.SetDefault("verbose", false)
	v.SetDefault("json_logs", false)
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("STRUCTINDEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load reads the manifest at path into v and decodes the result. An empty
// path looks for DefaultFile in the working directory and tolerates its
// absence.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultFile, ".yaml"))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read manifest")
		}
	}
	return Decode(v)
}

// Decode unmarshals v without reading any file.
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode manifest")
	}
	return &cfg, nil
}

// Validate reports manifest errors.
func (c *Config) Validate() error {
	if len(c.Schemas) == 0 {
		return errors.New("no schema files given")
	}
	if len(c.Targets) == 0 {
		return errors.New("no targets given")
	}
	for _, t := range c.Targets {
		if t != TargetRust && t != TargetGo {
			return errors.Newf("unknown target %q (supported: %s, %s)", t, TargetRust, TargetGo)
		}
	}
	if c.Has(TargetGo) && c.Package == "" {
		return errors.New("the go target needs a package name")
	}
	return nil
}

// Has reports whether target is selected.
func (c *Config) Has(target string) bool {
	return slices.Contains(c.Targets, target)
}
