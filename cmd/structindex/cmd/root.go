package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sdboyer/structindex/internal/config"
	"github.com/sdboyer/structindex/internal/logging"
)

// flag name -> manifest key
var boundFlags = map[string]string{
	"output":    "output",
	"package":   "package",
	"target":    "targets",
	"verbose":   "verbose",
	"json-logs": "json_logs",
}

type options struct {
	configPath string
	v          *viper.Viper
}

// NewRootCmd builds the structindex command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{v: config.New()}

	root := &cobra.Command{
		Use:   "structindex",
		Short: "Generate positional field access for struct declarations",
		Long: `structindex reads struct declarations from schema files and generates, for
each declared type:

  - a metadata descriptor returning the type name and its field names
  - indexed read access to fields as type-erased values
  - indexed write access to fields

Field positions follow declaration order. Targets:
  rust   impls of Not, Index<usize> and IndexMut<usize>, one .rs file per schema
         written under the schema's relative directory; absolute schema paths
         and paths outside the working directory use the base name only, so
         such schemas need distinct file names
  go     methods satisfying structindex.Indexer, one file for all schemas

Examples:
  structindex gen                               # use ./structindex.yaml
  structindex gen -t rust -o gen model.sidx     # explicit schema and target
  structindex check                             # fail if generated files are stale`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "Manifest file (default: ./"+config.DefaultFile+" if present)")
	pf.StringP("output", "o", ".", "Output directory")
	pf.String("package", "main", "Go package name for the go target")
	pf.StringSliceP("target", "t", []string{config.TargetRust}, "Targets to generate: rust, go")
	pf.BoolP("verbose", "v", false, "Debug logging")
	pf.Bool("json-logs", false, "Log JSON lines")

	for flag, key := range boundFlags {
		if err := opts.v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(newGenCmd(opts), newCheckCmd(opts))
	return root
}

// load resolves the manifest, flags, environment and positional schema
// arguments into a validated Config, and sets up logging.
func (o *options) load(args []string) (*config.Config, error) {
	cfg, err := config.Load(o.v, o.configPath)
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		cfg.Schemas = args
	}
	if err := logging.Initialize(cfg.Verbose, cfg.JSONLogs); err != nil {
		return nil, errors.Wrap(err, "initializing logger")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
