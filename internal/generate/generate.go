package generate

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/sdboyer/structindex/internal/config"
	"github.com/sdboyer/structindex/internal/logging"
	"github.com/sdboyer/structindex/jen"
)

// Jennies assembles the JennyList for the targets selected in cfg.
func Jennies(cfg *config.Config) *jen.JennyList[*Schema] {
	jl := jen.JennyListWithNamer(SchemaName)
	if cfg.Has(config.TargetRust) {
		jl.AppendOneToOne(RustJenny{})
	}
	if cfg.Has(config.TargetGo) {
		jl.AppendManyToOne(GoJenny{Package: cfg.Package})
	}
	jl.AddPostprocessors(StampHeader, LogFile)
	return jl
}

// Build loads every schema named in cfg and renders the generated tree. No
// tree is returned if any schema or declaration fails.
func Build(cfg *config.Config) (*jen.FS, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	schemas := make([]*Schema, 0, len(cfg.Schemas))
	for _, path := range cfg.Schemas {
		s, err := LoadSchema(path)
		if err != nil {
			return nil, err
		}
		logging.Logger.Infow("loaded schema",
			logging.FieldSchema, path,
			logging.FieldCount, len(s.Decls),
		)
		schemas = append(schemas, s)
	}

	fs, err := Jennies(cfg).GenerateFS(schemas...)
	if err != nil {
		return nil, errors.Wrap(err, "generation failed")
	}
	return fs, nil
}

// Write builds the tree and writes it under cfg.Output.
func Write(ctx context.Context, cfg *config.Config) error {
	fs, err := Build(cfg)
	if err != nil {
		return err
	}
	if err := fs.Write(ctx, cfg.Output); err != nil {
		return errors.Wrap(err, "writing generated files")
	}
	logging.Logger.Infow("wrote generated files",
		logging.FieldPath, cfg.Output,
		logging.FieldCount, fs.Len(),
	)
	return nil
}

// Verify builds the tree and checks it against cfg.Output.
func Verify(ctx context.Context, cfg *config.Config) error {
	fs, err := Build(cfg)
	if err != nil {
		return err
	}
	return fs.Verify(ctx, cfg.Output)
}
