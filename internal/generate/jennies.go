package generate

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/sdboyer/structindex/internal/decl"
	"github.com/sdboyer/structindex/internal/emit"
	"github.com/sdboyer/structindex/internal/logging"
	"github.com/sdboyer/structindex/jen"
)

// Header is stamped on top of every generated file. Both targets use line
// comments starting with "//".
const Header = "// Code generated by structindex. DO NOT EDIT.\n\n"

// GoFile is the name of the go target's output file.
const GoFile = "structindex_gen.go"

// RustJenny renders the capability impls of every declaration in a schema
// into one file named after the schema.
type RustJenny struct{}

var _ jen.OneToOne[*Schema] = RustJenny{}

func (RustJenny) JennyName() string {
	return "RustJenny"
}

func (RustJenny) Generate(s *Schema) (*jen.File, error) {
	if len(s.Decls) == 0 {
		return nil, nil
	}
	impls := make([]string, 0, len(s.Decls))
	for _, d := range s.Decls {
		text, err := emit.Impl(d)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", d.Pos)
		}
		impls = append(impls, text)
	}
	return &jen.File{
		RelativePath: RustFile(s.Path),
		Data:         []byte(strings.Join(impls, "\n")),
	}, nil
}

// RustFile is the output path for a schema, relative to the output directory.
// A relative schema path keeps its directory, so a/model.sidx and
// b/model.sidx do not collide. Absolute paths, and paths leaving the working
// directory, keep only the base name.
func RustFile(schemaPath string) string {
	clean := filepath.Clean(schemaPath)
	base := filepath.Base(clean)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + "_structindex.rs"
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return name
	}
	return filepath.Join(filepath.Dir(clean), name)
}

// GoJenny renders Indexer methods for the declarations of all schemas into a
// single Go file in Package.
type GoJenny struct {
	Package string
}

var _ jen.ManyToOne[*Schema] = GoJenny{}

func (j GoJenny) JennyName() string {
	return "GoJenny"
}

func (j GoJenny) Generate(schemas ...*Schema) (*jen.File, error) {
	var decls []*decl.Declaration
	for _, s := range schemas {
		decls = append(decls, s.Decls...)
	}
	if len(decls) == 0 {
		return nil, nil
	}
	b, err := emit.Go(j.Package, decls)
	if err != nil {
		return nil, err
	}
	return &jen.File{RelativePath: GoFile, Data: b}, nil
}

// StampHeader is a postprocessor prepending Header.
func StampHeader(f jen.File) (jen.File, error) {
	f.Data = append([]byte(Header), f.Data...)
	return f, nil
}

// LogFile is a postprocessor that records each produced file.
func LogFile(f jen.File) (jen.File, error) {
	logging.Logger.Debugw("generated file",
		logging.FieldPath, f.RelativePath,
		"size", len(f.Data),
	)
	return f, nil
}
