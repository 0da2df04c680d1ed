// Package generate wires declaration parsing and emission into a generation
// run over schema files.
package generate

import (
	"os"

	"github.com/cockroachdb/errors"

	"github.com/sdboyer/structindex/internal/decl"
	"github.com/sdboyer/structindex/internal/logging"
	"github.com/sdboyer/structindex/internal/token"
)

// Schema is one parsed schema file.
type Schema struct {
	// Path is the file the schema was read from, as given.
	Path  string
	Decls []*decl.Declaration
}

// LoadSchema reads and parses the schema file at path.
func LoadSchema(path string) (*Schema, error) {
	b, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, errors.Wrap(err, "reading schema")
	}
	return ParseSchema(path, string(b))
}

// ParseSchema parses every item of src as a struct declaration. The first
// item that is not a supported declaration fails the whole schema.
func ParseSchema(path, src string) (*Schema, error) {
	s, err := token.Lex(path, src)
	if err != nil {
		return nil, err
	}

	sch := &Schema{Path: path}
	for _, item := range token.Split(s) {
		d, err := decl.Parse(item)
		if err != nil {
			return nil, err
		}
		logging.Logger.Debugw("parsed declaration",
			logging.FieldSchema, path,
			logging.FieldType, d.Name,
			logging.FieldShape, d.Shape.String(),
			logging.FieldFields, d.Fields,
		)
		sch.Decls = append(sch.Decls, d)
	}
	return sch, nil
}

// SchemaName names a schema in errors.
func SchemaName(s *Schema) string {
	return s.Path
}
