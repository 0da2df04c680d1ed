package jen

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// File is a single generated file.
type File struct {
	// The relative path to which the generated file should be written.
	RelativePath string

	// Contents of the generated file.
	Data []byte

	// From is the stack of jennies responsible for producing this File.
	// Wrapping jennies (such as JennyList) push themselves on as they pass a
	// File up.
	From []NamedJenny
}

// Exists reports whether the File has any contents. The zero File is how a
// jenny says it had nothing to produce.
func (f File) Exists() bool {
	return len(f.Data) > 0
}

// Files is a set of File objects.
type Files []File

// Validate checks that the Files do not share paths and that none of the paths
// are absolute.
func (fl Files) Validate() error {
	var result *multierror.Error
	seen := make(map[string]File, len(fl))
	for _, f := range fl {
		if filepath.IsAbs(f.RelativePath) {
			result = multierror.Append(result, fmt.Errorf("%s: generated file path must be relative, from %s", f.RelativePath, jennystack(f.From)))
		}
		if prev, has := seen[f.RelativePath]; has {
			result = multierror.Append(result, fmt.Errorf("%s: produced by both %s and %s", f.RelativePath, jennystack(prev.From), jennystack(f.From)))
			continue
		}
		seen[f.RelativePath] = f
	}
	return result.ErrorOrNil()
}

// FileMapper transforms a File, for example to add a header or reformat its
// contents. Mappers run in order on every File a JennyList produces.
type FileMapper func(File) (File, error)

func jennystack(s []NamedJenny) string {
	if len(s) == 0 {
		return "<unknown>"
	}
	names := make([]string, len(s))
	for i, j := range s {
		names[i] = j.JennyName()
	}
	return strings.Join(names, ":")
}
