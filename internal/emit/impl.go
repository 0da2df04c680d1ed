// Package emit renders parsed declarations into generated source.
//
// Impl produces the three capability implementations in the declaration's
// own language: a metadata descriptor on the unary "!" operator, and
// type-erased indexed read and write. Go produces the equivalent methods for a
// Go struct of the same shape, satisfying structindex.Indexer.
package emit

import (
	"strconv"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/cockroachdb/errors"

	"github.com/sdboyer/structindex/internal/decl"
	"github.com/sdboyer/structindex/internal/token"
)

var implTmpl = template.Must(template.New("impl").Funcs(sprig.TxtFuncMap()).Parse(
	`impl{{ .Generics }} core::ops::Not for &{{ .Name }}{{ .TypeGenerics }}{{ with .Where }} {{ . }}{{ end }} {
    type Output = (&'static str, &'static [&'static str]);

    /// return (structure name, field names)
    fn not(self) -> Self::Output {
        ({{ quote .Name }}, &[{{ join ", " .Names }}])
    }
}

impl{{ .Generics }} core::ops::Index<usize> for {{ .Name }}{{ .TypeGenerics }}{{ with .Where }} {{ . }}{{ end }} {
    type Output = dyn core::any::Any;

    fn index(&self, index: usize) -> &Self::Output {
        ([{{ join ", " .Refs }}] as [&Self::Output; {{ len .Refs }}])[index]
    }
}

impl{{ .Generics }} core::ops::IndexMut<usize> for {{ .Name }}{{ .TypeGenerics }}{{ with .Where }} {{ . }}{{ end }} {
    fn index_mut(&mut self, index: usize) -> &mut Self::Output {
        ([{{ join ", " .MutRefs }}] as [&mut Self::Output; {{ len .MutRefs }}])[index]
    }
}
`))

type implView struct {
	Name         string
	Generics     string
	TypeGenerics string
	Where        string
	Names        []string
	Refs         []string
	MutRefs      []string
}

// Impl emits the descriptor, index and index-mut implementations for d.
// Bounds appear once, on each impl's own generic list; the type at the use
// site carries only the bare parameter names.
func Impl(d *decl.Declaration) (string, error) {
	if d.Name == "" {
		return "", decl.ErrNameNotFound
	}
	v := implView{
		Name:         d.Name,
		Generics:     d.Generics,
		TypeGenerics: d.TypeGenerics(),
		Where:        d.Where,
		Names:        quoteAll(d.Fields),
		Refs:         make([]string, len(d.Fields)),
		MutRefs:      make([]string, len(d.Fields)),
	}
	for i, f := range d.Fields {
		v.Refs[i] = "&self." + f
		v.MutRefs[i] = "&mut self." + f
	}

	var b strings.Builder
	if err := implTmpl.Execute(&b, v); err != nil {
		return "", errors.Wrapf(err, "rendering impls for %s", d.Name)
	}
	return b.String(), nil
}

// Derive is the whole transformation for one declaration: it parses the
// token stream and returns the generated implementations.
func Derive(s token.Stream) (string, error) {
	d, err := decl.Parse(s)
	if err != nil {
		return "", err
	}
	return Impl(d)
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strconv.Quote(s)
	}
	return out
}
