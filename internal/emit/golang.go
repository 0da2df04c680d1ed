package emit

import (
	"bytes"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/cockroachdb/errors"

	"github.com/sdboyer/structindex/internal/decl"
)

var goTmpl = template.Must(template.New("go").Funcs(sprig.TxtFuncMap()).Parse(
	`package {{ .Package }}
{{ range .Decls }}
// TypeName returns the declared name of {{ .Name }}.
func (x *{{ .Receiver }}) TypeName() string {
	return {{ quote .Name }}
}

// FieldNames returns the field names of {{ .Name }} in declaration order.
func (x *{{ .Receiver }}) FieldNames() []string {
	return []string{ {{- join ", " .Names -}} }
}

// Field returns a copy of the value of the field at position i; use FieldPtr
// to alias the field. It panics if i is out of range.
func (x *{{ .Receiver }}) Field(i int) any {
	return [...]any{ {{- join ", " .Values -}} }[i]
}

// FieldPtr returns a pointer to the field at position i. It panics if i is out
// of range.
func (x *{{ .Receiver }}) FieldPtr(i int) any {
	return [...]any{ {{- join ", " .Ptrs -}} }[i]
}
{{ end -}}
`))

type goFile struct {
	Package string
	Decls   []goView
}

type goView struct {
	Name     string
	Receiver string
	Names    []string
	Values   []string
	Ptrs     []string
}

// Go emits a gofmt-formatted file in package pkg implementing
// structindex.Indexer for the Go counterpart of each declaration.
//
// Positional fields are reached as F0, F1, ... on the Go side while their
// reported names stay "0", "1", .... Where clauses have no Go equivalent and
// are dropped.
func Go(pkg string, decls []*decl.Declaration) ([]byte, error) {
	f := goFile{Package: pkg, Decls: make([]goView, 0, len(decls))}
	for _, d := range decls {
		if d.Name == "" {
			return nil, decl.ErrNameNotFound
		}
		v := goView{
			Name:     d.Name,
			Receiver: d.Name + goTypeParams(d.TypeGenerics()),
			Names:    quoteAll(d.Fields),
			Values:   make([]string, len(d.Fields)),
			Ptrs:     make([]string, len(d.Fields)),
		}
		for i, field := range d.Fields {
			sel := "x." + goFieldName(d, i, field)
			v.Values[i] = sel
			v.Ptrs[i] = "&" + sel
		}
		f.Decls = append(f.Decls, v)
	}

	var buf bytes.Buffer
	if err := goTmpl.Execute(&buf, f); err != nil {
		return nil, errors.Wrap(err, "rendering go methods")
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "formatting generated go source:\n%s", buf.String())
	}
	return out, nil
}

func goFieldName(d *decl.Declaration, i int, field string) string {
	if d.Shape == decl.Positional {
		return "F" + strconv.Itoa(i)
	}
	return field
}

// goTypeParams turns a normalized generic list such as "<'a,T,const N>" into
// a Go type argument list "[T, N]". Lifetimes have no Go counterpart.
func goTypeParams(normalized string) string {
	inner := strings.TrimSuffix(strings.TrimPrefix(normalized, "<"), ">")
	if inner == "" {
		return ""
	}
	var params []string
	for _, p := range strings.Split(inner, ",") {
		p = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(p), "const "))
		if p == "" || strings.HasPrefix(p, "'") {
			continue
		}
		params = append(params, p)
	}
	if len(params) == 0 {
		return ""
	}
	return "[" + strings.Join(params, ", ") + "]"
}
