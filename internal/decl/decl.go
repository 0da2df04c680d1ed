// Package decl recovers the structure of a single struct declaration from its
// token stream: the type name, the raw generic parameter list, the where
// clause and the ordered field names.
//
// It is deliberately not a grammar. Parse walks the top level of the stream
// with a small state machine and stops at the body, which is the only place
// fields can come from.
package decl

import (
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/cockroachdb/errors"

	"github.com/sdboyer/structindex/internal/token"
)

// Shape is the body form of a declaration.
type Shape int

const (
	// Named is a brace body: struct S { a: A, b: B }
	Named Shape = iota
	// Positional is a parenthesized body: struct S(A, B);
	Positional
)

func (s Shape) String() string {
	if s == Positional {
		return "positional"
	}
	return "named"
}

// Declaration is the structural metadata of one struct.
type Declaration struct {
	Name string
	// Generics is the raw generic parameter list as declared, bounds
	// included, e.g. "<T:Default,U>". Empty for non-generic types.
	Generics string
	// Where is the constraint clause starting with "where", or empty.
	Where string
	// Fields are the field names in declaration order. Positional
	// declarations get "0", "1", ...
	Fields []string
	Shape  Shape
	Pos    lexer.Position
}

// TypeGenerics is the generic list with bounds stripped, for use sites.
func (d *Declaration) TypeGenerics() string {
	return NormalizeGenerics(d.Generics)
}

type state int

const (
	statePreName state = iota
	stateName
	stateInGenerics
	stateInWhereClause
	stateBody
)

var stateNames = [...]string{"PreName", "Name", "InGenerics", "InWhereClause", "Body"}

func (s state) String() string {
	return stateNames[s]
}

type scanner struct {
	state state
	name  string
	gen   token.Joiner
	where token.Joiner
	// angle bracket depth inside the generic list
	depth int
	decl  *Declaration
	pos   lexer.Position
}

// Parse scans the token stream of one declaration, which may begin with any
// amount of noise (attributes, visibility) before the struct keyword.
//
// It fails with ErrNameNotFound if the body comes before a name, and with
// ErrUnsupportedShape if no parenthesized or braced body follows the keyword.
func Parse(s token.Stream) (*Declaration, error) {
	sc := &scanner{}
	for i, t := range s {
		if err := sc.step(s, i, t); err != nil {
			return nil, err
		}
	}
	if sc.decl == nil {
		if len(s) > 0 {
			return nil, errors.Wrapf(ErrUnsupportedShape, "%s: input ended in state %s", s[0].Pos, sc.state)
		}
		return nil, ErrUnsupportedShape
	}
	sc.decl.Where = sc.where.String()
	return sc.decl, nil
}

func (sc *scanner) step(s token.Stream, i int, t token.Token) error {
	switch sc.state {
	case statePreName:
		if t.IsIdent("struct") {
			sc.state = stateName
			sc.pos = t.Pos
		}

	case stateName:
		switch t.Kind {
		case token.Ident:
			if t.Text == "where" {
				sc.enterWhere(t)
				return nil
			}
			sc.name = t.Text
		case token.Punct:
			if t.Text == "<" {
				sc.state = stateInGenerics
				sc.depth = 1
				sc.gen.Append(t)
			}
		case token.Group:
			return sc.body(t)
		}

	case stateInGenerics:
		switch {
		case sc.depth == 0 && t.IsIdent("where"):
			sc.enterWhere(t)
		case t.Kind == token.Group && sc.depth == 0:
			return sc.body(t)
		default:
			if t.Kind == token.Punct {
				switch t.Text {
				case "<":
					sc.depth++
				case ">":
					if sc.depth > 0 && !(i > 0 && s[i-1].IsPunct("-")) {
						sc.depth--
					}
				}
			}
			sc.gen.Append(t)
		}

	case stateInWhereClause:
		if t.Kind == token.Group && t.Delim == token.Brace {
			return sc.body(t)
		}
		sc.where.Append(t)

	case stateBody:
		// Positional bodies may be followed by their where clause.
		if sc.decl.Shape != Positional || t.IsPunct(";") {
			return nil
		}
		if t.IsIdent("where") || sc.where.Len() > 0 {
			sc.where.Append(t)
		}
	}
	return nil
}

func (sc *scanner) enterWhere(t token.Token) {
	sc.state = stateInWhereClause
	sc.where.Append(t)
}

// body handles a group reached at the top level after the name. Groups that
// cannot be a struct body are skipped.
func (sc *scanner) body(t token.Token) error {
	var (
		fields []string
		shape  Shape
	)
	switch t.Delim {
	case token.Parenthesis:
		fields, shape = PositionalFields(t.Stream), Positional
	case token.Brace:
		fields, shape = NamedFields(t.Stream), Named
	default:
		return nil
	}
	if sc.name == "" {
		return errors.Wrapf(ErrNameNotFound, "%s", t.Pos)
	}
	sc.decl = &Declaration{
		Name:     sc.name,
		Generics: sc.gen.String(),
		Fields:   fields,
		Shape:    shape,
		Pos:      sc.pos,
	}
	sc.state = stateBody
	return nil
}
