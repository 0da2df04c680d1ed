package decl

import (
	"strconv"

	"github.com/sdboyer/structindex/internal/token"
)

// NamedFields extracts field names, in order, from the contents of a brace
// body.
//
// An identifier directly followed by exactly one ':' before the next
// non-punctuation token is a field name; the rest of the type annotation is
// skipped. Paths in annotations ("std::string::String") contribute two colons
// at a time and are therefore ignored, but an annotation that starts with
// "::" or contains a lone ':' will throw the count off.
func NamedFields(body token.Stream) []string {
	var (
		fields []string
		field  string
		colons int
	)
	for _, t := range body {
		if t.Kind == token.Punct {
			if t.Text == ":" {
				colons++
			}
			continue
		}
		if colons == 1 {
			fields = append(fields, field)
		}
		field = t.String()
		colons = 0
	}
	return fields
}

// PositionalFields numbers the top-level entries of a parenthesized body:
// "0", "1", ... A trailing comma does not start a new entry.
func PositionalFields(body token.Stream) []string {
	var (
		fields []string
		depth  int
		open   bool
	)
	for i, t := range body {
		if t.Kind == token.Punct {
			switch t.Text {
			case "<":
				depth++
			case ">":
				if depth > 0 && !(i > 0 && body[i-1].IsPunct("-")) {
					depth--
				}
			case ",":
				if depth == 0 {
					open = false
					continue
				}
			}
		}
		if !open {
			fields = append(fields, strconv.Itoa(len(fields)))
			open = true
		}
	}
	return fields
}
