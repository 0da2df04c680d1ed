package token

import (
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/cockroachdb/errors"
)

var definition = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*|/\*[\s\S]*?\*/`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Char", Pattern: `'(?:\\.|[^'\\])'`},
	{Name: "Number", Pattern: `[0-9][0-9A-Za-z_]*(?:\.[0-9][0-9A-Za-z_]*)?`},
	{Name: "Ident", Pattern: `(?:r#)?[\p{L}_][\p{L}\p{N}_]*`},
	{Name: "Open", Pattern: `[(\[{]`},
	{Name: "Close", Pattern: `[)\]}]`},
	{Name: "Punct", Pattern: `[^\s\p{L}\p{N}_()\[\]{}"]`},
})

var symbols = definition.Symbols()

// Lex tokenizes src into a token tree. filename is only used in positions.
func Lex(filename, src string) (Stream, error) {
	lx, err := definition.LexString(filename, src)
	if err != nil {
		return nil, errors.Wrapf(err, "lexing %s", filename)
	}
	raw, err := lexer.ConsumeAll(lx)
	if err != nil {
		return nil, errors.Wrapf(err, "lexing %s", filename)
	}
	return fold(raw)
}

type frame struct {
	open   lexer.Token
	delim  Delimiter
	stream Stream
}

// fold turns the flat lexer output into a tree, collapsing each bracket pair
// into a Group.
func fold(raw []lexer.Token) (Stream, error) {
	stack := []*frame{{}}
	for _, rt := range raw {
		if rt.EOF() {
			break
		}
		top := stack[len(stack)-1]
		switch rt.Type {
		case symbols["Comment"], symbols["Whitespace"]:
			continue
		case symbols["Ident"]:
			top.stream = append(top.stream, Token{Kind: Ident, Text: rt.Value, Pos: rt.Pos})
		case symbols["String"], symbols["Char"], symbols["Number"]:
			top.stream = append(top.stream, Token{Kind: Literal, Text: rt.Value, Pos: rt.Pos})
		case symbols["Punct"]:
			top.stream = append(top.stream, Token{Kind: Punct, Text: rt.Value, Pos: rt.Pos})
		case symbols["Open"]:
			stack = append(stack, &frame{open: rt, delim: delimOf(rt.Value)})
		case symbols["Close"]:
			if len(stack) == 1 {
				return nil, errors.Newf("%s: unexpected %q", rt.Pos, rt.Value)
			}
			if want := top.delim.close(); want != rt.Value {
				return nil, errors.Newf("%s: expected %q to close %q opened at %s, got %q", rt.Pos, want, top.open.Value, top.open.Pos, rt.Value)
			}
			stack = stack[:len(stack)-1]
			parent := stack[len(stack)-1]
			parent.stream = append(parent.stream, Token{Kind: Group, Delim: top.delim, Stream: top.stream, Pos: top.open.Pos})
		default:
			return nil, errors.Newf("%s: unexpected token %q", rt.Pos, rt.Value)
		}
	}
	if len(stack) > 1 {
		top := stack[len(stack)-1]
		return nil, errors.Newf("%s: unclosed %q", top.open.Pos, top.open.Value)
	}
	return stack[0].stream, nil
}

func delimOf(open string) Delimiter {
	switch open {
	case "(":
		return Parenthesis
	case "{":
		return Brace
	case "[":
		return Bracket
	}
	return NoDelim
}

// Split cuts a schema-level stream into items. An item ends after a brace
// group or a ";" punctuation token; a trailing item without either is kept
// as is so that parsing can report it.
func Split(s Stream) []Stream {
	var (
		items []Stream
		cur   Stream
	)
	for _, t := range s {
		if t.IsPunct(";") {
			if len(cur) > 0 {
				items = append(items, cur)
			}
			cur = nil
			continue
		}
		cur = append(cur, t)
		if t.Kind == Group && t.Delim == Brace {
			items = append(items, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		items = append(items, cur)
	}
	return items
}
