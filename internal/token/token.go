// Package token holds the token tree that declaration parsing consumes.
//
// A schema is lexed into a flat sequence of leaves and then folded so that
// every parenthesis, brace and bracket pair becomes a single Group token
// carrying its contents. Punctuation is always a single character, so a path
// separator such as "::" arrives as two Punct tokens.
package token

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Kind is the category of a Token.
type Kind int

const (
	Ident Kind = iota
	Punct
	Literal
	Group
)

func (k Kind) String() string {
	switch k {
	case Ident:
		return "Ident"
	case Punct:
		return "Punct"
	case Literal:
		return "Literal"
	case Group:
		return "Group"
	}
	return "Unknown"
}

// Delimiter identifies the bracket pair enclosing a Group.
type Delimiter int

const (
	NoDelim Delimiter = iota
	Parenthesis
	Brace
	Bracket
)

func (d Delimiter) open() string {
	switch d {
	case Parenthesis:
		return "("
	case Brace:
		return "{"
	case Bracket:
		return "["
	}
	return ""
}

func (d Delimiter) close() string {
	switch d {
	case Parenthesis:
		return ")"
	case Brace:
		return "}"
	case Bracket:
		return "]"
	}
	return ""
}

// Token is a single node in the token tree.
type Token struct {
	Kind Kind
	// Text is the source text of a leaf. Empty for groups.
	Text string
	// Delim and Stream are only set for groups.
	Delim  Delimiter
	Stream Stream
	Pos    lexer.Position
}

// IsPunct reports whether t is the punctuation character c.
func (t Token) IsPunct(c string) bool {
	return t.Kind == Punct && t.Text == c
}

// IsIdent reports whether t is the identifier s.
func (t Token) IsIdent(s string) bool {
	return t.Kind == Ident && t.Text == s
}

// String renders the token back to source text. Groups render their contents
// joined the same way Stream.String does.
func (t Token) String() string {
	if t.Kind != Group {
		return t.Text
	}
	return t.Delim.open() + t.Stream.String() + t.Delim.close()
}

// Stream is an ordered token sequence.
type Stream []Token

// String renders the stream compactly: tokens are concatenated, with a single
// space only where two word tokens would otherwise fuse.
func (s Stream) String() string {
	var j Joiner
	for _, t := range s {
		j.Append(t)
	}
	return j.String()
}

// Joiner accumulates token text using the spacing rule of Stream.String.
type Joiner struct {
	b strings.Builder
}

// Append adds the rendering of t.
func (j *Joiner) Append(t Token) {
	j.AppendText(t.String())
}

// AppendText adds raw token text.
func (j *Joiner) AppendText(s string) {
	if s == "" {
		return
	}
	cur := j.b.String()
	if cur != "" && isWordByte(cur[len(cur)-1]) && isWordByte(s[0]) {
		j.b.WriteByte(' ')
	}
	j.b.WriteString(s)
}

// Len is the length of the accumulated text.
func (j *Joiner) Len() int {
	return j.b.Len()
}

func (j *Joiner) String() string {
	return j.b.String()
}

func isWordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= 0x80
}
