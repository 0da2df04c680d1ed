package decl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/matryer/is"

	"github.com/sdboyer/structindex/internal/token"
)

// body lexes src and returns the contents of its single group.
func body(t *testing.T, src string) token.Stream {
	t.Helper()
	s := lex(t, src)
	if len(s) != 1 || s[0].Kind != token.Group {
		t.Fatalf("%q is not a single group", src)
	}
	return s[0].Stream
}

func TestNamedFields(t *testing.T) {
	tt := map[string]struct {
		src  string
		want []string
	}{
		"simple":            {`{ id: i64, name: String }`, []string{"id", "name"}},
		"trailing comma":    {`{ id: i64, }`, []string{"id"}},
		"empty":             {`{}`, nil},
		"generic types":     {`{ m: HashMap<String, Vec<u8>>, n: u8 }`, []string{"m", "n"}},
		"tuple and array":   {`{ t: (u8, u16), a: [u8; 4] }`, []string{"t", "a"}},
		"qualified path":    {`{ s: std::string::String }`, []string{"s"}},
		"field attribute":   {`{ #[serde(skip)] a: u8, b: u8 }`, []string{"a", "b"}},
		"reference types":   {`{ r: &'static str }`, []string{"r"}},
		"function pointers": {`{ f: fn(u8) -> u8, g: u8 }`, []string{"f", "g"}},
	}

	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			got := NamedFields(body(t, tc.src))
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("NamedFields(%q) mismatch (-want +got):\n%s", tc.src, diff)
			}
		})
	}
}

// A path that starts with "::" contributes three colons to the count and the
// field is lost. This mirrors the heuristic and is kept on purpose.
func TestNamedFieldsLeadingPathSeparator(t *testing.T) {
	is := is.New(t)
	got := NamedFields(body(t, `{ a: ::std::string::String, b: u8 }`))
	is.Equal(got, []string{"b"})
}

func TestPositionalFields(t *testing.T) {
	tt := map[string]struct {
		src  string
		want []string
	}{
		"two":             {`(u8, String)`, []string{"0", "1"}},
		"empty":           {`()`, nil},
		"trailing comma":  {`(u8,)`, []string{"0"}},
		"nested tuple":    {`((u8, u8), u16)`, []string{"0", "1"}},
		"generic args":    {`(HashMap<K, V>, u8)`, []string{"0", "1"}},
		"visibility":      {`(pub u8, pub(crate) String, i32)`, []string{"0", "1", "2"}},
		"fn pointer type": {`(fn(u8) -> u8, u8)`, []string{"0", "1"}},
	}

	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			got := PositionalFields(body(t, tc.src))
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("PositionalFields(%q) mismatch (-want +got):\n%s", tc.src, diff)
			}
		})
	}
}
