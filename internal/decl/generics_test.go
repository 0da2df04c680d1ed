package decl

import "testing"

func TestNormalizeGenerics(t *testing.T) {
	tt := []struct {
		raw, want string
	}{
		{"", ""},
		{"T: Default, U: Clone", "T,U>"},
		{"<T:Default,U:Clone>", "<T,U>"},
		{"T>", "T>"},
		{"<T>", "<T>"},
		{"<T:Iterator<Item=u8>>", "<T>"},
		{"<T:Into<u8>,U>", "<T,U>"},
		{"<'a,T:'a>", "<'a,T>"},
		{"<T:std::fmt::Debug>", "<T>"},
		{"<const N:usize>", "<const N>"},
		{"<T,>", "<T,>"},
		{"T,", "T>"},
	}

	for _, tc := range tt {
		if got := NormalizeGenerics(tc.raw); got != tc.want {
			t.Errorf("NormalizeGenerics(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}
