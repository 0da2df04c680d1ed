package decl

import "strings"

// NormalizeGenerics strips bound annotations from a raw generic parameter
// list, leaving only the parameter names. It is what a type's use site needs:
//
//	<T: Default, U: Clone>  =>  <T,U>
//	T: Default, U: Clone    =>  T,U>
//
// The result always ends with ">" unless raw is empty.
func NormalizeGenerics(raw string) string {
	if raw == "" {
		return ""
	}
	segs := strings.Split(raw, ",")
	if strings.TrimSpace(segs[len(segs)-1]) == "" {
		segs = segs[:len(segs)-1]
	}
	out := make([]string, 0, len(segs))
	for _, seg := range segs {
		if i := strings.IndexByte(seg, ':'); i >= 0 {
			seg = seg[:i]
		}
		out = append(out, strings.TrimSpace(seg))
	}
	gen := strings.Join(out, ",")
	if !strings.HasSuffix(gen, ">") {
		gen += ">"
	}
	return gen
}
