// Package fixture holds Go counterparts of the declarations in fixture.sidx.
// Their Indexer methods are generated.
package fixture

//go:generate go run github.com/sdboyer/structindex/cmd/structindex gen --config structindex.yaml

type Student struct {
	id   int64
	name string
}

type Pair struct {
	F0 uint8
	F1 string
}

type Cell[T any] struct {
	value T
}

type Empty struct{}
