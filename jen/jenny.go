// Package jen composes small code generators, called jennies, into a single
// generation run whose output is an FS.
//
// Each Jenny works with exactly one type of input, named "Input" by
// convention. A jenny takes either one Input or all of them, and produces
// zero or one File. The structindex generator uses schemas as its Input:
// one jenny renders a file per schema, another folds every schema into one
// file.
package jen

// A Jenny is a single code generator.
//
// Go's generics cannot express "one of OneToOne or ManyToOne" in the
// interface itself; JennyList only accepts the two concrete kinds.
type Jenny[Input any] interface {
	NamedJenny
}

// NamedJenny is the part of a Jenny that does not depend on the Input type.
type NamedJenny interface {
	// JennyName returns the name of the generator.
	JennyName() string
}

// OneToOne is a Jenny that produces one File from each Input.
type OneToOne[Input any] interface {
	Jenny[Input]

	// Generate takes an Input and generates one File, or nil if the jenny was
	// a no-op for the provided Input.
	Generate(Input) (*File, error)
}

// ManyToOne is a Jenny that produces one File from all Inputs together.
type ManyToOne[Input any] interface {
	Jenny[Input]

	// Generate takes a slice of Input and generates one File, or nil if the
	// jenny was a no-op for the provided Inputs.
	Generate(...Input) (*File, error)
}
