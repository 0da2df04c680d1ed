package jen

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// JennyList runs an ordered set of jennies over the same inputs and collects
// everything they produce into one FS.
//
// Output paths share a single namespace and are never rewritten; a path
// produced twice is an error. A run is all or nothing: if any jenny fails,
// GenerateFS reports every failure and returns no FS.
type JennyList[Input any] struct {
	mu      sync.RWMutex
	jennies []NamedJenny
	post    []FileMapper
	// name labels an input in errors. Optional.
	name func(Input) string
}

// JennyListWithNamer returns an empty JennyList whose errors name the input
// that caused them using name.
func JennyListWithNamer[Input any](name func(Input) string) *JennyList[Input] {
	return &JennyList[Input]{name: name}
}

// JennyName returns the name of the list, including its Input type.
func (js *JennyList[Input]) JennyName() string {
	return fmt.Sprintf("JennyList[%s]", reflect.TypeOf(new(Input)).Elem().Name())
}

// AppendOneToOne adds jennies run once per input.
func (js *JennyList[Input]) AppendOneToOne(jennies ...OneToOne[Input]) {
	js.mu.Lock()
	for _, j := range jennies {
		js.jennies = append(js.jennies, j)
	}
	js.mu.Unlock()
}

// AppendManyToOne adds jennies run once over all inputs.
func (js *JennyList[Input]) AppendManyToOne(jennies ...ManyToOne[Input]) {
	js.mu.Lock()
	for _, j := range jennies {
		js.jennies = append(js.jennies, j)
	}
	js.mu.Unlock()
}

// AddPostprocessors appends FileMappers, run in order on every produced File.
func (js *JennyList[Input]) AddPostprocessors(fn ...FileMapper) {
	js.mu.Lock()
	js.post = append(js.post, fn...)
	js.mu.Unlock()
}

// GenerateFS runs every jenny in append order and collects their output.
func (js *JennyList[Input]) GenerateFS(inputs ...Input) (*FS, error) {
	js.mu.RLock()
	defer js.mu.RUnlock()

	out := NewFS()
	var result *multierror.Error
	for _, nj := range js.jennies {
		switch j := nj.(type) {
		case OneToOne[Input]:
			for _, in := range inputs {
				f, err := j.Generate(in)
				if err = js.collect(out, j, f, err); err != nil {
					if js.name != nil {
						err = fmt.Errorf("%w for input %q", err, js.name(in))
					}
					result = multierror.Append(result, err)
				}
			}
		case ManyToOne[Input]:
			f, err := j.Generate(inputs...)
			if err = js.collect(out, j, f, err); err != nil {
				result = multierror.Append(result, err)
			}
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, multierror.Flatten(err)
	}
	return out, nil
}

// collect postprocesses one jenny result and adds it to out.
func (js *JennyList[Input]) collect(out *FS, j NamedJenny, f *File, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", j.JennyName(), err)
	}
	if f == nil || !f.Exists() {
		return nil
	}

	pf := *f
	pf.From = append([]NamedJenny{js, j}, f.From...)
	for _, post := range js.post {
		next, err := post(pf)
		if err != nil {
			return fmt.Errorf("postprocessing %s from %s: %w", f.RelativePath, jennystack(pf.From), err)
		}
		pf = next
	}
	if err := (Files{pf}).Validate(); err != nil {
		return fmt.Errorf("%s returned an invalid file: %w", j.JennyName(), err)
	}
	return out.addValidated(pf)
}
