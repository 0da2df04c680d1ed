package jen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// FS is an in-memory tree of generated files that can be written to disk in
// one batch, or compared against what is already on disk.
//
// Generated code is expected to be committed. Locally, a generator writes its
// FS; in CI, the same FS is verified so that stale output fails the build.
//
// FS does not notice files left behind on disk once their inputs are removed.
// Files may not be removed once added; a path conflict on add or merge is an
// error.
type FS struct {
	mu    sync.Mutex
	files map[string]entry
}

type entry struct {
	data []byte
	from []NamedJenny
}

// NewFS creates an empty FS.
func NewFS() *FS {
	return &FS{
		files: make(map[string]entry),
	}
}

// Len is the number of files in the FS.
func (wd *FS) Len() int {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	return len(wd.files)
}

// Add adds files to the FS. Nothing is added if any of them is invalid or
// conflicts with a path already in the FS.
func (wd *FS) Add(flist ...File) error {
	if err := Files(flist).Validate(); err != nil {
		return err
	}
	return wd.addValidated(flist...)
}

func (wd *FS) addValidated(flist ...File) error {
	wd.mu.Lock()
	defer wd.mu.Unlock()

	var result *multierror.Error
	for _, f := range flist {
		if prev, has := wd.files[f.RelativePath]; has {
			result = multierror.Append(result, fmt.Errorf("%s: already created by %s, cannot create again for %s", f.RelativePath, jennystack(prev.from), jennystack(f.From)))
		}
	}
	if result.ErrorOrNil() != nil {
		return result
	}

	for _, f := range flist {
		wd.files[f.RelativePath] = entry{data: f.Data, from: f.From}
	}
	return nil
}

// Merge adds every file of wd2 to wd. Duplicate paths result in an error.
func (wd *FS) Merge(wd2 *FS) error {
	if wd2 == nil {
		return nil
	}
	return wd.addValidated(wd2.AsFiles()...)
}

// AsFiles returns the contents of the FS, sorted by path.
func (wd *FS) AsFiles() Files {
	wd.mu.Lock()
	defer wd.mu.Unlock()

	fl := make(Files, 0, len(wd.files))
	for p, e := range wd.files {
		fl = append(fl, File{RelativePath: p, Data: e.data, From: e.from})
	}
	sort.Slice(fl, func(i, j int) bool {
		return fl[i].RelativePath < fl[j].RelativePath
	})
	return fl
}

// Verify checks each file against the filesystem, and returns an error
// listing every file that is missing or would change.
//
// If prefix is non-empty it is prepended to every path. prefix may be
// absolute.
func (wd *FS) Verify(ctx context.Context, prefix string) error {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(12)

	var (
		mu     sync.Mutex
		result *multierror.Error
	)
	fail := func(err error) {
		mu.Lock()
		result = multierror.Append(result, err)
		mu.Unlock()
	}

	for _, f := range wd.AsFiles() {
		f := f
		g.Go(func() error {
			ipath := filepath.Join(prefix, f.RelativePath)
			ob, err := os.ReadFile(ipath) //nolint:gosec
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					fail(fmt.Errorf("%s: generated file should exist, but does not", ipath))
					return nil
				}
				return fmt.Errorf("%s: error reading file: %w", ipath, err)
			}
			if dstr := cmp.Diff(string(ob), string(f.Data)); dstr != "" {
				fail(fmt.Errorf("%s would have changed:\n\n%s", ipath, dstr))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("io error while verifying tree: %w", err)
	}
	return result.ErrorOrNil()
}

// Write writes all files to their paths, creating parent directories as
// needed.
//
// If prefix is non-empty it is prepended to every path. prefix may be
// absolute.
func (wd *FS) Write(ctx context.Context, prefix string) error {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(12)

	for _, f := range wd.AsFiles() {
		f := f
		g.Go(func() error {
			path := filepath.Join(prefix, f.RelativePath)
			if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
				return fmt.Errorf("%s: failed to ensure parent directory exists: %w", path, err)
			}
			if err := os.WriteFile(path, f.Data, 0644); err != nil {
				return fmt.Errorf("%s: error while writing file: %w", path, err)
			}
			return nil
		})
	}
	return g.Wait()
}
