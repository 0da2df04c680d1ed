package jen

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type upper struct{}

func (upper) JennyName() string { return "upper" }

func (upper) Generate(s string) (*File, error) {
	if s == "" {
		return nil, nil
	}
	if s == "bad" {
		return nil, errors.New("cannot handle bad")
	}
	return &File{RelativePath: s + ".txt", Data: []byte(strings.ToUpper(s))}, nil
}

type joiner struct{}

func (joiner) JennyName() string { return "joiner" }

func (joiner) Generate(ss ...string) (*File, error) {
	return &File{RelativePath: "all.txt", Data: []byte(strings.Join(ss, ","))}, nil
}

func newList() *JennyList[string] {
	jl := JennyListWithNamer(func(s string) string { return s })
	jl.AppendOneToOne(upper{})
	jl.AppendManyToOne(joiner{})
	return jl
}

func TestJennyListGenerate(t *testing.T) {
	is := is.New(t)
	jl := newList()
	jl.AddPostprocessors(func(f File) (File, error) {
		f.Data = append([]byte("> "), f.Data...)
		return f, nil
	})

	fs, err := jl.GenerateFS("a", "", "b")
	is.NoErr(err)

	files := fs.AsFiles()
	is.Equal(len(files), 3) // empty input is a no-op for upper
	is.Equal(files[0].RelativePath, "a.txt")
	is.Equal(string(files[0].Data), "> A")
	is.Equal(files[1].RelativePath, "all.txt")
	is.Equal(string(files[1].Data), "> a,,b")
	is.Equal(files[2].RelativePath, "b.txt")
	is.Equal(jennystack(files[0].From), "JennyList[string]:upper")
}

func TestJennyListAllOrNothing(t *testing.T) {
	is := is.New(t)
	fs, err := newList().GenerateFS("a", "bad")
	is.True(fs == nil)
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), `cannot handle bad for input "bad"`))
}

func TestJennyListDuplicatePath(t *testing.T) {
	is := is.New(t)
	jl := newList()
	jl.AppendManyToOne(joiner{})
	_, err := jl.GenerateFS("a")
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "all.txt"))
}

func TestJennyListPostprocessorError(t *testing.T) {
	is := is.New(t)
	jl := newList()
	jl.AddPostprocessors(func(f File) (File, error) {
		return File{}, errors.New("rejected")
	})
	fs, err := jl.GenerateFS("a")
	is.True(fs == nil)
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "postprocessing a.txt from JennyList[string]:upper: rejected"))
}

func TestFilesValidate(t *testing.T) {
	is := is.New(t)
	is.NoErr(Files{{RelativePath: "a"}, {RelativePath: "b/c"}}.Validate())
	is.True(Files{{RelativePath: "a"}, {RelativePath: "a"}}.Validate() != nil)
	is.True(Files{{RelativePath: filepath.Join(string(filepath.Separator), "abs")}}.Validate() != nil)
}

func TestFSMergeConflict(t *testing.T) {
	is := is.New(t)
	a, b := NewFS(), NewFS()
	is.NoErr(a.Add(File{RelativePath: "x.go", Data: []byte("x")}))
	is.NoErr(b.Add(File{RelativePath: "x.go", Data: []byte("y")}))
	is.True(a.Merge(b) != nil)
	is.NoErr(a.Merge(nil))
	is.Equal(a.Len(), 1)
}

func TestFSWriteVerify(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	dir := t.TempDir()

	fs := NewFS()
	is.NoErr(fs.Add(
		File{RelativePath: "a.rs", Data: []byte("impl A {}\n")},
		File{RelativePath: filepath.Join("sub", "b.go"), Data: []byte("package sub\n")},
	))

	err := fs.Verify(ctx, dir)
	is.True(err != nil) // nothing written yet
	is.True(strings.Contains(err.Error(), "should exist"))

	is.NoErr(fs.Write(ctx, dir))
	is.NoErr(fs.Verify(ctx, dir))

	b, err := os.ReadFile(filepath.Join(dir, "sub", "b.go"))
	is.NoErr(err)
	is.True(bytes.Equal(b, []byte("package sub\n")))

	is.NoErr(os.WriteFile(filepath.Join(dir, "a.rs"), []byte("impl B {}\n"), 0644))
	err = fs.Verify(ctx, dir)
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "would have changed"))
}
